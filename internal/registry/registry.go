package registry

import (
	"embed"
	"fmt"

	"github.com/hashicorp/go-multierror"
	"gopkg.in/yaml.v3"
)

const (
	// IconSourceEdge is the required width and height of the icon source image
	IconSourceEdge = 1024
	// SplashSourceEdge is the required width and height of the splash source image
	SplashSourceEdge = 2732
)

// SetType identifies which source image a definition set consumes.
type SetType string

const (
	// TypeIcon marks sets generated by resizing the icon source
	TypeIcon SetType = "icon"
	// TypeSplash marks sets generated by center-cropping the splash source
	TypeSplash SetType = "splash"
)

var (
	// ErrorRegistryLoad is returned when an embedded definition set cannot be read or decoded
	ErrorRegistryLoad = fmt.Errorf("cannot load platform registry")
	// ErrorRegistryInvalid is returned when the decoded definition tables violate the catalog invariants
	ErrorRegistryInvalid = fmt.Errorf("invalid platform registry data")
)

//go:embed defs/*.yaml
var defsFS embed.FS

// platformDefs maps each platform identifier to its definition set data
// files, in generation order: the icon set precedes the splash set.
var platformDefs = map[string][]string{
	"android": {"defs/android-icon.yaml", "defs/android-splash.yaml"},
	"ios":     {"defs/ios-icon.yaml", "defs/ios-splash.yaml"},
	"windows": {"defs/windows-icon.yaml", "defs/windows-splash.yaml"},
}

// platformOrder fixes the registry-defined platform ordering used when no
// platform filter is supplied.
var platformOrder = []string{"android", "ios", "windows"}

// Definition is a single named output image: a target edge size for icon
// sets, or a target crop rectangle for splash sets.
type Definition struct {
	Name   string `yaml:"name"`
	Size   int    `yaml:"size,omitempty"`
	Width  int    `yaml:"width,omitempty"`
	Height int    `yaml:"height,omitempty"`
}

// DefinitionSet groups the definitions for one platform and one source type,
// sharing one output subdirectory under the output root.
type DefinitionSet struct {
	Platform    string       `yaml:"platform"`
	Type        SetType      `yaml:"type"`
	Path        string       `yaml:"path"`
	Definitions []Definition `yaml:"definitions"`
}

// Registry is the static table mapping platform identifiers to their
// definition sets. It is read-only once loaded.
type Registry struct {
	platforms []string
	sets      map[string][]DefinitionSet
}

// Load decodes every embedded definition set and verifies the catalog
// invariants before returning the registry.
func Load() (*Registry, error) {
	reg := &Registry{
		platforms: platformOrder,
		sets:      make(map[string][]DefinitionSet, len(platformDefs)),
	}

	for _, platform := range platformOrder {
		for _, defPath := range platformDefs[platform] {
			data, err := defsFS.ReadFile(defPath)
			if err != nil {
				return nil, fmt.Errorf("%w: %s: %v", ErrorRegistryLoad, defPath, err)
			}
			var set DefinitionSet
			if err := yaml.Unmarshal(data, &set); err != nil {
				return nil, fmt.Errorf("%w: %s: %v", ErrorRegistryLoad, defPath, err)
			}
			reg.sets[platform] = append(reg.sets[platform], set)
		}
	}

	if err := reg.validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrorRegistryInvalid, err)
	}
	return reg, nil
}

// validate checks the decoded tables against the catalog invariants: every
// set names its own platform and a non-empty output path, definition names
// are present and unique within a set, and no target dimension exceeds the
// corresponding source image edge.
func (reg *Registry) validate() error {
	var result error

	for _, platform := range reg.platforms {
		for _, set := range reg.sets[platform] {
			setLabel := fmt.Sprintf("%s/%s", platform, set.Type)
			if set.Platform != platform {
				result = multierror.Append(result, fmt.Errorf("set %s: declares platform %q", setLabel, set.Platform))
			}
			if set.Path == "" {
				result = multierror.Append(result, fmt.Errorf("set %s: missing output path", setLabel))
			}
			if len(set.Definitions) == 0 {
				result = multierror.Append(result, fmt.Errorf("set %s: has no definitions", setLabel))
			}

			seen := make(map[string]bool, len(set.Definitions))
			for _, def := range set.Definitions {
				if def.Name == "" {
					result = multierror.Append(result, fmt.Errorf("set %s: definition with empty name", setLabel))
				} else if seen[def.Name] {
					result = multierror.Append(result, fmt.Errorf("set %s: duplicate definition name %q", setLabel, def.Name))
				}
				seen[def.Name] = true

				switch set.Type {
				case TypeIcon:
					if def.Size < 1 || def.Size > IconSourceEdge {
						result = multierror.Append(result, fmt.Errorf("set %s: definition %q: size %d outside 1..%d", setLabel, def.Name, def.Size, IconSourceEdge))
					}
				case TypeSplash:
					if def.Width < 1 || def.Width > SplashSourceEdge {
						result = multierror.Append(result, fmt.Errorf("set %s: definition %q: width %d outside 1..%d", setLabel, def.Name, def.Width, SplashSourceEdge))
					}
					if def.Height < 1 || def.Height > SplashSourceEdge {
						result = multierror.Append(result, fmt.Errorf("set %s: definition %q: height %d outside 1..%d", setLabel, def.Name, def.Height, SplashSourceEdge))
					}
				default:
					result = multierror.Append(result, fmt.Errorf("set %s: unknown set type %q", setLabel, set.Type))
				}
			}
		}
	}

	return result
}

// Platforms returns every platform identifier in registry-defined order.
func (reg *Registry) Platforms() []string {
	platforms := make([]string, len(reg.platforms))
	copy(platforms, reg.platforms)
	return platforms
}

// Has reports whether the registry knows the named platform.
func (reg *Registry) Has(platform string) bool {
	_, ok := reg.sets[platform]
	return ok
}

// SetsFor returns the named platform's definition sets in generation order,
// or nil for an unknown platform.
func (reg *Registry) SetsFor(platform string) []DefinitionSet {
	return reg.sets[platform]
}

// FileCount returns the total number of output definitions registered for
// the named platform.
func (reg *Registry) FileCount(platform string) int {
	count := 0
	for _, set := range reg.sets[platform] {
		count += len(set.Definitions)
	}
	return count
}
