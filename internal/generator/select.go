package generator

import (
	"fmt"
	"strings"

	"github.com/agnivade/levenshtein"
	log "github.com/sirupsen/logrus"

	"github.com/SkyMack/resgen/internal/registry"
)

// selectPlatforms resolves the comma separated platform filter against the
// registry. An empty filter selects every registered platform in registry
// order; otherwise the known tokens are returned in the order the user
// supplied them, duplicates included. A single unknown token rejects the
// whole selection.
func selectPlatforms(reg *registry.Registry, filter string) ([]string, error) {
	if strings.TrimSpace(filter) == "" {
		log.Info("no platform filter set, processing all platforms")
		return reg.Platforms(), nil
	}

	var selected []string
	var unknown []string
	for _, token := range strings.Split(filter, ",") {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}
		if reg.Has(token) {
			selected = append(selected, token)
			continue
		}

		unknown = append(unknown, token)
		fields := log.Fields{
			"platform.name": token,
		}
		if suggestion := nearestPlatform(reg, token); suggestion != "" {
			fields["platform.suggestion"] = suggestion
		}
		log.WithFields(fields).Error(ErrorUnknownPlatform.Error())
	}

	if len(unknown) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrorUnknownPlatform, strings.Join(unknown, ", "))
	}
	if len(selected) == 0 {
		return nil, fmt.Errorf("%w: platform filter %q selects nothing", ErrorUnknownPlatform, filter)
	}

	log.WithFields(log.Fields{
		"platform.count": len(selected),
		"platform.names": strings.Join(selected, ","),
	}).Info("platforms selected")
	return selected, nil
}

// nearestPlatform returns the registered platform closest to token, or an
// empty string when nothing falls within the length-scaled edit distance
// limit.
func nearestPlatform(reg *registry.Registry, token string) string {
	best := ""
	bestDist := 0
	for _, platform := range reg.Platforms() {
		dist := levenshtein.ComputeDistance(token, platform)
		if best == "" || dist < bestDist {
			best = platform
			bestDist = dist
		}
	}
	if best == "" || bestDist > levenshteinLimit(len(best)) {
		return ""
	}
	return best
}

func levenshteinLimit(length int) int {
	switch {
	case length <= 4:
		return 1
	case length <= 8:
		return 2
	default:
		return 3
	}
}
