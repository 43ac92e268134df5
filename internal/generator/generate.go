package generator

import (
	"fmt"
	"image"
	"os"
	"path/filepath"

	log "github.com/sirupsen/logrus"

	"github.com/SkyMack/resgen/internal/imaging"
	"github.com/SkyMack/resgen/internal/registry"
)

// generateResources walks the selected platforms in selection order and
// renders every output definition in table order. Processing is strictly
// sequential and fail-fast: the first failed transform or write aborts the
// run, and files already written stay in place.
func generateResources(conf Config, reg *registry.Registry, images sourceImages, selected []string) error {
	for _, platform := range selected {
		for _, set := range reg.SetsFor(platform) {
			if err := generateSet(conf, images, set); err != nil {
				return err
			}
		}
	}
	return nil
}

// generateSet renders one definition set into its output subdirectory,
// creating the subdirectory first when needed.
func generateSet(conf Config, images sourceImages, set registry.DefinitionSet) error {
	setDir := filepath.Join(conf.outputDirPath, filepath.FromSlash(set.Path))
	if err := os.MkdirAll(setDir, 0755); err != nil {
		log.WithFields(log.Fields{
			"dst.path": setDir,
			"error":    err.Error(),
		}).Error("cannot create output subdirectory")
		return fmt.Errorf("%w: %v", imaging.ErrorWriteFailed, err)
	}

	for _, def := range set.Definitions {
		output, err := renderDefinition(images, set.Type, def)
		if err != nil {
			log.WithFields(log.Fields{
				"definition.name": def.Name,
				"platform.name":   set.Platform,
				"error":           err.Error(),
			}).Error("cannot render output definition")
			return err
		}
		if err := imaging.SavePNG(output, filepath.Join(setDir, def.Name)); err != nil {
			log.WithFields(log.Fields{
				"definition.name": def.Name,
				"platform.name":   set.Platform,
				"error":           err.Error(),
			}).Error("cannot write output definition")
			return err
		}
	}

	log.WithFields(log.Fields{
		"definition.count": len(set.Definitions),
		"dst.path":         setDir,
	}).Infof("generated %s files for %s", set.Type, set.Platform)
	return nil
}

// renderDefinition produces the output bitmap for a single definition: icon
// sets scale the icon source down to size x size, splash sets take the
// centered width x height crop of the splash source.
func renderDefinition(images sourceImages, setType registry.SetType, def registry.Definition) (*image.NRGBA, error) {
	switch setType {
	case registry.TypeIcon:
		return imaging.Resize(images.icon, def.Size, def.Size), nil
	case registry.TypeSplash:
		return imaging.CenterCrop(images.splash, def.Width, def.Height)
	default:
		return nil, fmt.Errorf("unknown definition set type %q", setType)
	}
}
