package generator

import (
	"fmt"
	"image"
	"os"

	log "github.com/sirupsen/logrus"

	"github.com/SkyMack/resgen/internal/imaging"
	"github.com/SkyMack/resgen/internal/registry"
)

// sourceImages holds the two decoded source bitmaps for a run. Every output
// definition works on its own copy of the relevant source; the originals are
// never mutated.
type sourceImages struct {
	icon   *image.NRGBA
	splash *image.NRGBA
}

// validateSources loads and checks both source images in a fixed order: the
// icon first, then the splash. The first failing check aborts the run, so a
// bad icon is reported before the splash is even opened.
func validateSources(conf Config) (sourceImages, error) {
	icon, err := loadSquareSource(conf.iconPath, registry.IconSourceEdge, "icon")
	if err != nil {
		return sourceImages{}, err
	}
	splash, err := loadSquareSource(conf.splashPath, registry.SplashSourceEdge, "splash")
	if err != nil {
		return sourceImages{}, err
	}
	return sourceImages{icon: icon, splash: splash}, nil
}

// loadSquareSource decodes the image at fpath and requires it to measure
// exactly edge x edge pixels.
func loadSquareSource(fpath string, edge int, kind string) (*image.NRGBA, error) {
	img, err := imaging.ImportImage(fpath, edge)
	if err != nil {
		log.WithFields(log.Fields{
			"src_img.kind": kind,
			"src_img.path": fpath,
			"error":        err.Error(),
		}).Error("cannot load source image")
		return nil, err
	}

	width := img.Bounds().Dx()
	height := img.Bounds().Dy()
	if width != edge || height != edge {
		log.WithFields(log.Fields{
			"src_img.kind":        kind,
			"src_img.path":        fpath,
			"dimensions.expected": fmt.Sprintf("%dx%d", edge, edge),
			"dimensions.actual":   fmt.Sprintf("%dx%d", width, height),
		}).Error(ErrorDimensionMismatch.Error())
		return nil, fmt.Errorf("%w: %s source is %dx%d, must be exactly %dx%d", ErrorDimensionMismatch, kind, width, height, edge, edge)
	}

	log.WithFields(log.Fields{
		"src_img.kind": kind,
		"src_img.path": fpath,
	}).Info("source image verified")
	return img, nil
}

// validateOutputDir confirms the output root already exists and is a
// directory. It is never created implicitly; only the per-set subdirectories
// underneath it are.
func validateOutputDir(fpath string) error {
	info, err := os.Stat(fpath)
	if err != nil || !info.IsDir() {
		log.WithFields(log.Fields{
			"output.path": fpath,
		}).Error(ErrorOutputDirNotFound.Error())
		return fmt.Errorf("%w: %s", ErrorOutputDirNotFound, fpath)
	}
	log.WithFields(log.Fields{
		"output.path": fpath,
	}).Info("output directory verified")
	return nil
}
