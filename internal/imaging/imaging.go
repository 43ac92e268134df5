package imaging

import (
	"fmt"
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	log "github.com/sirupsen/logrus"
	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/tiff"
)

var (
	// ErrorImageLoad is returned when a source image cannot be opened or decoded
	ErrorImageLoad = fmt.Errorf("cannot load source image")
	// ErrorCropBounds is returned when a crop target is larger than the image being cropped
	ErrorCropBounds = fmt.Errorf("crop target exceeds image bounds")
	// ErrorWriteFailed is returned when a generated image cannot be written out
	ErrorWriteFailed = fmt.Errorf("cannot write output image")
	// ErrorInvalidHexColor is returned when a color string is not a 6 digit RGB hex code
	ErrorInvalidHexColor = fmt.Errorf("invalid hex color")
)

// ImportImage decodes the image file at fpath into a fresh, zero-origin NRGBA
// bitmap. PNG, JPEG, GIF, TIFF, and BMP sources are decoded directly; SVG
// sources are rasterized first, with svgEdge passed through as the long-edge
// render target (see RasterizeSVG).
func ImportImage(fpath string, svgEdge int) (*image.NRGBA, error) {
	fileData, err := os.Open(fpath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrorImageLoad, err)
	}
	defer fileData.Close()

	if strings.EqualFold(filepath.Ext(fpath), ".svg") {
		return RasterizeSVG(fileData, svgEdge)
	}

	imageData, _, err := image.Decode(fileData)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrorImageLoad, err)
	}

	bounds := imageData.Bounds()
	nrgba := image.NewNRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(nrgba, nrgba.Bounds(), imageData, bounds.Min, draw.Src)
	return nrgba, nil
}

// Resize scales src into a fresh width x height bitmap using the CatmullRom
// kernel. The kernel is deterministic, so identical inputs always produce
// identical output bytes.
func Resize(src *image.NRGBA, width, height int) *image.NRGBA {
	dst := image.NewNRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return dst
}

// CenterCrop copies the centered width x height rectangle of src into a fresh
// bitmap. The offsets are (srcW-width)/2 and (srcH-height)/2 with floor
// division, so for an odd difference the extra row or column falls on the
// bottom/right edge.
func CenterCrop(src *image.NRGBA, width, height int) (*image.NRGBA, error) {
	srcWidth := src.Bounds().Dx()
	srcHeight := src.Bounds().Dy()
	if width > srcWidth || height > srcHeight {
		return nil, fmt.Errorf("%w: cannot take %dx%d from %dx%d", ErrorCropBounds, width, height, srcWidth, srcHeight)
	}

	origin := image.Point{
		X: src.Bounds().Min.X + (srcWidth-width)/2,
		Y: src.Bounds().Min.Y + (srcHeight-height)/2,
	}
	dst := image.NewNRGBA(image.Rect(0, 0, width, height))
	draw.Draw(dst, dst.Bounds(), src, origin, draw.Src)
	return dst, nil
}

// SavePNG writes img to destFile in PNG format.
func SavePNG(img image.Image, destFile string) error {
	destFh, err := os.Create(destFile)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrorWriteFailed, err)
	}
	defer destFh.Close()

	log.WithFields(log.Fields{
		"dst.path": destFile,
	}).Debug("saving PNG file")
	if err := png.Encode(destFh, img); err != nil {
		return fmt.Errorf("%w: %v", ErrorWriteFailed, err)
	}
	return nil
}

// ParseHexColor converts a 6 digit RGB hex code, with or without a leading #,
// into an opaque NRGBA color.
func ParseHexColor(code string) (color.NRGBA, error) {
	trimmed := strings.TrimPrefix(code, "#")
	if len(trimmed) != 6 {
		return color.NRGBA{}, fmt.Errorf("%w: %q", ErrorInvalidHexColor, code)
	}
	value, err := strconv.ParseUint(trimmed, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("%w: %q", ErrorInvalidHexColor, code)
	}

	return color.NRGBA{
		R: uint8(value >> 16),
		G: uint8(value >> 8),
		B: uint8(value),
		A: 255,
	}, nil
}
