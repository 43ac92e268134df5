package placeholder

import (
	"fmt"
	"image"
	"image/color"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/math/fixed"
)

const labelDPI = 144

var (
	// ErrorInvalidDimensions is returned when a placeholder is requested with a non-positive width or height
	ErrorInvalidDimensions = fmt.Errorf("placeholder dimensions must be positive")
	// ErrorRenderLabel is returned when the dimension label cannot be drawn
	ErrorRenderLabel = fmt.Errorf("cannot render placeholder label")
)

// Render paints a width x height placeholder bitmap: a vertical gradient of
// the background color carrying a centered dimension label such as
// "1024x1024". The output is valid source artwork for the resource pipeline.
func Render(width, height int, background, label color.NRGBA) (*image.NRGBA, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrorInvalidDimensions, width, height)
	}

	img := image.NewNRGBA(image.Rect(0, 0, width, height))

	// full background color on the top row, fading toward a darker shade
	for y := 0; y < height; y++ {
		fade := 1.0 - (0.45 * float64(y) / float64(height))
		row := color.NRGBA{
			R: uint8(float64(background.R) * fade),
			G: uint8(float64(background.G) * fade),
			B: uint8(float64(background.B) * fade),
			A: 255,
		}
		for x := 0; x < width; x++ {
			img.SetNRGBA(x, y, row)
		}
	}

	if err := drawLabel(img, fmt.Sprintf("%dx%d", width, height), label); err != nil {
		return nil, err
	}

	return img, nil
}

// drawLabel renders text centered on img using the embedded Go Regular face,
// scaled so the glyphs stand about an eighth of the image width tall.
func drawLabel(img *image.NRGBA, text string, labelColor color.NRGBA) error {
	parsedFont, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrorRenderLabel, err)
	}

	fontSize := float64(img.Bounds().Dx()) / 8 * 72 / labelDPI
	face := truetype.NewFace(parsedFont, &truetype.Options{
		Size:    fontSize,
		DPI:     labelDPI,
		Hinting: font.HintingFull,
	})

	drawer := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(labelColor),
		Face: face,
	}
	textWidth := drawer.MeasureString(text)
	metrics := face.Metrics()

	// the dot sits on the baseline, so shift it down by half the glyph extent
	drawer.Dot = fixed.Point26_6{
		X: fixed.I(img.Bounds().Dx()/2) - textWidth/2,
		Y: fixed.I(img.Bounds().Dy()/2) + (metrics.Ascent-metrics.Descent)/2,
	}
	drawer.DrawString(text)

	return nil
}
