package imaging

import (
	"fmt"
	"image"
	"io"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
	"golang.org/x/image/draw"
)

// RasterizeSVG renders the SVG document from r into a fresh NRGBA bitmap at
// the document's intrinsic viewBox size. When minEdge is larger than both
// intrinsic edges the render target is scaled up, preserving aspect ratio, so
// the longest edge matches minEdge; small vector sources stay usable as
// hi-res input that way.
func RasterizeSVG(r io.Reader, minEdge int) (*image.NRGBA, error) {
	icon, err := oksvg.ReadIconStream(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrorImageLoad, err)
	}

	width := int(icon.ViewBox.W)
	height := int(icon.ViewBox.H)
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: svg declares no usable viewBox", ErrorImageLoad)
	}
	if minEdge > width && minEdge > height {
		longEdge := width
		if height > width {
			longEdge = height
		}
		scale := float64(minEdge) / float64(longEdge)
		width = int(float64(width)*scale + 0.5)
		height = int(float64(height)*scale + 0.5)
	}

	icon.SetTarget(0, 0, float64(width), float64(height))
	rgba := image.NewRGBA(image.Rect(0, 0, width, height))
	scanner := rasterx.NewScannerGV(width, height, rgba, rgba.Bounds())
	icon.Draw(rasterx.NewDasher(width, height, scanner), 1.0)

	nrgba := image.NewNRGBA(rgba.Bounds())
	draw.Draw(nrgba, nrgba.Bounds(), rgba, image.Point{}, draw.Src)
	return nrgba, nil
}
