package generator

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/SkyMack/resgen/internal/imaging"
	"github.com/SkyMack/resgen/internal/registry"
)

// loadRegistry loads the embedded definition tables, failing the test on any
// validation error.
func loadRegistry(t *testing.T) *registry.Registry {
	t.Helper()
	reg, err := registry.Load()
	require.NoError(t, err)
	return reg
}

// writeSource renders a width x height gradient PNG to fpath.
func writeSource(t *testing.T, fpath string, width, height int) {
	t.Helper()
	require.NoError(t, imaging.SavePNG(gradientSource(width, height), fpath))
}

func gradientSource(width, height int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.SetNRGBA(x, y, color.NRGBA{
				R: uint8(x * 255 / width),
				G: uint8(y * 255 / height),
				B: 96,
				A: 255,
			})
		}
	}
	return img
}
