package imaging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSVG = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 64 64"><rect width="64" height="64" fill="#FF0000"/></svg>`

func TestRasterizeSVG(t *testing.T) {
	t.Run("Renders at the intrinsic viewBox size", func(t *testing.T) {
		img, err := RasterizeSVG(strings.NewReader(testSVG), 0)
		require.NoError(t, err)
		assert.Equal(t, 64, img.Bounds().Dx())
		assert.Equal(t, 64, img.Bounds().Dy())

		center := img.NRGBAAt(32, 32)
		assert.Equal(t, uint8(255), center.A)
		assert.Greater(t, center.R, uint8(200))
	})

	t.Run("Scales small sources up to minEdge", func(t *testing.T) {
		img, err := RasterizeSVG(strings.NewReader(testSVG), 128)
		require.NoError(t, err)
		assert.Equal(t, 128, img.Bounds().Dx())
		assert.Equal(t, 128, img.Bounds().Dy())
	})

	t.Run("Keeps the aspect ratio while scaling", func(t *testing.T) {
		wide := `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 100 50"><rect width="100" height="50" fill="#00FF00"/></svg>`
		img, err := RasterizeSVG(strings.NewReader(wide), 200)
		require.NoError(t, err)
		assert.Equal(t, 200, img.Bounds().Dx())
		assert.Equal(t, 100, img.Bounds().Dy())
	})

	t.Run("Fails on a document that is not SVG", func(t *testing.T) {
		_, err := RasterizeSVG(strings.NewReader("just some text"), 0)
		assert.ErrorIs(t, err, ErrorImageLoad)
	})
}

func TestImportImageSVG(t *testing.T) {
	srcPath := filepath.Join(t.TempDir(), "source.svg")
	require.NoError(t, os.WriteFile(srcPath, []byte(testSVG), 0644))

	img, err := ImportImage(srcPath, 256)
	require.NoError(t, err)
	assert.Equal(t, 256, img.Bounds().Dx())
	assert.Equal(t, 256, img.Bounds().Dy())
}
