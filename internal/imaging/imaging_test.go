package imaging

import (
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gradientImage(width, height int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.SetNRGBA(x, y, color.NRGBA{
				R: uint8(x * 255 / width),
				G: uint8(y * 255 / height),
				B: 128,
				A: 255,
			})
		}
	}
	return img
}

func TestImportImage(t *testing.T) {
	t.Run("Roundtrips a PNG file", func(t *testing.T) {
		srcPath := filepath.Join(t.TempDir(), "source.png")
		src := gradientImage(20, 14)
		require.NoError(t, SavePNG(src, srcPath))

		img, err := ImportImage(srcPath, 0)
		require.NoError(t, err)
		assert.Equal(t, 20, img.Bounds().Dx())
		assert.Equal(t, 14, img.Bounds().Dy())
		assert.Equal(t, src.Pix, img.Pix)
	})

	t.Run("Fails on a missing file", func(t *testing.T) {
		_, err := ImportImage(filepath.Join(t.TempDir(), "nope.png"), 0)
		assert.ErrorIs(t, err, ErrorImageLoad)
	})

	t.Run("Fails on undecodable data", func(t *testing.T) {
		srcPath := filepath.Join(t.TempDir(), "bogus.png")
		require.NoError(t, os.WriteFile(srcPath, []byte("definitely not a png"), 0644))

		_, err := ImportImage(srcPath, 0)
		assert.ErrorIs(t, err, ErrorImageLoad)
	})
}

func TestResize(t *testing.T) {
	t.Run("Produces the requested dimensions", func(t *testing.T) {
		dst := Resize(gradientImage(100, 100), 40, 40)
		assert.Equal(t, 40, dst.Bounds().Dx())
		assert.Equal(t, 40, dst.Bounds().Dy())
	})

	t.Run("Is deterministic", func(t *testing.T) {
		src := gradientImage(96, 96)
		first := Resize(src, 36, 36)
		second := Resize(src, 36, 36)
		assert.Equal(t, first.Pix, second.Pix)
	})

	t.Run("Leaves the source untouched", func(t *testing.T) {
		src := gradientImage(50, 50)
		before := make([]uint8, len(src.Pix))
		copy(before, src.Pix)

		Resize(src, 10, 10)
		assert.Equal(t, before, src.Pix)
	})
}

func TestCenterCrop(t *testing.T) {
	t.Run("Centers on an even difference", func(t *testing.T) {
		src := gradientImage(10, 10)
		dst, err := CenterCrop(src, 4, 4)
		require.NoError(t, err)
		assert.Equal(t, 4, dst.Bounds().Dx())
		assert.Equal(t, 4, dst.Bounds().Dy())
		// offset is (10-4)/2 = 3
		assert.Equal(t, src.NRGBAAt(3, 3), dst.NRGBAAt(0, 0))
		assert.Equal(t, src.NRGBAAt(6, 6), dst.NRGBAAt(3, 3))
	})

	t.Run("Floors the offset on an odd difference", func(t *testing.T) {
		src := image.NewNRGBA(image.Rect(0, 0, 5, 5))
		for y := 0; y < 5; y++ {
			for x := 0; x < 5; x++ {
				src.SetNRGBA(x, y, color.NRGBA{R: uint8(x * 10), G: uint8(y * 10), A: 255})
			}
		}

		dst, err := CenterCrop(src, 2, 2)
		require.NoError(t, err)
		// offset is (5-2)/2 = 1, not 2: the extra row/column lands bottom-right
		assert.Equal(t, src.NRGBAAt(1, 1), dst.NRGBAAt(0, 0))
		assert.Equal(t, src.NRGBAAt(2, 2), dst.NRGBAAt(1, 1))
	})

	t.Run("Accepts a full-size crop", func(t *testing.T) {
		src := gradientImage(8, 8)
		dst, err := CenterCrop(src, 8, 8)
		require.NoError(t, err)
		assert.Equal(t, src.Pix, dst.Pix)
	})

	t.Run("Rejects a crop larger than the source", func(t *testing.T) {
		_, err := CenterCrop(gradientImage(10, 10), 11, 4)
		assert.ErrorIs(t, err, ErrorCropBounds)

		_, err = CenterCrop(gradientImage(10, 10), 4, 11)
		assert.ErrorIs(t, err, ErrorCropBounds)
	})
}

func TestSavePNG(t *testing.T) {
	t.Run("Writes a decodable file", func(t *testing.T) {
		destPath := filepath.Join(t.TempDir(), "out.png")
		require.NoError(t, SavePNG(gradientImage(12, 12), destPath))

		img, err := ImportImage(destPath, 0)
		require.NoError(t, err)
		assert.Equal(t, 12, img.Bounds().Dx())
	})

	t.Run("Fails when the directory does not exist", func(t *testing.T) {
		destPath := filepath.Join(t.TempDir(), "missing", "out.png")
		err := SavePNG(gradientImage(12, 12), destPath)
		assert.ErrorIs(t, err, ErrorWriteFailed)
	})
}

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		name    string
		code    string
		want    color.NRGBA
		wantErr bool
	}{
		{name: "plain code", code: "1A2B3C", want: color.NRGBA{R: 0x1A, G: 0x2B, B: 0x3C, A: 255}},
		{name: "leading hash", code: "#FF0080", want: color.NRGBA{R: 0xFF, G: 0x00, B: 0x80, A: 255}},
		{name: "lowercase", code: "a0b1c2", want: color.NRGBA{R: 0xA0, G: 0xB1, B: 0xC2, A: 255}},
		{name: "too short", code: "FFF", wantErr: true},
		{name: "not hex", code: "GGGGGG", wantErr: true},
		{name: "empty", code: "", wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseHexColor(tc.code)
			if tc.wantErr {
				assert.ErrorIs(t, err, ErrorInvalidHexColor)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}
