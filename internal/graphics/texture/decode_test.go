package texture

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// twoRowImage is 2x2: top row red, bottom row blue, alpha a everywhere.
func twoRowImage(a uint8) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	for x := 0; x < 2; x++ {
		img.SetNRGBA(x, 0, color.NRGBA{R: 255, A: a})
		img.SetNRGBA(x, 1, color.NRGBA{B: 255, A: a})
	}
	return img
}

func encodePNG(t *testing.T, img image.Image) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestDecodePNGWithAlphaIsRGBAAndFlipped(t *testing.T) {
	data, err := Decode(bytes.NewReader(encodePNG(t, twoRowImage(128))))
	require.NoError(t, err)

	assert.Equal(t, "png", data.Format)
	assert.Equal(t, 2, data.Width)
	assert.Equal(t, 2, data.Height)
	assert.Equal(t, 4, data.Channels)
	require.Len(t, data.Pix, 2*2*4)

	// First row in the buffer is the bottom (blue) row of the source.
	assert.Equal(t, byte(0), data.Pix[0])
	assert.Greater(t, data.Pix[2], byte(0))
	// Last row is the top (red) row.
	last := data.Pix[len(data.Pix)-4:]
	assert.Greater(t, last[0], byte(0))
	assert.Equal(t, byte(0), last[2])
	assert.Equal(t, byte(128), last[3])
}

func TestDecodeOpaquePNGIsRGB(t *testing.T) {
	data, err := Decode(bytes.NewReader(encodePNG(t, twoRowImage(255))))
	require.NoError(t, err)

	assert.Equal(t, 3, data.Channels)
	require.Len(t, data.Pix, 2*2*3)
	assert.Equal(t, []byte{0, 0, 255}, data.Pix[0:3])
	assert.Equal(t, []byte{255, 0, 0}, data.Pix[9:12])
}

func TestDecodeJPEGIsRGB(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, jpeg.Encode(&buf, twoRowImage(255), &jpeg.Options{Quality: 90}))

	data, err := Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, "jpg", data.Format)
	assert.Equal(t, 3, data.Channels)
	assert.Len(t, data.Pix, 2*2*3)
}

func TestDecodeBMP(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, bmp.Encode(&buf, twoRowImage(255)))

	data, err := Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, "bmp", data.Format)
	assert.Equal(t, 3, data.Channels)
	assert.Equal(t, []byte{0, 0, 255}, data.Pix[0:3])
}

func TestDecodeTIFF(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, tiff.Encode(&buf, twoRowImage(64), nil))

	data, err := Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, "tif", data.Format)
	assert.Equal(t, 4, data.Channels)
}

func TestDecodeUnsupported(t *testing.T) {
	_, err := Decode(bytes.NewReader([]byte("definitely not an image")))
	assert.ErrorIs(t, err, ErrUnsupportedFormat)

	_, err = Decode(bytes.NewReader(nil))
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestDecodeTruncatedPNG(t *testing.T) {
	raw := encodePNG(t, twoRowImage(255))
	_, err := Decode(bytes.NewReader(raw[:len(raw)/2]))
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrUnsupportedFormat)
}

func TestDecodeFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "char.png")
	require.NoError(t, os.WriteFile(path, encodePNG(t, twoRowImage(200)), 0644))

	data, err := DecodeFile(path)
	require.NoError(t, err)
	assert.Equal(t, 2, data.Width)

	_, err = DecodeFile(filepath.Join(dir, "missing.png"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestFromImageNonZeroOrigin(t *testing.T) {
	src := twoRowImage(255).SubImage(image.Rect(1, 1, 2, 2))

	data := FromImage(src)
	assert.Equal(t, 1, data.Width)
	assert.Equal(t, 1, data.Height)
	assert.Equal(t, []byte{0, 0, 255}, data.Pix)
}

func TestDecodeBundledAssets(t *testing.T) {
	for _, name := range []string{"background.png", "char.png"} {
		path := filepath.Join("..", "..", "..", "assets", "textures", name)
		data, err := DecodeFile(path)
		require.NoError(t, err, name)
		assert.Equal(t, "png", data.Format)
		assert.Equal(t, data.Width*data.Height*data.Channels, len(data.Pix))
	}
}
