// Package texture decodes image files into pixel buffers ready for GL upload
// and caches uploaded textures by path.
package texture

import (
	"bufio"
	"errors"
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"os"

	"github.com/h2non/filetype"
	"golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	"golang.org/x/image/tiff"
	"golang.org/x/image/webp"
)

// ErrUnsupportedFormat is returned when the file is not an image format we can decode.
var ErrUnsupportedFormat = errors.New("unsupported texture format")

// sniffLen is the header size filetype needs to recognise every image matcher.
const sniffLen = 262

// Data is a decoded image laid out bottom row first, tightly packed.
type Data struct {
	Pix      []byte
	Width    int
	Height   int
	Channels int    // 3 (RGB) or 4 (RGBA)
	Format   string // file extension reported by the sniffer, e.g. "png"
}

// DecodeFile opens path and decodes it with Decode.
func DecodeFile(path string) (*Data, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open texture file: %w", err)
	}
	defer f.Close()

	data, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return data, nil
}

// Decode sniffs the image format, decodes it and flips it vertically so that
// row 0 is the bottom of the image, matching GL texture coordinates.
// Opaque images are packed as RGB, everything else as RGBA.
func Decode(r io.Reader) (*Data, error) {
	br := bufio.NewReaderSize(r, sniffLen*2)
	head, err := br.Peek(sniffLen)
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to read texture header: %w", err)
	}

	kind, err := filetype.Match(head)
	if err != nil || kind == filetype.Unknown {
		return nil, ErrUnsupportedFormat
	}

	var img image.Image
	switch kind.Extension {
	case "png":
		img, err = png.Decode(br)
	case "jpg":
		img, err = jpeg.Decode(br)
	case "gif":
		img, err = gif.Decode(br)
	case "bmp":
		img, err = bmp.Decode(br)
	case "tif":
		img, err = tiff.Decode(br)
	case "webp":
		img, err = webp.Decode(br)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, kind.MIME.Value)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s image: %w", kind.Extension, err)
	}

	data := FromImage(img)
	data.Format = kind.Extension
	return data, nil
}

// FromImage converts img to a flipped, tightly packed pixel buffer.
func FromImage(img image.Image) *Data {
	b := img.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(rgba, rgba.Bounds(), img, b.Min, draw.Src)

	channels := 4
	if isOpaque(img) {
		channels = 3
	}

	w, h := rgba.Rect.Dx(), rgba.Rect.Dy()
	pix := make([]byte, 0, w*h*channels)
	for y := h - 1; y >= 0; y-- {
		row := rgba.Pix[y*rgba.Stride : y*rgba.Stride+w*4]
		if channels == 4 {
			pix = append(pix, row...)
			continue
		}
		for x := 0; x < w; x++ {
			pix = append(pix, row[x*4], row[x*4+1], row[x*4+2])
		}
	}

	return &Data{Pix: pix, Width: w, Height: h, Channels: channels}
}

func isOpaque(img image.Image) bool {
	if o, ok := img.(interface{ Opaque() bool }); ok {
		return o.Opaque()
	}
	return false
}
