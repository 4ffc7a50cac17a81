// Package font bakes a TrueType face into a glyph atlas and lays out text
// as textured triangles in a y-up pixel space.
package font

import (
	"fmt"
	"image"
	"image/draw"
	"math"

	xfont "golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// Printable ASCII range baked into the atlas.
const (
	firstRune = rune(32)
	lastRune  = rune(126)

	atlasWidth = 512
	padding    = 1
)

// Glyph describes a single character's placement and metrics within the atlas
type Glyph struct {
	// Pixel coordinates of the glyph in the atlas image (top-left origin)
	AtlasX float32
	AtlasY float32
	// Glyph bitmap size in pixels
	Width  float32
	Height float32
	// Offset from the pen position to the glyph's top-left corner, y up
	BearingX float32
	BearingY float32
	// Advance in whole pixels
	Advance int
}

// Atlas holds the baked single-channel glyph image and per-glyph metrics
type Atlas struct {
	Image  *image.Alpha
	Glyphs map[rune]Glyph
	// LineHeight is the distance between baselines in pixels
	LineHeight int
}

// BuildDefaultAtlas bakes the Go Regular font shipped with x/image.
func BuildDefaultAtlas(pixels int) (*Atlas, error) {
	return BuildAtlas(goregular.TTF, pixels)
}

// BuildAtlas parses a TrueType/OpenType font and bakes the printable ASCII set.
func BuildAtlas(fontBytes []byte, pixels int) (*Atlas, error) {
	if pixels <= 0 {
		return nil, fmt.Errorf("font size must be positive, got %d", pixels)
	}
	f, err := opentype.Parse(fontBytes)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}

	face, err := opentype.NewFace(f, &opentype.FaceOptions{Size: float64(pixels), DPI: 72, Hinting: xfont.HintingFull})
	if err != nil {
		return nil, fmt.Errorf("new face: %w", err)
	}
	defer func() { _ = face.Close() }()

	// First pass: pack rows to find the atlas height
	offsetX, offsetY, rowHeight := 0, 0, 0
	for r := firstRune; r <= lastRune; r++ {
		dr, _, _, _, ok := face.Glyph(fixed.P(0, 0), r)
		if !ok || dr.Empty() {
			continue
		}
		if offsetX+dr.Dx() > atlasWidth {
			offsetX = 0
			offsetY += rowHeight + padding
			rowHeight = 0
		}
		offsetX += dr.Dx() + padding
		rowHeight = max(rowHeight, dr.Dy())
	}
	atlasHeight := max(offsetY+rowHeight, 1)

	img := image.NewAlpha(image.Rect(0, 0, atlasWidth, atlasHeight))
	glyphs := make(map[rune]Glyph, int(lastRune-firstRune+1))

	// Second pass: render each glyph into the atlas and record metrics
	offsetX, offsetY, rowHeight = 0, 0, 0
	for r := firstRune; r <= lastRune; r++ {
		dr, mask, maskp, advance, ok := face.Glyph(fixed.P(0, 0), r)
		if !ok {
			continue
		}
		adv := int(math.Round(float64(advance) / 64.0))
		if dr.Empty() {
			// Space or non-drawable glyph; still record advance
			glyphs[r] = Glyph{Advance: adv}
			continue
		}

		if offsetX+dr.Dx() > atlasWidth {
			offsetX = 0
			offsetY += rowHeight + padding
			rowHeight = 0
		}

		dst := image.Rect(offsetX, offsetY, offsetX+dr.Dx(), offsetY+dr.Dy())
		draw.Draw(img, dst, mask, maskp, draw.Src)

		glyphs[r] = Glyph{
			AtlasX:   float32(offsetX),
			AtlasY:   float32(offsetY),
			Width:    float32(dr.Dx()),
			Height:   float32(dr.Dy()),
			BearingX: float32(dr.Min.X),
			BearingY: float32(-dr.Min.Y),
			Advance:  adv,
		}

		offsetX += dr.Dx() + padding
		rowHeight = max(rowHeight, dr.Dy())
	}

	metrics := face.Metrics()
	return &Atlas{
		Image:      img,
		Glyphs:     glyphs,
		LineHeight: metrics.Height.Ceil(),
	}, nil
}

// Layout returns interleaved x, y, u, v vertices (6 per drawable glyph) for
// text whose baseline starts at (x, y), with y pointing up.
func (a *Atlas) Layout(text string, x, y, scale float32) []float32 {
	aw := float32(a.Image.Rect.Dx())
	ah := float32(a.Image.Rect.Dy())

	vertices := make([]float32, 0, len(text)*6*4)
	for _, r := range text {
		g := a.glyph(r)
		if g.Width > 0 && g.Height > 0 {
			left := x + g.BearingX*scale
			top := y + g.BearingY*scale
			right := left + g.Width*scale
			bottom := top - g.Height*scale

			u0, v0 := g.AtlasX/aw, g.AtlasY/ah
			u1, v1 := (g.AtlasX+g.Width)/aw, (g.AtlasY+g.Height)/ah

			vertices = append(vertices,
				left, top, u0, v0,
				left, bottom, u0, v1,
				right, bottom, u1, v1,
				left, top, u0, v0,
				right, bottom, u1, v1,
				right, top, u1, v0,
			)
		}
		x += float32(g.Advance) * scale
	}
	return vertices
}

// glyph falls back to '?' then space for runes outside the atlas
func (a *Atlas) glyph(r rune) Glyph {
	if g, ok := a.Glyphs[r]; ok {
		return g
	}
	if g, ok := a.Glyphs['?']; ok {
		return g
	}
	return a.Glyphs[' ']
}
