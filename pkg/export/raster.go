package export

import (
	"fmt"
	"image"
	"image/color"

	"github.com/aretw0/folio/pkg/render"
	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

const (
	// DefaultWidth is the logical page width in CSS pixels (A4 at 96 dpi).
	DefaultWidth = 794
	// DefaultScale is the device pixel ratio of the capture.
	DefaultScale = 2
	margin       = 48
)

// Rasterizer paints a View onto a white canvas.
type Rasterizer struct {
	Width int
	Scale float64

	regular *truetype.Font
	bold    *truetype.Font
}

// NewRasterizer parses the embedded Go fonts.
func NewRasterizer() (*Rasterizer, error) {
	regular, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to parse regular font: %w", err)
	}
	bold, err := truetype.Parse(gobold.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to parse bold font: %w", err)
	}
	return &Rasterizer{Width: DefaultWidth, Scale: DefaultScale, regular: regular, bold: bold}, nil
}

type style struct {
	face  font.Face
	size  float64
	color color.Color
	after float64
}

type line struct {
	text  string
	style style
	rule  bool
}

// Rasterize lays out v and returns the canvas. The height fits the content.
func (r *Rasterizer) Rasterize(v render.View) (image.Image, error) {
	if r.Width <= 0 || r.Scale <= 0 {
		return nil, fmt.Errorf("invalid canvas %dx%.1f", r.Width, r.Scale)
	}
	width := float64(r.Width) * r.Scale
	pad := margin * r.Scale
	textWidth := width - 2*pad

	measure := gg.NewContext(1, 1)
	var lines []line
	height := 2 * pad
	for _, b := range v.Blocks {
		if b.Kind == render.BlockRule {
			lines = append(lines, line{rule: true, style: style{size: 12 * r.Scale, after: 12 * r.Scale}})
			height += 24 * r.Scale
			continue
		}
		st, text := r.style(b)
		measure.SetFontFace(st.face)
		wrapped := measure.WordWrap(text, textWidth)
		for i, w := range wrapped {
			s := st
			if i < len(wrapped)-1 {
				s.after = 0
			}
			lines = append(lines, line{text: w, style: s})
			height += s.size*1.4 + s.after
		}
	}

	dc := gg.NewContext(int(width), int(height))
	dc.SetColor(color.White)
	dc.Clear()

	y := pad
	for _, l := range lines {
		if l.rule {
			y += l.style.size
			dc.SetColor(color.Gray{Y: 0xaa})
			dc.SetLineWidth(r.Scale)
			dc.DrawLine(pad, y, width-pad, y)
			dc.Stroke()
			y += l.style.after
			continue
		}
		dc.SetFontFace(l.style.face)
		dc.SetColor(l.style.color)
		y += l.style.size * 1.4
		dc.DrawString(l.text, pad, y-l.style.size*0.4)
		y += l.style.after
	}
	return dc.Image(), nil
}

func (r *Rasterizer) style(b render.Block) (style, string) {
	pt := func(f *truetype.Font, size float64, c color.Color, after float64) style {
		px := size * r.Scale
		return style{
			face:  truetype.NewFace(f, &truetype.Options{Size: px}),
			size:  px,
			color: c,
			after: after * r.Scale,
		}
	}
	switch b.Kind {
	case render.BlockHeading:
		if b.Level <= 1 {
			return pt(r.bold, 20, color.Black, 14), b.Text
		}
		return pt(r.bold, 15, color.Black, 10), b.Text
	case render.BlockMeta:
		return pt(r.regular, 11, color.Gray{Y: 0x55}, 6), b.Text
	case render.BlockField:
		return pt(r.regular, 12, color.Black, 4), b.Label + ": " + b.Text
	default:
		return pt(r.regular, 12, color.Black, 10), b.Text
	}
}
