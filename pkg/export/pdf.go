package export

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"io"

	"github.com/go-pdf/fpdf"
)

// TopMargin is the vertical offset of the image on the page, in mm.
const TopMargin = 10

// Placement computes where an image of iw x ih lands on a pw x ph page:
// scaled by min(pw/iw, ph/ih), centered horizontally, TopMargin from the top.
func Placement(pw, ph, iw, ih float64) (x, y, w, h float64) {
	ratio := min(pw/iw, ph/ih)
	w, h = iw*ratio, ih*ratio
	return (pw - w) / 2, TopMargin, w, h
}

// WritePDF embeds img into a single A4 portrait page.
func WritePDF(img image.Image, w io.Writer) error {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return fmt.Errorf("failed to encode PNG: %w", err)
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()

	b := img.Bounds()
	pw, ph := pdf.GetPageSize()
	x, y, iw, ih := Placement(pw, ph, float64(b.Dx()), float64(b.Dy()))

	opts := fpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader("view", opts, &buf)
	pdf.ImageOptions("view", x, y, iw, ih, false, opts, 0, "")

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("failed to write PDF: %w", err)
	}
	return nil
}
