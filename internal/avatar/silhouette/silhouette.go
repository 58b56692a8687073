// Package silhouette renders the terminal avatar placeholder: a neutral
// head-and-shoulders figure on a flat background. It is the last stop of
// the fallback chain and never fails, whatever the request looks like.
package silhouette

import (
	"bytes"
	"image/color"

	"github.com/fogleman/gg"

	"shenfen/internal/avatar"
)

const (
	minDim = 64
	maxDim = 4096
)

var (
	backgroundColor = color.NRGBA{R: 226, G: 229, B: 233, A: 255}
	figureColor     = color.NRGBA{R: 148, G: 155, B: 164, A: 255}
)

// Renderer draws the placeholder figure.
type Renderer struct{}

// New creates a Renderer.
func New() *Renderer {
	return &Renderer{}
}

// Render returns the placeholder PNG at the requested size, clamped into a
// sane range. It ignores seed and gender: every placeholder looks the same.
func (r *Renderer) Render(req avatar.Request) []byte {
	w := clamp(req.Width)
	h := clamp(req.Height)

	dc := gg.NewContext(w, h)
	dc.SetColor(backgroundColor)
	dc.Clear()

	fw, fh := float64(w), float64(h)
	unit := fw
	if fh < fw {
		unit = fh
	}

	dc.SetColor(figureColor)
	dc.DrawCircle(fw/2, fh*0.32, unit*0.18)
	dc.Fill()
	dc.DrawEllipse(fw/2, fh*0.82, fw*0.34, fh*0.28)
	dc.Fill()

	var buf bytes.Buffer
	// Encoding a valid RGBA into memory cannot fail.
	_ = dc.EncodePNG(&buf)
	return buf.Bytes()
}

func clamp(v int) int {
	if v < minDim {
		return minDim
	}
	if v > maxDim {
		return maxDim
	}
	return v
}
