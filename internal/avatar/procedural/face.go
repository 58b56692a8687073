// Package procedural draws the deterministic portrait fallback: a stylized
// bust on a plain studio background, fully derived from the request seed.
// The same seed always yields byte-identical PNG output, which keeps batch
// generation reproducible when the AI backend is absent.
package procedural

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"math"
	"math/rand"

	"github.com/fogleman/gg"

	"shenfen/internal/avatar"
	"shenfen/internal/identity/models"
	dErrors "shenfen/pkg/domain-errors"
)

const (
	maxDim     = 4096
	noiseSigma = 3.0
)

var skinTones = []color.NRGBA{
	{R: 255, G: 224, B: 189, A: 255},
	{R: 240, G: 200, B: 160, A: 255},
	{R: 220, G: 175, B: 140, A: 255},
	{R: 190, G: 145, B: 110, A: 255},
	{R: 160, G: 115, B: 85, A: 255},
}

var hairColors = []color.NRGBA{
	{R: 0, G: 0, B: 0, A: 255},
	{R: 44, G: 34, B: 43, A: 255},
	{R: 80, G: 68, B: 68, A: 255},
	{R: 100, G: 85, B: 75, A: 255},
	{R: 180, G: 165, B: 140, A: 255},
	{R: 128, G: 128, B: 128, A: 255},
	{R: 220, G: 220, B: 220, A: 255},
}

var clothingColors = []color.NRGBA{
	{R: 60, G: 60, B: 80, A: 255},
	{R: 80, G: 60, B: 60, A: 255},
	{R: 60, G: 80, B: 60, A: 255},
	{R: 70, G: 70, B: 70, A: 255},
	{R: 100, G: 80, B: 60, A: 255},
	{R: 90, G: 90, B: 110, A: 255},
}

var backgroundColors = []color.NRGBA{
	{R: 200, G: 220, B: 240, A: 255},
	{R: 240, G: 240, B: 240, A: 255},
	{R: 220, G: 240, B: 220, A: 255},
	{R: 255, G: 255, B: 255, A: 255},
}

var (
	eyeColor   = color.NRGBA{R: 40, G: 30, B: 30, A: 255}
	mouthColor = color.NRGBA{R: 180, G: 100, B: 100, A: 255}
)

// Face renders seeded portrait illustrations.
type Face struct{}

// New creates a Face renderer.
func New() *Face {
	return &Face{}
}

// Render draws the portrait for req. Every color pick and the grain pass
// come from one seeded stream, so output is a pure function of the request.
func (f *Face) Render(req avatar.Request) ([]byte, error) {
	w, h := req.Width, req.Height
	if w <= 0 || h <= 0 || w > maxDim || h > maxDim {
		return nil, dErrors.New(dErrors.CodeRenderFailed, fmt.Sprintf("face render size %dx%d out of range", w, h))
	}

	rng := rand.New(rand.NewSource(req.Seed))

	gender := req.Gender
	if !gender.Valid() {
		if rng.Intn(2) == 0 {
			gender = models.GenderMale
		} else {
			gender = models.GenderFemale
		}
	}
	bg := pick(rng, backgroundColors)
	skin := pick(rng, skinTones)
	hair := pick(rng, hairColors)
	clothing := pick(rng, clothingColors)

	dc := gg.NewContext(w, h)
	dc.SetColor(bg)
	dc.Clear()

	centerX := w / 2
	drawBust(dc, w, h, centerX, skin, clothing)

	faceWidth := w / 3
	faceHeight := h / 3
	faceTop := h / 6
	dc.SetColor(skin)
	dc.DrawEllipse(float64(centerX), float64(faceTop)+float64(faceHeight)/2, float64(faceWidth)/2, float64(faceHeight)/2)
	dc.Fill()

	drawHair(dc, centerX, faceTop, faceWidth, faceHeight, hair, gender)
	drawFeatures(dc, rng, centerX, faceTop, faceWidth, faceHeight, skin)

	img, ok := dc.Image().(*image.RGBA)
	if !ok {
		return nil, dErrors.New(dErrors.CodeRenderFailed, "face render produced unexpected image type")
	}
	addGrain(rng, img)

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeRenderFailed, "encode face png")
	}
	return buf.Bytes(), nil
}

// drawBust paints the neck, shoulders and collar below the face.
func drawBust(dc *gg.Context, w, h, centerX int, skin, clothing color.NRGBA) {
	neckWidth := w / 5
	neckHeight := h / 8
	neckTop := h * 6 / 10
	dc.SetColor(skin)
	dc.DrawRectangle(float64(centerX-neckWidth/2), float64(neckTop), float64(neckWidth), float64(neckHeight))
	dc.Fill()

	shoulderWidth := w * 3 / 4
	shoulderY := neckTop + neckHeight - 10
	dc.SetColor(clothing)
	dc.MoveTo(float64(centerX-shoulderWidth/2), float64(h))
	dc.LineTo(float64(centerX-w/6), float64(shoulderY))
	dc.LineTo(float64(centerX+w/6), float64(shoulderY))
	dc.LineTo(float64(centerX+shoulderWidth/2), float64(h))
	dc.ClosePath()
	dc.Fill()

	collarWidth := w / 4
	collarHeight := h / 15
	dc.SetColor(lighten(clothing, 20))
	dc.MoveTo(float64(centerX-collarWidth/2), float64(shoulderY))
	dc.LineTo(float64(centerX), float64(shoulderY+collarHeight))
	dc.LineTo(float64(centerX+collarWidth/2), float64(shoulderY))
	dc.ClosePath()
	dc.Fill()
}

// drawHair paints the crown and the gender-differentiated side hair: long
// side panels for female portraits, short trimmed ones for male.
func drawHair(dc *gg.Context, centerX, faceTop, faceWidth, faceHeight int, hair color.NRGBA, gender models.Gender) {
	hairHeight := faceHeight / 3
	hairTop := faceTop - hairHeight/2
	crownBottom := faceTop + faceHeight/4

	dc.SetColor(hair)
	cx := float64(centerX)
	cy := (float64(hairTop) + float64(crownBottom)) / 2
	rx := float64(faceWidth)/2 + 10
	ry := (float64(crownBottom) - float64(hairTop)) / 2
	dc.DrawEllipse(cx, cy, rx, ry)
	dc.Fill()

	sideWidth := faceWidth / 8
	left := centerX - faceWidth/2
	right := centerX + faceWidth/2
	if gender == models.GenderFemale {
		bottom := faceTop + faceHeight
		dc.DrawRectangle(float64(left-sideWidth), float64(hairTop), float64(sideWidth), float64(bottom-hairTop))
		dc.Fill()
		dc.DrawRectangle(float64(right), float64(hairTop), float64(sideWidth), float64(bottom-hairTop))
		dc.Fill()
		return
	}
	bottom := faceTop + faceHeight/2
	dc.DrawRectangle(float64(left-sideWidth/2), float64(hairTop), float64(sideWidth/2), float64(bottom-hairTop))
	dc.Fill()
	dc.DrawRectangle(float64(right), float64(hairTop), float64(sideWidth/2), float64(bottom-hairTop))
	dc.Fill()
}

// drawFeatures paints eyes, eyebrows, nose and mouth. The eyebrow color is
// drawn from the darker half of the hair palette.
func drawFeatures(dc *gg.Context, rng *rand.Rand, centerX, faceTop, faceWidth, faceHeight int, skin color.NRGBA) {
	eyeY := faceTop + faceHeight/3
	eyeOffset := faceWidth / 5
	eyeSize := faceWidth / 12

	dc.SetColor(eyeColor)
	for _, offset := range []int{-eyeOffset, eyeOffset} {
		ex := float64(centerX + offset)
		dc.DrawEllipse(ex, float64(eyeY), float64(eyeSize)/2, float64(eyeSize)/3)
		dc.Fill()
	}

	eyebrowY := eyeY - faceHeight/8
	eyebrowLength := faceWidth / 6
	eyebrowThickness := max(2, faceHeight/30)
	dc.SetColor(pick(rng, hairColors[:4]))
	dc.SetLineWidth(float64(eyebrowThickness))
	for _, offset := range []int{-eyeOffset, eyeOffset} {
		ex := float64(centerX + offset)
		dc.DrawLine(ex-float64(eyebrowLength)/2, float64(eyebrowY), ex+float64(eyebrowLength)/2, float64(eyebrowY))
		dc.Stroke()
	}

	noseY := faceTop + faceHeight/2
	noseLength := faceHeight / 6
	dc.SetColor(darken(skin, 20))
	dc.SetLineWidth(float64(max(2, faceWidth/25)))
	dc.DrawLine(float64(centerX), float64(noseY), float64(centerX), float64(noseY+noseLength))
	dc.Stroke()

	mouthY := faceTop + faceHeight*2/3
	mouthWidth := faceWidth / 4
	dc.SetColor(mouthColor)
	dc.SetLineWidth(float64(max(2, faceHeight/25)))
	dc.DrawEllipticalArc(float64(centerX), float64(mouthY), float64(mouthWidth)/2, float64(faceHeight)/12, 0, math.Pi)
	dc.Stroke()
}

// addGrain perturbs every color channel with seeded gaussian noise so flat
// fills read as photographic texture rather than vector art.
func addGrain(rng *rand.Rand, img *image.RGBA) {
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		i := (y - b.Min.Y) * img.Stride
		for x := b.Min.X; x < b.Max.X; x++ {
			for c := 0; c < 3; c++ {
				v := int(float64(img.Pix[i+c]) + rng.NormFloat64()*noiseSigma)
				if v < 0 {
					v = 0
				} else if v > 255 {
					v = 255
				}
				img.Pix[i+c] = uint8(v)
			}
			i += 4
		}
	}
}

func pick(rng *rand.Rand, palette []color.NRGBA) color.NRGBA {
	return palette[rng.Intn(len(palette))]
}

func lighten(c color.NRGBA, d uint8) color.NRGBA {
	return color.NRGBA{R: satAdd(c.R, d), G: satAdd(c.G, d), B: satAdd(c.B, d), A: c.A}
}

func darken(c color.NRGBA, d uint8) color.NRGBA {
	return color.NRGBA{R: satSub(c.R, d), G: satSub(c.G, d), B: satSub(c.B, d), A: c.A}
}

func satAdd(v, d uint8) uint8 {
	if v > 255-d {
		return 255
	}
	return v + d
}

func satSub(v, d uint8) uint8 {
	if v < d {
		return 0
	}
	return v - d
}
