// Package normalize reframes backend portraits onto the identity-photo
// canvas: EXIF orientation is applied first, then the subject (located by
// its alpha silhouette) is cropped and scaled so its head sits near the top
// of the frame with a small margin.
package normalize

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"math"

	"github.com/disintegration/imaging"
	"github.com/rwcarlsen/goexif/exif"
)

// headroom is the fraction of the crop height reserved above the subject.
// It sits well inside the 8% framing tolerance the card layout assumes, so
// rounding and resampling cannot push the subject out of tolerance.
const headroom = 0.05

// Normalizer converts an arbitrary backend image into an upright portrait
// of the requested dimensions.
type Normalizer struct{}

// New creates a Normalizer.
func New() *Normalizer {
	return &Normalizer{}
}

// Normalize decodes data, orients it per its EXIF tag, reframes the subject
// and returns the result PNG-encoded at width x height.
func (n *Normalizer) Normalize(data []byte, width, height int) ([]byte, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("normalize: invalid target size %dx%d", width, height)
	}

	img, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("normalize: decode image: %w", err)
	}
	img = applyOrientation(img, orientationOf(data))

	// Clone yields an NRGBA copy with bounds anchored at the origin.
	nrgba := imaging.Clone(img)
	subject := alphaBounds(nrgba)
	window := cropWindow(nrgba.Bounds(), subject, width, height)
	out := imaging.Resize(imaging.Crop(nrgba, window), width, height, imaging.Lanczos)

	var buf bytes.Buffer
	if err := png.Encode(&buf, out); err != nil {
		return nil, fmt.Errorf("normalize: encode png: %w", err)
	}
	return buf.Bytes(), nil
}

// orientationOf reads the EXIF orientation tag. Images without EXIF data,
// which includes every PNG, report the identity orientation.
func orientationOf(data []byte) int {
	meta, err := exif.Decode(bytes.NewReader(data))
	if err != nil {
		return 1
	}
	tag, err := meta.Get(exif.Orientation)
	if err != nil {
		return 1
	}
	v, err := tag.Int(0)
	if err != nil || v < 1 || v > 8 {
		return 1
	}
	return v
}

// applyOrientation maps the eight EXIF orientations onto their upright
// transforms. The imaging rotations are counter-clockwise, so EXIF's
// "rotate 90 CW to display" becomes Rotate270 here.
func applyOrientation(img image.Image, orientation int) image.Image {
	switch orientation {
	case 2:
		return imaging.FlipH(img)
	case 3:
		return imaging.Rotate180(img)
	case 4:
		return imaging.FlipV(img)
	case 5:
		return imaging.Transpose(img)
	case 6:
		return imaging.Rotate270(img)
	case 7:
		return imaging.Transverse(img)
	case 8:
		return imaging.Rotate90(img)
	default:
		return img
	}
}

// alphaBounds returns the bounding box of non-transparent pixels. Opaque
// images, and images with no visible pixels at all, yield the full bounds.
func alphaBounds(img *image.NRGBA) image.Rectangle {
	b := img.Bounds()
	minX, minY := b.Max.X, b.Max.Y
	maxX, maxY := b.Min.X, b.Min.Y
	found := false
	for y := b.Min.Y; y < b.Max.Y; y++ {
		row := img.Pix[(y-b.Min.Y)*img.Stride:]
		for x := b.Min.X; x < b.Max.X; x++ {
			if row[(x-b.Min.X)*4+3] == 0 {
				continue
			}
			found = true
			if x < minX {
				minX = x
			}
			if x >= maxX {
				maxX = x + 1
			}
			if y < minY {
				minY = y
			}
			if y >= maxY {
				maxY = y + 1
			}
		}
	}
	if !found {
		return b
	}
	return image.Rect(minX, minY, maxX, maxY)
}

// cropWindow computes the crop that frames subject inside bounds at the
// output aspect ratio, keeping the headroom margin above the subject.
func cropWindow(bounds, subject image.Rectangle, outW, outH int) image.Rectangle {
	ch := int(math.Ceil(float64(subject.Dy()) / (1 - headroom)))
	if ch > bounds.Dy() {
		ch = bounds.Dy()
	}

	cw := int(math.Round(float64(ch) * float64(outW) / float64(outH)))
	if cw > bounds.Dx() {
		cw = bounds.Dx()
		ch = int(math.Round(float64(cw) * float64(outH) / float64(outW)))
		if ch > bounds.Dy() {
			ch = bounds.Dy()
		}
	}
	if cw < 1 {
		cw = 1
	}
	if ch < 1 {
		ch = 1
	}

	top := subject.Min.Y - int(headroom*float64(ch))
	if top < 0 {
		top = 0
	}
	if top+ch > bounds.Max.Y {
		top = bounds.Max.Y - ch
	}

	left := (subject.Min.X+subject.Max.X)/2 - cw/2
	if left < bounds.Min.X {
		left = bounds.Min.X
	}
	if left+cw > bounds.Max.X {
		left = bounds.Max.X - cw
	}

	return image.Rect(left, top, left+cw, top+ch)
}
