package normalize_test

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"shenfen/internal/avatar/normalize"
)

// NormalizeSuite exercises portrait reframing.
//
// Justification: the card compositor pastes the portrait into a fixed
// window, so an off-axis or badly framed image corrupts every rendered
// card. These tests pin the head margin, the EXIF orientation handling and
// the opaque-image resize path.
type NormalizeSuite struct {
	suite.Suite

	norm *normalize.Normalizer
}

func TestNormalizeSuite(t *testing.T) {
	suite.Run(t, new(NormalizeSuite))
}

func (s *NormalizeSuite) SetupTest() {
	s.norm = normalize.New()
}

func (s *NormalizeSuite) TestSubjectFramedNearTop() {
	src := image.NewNRGBA(image.Rect(0, 0, 500, 670))
	fillRect(src, 200, 260, 320, 660, color.NRGBA{R: 30, G: 30, B: 30, A: 255})

	out, err := s.norm.Normalize(encodePNG(s.T(), src), 500, 670)
	s.Require().NoError(err)

	img := decodeNRGBA(s.T(), out)
	s.Equal(500, img.Bounds().Dx())
	s.Equal(670, img.Bounds().Dy())

	top := alphaTopRow(img)
	s.Require().GreaterOrEqual(top, 0, "subject must survive the reframe")
	margin := 670 * 0.08
	s.LessOrEqual(top, int(margin))
}

func (s *NormalizeSuite) TestOpaqueImageResizesToTarget() {
	src := image.NewNRGBA(image.Rect(0, 0, 1200, 800))
	fillRect(src, 0, 0, 1200, 800, color.NRGBA{R: 255, A: 255})

	out, err := s.norm.Normalize(encodePNG(s.T(), src), 500, 670)
	s.Require().NoError(err)

	img := decodeNRGBA(s.T(), out)
	s.Equal(500, img.Bounds().Dx())
	s.Equal(670, img.Bounds().Dy())
}

func (s *NormalizeSuite) TestRotatedJPEGComesOutUpright() {
	// Landscape frame, red left half, blue right half. Orientation 6 marks
	// it "rotate 90 CW to display": upright, the red half is on top.
	jpg := withOrientation(encodeSplitJPEG(s.T()), 6)

	out, err := s.norm.Normalize(jpg, 500, 670)
	s.Require().NoError(err)

	img := decodeNRGBA(s.T(), out)
	s.assertReddish(sampleAt(img, 0.5, 0.1))
	s.assertBlueish(sampleAt(img, 0.5, 0.9))
}

func (s *NormalizeSuite) TestFlippedJPEGComesOutUpright() {
	// Orientation 3 is a 180 degree rotation: the red half lands on the
	// right once oriented.
	jpg := withOrientation(encodeSplitJPEG(s.T()), 3)

	out, err := s.norm.Normalize(jpg, 500, 670)
	s.Require().NoError(err)

	img := decodeNRGBA(s.T(), out)
	s.assertBlueish(sampleAt(img, 0.1, 0.5))
	s.assertReddish(sampleAt(img, 0.9, 0.5))
}

func (s *NormalizeSuite) TestUntaggedJPEGKeepsItsLayout() {
	jpg := encodeSplitJPEG(s.T())

	out, err := s.norm.Normalize(jpg, 500, 670)
	s.Require().NoError(err)

	img := decodeNRGBA(s.T(), out)
	s.assertReddish(sampleAt(img, 0.1, 0.5))
	s.assertBlueish(sampleAt(img, 0.9, 0.5))
}

func (s *NormalizeSuite) TestFullyTransparentImageStillRenders() {
	src := image.NewNRGBA(image.Rect(0, 0, 300, 400))

	out, err := s.norm.Normalize(encodePNG(s.T(), src), 500, 670)
	s.Require().NoError(err)

	img := decodeNRGBA(s.T(), out)
	s.Equal(500, img.Bounds().Dx())
	s.Equal(670, img.Bounds().Dy())
}

func (s *NormalizeSuite) TestGarbageBytesFail() {
	_, err := s.norm.Normalize([]byte("not an image"), 500, 670)
	s.Require().Error(err)
	s.Contains(err.Error(), "decode image")
}

func (s *NormalizeSuite) TestInvalidTargetSizeFails() {
	src := image.NewNRGBA(image.Rect(0, 0, 10, 10))

	_, err := s.norm.Normalize(encodePNG(s.T(), src), 0, 670)
	s.Require().Error(err)
	s.Contains(err.Error(), "invalid target size")
}

func (s *NormalizeSuite) assertReddish(c color.NRGBA) {
	s.T().Helper()
	s.Greater(int(c.R), 150, "expected a red sample, got %+v", c)
	s.Less(int(c.B), 100, "expected a red sample, got %+v", c)
}

func (s *NormalizeSuite) assertBlueish(c color.NRGBA) {
	s.T().Helper()
	s.Greater(int(c.B), 150, "expected a blue sample, got %+v", c)
	s.Less(int(c.R), 100, "expected a blue sample, got %+v", c)
}

func fillRect(img *image.NRGBA, x0, y0, x1, y1 int, c color.NRGBA) {
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
}

func encodePNG(t *testing.T, img image.Image) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

// encodeSplitJPEG returns a 20x10 JPEG whose left half is red and right
// half is blue.
func encodeSplitJPEG(t *testing.T) []byte {
	t.Helper()
	src := image.NewNRGBA(image.Rect(0, 0, 20, 10))
	fillRect(src, 0, 0, 10, 10, color.NRGBA{R: 255, A: 255})
	fillRect(src, 10, 0, 20, 10, color.NRGBA{B: 255, A: 255})

	var buf bytes.Buffer
	require.NoError(t, jpeg.Encode(&buf, src, &jpeg.Options{Quality: 95}))
	return buf.Bytes()
}

// withOrientation splices a minimal EXIF APP1 segment carrying the given
// orientation right after the JPEG start-of-image marker.
func withOrientation(jpg []byte, orientation byte) []byte {
	tiff := []byte{
		'I', 'I', 0x2A, 0x00, // little-endian TIFF header
		0x08, 0x00, 0x00, 0x00, // offset of IFD0
		0x01, 0x00, // one directory entry
		0x12, 0x01, // Orientation tag
		0x03, 0x00, // SHORT
		0x01, 0x00, 0x00, 0x00, // one value
		orientation, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, // no next IFD
	}
	payload := append([]byte("Exif\x00\x00"), tiff...)
	segLen := len(payload) + 2

	out := make([]byte, 0, len(jpg)+4+len(payload))
	out = append(out, jpg[:2]...)
	out = append(out, 0xFF, 0xE1, byte(segLen>>8), byte(segLen&0xFF))
	out = append(out, payload...)
	out = append(out, jpg[2:]...)
	return out
}

func decodeNRGBA(t *testing.T, data []byte) *image.NRGBA {
	t.Helper()
	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	return imaging.Clone(img)
}

func sampleAt(img *image.NRGBA, fx, fy float64) color.NRGBA {
	b := img.Bounds()
	x := b.Min.X + int(fx*float64(b.Dx()))
	y := b.Min.Y + int(fy*float64(b.Dy()))
	return img.NRGBAAt(x, y)
}

// alphaTopRow returns the first row containing a visible pixel, or -1 for a
// fully transparent image.
func alphaTopRow(img *image.NRGBA) int {
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if img.NRGBAAt(x, y).A > 0 {
				return y
			}
		}
	}
	return -1
}
