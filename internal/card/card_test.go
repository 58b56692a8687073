package card_test

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"shenfen/internal/avatar"
	"shenfen/internal/card"
	"shenfen/internal/identity/models"
	dErrors "shenfen/pkg/domain-errors"
)

// runeWidth builds a measure function where every rune is perRune wide,
// which makes break points exact in tests.
func runeWidth(perRune float64) func(string) float64 {
	return func(s string) float64 {
		return perRune * float64(len([]rune(s)))
	}
}

func TestSplitAddressKeepsShortAddressOnOneLine(t *testing.T) {
	lines := card.SplitAddress(runeWidth(10), "北京市东城区", 820, 2)

	assert.Equal(t, []string{"北京市东城区"}, lines)
}

func TestSplitAddressBreaksAtWidestFit(t *testing.T) {
	lines := card.SplitAddress(runeWidth(10), "一二三四五六七八", 50, 2)

	require.Len(t, lines, 2)
	assert.Equal(t, "一二三四五", lines[0])
	assert.Equal(t, "六七八", lines[1])
	assert.Equal(t, "一二三四五六七八", strings.Join(lines, ""))
}

func TestSplitAddressBlankInputYieldsOneEmptyLine(t *testing.T) {
	assert.Equal(t, []string{""}, card.SplitAddress(runeWidth(10), "   ", 820, 2))
	assert.Equal(t, []string{""}, card.SplitAddress(runeWidth(10), "", 820, 2))
}

func TestSplitAddressDropsOverflowPastLastLine(t *testing.T) {
	lines := card.SplitAddress(runeWidth(10), "一二三四五六七八九十拾壹", 50, 2)

	require.Len(t, lines, 2)
	assert.Equal(t, "一二三四五六七八九十", strings.Join(lines, ""))
}

func TestSplitAddressForcesOneRunePerLineWhenNothingFits(t *testing.T) {
	lines := card.SplitAddress(runeWidth(10), "中华人民共和国", 5, 3)

	require.Len(t, lines, 3)
	for _, line := range lines {
		assert.Len(t, []rune(line), 1)
	}
}

type stubAvatars struct {
	png     []byte
	backend avatar.Backend
}

func (s stubAvatars) Generate(context.Context, avatar.Request) avatar.Result {
	return avatar.Result{PNG: s.png, Backend: s.backend}
}

// RendererSuite exercises card compositing end to end against decoded
// output pixels.
//
// Justification: the renderer is pure geometry; a broken anchor or a
// skipped paste produces a legible-looking PNG that is silently wrong.
// Sampling the avatar window before and after compositing catches that
// class of regression without depending on font rasterization details.
type RendererSuite struct {
	suite.Suite

	ctx context.Context
	rec *models.IdentityRecord
}

func TestRendererSuite(t *testing.T) {
	suite.Run(t, new(RendererSuite))
}

func (s *RendererSuite) SetupTest() {
	s.ctx = context.Background()
	s.rec = &models.IdentityRecord{
		Name:       "王小明",
		Gender:     models.GenderMale,
		Ethnicity:  "汉族",
		Birthdate:  "1993-05-12",
		Age:        32,
		NationalID: "110101199305123416",
		Address:    "北京市东城区长安街1号院3号楼2单元501室",
		HeightCM:   175,
		WeightKG:   68,
	}
}

func (s *RendererSuite) decode(data []byte) *image.NRGBA {
	img, err := png.Decode(bytes.NewReader(data))
	s.Require().NoError(err)
	return imaging.Clone(img)
}

func solidPNG(t *testing.T, w, h int, c color.NRGBA) []byte {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func (s *RendererSuite) TestBlankTemplateDimensions() {
	r := card.New()

	out, err := r.Render(s.ctx, s.rec)
	s.Require().NoError(err)

	img := s.decode(out.PNG)
	s.Equal(2022, img.Bounds().Dx())
	s.Equal(1640, img.Bounds().Dy())
	s.Empty(out.Backend)
}

func (s *RendererSuite) TestAvatarCompositedIntoPhotoWindow() {
	red := solidPNG(s.T(), 500, 670, color.NRGBA{R: 255, A: 255})
	r := card.New(card.WithAvatarSource(stubAvatars{png: red, backend: avatar.BackendProceduralFace}))

	out, err := r.Render(s.ctx, s.rec)
	s.Require().NoError(err)

	img := s.decode(out.PNG)
	sample := img.NRGBAAt(1750, 1025)
	s.Greater(int(sample.R), 200)
	s.Less(int(sample.B), 100)
	s.Equal(avatar.BackendProceduralFace, out.Backend)
}

func (s *RendererSuite) TestPhotoWindowStaysBlankWithoutAvatarSource() {
	r := card.New()

	out, err := r.Render(s.ctx, s.rec)
	s.Require().NoError(err)

	img := s.decode(out.PNG)
	sample := img.NRGBAAt(1750, 1025)
	s.Greater(int(sample.B), 200)
}

func (s *RendererSuite) TestUndersizedAvatarIsScaledUp() {
	red := solidPNG(s.T(), 50, 67, color.NRGBA{R: 255, A: 255})
	r := card.New(card.WithAvatarSource(stubAvatars{png: red, backend: avatar.BackendSilhouette}))

	out, err := r.Render(s.ctx, s.rec)
	s.Require().NoError(err)

	img := s.decode(out.PNG)
	sample := img.NRGBAAt(1999, 1359)
	s.Greater(int(sample.R), 200, "scaled avatar should fill the photo window corner")
}

func (s *RendererSuite) TestCustomTemplateSetsOutputSize() {
	dir := s.T().TempDir()
	tpl := solidPNG(s.T(), 300, 200, color.NRGBA{R: 255, G: 255, B: 255, A: 255})
	s.Require().NoError(os.WriteFile(filepath.Join(dir, "empty.png"), tpl, 0o644))

	r := card.New(card.WithAssetsDir(dir))

	out, err := r.Render(s.ctx, s.rec)
	s.Require().NoError(err)

	img := s.decode(out.PNG)
	s.Equal(300, img.Bounds().Dx())
	s.Equal(200, img.Bounds().Dy())
}

func (s *RendererSuite) TestNilRecordFails() {
	r := card.New()

	_, err := r.Render(s.ctx, nil)

	s.Require().Error(err)
	s.True(dErrors.HasCode(err, dErrors.CodeBadRequest))
}

func (s *RendererSuite) TestRenderToFileWritesCard() {
	r := card.New()
	path := filepath.Join(s.T().TempDir(), "cards", "one.png")

	out, err := r.RenderToFile(s.ctx, s.rec, path)
	s.Require().NoError(err)

	s.Equal(path, out.Path)
	info, err := os.Stat(path)
	s.Require().NoError(err)
	s.Positive(info.Size())
}

func (s *RendererSuite) TestRenderBatchWritesEveryRecord() {
	r := card.New(card.WithWorkers(2))
	dir := s.T().TempDir()

	recs := make([]*models.IdentityRecord, 3)
	for i := range recs {
		rec := *s.rec
		rec.NationalID = s.rec.NationalID[:17] + string(rune('0'+i))
		recs[i] = &rec
	}

	out, err := r.RenderBatch(s.ctx, recs, dir)
	s.Require().NoError(err)
	s.Require().Len(out, 3)

	for i, c := range out {
		s.Contains(c.Path, recs[i].NationalID)
		_, err := os.Stat(c.Path)
		s.Require().NoError(err)
	}
}

func (s *RendererSuite) TestRenderBatchStopsOnCanceledContext() {
	r := card.New()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := r.RenderBatch(ctx, []*models.IdentityRecord{s.rec}, s.T().TempDir())

	s.Require().Error(err)
	s.True(dErrors.HasCode(err, dErrors.CodeTimeout))
}
