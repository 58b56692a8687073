// Package card composites identity records onto a simulated Chinese ID-card
// image: template background, printed labels, the record's text fields and
// the portrait produced by the avatar chain. One renderer instance is safe
// for concurrent use; fonts and the template are loaded once at startup.
package card

import (
	"bytes"
	"context"
	"fmt"
	"hash/fnv"
	"image"
	"image/png"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"strconv"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"
	"golang.org/x/image/font"
	"golang.org/x/sync/errgroup"

	"shenfen/internal/avatar"
	"shenfen/internal/identity/models"
	dErrors "shenfen/pkg/domain-errors"
)

const defaultRenderWorkers = 4

// AvatarSource produces the portrait pasted into the card's photo window.
// The fallback chain satisfies it.
type AvatarSource interface {
	Generate(ctx context.Context, req avatar.Request) avatar.Result
}

// RenderedCard is one composited card.
type RenderedCard struct {
	PNG   []byte
	Image image.Image
	// Path is set when the card was written to disk.
	Path string
	// Backend names the avatar backend that produced the portrait, empty
	// when the renderer has no avatar source.
	Backend avatar.Backend
}

// Renderer composites cards.
type Renderer struct {
	assetsDir string
	avatars   AvatarSource
	logger    *slog.Logger
	workers   int

	fonts    *fontSet
	template image.Image
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithAssetsDir points at the directory holding the template image and the
// card fonts. Without it the renderer draws its blank fallback template
// with builtin faces.
func WithAssetsDir(dir string) Option {
	return func(r *Renderer) {
		r.assetsDir = dir
	}
}

// WithAvatarSource enables portrait compositing.
func WithAvatarSource(src AvatarSource) Option {
	return func(r *Renderer) {
		r.avatars = src
	}
}

// WithLogger attaches a structured logger.
func WithLogger(l *slog.Logger) Option {
	return func(r *Renderer) {
		r.logger = l
	}
}

// WithWorkers bounds batch rendering concurrency.
func WithWorkers(n int) Option {
	return func(r *Renderer) {
		if n > 0 {
			r.workers = n
		}
	}
}

// New creates a Renderer. Fonts and the template load eagerly so asset
// problems surface at startup, as a warning and a fallback rather than a
// failure.
func New(opts ...Option) *Renderer {
	r := &Renderer{workers: defaultRenderWorkers}
	for _, opt := range opts {
		opt(r)
	}
	r.fonts = loadFonts(r.assetsDir, r.logger)
	r.template = r.loadTemplate()
	return r
}

func (r *Renderer) loadTemplate() image.Image {
	if r.assetsDir != "" {
		path := filepath.Join(r.assetsDir, templateFile)
		img, err := imaging.Open(path)
		if err == nil {
			return img
		}
		if r.logger != nil {
			r.logger.Warn("card template not available, drawing blank card",
				"path", path,
				"error", err,
			)
		}
	}
	return blankTemplate(r.fonts)
}

// Render composites one card. The output size follows the template; text
// that falls outside a small custom template is clipped, matching how the
// layout treats any template it is given.
func (r *Renderer) Render(ctx context.Context, rec *models.IdentityRecord) (*RenderedCard, error) {
	if rec == nil {
		return nil, dErrors.New(dErrors.CodeBadRequest, "card render requires a record")
	}

	dc := gg.NewContextForImage(r.template)

	var backend avatar.Backend
	if r.avatars != nil {
		res := r.avatars.Generate(ctx, avatar.Request{
			Gender:    rec.Gender,
			AgeBucket: avatar.BucketForAge(rec.Age),
			Width:     avatarWidth,
			Height:    avatarHeight,
			Seed:      avatarSeed(rec),
			HeightCM:  rec.HeightCM,
			WeightKG:  int(math.Round(rec.WeightKG)),
		})
		portrait, err := imaging.Decode(bytes.NewReader(res.PNG))
		if err != nil {
			return nil, dErrors.Wrap(err, dErrors.CodeRenderFailed, "decode portrait image")
		}
		if portrait.Bounds().Dx() != avatarWidth || portrait.Bounds().Dy() != avatarHeight {
			portrait = imaging.Resize(portrait, avatarWidth, avatarHeight, imaging.Lanczos)
		}
		dc.DrawImage(portrait, avatarLeft, avatarTop)
		backend = res.Backend
	}

	r.drawFields(dc, rec)

	img := dc.Image()
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeRenderFailed, "encode card png")
	}

	if r.logger != nil {
		r.logger.Debug("card rendered",
			"national_id", rec.NationalID,
			"avatar_backend", string(backend),
		)
	}
	return &RenderedCard{PNG: buf.Bytes(), Image: img, Backend: backend}, nil
}

// RenderToFile renders and writes the card, returning it with Path set.
func (r *Renderer) RenderToFile(ctx context.Context, rec *models.IdentityRecord, path string) (*RenderedCard, error) {
	card, err := r.Render(ctx, rec)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeRenderFailed, "create card directory")
	}
	if err := os.WriteFile(path, card.PNG, 0o644); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeRenderFailed, "write card file")
	}
	card.Path = path
	return card, nil
}

// RenderBatch renders every record into dir, in parallel. Slot order is
// preserved in the returned slice.
func (r *Renderer) RenderBatch(ctx context.Context, recs []*models.IdentityRecord, dir string) ([]*RenderedCard, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeRenderFailed, "create card directory")
	}

	out := make([]*RenderedCard, len(recs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.workers)
	for i, rec := range recs {
		i, rec := i, rec
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return dErrors.Wrap(err, dErrors.CodeTimeout, "card batch canceled")
			}
			card, err := r.RenderToFile(gctx, rec, filepath.Join(dir, cardFileName(rec, i)))
			if err != nil {
				return err
			}
			out[i] = card
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if r.logger != nil {
		r.logger.Info("card batch rendered",
			"count", len(recs),
			"dir", dir,
		)
	}
	return out, nil
}

func (r *Renderer) drawFields(dc *gg.Context, rec *models.IdentityRecord) {
	dc.SetColor(textColor)

	r.drawText(dc, r.fonts.name, rec.Name, nameLeft, nameTop)
	r.drawText(dc, r.fonts.normal, rec.Gender.Zh(), genderLeft, genderTop)
	r.drawText(dc, r.fonts.normal, rec.Ethnicity, ethnicityLeft, genderTop)

	if t, err := rec.BirthTime(); err == nil {
		r.drawText(dc, r.fonts.date, strconv.Itoa(t.Year()), yearLeft, birthTop)
		r.drawText(dc, r.fonts.date, strconv.Itoa(int(t.Month())), monthLeft, birthTop)
		r.drawText(dc, r.fonts.date, strconv.Itoa(t.Day()), dayLeft, birthTop)
	}

	dc.SetFontFace(r.fonts.normal)
	lines := SplitAddress(func(s string) float64 {
		w, _ := dc.MeasureString(s)
		return w
	}, rec.Address, addressMaxWidth, addressMaxLines)
	y := addressTop
	for _, line := range lines {
		r.drawText(dc, r.fonts.normal, line, addressLeft, y)
		y += addressLineStep
	}

	r.drawText(dc, r.fonts.id, rec.NationalID, idNumberLeft, idTop)
}

func (r *Renderer) drawText(dc *gg.Context, face font.Face, s string, x, y int) {
	if s == "" {
		return
	}
	dc.SetFontFace(face)
	dc.DrawString(s, float64(x), float64(y)+ascentOf(face))
}

// avatarSeed derives the portrait seed from the record's national id, so
// re-rendering a record reproduces its portrait.
func avatarSeed(rec *models.IdentityRecord) int64 {
	h := fnv.New64a()
	h.Write([]byte(rec.NationalID))
	return int64(h.Sum64())
}

func cardFileName(rec *models.IdentityRecord, i int) string {
	if rec != nil && rec.NationalID != "" {
		return fmt.Sprintf("idcard_%s.png", rec.NationalID)
	}
	return fmt.Sprintf("idcard_%03d.png", i)
}
