// Package identity exposes the generation facade the HTTP API and the CLI
// share. It validates request parameters, derives the seed, and delegates
// the actual work to the batch coordinator.
package identity

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"shenfen/internal/identity/assembler"
	"shenfen/internal/identity/batch"
	"shenfen/internal/identity/metrics"
	"shenfen/internal/identity/models"
	"shenfen/internal/refdata"
	dErrors "shenfen/pkg/domain-errors"
)

// MaxBatchSize bounds one generation request.
const MaxBatchSize = 10000

// GenerateParams describes one generation request. Zero values mean
// "unset": the seed derives from the wall clock, the gender is sampled,
// and the age range keeps the assembler's default.
type GenerateParams struct {
	Count  int
	Seed   int64
	Gender models.Gender
	MinAge int
	MaxAge int
	// RegionCode pins the address walk to the administrative division
	// with this 2, 4 or 6 digit code prefix.
	RegionCode string
}

func (p GenerateParams) validate() error {
	if p.Count < 1 || p.Count > MaxBatchSize {
		return dErrors.New(dErrors.CodeBadRequest,
			fmt.Sprintf("count must be between 1 and %d, got %d", MaxBatchSize, p.Count))
	}
	if p.Gender != "" && !p.Gender.Valid() {
		return dErrors.New(dErrors.CodeBadRequest,
			fmt.Sprintf("gender must be %q or %q", models.GenderMale, models.GenderFemale))
	}
	if p.MinAge < 0 || p.MaxAge < 0 {
		return dErrors.New(dErrors.CodeBadRequest, "age bounds must not be negative")
	}
	if p.MaxAge > 0 && p.MinAge > p.MaxAge {
		return dErrors.New(dErrors.CodeBadRequest,
			fmt.Sprintf("min_age %d exceeds max_age %d", p.MinAge, p.MaxAge))
	}
	if p.RegionCode != "" && !validRegionCode(p.RegionCode) {
		return dErrors.New(dErrors.CodeBadRequest,
			fmt.Sprintf("region code %q must be 2, 4 or 6 digits", p.RegionCode))
	}
	return nil
}

func validRegionCode(code string) bool {
	if len(code) != 2 && len(code) != 4 && len(code) != 6 {
		return false
	}
	for _, r := range code {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// Result is one completed generation: the records plus the seed that
// produced them, so callers can reproduce the batch.
type Result struct {
	Seed    int64
	Records []*models.IdentityRecord
}

// Service turns GenerateParams into batches. It is safe for concurrent
// use; each call builds its own coordinator over the shared tables.
type Service struct {
	ref     *refdata.Provider
	logger  *slog.Logger
	metrics *metrics.Metrics
	workers int
	clock   func() time.Time
}

// Option configures the Service.
type Option func(*Service)

// WithLogger sets the logger passed down to the batch coordinator.
func WithLogger(l *slog.Logger) Option {
	return func(s *Service) {
		s.logger = l
	}
}

// WithMetrics sets the generation metrics collector.
func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

// WithWorkers sets the drafting parallelism for batches.
func WithWorkers(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.workers = n
		}
	}
}

// WithClock replaces the wall clock used to derive seeds. Tests pin it.
func WithClock(clock func() time.Time) Option {
	return func(s *Service) {
		s.clock = clock
	}
}

// New creates the facade over the given reference tables. Panics if ref
// is nil - fail fast at startup.
func New(ref *refdata.Provider, opts ...Option) *Service {
	if ref == nil {
		panic("identity.New: reference data provider is required")
	}
	s := &Service{
		ref:     ref,
		workers: 4,
		clock:   time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Generate validates the params and produces the batch. The returned
// Result records the effective seed even when it was clock-derived, so
// the exact batch can be regenerated later.
func (s *Service) Generate(ctx context.Context, p GenerateParams) (*Result, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}

	seed := p.Seed
	if seed == 0 {
		seed = s.clock().UnixNano()
	}

	var asmOpts []assembler.Option
	if p.Gender != "" {
		asmOpts = append(asmOpts, assembler.WithGender(p.Gender))
	}
	if p.MinAge > 0 || p.MaxAge > 0 {
		asmOpts = append(asmOpts, assembler.WithAgeRange(p.MinAge, p.MaxAge))
	}
	if p.RegionCode != "" {
		asmOpts = append(asmOpts, assembler.WithRegionCode(p.RegionCode))
	}

	coordOpts := []batch.Option{batch.WithWorkers(s.workers)}
	if s.logger != nil {
		coordOpts = append(coordOpts, batch.WithLogger(s.logger))
	}
	if s.metrics != nil {
		coordOpts = append(coordOpts, batch.WithMetrics(s.metrics))
	}
	if len(asmOpts) > 0 {
		coordOpts = append(coordOpts, batch.WithAssemblerOptions(asmOpts...))
	}

	recs, err := batch.New(s.ref, coordOpts...).GenerateParallel(ctx, seed, p.Count)
	if err != nil {
		return nil, err
	}
	return &Result{Seed: seed, Records: recs}, nil
}

// Fields describes one output field for listings: the wire name plus the
// Chinese label shown in tables and the web form.
type Field struct {
	Name  string `json:"name"`
	Label string `json:"label"`
}

// Fields returns every output field in canonical order.
func Fields() []Field {
	fields := make([]Field, 0, len(models.FieldOrder))
	for _, name := range models.FieldOrder {
		fields = append(fields, Field{Name: name, Label: models.FieldLabels[name]})
	}
	return fields
}
