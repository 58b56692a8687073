// Package batch generates sets of identity records whose key fields are
// unique within the set. Records are produced in two phases: a parallel
// phase drafts one candidate per output slot from a slot-local seeded
// stream, then a serial phase walks the slots in order and reserves their
// keys, redrawing a colliding slot from its own stream until its keys are
// free. Because a slot's redraws depend only on its own stream and on the
// keys of earlier slots, the parallel path yields byte-for-byte the same
// batch as the serial one for a given seed.
package batch

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"golang.org/x/sync/errgroup"

	"shenfen/internal/identity/assembler"
	"shenfen/internal/identity/metrics"
	"shenfen/internal/identity/models"
	"shenfen/internal/refdata"
	"shenfen/internal/sampler"
	dErrors "shenfen/pkg/domain-errors"
)

// DefaultKeyFields are the fields no two records in a batch may share.
var DefaultKeyFields = []string{"national_id", "phone", "email", "username", "bank_card"}

// maxAttemptsPerSlot bounds how many candidates one output slot may draw
// before the batch fails with CodeUniquenessExhausted.
const maxAttemptsPerSlot = 100

const defaultWorkers = 4

// UniquenessError reports the key field whose value space ran out while
// filling one slot of a batch.
type UniquenessError struct {
	Field    string
	Attempts int
}

func (e *UniquenessError) Error() string {
	return fmt.Sprintf("no unique value for field %s after %d attempts", e.Field, e.Attempts)
}

// Coordinator produces batches of mutually unique identity records.
// One Coordinator may serve concurrent batches: all mutable state lives
// in per-call slots and key sets.
type Coordinator struct {
	ref     *refdata.Provider
	logger  *slog.Logger
	metrics *metrics.Metrics

	keyFields []string
	workers   int
	asmOpts   []assembler.Option
}

// Option configures a Coordinator.
type Option func(*Coordinator)

// WithKeyFields replaces the default uniqueness key fields. Field names
// follow models.FieldOrder.
func WithKeyFields(fields ...string) Option {
	return func(c *Coordinator) {
		c.keyFields = fields
	}
}

// WithWorkers caps how many slots draft candidates concurrently.
func WithWorkers(n int) Option {
	return func(c *Coordinator) {
		if n > 0 {
			c.workers = n
		}
	}
}

// WithLogger attaches a structured logger.
func WithLogger(l *slog.Logger) Option {
	return func(c *Coordinator) {
		c.logger = l
	}
}

// WithMetrics attaches Prometheus instrumentation.
func WithMetrics(m *metrics.Metrics) Option {
	return func(c *Coordinator) {
		c.metrics = m
	}
}

// WithAssemblerOptions forwards options to every per-slot assembler, so a
// whole batch can share an age range, gender, or region constraint.
func WithAssemblerOptions(opts ...assembler.Option) Option {
	return func(c *Coordinator) {
		c.asmOpts = opts
	}
}

// New creates a Coordinator. The reference data provider is required;
// a nil provider is a programming error and panics at startup.
func New(ref *refdata.Provider, opts ...Option) *Coordinator {
	if ref == nil {
		panic("batch.New: reference data provider is required")
	}
	c := &Coordinator{
		ref:       ref,
		keyFields: DefaultKeyFields,
		workers:   defaultWorkers,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// slotState pairs a slot's assembler with its current candidate. Each
// goroutine in the drafting phase writes only its own slot, avoiding
// data races.
type slotState struct {
	asm       *assembler.Assembler
	candidate *models.IdentityRecord
}

// Generate builds count records serially. Slot i draws from a sampler
// seeded with seed+i, so the output depends only on the seed, the count,
// and the coordinator's configuration.
func (c *Coordinator) Generate(ctx context.Context, seed int64, count int) ([]*models.IdentityRecord, error) {
	return c.run(ctx, seed, count, 1)
}

// GenerateParallel builds the same batch as Generate for the same seed,
// drafting candidates across the configured number of workers.
func (c *Coordinator) GenerateParallel(ctx context.Context, seed int64, count int) ([]*models.IdentityRecord, error) {
	return c.run(ctx, seed, count, c.workers)
}

func (c *Coordinator) run(ctx context.Context, seed int64, count int, workers int) ([]*models.IdentityRecord, error) {
	if count < 0 {
		return nil, dErrors.New(dErrors.CodeBadRequest, fmt.Sprintf("batch count %d is negative", count))
	}
	if count == 0 {
		return []*models.IdentityRecord{}, nil
	}
	if c.metrics != nil {
		c.metrics.ObserveBatchSize(count)
	}

	slots, err := c.draft(ctx, seed, count, workers)
	if err != nil {
		c.finish("error")
		return nil, err
	}

	out, err := c.reserve(ctx, slots)
	if err != nil {
		c.finish("error")
		return nil, err
	}

	c.finish("success")
	if c.logger != nil {
		c.logger.Info("batch generated", "count", count, "key_fields", c.keyFields)
	}
	return out, nil
}

// draft fills one candidate per slot. Uniqueness is not checked here; a
// candidate that collides is redrawn later from the same slot stream.
func (c *Coordinator) draft(ctx context.Context, seed int64, count, workers int) ([]*slotState, error) {
	slots := make([]*slotState, count)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := range slots {
		i := i
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return dErrors.Wrap(err, dErrors.CodeTimeout, "batch drafting canceled")
			}
			asm := c.newAssembler(seed + int64(i))
			rec, err := asm.Generate()
			if err != nil {
				return err
			}
			slots[i] = &slotState{asm: asm, candidate: rec}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return slots, nil
}

// reserve claims each slot's keys in slot order. A slot whose candidate
// collides keeps drawing from its own stream, so the final batch is the
// same whether drafting ran serially or in parallel.
func (c *Coordinator) reserve(ctx context.Context, slots []*slotState) ([]*models.IdentityRecord, error) {
	keys := newKeySet()
	out := make([]*models.IdentityRecord, len(slots))
	for i, sl := range slots {
		if err := ctx.Err(); err != nil {
			return nil, dErrors.Wrap(err, dErrors.CodeTimeout, "batch reservation canceled")
		}

		rec := sl.candidate
		attempts := 1
		for {
			field, ok := keys.reserve(c.keyFields, rec)
			if ok {
				break
			}
			if c.metrics != nil {
				c.metrics.IncrementUniquenessRetries(field)
			}
			if c.logger != nil {
				c.logger.Debug("uniqueness collision",
					"slot", i,
					"field", field,
					"attempt", attempts,
				)
			}
			if attempts >= maxAttemptsPerSlot {
				inner := &UniquenessError{Field: field, Attempts: attempts}
				return nil, dErrors.Wrap(inner, dErrors.CodeUniquenessExhausted,
					fmt.Sprintf("slot %d: %s", i, inner.Error()))
			}

			var err error
			rec, err = sl.asm.Generate()
			if err != nil {
				return nil, err
			}
			attempts++
		}
		out[i] = rec
	}
	return out, nil
}

func (c *Coordinator) newAssembler(seed int64) *assembler.Assembler {
	// Full-slice so appends never write into the caller's option slice.
	opts := c.asmOpts[:len(c.asmOpts):len(c.asmOpts)]
	if c.logger != nil {
		opts = append(opts, assembler.WithLogger(c.logger))
	}
	if c.metrics != nil {
		opts = append(opts, assembler.WithMetrics(c.metrics))
	}
	return assembler.New(c.ref, sampler.New(seed), opts...)
}

func (c *Coordinator) finish(outcome string) {
	if c.metrics != nil {
		c.metrics.IncrementBatchOutcome(outcome)
	}
}

// keySet tracks reserved key values per field. reserve is all-or-nothing:
// either every key of the record is claimed, or none are and the colliding
// field is reported.
type keySet struct {
	mu   sync.Mutex
	seen map[string]map[string]bool
}

func newKeySet() *keySet {
	return &keySet{seen: make(map[string]map[string]bool)}
}

func (k *keySet) reserve(fields []string, rec *models.IdentityRecord) (string, bool) {
	k.mu.Lock()
	defer k.mu.Unlock()

	for _, f := range fields {
		if k.seen[f][rec.FieldValue(f)] {
			return f, false
		}
	}
	for _, f := range fields {
		vals := k.seen[f]
		if vals == nil {
			vals = make(map[string]bool)
			k.seen[f] = vals
		}
		vals[rec.FieldValue(f)] = true
	}
	return "", true
}
