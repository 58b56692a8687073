// Package sampler draws values from weighted reference tables under
// cross-field constraints. Selection filters ineligible entries first, then
// renormalizes the surviving weights and draws by cumulative-weight inverse
// transform, so constraints shift probability mass onto the eligible subset
// instead of rejection-looping. Every draw comes from one seeded generator,
// which makes a fixed seed plus a fixed call order fully reproducible.
package sampler

import (
	"fmt"
	"math/rand"

	"shenfen/internal/refdata"
	dErrors "shenfen/pkg/domain-errors"
)

// Constraint decides whether a table entry is eligible for the current draw.
type Constraint func(refdata.Entry) bool

// AgeAllows keeps entries whose MinAge/MaxAge band contains age.
func AgeAllows(age int) Constraint {
	return func(e refdata.Entry) bool {
		if e.MinAge > 0 && age < e.MinAge {
			return false
		}
		if e.MaxAge > 0 && age > e.MaxAge {
			return false
		}
		return true
	}
}

// Sampler owns one deterministic random source. It is not safe for concurrent
// use; parallel batch workers each construct their own.
type Sampler struct {
	rng *rand.Rand
}

// New returns a sampler seeded with the given value.
func New(seed int64) *Sampler {
	return &Sampler{rng: rand.New(rand.NewSource(seed))}
}

// Pick draws one entry from the table honoring all constraints.
// It fails with no_eligible_category when the constraints exclude every entry,
// which signals a reference-table defect rather than bad luck: retrying the
// same draw cannot change the outcome.
func (s *Sampler) Pick(table refdata.Table, constraints ...Constraint) (refdata.Entry, error) {
	if len(table.Entries) == 0 {
		return refdata.Entry{}, dErrors.New(dErrors.CodeNoEligibleCategory,
			fmt.Sprintf("table %q is empty", table.Name))
	}

	eligible := make([]refdata.Entry, 0, len(table.Entries))
	total := 0.0
	for _, e := range table.Entries {
		if !s.allowed(e, constraints) {
			continue
		}
		eligible = append(eligible, e)
		total += e.Weight
	}
	if len(eligible) == 0 || total <= 0 {
		return refdata.Entry{}, dErrors.New(dErrors.CodeNoEligibleCategory,
			fmt.Sprintf("constraints exclude every entry of table %q", table.Name))
	}

	// Inverse transform over the renormalized cumulative weights.
	target := s.rng.Float64() * total
	cumulative := 0.0
	for _, e := range eligible {
		cumulative += e.Weight
		if target < cumulative {
			return e, nil
		}
	}
	// Floating point can leave target a hair past the final boundary.
	return eligible[len(eligible)-1], nil
}

// PickValue draws one entry and returns only its value.
func (s *Sampler) PickValue(table refdata.Table, constraints ...Constraint) (string, error) {
	e, err := s.Pick(table, constraints...)
	if err != nil {
		return "", err
	}
	return e.Value, nil
}

func (s *Sampler) allowed(e refdata.Entry, constraints []Constraint) bool {
	for _, c := range constraints {
		if !c(e) {
			return false
		}
	}
	return true
}

// Linked performs a two-stage linked-field draw. Stage one decides with
// probability prob whether the link activates; when it does the dependent
// value is derived from the already-sampled source field, otherwise the
// independent sampler runs. The returned bool records the stage-one decision
// so callers can reproduce the linkage.
func (s *Sampler) Linked(prob float64, derive func() string, independent func() (string, error)) (string, bool, error) {
	if s.Chance(prob) {
		return derive(), true, nil
	}
	v, err := independent()
	return v, false, err
}

// Chance reports true with probability p.
func (s *Sampler) Chance(p float64) bool {
	return s.rng.Float64() < p
}

// IntBetween draws uniformly from [min, max] inclusive.
func (s *Sampler) IntBetween(min, max int) int {
	if max <= min {
		return min
	}
	return min + s.rng.Intn(max-min+1)
}

// Float64 exposes the underlying uniform draw for derived quantities.
func (s *Sampler) Float64() float64 {
	return s.rng.Float64()
}

// Rand exposes the underlying generator for helpers that need permutations
// or other draws the Sampler does not wrap. Callers share the same stream,
// so determinism is preserved.
func (s *Sampler) Rand() *rand.Rand {
	return s.rng
}

// Gauss draws from a normal distribution clamped to [min, max].
func (s *Sampler) Gauss(mean, stddev, min, max float64) float64 {
	v := s.rng.NormFloat64()*stddev + mean
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// Digits returns n uniformly random decimal digits.
func (s *Sampler) Digits(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = byte('0' + s.rng.Intn(10))
	}
	return string(b)
}

// DigitsNonZeroLead returns n digits with a non-zero first digit, for numbers
// that must not shrink when rendered without padding.
func (s *Sampler) DigitsNonZeroLead(n int) string {
	if n == 0 {
		return ""
	}
	b := make([]byte, n)
	b[0] = byte('1' + s.rng.Intn(9))
	for i := 1; i < n; i++ {
		b[i] = byte('0' + s.rng.Intn(10))
	}
	return string(b)
}

// Letter draws one symbol from the given alphabet.
func (s *Sampler) Letter(alphabet string) byte {
	return alphabet[s.rng.Intn(len(alphabet))]
}

// SampleDistinct draws k distinct values from the table, fewer when the table
// holds fewer eligible entries. Order follows draw order.
func (s *Sampler) SampleDistinct(table refdata.Table, k int, constraints ...Constraint) ([]string, error) {
	seen := make(map[string]bool, k)
	out := make([]string, 0, k)
	eligible := 0
	for _, e := range table.Entries {
		if s.allowed(e, constraints) {
			eligible++
		}
	}
	if eligible == 0 {
		return nil, dErrors.New(dErrors.CodeNoEligibleCategory,
			fmt.Sprintf("constraints exclude every entry of table %q", table.Name))
	}
	if k > eligible {
		k = eligible
	}
	for len(out) < k {
		e, err := s.Pick(table, constraints...)
		if err != nil {
			return nil, err
		}
		if seen[e.Value] {
			continue
		}
		seen[e.Value] = true
		out = append(out, e.Value)
	}
	return out, nil
}
