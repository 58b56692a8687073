package sampler

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"shenfen/internal/refdata"
	dErrors "shenfen/pkg/domain-errors"
)

// SamplerSuite tests constrained weighted selection.
//
// Justification: the sampler sits under every generated field. Its contract
// has three load-bearing pieces: filter-then-renormalize selection, the
// no_eligible_category failure mode, and seed determinism. Each is pinned
// here in isolation so assembler tests can assume them.
type SamplerSuite struct {
	suite.Suite
}

func TestSamplerSuite(t *testing.T) {
	suite.Run(t, new(SamplerSuite))
}

func (s *SamplerSuite) table(entries ...refdata.Entry) refdata.Table {
	return refdata.Table{Name: "test", Entries: entries}
}

func (s *SamplerSuite) TestPick() {
	s.Run("returns the only entry", func() {
		sm := New(1)
		e, err := sm.Pick(s.table(refdata.Entry{Value: "a", Weight: 1}))
		s.Require().NoError(err)
		s.Equal("a", e.Value)
	})

	s.Run("fails on empty table", func() {
		sm := New(1)
		_, err := sm.Pick(s.table())
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeNoEligibleCategory))
	})

	s.Run("fails when constraints exclude everything", func() {
		sm := New(1)
		_, err := sm.Pick(
			s.table(refdata.Entry{Value: "党员", Weight: 1, MinAge: 18}),
			AgeAllows(12),
		)
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeNoEligibleCategory))
	})

	s.Run("never draws an ineligible entry", func() {
		sm := New(7)
		table := s.table(
			refdata.Entry{Value: "未婚", Weight: 1},
			refdata.Entry{Value: "已婚", Weight: 50, MinAge: 22},
			refdata.Entry{Value: "离异", Weight: 50, MinAge: 24},
		)
		for i := 0; i < 500; i++ {
			e, err := sm.Pick(table, AgeAllows(19))
			s.Require().NoError(err)
			s.Equal("未婚", e.Value)
		}
	})

	s.Run("renormalizes weights over the eligible subset", func() {
		sm := New(99)
		table := s.table(
			refdata.Entry{Value: "heavy", Weight: 9},
			refdata.Entry{Value: "light", Weight: 1},
			refdata.Entry{Value: "gated", Weight: 1000, MinAge: 60},
		)
		counts := map[string]int{}
		for i := 0; i < 5000; i++ {
			e, err := sm.Pick(table, AgeAllows(30))
			s.Require().NoError(err)
			counts[e.Value]++
		}
		s.Zero(counts["gated"])
		// heavy should land near 90% of the draws.
		s.InDelta(0.9, float64(counts["heavy"])/5000.0, 0.03)
	})

	s.Run("respects max age bounds", func() {
		sm := New(3)
		table := s.table(
			refdata.Entry{Value: "共青团员", Weight: 1, MinAge: 14, MaxAge: 28},
			refdata.Entry{Value: "群众", Weight: 1},
		)
		for i := 0; i < 200; i++ {
			e, err := sm.Pick(table, AgeAllows(45))
			s.Require().NoError(err)
			s.Equal("群众", e.Value)
		}
	})
}

func (s *SamplerSuite) TestDeterminism() {
	s.Run("same seed and call order reproduce draws", func() {
		table := s.table(
			refdata.Entry{Value: "a", Weight: 1},
			refdata.Entry{Value: "b", Weight: 2},
			refdata.Entry{Value: "c", Weight: 3},
		)
		first := make([]string, 0, 100)
		second := make([]string, 0, 100)
		sm1 := New(42)
		sm2 := New(42)
		for i := 0; i < 100; i++ {
			v1, err := sm1.PickValue(table)
			s.Require().NoError(err)
			v2, err := sm2.PickValue(table)
			s.Require().NoError(err)
			first = append(first, v1)
			second = append(second, v2)
		}
		s.Equal(first, second)
	})

	s.Run("different seeds diverge", func() {
		table := s.table(
			refdata.Entry{Value: "a", Weight: 1},
			refdata.Entry{Value: "b", Weight: 1},
		)
		sm1 := New(1)
		sm2 := New(2)
		same := true
		for i := 0; i < 64; i++ {
			v1, _ := sm1.PickValue(table)
			v2, _ := sm2.PickValue(table)
			if v1 != v2 {
				same = false
			}
		}
		s.False(same)
	})
}

func (s *SamplerSuite) TestLinked() {
	s.Run("derives from the source when the link activates", func() {
		sm := New(5)
		value, linked, err := sm.Linked(1.0,
			func() string { return "13800138000@qq.com" },
			func() (string, error) { return "independent", nil },
		)
		s.Require().NoError(err)
		s.True(linked)
		s.Equal("13800138000@qq.com", value)
	})

	s.Run("samples independently when the link stays inactive", func() {
		sm := New(5)
		value, linked, err := sm.Linked(0.0,
			func() string { return "derived" },
			func() (string, error) { return "independent", nil },
		)
		s.Require().NoError(err)
		s.False(linked)
		s.Equal("independent", value)
	})

	s.Run("activation rate tracks the probability", func() {
		sm := New(11)
		active := 0
		for i := 0; i < 2000; i++ {
			_, linked, err := sm.Linked(0.35,
				func() string { return "d" },
				func() (string, error) { return "i", nil },
			)
			s.Require().NoError(err)
			if linked {
				active++
			}
		}
		s.InDelta(0.35, float64(active)/2000.0, 0.04)
	})
}

func (s *SamplerSuite) TestNumericHelpers() {
	s.Run("IntBetween stays inclusive", func() {
		sm := New(13)
		sawMin, sawMax := false, false
		for i := 0; i < 1000; i++ {
			v := sm.IntBetween(3, 7)
			s.GreaterOrEqual(v, 3)
			s.LessOrEqual(v, 7)
			if v == 3 {
				sawMin = true
			}
			if v == 7 {
				sawMax = true
			}
		}
		s.True(sawMin)
		s.True(sawMax)
	})

	s.Run("IntBetween collapses degenerate ranges", func() {
		sm := New(13)
		s.Equal(5, sm.IntBetween(5, 5))
		s.Equal(5, sm.IntBetween(5, 2))
	})

	s.Run("Gauss clamps to bounds", func() {
		sm := New(17)
		for i := 0; i < 1000; i++ {
			v := sm.Gauss(169, 6, 155, 195)
			s.GreaterOrEqual(v, 155.0)
			s.LessOrEqual(v, 195.0)
		}
	})

	s.Run("Digits emits only digits", func() {
		sm := New(19)
		d := sm.Digits(32)
		s.Len(d, 32)
		for _, c := range d {
			s.True(c >= '0' && c <= '9')
		}
	})

	s.Run("DigitsNonZeroLead never starts with zero", func() {
		sm := New(23)
		for i := 0; i < 200; i++ {
			d := sm.DigitsNonZeroLead(8)
			s.Len(d, 8)
			s.NotEqual(byte('0'), d[0])
		}
	})
}

func (s *SamplerSuite) TestSampleDistinct() {
	s.Run("returns distinct values", func() {
		sm := New(29)
		table := s.table(
			refdata.Entry{Value: "阅读", Weight: 1},
			refdata.Entry{Value: "旅行", Weight: 1},
			refdata.Entry{Value: "摄影", Weight: 1},
			refdata.Entry{Value: "健身", Weight: 1},
		)
		values, err := sm.SampleDistinct(table, 3)
		s.Require().NoError(err)
		s.Len(values, 3)
		seen := map[string]bool{}
		for _, v := range values {
			s.False(seen[v])
			seen[v] = true
		}
	})

	s.Run("caps k at the eligible count", func() {
		sm := New(31)
		table := s.table(
			refdata.Entry{Value: "a", Weight: 1},
			refdata.Entry{Value: "b", Weight: 1},
		)
		values, err := sm.SampleDistinct(table, 10)
		s.Require().NoError(err)
		s.Len(values, 2)
	})

	s.Run("fails when nothing is eligible", func() {
		sm := New(31)
		table := s.table(refdata.Entry{Value: "a", Weight: 1, MinAge: 90})
		_, err := sm.SampleDistinct(table, 2, AgeAllows(30))
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeNoEligibleCategory))
	})
}
