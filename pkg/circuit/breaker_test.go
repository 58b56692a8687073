package circuit

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

// BreakerSuite tests state transitions and probe gating.
//
// Justification: the breaker decides when the avatar chain may spend a
// network call on a backend that has been failing. Wrong transitions either
// hammer a dead backend or never recover from a blip, so every transition
// edge gets a direct test with an injected clock.
type BreakerSuite struct {
	suite.Suite
	clock time.Time
}

func (s *BreakerSuite) SetupTest() {
	s.clock = time.Date(2025, time.March, 1, 9, 0, 0, 0, time.UTC)
}

func TestBreakerSuite(t *testing.T) {
	suite.Run(t, new(BreakerSuite))
}

func (s *BreakerSuite) newBreaker(opts ...Option) *Breaker {
	opts = append(opts, WithClock(func() time.Time { return s.clock }))
	return New("test", opts...)
}

func (s *BreakerSuite) advance(d time.Duration) {
	s.clock = s.clock.Add(d)
}

func (s *BreakerSuite) TestOpensAfterConsecutiveFailures() {
	b := s.newBreaker(WithFailureThreshold(3))

	for i := 0; i < 2; i++ {
		open, change := b.RecordFailure()
		s.False(open)
		s.False(change.Opened)
	}
	open, change := b.RecordFailure()
	s.True(open)
	s.True(change.Opened)
	s.Equal(StateOpen, b.State())
}

func (s *BreakerSuite) TestSuccessResetsFailureStreak() {
	b := s.newBreaker(WithFailureThreshold(3))

	b.RecordFailure()
	b.RecordFailure()
	b.RecordSuccess()
	open, _ := b.RecordFailure()
	s.False(open)
	s.Equal(StateClosed, b.State())
}

func (s *BreakerSuite) TestOpenBlocksUntilCooldown() {
	b := s.newBreaker(WithFailureThreshold(1), WithCooldown(time.Minute))

	b.RecordFailure()
	s.Equal(StateOpen, b.State())
	s.False(b.Allow())

	s.advance(59 * time.Second)
	s.False(b.Allow())

	s.advance(2 * time.Second)
	s.True(b.Allow(), "cooldown elapsed, one probe should pass")
	s.False(b.Allow(), "probe window already claimed")
}

func (s *BreakerSuite) TestProbeSuccessesCloseCircuit() {
	b := s.newBreaker(
		WithFailureThreshold(1),
		WithSuccessThreshold(2),
		WithCooldown(time.Minute),
	)

	b.RecordFailure()
	s.Equal(StateOpen, b.State())

	s.advance(time.Minute)
	s.True(b.Allow())
	closed, change := b.RecordSuccess()
	s.False(closed)
	s.False(change.Closed)
	s.Equal(StateOpen, b.State())

	s.advance(time.Minute)
	s.True(b.Allow())
	closed, change = b.RecordSuccess()
	s.True(closed)
	s.True(change.Closed)
	s.Equal(StateClosed, b.State())
}

func (s *BreakerSuite) TestProbeFailureKeepsCircuitOpen() {
	b := s.newBreaker(WithFailureThreshold(1), WithCooldown(time.Minute))

	b.RecordFailure()
	s.advance(time.Minute)
	s.True(b.Allow())

	open, change := b.RecordFailure()
	s.True(open)
	s.False(change.Opened, "already open, no transition")
	s.False(b.Allow(), "failed probe restarts the cooldown")
}

func (s *BreakerSuite) TestClosedAlwaysAllows() {
	b := s.newBreaker()
	for i := 0; i < 10; i++ {
		s.True(b.Allow())
	}
}

func (s *BreakerSuite) TestResetClosesAndClearsCounts() {
	b := s.newBreaker(WithFailureThreshold(1))

	b.RecordFailure()
	s.Equal(StateOpen, b.State())

	b.Reset()
	s.Equal(StateClosed, b.State())
	s.True(b.Allow())

	open, _ := b.RecordFailure()
	s.True(open, "threshold 1 trips again after reset")
}

func (s *BreakerSuite) TestStateString() {
	s.Equal("closed", StateClosed.String())
	s.Equal("open", StateOpen.String())
}

func (s *BreakerSuite) TestConcurrentRecordingStaysConsistent() {
	b := New("concurrent", WithFailureThreshold(50))

	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			b.RecordFailure()
		}()
	}
	wg.Wait()

	s.Equal(StateOpen, b.State(), "100 failures must trip a threshold of 50")
}
