package identity_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"shenfen/internal/identity"
	"shenfen/internal/identity/models"
	"shenfen/internal/refdata"
	dErrors "shenfen/pkg/domain-errors"
	"shenfen/pkg/testutil"
)

// ServiceSuite exercises the generation facade.
//
// Justification: the facade is the only place request validation and seed
// derivation happen; a hole here turns into either a confusing coordinator
// error or an unreproducible batch.
type ServiceSuite struct {
	suite.Suite

	ctx context.Context
	svc *identity.Service
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.ctx = context.Background()
	s.svc = identity.New(refdata.Default(), identity.WithWorkers(2))
}

func (s *ServiceSuite) TestExplicitSeedReproducesTheBatch() {
	p := identity.GenerateParams{Count: 3, Seed: 42}

	first, err := s.svc.Generate(s.ctx, p)
	s.Require().NoError(err)
	second, err := s.svc.Generate(s.ctx, p)
	s.Require().NoError(err)

	s.Equal(int64(42), first.Seed)
	s.Require().Len(first.Records, 3)
	for i := range first.Records {
		s.Equal(first.Records[i].NationalID, second.Records[i].NationalID)
		s.Equal(first.Records[i].Name, second.Records[i].Name)
	}
}

func (s *ServiceSuite) TestZeroSeedDerivesFromClock() {
	at := time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC)
	svc := identity.New(refdata.Default(), identity.WithClock(func() time.Time { return at }))

	res, err := svc.Generate(s.ctx, identity.GenerateParams{Count: 1})
	s.Require().NoError(err)

	s.Equal(at.UnixNano(), res.Seed)
}

func (s *ServiceSuite) TestGenderConstraintApplies() {
	res, err := s.svc.Generate(s.ctx, identity.GenerateParams{
		Count:  20,
		Seed:   7,
		Gender: models.GenderFemale,
	})
	s.Require().NoError(err)

	for _, rec := range res.Records {
		s.Equal(models.GenderFemale, rec.Gender)
	}
}

func (s *ServiceSuite) TestAgeRangeApplies() {
	res, err := s.svc.Generate(s.ctx, identity.GenerateParams{
		Count:  20,
		Seed:   11,
		MinAge: 30,
		MaxAge: 40,
	})
	s.Require().NoError(err)

	for _, rec := range res.Records {
		s.GreaterOrEqual(rec.Age, 30)
		s.LessOrEqual(rec.Age, 40)
	}
}

func (s *ServiceSuite) TestRegionCodeApplies() {
	res, err := s.svc.Generate(s.ctx, identity.GenerateParams{
		Count:      10,
		Seed:       13,
		RegionCode: "11",
	})
	s.Require().NoError(err)

	for _, rec := range res.Records {
		s.True(strings.HasPrefix(rec.NationalID, "11"), rec.NationalID)
		s.Equal("北京市", rec.Province)
	}
}

func (s *ServiceSuite) TestRejectsBadParams() {
	cases := []struct {
		name string
		p    identity.GenerateParams
	}{
		{"zero count", identity.GenerateParams{Count: 0}},
		{"count over limit", identity.GenerateParams{Count: identity.MaxBatchSize + 1}},
		{"unknown gender", identity.GenerateParams{Count: 1, Gender: "other"}},
		{"inverted age range", identity.GenerateParams{Count: 1, MinAge: 50, MaxAge: 30}},
		{"negative age", identity.GenerateParams{Count: 1, MinAge: -1}},
		{"non numeric region", identity.GenerateParams{Count: 1, RegionCode: "ab"}},
		{"odd length region", identity.GenerateParams{Count: 1, RegionCode: "12345"}},
	}
	for _, tc := range cases {
		s.Run(tc.name, func() {
			_, err := s.svc.Generate(s.ctx, tc.p)
			s.Require().Error(err)
			s.True(dErrors.HasCode(err, dErrors.CodeBadRequest))
		})
	}
}

func (s *ServiceSuite) TestFieldsListsCanonicalOrder() {
	fields := identity.Fields()

	s.Require().Len(fields, len(models.FieldOrder))
	s.Equal("id", fields[0].Name)
	s.Equal("编号", fields[0].Label)
	for i, f := range fields {
		s.Equal(models.FieldOrder[i], f.Name)
		s.NotEmpty(f.Label, f.Name)
	}
}

func (s *ServiceSuite) TestConcurrentCallsStayDeterministic() {
	const callers = 6
	results := make([]*identity.Result, callers)

	_, errs := testutil.RunConcurrentCollect(callers, func(idx int) error {
		res, err := s.svc.Generate(s.ctx, identity.GenerateParams{Count: 4, Seed: 99})
		results[idx] = res
		return err
	})
	s.Require().Empty(errs)

	for i := 1; i < callers; i++ {
		s.Require().Len(results[i].Records, 4)
		for j := range results[i].Records {
			s.Equal(results[0].Records[j].NationalID, results[i].Records[j].NationalID)
		}
	}
}

func (s *ServiceSuite) TestConcurrentCallsFailIndependently() {
	res := testutil.RunConcurrentCtx(s.ctx, 8, func(ctx context.Context, idx int) error {
		p := identity.GenerateParams{Count: 1, Seed: int64(idx + 1)}
		if idx%2 == 1 {
			p.RegionCode = "99"
		}
		_, err := s.svc.Generate(ctx, p)
		return err
	})

	s.Equal(int32(4), res.Successes)
	s.Equal(int32(4), res.Rejected)
	s.Equal(int32(0), res.Errors)
	s.Equal(int32(8), res.Total())
}
