package assembler

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/suite"

	"shenfen/internal/checksum"
	"shenfen/internal/identity/models"
	"shenfen/internal/refdata"
	"shenfen/internal/sampler"
	dErrors "shenfen/pkg/domain-errors"
	"shenfen/pkg/secrets"
)

// AssemblerSuite tests single-record generation end to end.
//
// Justification: the assembler is where every cross-field invariant is
// established. These tests lean on Validate for the invariants themselves
// and concentrate on the pipeline contract: declared dependencies, option
// handling, and seed reproducibility.
type AssemblerSuite struct {
	suite.Suite
	ref *refdata.Provider
}

func (s *AssemblerSuite) SetupTest() {
	s.ref = refdata.Default()
}

func TestAssemblerSuite(t *testing.T) {
	suite.Run(t, new(AssemblerSuite))
}

func (s *AssemblerSuite) TestPipelineDependenciesOrdered() {
	a := New(s.ref, sampler.New(1))

	// The record id is minted before the pipeline runs.
	available := map[string]bool{"id": true}
	for _, st := range a.Pipeline() {
		for _, req := range st.Requires {
			s.Truef(available[req], "stage %s requires %q before any earlier stage provides it", st.Name, req)
		}
		for _, p := range st.Provides {
			s.Falsef(available[p], "field %q provided by more than one stage", p)
			available[p] = true
		}
	}

	for _, field := range models.FieldOrder {
		s.Truef(available[field], "record field %q is never provided by the pipeline", field)
	}
}

func (s *AssemblerSuite) TestGeneratedRecordsAreValid() {
	a := New(s.ref, sampler.New(42))

	for i := 0; i < 1000; i++ {
		rec, err := a.Generate()
		s.Require().NoError(err)
		s.Require().NoError(rec.Validate(s.ref))

		s.Len(rec.NationalID, 18)
		s.True(checksum.ValidateID(rec.NationalID))
		s.True(checksum.ValidateLuhn(rec.BankCard))
		s.True(checksum.ValidateCreditCode(rec.SocialCreditCode))

		s.GreaterOrEqual(rec.HeightCM, 145)
		s.LessOrEqual(rec.HeightCM, 195)
		s.Greater(rec.WeightKG, 30.0)

		s.Contains(rec.Hobbies, "、")
		s.Contains(rec.EmergencyContact, " (")

		plateRunes := utf8.RuneCountInString(rec.LicensePlate)
		s.True(plateRunes == 7 || plateRunes == 8, "plate %q has %d runes", rec.LicensePlate, plateRunes)
	}
}

func (s *AssemblerSuite) TestSameSeedReproducesRecords() {
	first := New(s.ref, sampler.New(7))
	second := New(s.ref, sampler.New(7))

	for i := 0; i < 20; i++ {
		a, err := first.Generate()
		s.Require().NoError(err)
		b, err := second.Generate()
		s.Require().NoError(err)

		// The bcrypt hash salts from the system entropy pool, so it is the
		// one field a rerun cannot reproduce. It must still verify.
		s.Require().NoError(secrets.Verify(a.Password, a.PasswordHash))
		a.PasswordHash = ""
		b.PasswordHash = ""
		s.Equal(a, b)
	}
}

func (s *AssemblerSuite) TestDifferentSeedsDiverge() {
	a, err := New(s.ref, sampler.New(1)).Generate()
	s.Require().NoError(err)
	b, err := New(s.ref, sampler.New(2)).Generate()
	s.Require().NoError(err)

	s.NotEqual(a.NationalID, b.NationalID)
}

func (s *AssemblerSuite) TestWithGender() {
	a := New(s.ref, sampler.New(3), WithGender(models.GenderFemale))

	for i := 0; i < 100; i++ {
		rec, err := a.Generate()
		s.Require().NoError(err)
		s.Equal(models.GenderFemale, rec.Gender)

		parity, err := checksum.EmbeddedSequenceParity(rec.NationalID)
		s.Require().NoError(err)
		s.Equal(0, parity)
	}
}

func (s *AssemblerSuite) TestWithAgeRange() {
	a := New(s.ref, sampler.New(4), WithAgeRange(25, 30))

	for i := 0; i < 200; i++ {
		rec, err := a.Generate()
		s.Require().NoError(err)
		s.GreaterOrEqual(rec.Age, 25)
		s.LessOrEqual(rec.Age, 30)
	}
}

func (s *AssemblerSuite) TestWithRegionCode() {
	a := New(s.ref, sampler.New(5), WithRegionCode("4403"))

	for i := 0; i < 50; i++ {
		rec, err := a.Generate()
		s.Require().NoError(err)
		s.Equal("广东省", rec.Province)
		s.Equal("深圳市", rec.City)
		s.True(strings.HasPrefix(rec.NationalID, "4403"), "national id %q", rec.NationalID)
	}
}

func (s *AssemblerSuite) TestUnknownRegionCodeFails() {
	a := New(s.ref, sampler.New(6), WithRegionCode("99"))

	_, err := a.Generate()
	s.Require().Error(err)
	s.True(dErrors.HasCode(err, dErrors.CodeNoEligibleCategory))
}

func (s *AssemblerSuite) TestChildAgesFailOnGatedTables() {
	// No education category admits a two-year-old; the gap must surface as
	// no_eligible_category rather than an invalid record.
	a := New(s.ref, sampler.New(8), WithAgeRange(2, 3))

	_, err := a.Generate()
	s.Require().Error(err)
	s.True(dErrors.HasCode(err, dErrors.CodeNoEligibleCategory))
	s.Contains(err.Error(), "life_categories")
}

func (s *AssemblerSuite) TestLinkedEmailDerivesFromPhone() {
	a := New(s.ref, sampler.New(9))

	linked, independent := 0, 0
	for i := 0; i < 300; i++ {
		rec, err := a.Generate()
		s.Require().NoError(err)

		if rec.EmailLinkedToPhone {
			linked++
			s.Equal(rec.Phone+"@qq.com", rec.Email)
		} else {
			independent++
			s.Contains(rec.Email, "@")
		}
	}

	// At p=0.35 over 300 draws both branches are effectively certain.
	s.Positive(linked)
	s.Positive(independent)
}

func (s *AssemblerSuite) TestRecordIDsAreUUIDShaped() {
	a := New(s.ref, sampler.New(10))

	rec, err := a.Generate()
	s.Require().NoError(err)
	s.Len(rec.ID, 36)
	s.Equal(byte('4'), rec.ID[14])
}

func (s *AssemblerSuite) TestNewPanicsOnNilDependencies() {
	s.Panics(func() { New(nil, sampler.New(1)) })
	s.Panics(func() { New(s.ref, nil) })
}
