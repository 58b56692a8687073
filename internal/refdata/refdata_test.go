package refdata

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

// RefDataSuite sanity-checks the built-in tables. The sampler trusts these
// shapes, so a malformed entry would surface as a confusing runtime failure
// far from its cause.
type RefDataSuite struct {
	suite.Suite
	provider *Provider
}

func (s *RefDataSuite) SetupTest() {
	s.provider = Default()
}

func TestRefDataSuite(t *testing.T) {
	suite.Run(t, new(RefDataSuite))
}

func (s *RefDataSuite) TestTablesAreNonEmpty() {
	tables := []Table{
		s.provider.Surnames,
		s.provider.MaleGivenChars,
		s.provider.FemaleGivenChars,
		s.provider.GivenNameLengths,
		s.provider.EmailDomains,
		s.provider.QQLengths,
		s.provider.Ethnicities,
		s.provider.BloodTypes,
		s.provider.Genders,
		s.provider.AgeBuckets,
		s.provider.Educations,
		s.provider.Politicals,
		s.provider.Maritals,
		s.provider.Religions,
		s.provider.Hobbies,
		s.provider.Relationships,
		s.provider.Companies.Prefixes,
		s.provider.Companies.Sectors,
		s.provider.Companies.Suffixes,
		s.provider.JobTitles,
		s.provider.Majors,
		s.provider.Salaries,
		s.provider.UserAgents,
		s.provider.Streets,
		s.provider.Communities,
	}
	for _, table := range tables {
		s.NotEmpty(table.Entries, "table %s", table.Name)
		for _, e := range table.Entries {
			s.Positive(e.Weight, "table %s entry %s", table.Name, e.Value)
			s.NotEmpty(e.Value, "table %s", table.Name)
		}
	}
}

func (s *RefDataSuite) TestRegionHierarchy() {
	s.NotEmpty(s.provider.Provinces)
	for _, prov := range s.provider.Provinces {
		s.Len(prov.Code, 6, "province %s", prov.Name)
		s.NotEmpty(prov.PlateChar, "province %s", prov.Name)
		s.Positive(prov.Weight, "province %s", prov.Name)
		s.NotEmpty(prov.Cities, "province %s", prov.Name)
		for _, city := range prov.Cities {
			s.Len(city.Code, 6, "city %s", city.Name)
			s.Equal(prov.Code[:2], city.Code[:2], "city %s belongs to %s", city.Name, prov.Name)
			s.NotEmpty(city.Districts, "city %s", city.Name)
			for _, d := range city.Districts {
				s.Len(d.Code, 6, "district %s", d.Name)
				s.Equal(prov.Code[:2], d.Code[:2], "district %s belongs to %s", d.Name, prov.Name)
				s.Len(d.Zipcode, 6, "district %s", d.Name)
			}
		}
	}
}

func (s *RefDataSuite) TestCarrierPrefixes() {
	s.Len(s.provider.Carriers, 4)
	seen := make(map[string]string)
	for _, block := range s.provider.Carriers {
		s.Positive(block.Weight)
		s.NotEmpty(block.Prefixes)
		for _, prefix := range block.Prefixes {
			s.Len(prefix, 3)
			s.Equal(byte('1'), prefix[0])
			owner, dup := seen[prefix]
			s.False(dup, "prefix %s owned by both %s and %s", prefix, owner, block.Carrier)
			seen[prefix] = block.Carrier
		}
	}
}

func (s *RefDataSuite) TestBankBINs() {
	for _, bin := range s.provider.BankBINs {
		s.Len(bin.BIN, 6)
		s.NotEmpty(bin.Bank)
		s.True(bin.Length == 16 || bin.Length == 19, "bank %s", bin.Bank)
	}
}

func (s *RefDataSuite) TestAgeGates() {
	s.Run("league membership is capped", func() {
		for _, e := range s.provider.Politicals.Entries {
			if e.Value == "共青团员" {
				s.Equal(14, e.MinAge)
				s.Equal(28, e.MaxAge)
			}
			if e.Value == "中共党员" {
				s.Equal(18, e.MinAge)
			}
		}
	})

	s.Run("marital states have floors", func() {
		for _, e := range s.provider.Maritals.Entries {
			switch e.Value {
			case "已婚":
				s.GreaterOrEqual(e.MinAge, 20)
			case "离异", "丧偶":
				s.GreaterOrEqual(e.MinAge, 22)
			}
		}
	})

	s.Run("tertiary education implies a major", func() {
		s.True(HasMajor("本科"))
		s.True(HasMajor("博士"))
		s.False(HasMajor("高中"))
		s.False(HasMajor(""))
	})
}

func (s *RefDataSuite) TestProbabilities() {
	s.InDelta(0.005, s.provider.RHNegativeProb, 1e-9)
	s.Greater(s.provider.PhoneEmailLinkProb, 0.0)
	s.Less(s.provider.PhoneEmailLinkProb, 1.0)
	s.Greater(s.provider.NewEnergyPlateProb, 0.0)
	s.Less(s.provider.NewEnergyPlateProb, 1.0)
}
