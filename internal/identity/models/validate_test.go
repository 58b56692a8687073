package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"shenfen/internal/checksum"
	"shenfen/internal/refdata"
	dErrors "shenfen/pkg/domain-errors"
)

// ValidateSuite tests the invariant checks a record must clear before the
// assembler hands it out.
//
// Justification: Validate is the last line between a sampler bug and a
// corrupt batch. Each invariant gets a test that breaks exactly one thing
// and asserts the violation names the right field.
type ValidateSuite struct {
	suite.Suite
	ref *refdata.Provider
}

func (s *ValidateSuite) SetupTest() {
	s.ref = refdata.Default()
}

func TestValidateSuite(t *testing.T) {
	suite.Run(t, new(ValidateSuite))
}

// buildRecord assembles a structurally consistent record by hand, computing
// the same checksums the assembler would.
func (s *ValidateSuite) buildRecord(birth time.Time, gender Gender) *IdentityRecord {
	seq := "123"
	if gender == GenderFemale {
		seq = "124"
	}
	idPrefix := "110105" + birth.Format("20060102") + seq
	idCheck, err := checksum.ComputeIDChecksum(idPrefix)
	s.Require().NoError(err)

	cardPayload := "622202123456789012"
	cardCheck, err := checksum.ComputeLuhnChecksum(cardPayload)
	s.Require().NoError(err)

	creditPrefix := "91110105MA00XK2T9"
	creditCheck, err := checksum.ComputeCreditCodeChecksum(creditPrefix)
	s.Require().NoError(err)

	age := AgeAt(birth, time.Now())
	education := "本科"
	major := "计算机科学与技术"
	marital := "已婚"
	if age < 22 {
		education = "高中"
		major = ""
		marital = "未婚"
	}

	return &IdentityRecord{
		ID:               "3f2a1f64-5717-4562-b3fc-2c963f66afa6",
		Name:             "王伟",
		LastName:         "王",
		FirstName:        "伟",
		Gender:           gender,
		Birthdate:        birth.Format(BirthdateLayout),
		Age:              age,
		NationalID:       idPrefix + string(idCheck),
		Ethnicity:        "汉族",
		BloodType:        "O",
		HeightCM:         175,
		WeightKG:         68.5,
		Phone:            "13800138000",
		Email:            "wangwei1990@163.com",
		Address:          "北京市北京市朝阳区中山路88号阳光小区3栋502室",
		City:             "北京市",
		Province:         "北京市",
		Zipcode:          "100020",
		Country:          "中国",
		Company:          "华信科技有限公司",
		JobTitle:         "软件工程师",
		Education:        education,
		Major:            major,
		SalaryRange:      "8000-12000",
		Username:         "wangwei_90",
		Password:         "mBq2!xkfzr",
		PasswordHash:     "$2a$04$abcdefghijklmnopqrstuv",
		WechatID:         "wxid_k3jd92mdk1la",
		QQNumber:         "374920183",
		PoliticalStatus:  "群众",
		MaritalStatus:    marital,
		Religion:         "无宗教信仰",
		BankCard:         cardPayload + string(cardCheck),
		Bank:             "中国工商银行",
		LicensePlate:     "京A·12345",
		SocialCreditCode: creditPrefix + string(creditCheck),
		IPAddress:        "223.104.63.12",
		MACAddress:       "00:E0:FC:12:34:56",
		UserAgent:        "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36",
		Browser:          "Chrome",
		OS:               "Windows 10",
		ZodiacSign:       ZodiacSign(birth),
		ChineseZodiac:    ChineseZodiac(birth),
		EmergencyContact: "王军 (父亲)",
		EmergencyPhone:   "13900139000",
		Hobbies:          "阅读、旅行",
	}
}

func (s *ValidateSuite) TestValidRecordPasses() {
	rec := s.buildRecord(date(1990, time.June, 15), GenderMale)
	s.NoError(rec.Validate(s.ref))

	rec = s.buildRecord(date(1985, time.February, 3), GenderFemale)
	s.NoError(rec.Validate(s.ref))
}

func (s *ValidateSuite) assertViolation(err error, field string) {
	s.Require().Error(err)
	s.True(dErrors.HasCode(err, dErrors.CodeInvariantViolation))
	s.Contains(err.Error(), "field "+field)
}

func (s *ValidateSuite) TestNationalIDInvariants() {
	s.Run("bad check character", func() {
		rec := s.buildRecord(date(1990, time.June, 15), GenderMale)
		bad := []byte(rec.NationalID)
		if bad[17] == '0' {
			bad[17] = '1'
		} else {
			bad[17] = '0'
		}
		rec.NationalID = string(bad)
		s.assertViolation(rec.Validate(s.ref), "national_id")
	})

	s.Run("embedded birthdate mismatch", func() {
		rec := s.buildRecord(date(1990, time.June, 15), GenderMale)
		rec.Birthdate = "1990-06-16"
		// Age still matches, so the national id check is the one that fires.
		s.assertViolation(rec.Validate(s.ref), "national_id")
	})

	s.Run("sequence parity contradicts gender", func() {
		rec := s.buildRecord(date(1990, time.June, 15), GenderMale)
		// Rebuild with an even sequence but leave the gender male.
		prefix := "110105" + "19900615" + "124"
		check, err := checksum.ComputeIDChecksum(prefix)
		s.Require().NoError(err)
		rec.NationalID = prefix + string(check)
		s.assertViolation(rec.Validate(s.ref), "national_id")
	})
}

func (s *ValidateSuite) TestChecksummedFieldInvariants() {
	s.Run("bank card fails luhn", func() {
		rec := s.buildRecord(date(1990, time.June, 15), GenderMale)
		rec.BankCard = "6222021234567890123"
		if checksum.ValidateLuhn(rec.BankCard) {
			rec.BankCard = "6222021234567890124"
		}
		s.assertViolation(rec.Validate(s.ref), "bank_card")
	})

	s.Run("credit code fails gb32100", func() {
		rec := s.buildRecord(date(1990, time.June, 15), GenderMale)
		rec.SocialCreditCode = "91110105MA00XK2T99"
		if checksum.ValidateCreditCode(rec.SocialCreditCode) {
			rec.SocialCreditCode = "91110105MA00XK2T98"
		}
		s.assertViolation(rec.Validate(s.ref), "social_credit_code")
	})
}

func (s *ValidateSuite) TestAgeGateInvariants() {
	s.Run("doctorate below its age floor", func() {
		rec := s.buildRecord(date(2004, time.March, 1), GenderMale)
		rec.Education = "博士"
		rec.Major = "计算机科学与技术"
		s.assertViolation(rec.Validate(s.ref), "education")
	})

	s.Run("league membership above its age cap", func() {
		rec := s.buildRecord(date(1980, time.March, 1), GenderMale)
		rec.PoliticalStatus = "共青团员"
		s.assertViolation(rec.Validate(s.ref), "political_status")
	})

	s.Run("divorced below the marital floor", func() {
		rec := s.buildRecord(date(2007, time.March, 1), GenderFemale)
		rec.MaritalStatus = "离异"
		s.assertViolation(rec.Validate(s.ref), "marital_status")
	})

	s.Run("unknown category", func() {
		rec := s.buildRecord(date(1990, time.June, 15), GenderMale)
		rec.Education = "私塾"
		s.assertViolation(rec.Validate(s.ref), "education")
	})

	s.Run("major without tertiary education", func() {
		rec := s.buildRecord(date(1990, time.June, 15), GenderMale)
		rec.Education = "初中"
		rec.Major = "法学"
		s.assertViolation(rec.Validate(s.ref), "major")
	})
}

func (s *ValidateSuite) TestDerivedFieldInvariants() {
	s.Run("zodiac sign must derive from birthdate", func() {
		rec := s.buildRecord(date(1990, time.June, 15), GenderMale)
		rec.ZodiacSign = "天蝎座"
		s.assertViolation(rec.Validate(s.ref), "zodiac_sign")
	})

	s.Run("chinese zodiac must derive from birth year", func() {
		rec := s.buildRecord(date(1990, time.June, 15), GenderMale)
		rec.ChineseZodiac = "猪"
		s.assertViolation(rec.Validate(s.ref), "chinese_zodiac")
	})

	s.Run("age must match birthdate", func() {
		rec := s.buildRecord(date(1990, time.June, 15), GenderMale)
		rec.Age = rec.Age + 1
		s.assertViolation(rec.Validate(s.ref), "age")
	})
}

func (s *ValidateSuite) TestContactInvariants() {
	s.Run("phone must be 11 digits", func() {
		rec := s.buildRecord(date(1990, time.June, 15), GenderMale)
		rec.Phone = "1380013800"
		s.assertViolation(rec.Validate(s.ref), "phone")
	})

	s.Run("linked email must derive from the phone", func() {
		rec := s.buildRecord(date(1990, time.June, 15), GenderMale)
		rec.EmailLinkedToPhone = true
		rec.Email = "someoneelse@qq.com"
		s.assertViolation(rec.Validate(s.ref), "email")
	})

	s.Run("linked email passes when derived", func() {
		rec := s.buildRecord(date(1990, time.June, 15), GenderMale)
		rec.EmailLinkedToPhone = true
		rec.Email = rec.Phone + "@qq.com"
		s.NoError(rec.Validate(s.ref))
	})
}

func (s *ValidateSuite) TestNameInvariant() {
	rec := s.buildRecord(date(1990, time.June, 15), GenderMale)
	rec.FirstName = "强"
	s.assertViolation(rec.Validate(s.ref), "name")
}
