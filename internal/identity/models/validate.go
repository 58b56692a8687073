package models

import (
	"fmt"
	"strings"
	"time"

	"shenfen/internal/checksum"
	"shenfen/internal/refdata"
	dErrors "shenfen/pkg/domain-errors"
)

// Validate enforces every structural invariant on a freshly assembled record.
// A failure here is an internal defect in the sampler or the reference
// tables, never a recoverable condition, so each violation carries the
// invariant_violation code and names the offending field.
func (r *IdentityRecord) Validate(ref *refdata.Provider) error {
	if !r.Gender.Valid() {
		return violation("gender", "unknown gender %q", r.Gender)
	}
	if r.Name == "" || r.Name != r.LastName+r.FirstName {
		return violation("name", "name %q does not equal surname %q + given name %q", r.Name, r.LastName, r.FirstName)
	}

	birth, err := r.BirthTime()
	if err != nil {
		return violation("birthdate", "birthdate %q does not parse", r.Birthdate)
	}
	if birth.After(time.Now()) {
		return violation("birthdate", "birthdate %q lies in the future", r.Birthdate)
	}
	if got := AgeAt(birth, time.Now()); got != r.Age {
		return violation("age", "age %d does not match birthdate %s (want %d)", r.Age, r.Birthdate, got)
	}

	if err := r.validateNationalID(birth); err != nil {
		return err
	}
	if err := r.validateChecksummedFields(); err != nil {
		return err
	}
	if err := r.validateAgeGates(ref); err != nil {
		return err
	}
	if err := r.validateDerived(birth); err != nil {
		return err
	}
	if err := r.validateContact(); err != nil {
		return err
	}
	return nil
}

func (r *IdentityRecord) validateNationalID(birth time.Time) error {
	if !checksum.ValidateID(r.NationalID) {
		return violation("national_id", "national id %q fails GB 11643 validation", r.NationalID)
	}
	embedded, err := checksum.EmbeddedBirthdate(r.NationalID)
	if err != nil {
		return violation("national_id", "national id %q carries no birthdate", r.NationalID)
	}
	if !embedded.Equal(birth) {
		return violation("national_id", "embedded birthdate %s does not equal record birthdate %s",
			embedded.Format(BirthdateLayout), r.Birthdate)
	}
	parity, err := checksum.EmbeddedSequenceParity(r.NationalID)
	if err != nil {
		return violation("national_id", "national id %q carries no sequence digit", r.NationalID)
	}
	if parity != r.Gender.SequenceParity() {
		return violation("national_id", "sequence parity %d contradicts gender %s", parity, r.Gender)
	}
	return nil
}

func (r *IdentityRecord) validateChecksummedFields() error {
	if !checksum.ValidateLuhn(r.BankCard) {
		return violation("bank_card", "bank card %q fails the Luhn check", r.BankCard)
	}
	if !checksum.ValidateCreditCode(r.SocialCreditCode) {
		return violation("social_credit_code", "credit code %q fails GB 32100 validation", r.SocialCreditCode)
	}
	return nil
}

func (r *IdentityRecord) validateAgeGates(ref *refdata.Provider) error {
	gates := []struct {
		field string
		value string
		table refdata.Table
	}{
		{"education", r.Education, ref.Educations},
		{"political_status", r.PoliticalStatus, ref.Politicals},
		{"marital_status", r.MaritalStatus, ref.Maritals},
	}
	for _, g := range gates {
		entry, ok := findEntry(g.table, g.value)
		if !ok {
			return violation(g.field, "%s %q is not a known category", g.field, g.value)
		}
		if entry.MinAge > 0 && r.Age < entry.MinAge {
			return violation(g.field, "%s %q requires age >= %d, record is %d", g.field, g.value, entry.MinAge, r.Age)
		}
		if entry.MaxAge > 0 && r.Age > entry.MaxAge {
			return violation(g.field, "%s %q requires age <= %d, record is %d", g.field, g.value, entry.MaxAge, r.Age)
		}
	}
	if r.Major != "" && !refdata.HasMajor(r.Education) {
		return violation("major", "major %q assigned below tertiary education %q", r.Major, r.Education)
	}
	return nil
}

func (r *IdentityRecord) validateDerived(birth time.Time) error {
	if want := ZodiacSign(birth); r.ZodiacSign != want {
		return violation("zodiac_sign", "zodiac sign %q does not derive from birthdate (want %q)", r.ZodiacSign, want)
	}
	if want := ChineseZodiac(birth); r.ChineseZodiac != want {
		return violation("chinese_zodiac", "chinese zodiac %q does not derive from birth year (want %q)", r.ChineseZodiac, want)
	}
	return nil
}

func (r *IdentityRecord) validateContact() error {
	if len(r.Phone) != 11 || r.Phone[0] != '1' {
		return violation("phone", "phone %q is not an 11-digit mobile number", r.Phone)
	}
	for i := 0; i < len(r.Phone); i++ {
		if r.Phone[i] < '0' || r.Phone[i] > '9' {
			return violation("phone", "phone %q contains a non-digit", r.Phone)
		}
	}
	if !strings.Contains(r.Email, "@") {
		return violation("email", "email %q has no domain", r.Email)
	}
	if r.EmailLinkedToPhone && r.Email != r.Phone+"@qq.com" {
		return violation("email", "linked email %q does not derive from phone %q", r.Email, r.Phone)
	}
	return nil
}

func findEntry(table refdata.Table, value string) (refdata.Entry, bool) {
	for _, e := range table.Entries {
		if e.Value == value {
			return e, true
		}
	}
	return refdata.Entry{}, false
}

func violation(field, format string, args ...any) error {
	return dErrors.New(dErrors.CodeInvariantViolation,
		fmt.Sprintf("field %s: %s", field, fmt.Sprintf(format, args...)))
}
