// Package models defines the synthetic identity record and the invariants
// that make one internally consistent.
package models

import (
	"time"

	dErrors "shenfen/pkg/domain-errors"
)

// Gender is the record's stated gender. The national id sequence digit's
// parity must agree with it: odd for male, even for female.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

// Valid reports whether g is a known gender.
func (g Gender) Valid() bool {
	return g == GenderMale || g == GenderFemale
}

// Zh returns the gender as printed on the card.
func (g Gender) Zh() string {
	if g == GenderFemale {
		return "女"
	}
	return "男"
}

// SequenceParity returns the parity the national id sequence digit must carry
// for this gender: 1 for male, 0 for female.
func (g Gender) SequenceParity() int {
	if g == GenderFemale {
		return 0
	}
	return 1
}

// BirthdateLayout is the external representation of birthdates.
const BirthdateLayout = "2006-01-02"

// IdentityRecord is one fully assembled synthetic person. A record is built
// in a single pass by the assembler and is immutable afterward; the batch
// coordinator replaces whole candidates, never individual fields.
type IdentityRecord struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	LastName  string `json:"last_name"`
	FirstName string `json:"first_name"`
	Gender    Gender `json:"gender"`
	Birthdate string `json:"birthdate"`
	Age       int    `json:"age"`

	NationalID string  `json:"national_id"`
	Ethnicity  string  `json:"ethnicity"`
	BloodType  string  `json:"blood_type"`
	HeightCM   int     `json:"height_cm"`
	WeightKG   float64 `json:"weight_kg"`

	Phone    string `json:"phone"`
	Email    string `json:"email"`
	Address  string `json:"address"`
	City     string `json:"city"`
	Province string `json:"province"`
	Zipcode  string `json:"zipcode"`
	Country  string `json:"country"`

	Company     string `json:"company"`
	JobTitle    string `json:"job_title"`
	Education   string `json:"education"`
	Major       string `json:"major,omitempty"`
	SalaryRange string `json:"salary_range"`

	Username     string `json:"username"`
	Password     string `json:"password"`
	PasswordHash string `json:"password_hash"`
	WechatID     string `json:"wechat_id"`
	QQNumber     string `json:"qq_number"`

	PoliticalStatus string `json:"political_status"`
	MaritalStatus   string `json:"marital_status"`
	Religion        string `json:"religion"`

	BankCard         string `json:"bank_card"`
	Bank             string `json:"bank"`
	LicensePlate     string `json:"license_plate"`
	SocialCreditCode string `json:"social_credit_code"`

	IPAddress  string `json:"ip_address"`
	MACAddress string `json:"mac_address"`
	UserAgent  string `json:"user_agent"`
	Browser    string `json:"browser"`
	OS         string `json:"os"`

	ZodiacSign    string `json:"zodiac_sign"`
	ChineseZodiac string `json:"chinese_zodiac"`

	EmergencyContact string `json:"emergency_contact"`
	EmergencyPhone   string `json:"emergency_phone"`
	Hobbies          string `json:"hobbies"`

	// EmailLinkedToPhone records the stage-one decision of the linked email
	// draw, so a reader can tell a derived qq.com mailbox from a coincidental
	// one and a rerun with the same seed reproduces the linkage.
	EmailLinkedToPhone bool `json:"email_linked_to_phone,omitempty"`
}

// BirthTime parses the record's birthdate.
func (r *IdentityRecord) BirthTime() (time.Time, error) {
	t, err := time.Parse(BirthdateLayout, r.Birthdate)
	if err != nil {
		return time.Time{}, dErrors.Wrap(err, dErrors.CodeValidation, "birthdate is not a calendar date")
	}
	return t, nil
}
