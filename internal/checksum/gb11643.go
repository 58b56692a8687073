// Package checksum implements the check-digit schemes behind Chinese
// structured identifiers: GB 11643-1999 resident identity numbers, Luhn
// payment card numbers, and GB 32100-2015 unified social credit codes.
// All functions are pure; they perform no I/O and draw no randomness.
package checksum

import (
	"time"

	dErrors "shenfen/pkg/domain-errors"
)

// idWeights holds the GB 11643-1999 position weights, defined as
// 2^(18-i) mod 11 for position i = 1..17.
var idWeights = [17]int{7, 9, 10, 5, 8, 4, 2, 1, 6, 3, 7, 9, 10, 5, 8, 4, 2}

// idCheckChars maps the weighted sum mod 11 to the final check character.
const idCheckChars = "10X98765432"

// ComputeIDChecksum returns the GB 11643-1999 check character for the first
// 17 digits of a resident identity number.
func ComputeIDChecksum(first17 string) (byte, error) {
	if len(first17) != 17 {
		return 0, dErrors.New(dErrors.CodeValidation, "identity number prefix must be exactly 17 digits")
	}
	sum := 0
	for i := 0; i < 17; i++ {
		c := first17[i]
		if c < '0' || c > '9' {
			return 0, dErrors.New(dErrors.CodeValidation, "identity number prefix must contain only digits")
		}
		sum += int(c-'0') * idWeights[i]
	}
	return idCheckChars[sum%11], nil
}

// ValidateID reports whether id is a structurally valid 18-character resident
// identity number: 17 digits plus a matching check character, with an embedded
// birthdate that parses as a real calendar date and does not lie in the future.
func ValidateID(id string) bool {
	if len(id) != 18 {
		return false
	}
	check, err := ComputeIDChecksum(id[:17])
	if err != nil {
		return false
	}
	if id[17] != check {
		return false
	}
	birth, err := time.Parse("20060102", id[6:14])
	if err != nil {
		return false
	}
	return !birth.After(time.Now())
}

// EmbeddedBirthdate extracts the birthdate encoded in positions 7-14 of a
// resident identity number. The id is not otherwise validated.
func EmbeddedBirthdate(id string) (time.Time, error) {
	if len(id) != 18 {
		return time.Time{}, dErrors.New(dErrors.CodeValidation, "identity number must be 18 characters")
	}
	birth, err := time.Parse("20060102", id[6:14])
	if err != nil {
		return time.Time{}, dErrors.Wrap(err, dErrors.CodeValidation, "identity number contains no valid birthdate")
	}
	return birth, nil
}

// EmbeddedSequenceParity returns the parity of the 3-digit sequence number at
// positions 15-17. Odd parity denotes male, even denotes female.
func EmbeddedSequenceParity(id string) (int, error) {
	if len(id) != 18 {
		return 0, dErrors.New(dErrors.CodeValidation, "identity number must be 18 characters")
	}
	c := id[16]
	if c < '0' || c > '9' {
		return 0, dErrors.New(dErrors.CodeValidation, "identity number sequence must be numeric")
	}
	return int(c-'0') % 2, nil
}
