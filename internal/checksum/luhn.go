package checksum

import (
	dErrors "shenfen/pkg/domain-errors"
)

// ComputeLuhnChecksum returns the Luhn check digit for the given digit string,
// the digit that makes digits+check pass ValidateLuhn.
func ComputeLuhnChecksum(digits string) (byte, error) {
	if len(digits) == 0 {
		return 0, dErrors.New(dErrors.CodeValidation, "luhn input must not be empty")
	}
	sum, err := luhnSum(digits, true)
	if err != nil {
		return 0, err
	}
	return byte('0' + (10-sum%10)%10), nil
}

// ValidateLuhn reports whether the full number, including its final check
// digit, passes the Luhn alternating-double-sum scheme.
func ValidateLuhn(number string) bool {
	if len(number) < 2 {
		return false
	}
	sum, err := luhnSum(number[:len(number)-1], true)
	if err != nil {
		return false
	}
	c := number[len(number)-1]
	if c < '0' || c > '9' {
		return false
	}
	return (sum+int(c-'0'))%10 == 0
}

// luhnSum computes the weighted digit sum walking right to left. When
// doubleFirst is true the rightmost digit of s is doubled, which is the
// correct phase for a payload that a check digit will be appended to.
func luhnSum(s string, doubleFirst bool) (int, error) {
	sum := 0
	double := doubleFirst
	for i := len(s) - 1; i >= 0; i-- {
		c := s[i]
		if c < '0' || c > '9' {
			return 0, dErrors.New(dErrors.CodeValidation, "luhn input must contain only digits")
		}
		d := int(c - '0')
		if double {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}
		sum += d
		double = !double
	}
	return sum, nil
}
