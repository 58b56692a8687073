package checksum

import (
	"strings"

	dErrors "shenfen/pkg/domain-errors"
)

// CreditCodeAlphabet is the 31-symbol alphabet of GB 32100-2015: digits plus
// uppercase letters, excluding the easily confused I, O, S, V, and Z.
const CreditCodeAlphabet = "0123456789ABCDEFGHJKLMNPQRTUWXY"

// creditCodeWeights holds the GB 32100-2015 position weights, 3^(i-1) mod 31
// for position i = 1..17.
var creditCodeWeights = [17]int{1, 3, 9, 27, 19, 26, 16, 17, 20, 29, 25, 13, 8, 24, 10, 30, 28}

// ComputeCreditCodeChecksum returns the GB 32100-2015 check character for the
// first 17 characters of a unified social credit code.
func ComputeCreditCodeChecksum(first17 string) (byte, error) {
	if len(first17) != 17 {
		return 0, dErrors.New(dErrors.CodeValidation, "credit code prefix must be exactly 17 characters")
	}
	sum := 0
	for i := 0; i < 17; i++ {
		v := strings.IndexByte(CreditCodeAlphabet, first17[i])
		if v < 0 {
			return 0, dErrors.New(dErrors.CodeValidation, "credit code prefix contains a character outside the GB 32100 alphabet")
		}
		sum += v * creditCodeWeights[i]
	}
	return CreditCodeAlphabet[(31-sum%31)%31], nil
}

// ValidateCreditCode reports whether code is a structurally valid 18-character
// unified social credit code with a matching check character.
func ValidateCreditCode(code string) bool {
	if len(code) != 18 {
		return false
	}
	check, err := ComputeCreditCodeChecksum(code[:17])
	if err != nil {
		return false
	}
	return code[17] == check
}
