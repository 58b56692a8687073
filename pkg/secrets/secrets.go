// Package secrets builds the synthetic account password pair: a plaintext
// password drawn from a seeded generator plus the bcrypt hash a real system
// would store. The plaintext stays in the record because the whole point of
// the fixture is showing both sides of the credential.
package secrets

import (
	"errors"
	"math/rand"

	"golang.org/x/crypto/bcrypt"

	dErrors "shenfen/pkg/domain-errors"
)

const (
	lowerChars   = "abcdefghijklmnopqrstuvwxyz"
	upperChars   = "ABCDEFGHJKLMNPQRSTUVWXYZ"
	digitChars   = "0123456789"
	symbolChars  = "!@#$%_"
	passwordCost = bcrypt.MinCost
)

// Generate creates a plausible account password from the given seeded
// generator: 10 to 14 characters with at least one upper-case letter, one
// digit, and one symbol. Deterministic for a fixed generator state.
func Generate(rng *rand.Rand) string {
	length := 10 + rng.Intn(5)
	b := make([]byte, length)
	for i := range b {
		b[i] = lowerChars[rng.Intn(len(lowerChars))]
	}
	// Guarantee the three required classes at distinct positions.
	positions := rng.Perm(length)[:3]
	b[positions[0]] = upperChars[rng.Intn(len(upperChars))]
	b[positions[1]] = digitChars[rng.Intn(len(digitChars))]
	b[positions[2]] = symbolChars[rng.Intn(len(symbolChars))]
	return string(b)
}

// Hash creates a bcrypt hash of the provided password.
// MinCost keeps batch generation fast; these hashes protect nothing real.
func Hash(password string) (string, error) {
	if password == "" {
		return "", dErrors.New(dErrors.CodeValidation, "password cannot be empty")
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), passwordCost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return "", dErrors.New(dErrors.CodeValidation, "password is too long")
		}
		return "", dErrors.Wrap(err, dErrors.CodeInternal, "could not hash password")
	}
	return string(hashed), nil
}

// Verify checks if a plaintext password matches a bcrypt hash.
func Verify(password, hash string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return dErrors.New(dErrors.CodeValidation, "password does not match hash")
		}
		return dErrors.Wrap(err, dErrors.CodeInternal, "could not verify password")
	}
	return nil
}
