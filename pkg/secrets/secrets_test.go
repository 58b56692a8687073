package secrets

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"

	dErrors "shenfen/pkg/domain-errors"
)

type SecretsSuite struct {
	suite.Suite
}

func TestSecretsSuite(t *testing.T) {
	suite.Run(t, new(SecretsSuite))
}

func (s *SecretsSuite) TestGenerate() {
	s.Run("covers the required character classes", func() {
		rng := rand.New(rand.NewSource(42))
		for i := 0; i < 50; i++ {
			pw := Generate(rng)
			s.GreaterOrEqual(len(pw), 10)
			s.LessOrEqual(len(pw), 14)
			s.True(strings.ContainsAny(pw, upperChars), "password %q lacks upper case", pw)
			s.True(strings.ContainsAny(pw, digitChars), "password %q lacks a digit", pw)
			s.True(strings.ContainsAny(pw, symbolChars), "password %q lacks a symbol", pw)
		}
	})

	s.Run("is deterministic for a fixed seed", func() {
		a := Generate(rand.New(rand.NewSource(7)))
		b := Generate(rand.New(rand.NewSource(7)))
		s.Equal(a, b)
	})
}

func (s *SecretsSuite) TestHashAndVerify() {
	s.Run("round-trips a password", func() {
		pw := Generate(rand.New(rand.NewSource(1)))
		hash, err := Hash(pw)
		s.Require().NoError(err)
		s.NoError(Verify(pw, hash))
	})

	s.Run("rejects the wrong password", func() {
		hash, err := Hash("zhangwei1990!")
		s.Require().NoError(err)
		err = Verify("liXiu2024#", hash)
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeValidation))
	})

	s.Run("rejects empty passwords", func() {
		_, err := Hash("")
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeValidation))
	})
}
