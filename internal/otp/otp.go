package otp

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

const codeLength = 6

// GenerateCode produces a random numeric verification code, left-padded
// with zeros to the fixed length.
func GenerateCode() (string, error) {
	max := big.NewInt(1)
	for i := 0; i < codeLength; i++ {
		max.Mul(max, big.NewInt(10))
	}
	n, err := rand.Int(rand.Reader, max)
	if err != nil {
		return "", fmt.Errorf("failed to generate otp code: %w", err)
	}
	return fmt.Sprintf("%0*d", codeLength, n), nil
}
