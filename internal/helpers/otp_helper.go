package helpers

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"time"
)

// How long a passcode stays valid after it is issued.
const OTPValidity = 10 * time.Minute

// GenerateOTP returns a uniformly random 6-digit code in 100000..999999,
// so the leading digit is never zero.
func GenerateOTP() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", fmt.Errorf("failed to generate otp: %w", err)
	}
	return fmt.Sprintf("%d", n.Int64()+100000), nil
}
