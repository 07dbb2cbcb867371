package utils

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// GenerateOTP returns a 6-digit confirmation code for email verification.
func GenerateOTP() string {
	const digits = "0123456789"

	buf := make([]byte, 6)
	if _, err := rand.Read(buf); err != nil {
		// a broken platform CSPRNG is not recoverable; better to crash than
		// to hand out guessable codes
		panic(fmt.Sprintf("crypto/rand failed: %v", err))
	}

	code := make([]byte, len(buf))
	for i, b := range buf {
		code[i] = digits[int(b)%10]
	}
	return string(code)
}

// GenerateSessionID returns a 32-char hex token for short-lived redis
// sessions (Google signup handoff).
func GenerateSessionID() string {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		panic(fmt.Sprintf("crypto/rand failed: %v", err))
	}
	return hex.EncodeToString(buf)
}
