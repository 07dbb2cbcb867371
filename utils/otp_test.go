package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateOTP(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 20; i++ {
		otp := GenerateOTP()
		assert.Len(t, otp, 6)
		for _, c := range otp {
			assert.True(t, c >= '0' && c <= '9', "otp %q has non-digit", otp)
		}
		seen[otp] = true
	}
	// 20 draws from a million combinations almost never collide completely
	assert.Greater(t, len(seen), 1)
}

func TestGenerateSessionID(t *testing.T) {
	a := GenerateSessionID()
	b := GenerateSessionID()
	assert.Len(t, a, 32)
	assert.NotEqual(t, a, b)
}
