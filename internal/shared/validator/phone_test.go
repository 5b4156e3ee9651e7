package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPhoneRegex(t *testing.T) {
	testCases := []struct {
		phone string
		valid bool
	}{
		{"010-1234-5678", true},
		{"01012345678", true},
		{"+82-10-1234-5678", true},
		{"+8210-1234-5678", true},
		{"02-123-4567", false},   // landline
		{"010-1234-567", false},  // short
		{"hello", false},
		{"", false},
	}

	for _, tc := range testCases {
		t.Run(tc.phone, func(t *testing.T) {
			assert.Equal(t, tc.valid, phoneRegex.MatchString(tc.phone))
		})
	}
}
