package validation_test

import (
	"testing"

	"go-studio-backend/pkg/validation"

	"github.com/stretchr/testify/assert"
)

func TestValidEmail(t *testing.T) {
	valid := []string{
		"a@b.c",
		"user@example.com",
		"first.last@sub.domain.io",
		// The loose pattern is deliberately permissive
		"a@@b.c",
		"weird@chars@ok.dev",
	}
	for _, v := range valid {
		assert.True(t, validation.ValidEmail(v), "expected %q to be accepted", v)
	}

	invalid := []string{
		"",
		"a",
		"a@b",
		"no-at-sign.com",
		"spaces in@address .com",
		"@.",
	}
	for _, v := range invalid {
		assert.False(t, validation.ValidEmail(v), "expected %q to be rejected", v)
	}
}
