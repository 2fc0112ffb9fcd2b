package validator

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotBlank(t *testing.T) {
	validator := New()
	validator.Check(NotBlank(""), "q", "Query is required")
	if validator.Valid() {
		t.Error("validator.Valid() should return false")
	}
	if validator.Errors["q"] != "Query is required" {
		t.Error("validator.Errors[q] should contain the correct error message")
	}

	assert.False(t, NotBlank(" \t\n"))
	assert.True(t, NotBlank(" fra "))
}

func TestMaxRunes(t *testing.T) {
	assert.True(t, MaxRunes("", 0))
	assert.True(t, MaxRunes("Åland", 5))
	assert.False(t, MaxRunes("Åland!", 5))
	assert.True(t, MaxRunes(strings.Repeat("é", 100), 100))
	assert.False(t, MaxRunes(strings.Repeat("é", 101), 100))
}

func TestIsURL(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"https://countries.example/countries", true},
		{"http://localhost:8080/flags/fr.png", true},
		{"ftp://example.com/file", false},
		{"/relative/path.png", false},
		{"not a url", false},
		{"", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, IsURL(tt.in), "input %q", tt.in)
	}
}
