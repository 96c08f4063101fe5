package utils

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateISBN13(t *testing.T) {
	isbn13Pattern := regexp.MustCompile(`^\d{13}$`)

	for i := 0; i < 100; i++ {
		isbn := GenerateISBN13()

		assert.Regexp(t, isbn13Pattern, isbn)
		assert.Equal(t, "978", isbn[:3])
		assert.True(t, IsValidISBN13(isbn), "check digit must satisfy the ISBN-13 checksum: %s", isbn)
	}
}

func TestIsValidISBN13(t *testing.T) {
	tests := []struct {
		name  string
		isbn  string
		valid bool
	}{
		{"known valid isbn", "9780306406157", true},
		{"wrong check digit", "9780306406158", false},
		{"too short", "978030640615", false},
		{"too long", "97803064061571", false},
		{"non digit", "978030640615X", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, IsValidISBN13(tt.isbn))
		})
	}
}
