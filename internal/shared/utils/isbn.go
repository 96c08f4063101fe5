package utils

import (
	"math/rand"
	"strconv"
	"strings"
)

// GenerateISBN13 produces a random ISBN-13 with the "978" bookland prefix:
// 9 random digits follow the prefix, then the check digit computed over the
// 12 digits with alternating weights 1 and 3.
func GenerateISBN13() string {
	var sb strings.Builder
	sb.WriteString("978")

	for i := 0; i < 9; i++ {
		sb.WriteByte(byte('0' + rand.Intn(10)))
	}

	isbn := sb.String()
	sum := 0
	for i, r := range isbn {
		digit := int(r - '0')
		if i%2 == 0 {
			sum += digit
		} else {
			sum += 3 * digit
		}
	}
	checkDigit := (10 - sum%10) % 10

	return isbn + strconv.Itoa(checkDigit)
}

// IsValidISBN13 verifies length, digits and the ISBN-13 checksum.
func IsValidISBN13(isbn string) bool {
	if len(isbn) != 13 {
		return false
	}
	sum := 0
	for i, r := range isbn {
		if r < '0' || r > '9' {
			return false
		}
		digit := int(r - '0')
		if i%2 == 0 {
			sum += digit
		} else {
			sum += 3 * digit
		}
	}
	return sum%10 == 0
}
