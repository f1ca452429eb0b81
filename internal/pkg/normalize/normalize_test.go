package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEmail(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"lowercases", "Reception@Hotel.COM", "reception@hotel.com"},
		{"trims whitespace", "  front@hotel.com \t", "front@hotel.com"},
		{"already canonical", "desk@hotel.com", "desk@hotel.com"},
		{"empty stays empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Email(tt.input))
		})
	}
}

func TestPhone(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"strips separators", "081-234-5678", "0812345678"},
		{"strips plus and spaces", "+66 81 234 5678", "66812345678"},
		{"strips parentheses", "(081) 2345678", "0812345678"},
		{"digits only unchanged", "0812345678", "0812345678"},
		{"letters removed", "ext123", "123"},
		{"empty stays empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Phone(tt.input))
		})
	}
}
