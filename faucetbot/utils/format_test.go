package utils

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		n    int64
		want string
	}{
		{n: 0, want: "0"},
		{n: 7, want: "7"},
		{n: 999, want: "999"},
		{n: 1000, want: "1,000"},
		{n: 1234567, want: "1,234,567"},
		{n: -1234567, want: "-1,234,567"},
	}
	for _, tt := range tests {
		if got := FormatNumber(tt.n); got != tt.want {
			t.Errorf("FormatNumber(%d) = %s, want %s", tt.n, got, tt.want)
		}
	}
}

func TestShortHash(t *testing.T) {
	full := "A1B2C3D4E5F6A1B2C3D4E5F6A1B2C3D4E5F6A1B2C3D4E5F6A1B2C3D4E5F6A1B2"
	if got := ShortHash(full); got != "A1B2C3D4E5F6...E5F6A1B2" {
		t.Errorf("ShortHash() = %s", got)
	}
	if got := ShortHash("SHORT"); got != "SHORT" {
		t.Errorf("ShortHash(SHORT) = %s, want unchanged", got)
	}
}

func TestFormatXRP(t *testing.T) {
	if got := FormatXRP(decimal.RequireFromString("25.5")); got != "25.500000 XRP" {
		t.Errorf("FormatXRP(25.5) = %s", got)
	}
}
