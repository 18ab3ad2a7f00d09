package xrpl

import (
	"testing"

	"github.com/shopspring/decimal"
)

// The base58 dictionary is easy to corrupt silently; a single wrong
// character shifts every decode after it and breaks all checksums.
func TestRippleAlphabet(t *testing.T) {
	if len(rippleAlphabet) != 58 {
		t.Fatalf("alphabet length = %d, want 58", len(rippleAlphabet))
	}
	seen := make(map[byte]bool, 58)
	for i := 0; i < len(rippleAlphabet); i++ {
		c := rippleAlphabet[i]
		if seen[c] {
			t.Errorf("duplicate character %q in alphabet", c)
		}
		seen[c] = true
	}
}

func TestIsValidAddress(t *testing.T) {
	tests := []struct {
		name    string
		address string
		want    bool
	}{
		{name: "genesis account", address: "rHb9CJAWyB4rj91VRWn96DkukG4bwdtyTh", want: true},
		{name: "well-known account", address: "rN7n3473SaZBCG4dFL83w7a1RXtXtbk2D9", want: true},
		{name: "account zero", address: "rrrrrrrrrrrrrrrrrrrrrhoLvTp", want: true},
		{name: "account one", address: "rrrrrrrrrrrrrrrrrrrrBZbvji", want: true},
		{name: "empty", address: "", want: false},
		{name: "too short", address: "rHb9CJAWyB4rj91", want: false},
		{name: "missing r prefix", address: "N7n3473SaZBCG4dFL83w7a1RXtXtbk2D9x", want: false},
		{name: "bad checksum", address: "rN7n3473SaZBCG4dFL83w7a1RXtXtbk2D8", want: false},
		{name: "non-alphabet character", address: "rN7n3473SaZBCG4dFL83w7a1RXtXtbk20O", want: false},
		{name: "x-address not accepted", address: "XV5sbjUmgPpvXv4ixFWZ5ptAYZ6PD28Sq49uo34VyjnmK5H", want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsValidAddress(tt.address); got != tt.want {
				t.Errorf("IsValidAddress(%q) = %v, want %v", tt.address, got, tt.want)
			}
		})
	}
}

func TestDropsToXRP(t *testing.T) {
	tests := []struct {
		drops   string
		want    string
		wantErr bool
	}{
		{drops: "1000000", want: "1"},
		{drops: "1", want: "0.000001"},
		{drops: "25000000", want: "25"},
		{drops: "0", want: "0"},
		{drops: "not-a-number", wantErr: true},
	}
	for _, tt := range tests {
		got, err := DropsToXRP(tt.drops)
		if (err != nil) != tt.wantErr {
			t.Errorf("DropsToXRP(%q) error = %v, wantErr %v", tt.drops, err, tt.wantErr)
			continue
		}
		if err == nil && got.String() != tt.want {
			t.Errorf("DropsToXRP(%q) = %s, want %s", tt.drops, got.String(), tt.want)
		}
	}
}

func TestXRPToDrops(t *testing.T) {
	tests := []struct {
		xrp  string
		want string
	}{
		{xrp: "1", want: "1000000"},
		{xrp: "0.1", want: "100000"},
		{xrp: "0.0000019", want: "1"}, // sub-drop precision truncates
	}
	for _, tt := range tests {
		got := XRPToDrops(decimal.RequireFromString(tt.xrp))
		if got != tt.want {
			t.Errorf("XRPToDrops(%s) = %s, want %s", tt.xrp, got, tt.want)
		}
	}
}

func TestNormalizeCurrency(t *testing.T) {
	tests := []struct {
		name string
		code string
		want string
	}{
		{name: "short code passes through", code: "TXT", want: "TXT"},
		{name: "standard three-letter", code: "USD", want: "USD"},
		{
			name: "hex code decodes to ascii",
			code: "5458540000000000000000000000000000000000",
			want: "TXT",
		},
		{
			name: "all zero hex stays hex",
			code: "0000000000000000000000000000000000000000",
			want: "0000000000000000000000000000000000000000",
		},
		{
			name: "non-printable bytes stay hex",
			code: "0102030000000000000000000000000000000000",
			want: "0102030000000000000000000000000000000000",
		},
		{
			name: "invalid hex stays as-is",
			code: "ZZZZ540000000000000000000000000000000000",
			want: "ZZZZ540000000000000000000000000000000000",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeCurrency(tt.code); got != tt.want {
				t.Errorf("NormalizeCurrency(%q) = %q, want %q", tt.code, got, tt.want)
			}
		})
	}
}
