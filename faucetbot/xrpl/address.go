package xrpl

import (
	"bytes"
	"crypto/sha256"
	"math/big"
	"strings"

	"github.com/shopspring/decimal"
)

// rippleAlphabet is the base58 dictionary used by XRPL classic
// addresses. Note 'r' encodes zero, which is why every classic address
// starts with it (the version byte is 0x00).
const rippleAlphabet = "rpshnaf39wBUDNEGHJKLM4PQRST7VWXYZ2bcdeCg65jkm8oFqi1tuvAxyz"

var dropsPerXRP = decimal.NewFromInt(1_000_000)

// IsValidAddress reports whether address is a well-formed XRPL classic
// address: base58 over the ripple alphabet, version byte 0x00, and a
// valid double-SHA256 checksum.
func IsValidAddress(address string) bool {
	if len(address) < 25 || len(address) > 35 || address[0] != 'r' {
		return false
	}

	decoded, ok := decodeBase58(address)
	if !ok || len(decoded) != 25 || decoded[0] != 0x00 {
		return false
	}

	first := sha256.Sum256(decoded[:21])
	second := sha256.Sum256(first[:])
	return bytes.Equal(second[:4], decoded[21:])
}

func decodeBase58(s string) ([]byte, bool) {
	n := new(big.Int)
	radix := big.NewInt(58)

	for _, c := range s {
		idx := strings.IndexRune(rippleAlphabet, c)
		if idx < 0 {
			return nil, false
		}
		n.Mul(n, radix)
		n.Add(n, big.NewInt(int64(idx)))
	}

	// Each leading zero-value character encodes one zero byte.
	leading := 0
	for leading < len(s) && s[leading] == rippleAlphabet[0] {
		leading++
	}

	body := n.Bytes()
	out := make([]byte, leading+len(body))
	copy(out[leading:], body)
	return out, true
}

// DropsToXRP converts a drops string (the smallest XRP unit) to XRP.
func DropsToXRP(drops string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(drops)
	if err != nil {
		return decimal.Zero, err
	}
	return d.Div(dropsPerXRP), nil
}

// XRPToDrops converts an XRP amount to a whole-drops string.
func XRPToDrops(xrp decimal.Decimal) string {
	return xrp.Mul(dropsPerXRP).Truncate(0).String()
}
