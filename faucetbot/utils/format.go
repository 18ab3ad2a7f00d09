package utils

import (
	"strconv"

	"github.com/shopspring/decimal"
)

func FormatNumber(n int64) string {
	str := strconv.FormatInt(n, 10)
	if n < 0 {
		str = str[1:]
	}

	var result []byte
	for i := len(str) - 1; i >= 0; i-- {
		if (len(str)-i-1)%3 == 0 && i != len(str)-1 {
			result = append([]byte{','}, result...)
		}
		result = append([]byte{str[i]}, result...)
	}

	if n < 0 {
		return "-" + string(result)
	}
	return string(result)
}

// ShortHash abbreviates a transaction hash for chat display.
func ShortHash(hash string) string {
	if len(hash) <= 20 {
		return hash
	}
	return hash[:12] + "..." + hash[len(hash)-8:]
}

// FormatXRP renders an XRP amount with the standard six decimal places.
func FormatXRP(amount decimal.Decimal) string {
	return amount.StringFixed(6) + " XRP"
}
