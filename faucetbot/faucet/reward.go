package faucet

import (
	"github.com/shopspring/decimal"
)

var bonusMultiplier = decimal.RequireFromString("1.5")

// ComputeReward returns the disbursement for a claim. Holding one
// allow-listed NFT gives a 1.5x bonus; from two onward the multiplier
// equals the count itself. Fractional tokens are never issued, so the
// result is truncated toward zero.
func ComputeReward(baseAmount int64, matchingNFTCount int) decimal.Decimal {
	base := decimal.NewFromInt(baseAmount)

	var multiplier decimal.Decimal
	switch {
	case matchingNFTCount <= 0:
		multiplier = decimal.NewFromInt(1)
	case matchingNFTCount == 1:
		multiplier = bonusMultiplier
	default:
		multiplier = decimal.NewFromInt(int64(matchingNFTCount))
	}

	return base.Mul(multiplier).Floor()
}

// RewardMultiplier exposes the multiplier alone for the status
// commands that display it without claiming.
func RewardMultiplier(matchingNFTCount int) decimal.Decimal {
	switch {
	case matchingNFTCount <= 0:
		return decimal.NewFromInt(1)
	case matchingNFTCount == 1:
		return bonusMultiplier
	default:
		return decimal.NewFromInt(int64(matchingNFTCount))
	}
}
