package faucet

import (
	"testing"
)

func TestComputeReward(t *testing.T) {
	tests := []struct {
		name       string
		baseAmount int64
		nftCount   int
		want       string
	}{
		{name: "no NFTs", baseAmount: 100, nftCount: 0, want: "100"},
		{name: "one NFT gets 1.5x", baseAmount: 100, nftCount: 1, want: "150"},
		{name: "two NFTs multiply by count", baseAmount: 100, nftCount: 2, want: "200"},
		{name: "three NFTs", baseAmount: 100, nftCount: 3, want: "300"},
		{name: "ten NFTs", baseAmount: 100, nftCount: 10, want: "1000"},
		{name: "negative count treated as none", baseAmount: 100, nftCount: -1, want: "100"},
		{name: "odd base floors the bonus", baseAmount: 25, nftCount: 1, want: "37"},
		{name: "zero base", baseAmount: 0, nftCount: 5, want: "0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeReward(tt.baseAmount, tt.nftCount)
			if got.String() != tt.want {
				t.Errorf("ComputeReward(%d, %d) = %s, want %s", tt.baseAmount, tt.nftCount, got.String(), tt.want)
			}
		})
	}
}

func TestRewardMultiplier(t *testing.T) {
	tests := []struct {
		nftCount int
		want     string
	}{
		{nftCount: 0, want: "1"},
		{nftCount: 1, want: "1.5"},
		{nftCount: 2, want: "2"},
		{nftCount: 7, want: "7"},
	}
	for _, tt := range tests {
		got := RewardMultiplier(tt.nftCount)
		if got.String() != tt.want {
			t.Errorf("RewardMultiplier(%d) = %s, want %s", tt.nftCount, got.String(), tt.want)
		}
	}
}
