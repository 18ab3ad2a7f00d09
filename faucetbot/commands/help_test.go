package commands

import (
	"strings"
	"testing"
	"time"

	"github.com/textrp/faucetbot/faucetbot/database/models"
)

func TestRenderHelp(t *testing.T) {
	names := []string{"faucet", "help", "blacklist"}

	body := renderHelp("!", names, false)
	if !strings.Contains(body, "- `!faucet` - Claim your daily token reward\n") {
		t.Errorf("help body missing faucet line:\n%s", body)
	}
	if strings.Contains(body, "blacklist") {
		t.Errorf("non-admin help should hide admin commands:\n%s", body)
	}

	admin := renderHelp("!", names, true)
	if !strings.Contains(admin, "- `!blacklist` - Ban a wallet from the faucet (admin)\n") {
		t.Errorf("admin help missing blacklist line:\n%s", admin)
	}
}

func TestRenderBlacklist(t *testing.T) {
	entries := []*models.BlacklistEntry{
		{
			Wallet:        "rN7n3473SaZBCG4dFL83w7a1RXtXtbk2D9",
			Reason:        "abuse",
			BlacklistedBy: "@admin:textrp.io",
			BlacklistedAt: time.Date(2025, 3, 14, 9, 0, 0, 0, time.UTC),
		},
	}

	body := renderBlacklist(entries)
	want := "- `rN7n3473SaZBCG4dFL83w7a1RXtXtbk2D9` - abuse (by @admin:textrp.io, 2025-03-14)\n"
	if !strings.Contains(body, want) {
		t.Errorf("blacklist body missing entry line:\n%s", body)
	}
	if !strings.Contains(body, "**Blacklisted wallets** (1)") {
		t.Errorf("blacklist body missing header:\n%s", body)
	}
}

// Chat output should stick to characters every client font renders the
// same way.
func TestRenderedListsAreASCII(t *testing.T) {
	body := renderHelp("!", []string{"faucet", "help"}, true) +
		renderBlacklist([]*models.BlacklistEntry{{
			Wallet:        "rHb9CJAWyB4rj91VRWn96DkukG4bwdtyTh",
			Reason:        "test",
			BlacklistedBy: "@admin:textrp.io",
			BlacklistedAt: time.Now(),
		}})
	for _, r := range body {
		if r > 127 {
			t.Fatalf("non-ASCII rune %q in rendered output:\n%s", r, body)
		}
	}
}
