package matrix

import (
	"strings"

	"maunium.net/go/mautrix/id"
)

// WalletFromUserID extracts the XRPL wallet address embedded in a
// TextRP user ID. TextRP identities are the wallet address itself,
// e.g. "@rN7n3473SaZBCG4dFL83w7a1RXtXtbk2D9:synapse.textrp.io".
// Returns "" when the localpart does not look like a classic address.
func WalletFromUserID(userID id.UserID) string {
	localpart := userID.Localpart()
	if localpart == "" {
		// Some homeservers hand out IDs Localpart can't split.
		s := strings.TrimPrefix(userID.String(), "@")
		if i := strings.IndexByte(s, ':'); i >= 0 {
			localpart = s[:i]
		} else {
			localpart = s
		}
	}
	if !strings.HasPrefix(localpart, "r") {
		return ""
	}
	return localpart
}
