package handler

import "crypto/rand"

// SecureCoinFlip reports a fair, cryptographically random bit. Passed as
// resolver.Context.CoinFlip's production source for drunkSeer's 50/50
// inversion (spec.md §5) — drawn from crypto/rand for the same reason
// roleShuffle is: no ecosystem single-bit RNG fits this better than the
// standard library (see DESIGN.md).
func SecureCoinFlip() bool {
	var b [1]byte
	if _, err := rand.Read(b[:]); err != nil {
		return false
	}
	return b[0]&1 == 1
}
