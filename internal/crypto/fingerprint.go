package crypto

import (
	"encoding/hex"

	"golang.org/x/crypto/blake2b"

	"cratemover/internal/domain"
)

// Lane and crate delimiters in the digest input. Crate labels never contain
// them.
const (
	crateSep = 0x1f
	laneSep  = 0x1e
)

// Fingerprint returns a short hex fingerprint of b.
//
// It hashes with BLAKE2b-256 and truncates to 10 bytes (20 hex chars).
func Fingerprint(b []byte) string {
	sum := blake2b.Sum256(b)
	return hex.EncodeToString(sum[:10])
}

// Arrangement encodes every lane of set, bottom to top, as digest input.
// Two sets encode equally only if they hold the same crates in the same
// positions.
func Arrangement(set *domain.StackSet) []byte {
	var b []byte
	for _, crates := range set.Snapshot() {
		for i, c := range crates {
			if i > 0 {
				b = append(b, crateSep)
			}
			b = append(b, string(c)...)
		}
		b = append(b, laneSep)
	}
	return b
}

// Stacks fingerprints stack arrangements.
type Stacks struct{}

// Fingerprint returns the fingerprint of set's current arrangement.
func (Stacks) Fingerprint(set *domain.StackSet) domain.Fingerprint {
	return domain.Fingerprint(Fingerprint(Arrangement(set)))
}

// Compile-time assertion that Stacks implements domain.Fingerprinter.
var _ domain.Fingerprinter = Stacks{}
