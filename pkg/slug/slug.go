// Package slug derives the anonymized identifiers used as file names for
// exported graphs.
//
// A slug is the first 16 lowercase hex characters of the SHA-256 digest of a
// trimmed topic string. It is stable across runs and machines, and it does not
// reveal the topic without a preimage search, so exported artifacts can be
// published without leaking which benchmark subject they belong to.
//
//	slug.FromTopic("climate change") // "f28d567cf5453b5c"
package slug

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// Length is the number of hex characters in a slug (64 bits of digest).
const Length = 16

// FromTopic returns the slug for topic. Leading and trailing whitespace is
// ignored. Every string, including the empty one, yields a slug; callers skip
// empty topics themselves.
func FromTopic(topic string) string {
	sum := sha256.Sum256([]byte(strings.TrimSpace(topic)))
	return hex.EncodeToString(sum[:])[:Length]
}

// Valid reports whether s has the shape of a slug: exactly Length lowercase
// hex characters.
func Valid(s string) bool {
	if len(s) != Length {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c < '0' || c > '9') && (c < 'a' || c > 'f') {
			return false
		}
	}
	return true
}
