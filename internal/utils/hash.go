package utils

import (
	"crypto/sha256"
	"encoding/hex"
)

// SHA256Hex computes a SHA-256 digest over the concatenation of parts and
// returns it as lowercase hexadecimal. Parts are written in order with no
// separator, so SHA256Hex(a, b) == SHA256Hex(append(a, b...)).
//
// Example usage:
//
//	digest := utils.SHA256Hex([]byte(secret), body)
func SHA256Hex(parts ...[]byte) string {
	h := sha256.New()
	for _, p := range parts {
		h.Write(p)
	}
	return hex.EncodeToString(h.Sum(nil))
}
