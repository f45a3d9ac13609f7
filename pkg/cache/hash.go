package cache

import (
	"crypto/sha256"
	"encoding/hex"
)

// Key derives the cache key for a render: the artifact bytes hashed
// together with the options that shape the output. A NUL between parts
// keeps adjacent options from colliding.
func Key(artifact []byte, opts ...string) string {
	h := sha256.New()
	h.Write(artifact)
	for _, opt := range opts {
		h.Write([]byte{0})
		h.Write([]byte(opt))
	}
	return hex.EncodeToString(h.Sum(nil))
}

// Hash computes a SHA-256 hash of the input data.
// Returns the full 64-character hex string.
func Hash(data []byte) string {
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}
