package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
)

// hashKey builds a key of the form "prefix:digest" from its parts. Layout
// and artifact keys both route through here, so every input that changes
// the cached bytes (template, paper, unit, margin, image set, format, fit,
// page index) must appear in parts. The full 64-char SHA-256 digest keeps
// collisions out of the picture.
func hashKey(prefix string, parts ...any) string {
	data, _ := json.Marshal(parts)
	sum := sha256.Sum256(data)
	return fmt.Sprintf("%s:%s", prefix, hex.EncodeToString(sum[:]))
}

// Hash returns the hex-encoded SHA-256 digest of data. Used to fingerprint
// image-ref sets and serialized layouts for cache keys.
func Hash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
