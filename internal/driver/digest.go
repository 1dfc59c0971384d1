package driver

import (
	"crypto/sha256"

	"luna/internal/lexer"
)

// Digest is a SHA-256 cache key.
type Digest [32]byte

// cacheKey: H(schema || booleans || content). Опции, влияющие на разбор,
// входят в ключ, чтобы bare/hash не делили кэш.
func cacheKey(content [32]byte, booleans lexer.BoolSyntax) Digest {
	h := sha256.New()
	_, _ = h.Write([]byte{byte(cacheSchemaVersion >> 8), byte(cacheSchemaVersion), byte(booleans)})
	_, _ = h.Write(content[:])
	var out Digest
	copy(out[:], h.Sum(nil))
	return out
}
