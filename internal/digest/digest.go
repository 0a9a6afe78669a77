package digest

import (
	"crypto/sha256"
	"encoding/hex"
)

// Digest returns the hex encoded SHA-256 of the UTF-8 bytes of text.
// Registration stores this value and login compares against it with
// plain string equality. There is no salt or iteration count; the
// scheme is kept as-is because changing it would invalidate every
// stored credential.
func Digest(text string) string {
	sum := sha256.Sum256([]byte(text))
	return hex.EncodeToString(sum[:])
}

// Matches reports whether plaintext hashes to the stored digest.
func Matches(plaintext, stored string) bool {
	return Digest(plaintext) == stored
}
