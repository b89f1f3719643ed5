package visits

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// hashLen is the number of hex characters kept from the digest.
const hashLen = 16

// Hasher turns client IPs into salted, truncated digests so raw addresses
// are never stored.
type Hasher struct {
	salt string
}

// NewHasher uses salt for every digest.
func NewHasher(salt string) *Hasher {
	return &Hasher{salt: salt}
}

// NewRandomHasher salts with 32 random bytes. Digests are stable for the
// life of the process only.
func NewRandomHasher() (*Hasher, error) {
	salt, err := RandomToken()
	if err != nil {
		return nil, err
	}
	return NewHasher(salt), nil
}

// Hash returns the digest of ip.
func (h *Hasher) Hash(ip string) string {
	sum := sha256.Sum256([]byte(ip + h.salt))
	return hex.EncodeToString(sum[:])[:hashLen]
}

// RandomToken returns 32 random bytes, hex encoded.
func RandomToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generate token: %w", err)
	}
	return hex.EncodeToString(b), nil
}
