package password

import "golang.org/x/crypto/bcrypt"

// DefaultCost is the bcrypt work factor used when none is configured.
// Kept above bcrypt.DefaultCost so hashing stays in the ~100ms range
// on commodity hardware.
const DefaultCost = 12

// MinCost is the lowest work factor the service accepts.
const MinCost = 10

type Hasher struct {
	cost int
}

// NewHasher returns a Hasher with the given bcrypt cost. Costs below
// MinCost fall back to DefaultCost.
func NewHasher(cost int) *Hasher {
	if cost < MinCost || cost > bcrypt.MaxCost {
		cost = DefaultCost
	}
	return &Hasher{cost: cost}
}

// Hash returns a salted bcrypt hash of plaintext. The salt is random per
// call, so equal plaintexts never produce equal hashes.
func (h *Hasher) Hash(plaintext string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// Verify reports whether plaintext matches the stored hash.
func (h *Hasher) Verify(plaintext, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}
