package service

import "golang.org/x/crypto/bcrypt"

// PasswordHasher wraps bcrypt. Each Hash call salts independently, so the same
// plaintext never produces the same digest twice.
type PasswordHasher struct {
	cost int
}

// NewPasswordHasher builds a hasher with the given cost; out-of-range values
// fall back to bcrypt's default.
func NewPasswordHasher(cost int) *PasswordHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &PasswordHasher{cost: cost}
}

func (h *PasswordHasher) Hash(plaintext string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
	if err != nil {
		return "", err
	}
	return string(digest), nil
}

// Verify reports whether plaintext matches digest. A malformed or empty digest
// verifies false rather than erroring, so guest accounts (empty hash) and
// corrupted records both fail closed.
func (h *PasswordHasher) Verify(plaintext, digest string) bool {
	if digest == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plaintext)) == nil
}
