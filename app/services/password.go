package services

import "golang.org/x/crypto/bcrypt"

// PasswordHasher abstracts the one-way password transform so the auth flow
// can be tested without paying full bcrypt cost.
type PasswordHasher interface {
	// Hash generates a salted digest from a plaintext password. Each call
	// salts freshly, so two digests of the same password never compare equal.
	Hash(password string) (string, error)

	// Verify reports whether plaintext matches the digest. Comparison is
	// constant time; a malformed digest simply fails to verify.
	Verify(password, digest string) bool
}

type BcryptHasher struct {
	cost int
}

func NewBcryptHasher() *BcryptHasher {
	return &BcryptHasher{cost: bcrypt.DefaultCost}
}

func (h *BcryptHasher) Hash(password string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", err
	}
	return string(digest), nil
}

func (h *BcryptHasher) Verify(password, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(password)) == nil
}
