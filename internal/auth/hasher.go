package auth

import "golang.org/x/crypto/bcrypt"

// PasswordHasher derives and checks bcrypt hashes over the plaintext password
// with a fixed service-wide salt appended. The salt is separate from bcrypt's
// own per-call random salt, which lives inside the encoded hash.
type PasswordHasher struct {
	salt string
}

// NewPasswordHasher creates a hasher with the given fixed salt.
func NewPasswordHasher(salt string) *PasswordHasher {
	return &PasswordHasher{salt: salt}
}

// Hash returns the bcrypt hash of password+salt at the default cost.
func (h *PasswordHasher) Hash(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password+h.salt), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// Verify reports whether password+salt matches the stored hash. Any failure,
// including a malformed stored hash, reads as a mismatch; no error crosses
// this boundary.
func (h *PasswordHasher) Verify(password, hashed string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(password+h.salt)) == nil
}
