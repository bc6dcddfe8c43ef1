package auth

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// ErrPasswordMismatch is returned when a password does not match its digest.
var ErrPasswordMismatch = errors.New("password mismatch")

// Hasher turns plaintext passwords into storable digests and verifies them.
type Hasher interface {
	Hash(password string) (string, error)
	Compare(digest, password string) error
}

// SHA256Hasher produces deterministic unsalted hex digests. This is the
// wire-compatible scheme for digests already present in the store; new
// deployments should prefer BcryptHasher.
type SHA256Hasher struct{}

// Hash returns the hex-encoded sha256 digest of the password.
func (SHA256Hasher) Hash(password string) (string, error) {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:]), nil
}

// Compare recomputes the digest and compares in constant time.
func (h SHA256Hasher) Compare(digest, password string) error {
	computed, _ := h.Hash(password)
	if subtle.ConstantTimeCompare([]byte(computed), []byte(digest)) != 1 {
		return ErrPasswordMismatch
	}
	return nil
}

// BcryptHasher produces salted, slow digests with the configured cost.
// Digests are not compatible with SHA256Hasher output.
type BcryptHasher struct {
	Cost int
}

// Hash hashes a plaintext password with the configured cost.
func (h BcryptHasher) Hash(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), h.Cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// Compare verifies a password against its hashed value.
func (h BcryptHasher) Compare(digest, password string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(digest), []byte(password)); err != nil {
		return ErrPasswordMismatch
	}
	return nil
}

// NewHasher selects the hasher for the configured scheme. Unknown schemes
// fall back to sha256 so existing digests keep verifying.
func NewHasher(scheme string, bcryptCost int) Hasher {
	if scheme == "bcrypt" {
		if bcryptCost < bcrypt.MinCost || bcryptCost > bcrypt.MaxCost {
			bcryptCost = bcrypt.DefaultCost
		}
		return BcryptHasher{Cost: bcryptCost}
	}
	return SHA256Hasher{}
}
