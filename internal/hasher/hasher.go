package hasher

import (
	"errors"
	"log/slog"

	"golang.org/x/crypto/bcrypt"
)

// Hasher defines the interface for password hashing and verification.
// Digests are self-contained: salt and cost are embedded, so verification
// needs no extra state.
type Hasher interface {
	Hash(secret string) (string, error)
	Verify(secret, digest string) (bool, error)
}

// ErrEmptyInput is returned when a secret or digest is missing.
var ErrEmptyInput = errors.New("secret or digest is empty")

type bcryptHasher struct {
	logger *slog.Logger
}

// New creates a bcrypt-backed hasher instance
func New(logger *slog.Logger) Hasher {
	return &bcryptHasher{logger: logger}
}

func (h *bcryptHasher) Hash(secret string) (string, error) {
	if secret == "" {
		h.logger.Warn("⚠️ [Hasher] Refusing to hash empty input")
		return "", ErrEmptyInput
	}

	digest, err := bcrypt.GenerateFromPassword([]byte(secret), bcrypt.DefaultCost)
	if err != nil {
		h.logger.Error("❌ [Hasher] Failed to hash secret", "error", err)
		return "", err
	}

	h.logger.Debug("🔒 [Hasher] Secret hashed successfully")
	return string(digest), nil
}

func (h *bcryptHasher) Verify(secret, digest string) (bool, error) {
	if secret == "" || digest == "" {
		h.logger.Warn("⚠️ [Hasher] Secret or digest missing for verification")
		return false, ErrEmptyInput
	}

	err := bcrypt.CompareHashAndPassword([]byte(digest), []byte(secret))
	if err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return false, nil
		}
		// Malformed digest or unexpected bcrypt failure
		h.logger.Error("❌ [Hasher] Verification failed unexpectedly", "error", err)
		return false, err
	}

	h.logger.Debug("🔓 [Hasher] Verification complete")
	return true, nil
}
