package auth

import (
	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"

	"github.com/Rogue-Bear-Innovations/bookmarker-api/internal/config"
)

// MaxPasswordBytes is the longest input bcrypt accepts.
const MaxPasswordBytes = 72

var (
	ErrPasswordMismatch = errors.New("password does not match")
	ErrPasswordTooLong  = errors.New("password must not exceed 72 bytes")
)

type PasswordHasher struct {
	cost int
}

func NewPasswordHasher(cfg *config.Config) *PasswordHasher {
	return &PasswordHasher{cost: cfg.BcryptCost}
}

func (h *PasswordHasher) Hash(pass string) (string, error) {
	if len(pass) > MaxPasswordBytes {
		return "", ErrPasswordTooLong
	}
	passwordHashB, err := bcrypt.GenerateFromPassword([]byte(pass), h.cost)
	if err != nil {
		return "", errors.Wrap(err, "generate password hash")
	}
	return string(passwordHashB), nil
}

func (h *PasswordHasher) Compare(hash, pass string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(pass)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return ErrPasswordMismatch
		}
		return errors.Wrap(err, "compare password hash")
	}
	return nil
}
