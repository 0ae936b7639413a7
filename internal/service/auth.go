package service

import (
	"context"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Rogue-Bear-Innovations/bookmarker-api/internal/auth"
	"github.com/Rogue-Bear-Innovations/bookmarker-api/internal/db"
)

var (
	ErrCredentialsTaken   = errors.New("credentials taken")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

type Auth struct {
	db     *gorm.DB
	signer *auth.Signer
	hasher *auth.PasswordHasher
	logger *zap.SugaredLogger
}

func NewAuth(db *gorm.DB, signer *auth.Signer, hasher *auth.PasswordHasher, l *zap.SugaredLogger) *Auth {
	return &Auth{
		db:     db,
		signer: signer,
		hasher: hasher,
		logger: l,
	}
}

// Signup creates the user and returns a signed access token.
func (s *Auth) Signup(ctx context.Context, email, pass string) (string, error) {
	hash, err := s.hasher.Hash(pass)
	if err != nil {
		return "", errors.Wrap(err, "hash password")
	}

	user := db.User{
		Email: email,
		Hash:  hash,
	}
	res := s.db.WithContext(ctx).Create(&user)
	if res.Error != nil {
		if db.IsUniqueViolation(res.Error) {
			return "", ErrCredentialsTaken
		}
		return "", errors.Wrap(res.Error, "create user")
	}

	s.logger.Debugw("user signed up", "user_id", user.ID)

	return s.signer.Sign(user.ID, user.Email)
}

func (s *Auth) Signin(ctx context.Context, email, pass string) (string, error) {
	user := db.User{}
	res := s.db.WithContext(ctx).Where("email = ?", email).First(&user)
	if res.Error != nil {
		if errors.Is(res.Error, gorm.ErrRecordNotFound) {
			return "", ErrUserNotFound
		}
		return "", errors.Wrap(res.Error, "find user")
	}

	if err := s.hasher.Compare(user.Hash, pass); err != nil {
		if errors.Is(err, auth.ErrPasswordMismatch) {
			return "", ErrInvalidCredentials
		}
		return "", err
	}

	return s.signer.Sign(user.ID, user.Email)
}
