package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/Rogue-Bear-Innovations/bookmarker-api/internal/auth"
	"github.com/Rogue-Bear-Innovations/bookmarker-api/internal/config"
	"github.com/Rogue-Bear-Innovations/bookmarker-api/internal/db"
	"github.com/Rogue-Bear-Innovations/bookmarker-api/internal/db/dbtest"
)

type testEnv struct {
	db        *gorm.DB
	signer    *auth.Signer
	auth      *Auth
	users     *User
	bookmarks *Bookmark
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	cfg := &config.Config{
		JWTSecret:  "test-secret",
		JWTTTL:     time.Minute * 15,
		BcryptCost: bcrypt.MinCost,
	}
	l := zaptest.NewLogger(t).Sugar()
	client := dbtest.New(t)
	signer := auth.NewSigner(cfg)

	return &testEnv{
		db:        client.DB,
		signer:    signer,
		auth:      NewAuth(client.DB, signer, auth.NewPasswordHasher(cfg), l),
		users:     NewUser(client.DB, l),
		bookmarks: NewBookmark(client.DB, l),
	}
}

func (e *testEnv) signup(t *testing.T, email string) uint64 {
	t.Helper()

	token, err := e.auth.Signup(context.Background(), email, "111111111111")
	require.NoError(t, err)

	claims, err := e.signer.Parse(token)
	require.NoError(t, err)
	id, err := claims.UserID()
	require.NoError(t, err)
	return id
}

func (e *testEnv) user(t *testing.T, email string) db.User {
	t.Helper()

	user := db.User{}
	require.NoError(t, e.db.Where("email = ?", email).First(&user).Error)
	return user
}

func strPtr(s string) *string {
	return &s
}
