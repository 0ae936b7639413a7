// Package dbtest opens throwaway in-memory SQLite databases for tests.
package dbtest

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
	"gorm.io/driver/sqlite"
	gormlogger "gorm.io/gorm/logger"

	"github.com/Rogue-Bear-Innovations/bookmarker-api/internal/db"
)

// New returns a migrated client backed by a private in-memory database.
func New(t testing.TB) *db.Client {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	c, err := db.Open(sqlite.Open(dsn), zaptest.NewLogger(t).Sugar(), gormlogger.Silent)
	require.NoError(t, err)

	sqlDB, err := c.DB.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	t.Cleanup(func() {
		_ = c.Close()
	})

	return c
}
