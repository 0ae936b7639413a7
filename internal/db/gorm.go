package db

import (
	"context"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/Rogue-Bear-Innovations/bookmarker-api/internal/config"
)

const pgUniqueViolation = "23505"

var Module = fx.Provide(
	NewGormClient,
	func(c *Client) *gorm.DB { return c.DB },
)

type (
	GormForkedModel struct {
		ID        uint64 `gorm:"primarykey"`
		CreatedAt time.Time
		UpdatedAt time.Time
	}

	User struct {
		GormForkedModel
		Email     string `gorm:"unique;not null"`
		Hash      string `gorm:"not null"`
		FirstName *string
		LastName  *string
		Bookmarks []Bookmark `gorm:"constraint:OnDelete:CASCADE"`
	}

	Bookmark struct {
		GormForkedModel
		Title       string `gorm:"not null"`
		Description *string
		Link        string `gorm:"not null"`
		UserID      uint64 `gorm:"not null;index"`
	}

	// Client owns the gorm handle and the underlying connection pool.
	Client struct {
		DB *gorm.DB
	}
)

func NewGormClient(lc fx.Lifecycle, cfg *config.Config, l *zap.SugaredLogger) (*Client, error) {
	level := gormlogger.Warn
	if cfg.Env == config.EnvDevelopment {
		level = gormlogger.Info
	}

	c, err := Open(postgres.Open(cfg.DSN()), l, level)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			l.Info("Closing database connection.")
			return c.Close()
		},
	})

	return c, nil
}

// Open connects through the given dialector and migrates the schema.
func Open(dialector gorm.Dialector, l *zap.SugaredLogger, level gormlogger.LogLevel) (*Client, error) {
	newLogger := gormlogger.New(zap.NewStdLog(l.Desugar().Named("gorm")), gormlogger.Config{
		SlowThreshold:             200 * time.Millisecond,
		LogLevel:                  level,
		Colorful:                  false,
		IgnoreRecordNotFoundError: true,
	})

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:         newLogger,
		TranslateError: true,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to connect database")
	}

	if err := db.AutoMigrate(&User{}); err != nil {
		return nil, errors.Wrap(err, "migrate user")
	}
	if err := db.AutoMigrate(&Bookmark{}); err != nil {
		return nil, errors.Wrap(err, "migrate bookmark")
	}

	return &Client{DB: db}, nil
}

func (c *Client) Ping(ctx context.Context) error {
	sqlDB, err := c.DB.DB()
	if err != nil {
		return errors.Wrap(err, "get sql db")
	}
	return sqlDB.PingContext(ctx)
}

func (c *Client) Close() error {
	sqlDB, err := c.DB.DB()
	if err != nil {
		return errors.Wrap(err, "get sql db")
	}
	return sqlDB.Close()
}

// CleanDB wipes every table. Meant for tests only.
func (c *Client) CleanDB(ctx context.Context) error {
	return c.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		tx = tx.Session(&gorm.Session{AllowGlobalUpdate: true})
		if err := tx.Delete(&Bookmark{}).Error; err != nil {
			return errors.Wrap(err, "delete bookmarks")
		}
		if err := tx.Delete(&User{}).Error; err != nil {
			return errors.Wrap(err, "delete users")
		}
		return nil
	})
}

// IsUniqueViolation reports whether err comes from a unique constraint,
// whether or not the dialector translated it.
func IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgUniqueViolation
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
