package service

import (
	"context"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Rogue-Bear-Innovations/bookmarker-api/internal/db"
)

// UserPatch holds the profile fields to change; nil fields are left as they are.
type UserPatch struct {
	Email     *string
	FirstName *string
	LastName  *string
}

func (p UserPatch) updates() map[string]interface{} {
	m := make(map[string]interface{})
	if p.Email != nil {
		m["email"] = *p.Email
	}
	if p.FirstName != nil {
		m["first_name"] = *p.FirstName
	}
	if p.LastName != nil {
		m["last_name"] = *p.LastName
	}
	return m
}

type User struct {
	db     *gorm.DB
	logger *zap.SugaredLogger
}

func NewUser(db *gorm.DB, l *zap.SugaredLogger) *User {
	return &User{
		db:     db,
		logger: l,
	}
}

func (s *User) Get(ctx context.Context, id uint64) (*db.User, error) {
	user := db.User{}
	res := s.db.WithContext(ctx).First(&user, id)
	if res.Error != nil {
		if errors.Is(res.Error, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, errors.Wrap(res.Error, "get user")
	}
	return &user, nil
}

func (s *User) Edit(ctx context.Context, id uint64, patch UserPatch) (*db.User, error) {
	updates := patch.updates()
	if len(updates) != 0 {
		model := db.User{
			GormForkedModel: db.GormForkedModel{
				ID: id,
			},
		}
		res := s.db.WithContext(ctx).Model(&model).Updates(updates)
		if res.Error != nil {
			if db.IsUniqueViolation(res.Error) {
				return nil, ErrCredentialsTaken
			}
			return nil, errors.Wrap(res.Error, "update user")
		}
		if res.RowsAffected == 0 {
			return nil, ErrUserNotFound
		}
	}

	return s.Get(ctx, id)
}
