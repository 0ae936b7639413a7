package service

import (
	"context"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Rogue-Bear-Innovations/bookmarker-api/internal/db"
)

var (
	ErrBookmarkNotFound = errors.New("bookmark not found")
	ErrAccessDenied     = errors.New("access to resource denied")
)

type BookmarkPatch struct {
	Title       *string
	Link        *string
	Description *string
}

func (p BookmarkPatch) updates() map[string]interface{} {
	m := make(map[string]interface{})
	if p.Title != nil {
		m["title"] = *p.Title
	}
	if p.Link != nil {
		m["link"] = *p.Link
	}
	if p.Description != nil {
		m["description"] = *p.Description
	}
	return m
}

type Bookmark struct {
	db     *gorm.DB
	logger *zap.SugaredLogger
}

func NewBookmark(db *gorm.DB, l *zap.SugaredLogger) *Bookmark {
	return &Bookmark{
		db:     db,
		logger: l,
	}
}

// List returns the user's bookmarks ordered by id. A non-empty query keeps
// only bookmarks whose title or link contains it, ignoring case.
func (s *Bookmark) List(ctx context.Context, userID uint64, query string) ([]db.Bookmark, error) {
	w := squirrel.And{
		squirrel.Eq{"b.user_id": userID},
	}
	if query != "" {
		pattern := "%" + strings.ToLower(query) + "%"
		w = append(w, squirrel.Or{
			squirrel.Like{"LOWER(b.title)": pattern},
			squirrel.Like{"LOWER(b.link)": pattern},
		})
	}
	sql, args, err := squirrel.
		Select("b.id", "b.created_at", "b.updated_at", "b.title", "b.link", "b.description", "b.user_id").
		From("bookmarks b").
		Where(w).
		OrderBy("b.id").
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "build sql")
	}

	bookmarks := make([]db.Bookmark, 0)
	res := s.db.WithContext(ctx).Raw(sql, args...).Scan(&bookmarks)
	if res.Error != nil {
		return nil, errors.Wrap(res.Error, "scan")
	}

	return bookmarks, nil
}

func (s *Bookmark) Get(ctx context.Context, userID, id uint64) (*db.Bookmark, error) {
	return s.owned(ctx, userID, id)
}

func (s *Bookmark) Create(ctx context.Context, userID uint64, title, link string, description *string) (*db.Bookmark, error) {
	model := db.Bookmark{
		Title:       title,
		Link:        link,
		Description: description,
		UserID:      userID,
	}

	res := s.db.WithContext(ctx).Create(&model)
	if res.Error != nil {
		return nil, errors.Wrap(res.Error, "create bookmark")
	}

	return &model, nil
}

func (s *Bookmark) Edit(ctx context.Context, userID, id uint64, patch BookmarkPatch) (*db.Bookmark, error) {
	model, err := s.owned(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	updates := patch.updates()
	if len(updates) == 0 {
		return model, nil
	}

	res := s.db.WithContext(ctx).Model(model).Where("user_id = ?", userID).Updates(updates)
	if res.Error != nil {
		return nil, errors.Wrap(res.Error, "update model")
	}
	if res.RowsAffected == 0 {
		return nil, s.lost(ctx, userID, id)
	}

	return s.owned(ctx, userID, id)
}

func (s *Bookmark) Delete(ctx context.Context, userID, id uint64) error {
	if _, err := s.owned(ctx, userID, id); err != nil {
		return err
	}

	res := s.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&db.Bookmark{}, id)
	if res.Error != nil {
		return errors.Wrap(res.Error, "delete bookmark")
	}
	if res.RowsAffected == 0 {
		return s.lost(ctx, userID, id)
	}

	s.logger.Debugw("bookmark deleted", "user_id", userID, "bookmark_id", id)
	return nil
}

// owned loads the bookmark and checks that userID owns it.
func (s *Bookmark) owned(ctx context.Context, userID, id uint64) (*db.Bookmark, error) {
	model := db.Bookmark{}
	res := s.db.WithContext(ctx).First(&model, id)
	if res.Error != nil {
		if errors.Is(res.Error, gorm.ErrRecordNotFound) {
			return nil, ErrBookmarkNotFound
		}
		return nil, errors.Wrap(res.Error, "get bookmark")
	}
	if model.UserID != userID {
		return nil, ErrAccessDenied
	}
	return &model, nil
}

// lost explains a scoped write that matched no row: the bookmark was
// removed or changed hands after the ownership check.
func (s *Bookmark) lost(ctx context.Context, userID, id uint64) error {
	if _, err := s.owned(ctx, userID, id); err != nil {
		return err
	}
	return ErrBookmarkNotFound
}
