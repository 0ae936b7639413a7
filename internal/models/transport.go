package models

import (
	"time"

	"github.com/Rogue-Bear-Innovations/bookmarker-api/internal/db"
)

type AuthReq struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,max=72"`
}

type TokenResp struct {
	AccessToken string `json:"access_token"`
}

type UserEditReq struct {
	Email     *string `json:"email" validate:"omitempty,email"`
	FirstName *string `json:"firstName" validate:"omitempty,max=255"`
	LastName  *string `json:"lastName" validate:"omitempty,max=255"`
}

type UserResp struct {
	ID        uint64    `json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	Email     string    `json:"email"`
	FirstName *string   `json:"firstName,omitempty"`
	LastName  *string   `json:"lastName,omitempty"`
}

type BookmarkReqList struct {
	Query string `query:"q"`
}

type BookmarkCreateReq struct {
	Title       string  `json:"title" validate:"required,max=255"`
	Link        string  `json:"link" validate:"required,url"`
	Description *string `json:"description"`
}

type BookmarkEditReq struct {
	Title       *string `json:"title" validate:"omitempty,min=1,max=255"`
	Link        *string `json:"link" validate:"omitempty,url"`
	Description *string `json:"description"`
}

type BookmarkResp struct {
	ID          uint64    `json:"id"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
	Title       string    `json:"title"`
	Link        string    `json:"link"`
	Description *string   `json:"description,omitempty"`
	UserID      uint64    `json:"userId"`
}

func NewUserResp(u *db.User) UserResp {
	return UserResp{
		ID:        u.ID,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
	}
}

func NewBookmarkResp(b *db.Bookmark) BookmarkResp {
	return BookmarkResp{
		ID:          b.ID,
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
		Title:       b.Title,
		Link:        b.Link,
		Description: b.Description,
		UserID:      b.UserID,
	}
}
