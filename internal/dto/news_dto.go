package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateNewsRequest struct {
	Title      string     `json:"title"`
	Content    string     `json:"content"`
	CategoryID *uuid.UUID `json:"category_id"`
	ImageURL   string     `json:"image_url"`
	AuthorName string     `json:"author_name"`
}

type UpdateNewsRequest struct {
	Title      string     `json:"title"`
	Content    string     `json:"content"`
	CategoryID *uuid.UUID `json:"category_id"`
	ImageURL   string     `json:"image_url"`
}

type CreateCategoryRequest struct {
	Name string `json:"name"`
}

// NewsRow is an article joined with its category name for listing.
type NewsRow struct {
	ID           uuid.UUID  `json:"id"`
	Title        string     `json:"title"`
	Content      string     `json:"content"`
	CategoryID   *uuid.UUID `json:"category_id"`
	CategoryName string     `json:"category_name"`
	ImageURL     string     `json:"image_url"`
	AuthorName   string     `json:"author_name"`
	Views        int64      `json:"views"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

type CreateCommentRequest struct {
	Content string `json:"content"`
}

// CommentRow is a comment joined with its author for display.
type CommentRow struct {
	ID           uuid.UUID `json:"id"`
	NewsID       uuid.UUID `json:"news_id"`
	UserID       uuid.UUID `json:"user_id"`
	Content      string    `json:"content"`
	CreatedAt    time.Time `json:"created_at"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	Role         string    `json:"role"`
	ProfileImage string    `json:"profile_image"`
}
