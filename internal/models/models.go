package models

import (
	"time"
)

type User struct {
	UserID       string    `json:"id" db:"user_id"`
	Username     string    `json:"username" db:"username"`
	PasswordHash string    `json:"-" db:"password_hash"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
}

type Post struct {
	PostID     string    `json:"postId" db:"post_id"`
	AuthorID   string    `json:"authorId" db:"author_id"`
	AuthorName string    `json:"author" db:"author_name"`
	Title      string    `json:"title" db:"title"`
	Summary    string    `json:"summary" db:"summary"`
	Content    string    `json:"content" db:"content"`
	CoverURL   *string   `json:"cover" db:"cover_url"`
	CreatedAt  time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt  time.Time `json:"updatedAt" db:"updated_at"`
}
