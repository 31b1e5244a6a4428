package models

import (
	"time"
)

const (
	RoleAdmin  = "admin"
	RoleReader = "reader"
)

type User struct {
	ID           int       `json:"id" db:"id"`
	Email        string    `json:"email" db:"email"`
	PasswordHash string    `json:"-" db:"password_hash"`
	Name         string    `json:"name" db:"name"`
	Role         string    `json:"role" db:"role"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
}

func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}

type Post struct {
	ID       int    `json:"id" db:"id"`
	AuthorID int    `json:"authorId" db:"author_id"`
	Title    string `json:"title" db:"title"`
	Subtitle string `json:"subtitle" db:"subtitle"`
	// Date is the human-readable creation date ("January 02, 2006"),
	// immutable after creation.
	Date       string `json:"date" db:"date"`
	Body       string `json:"body" db:"body"`
	ImgURL     string `json:"imgUrl" db:"img_url"`
	AuthorName string `json:"authorName" db:"author_name"`
}

type Comment struct {
	ID         int       `json:"id" db:"id"`
	Text       string    `json:"text" db:"text"`
	AuthorID   int       `json:"authorId" db:"author_id"`
	PostID     int       `json:"postId" db:"post_id"`
	CreatedAt  time.Time `json:"createdAt" db:"created_at"`
	AuthorName string    `json:"authorName" db:"author_name"`
}
