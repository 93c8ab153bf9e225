package models

import (
	"time"
)

// Post is a blog post. ViewsCount is a best-effort counter bumped on every
// single-post fetch; CommentsCount and LikesCount are computed at query time
// and never persisted.
type Post struct {
	ID       uint     `gorm:"primaryKey" json:"id"`
	UserID   uint     `gorm:"not null;index" json:"user_id"`
	User     User     `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Title    string   `gorm:"size:500;not null" json:"title"`
	Content  string   `gorm:"not null" json:"content"`
	Tags     []string `gorm:"serializer:json" json:"tags"`
	ImageURL string   `json:"image_url,omitempty"`
	// ViewsCount is persisted and monotonically non-decreasing.
	ViewsCount int `gorm:"not null;default:0" json:"views_count"`
	// CommentsCount is not persisted; computed at query time
	CommentsCount int `gorm:"->;-:migration" json:"comments_count"`
	// LikesCount is not persisted; computed at query time
	LikesCount int       `gorm:"->;-:migration" json:"likes_count"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
