package models

import "time"

// TargetKind selects which entity a like operation applies to. Adding a new
// likeable entity means adding one constant here and one row to the dispatch
// table in the like repository.
type TargetKind int

const (
	TargetPost TargetKind = iota + 1
	TargetComment
)

func (k TargetKind) String() string {
	switch k {
	case TargetPost:
		return "post"
	case TargetComment:
		return "comment"
	default:
		return "unknown"
	}
}

// LikeTransition reports which way a toggle flipped.
type LikeTransition string

const (
	LikeAdded   LikeTransition = "added"
	LikeRemoved LikeTransition = "removed"
)

// Like is a membership fact: user X likes post Y. The (UserID, PostID) pair
// is unique; a like is created and destroyed by toggling, never updated.
type Like struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_post_user_like" json:"user_id"`
	PostID    uint      `gorm:"not null;uniqueIndex:idx_post_user_like" json:"post_id"`
	CreatedAt time.Time `json:"created_at"`
}

// CommentLike mirrors Like for comments, with its own unique (UserID,
// CommentID) pair.
type CommentLike struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_comment_user_like" json:"user_id"`
	CommentID uint      `gorm:"not null;uniqueIndex:idx_comment_user_like" json:"comment_id"`
	CreatedAt time.Time `json:"created_at"`
}
