package models

import (
	"time"
)

type Post struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Pid        string    `gorm:"uniqueIndex;size:8;not null" json:"pid"`
	UserID     uint      `gorm:"not null;index" json:"user_id"`
	User       User      `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"user"`
	CategoryID *uint     `gorm:"index" json:"category_id"` // Weak reference: deleting the category nulls it
	Category   *Category `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"category"`
	Title      string    `gorm:"size:200;not null" json:"title"`
	Content    string    `gorm:"type:text;not null" json:"content"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`

	Media []PostMedia `json:"media,omitempty"`

	// Not database columns; filled at query time from the vote ledger and comments.
	Score        int    `gorm:"-" json:"score"`
	UserVote     int    `gorm:"-" json:"user_vote"`
	CommentCount int    `gorm:"-" json:"comment_count"`
	ContentHTML  string `gorm:"-" json:"content_html,omitempty"`
}
