package models

import (
	"time"
)

// Category groups posts by topic (e.g. News, Tech, Sports). Names are unique and
// case-sensitive; categories are created lazily the first time a post references
// them and are never deleted by normal flow.
type Category struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"not null;uniqueIndex;size:100" json:"name"`
	CreatedAt time.Time `json:"created_at"`

	// Not a database column; filled at query time.
	PostCount int `gorm:"-" json:"post_count"`
}
