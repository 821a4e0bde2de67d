package models

import (
	"time"
)

// Vote is the ledger row for a user's vote on a post: exactly one row per
// (user, post) pair, value +1 or -1. All score displays are derived by summing
// these rows; no denormalized counter exists anywhere.
type Vote struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_votes_user_post" json:"user_id"`
	PostID    uint      `gorm:"not null;uniqueIndex:idx_votes_user_post;index" json:"post_id"`
	Value     int       `gorm:"not null;check:value IN (-1, 1)" json:"value"`
	CreatedAt time.Time `json:"created_at"`
}
