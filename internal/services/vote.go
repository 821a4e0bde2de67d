package services

import (
	"errors"
	"fmt"

	"crow/internal/db"
	"crow/internal/models"

	"gorm.io/gorm"
)

// Vote actions accepted from clients.
const (
	ActionUpvote   = "upvote"
	ActionDownvote = "downvote"
)

// castRetries bounds the retry loop on duplicate-key conflicts. Two requests
// racing on the same (user, post) pair converge after one retry; more attempts
// only cover pathological storms of double-submits.
const castRetries = 3

// CastVote applies the vote toggle state machine for (userID, postID):
//   - no existing row: create one with +1 (upvote) or -1 (downvote)
//   - existing row with the same value: delete it (vote retracted)
//   - existing row with the opposite value: overwrite it (vote switched)
//
// The read-modify-write runs in a transaction; the unique index on
// (user_id, post_id) is the serialization point, and a duplicate-key conflict
// from a concurrent cast is retried rather than surfaced.
func CastVote(userID, postID uint, action string) error {
	var value int
	switch action {
	case ActionUpvote:
		value = 1
	case ActionDownvote:
		value = -1
	default:
		return ErrInvalidAction
	}

	if userID == 0 {
		return ErrUnauthorized
	}
	var user models.User
	if err := db.DB.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	var post models.Post
	if err := db.DB.First(&post, postID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	var lastErr error
	for attempt := 0; attempt < castRetries; attempt++ {
		err := db.DB.Transaction(func(tx *gorm.DB) error {
			var existing models.Vote
			err := tx.Where("user_id = ? AND post_id = ?", userID, postID).First(&existing).Error
			switch {
			case errors.Is(err, gorm.ErrRecordNotFound):
				return tx.Create(&models.Vote{UserID: userID, PostID: postID, Value: value}).Error
			case err != nil:
				return err
			case existing.Value == value:
				// Same action twice toggles the vote off.
				return tx.Delete(&existing).Error
			default:
				return tx.Model(&existing).Update("value", value).Error
			}
		})
		if err == nil {
			return nil
		}
		if !errors.Is(err, gorm.ErrDuplicatedKey) {
			return err
		}
		// Lost a create race; the row exists now, re-run the state machine.
		lastErr = err
	}
	return fmt.Errorf("cast vote for user %d on post %d: %w", userID, postID, lastErr)
}

// PostScore sums the ledger rows for a post. A post with no votes scores 0.
func PostScore(postID uint) int {
	var score int
	db.DB.Model(&models.Vote{}).
		Where("post_id = ?", postID).
		Select("COALESCE(SUM(value), 0)").
		Scan(&score)
	return score
}

// UserVote returns the caller's current vote on a post: +1, -1, or 0 when the
// caller has no vote or is anonymous (userID 0). It never mutates state.
func UserVote(userID, postID uint) int {
	if userID == 0 {
		return 0
	}
	var vote models.Vote
	if err := db.DB.Where("user_id = ? AND post_id = ?", userID, postID).First(&vote).Error; err != nil {
		return 0
	}
	return vote.Value
}

// FillScores batch-fills Score and UserVote on a page of posts with one
// aggregation query each, instead of a query per post.
func FillScores(posts []models.Post, userID uint) {
	if len(posts) == 0 {
		return
	}

	postIDs := make([]uint, len(posts))
	for i, p := range posts {
		postIDs[i] = p.ID
	}

	type scoreResult struct {
		PostID uint
		Score  int
	}
	var results []scoreResult
	db.DB.Model(&models.Vote{}).
		Select("post_id, SUM(value) as score").
		Where("post_id IN ?", postIDs).
		Group("post_id").
		Scan(&results)

	scoreMap := make(map[uint]int)
	for _, r := range results {
		scoreMap[r.PostID] = r.Score
	}

	voteMap := make(map[uint]int)
	if userID > 0 {
		var votes []models.Vote
		db.DB.Where("user_id = ? AND post_id IN ?", userID, postIDs).Find(&votes)
		for _, v := range votes {
			voteMap[v.PostID] = v.Value
		}
	}

	for i := range posts {
		posts[i].Score = scoreMap[posts[i].ID]
		posts[i].UserVote = voteMap[posts[i].ID]
	}
}
