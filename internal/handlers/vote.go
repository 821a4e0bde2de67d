package handlers

import (
	"errors"
	"net/http"

	"crow/internal/db"
	"crow/internal/models"
	"crow/internal/services"

	"github.com/gin-gonic/gin"
)

type VoteHandler struct{}

func NewVoteHandler() *VoteHandler {
	return &VoteHandler{}
}

type voteRequest struct {
	Action string `json:"action"` // "upvote" or "downvote"
}

// Vote applies the caller's vote action to a post and returns the fresh
// ledger-derived state: the post's score and the caller's current vote.
// Repeating an action retracts the vote; the opposite action switches it.
func (h *VoteHandler) Vote(c *gin.Context) {
	user := CurrentUser(c)

	var req voteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	pid := c.Param("pid")
	var post models.Post
	if err := db.DB.Where("pid = ?", pid).First(&post).Error; err != nil {
		RespondError(c, http.StatusNotFound, "post not found")
		return
	}

	if err := services.CastVote(user.ID, post.ID, req.Action); err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidAction):
			RespondError(c, http.StatusBadRequest, "action must be upvote or downvote")
		case errors.Is(err, services.ErrUnauthorized):
			RespondError(c, http.StatusUnauthorized, "authentication required")
		case errors.Is(err, services.ErrNotFound):
			RespondError(c, http.StatusNotFound, "post not found")
		default:
			RespondError(c, http.StatusInternalServerError, "failed to record vote")
		}
		return
	}

	// Re-read from the ledger after the write.
	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"score":     services.PostScore(post.ID),
		"user_vote": services.UserVote(user.ID, post.ID),
	})
}
