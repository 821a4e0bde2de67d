package handlers

import (
	"errors"
	"net/http"

	"crow/internal/db"
	"crow/internal/models"
	"crow/internal/services"

	"github.com/gin-gonic/gin"
)

type CommentHandler struct{}

func NewCommentHandler() *CommentHandler {
	return &CommentHandler{}
}

type createCommentRequest struct {
	Content   string `json:"content"`
	ParentCid string `json:"parent_cid"` // set when replying to a comment
}

// Create adds a comment (or a one-level reply) to a post.
func (h *CommentHandler) Create(c *gin.Context) {
	user := CurrentUser(c)
	pid := c.Param("pid")

	var req createCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	var post models.Post
	if err := db.DB.Where("pid = ?", pid).First(&post).Error; err != nil {
		RespondError(c, http.StatusNotFound, "post not found")
		return
	}

	var parentID *uint
	if req.ParentCid != "" {
		var parent models.Comment
		if err := db.DB.Where("cid = ?", req.ParentCid).First(&parent).Error; err != nil {
			RespondError(c, http.StatusNotFound, "parent comment not found")
			return
		}
		parentID = &parent.ID
	}

	comment, err := services.CreateComment(user.ID, post.ID, parentID, req.Content)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrEmptyContent):
			RespondError(c, http.StatusBadRequest, "comment must not be empty")
		case errors.Is(err, services.ErrReplyDepth):
			RespondError(c, http.StatusBadRequest, "replies can only be one level deep")
		case errors.Is(err, services.ErrParentMismatch):
			RespondError(c, http.StatusBadRequest, "parent comment belongs to a different post")
		case errors.Is(err, services.ErrNotFound):
			RespondError(c, http.StatusNotFound, "post or parent comment not found")
		default:
			RespondError(c, http.StatusInternalServerError, "failed to create comment")
		}
		return
	}

	db.DB.Preload("User").First(comment, comment.ID)
	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"comment": comment,
	})
}

// Delete removes a comment. Only the author may delete; replies cascade via
// the parent foreign key.
func (h *CommentHandler) Delete(c *gin.Context) {
	user := CurrentUser(c)
	cid := c.Param("cid")

	var comment models.Comment
	if err := db.DB.Where("cid = ?", cid).First(&comment).Error; err != nil {
		RespondError(c, http.StatusNotFound, "comment not found")
		return
	}
	if comment.UserID != user.ID {
		RespondError(c, http.StatusForbidden, "only the author can delete this comment")
		return
	}

	if err := db.DB.Delete(&comment).Error; err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to delete comment")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
