package handlers

import (
	"net/http"
	"strings"

	"crow/internal/db"
	"crow/internal/models"
	"crow/internal/services"

	"github.com/gin-gonic/gin"
)

const maxMediaSize = 10 * 1024 * 1024 // 10MB

// Content types accepted for attachments.
var allowedMediaPrefixes = []string{"image/", "video/", "application/pdf", "text/plain"}

type MediaHandler struct{}

func NewMediaHandler() *MediaHandler {
	return &MediaHandler{}
}

// Upload attaches a file to a post (POST /posts/:pid/media). The bytes are
// forwarded to the external media host; only the hosted URL is stored.
func (h *MediaHandler) Upload(c *gin.Context) {
	user := CurrentUser(c)
	pid := c.Param("pid")

	var post models.Post
	if err := db.DB.Where("pid = ?", pid).First(&post).Error; err != nil {
		RespondError(c, http.StatusNotFound, "post not found")
		return
	}
	if post.UserID != user.ID {
		RespondError(c, http.StatusForbidden, "only the author can attach media")
		return
	}

	file, header, err := c.Request.FormFile("file")
	if err != nil {
		RespondError(c, http.StatusBadRequest, "no file in request")
		return
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")
	if !mediaTypeAllowed(contentType) {
		RespondError(c, http.StatusBadRequest, "unsupported file type")
		return
	}
	if header.Size > maxMediaSize {
		RespondError(c, http.StatusBadRequest, "file must be at most 10MB")
		return
	}

	result, err := services.UploadMedia(file, header)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "upload failed")
		return
	}

	media := models.PostMedia{
		PostID:       post.ID,
		URL:          result.URL,
		PublicID:     result.PublicID,
		ResourceType: result.ResourceType,
	}
	if err := db.DB.Create(&media).Error; err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to save attachment")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"media":   media,
	})
}

func mediaTypeAllowed(contentType string) bool {
	for _, prefix := range allowedMediaPrefixes {
		if strings.HasPrefix(contentType, prefix) {
			return true
		}
	}
	return false
}
