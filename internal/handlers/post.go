package handlers

import (
	"math"
	"net/http"
	"strings"

	"crow/internal/db"
	"crow/internal/models"
	"crow/internal/services"
	"crow/internal/utils"

	"github.com/gin-gonic/gin"
)

type PostHandler struct{}

func NewPostHandler() *PostHandler {
	return &PostHandler{}
}

type createPostRequest struct {
	Title    string `json:"title"`
	Content  string `json:"content"`
	Category string `json:"category"` // optional; created lazily if new
}

const postsPerPage = 30

// Create publishes a new post. Title and content must be non-empty; the
// category, when given, is resolved by name and created on first use.
func (h *PostHandler) Create(c *gin.Context) {
	user := CurrentUser(c)

	var req createPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	req.Title = strings.TrimSpace(req.Title)
	req.Content = strings.TrimSpace(req.Content)
	if req.Title == "" || req.Content == "" {
		RespondError(c, http.StatusBadRequest, "title and content must not be empty")
		return
	}
	if len(req.Title) > 200 {
		RespondError(c, http.StatusBadRequest, "title must be at most 200 characters")
		return
	}

	post := models.Post{
		Pid:     utils.RandStringBytesMaskImpr(8),
		UserID:  user.ID,
		Title:   req.Title,
		Content: req.Content,
	}

	if req.Category != "" {
		category, err := services.GetOrCreateCategory(req.Category)
		if err != nil {
			RespondError(c, http.StatusBadRequest, "invalid category name")
			return
		}
		post.CategoryID = &category.ID
	}

	if err := db.DB.Create(&post).Error; err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to create post")
		return
	}

	db.DB.Preload("User").Preload("Category").First(&post, post.ID)
	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"post":    post,
	})
}

// List returns a page of posts, newest first by default, or ordered by the
// live vote sum with sort=top. Scores always come from the ledger, never from
// a stored counter.
func (h *PostHandler) List(c *gin.Context) {
	page := 1
	if pageNum := utils.StringToInt(c.Query("page")); pageNum > 0 {
		page = pageNum
	}
	offset := (page - 1) * postsPerPage

	query := db.DB.Model(&models.Post{}).Preload("User").Preload("Category").Preload("Media")
	countQuery := db.DB.Model(&models.Post{})

	if name := c.Query("category"); name != "" {
		query = query.Joins("JOIN categories ON categories.id = posts.category_id").
			Where("categories.name = ?", name)
		countQuery = countQuery.Joins("JOIN categories ON categories.id = posts.category_id").
			Where("categories.name = ?", name)
	}

	switch c.DefaultQuery("sort", "new") {
	case "top":
		query = query.Select("posts.*").
			Joins("LEFT JOIN votes ON votes.post_id = posts.id").
			Group("posts.id").
			Order("COALESCE(SUM(votes.value), 0) DESC, posts.created_at DESC")
	default:
		query = query.Order("posts.created_at DESC")
	}

	var total int64
	countQuery.Count(&total)
	totalPages := int(math.Ceil(float64(total) / float64(postsPerPage)))
	if totalPages == 0 {
		totalPages = 1
	}

	posts := make([]models.Post, 0, postsPerPage)
	if err := query.Limit(postsPerPage).Offset(offset).Find(&posts).Error; err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to load posts")
		return
	}

	userID := CurrentUserID(c)
	services.FillScores(posts, userID)
	services.FillCommentCounts(posts)

	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"posts":       posts,
		"page":        page,
		"total_pages": totalPages,
	})
}

// commentView is a comment plus its one level of replies.
type commentView struct {
	models.Comment
	Replies []models.Comment `json:"replies"`
}

// Detail returns a post with its score, the caller's vote, rendered bodies,
// media, and comments threaded one level deep.
func (h *PostHandler) Detail(c *gin.Context) {
	pid := c.Param("pid")

	var post models.Post
	if err := db.DB.Preload("User").Preload("Category").Preload("Media").
		Where("pid = ?", pid).First(&post).Error; err != nil {
		RespondError(c, http.StatusNotFound, "post not found")
		return
	}

	userID := CurrentUserID(c)
	post.Score = services.PostScore(post.ID)
	post.UserVote = services.UserVote(userID, post.ID)
	post.ContentHTML = utils.RenderMarkdown(post.Content)

	var comments []models.Comment
	db.DB.Preload("User").Where("post_id = ?", post.ID).Order("created_at ASC").Find(&comments)
	post.CommentCount = len(comments)

	// Thread: top-level comments in order, replies attached to their parent.
	threaded := make([]commentView, 0)
	index := make(map[uint]int)
	for _, com := range comments {
		com.ContentHTML = utils.RenderMarkdown(com.Content)
		if com.ParentID == nil {
			index[com.ID] = len(threaded)
			threaded = append(threaded, commentView{Comment: com, Replies: []models.Comment{}})
		} else if i, ok := index[*com.ParentID]; ok {
			threaded[i].Replies = append(threaded[i].Replies, com)
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"post":     post,
		"comments": threaded,
	})
}

// Delete removes a post. Only the author may delete; comments, votes and
// media rows go with it via the foreign keys.
func (h *PostHandler) Delete(c *gin.Context) {
	user := CurrentUser(c)
	pid := c.Param("pid")

	var post models.Post
	if err := db.DB.Where("pid = ?", pid).First(&post).Error; err != nil {
		RespondError(c, http.StatusNotFound, "post not found")
		return
	}
	if post.UserID != user.ID {
		RespondError(c, http.StatusForbidden, "only the author can delete this post")
		return
	}

	if err := db.DB.Delete(&post).Error; err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to delete post")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
