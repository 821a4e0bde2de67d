package router

import (
	"crow/internal/handlers"
	"crow/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine) {
	// Handlers
	authHandler := handlers.NewAuthHandler()
	postHandler := handlers.NewPostHandler()
	voteHandler := handlers.NewVoteHandler()
	commentHandler := handlers.NewCommentHandler()
	categoryHandler := handlers.NewCategoryHandler()
	mediaHandler := handlers.NewMediaHandler()

	// Public routes
	r.GET("/posts", postHandler.List)          // newest / top / by category
	r.GET("/posts/:pid", postHandler.Detail)   // post with score, votes, comments
	r.GET("/categories", categoryHandler.List) // all categories with post counts

	r.POST("/signup", authHandler.Signup)
	r.POST("/login", authHandler.Login)
	r.POST("/logout", authHandler.Logout)

	// Protected routes
	authorized := r.Group("/")
	authorized.Use(middleware.AuthRequired())
	{
		authorized.GET("/me", authHandler.Me)

		authorized.POST("/posts", postHandler.Create)
		authorized.DELETE("/posts/:pid", postHandler.Delete)
		authorized.POST("/posts/:pid/vote", voteHandler.Vote)
		authorized.POST("/posts/:pid/comments", commentHandler.Create)
		authorized.POST("/posts/:pid/media", mediaHandler.Upload)
		authorized.DELETE("/comments/:cid", commentHandler.Delete)

		authorized.POST("/categories", categoryHandler.Create)
	}
}
