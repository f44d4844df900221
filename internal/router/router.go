package router

import (
	"net/http"

	"ncnews/internal/handlers"
	"ncnews/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// Handlers bundles everything RegisterRoutes mounts.
type Handlers struct {
	API      *handlers.APIHandler
	Topics   *handlers.TopicHandler
	Users    *handlers.UserHandler
	Articles *handlers.ArticleHandler
	Comments *handlers.CommentHandler
}

// NewEngine builds a gin engine with the request middleware and all routes.
func NewEngine(log logrus.FieldLogger, h Handlers) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(log), middleware.Recovery(log))
	RegisterRoutes(r, h)
	return r
}

func RegisterRoutes(r *gin.Engine, h Handlers) {
	api := r.Group("/api")
	{
		api.GET("", h.API.Endpoints) // endpoint catalogue

		api.GET("/topics", h.Topics.List)

		api.GET("/users", h.Users.List)
		api.GET("/users/:username", h.Users.Get)

		api.GET("/articles", h.Articles.List)
		api.POST("/articles", h.Articles.Create)
		api.GET("/articles/:article_id", h.Articles.Get)
		api.PATCH("/articles/:article_id", h.Articles.PatchVotes)
		api.GET("/articles/:article_id/comments", h.Comments.ListForArticle)
		api.POST("/articles/:article_id/comments", h.Comments.Create)

		api.PATCH("/comments/:comment_id", h.Comments.PatchVotes)
		api.DELETE("/comments/:comment_id", h.Comments.Delete)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"msg": "Path not found"})
	})
}
