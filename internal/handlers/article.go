package handlers

import (
	"html/template"
	"net/http"

	"ncnews/internal/models"
	"ncnews/internal/repositories"
	"ncnews/internal/utils"

	"github.com/gin-gonic/gin"
)

type ArticleHandler struct {
	articles ArticleStore
	exists   ExistenceChecker
}

func NewArticleHandler(articles ArticleStore, exists ExistenceChecker) *ArticleHandler {
	return &ArticleHandler{articles: articles, exists: exists}
}

// articleDetail is the single article response with its rendered body.
type articleDetail struct {
	*models.Article
	BodyHTML template.HTML `json:"body_html"`
}

type newArticleRequest struct {
	Author        string `json:"author" binding:"required"`
	Title         string `json:"title" binding:"required"`
	Body          string `json:"body" binding:"required"`
	Topic         string `json:"topic" binding:"required"`
	ArticleImgURL string `json:"article_img_url" binding:"omitempty,url"`
}

// List GET /api/articles
func (h *ArticleHandler) List(c *gin.Context) {
	// validate every query token before touching storage
	opts, err := repositories.ArticleQuery{
		Topic:  c.Query("topic"),
		SortBy: c.Query("sort_by"),
		Order:  c.Query("order"),
		Limit:  c.Query("limit"),
		Page:   c.Query("p"),
	}.Parse()
	if err != nil {
		respondError(c, err)
		return
	}

	ctx := c.Request.Context()
	var articles []models.ArticleSummary
	list := func() (err error) {
		articles, err = h.articles.List(ctx, opts)
		return err
	}

	if opts.Topic == "" {
		err = list()
	} else {
		err = settle(list, func() error {
			return h.exists.Exists(ctx, repositories.EntityTopic, opts.Topic)
		})
	}
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"articles": articles})
}

// Get GET /api/articles/:article_id
func (h *ArticleHandler) Get(c *gin.Context) {
	id, err := pathID(c, "article_id")
	if err != nil {
		respondError(c, err)
		return
	}

	article, err := h.articles.FindByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"article": articleDetail{
		Article:  article,
		BodyHTML: utils.RenderMarkdown(article.Body),
	}})
}

// PatchVotes PATCH /api/articles/:article_id
func (h *ArticleHandler) PatchVotes(c *gin.Context) {
	id, err := pathID(c, "article_id")
	if err != nil {
		respondError(c, err)
		return
	}
	delta, err := incVotes(c)
	if err != nil {
		respondError(c, err)
		return
	}

	ctx := c.Request.Context()
	var article *models.Article
	if delta == 0 {
		article, err = h.articles.FindByID(ctx, id)
	} else {
		err = settle(func() (err error) {
			article, err = h.articles.UpdateVotes(ctx, id, delta)
			return err
		}, func() error {
			return h.exists.Exists(ctx, repositories.EntityArticle, id)
		})
	}
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"article": article})
}

// Create POST /api/articles
func (h *ArticleHandler) Create(c *gin.Context) {
	var req newArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, bindError(err))
		return
	}

	article := &models.Article{
		Author:        req.Author,
		Title:         req.Title,
		Body:          req.Body,
		Topic:         req.Topic,
		ArticleImgURL: req.ArticleImgURL,
	}
	if err := h.articles.Create(c.Request.Context(), article); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"article": article})
}
