package handlers

import (
	"net/http"

	"ncnews/internal/models"
	"ncnews/internal/repositories"

	"github.com/gin-gonic/gin"
)

type CommentHandler struct {
	comments CommentStore
	exists   ExistenceChecker
}

func NewCommentHandler(comments CommentStore, exists ExistenceChecker) *CommentHandler {
	return &CommentHandler{comments: comments, exists: exists}
}

type newCommentRequest struct {
	Username string `json:"username" binding:"required"`
	Body     string `json:"body" binding:"required"`
}

// ListForArticle GET /api/articles/:article_id/comments
func (h *CommentHandler) ListForArticle(c *gin.Context) {
	id, err := pathID(c, "article_id")
	if err != nil {
		respondError(c, err)
		return
	}

	ctx := c.Request.Context()
	var comments []models.Comment
	err = settle(func() (err error) {
		comments, err = h.comments.ListByArticle(ctx, id)
		return err
	}, func() error {
		return h.exists.Exists(ctx, repositories.EntityArticle, id)
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"comments": comments})
}

// Create POST /api/articles/:article_id/comments
func (h *CommentHandler) Create(c *gin.Context) {
	id, err := pathID(c, "article_id")
	if err != nil {
		respondError(c, err)
		return
	}
	var req newCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, bindError(err))
		return
	}

	ctx := c.Request.Context()
	comment := &models.Comment{ArticleID: id, Author: req.Username, Body: req.Body}
	err = settle(func() error {
		return h.comments.Create(ctx, comment)
	}, func() error {
		return h.exists.Exists(ctx, repositories.EntityArticle, id)
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"comment": comment})
}

// PatchVotes PATCH /api/comments/:comment_id
func (h *CommentHandler) PatchVotes(c *gin.Context) {
	id, err := pathID(c, "comment_id")
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
	var comment *models.Comment
	if delta == 0 {
		comment, err = h.comments.FindByID(ctx, id)
	} else {
		err = settle(func() (err error) {
			comment, err = h.comments.UpdateVotes(ctx, id, delta)
			return err
		}, func() error {
			return h.exists.Exists(ctx, repositories.EntityComment, id)
		})
	}
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"comment": comment})
}

// Delete DELETE /api/comments/:comment_id
func (h *CommentHandler) Delete(c *gin.Context) {
	id, err := pathID(c, "comment_id")
	if err != nil {
		respondError(c, err)
		return
	}
	if err := h.comments.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
