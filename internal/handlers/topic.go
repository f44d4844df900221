package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type TopicHandler struct {
	topics TopicStore
}

func NewTopicHandler(topics TopicStore) *TopicHandler {
	return &TopicHandler{topics: topics}
}

// List GET /api/topics
func (h *TopicHandler) List(c *gin.Context) {
	topics, err := h.topics.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"topics": topics})
}
