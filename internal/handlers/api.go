package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"

	"ncnews/internal/utils"

	"github.com/gin-gonic/gin"
)

const endpointsTTL = 5 * time.Minute

// APIHandler serves the endpoint catalogue. The file is re-read at most once
// per endpointsTTL so edits show up without a restart.
type APIHandler struct {
	file  string
	cache *utils.TTLCache[[]byte]
}

func NewAPIHandler(file string) (*APIHandler, error) {
	cache, err := utils.NewTTLCache[[]byte](1)
	if err != nil {
		return nil, err
	}
	return &APIHandler{file: file, cache: cache}, nil
}

// Endpoints GET /api
func (h *APIHandler) Endpoints(c *gin.Context) {
	body, ok := h.cache.Get(h.file)
	if !ok {
		var err error
		body, err = os.ReadFile(h.file)
		if err != nil {
			respondError(c, fmt.Errorf("read endpoints: %w", err))
			return
		}
		if !json.Valid(body) {
			respondError(c, fmt.Errorf("endpoints file %s is not valid json", h.file))
			return
		}
		h.cache.Set(h.file, body, endpointsTTL)
	}
	c.Data(http.StatusOK, "application/json; charset=utf-8", body)
}
