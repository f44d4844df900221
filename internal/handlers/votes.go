package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"

	"ncnews/internal/apperr"

	"github.com/gin-gonic/gin"
)

type voteRequest struct {
	IncVotes json.RawMessage `json:"inc_votes"`
}

// incVotes reads the inc_votes delta of a PATCH body. An empty body, a missing
// field or null all mean "no change" and yield 0.
func incVotes(c *gin.Context) (int, error) {
	var req voteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		if errors.Is(err, io.EOF) {
			return 0, nil
		}
		return 0, &apperr.Error{Kind: apperr.KindBadRequest, Msg: "Bad request", Err: err}
	}

	raw := bytes.TrimSpace(req.IncVotes)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return 0, nil
	}
	var delta int
	if err := json.Unmarshal(raw, &delta); err != nil {
		return 0, apperr.BadRequest("inc_votes must be an integer")
	}
	return delta, nil
}
