package handlers

import (
	"errors"
	"io"

	"ncnews/internal/apperr"
	"ncnews/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// respondError is the single place where failures become HTTP responses.
// Internal details stay in c.Errors for the request logger.
func respondError(c *gin.Context, err error) {
	e := apperr.FromStorage(err)
	_ = c.Error(err)
	c.AbortWithStatusJSON(e.Kind.Status(), gin.H{"msg": e.Msg})
}

// pathID reads a positive integer path parameter.
func pathID(c *gin.Context, name string) (int, error) {
	id, ok := utils.ParseID(c.Param(name))
	if !ok {
		return 0, apperr.BadRequest("Invalid " + name)
	}
	return id, nil
}

// bindError classifies a ShouldBindJSON failure.
func bindError(err error) error {
	if errors.Is(err, io.EOF) {
		return apperr.BadRequest("Missing required fields")
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			if fe.Tag() != "required" {
				return apperr.BadRequest("Bad request")
			}
		}
		return apperr.BadRequest("Missing required fields")
	}
	return &apperr.Error{Kind: apperr.KindBadRequest, Msg: "Bad request", Err: err}
}
