package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Sourabh-Bhakar5228/referme-updated-sub000/internal/dto/response"
	apperrors "github.com/Sourabh-Bhakar5228/referme-updated-sub000/pkg/errors"
)

const (
	msgValidationFailed = "validation failed"
	msgInvalidID        = "invalid id"
)

// respondError writes err in the response envelope with the status its AppError carries.
// Anything else is recorded on the context and reported as an internal error.
func respondError(ctx *gin.Context, err error) {
	status := apperrors.GetStatus(err)
	if status >= http.StatusInternalServerError {
		_ = ctx.Error(err)
	}
	ctx.JSON(status, response.NewAppError[any](apperrors.GetMessage(err), apperrors.GetCode(err)))
}

// bindJSON decodes the request body into req, answering 400 on failure
func bindJSON(ctx *gin.Context, req any) bool {
	if err := ctx.ShouldBindJSON(req); err != nil {
		ctx.JSON(http.StatusBadRequest, response.NewErrorWithDetails[any](msgValidationFailed, err.Error()))
		return false
	}
	return true
}

// intParam parses a numeric path parameter, answering 400 on failure
func intParam(ctx *gin.Context, name string) (int, bool) {
	v, err := strconv.Atoi(ctx.Param(name))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, response.NewError[any](msgInvalidID))
		return 0, false
	}
	return v, true
}
