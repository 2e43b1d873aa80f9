package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/translationdesk/platform-go/errs"
	"github.com/translationdesk/platform-go/response"
)

// statusFor maps service errors onto HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, errs.ErrTicketNotFound),
		errors.Is(err, errs.ErrTranslationNotFound),
		errors.Is(err, errs.ErrProjectNotFound),
		errors.Is(err, errs.ErrUserNotFound),
		errors.Is(err, errs.ErrReplyNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrRequired),
		errors.Is(err, errs.ErrWorkflowDisabled):
		return http.StatusBadRequest
	case errors.Is(err, errs.ErrInvalidTransition),
		errors.Is(err, errs.ErrNotLastEntry),
		errors.Is(err, errs.ErrTicketClosed):
		return http.StatusConflict
	case errors.Is(err, errs.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, errs.ErrInvalidCredentials):
		return http.StatusUnauthorized
	}
	return http.StatusInternalServerError
}

func abortWithError(c *gin.Context, err error) {
	c.JSON(statusFor(err), response.ErrorResponse{Error: err.Error()})
}
