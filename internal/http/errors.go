package httpapi

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"aura/internal/auth"
	"aura/internal/blob"
	"aura/internal/repository"
	"aura/internal/service"
)

var errTooManyRequests = errors.New("too many requests")

func mapErrorToStatus(err error) int {
	switch {
	case errors.Is(err, service.ErrInvalidInput),
		errors.Is(err, blob.ErrNotImage),
		errors.Is(err, blob.ErrImageSize):
		return http.StatusBadRequest
	case errors.Is(err, auth.ErrInvalidCredentials), errors.Is(err, auth.ErrInvalidToken):
		return http.StatusUnauthorized
	case errors.Is(err, service.ErrAccessDenied):
		return http.StatusForbidden
	case errors.Is(err, repository.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, repository.ErrConflict), errors.Is(err, service.ErrInvalidState):
		return http.StatusConflict
	case errors.Is(err, errTooManyRequests):
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}

// fail writes the error body and aborts. Store failures are logged and their
// detail is not exposed.
func (s *Server) fail(c *gin.Context, err error) {
	status := mapErrorToStatus(err)
	msg := err.Error()
	if status == http.StatusInternalServerError {
		s.log.ErrorContext(c, "request failed",
			"method", c.Request.Method, "route", c.FullPath(), "error", err)
		msg = "internal error"
	}
	c.AbortWithStatusJSON(status, gin.H{"error": msg, "message": msg})
}

// badRequest wraps binding and parsing errors as invalid input
func (s *Server) badRequest(c *gin.Context, err error) {
	s.fail(c, fmt.Errorf("%w: %v", service.ErrInvalidInput, err))
}
