package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	authuc "jobboard_backend/internal/feature/auth/usecase"
	jobsuc "jobboard_backend/internal/feature/jobs/usecase"
)

// Error maps a usecase error onto an HTTP status and the uniform
// ErrorResponse shape. Unrecognized errors are logged and surfaced as a
// generic 500 so that store internals never leak to clients.
func Error(c *gin.Context, err error) {
	switch {
	case errors.Is(err, authuc.ErrPasswordTooShort),
		errors.Is(err, jobsuc.ErrInvalidStatus),
		errors.Is(err, jobsuc.ErrInvalidWorkType):
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: err.Error()})

	case errors.Is(err, authuc.ErrEmailAlreadyExists):
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: "email field has to be unique"})

	case errors.Is(err, authuc.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, ErrorResponse{Message: err.Error()})

	case errors.Is(err, jobsuc.ErrNotJobOwner):
		c.JSON(http.StatusForbidden, ErrorResponse{Message: err.Error()})

	case errors.Is(err, authuc.ErrUserNotFound), errors.Is(err, jobsuc.ErrJobNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Message: err.Error()})

	default:
		slog.Error("unexpected error", "error", err, "path", c.FullPath(), "remote_addr", c.ClientIP())
		c.JSON(http.StatusInternalServerError, ErrorResponse{Message: "something went wrong"})
	}
}

// ValidationError reports a request-binding failure as a 400 with the
// validator's message.
func ValidationError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, ErrorResponse{Message: err.Error()})
}
