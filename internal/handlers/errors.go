package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/SscSPs/finance_tracker/internal/apperrors"
	"github.com/SscSPs/finance_tracker/internal/dto"
	"github.com/SscSPs/finance_tracker/internal/middleware"
	"github.com/gin-gonic/gin"
)

// respondWithError writes the ErrorResponse for err. Server-side failures are
// logged in full and reported to the client with a generic message.
func respondWithError(c *gin.Context, logger *slog.Logger, err error) {
	status := apperrors.StatusCode(err)
	body := dto.ErrorResponse{
		Error:     err.Error(),
		Details:   http.StatusText(status),
		Path:      c.Request.URL.Path,
		Timestamp: time.Now().UTC(),
		Status:    status,
	}
	if status >= http.StatusInternalServerError {
		logger.Error("Request failed", slog.String("error", err.Error()))
		body.Error = "An unexpected error occurred"
	} else {
		logger.Warn("Request rejected", slog.Int("status", status), slog.String("error", err.Error()))
	}
	c.AbortWithStatusJSON(status, body)
}

// respondWithBindError reports a request that failed binding or tag validation.
func respondWithBindError(c *gin.Context, logger *slog.Logger, err error) {
	respondWithError(c, logger, apperrors.NewBadRequestError("Invalid request: "+err.Error()))
}

// currentUserID returns the authenticated caller or aborts with 401.
func currentUserID(c *gin.Context, logger *slog.Logger) (string, bool) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		respondWithError(c, logger, apperrors.NewUnauthorizedError("Unauthorized"))
		return "", false
	}
	return userID, true
}
