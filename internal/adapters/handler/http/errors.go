package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/comitanigiacomo/kanso-home/internal/adapters/handler/http/middleware"
	"github.com/comitanigiacomo/kanso-home/internal/core/domain"
	"github.com/comitanigiacomo/kanso-home/internal/logger"
)

var errorStatuses = []struct {
	err    error
	status int
}{
	{domain.ErrInvalidRange, http.StatusBadRequest},
	{domain.ErrInvalidEmail, http.StatusBadRequest},
	{domain.ErrPasswordTooShort, http.StatusBadRequest},
	{domain.ErrUserNameTooLong, http.StatusBadRequest},
	{domain.ErrHomeNameEmpty, http.StatusBadRequest},
	{domain.ErrHomeNameTooLong, http.StatusBadRequest},
	{domain.ErrTaskTitleEmpty, http.StatusBadRequest},
	{domain.ErrTaskTitleTooLong, http.StatusBadRequest},
	{domain.ErrInvalidPoints, http.StatusBadRequest},
	{domain.ErrInvalidTaskDate, http.StatusBadRequest},
	{domain.ErrAssigneeNotInHome, http.StatusBadRequest},

	{domain.ErrInvalidCredentials, http.StatusUnauthorized},
	{domain.ErrUnauthorized, http.StatusUnauthorized},

	{domain.ErrUserNotFound, http.StatusNotFound},
	{domain.ErrHomeNotFound, http.StatusNotFound},
	{domain.ErrNotInHome, http.StatusNotFound},
	{domain.ErrTaskNotFound, http.StatusNotFound},

	{domain.ErrEmailAlreadyExists, http.StatusConflict},
	{domain.ErrAlreadyInHome, http.StatusConflict},
	{domain.ErrTaskAlreadyCompleted, http.StatusConflict},
}

// handleError writes the response for a service error. Client errors echo
// the message; server errors are logged and answered generically.
func handleError(c *gin.Context, err error) {
	if errors.Is(err, domain.ErrStatisticsGenerationFailed) {
		logger.Error("statistics generation failed", "path", c.FullPath(), "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": domain.ErrStatisticsGenerationFailed.Error()})
		return
	}

	for _, e := range errorStatuses {
		if errors.Is(err, e.err) {
			c.JSON(e.status, gin.H{"error": err.Error()})
			return
		}
	}

	_ = c.Error(err)
	logger.Error("request failed", "path", c.FullPath(), "error", err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
}

func currentUser(c *gin.Context) (string, bool) {
	userID, ok := middleware.GetUserID(c)
	if !ok || userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return "", false
	}
	return userID, true
}
