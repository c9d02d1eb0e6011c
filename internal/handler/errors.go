package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/notevault/notevault/internal/database/repository"
	"github.com/notevault/notevault/internal/database/service"
)

// handleServiceError maps service and repository errors to HTTP responses.
// Anything unclassified is an internal error.
func handleServiceError(c *gin.Context, logger *slog.Logger, err error) {
	switch {
	case errors.Is(err, service.ErrEmailAlreadyExists):
		c.JSON(http.StatusConflict, gin.H{"error": "Email already registered"})
	case errors.Is(err, service.ErrMissingFields):
		c.JSON(http.StatusConflict, gin.H{"error": "Nickname or Email or Password should always be filled"})
	case errors.Is(err, repository.ErrDuplicateKey):
		c.JSON(http.StatusConflict, gin.H{"error": "Nickname or email already taken"})
	case errors.Is(err, service.ErrEmailMismatch):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email not matching"})
	case errors.Is(err, service.ErrMissingCredentials):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Input is missing"})
	case errors.Is(err, service.ErrInvalidPassword):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Password Incorrect"})
	case errors.Is(err, repository.ErrUserNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "User with this ID doesn't exist"})
	case errors.Is(err, repository.ErrNoteNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Note with this ID doesn't exist"})
	default:
		logger.Error("❌ [Handler] Internal server error", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
