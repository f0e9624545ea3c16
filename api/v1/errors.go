package v1

import (
	"errors"
	"net/http"

	"github.com/blocktrace/apperrors"
	"github.com/gin-gonic/gin"
)

// respondError maps a service error onto an HTTP status. Anything outside the
// known sentinel set is an internal error and the message is not echoed back.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrNotFoundOrDenied):
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Model not found or access denied",
		})
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": err.Error(),
		})
	case errors.Is(err, apperrors.ErrCircularReference):
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": err.Error(),
		})
	case errors.Is(err, apperrors.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": err.Error(),
		})
	case errors.Is(err, apperrors.ErrConflict):
		c.JSON(http.StatusConflict, gin.H{
			"status":  "error",
			"message": err.Error(),
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Internal server error",
		})
	}
}

// respondBadRequest is the standard reply to a body that fails binding
func respondBadRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{
		"status":  "error",
		"message": "Invalid request body",
		"error":   err.Error(),
	})
}

// currentUserID reads the authenticated user id the middleware stored
func currentUserID(c *gin.Context) string {
	userID, _ := c.Get("userId")
	id, _ := userID.(string)
	return id
}
