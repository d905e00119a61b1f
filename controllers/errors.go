package controllers

import (
	"errors"
	"log"
	"net/http"

	"resto-api/models"

	"github.com/gin-gonic/gin"
)

// handleError maps a failure to its HTTP response: validation problems carry
// their message to the client, storage failures are logged and surfaced as a
// generic message so the caller can retry.
func handleError(c *gin.Context, op string, err error) {
	var validationErr *models.ValidationError
	if errors.As(err, &validationErr) {
		c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Message})
		return
	}

	log.Printf("%s failed: %v", op, err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "operation failed"})
}
