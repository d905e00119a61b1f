package controllers

import (
	"net/http"

	"resto-api/config"
	"resto-api/models"

	"github.com/gin-gonic/gin"
)

func GetUsers(c *gin.Context) {
	var users []models.User
	if err := config.DB.Find(&users).Error; err != nil {
		handleError(c, "list users", err)
		return
	}
	c.JSON(http.StatusOK, users)
}
