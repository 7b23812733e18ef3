package controllers

import (
	"net/http"
	"strconv"

	"backend/config"
	"backend/models"

	"github.com/gin-gonic/gin"
)

// currentUser resolves the authenticated user set by the auth middleware.
// Writes the error response itself when the lookup fails.
func currentUser(c *gin.Context) (*models.User, bool) {
	email := c.GetString("email")
	var user models.User
	if err := config.DB.Where("email = ? AND disabled = ?", email, false).First(&user).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
		return nil, false
	}
	return &user, true
}

func paramID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + name})
		return 0, false
	}
	return uint(id), true
}
