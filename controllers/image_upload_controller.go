package controllers

import (
	"net/http"

	"backend/utils"

	"github.com/gin-gonic/gin"
)

type UploadImageRequest struct {
	ImageBase64 string `json:"image_base64" binding:"required"`
}

// UploadFoodImage stores a food photo and returns its public URL, ready to
// attach to a food item via image_url.
func UploadFoodImage(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var req UploadImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	url, err := utils.UploadBase64ImageToS3(req.ImageBase64, user.Email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Upload failed", "detail": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": url})
}
