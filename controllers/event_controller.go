package controllers

import (
	"net/http"

	"backend/services"

	"github.com/gin-gonic/gin"
)

func CreateEvent(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var input services.EventInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	event, err := services.CreateEvent(user.ID, input)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, event)
}

func ListEvents(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	events, err := services.ListEvents(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, events)
}

func GetEvent(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	eventID, ok := paramID(c, "id")
	if !ok {
		return
	}

	event, err := services.GetEvent(user.ID, eventID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "event not found"})
		return
	}
	c.JSON(http.StatusOK, event)
}

func UpdateEvent(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	eventID, ok := paramID(c, "id")
	if !ok {
		return
	}

	var input services.EventInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	event, err := services.UpdateEvent(user.ID, eventID, input)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, event)
}

func DeleteEvent(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	eventID, ok := paramID(c, "id")
	if !ok {
		return
	}

	if err := services.DeleteEvent(user.ID, eventID); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "event not found"})
		return
	}
	c.Status(http.StatusNoContent)
}
