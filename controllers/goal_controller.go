package controllers

import (
	"net/http"

	"backend/services"

	"github.com/gin-gonic/gin"
)

func UpsertGoal(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	eventID, ok := paramID(c, "id")
	if !ok {
		return
	}

	var input services.GoalInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	goal, err := services.UpsertGoal(user.ID, eventID, input)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, goal)
}

func ListGoals(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	eventID, ok := paramID(c, "id")
	if !ok {
		return
	}

	goals, err := services.ListGoals(user.ID, eventID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "event not found"})
		return
	}
	c.JSON(http.StatusOK, goals)
}

func DeleteGoal(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	eventID, ok := paramID(c, "id")
	if !ok {
		return
	}
	goalID, ok := paramID(c, "goalId")
	if !ok {
		return
	}

	if err := services.DeleteGoal(user.ID, eventID, goalID); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

// GET /events/:id/goals/suggested returns fueling-band recommendations.
func SuggestedGoals(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	eventID, ok := paramID(c, "id")
	if !ok {
		return
	}

	suggestion, err := services.SuggestedGoals(user.ID, eventID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, suggestion)
}
