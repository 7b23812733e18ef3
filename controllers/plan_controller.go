package controllers

import (
	"net/http"
	"strconv"

	"backend/services"

	"github.com/gin-gonic/gin"
)

// GET /events/:id/plan/timeline?exclude=<consumptionID>
// exclude drops a consumption being dragged from the lane scan.
func GetPlanTimeline(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	eventID, ok := paramID(c, "id")
	if !ok {
		return
	}

	var excludeID uint
	if raw := c.Query("exclude"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid exclude"})
			return
		}
		excludeID = uint(id)
	}

	timeline, err := services.ComputeTimeline(user.ID, eventID, excludeID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "event not found"})
		return
	}
	c.JSON(http.StatusOK, timeline)
}

// GET /events/:id/plan/report
func GetPlanReport(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	eventID, ok := paramID(c, "id")
	if !ok {
		return
	}

	report, err := services.ComputeReport(user.ID, eventID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "event not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"event_id": eventID, "hours": report})
}

// GET /events/:id/plan/changes?limit=20
func ListPlanChanges(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	eventID, ok := paramID(c, "id")
	if !ok {
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	changes, err := services.ListPlanChanges(user.ID, eventID, limit)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "event not found"})
		return
	}
	c.JSON(http.StatusOK, changes)
}
