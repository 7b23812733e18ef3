package controllers

import (
	"errors"
	"net/http"

	"backend/services"
	"backend/utils"

	"github.com/gin-gonic/gin"
)

// writeServiceError maps validation failures to 422 and the rest to 400.
func writeServiceError(c *gin.Context, err error) {
	var verr *utils.ValidationError
	if errors.As(err, &verr) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": verr.Message, "kind": verr.Kind})
		return
	}
	c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
}

func AddConsumption(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	eventID, ok := paramID(c, "id")
	if !ok {
		return
	}

	var input services.ConsumptionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	consumption, err := services.AddConsumption(user.ID, eventID, input)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, consumption)
}

func ListConsumptions(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	eventID, ok := paramID(c, "id")
	if !ok {
		return
	}

	consumptions, err := services.ListConsumptions(user.ID, eventID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "event not found"})
		return
	}
	c.JSON(http.StatusOK, consumptions)
}

func UpdateConsumption(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	eventID, ok := paramID(c, "id")
	if !ok {
		return
	}
	consumptionID, ok := paramID(c, "consumptionId")
	if !ok {
		return
	}

	var input services.ConsumptionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	consumption, err := services.UpdateConsumption(user.ID, eventID, consumptionID, input)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, consumption)
}

// PATCH /events/:id/consumptions/:consumptionId/move  { "time_offset_seconds": 1800 }
func MoveConsumption(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	eventID, ok := paramID(c, "id")
	if !ok {
		return
	}
	consumptionID, ok := paramID(c, "consumptionId")
	if !ok {
		return
	}

	var input struct {
		TimeOffsetSeconds int `json:"time_offset_seconds"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	consumption, err := services.MoveConsumption(user.ID, eventID, consumptionID, input.TimeOffsetSeconds)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, consumption)
}

func DeleteConsumption(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	eventID, ok := paramID(c, "id")
	if !ok {
		return
	}
	consumptionID, ok := paramID(c, "consumptionId")
	if !ok {
		return
	}

	if err := services.DeleteConsumption(user.ID, eventID, consumptionID); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

// POST /events/:id/consumptions/repeat schedules a cadence of intakes.
func RepeatConsumption(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	eventID, ok := paramID(c, "id")
	if !ok {
		return
	}

	var input services.RepeatInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	created, err := services.RepeatConsumption(user.ID, eventID, input)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}
