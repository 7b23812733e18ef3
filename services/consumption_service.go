package services

import (
	"errors"
	"fmt"

	"backend/config"
	"backend/models"
	"backend/utils"
)

type ConsumptionInput struct {
	FoodItemID        uint    `json:"food_item_id" binding:"required"`
	TimeOffsetSeconds int     `json:"time_offset_seconds"`
	Servings          float64 `json:"servings" binding:"required"`
}

type RepeatInput struct {
	FoodItemID         uint    `json:"food_item_id" binding:"required"`
	Servings           float64 `json:"servings" binding:"required"`
	StartOffsetSeconds int     `json:"start_offset_seconds"`
	IntervalSeconds    int     `json:"interval_seconds" binding:"required"`
	EndOffsetSeconds   int     `json:"end_offset_seconds" binding:"required"`
}

func ownedFoodItem(userID, foodItemID uint) error {
	var count int64
	config.DB.Model(&models.FoodItem{}).
		Where("id = ? AND user_id = ?", foodItemID, userID).
		Count(&count)
	if count == 0 {
		return errors.New("food item not found")
	}
	return nil
}

func AddConsumption(userID, eventID uint, input ConsumptionInput) (*models.Consumption, error) {
	event, err := GetEvent(userID, eventID)
	if err != nil {
		return nil, err
	}
	if err := utils.ValidateConsumption(input.TimeOffsetSeconds, input.Servings, event.DurationSeconds); err != nil {
		return nil, err
	}
	if err := ownedFoodItem(userID, input.FoodItemID); err != nil {
		return nil, err
	}

	c := models.Consumption{
		EventID:           event.ID,
		FoodItemID:        input.FoodItemID,
		TimeOffsetSeconds: input.TimeOffsetSeconds,
		Servings:          input.Servings,
	}
	if err := config.DB.Create(&c).Error; err != nil {
		return nil, err
	}

	EmitPlanUpdate(userID, event.ID, "consumption.created",
		fmt.Sprintf("food item %d at %ds", c.FoodItemID, c.TimeOffsetSeconds))

	var populated models.Consumption
	if err := config.DB.Preload("FoodItem.Nutrients").First(&populated, c.ID).Error; err != nil {
		return nil, err
	}
	return &populated, nil
}

func ListConsumptions(userID, eventID uint) ([]models.Consumption, error) {
	if _, err := GetEvent(userID, eventID); err != nil {
		return nil, err
	}
	var consumptions []models.Consumption
	err := config.DB.
		Preload("FoodItem.Nutrients").
		Where("event_id = ?", eventID).
		Order("time_offset_seconds ASC, id ASC").
		Find(&consumptions).Error
	return consumptions, err
}

func UpdateConsumption(userID, eventID, consumptionID uint, input ConsumptionInput) (*models.Consumption, error) {
	event, err := GetEvent(userID, eventID)
	if err != nil {
		return nil, err
	}
	if err := utils.ValidateConsumption(input.TimeOffsetSeconds, input.Servings, event.DurationSeconds); err != nil {
		return nil, err
	}
	if err := ownedFoodItem(userID, input.FoodItemID); err != nil {
		return nil, err
	}

	var c models.Consumption
	if err := config.DB.
		Where("id = ? AND event_id = ?", consumptionID, event.ID).
		First(&c).Error; err != nil {
		return nil, err
	}

	c.FoodItemID = input.FoodItemID
	c.TimeOffsetSeconds = input.TimeOffsetSeconds
	c.Servings = input.Servings
	if err := config.DB.Save(&c).Error; err != nil {
		return nil, err
	}

	EmitPlanUpdate(userID, event.ID, "consumption.updated",
		fmt.Sprintf("consumption %d now %gx food item %d at %ds",
			c.ID, c.Servings, c.FoodItemID, c.TimeOffsetSeconds))

	var populated models.Consumption
	if err := config.DB.Preload("FoodItem.Nutrients").First(&populated, c.ID).Error; err != nil {
		return nil, err
	}
	return &populated, nil
}

// MoveConsumption is the drag-reposition path: it changes only the offset.
func MoveConsumption(userID, eventID, consumptionID uint, offsetSeconds int) (*models.Consumption, error) {
	event, err := GetEvent(userID, eventID)
	if err != nil {
		return nil, err
	}

	var c models.Consumption
	if err := config.DB.
		Where("id = ? AND event_id = ?", consumptionID, event.ID).
		First(&c).Error; err != nil {
		return nil, err
	}

	if err := utils.ValidateConsumption(offsetSeconds, c.Servings, event.DurationSeconds); err != nil {
		return nil, err
	}

	c.TimeOffsetSeconds = offsetSeconds
	if err := config.DB.Save(&c).Error; err != nil {
		return nil, err
	}

	EmitPlanUpdate(userID, event.ID, "consumption.moved",
		fmt.Sprintf("consumption %d moved to %ds", c.ID, offsetSeconds))

	return &c, nil
}

func DeleteConsumption(userID, eventID, consumptionID uint) error {
	event, err := GetEvent(userID, eventID)
	if err != nil {
		return err
	}

	result := config.DB.
		Where("id = ? AND event_id = ?", consumptionID, event.ID).
		Delete(&models.Consumption{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errors.New("consumption not found")
	}

	EmitPlanUpdate(userID, event.ID, "consumption.deleted",
		fmt.Sprintf("consumption %d removed", consumptionID))
	return nil
}

// RepeatConsumption creates one consumption per cadence step from the start
// offset up to min(endOffset, eventDuration), boundary inclusive.
func RepeatConsumption(userID, eventID uint, input RepeatInput) ([]models.Consumption, error) {
	event, err := GetEvent(userID, eventID)
	if err != nil {
		return nil, err
	}
	if input.IntervalSeconds <= 0 {
		return nil, errors.New("interval must be positive")
	}
	if err := utils.ValidateConsumption(input.StartOffsetSeconds, input.Servings, event.DurationSeconds); err != nil {
		return nil, err
	}
	if err := ownedFoodItem(userID, input.FoodItemID); err != nil {
		return nil, err
	}

	end := input.EndOffsetSeconds
	if end > event.DurationSeconds {
		end = event.DurationSeconds
	}

	var created []models.Consumption
	for t := input.StartOffsetSeconds; t <= end; t += input.IntervalSeconds {
		c := models.Consumption{
			EventID:           event.ID,
			FoodItemID:        input.FoodItemID,
			TimeOffsetSeconds: t,
			Servings:          input.Servings,
		}
		if err := config.DB.Create(&c).Error; err != nil {
			return nil, err
		}
		created = append(created, c)
	}

	EmitPlanUpdate(userID, event.ID, "consumption.repeated",
		fmt.Sprintf("%d instances of food item %d every %ds",
			len(created), input.FoodItemID, input.IntervalSeconds))
	return created, nil
}
