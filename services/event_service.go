package services

import (
	"errors"
	"time"

	"backend/config"
	"backend/models"
	"backend/utils"
)

type EventInput struct {
	Name            string    `json:"name" binding:"required"`
	Location        string    `json:"location"`
	Notes           string    `json:"notes"`
	StartsAt        time.Time `json:"starts_at"`
	DurationSeconds int       `json:"duration_seconds" binding:"required"`
}

func CreateEvent(userID uint, input EventInput) (*models.Event, error) {
	if err := utils.ValidateDuration(input.DurationSeconds); err != nil {
		return nil, err
	}

	event := models.Event{
		UserID:          userID,
		Name:            input.Name,
		Location:        input.Location,
		Notes:           input.Notes,
		StartsAt:        input.StartsAt,
		DurationSeconds: input.DurationSeconds,
	}
	if err := config.DB.Create(&event).Error; err != nil {
		return nil, err
	}
	return &event, nil
}

func ListEvents(userID uint) ([]models.Event, error) {
	var events []models.Event
	err := config.DB.
		Where("user_id = ?", userID).
		Order("starts_at DESC").
		Find(&events).Error
	return events, err
}

func GetEvent(userID, eventID uint) (*models.Event, error) {
	var event models.Event
	err := config.DB.
		Where("id = ? AND user_id = ?", eventID, userID).
		First(&event).Error
	if err != nil {
		return nil, err
	}
	return &event, nil
}

func UpdateEvent(userID, eventID uint, input EventInput) (*models.Event, error) {
	event, err := GetEvent(userID, eventID)
	if err != nil {
		return nil, err
	}
	if err := utils.ValidateDuration(input.DurationSeconds); err != nil {
		return nil, err
	}

	// refuse to shrink the duration below any scheduled consumption
	if input.DurationSeconds < event.DurationSeconds {
		var count int64
		config.DB.Model(&models.Consumption{}).
			Where("event_id = ? AND time_offset_seconds > ?", event.ID, input.DurationSeconds).
			Count(&count)
		if count > 0 {
			return nil, errors.New("consumptions exist beyond the new duration")
		}
	}

	event.Name = input.Name
	event.Location = input.Location
	event.Notes = input.Notes
	event.StartsAt = input.StartsAt
	event.DurationSeconds = input.DurationSeconds

	if err := config.DB.Save(event).Error; err != nil {
		return nil, err
	}
	return event, nil
}

func DeleteEvent(userID, eventID uint) error {
	event, err := GetEvent(userID, eventID)
	if err != nil {
		return err
	}
	if err := config.DB.Where("event_id = ?", event.ID).Delete(&models.Consumption{}).Error; err != nil {
		return err
	}
	if err := config.DB.Where("event_id = ?", event.ID).Delete(&models.NutrientGoal{}).Error; err != nil {
		return err
	}
	return config.DB.Delete(event).Error
}
