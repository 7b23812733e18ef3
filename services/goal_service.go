package services

import (
	"errors"
	"fmt"

	"backend/config"
	"backend/models"
	"backend/utils"

	"gorm.io/gorm"
)

type GoalInput struct {
	Nutrient string      `json:"nutrient" binding:"required"`
	Quantity float64     `json:"quantity" binding:"required"`
	Unit     models.Unit `json:"unit" binding:"required"`
	// Hour == nil sets the base goal; otherwise the override for that hour.
	Hour *int `json:"hour"`
}

// UpsertGoal creates or replaces the goal for (event, nutrient, hour-or-base).
func UpsertGoal(userID, eventID uint, input GoalInput) (*models.NutrientGoal, error) {
	event, err := GetEvent(userID, eventID)
	if err != nil {
		return nil, err
	}
	if !input.Unit.Valid() {
		return nil, fmt.Errorf("unknown unit %q (want g, mg, mcg or ml)", input.Unit)
	}
	if input.Quantity <= 0 {
		return nil, errors.New("goal quantity must be positive")
	}
	if input.Hour != nil {
		if *input.Hour < 0 || *input.Hour >= event.HourCount() {
			return nil, fmt.Errorf("hour %d outside event range 0..%d", *input.Hour, event.HourCount()-1)
		}
	}

	query := config.DB.Where("event_id = ? AND nutrient = ?", event.ID, input.Nutrient)
	if input.Hour == nil {
		query = query.Where("hour IS NULL")
	} else {
		query = query.Where("hour = ?", *input.Hour)
	}

	var goal models.NutrientGoal
	err = query.First(&goal).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		goal = models.NutrientGoal{
			EventID:  event.ID,
			Nutrient: input.Nutrient,
			Quantity: input.Quantity,
			Unit:     input.Unit,
			Hour:     input.Hour,
		}
		if err := config.DB.Create(&goal).Error; err != nil {
			return nil, err
		}
		EmitPlanUpdate(userID, event.ID, "goal.created", goalDetail(goal))
		return &goal, nil
	}
	if err != nil {
		return nil, err
	}

	goal.Quantity = input.Quantity
	goal.Unit = input.Unit
	if err := config.DB.Save(&goal).Error; err != nil {
		return nil, err
	}
	EmitPlanUpdate(userID, event.ID, "goal.updated", goalDetail(goal))
	return &goal, nil
}

func goalDetail(g models.NutrientGoal) string {
	if g.IsHourly() {
		return fmt.Sprintf("hour %d %s %g%s", *g.Hour, g.Nutrient, g.Quantity, g.Unit)
	}
	return fmt.Sprintf("base %s %g%s", g.Nutrient, g.Quantity, g.Unit)
}

func ListGoals(userID, eventID uint) ([]models.NutrientGoal, error) {
	if _, err := GetEvent(userID, eventID); err != nil {
		return nil, err
	}
	var goals []models.NutrientGoal
	err := config.DB.
		Where("event_id = ?", eventID).
		Order("nutrient ASC, hour ASC NULLS FIRST").
		Find(&goals).Error
	return goals, err
}

func DeleteGoal(userID, eventID, goalID uint) error {
	event, err := GetEvent(userID, eventID)
	if err != nil {
		return err
	}

	result := config.DB.
		Where("id = ? AND event_id = ?", goalID, event.ID).
		Delete(&models.NutrientGoal{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errors.New("goal not found")
	}

	EmitPlanUpdate(userID, event.ID, "goal.deleted", fmt.Sprintf("goal %d removed", goalID))
	return nil
}

// SuggestedGoals returns recommended base goals derived from the event
// duration and the athlete's weight.
func SuggestedGoals(userID, eventID uint) (map[string]interface{}, error) {
	event, err := GetEvent(userID, eventID)
	if err != nil {
		return nil, err
	}

	var user models.User
	if err := config.DB.First(&user, userID).Error; err != nil {
		return nil, err
	}

	carbs, err := utils.RecommendHourlyCarbs(event.DurationSeconds)
	if err != nil {
		return nil, err
	}
	fluid := utils.RecommendHourlyFluidMl(user.WeightKg)

	return map[string]interface{}{
		"band": utils.FuelingBand(event.DurationSeconds),
		"hourly": []map[string]interface{}{
			{"nutrient": "carbohydrates", "quantity": carbs, "unit": models.UnitGram},
			{"nutrient": "fluid", "quantity": fluid, "unit": models.UnitMilliliter},
		},
	}, nil
}
