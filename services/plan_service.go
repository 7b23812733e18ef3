package services

import (
	"backend/config"
	"backend/models"
	"backend/utils"
)

// TimelinePlacement is one consumption's computed position.
type TimelinePlacement struct {
	ConsumptionID     uint    `json:"consumption_id"`
	FoodItemID        uint    `json:"food_item_id"`
	FoodItemName      string  `json:"food_item_name"`
	TimeOffsetSeconds int     `json:"time_offset_seconds"`
	Lane              int     `json:"lane"`
	TopPercent        float64 `json:"top_percent"`
	LeftPercent       float64 `json:"left_percent"`
}

type TimelineView struct {
	EventID           uint                `json:"event_id"`
	DurationSeconds   int                 `json:"duration_seconds"`
	ItemHeightPercent float64             `json:"item_height_percent"`
	Placements        []TimelinePlacement `json:"placements"`
}

func loadPlanInputs(userID, eventID uint) (*models.Event, []models.Consumption, map[uint]models.FoodItem, []models.NutrientGoal, error) {
	event, err := GetEvent(userID, eventID)
	if err != nil {
		return nil, nil, nil, nil, err
	}

	var consumptions []models.Consumption
	if err := config.DB.
		Preload("FoodItem.Nutrients").
		Where("event_id = ?", event.ID).
		Order("time_offset_seconds ASC, id ASC").
		Find(&consumptions).Error; err != nil {
		return nil, nil, nil, nil, err
	}

	foodByID := make(map[uint]models.FoodItem, len(consumptions))
	for _, c := range consumptions {
		foodByID[c.FoodItemID] = c.FoodItem
	}

	var goals []models.NutrientGoal
	if err := config.DB.
		Where("event_id = ?", event.ID).
		Find(&goals).Error; err != nil {
		return nil, nil, nil, nil, err
	}

	return event, consumptions, foodByID, goals, nil
}

// ComputeTimeline lays out the event's consumptions into lanes.
// excludeID (0 = none) leaves a dragged consumption out of the scan.
func ComputeTimeline(userID, eventID, excludeID uint) (*TimelineView, error) {
	event, consumptions, _, _, err := loadPlanInputs(userID, eventID)
	if err != nil {
		return nil, err
	}

	lanes := utils.ComputeLayout(consumptions, event.DurationSeconds, excludeID)

	view := &TimelineView{
		EventID:           event.ID,
		DurationSeconds:   event.DurationSeconds,
		ItemHeightPercent: utils.ItemHeightPercent,
		Placements:        make([]TimelinePlacement, 0, len(lanes)),
	}
	for _, c := range consumptions {
		lane, ok := lanes[c.ID]
		if !ok {
			continue
		}
		view.Placements = append(view.Placements, TimelinePlacement{
			ConsumptionID:     c.ID,
			FoodItemID:        c.FoodItemID,
			FoodItemName:      c.FoodItem.Name,
			TimeOffsetSeconds: c.TimeOffsetSeconds,
			Lane:              lane,
			TopPercent:        utils.TopPercent(c.TimeOffsetSeconds, event.DurationSeconds),
			LeftPercent:       utils.LaneOffsetPercent(lane),
		})
	}
	return view, nil
}

// ComputeReport builds the hour-by-hour nutrient report for an event.
func ComputeReport(userID, eventID uint) ([]utils.HourBucket, error) {
	event, consumptions, foodByID, goals, err := loadPlanInputs(userID, eventID)
	if err != nil {
		return nil, err
	}
	return utils.ComputeNutrientReport(consumptions, foodByID, goals, event.DurationSeconds), nil
}

// BuildPlanPayload bundles both computations for realtime broadcast.
func BuildPlanPayload(userID, eventID uint) (map[string]interface{}, error) {
	timeline, err := ComputeTimeline(userID, eventID, 0)
	if err != nil {
		return nil, err
	}
	report, err := ComputeReport(userID, eventID)
	if err != nil {
		return nil, err
	}
	return map[string]interface{}{
		"timeline": timeline,
		"report":   report,
	}, nil
}
