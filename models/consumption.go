package models

import "gorm.io/gorm"

// Consumption schedules one intake of a food item at an elapsed time within
// an event. Offsets are validated against the event duration before they are
// persisted; the plan computations assume that invariant.
type Consumption struct {
	gorm.Model
	EventID           uint `gorm:"index;not null"`
	FoodItemID        uint `gorm:"index;not null"`
	FoodItem          FoodItem
	TimeOffsetSeconds int     `gorm:"not null"`
	Servings          float64 `gorm:"not null"` // positive, fractional allowed
}
