package models

import "gorm.io/gorm"

// NutrientGoal is a target quantity for one nutrient within an event.
// Hour == nil makes it the base goal for every hour of the event; a non-nil
// Hour makes it an override that supersedes the base goal for that hour only.
type NutrientGoal struct {
	gorm.Model
	EventID  uint   `gorm:"index;not null"`
	Nutrient string `gorm:"not null"`
	Quantity float64
	Unit     Unit `gorm:"type:varchar(8);not null"`
	Hour     *int `gorm:"index"`
}

func (g NutrientGoal) IsHourly() bool { return g.Hour != nil }
