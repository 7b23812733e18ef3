package models

import (
	"time"

	"gorm.io/gorm"
)

// Event is a race or training session with a fixed expected duration.
// DurationSeconds bounds the time offsets of every consumption in the plan.
type Event struct {
	gorm.Model
	UserID          uint   `gorm:"index;not null"`
	Name            string `gorm:"not null"`
	Location        string
	Notes           string
	StartsAt        time.Time
	DurationSeconds int `gorm:"not null"`

	Consumptions []Consumption
	Goals        []NutrientGoal
}

// HourCount returns the number of hour buckets covering the event.
func (e Event) HourCount() int {
	return (e.DurationSeconds + 3599) / 3600
}
