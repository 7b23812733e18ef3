package models

import "gorm.io/gorm"

// PlanChange is one append-only audit entry for a plan mutation.
type PlanChange struct {
	gorm.Model
	EventID uint   `gorm:"index;not null"`
	UserID  uint   `gorm:"index;not null"`
	Action  string `gorm:"not null"` // e.g. "consumption.created", "goal.updated"
	Detail  string
}
