package models

import "gorm.io/gorm"

// Unit is the measurement unit of a nutrient quantity.
type Unit string

const (
	UnitGram       Unit = "g"
	UnitMilligram  Unit = "mg"
	UnitMicrogram  Unit = "mcg"
	UnitMilliliter Unit = "ml"
)

func (u Unit) Valid() bool {
	switch u {
	case UnitGram, UnitMilligram, UnitMicrogram, UnitMilliliter:
		return true
	}
	return false
}

// FoodItem is a catalog entry owned by its creator: a gel, bar, drink mix…
type FoodItem struct {
	gorm.Model
	UserID   uint   `gorm:"index;not null"`
	Name     string `gorm:"not null"`
	Brand    string
	Category string
	// CostCents is the per-serving cost; nil when unknown.
	CostCents *int
	ImageURL  string

	Nutrients []FoodItemNutrient `gorm:"constraint:OnDelete:CASCADE"`
}

// FoodItemNutrient is one per-serving nutrient quantity on a food item.
// SortOrder preserves the order the creator entered them in.
type FoodItemNutrient struct {
	gorm.Model
	FoodItemID uint    `gorm:"index;not null"`
	Nutrient   string  `gorm:"not null"` // e.g. "carbohydrates", "sodium"
	Quantity   float64 `gorm:"not null"` // per serving
	Unit       Unit    `gorm:"type:varchar(8);not null"`
	SortOrder  int
}
