package utils

import (
	"math"
	"sort"

	"backend/models"
)

// NutrientStatus classifies actual intake against the resolved goal.
type NutrientStatus string

const (
	StatusCriticalLow NutrientStatus = "critical_low"
	StatusBelowGoal   NutrientStatus = "below_goal"
	StatusOnTarget    NutrientStatus = "on_target"
	StatusAboveGoal   NutrientStatus = "above_goal"
	StatusWayOver     NutrientStatus = "way_over"
	StatusNoGoal      NutrientStatus = "no_goal"
)

// NutrientReport is one nutrient row within an hour bucket.
type NutrientReport struct {
	Nutrient string      `json:"nutrient"`
	Unit     models.Unit `json:"unit"`
	Goal     *float64    `json:"goal"` // nil when no goal applies to this hour
	Actual   float64     `json:"actual"`
	// Percent is round(actual/goal*100); nil without a positive goal.
	// It is intentionally not clamped, only BarWidthPercent is.
	Percent         *int           `json:"percent"`
	BarWidthPercent *int           `json:"bar_width_percent"`
	Status          NutrientStatus `json:"status"`
}

// HourBucket is the per-hour slice of the nutrient report.
type HourBucket struct {
	Hour             int              `json:"hour"`
	StartTimeSeconds int              `json:"start_time_seconds"`
	EndTimeSeconds   int              `json:"end_time_seconds"`
	Nutrients        []NutrientReport `json:"nutrients"`
}

// ClassifyStatus maps an actual/goal pair onto the six status tiers.
// A nil or non-positive goal is "no_goal"; boundaries are inclusive on the
// low side of each band (50% is already below_goal, 120% still on_target,
// 150% still above_goal).
func ClassifyStatus(actual float64, goal *float64) NutrientStatus {
	if goal == nil || *goal <= 0 {
		return StatusNoGoal
	}
	ratio := actual / *goal * 100
	switch {
	case ratio < 50:
		return StatusCriticalLow
	case ratio < 90:
		return StatusBelowGoal
	case ratio <= 120:
		return StatusOnTarget
	case ratio <= 150:
		return StatusAboveGoal
	default:
		return StatusWayOver
	}
}

// ComputeNutrientReport produces one HourBucket per hour of the event,
// covering every nutrient referenced by a consumed food item or by any goal.
//
// Actual intake per (hour, nutrient) sums quantityPerServing × servings over
// the consumptions landing in that hour (floor(offset/3600)). The goal for a
// row is the hourly override when one exists, else the base goal, else nil.
//
// Pure function of its inputs; offsets and servings are assumed to have
// passed boundary validation upstream.
func ComputeNutrientReport(
	consumptions []models.Consumption,
	foodByID map[uint]models.FoodItem,
	goals []models.NutrientGoal,
	durationSeconds int,
) []HourBucket {
	hours := (durationSeconds + 3599) / 3600
	if hours <= 0 {
		return nil
	}

	// goal lookup: base per nutrient, overrides per (nutrient, hour)
	baseGoals := make(map[string]models.NutrientGoal)
	hourlyGoals := make(map[string]map[int]models.NutrientGoal)
	for _, g := range goals {
		if g.Hour == nil {
			baseGoals[g.Nutrient] = g
			continue
		}
		if hourlyGoals[g.Nutrient] == nil {
			hourlyGoals[g.Nutrient] = make(map[int]models.NutrientGoal)
		}
		hourlyGoals[g.Nutrient][*g.Hour] = g
	}

	// actual intake per hour, and the unit fallback per nutrient
	actuals := make([]map[string]float64, hours)
	for h := range actuals {
		actuals[h] = make(map[string]float64)
	}
	foodUnits := make(map[string]models.Unit)
	names := make(map[string]struct{})

	for _, c := range consumptions {
		food, ok := foodByID[c.FoodItemID]
		if !ok {
			continue
		}
		hour := c.TimeOffsetSeconds / 3600
		// an intake at the exact event end (offset == duration, which
		// boundary validation allows) belongs to the final bucket
		if hour == hours && c.TimeOffsetSeconds == durationSeconds {
			hour = hours - 1
		}
		if hour < 0 || hour >= hours {
			continue
		}
		for _, n := range food.Nutrients {
			actuals[hour][n.Nutrient] += n.Quantity * c.Servings
			if _, seen := foodUnits[n.Nutrient]; !seen {
				foodUnits[n.Nutrient] = n.Unit
			}
			names[n.Nutrient] = struct{}{}
		}
	}
	for _, g := range goals {
		names[g.Nutrient] = struct{}{}
	}

	ordered := make([]string, 0, len(names))
	for n := range names {
		ordered = append(ordered, n)
	}
	sort.Strings(ordered)

	buckets := make([]HourBucket, 0, hours)
	for h := 0; h < hours; h++ {
		end := (h + 1) * 3600
		if end > durationSeconds {
			end = durationSeconds
		}
		bucket := HourBucket{
			Hour:             h,
			StartTimeSeconds: h * 3600,
			EndTimeSeconds:   end,
			Nutrients:        make([]NutrientReport, 0, len(ordered)),
		}

		for _, name := range ordered {
			row := NutrientReport{
				Nutrient: name,
				Actual:   actuals[h][name],
			}

			var resolved *models.NutrientGoal
			if byHour, ok := hourlyGoals[name]; ok {
				if g, ok := byHour[h]; ok {
					resolved = &g
				}
			}
			if resolved == nil {
				if g, ok := baseGoals[name]; ok {
					resolved = &g
				}
			}

			if resolved != nil {
				q := resolved.Quantity
				row.Goal = &q
				row.Unit = resolved.Unit
			} else {
				row.Unit = unitFallback(name, baseGoals, hourlyGoals, foodUnits)
			}

			row.Status = ClassifyStatus(row.Actual, row.Goal)
			if row.Status != StatusNoGoal {
				pct := int(math.Round(row.Actual / *row.Goal * 100))
				bar := pct
				if bar > 100 {
					bar = 100
				}
				row.Percent = &pct
				row.BarWidthPercent = &bar
			}

			bucket.Nutrients = append(bucket.Nutrients, row)
		}
		buckets = append(buckets, bucket)
	}

	return buckets
}

// unitFallback picks a display unit for a row without a resolved goal:
// the base goal's unit, else any override's, else the first food declaration.
func unitFallback(
	nutrient string,
	baseGoals map[string]models.NutrientGoal,
	hourlyGoals map[string]map[int]models.NutrientGoal,
	foodUnits map[string]models.Unit,
) models.Unit {
	if g, ok := baseGoals[nutrient]; ok {
		return g.Unit
	}
	if byHour, ok := hourlyGoals[nutrient]; ok {
		hrs := make([]int, 0, len(byHour))
		for h := range byHour {
			hrs = append(hrs, h)
		}
		sort.Ints(hrs)
		return byHour[hrs[0]].Unit
	}
	return foodUnits[nutrient]
}
