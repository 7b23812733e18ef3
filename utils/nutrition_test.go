package utils

import (
	"math"
	"testing"

	"backend/models"
	"gorm.io/gorm"
)

func carbFood(id uint, gramsPerServing float64) models.FoodItem {
	return models.FoodItem{
		Model: gorm.Model{ID: id},
		Name:  "gel",
		Nutrients: []models.FoodItemNutrient{
			{FoodItemID: id, Nutrient: "carbohydrates", Quantity: gramsPerServing, Unit: models.UnitGram},
		},
	}
}

func intake(id, foodID uint, offset int, servings float64) models.Consumption {
	return models.Consumption{
		Model:             gorm.Model{ID: id},
		FoodItemID:        foodID,
		TimeOffsetSeconds: offset,
		Servings:          servings,
	}
}

func baseGoal(nutrient string, qty float64, unit models.Unit) models.NutrientGoal {
	return models.NutrientGoal{Nutrient: nutrient, Quantity: qty, Unit: unit}
}

func hourlyGoal(nutrient string, qty float64, unit models.Unit, hour int) models.NutrientGoal {
	return models.NutrientGoal{Nutrient: nutrient, Quantity: qty, Unit: unit, Hour: &hour}
}

func findRow(t *testing.T, bucket HourBucket, nutrient string) NutrientReport {
	t.Helper()
	for _, row := range bucket.Nutrients {
		if row.Nutrient == nutrient {
			return row
		}
	}
	t.Fatalf("no %q row in hour %d", nutrient, bucket.Hour)
	return NutrientReport{}
}

func TestClassifyStatus(t *testing.T) {
	goal := 100.0
	zero := 0.0
	tests := []struct {
		name   string
		actual float64
		goal   *float64
		want   NutrientStatus
	}{
		{"zero goal", 75, &zero, StatusNoGoal},
		{"just under fifty", 49.999, &goal, StatusCriticalLow},
		{"exactly fifty", 50.0, &goal, StatusBelowGoal},
		{"just under ninety", 89.999, &goal, StatusBelowGoal},
		{"exactly ninety", 90.0, &goal, StatusOnTarget},
		{"exactly one twenty", 120.0, &goal, StatusOnTarget},
		{"just over one twenty", 120.001, &goal, StatusAboveGoal},
		{"exactly one fifty", 150.0, &goal, StatusAboveGoal},
		{"just over one fifty", 150.001, &goal, StatusWayOver},
		{"zero intake", 0, &goal, StatusCriticalLow},
		{"no goal", 75, nil, StatusNoGoal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClassifyStatus(tt.actual, tt.goal); got != tt.want {
				t.Errorf("ClassifyStatus(%v) = %q, want %q", tt.actual, got, tt.want)
			}
		})
	}
}

func TestComputeNutrientReportTwoHourScenario(t *testing.T) {
	// 2h event, 100g carbs consumed at 30min, base goal 80g
	food := carbFood(10, 100)
	report := ComputeNutrientReport(
		[]models.Consumption{intake(1, 10, 1800, 1)},
		map[uint]models.FoodItem{10: food},
		[]models.NutrientGoal{baseGoal("carbohydrates", 80, models.UnitGram)},
		7200,
	)

	if len(report) != 2 {
		t.Fatalf("got %d buckets, want 2", len(report))
	}
	if report[0].StartTimeSeconds != 0 || report[0].EndTimeSeconds != 3600 {
		t.Errorf("hour 0 window = [%d,%d], want [0,3600]",
			report[0].StartTimeSeconds, report[0].EndTimeSeconds)
	}

	h0 := findRow(t, report[0], "carbohydrates")
	if h0.Actual != 100 {
		t.Errorf("hour 0 actual = %v, want 100", h0.Actual)
	}
	if h0.Goal == nil || *h0.Goal != 80 {
		t.Errorf("hour 0 goal = %v, want 80", h0.Goal)
	}
	if h0.Status != StatusAboveGoal {
		t.Errorf("hour 0 status = %q, want %q", h0.Status, StatusAboveGoal)
	}
	if h0.Percent == nil || *h0.Percent != 125 {
		t.Errorf("hour 0 percent = %v, want 125", h0.Percent)
	}
	if h0.BarWidthPercent == nil || *h0.BarWidthPercent != 100 {
		t.Errorf("hour 0 bar width = %v, want clamped 100", h0.BarWidthPercent)
	}

	h1 := findRow(t, report[1], "carbohydrates")
	if h1.Actual != 0 {
		t.Errorf("hour 1 actual = %v, want 0", h1.Actual)
	}
	if h1.Status != StatusCriticalLow {
		t.Errorf("hour 1 status = %q, want %q", h1.Status, StatusCriticalLow)
	}
	if h1.Percent == nil || *h1.Percent != 0 {
		t.Errorf("hour 1 percent = %v, want 0", h1.Percent)
	}
}

func TestComputeNutrientReportAdditivity(t *testing.T) {
	food := carbFood(10, 25)
	foods := map[uint]models.FoodItem{10: food}
	goals := []models.NutrientGoal{baseGoal("carbohydrates", 60, models.UnitGram)}

	a := intake(1, 10, 600, 1)
	b := intake(2, 10, 1200, 1)

	only := func(cs ...models.Consumption) float64 {
		r := ComputeNutrientReport(cs, foods, goals, 3600)
		return findRow(t, r[0], "carbohydrates").Actual
	}

	both := only(a, b)
	if want := only(a) + only(b); math.Abs(both-want) > 1e-9 {
		t.Errorf("actual(A∪B) = %v, want actual(A)+actual(B) = %v", both, want)
	}
}

func TestComputeNutrientReportFractionalServings(t *testing.T) {
	food := carbFood(10, 50)
	report := ComputeNutrientReport(
		[]models.Consumption{intake(1, 10, 0, 0.5)},
		map[uint]models.FoodItem{10: food},
		nil,
		3600,
	)
	row := findRow(t, report[0], "carbohydrates")
	if row.Actual != 25 {
		t.Errorf("half serving of 50g = %v, want 25", row.Actual)
	}
	if row.Status != StatusNoGoal {
		t.Errorf("status without goals = %q, want %q", row.Status, StatusNoGoal)
	}
	if row.Percent != nil {
		t.Errorf("percent without goals = %v, want nil", *row.Percent)
	}
}

func TestComputeNutrientReportGoalFallback(t *testing.T) {
	food := carbFood(10, 30)
	foods := map[uint]models.FoodItem{10: food}

	t.Run("override supersedes base for its hour only", func(t *testing.T) {
		goals := []models.NutrientGoal{
			baseGoal("carbohydrates", 60, models.UnitGram),
			hourlyGoal("carbohydrates", 90, models.UnitGram, 1),
		}
		report := ComputeNutrientReport(nil, foods, goals, 3*3600)

		for hour, want := range map[int]float64{0: 60, 1: 90, 2: 60} {
			row := findRow(t, report[hour], "carbohydrates")
			if row.Goal == nil || *row.Goal != want {
				t.Errorf("hour %d goal = %v, want %v", hour, row.Goal, want)
			}
		}
	})

	t.Run("override without base leaves other hours goalless", func(t *testing.T) {
		goals := []models.NutrientGoal{
			hourlyGoal("sodium", 300, models.UnitMilligram, 1),
		}
		report := ComputeNutrientReport(nil, nil, goals, 2*3600)

		h0 := findRow(t, report[0], "sodium")
		if h0.Goal != nil || h0.Status != StatusNoGoal {
			t.Errorf("hour 0 = (%v, %q), want no goal", h0.Goal, h0.Status)
		}
		h1 := findRow(t, report[1], "sodium")
		if h1.Goal == nil || *h1.Goal != 300 {
			t.Errorf("hour 1 goal = %v, want 300", h1.Goal)
		}
		if h1.Unit != models.UnitMilligram {
			t.Errorf("hour 1 unit = %q, want mg", h1.Unit)
		}
	})
}

func TestComputeNutrientReportEventEndBoundary(t *testing.T) {
	// validation allows offset == duration; on whole-hour events that
	// offset must land in the final bucket, not vanish
	food := carbFood(10, 25)
	report := ComputeNutrientReport(
		[]models.Consumption{intake(1, 10, 7200, 1)},
		map[uint]models.FoodItem{10: food},
		nil,
		7200,
	)
	if len(report) != 2 {
		t.Fatalf("got %d buckets, want 2", len(report))
	}
	if got := findRow(t, report[1], "carbohydrates").Actual; got != 25 {
		t.Errorf("final bucket actual = %v, want 25", got)
	}
	var total float64
	for _, bucket := range report {
		total += findRow(t, bucket, "carbohydrates").Actual
	}
	if total != 25 {
		t.Errorf("total across buckets = %v, want 25", total)
	}
}

func TestComputeNutrientReportBucketing(t *testing.T) {
	food := carbFood(10, 10)
	foods := map[uint]models.FoodItem{10: food}

	// 90-minute event: two buckets, the second truncated at the duration
	report := ComputeNutrientReport(
		[]models.Consumption{
			intake(1, 10, 3599, 1), // last second of hour 0
			intake(2, 10, 3600, 1), // first second of hour 1
		},
		foods, nil, 5400,
	)
	if len(report) != 2 {
		t.Fatalf("got %d buckets, want 2", len(report))
	}
	if report[1].EndTimeSeconds != 5400 {
		t.Errorf("last bucket end = %d, want 5400", report[1].EndTimeSeconds)
	}
	if got := findRow(t, report[0], "carbohydrates").Actual; got != 10 {
		t.Errorf("hour 0 actual = %v, want 10", got)
	}
	if got := findRow(t, report[1], "carbohydrates").Actual; got != 10 {
		t.Errorf("hour 1 actual = %v, want 10", got)
	}
}
