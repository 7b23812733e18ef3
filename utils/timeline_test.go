package utils

import (
	"reflect"
	"testing"

	"backend/models"
	"gorm.io/gorm"
)

func consumption(id uint, offset int) models.Consumption {
	return models.Consumption{
		Model:             gorm.Model{ID: id},
		TimeOffsetSeconds: offset,
	}
}

func TestComputeLayoutSimultaneousItems(t *testing.T) {
	// both markers land at top=0,bottom=8; the second must shift one lane over
	items := []models.Consumption{
		consumption(1, 0),
		consumption(2, 0),
	}
	lanes := ComputeLayout(items, 7200, 0)

	if lanes[1] != 0 {
		t.Errorf("first item lane = %d, want 0", lanes[1])
	}
	if lanes[2] != 1 {
		t.Errorf("second item lane = %d, want 1", lanes[2])
	}
}

func TestComputeLayoutTouchingEdgesShareLane(t *testing.T) {
	// duration 10000s: offset 800 maps to top=8, exactly the bottom of an
	// item at offset 0. Half-open intervals, so both fit in lane 0.
	items := []models.Consumption{
		consumption(1, 0),
		consumption(2, 800),
	}
	lanes := ComputeLayout(items, 10000, 0)

	if lanes[1] != 0 || lanes[2] != 0 {
		t.Errorf("touching items got lanes %d and %d, want both 0", lanes[1], lanes[2])
	}
}

func TestComputeLayoutNoSameLaneOverlap(t *testing.T) {
	duration := 10000
	items := []models.Consumption{
		consumption(1, 0),
		consumption(2, 100),
		consumption(3, 200),
		consumption(4, 790),
		consumption(5, 900),
		consumption(6, 5000),
	}
	lanes := ComputeLayout(items, duration, 0)

	if len(lanes) != len(items) {
		t.Fatalf("got %d assignments, want %d", len(lanes), len(items))
	}

	interval := func(c models.Consumption) (float64, float64) {
		top := float64(c.TimeOffsetSeconds) / float64(duration) * 100
		return top, top + ItemHeightPercent
	}
	for i := range items {
		for j := i + 1; j < len(items); j++ {
			if lanes[items[i].ID] != lanes[items[j].ID] {
				continue
			}
			aTop, aBottom := interval(items[i])
			bTop, bBottom := interval(items[j])
			if !(bBottom <= aTop || bTop >= aBottom) {
				t.Errorf("items %d and %d share lane %d but overlap",
					items[i].ID, items[j].ID, lanes[items[i].ID])
			}
		}
	}
}

func TestComputeLayoutDeterministic(t *testing.T) {
	items := []models.Consumption{
		consumption(3, 500),
		consumption(1, 0),
		consumption(2, 0),
		consumption(4, 520),
	}
	first := ComputeLayout(items, 7200, 0)
	second := ComputeLayout(items, 7200, 0)

	if !reflect.DeepEqual(first, second) {
		t.Errorf("repeated runs differ: %v vs %v", first, second)
	}
}

func TestComputeLayoutExcludesDraggedItem(t *testing.T) {
	items := []models.Consumption{
		consumption(1, 0),
		consumption(2, 0),
	}
	lanes := ComputeLayout(items, 7200, 1)

	if _, ok := lanes[1]; ok {
		t.Errorf("excluded item still assigned a lane")
	}
	// with item 1 out of the scan, item 2 takes lane 0
	if lanes[2] != 0 {
		t.Errorf("remaining item lane = %d, want 0", lanes[2])
	}
}

func TestComputeLayoutEmptyInput(t *testing.T) {
	lanes := ComputeLayout(nil, 7200, 0)
	if len(lanes) != 0 {
		t.Errorf("empty input produced %d assignments", len(lanes))
	}
}

func TestComputeLayoutEventEndBoundary(t *testing.T) {
	// markers at offset == duration clamp inside the box and still
	// collide with each other
	items := []models.Consumption{
		consumption(1, 7200),
		consumption(2, 7200),
	}
	lanes := ComputeLayout(items, 7200, 0)

	if lanes[1] != 0 || lanes[2] != 1 {
		t.Errorf("boundary items got lanes %d and %d, want 0 and 1", lanes[1], lanes[2])
	}
	if got := TopPercent(7200, 7200); got != 100-ItemHeightPercent {
		t.Errorf("TopPercent at event end = %v, want %v", got, 100-ItemHeightPercent)
	}
	if got := TopPercent(0, 7200); got != 0 {
		t.Errorf("TopPercent at start = %v, want 0", got)
	}
}

func TestLaneOffsetPercent(t *testing.T) {
	tests := []struct {
		lane int
		want float64
	}{
		{0, 0},
		{1, ItemWidthPercent},
		{3, 3 * ItemWidthPercent},
	}
	for _, tt := range tests {
		if got := LaneOffsetPercent(tt.lane); got != tt.want {
			t.Errorf("LaneOffsetPercent(%d) = %v, want %v", tt.lane, got, tt.want)
		}
	}
}
