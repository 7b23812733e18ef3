package utils

import (
	"sort"

	"backend/models"
)

// Layout constants, expressed as percentages of the rendered timeline box.
const (
	// ItemHeightPercent is the vertical extent of one consumption marker.
	ItemHeightPercent = 8.0
	// ItemWidthPercent is the horizontal step between adjacent lanes.
	ItemWidthPercent = 10.0
)

type laneInterval struct {
	top    float64
	bottom float64
}

func (a laneInterval) overlaps(b laneInterval) bool {
	// half-open test: touching edges do not collide
	return !(b.bottom <= a.top || b.top >= a.bottom)
}

// ComputeLayout assigns every consumption a lane index so that no two
// consumptions sharing a lane have overlapping vertical intervals.
//
// Intervals are normalized to percent of the timeline height
// (top = offset/duration*100, bottom = top + ItemHeightPercent) and placed
// greedily: ascending time order, ties kept in input order, first lane that
// fits wins. The result is deterministic for a fixed input order and is
// recomputed from scratch on every call.
//
// excludeID (0 = none) drops that consumption from the scan entirely, so a
// marker being dragged neither collides with itself nor displaces the rest.
func ComputeLayout(consumptions []models.Consumption, durationSeconds int, excludeID uint) map[uint]int {
	lanes := make(map[uint]int, len(consumptions))
	if durationSeconds <= 0 {
		return lanes
	}

	type placed struct {
		id       uint
		interval laneInterval
	}
	items := make([]placed, 0, len(consumptions))
	for _, c := range consumptions {
		if excludeID != 0 && c.ID == excludeID {
			continue
		}
		top := TopPercent(c.TimeOffsetSeconds, durationSeconds)
		items = append(items, placed{
			id:       c.ID,
			interval: laneInterval{top: top, bottom: top + ItemHeightPercent},
		})
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].interval.top < items[j].interval.top
	})

	var occupancy [][]laneInterval
	for _, it := range items {
		assigned := -1
		for lane := range occupancy {
			fits := true
			for _, iv := range occupancy[lane] {
				if iv.overlaps(it.interval) {
					fits = false
					break
				}
			}
			if fits {
				assigned = lane
				break
			}
		}
		if assigned == -1 {
			occupancy = append(occupancy, nil)
			assigned = len(occupancy) - 1
		}
		occupancy[assigned] = append(occupancy[assigned], it.interval)
		lanes[it.id] = assigned
	}

	return lanes
}

// LaneOffsetPercent converts a lane index to its horizontal offset.
func LaneOffsetPercent(lane int) float64 {
	return float64(lane) * ItemWidthPercent
}

// TopPercent converts a time offset to a vertical position, clamped so a
// marker at the exact event end still renders inside the timeline box.
func TopPercent(offsetSeconds, durationSeconds int) float64 {
	top := float64(offsetSeconds) / float64(durationSeconds) * 100
	if top > 100-ItemHeightPercent {
		top = 100 - ItemHeightPercent
	}
	return top
}
