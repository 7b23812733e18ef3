package services

import (
	"log"

	"gorm.io/gorm"
)

type planBusDeps struct {
	db *gorm.DB
	rt *RealtimeHub
}

var _planBus planBusDeps

func InitPlanBus(db *gorm.DB, rt *RealtimeHub) {
	_planBus = planBusDeps{db: db, rt: rt}
}

// EmitPlanUpdate records the mutation and pushes the recomputed plan to
// sockets watching the event. Safe to call before InitPlanBus (no-op).
func EmitPlanUpdate(userID, eventID uint, action, detail string) {
	if _planBus.db == nil {
		return
	}

	if err := RecordPlanChange(userID, eventID, action, detail); err != nil {
		log.Printf("plan change record failed: %v", err)
	}

	if _planBus.rt == nil {
		return
	}
	payload, err := BuildPlanPayload(userID, eventID)
	if err != nil {
		log.Printf("plan recompute for broadcast failed: %v", err)
		return
	}
	_planBus.rt.BroadcastPlanUpdate(eventID, map[string]any{
		"kind":     "plan.updated",
		"action":   action,
		"event_id": eventID,
		"plan":     payload,
	})
}
