package services

import (
	"encoding/json"
	"sync"

	"github.com/gorilla/websocket"
)

type WSClient struct {
	EventID uint
	Conn    *websocket.Conn
}

// RealtimeHub fans plan updates out to every socket watching an event.
type RealtimeHub struct {
	mu      sync.RWMutex
	clients map[uint]map[*WSClient]struct{}
}

func NewRealtimeHub() *RealtimeHub {
	return &RealtimeHub{clients: make(map[uint]map[*WSClient]struct{})}
}

func (h *RealtimeHub) Register(c *WSClient) {
	h.mu.Lock()
	if h.clients[c.EventID] == nil {
		h.clients[c.EventID] = make(map[*WSClient]struct{})
	}
	h.clients[c.EventID][c] = struct{}{}
	h.mu.Unlock()
}

func (h *RealtimeHub) Unregister(c *WSClient) {
	h.mu.Lock()
	if set := h.clients[c.EventID]; set != nil {
		delete(set, c)
		if len(set) == 0 {
			delete(h.clients, c.EventID)
		}
	}
	h.mu.Unlock()
	_ = c.Conn.Close()
}

func (h *RealtimeHub) BroadcastPlanUpdate(eventID uint, payload any) {
	msg, _ := json.Marshal(payload)
	h.mu.RLock()
	defer h.mu.RUnlock()
	for c := range h.clients[eventID] {
		_ = c.Conn.WriteMessage(websocket.TextMessage, msg)
	}
}
