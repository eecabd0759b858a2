package services

import (
	"encoding/json"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/Kombo16/food-health-app/models"
)

// AnalysisEvent is pushed to websocket subscribers as a food-analysis batch
// progresses. Kind is "analysis.food" for each finished food and
// "analysis.done" when the batch completes.
type AnalysisEvent struct {
	Kind      string                 `json:"kind"`
	FoodName  string                 `json:"food_name,omitempty"`
	Nutrition *models.NutritionFact  `json:"nutrition,omitempty"`
	Risk      *models.RiskAssessment `json:"risk_assessment,omitempty"`
	Error     string                 `json:"error,omitempty"`
}

// AnalysisClient is one websocket subscriber on a channel.
type AnalysisClient struct {
	Channel string
	Conn    *websocket.Conn
}

// AnalysisHub fans analysis events out to websocket subscribers. Channels are
// client-chosen opaque strings; a batch request carrying the same channel
// name streams its per-food results to every subscriber on it.
type AnalysisHub struct {
	mu      sync.RWMutex
	clients map[string]map[*AnalysisClient]struct{}
}

func NewAnalysisHub() *AnalysisHub {
	return &AnalysisHub{clients: make(map[string]map[*AnalysisClient]struct{})}
}

func (h *AnalysisHub) Register(c *AnalysisClient) {
	h.mu.Lock()
	if h.clients[c.Channel] == nil {
		h.clients[c.Channel] = make(map[*AnalysisClient]struct{})
	}
	h.clients[c.Channel][c] = struct{}{}
	h.mu.Unlock()
}

func (h *AnalysisHub) Unregister(c *AnalysisClient) {
	h.mu.Lock()
	if set := h.clients[c.Channel]; set != nil {
		delete(set, c)
		if len(set) == 0 {
			delete(h.clients, c.Channel)
		}
	}
	h.mu.Unlock()
	_ = c.Conn.Close()
}

// Broadcast sends an event to every subscriber on the channel. A no-op when
// the channel has no subscribers.
func (h *AnalysisHub) Broadcast(channel string, event AnalysisEvent) {
	if channel == "" {
		return
	}
	msg, _ := json.Marshal(event)
	h.mu.RLock()
	defer h.mu.RUnlock()
	for c := range h.clients[channel] {
		_ = c.Conn.WriteMessage(websocket.TextMessage, msg)
	}
}
