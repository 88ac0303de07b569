package ws

import (
	"encoding/json"
	"log"
	"sync"

	"asdscreen/internal/model"
)

// MessageType defines the type of WebSocket message
type MessageType string

const (
	MsgStepCompleted MessageType = "step_completed"
	MsgResultPending MessageType = "result_pending"
	MsgResultReady   MessageType = "result_ready"
	MsgResultError   MessageType = "result_error"
)

// Message is the WebSocket envelope format
type Message struct {
	Type    MessageType     `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// stepEvent is the payload for step_completed messages.
type stepEvent struct {
	Step string `json:"step"`
}

// outcomeEvent is the payload for result_ready / result_error messages.
type outcomeEvent struct {
	Prediction  string `json:"prediction,omitempty"`
	Probability string `json:"probability,omitempty"`
	Display     string `json:"display,omitempty"`
	Message     string `json:"message,omitempty"`
}

// Hub manages WebSocket observers per wizard session
type Hub struct {
	// session -> connections
	conns map[string]map[*Connection]struct{}

	mu sync.RWMutex

	register   chan *Connection
	unregister chan *Connection
	broadcast  chan *BroadcastMessage
}

// Connection represents a WebSocket observer of one session
type Connection struct {
	SessionID string
	Send      chan []byte
	Hub       *Hub
}

// BroadcastMessage is a message to broadcast to a session's observers
type BroadcastMessage struct {
	SessionID string
	Message   *Message
}

// NewHub creates a new WebSocket hub
func NewHub() *Hub {
	h := &Hub{
		conns:      make(map[string]map[*Connection]struct{}),
		register:   make(chan *Connection),
		unregister: make(chan *Connection),
		broadcast:  make(chan *BroadcastMessage, 256),
	}
	go h.run()
	return h
}

func (h *Hub) run() {
	for {
		select {
		case conn := <-h.register:
			h.mu.Lock()
			if h.conns[conn.SessionID] == nil {
				h.conns[conn.SessionID] = make(map[*Connection]struct{})
			}
			h.conns[conn.SessionID][conn] = struct{}{}
			log.Printf("Observer connected to session %s", conn.SessionID)
			h.mu.Unlock()

		case conn := <-h.unregister:
			h.mu.Lock()
			if observers, ok := h.conns[conn.SessionID]; ok {
				if _, ok := observers[conn]; ok {
					delete(observers, conn)
					close(conn.Send)
					log.Printf("Observer disconnected from session %s", conn.SessionID)
				}
				if len(observers) == 0 {
					delete(h.conns, conn.SessionID)
				}
			}
			h.mu.Unlock()

		case msg := <-h.broadcast:
			h.mu.RLock()
			data, _ := json.Marshal(msg.Message)
			for conn := range h.conns[msg.SessionID] {
				select {
				case conn.Send <- data:
				default:
					// Drop message if buffer full
				}
			}
			h.mu.RUnlock()
		}
	}
}

// Register adds a connection
func (h *Hub) Register(conn *Connection) {
	h.register <- conn
}

// Unregister removes a connection
func (h *Hub) Unregister(conn *Connection) {
	h.unregister <- conn
}

func (h *Hub) send(sessionID string, msgType MessageType, payload interface{}) {
	data, _ := json.Marshal(payload)
	h.broadcast <- &BroadcastMessage{
		SessionID: sessionID,
		Message: &Message{
			Type:    msgType,
			Payload: data,
		},
	}
}

// NotifyStepCompleted implements service.Broadcaster
func (h *Hub) NotifyStepCompleted(sessionID, step string) {
	h.send(sessionID, MsgStepCompleted, &stepEvent{Step: step})
}

// NotifyResultPending implements service.Broadcaster
func (h *Hub) NotifyResultPending(sessionID string) {
	h.send(sessionID, MsgResultPending, struct{}{})
}

// NotifyOutcome implements service.Broadcaster
func (h *Hub) NotifyOutcome(sessionID string, outcome model.Outcome) {
	if outcome.Kind == model.OutcomeSuccess {
		h.send(sessionID, MsgResultReady, &outcomeEvent{
			Prediction:  outcome.Prediction,
			Probability: outcome.Probability,
			Display:     outcome.Display(),
		})
		return
	}
	h.send(sessionID, MsgResultError, &outcomeEvent{Message: outcome.Message})
}
