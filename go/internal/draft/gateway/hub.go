package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/draftforge/dynasty/go/internal/draft/events"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"
)

// Hub fans draft events out to the websocket clients watching each draft.
// Clients attach to exactly one draft; delivery inside a draft is in event
// order, a slow client gets dropped rather than stalling the rest.
type Hub struct {
	cfg      HubConfig
	upgrader websocket.Upgrader

	mu    sync.RWMutex
	rooms map[uuid.UUID]map[*client]bool

	deliveries chan delivery
}

// HubConfig tunes the websocket lifecycle.
type HubConfig struct {
	WriteTimeout   time.Duration
	PongTimeout    time.Duration
	PingInterval   time.Duration
	MaxMessageSize int64
	SendBuffer     int
	CheckOrigin    func(r *http.Request) bool
}

func DefaultHubConfig() HubConfig {
	return HubConfig{
		WriteTimeout:   10 * time.Second,
		PongTimeout:    60 * time.Second,
		PingInterval:   30 * time.Second,
		MaxMessageSize: 1024,
		SendBuffer:     256,
		// Origin policy belongs to the deployment; the default admits
		// everything and the binary wraps the mux in CORS middleware.
		CheckOrigin: func(r *http.Request) bool { return true },
	}
}

// delivery is one event headed for a room, optionally narrowed to a single
// roster's connections.
type delivery struct {
	draftID  uuid.UUID
	rosterID string
	event    *DraftEvent
}

// client is one attached websocket.
type client struct {
	id       string
	rosterID string
	draftID  uuid.UUID
	conn     *websocket.Conn
	send     chan []byte
	hub      *Hub

	connectedAt time.Time
}

func NewHub(cfg HubConfig) *Hub {
	return &Hub{
		cfg: cfg,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     cfg.CheckOrigin,
		},
		rooms:      make(map[uuid.UUID]map[*client]bool),
		deliveries: make(chan delivery, 1000),
	}
}

// Run drains the delivery queue until ctx is cancelled.
func (h *Hub) Run(ctx context.Context) {
	log.Info().Msg("gateway hub started")
	for {
		select {
		case <-ctx.Done():
			log.Info().Msg("gateway hub shutting down")
			h.closeAll()
			return
		case d := <-h.deliveries:
			h.deliver(d)
		}
	}
}

// Attach upgrades the request and joins the client to the draft's room.
// snapshot, when non-nil, is sent first so a late joiner starts from
// current state instead of waiting for the next event.
func (h *Hub) Attach(w http.ResponseWriter, r *http.Request, rosterID string, draftID uuid.UUID, snapshot *DraftEvent) error {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		return fmt.Errorf("upgrade websocket: %w", err)
	}

	c := &client{
		id:          uuid.New().String(),
		rosterID:    rosterID,
		draftID:     draftID,
		conn:        conn,
		send:        make(chan []byte, h.cfg.SendBuffer),
		hub:         h,
		connectedAt: time.Now(),
	}

	h.mu.Lock()
	if h.rooms[draftID] == nil {
		h.rooms[draftID] = make(map[*client]bool)
	}
	h.rooms[draftID][c] = true
	h.mu.Unlock()

	if snapshot != nil {
		if data, err := json.Marshal(snapshot); err == nil {
			c.send <- data
		} else {
			log.Error().Err(err).Str("draft_id", draftID.String()).Msg("failed to marshal resync snapshot")
		}
	}

	go c.writeLoop()
	go c.readLoop()

	log.Info().
		Str("client_id", c.id).
		Str("roster_id", rosterID).
		Str("draft_id", draftID.String()).
		Msg("websocket client attached")
	return nil
}

// BroadcastToDraft queues an event for every client in the draft's room.
func (h *Hub) BroadcastToDraft(draftID uuid.UUID, event *DraftEvent) {
	select {
	case h.deliveries <- delivery{draftID: draftID, event: event}:
	default:
		log.Warn().Str("draft_id", draftID.String()).Msg("delivery queue full, dropping event")
	}
}

// BroadcastToRoster queues an event for one roster's clients only.
func (h *Hub) BroadcastToRoster(draftID uuid.UUID, rosterID string, event *DraftEvent) {
	select {
	case h.deliveries <- delivery{draftID: draftID, rosterID: rosterID, event: event}:
	default:
		log.Warn().
			Str("draft_id", draftID.String()).
			Str("roster_id", rosterID).
			Msg("delivery queue full, dropping event")
	}
}

// Stats reports room occupancy for the info endpoints.
func (h *Hub) Stats() map[string]interface{} {
	h.mu.RLock()
	defer h.mu.RUnlock()

	total := 0
	perDraft := make(map[string]int, len(h.rooms))
	for draftID, room := range h.rooms {
		total += len(room)
		perDraft[draftID.String()] = len(room)
	}
	return map[string]interface{}{
		"total_connections": total,
		"active_drafts":     len(h.rooms),
		"draft_connections": perDraft,
	}
}

func (h *Hub) deliver(d delivery) {
	h.mu.RLock()
	room := h.rooms[d.draftID]
	targets := make([]*client, 0, len(room))
	for c := range room {
		if d.rosterID != "" && c.rosterID != d.rosterID {
			continue
		}
		targets = append(targets, c)
	}
	h.mu.RUnlock()

	if len(targets) == 0 {
		return
	}
	data, err := json.Marshal(d.event)
	if err != nil {
		log.Error().Err(err).Str("draft_id", d.draftID.String()).Msg("failed to marshal event")
		return
	}

	for _, c := range targets {
		select {
		case c.send <- data:
		default:
			// Backed-up client; cut it loose so the room keeps flowing.
			log.Warn().
				Str("client_id", c.id).
				Str("roster_id", c.rosterID).
				Msg("client send buffer full, detaching")
			h.detach(c)
		}
	}
}

func (h *Hub) detach(c *client) {
	h.mu.Lock()
	room, ok := h.rooms[c.draftID]
	if ok {
		if _, member := room[c]; member {
			delete(room, c)
			close(c.send)
			if len(room) == 0 {
				delete(h.rooms, c.draftID)
			}
		} else {
			ok = false
		}
	}
	h.mu.Unlock()

	if ok {
		c.conn.Close()
		log.Info().
			Str("client_id", c.id).
			Str("draft_id", c.draftID.String()).
			Msg("websocket client detached")
	}
}

func (h *Hub) closeAll() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for draftID, room := range h.rooms {
		for c := range room {
			close(c.send)
			c.conn.Close()
		}
		delete(h.rooms, draftID)
	}
}

func (c *client) writeLoop() {
	ticker := time.NewTicker(c.hub.cfg.PingInterval)
	defer func() {
		ticker.Stop()
		c.hub.detach(c)
	}()

	for {
		select {
		case data, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(c.hub.cfg.WriteTimeout))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, data); err != nil {
				return
			}
		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(c.hub.cfg.WriteTimeout))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

func (c *client) readLoop() {
	defer c.hub.detach(c)

	c.conn.SetReadLimit(c.hub.cfg.MaxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(c.hub.cfg.PongTimeout))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(c.hub.cfg.PongTimeout))
		return nil
	})

	// Clients are listeners; picks travel over the operation API. Anything
	// they send is drained to keep pong handling alive and logged at debug.
	for {
		_, msg, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Error().Err(err).Str("client_id", c.id).Msg("unexpected websocket close")
			}
			return
		}
		log.Debug().
			Str("client_id", c.id).
			Str("roster_id", c.rosterID).
			RawJSON("message", msg).
			Msg("ignoring client message")
	}
}

// typeStateSnapshot is the gateway-local resync frame sent to a client on
// attach; it never appears on the event stream.
const typeStateSnapshot events.Type = "draft_state_snapshot"

// snapshotEvent wraps a draft-state view in the event envelope clients
// already know how to decode.
func snapshotEvent(draftID uuid.UUID, state *DraftState) (*DraftEvent, error) {
	if state == nil {
		return nil, nil
	}
	data, err := json.Marshal(state)
	if err != nil {
		return nil, err
	}
	return &DraftEvent{
		ID:        uuid.New().String(),
		DraftID:   draftID.String(),
		Type:      typeStateSnapshot,
		Timestamp: time.Now(),
		Data:      data,
	}, nil
}
