// Package notify implements the best-effort test-change broadcast channel.
// Clients join a room per test id and receive a testUpdated event whenever the
// test changes. Delivery is not guaranteed: sends never block a workflow
// operation, and a slow client simply misses events.
package notify

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"

	"github.com/alysson-b/simulados-api/pkg/monitoring"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 512
	sendBuffer     = 16
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

type event struct {
	Type   string `json:"type"`
	TestID uint   `json:"testId,omitempty"`
}

type Client struct {
	hub     *Hub
	conn    *websocket.Conn
	send    chan []byte
	limiter *rate.Limiter

	mu    sync.Mutex
	rooms map[uint]bool
}

// Hub tracks which clients joined which test room.
type Hub struct {
	mu    sync.RWMutex
	rooms map[uint]map[*Client]bool
}

func NewHub() *Hub {
	return &Hub{rooms: make(map[uint]map[*Client]bool)}
}

func (h *Hub) join(testID uint, c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.rooms[testID] == nil {
		h.rooms[testID] = make(map[*Client]bool)
	}
	h.rooms[testID][c] = true
}

func (h *Hub) leaveAll(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	c.mu.Lock()
	for testID := range c.rooms {
		delete(h.rooms[testID], c)
		if len(h.rooms[testID]) == 0 {
			delete(h.rooms, testID)
		}
	}
	c.mu.Unlock()
}

// NotifyTestUpdate broadcasts a testUpdated event to the test's room. Fire and
// forget: full client buffers are skipped, nothing is awaited.
func (h *Hub) NotifyTestUpdate(testID uint) {
	payload, err := json.Marshal(event{Type: "testUpdated", TestID: testID})
	if err != nil {
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()
	for c := range h.rooms[testID] {
		select {
		case c.send <- payload:
		default:
			// Slow consumer, drop the event for this client.
		}
	}
}

// ServeWS upgrades the request and runs the client pumps.
func (h *Hub) ServeWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Warn().Err(err).Msg("websocket upgrade failed")
		return
	}

	c := &Client{
		hub:     h,
		conn:    conn,
		send:    make(chan []byte, sendBuffer),
		limiter: rate.NewLimiter(rate.Limit(10), 20),
		rooms:   make(map[uint]bool),
	}
	monitoring.WebsocketClients.Inc()
	go c.writePump()
	go c.readPump()
}

func (c *Client) readPump() {
	defer func() {
		c.hub.leaveAll(c)
		close(c.send)
		c.conn.Close()
		monitoring.WebsocketClients.Dec()
	}()
	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})
	for {
		_, message, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Warn().Err(err).Msg("websocket unexpected close")
			}
			return
		}
		if !c.limiter.Allow() {
			continue
		}

		var ev event
		if err := json.Unmarshal(message, &ev); err != nil {
			continue
		}
		if ev.Type == "joinTest" && ev.TestID != 0 {
			c.mu.Lock()
			c.rooms[ev.TestID] = true
			c.mu.Unlock()
			c.hub.join(ev.TestID, c)
		}
	}
}

func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()
	for {
		select {
		case message, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}
		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
