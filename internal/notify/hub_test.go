package notify

import (
	"encoding/json"
	"testing"
	"time"

	"golang.org/x/time/rate"
)

func newTestClient() *Client {
	return &Client{
		send:    make(chan []byte, sendBuffer),
		limiter: rate.NewLimiter(rate.Limit(10), 20),
		rooms:   make(map[uint]bool),
	}
}

func joinRoom(h *Hub, c *Client, testID uint) {
	c.mu.Lock()
	c.rooms[testID] = true
	c.mu.Unlock()
	h.join(testID, c)
}

func TestNotifyDeliversToRoomMembers(t *testing.T) {
	h := NewHub()
	member := newTestClient()
	outsider := newTestClient()
	joinRoom(h, member, 1)
	joinRoom(h, outsider, 2)

	h.NotifyTestUpdate(1)

	select {
	case msg := <-member.send:
		var ev event
		if err := json.Unmarshal(msg, &ev); err != nil {
			t.Fatalf("unmarshal event: %v", err)
		}
		if ev.Type != "testUpdated" || ev.TestID != 1 {
			t.Errorf("event = %+v, want testUpdated for test 1", ev)
		}
	default:
		t.Fatal("room member received nothing")
	}

	select {
	case msg := <-outsider.send:
		t.Errorf("outsider received %s, want nothing", msg)
	default:
	}
}

func TestNotifySkipsSlowConsumers(t *testing.T) {
	h := NewHub()
	c := newTestClient()
	joinRoom(h, c, 1)

	for i := 0; i < sendBuffer; i++ {
		c.send <- []byte("backlog")
	}

	done := make(chan struct{})
	go func() {
		h.NotifyTestUpdate(1)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("NotifyTestUpdate blocked on a full client buffer")
	}
}

func TestLeaveAllRemovesEmptyRooms(t *testing.T) {
	h := NewHub()
	c := newTestClient()
	joinRoom(h, c, 1)
	joinRoom(h, c, 2)

	h.leaveAll(c)

	h.mu.RLock()
	defer h.mu.RUnlock()
	if len(h.rooms) != 0 {
		t.Errorf("rooms = %v, want none after last member left", h.rooms)
	}
}

func TestNotifyEmptyRoomIsNoOp(t *testing.T) {
	h := NewHub()
	h.NotifyTestUpdate(42)
}
