package websocket

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Debug(module, message string, details map[string]interface{}) {}
func (nopLogger) Info(module, message string, details map[string]interface{})  {}
func (nopLogger) Warn(module, message string, details map[string]interface{})  {}
func (nopLogger) Error(module, message string, details map[string]interface{}) {}
func (nopLogger) Sync() error                                                  { return nil }

func (h *Hub) clientCount(userID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients[userID])
}

func TestSendDeliversToEveryDeviceOfUser(t *testing.T) {
	hub := NewHub(nil, nopLogger{})
	go hub.Run()

	first := &Client{Hub: hub, UserID: "u1", Send: make(chan []byte, 4)}
	second := &Client{Hub: hub, UserID: "u1", Send: make(chan []byte, 4)}
	other := &Client{Hub: hub, UserID: "u2", Send: make(chan []byte, 4)}
	hub.register <- first
	hub.register <- second
	hub.register <- other

	require.Eventually(t, func() bool {
		return hub.clientCount("u1") == 2 && hub.clientCount("u2") == 1
	}, time.Second, 5*time.Millisecond)

	hub.Send("u1", map[string]interface{}{"record_id": "t1"})

	assert.Len(t, first.Send, 1)
	assert.Len(t, second.Send, 1)
	assert.Empty(t, other.Send)
}

func TestSlowConsumerIsDroppedWithoutDoubleClose(t *testing.T) {
	hub := NewHub(nil, nopLogger{})
	go hub.Run()

	slow := &Client{Hub: hub, UserID: "u1", Send: make(chan []byte, 1)}
	hub.register <- slow
	require.Eventually(t, func() bool {
		return hub.clientCount("u1") == 1
	}, time.Second, 5*time.Millisecond)

	hub.Send("u1", map[string]interface{}{"record_id": "t1"})
	hub.Send("u1", map[string]interface{}{"record_id": "t2"})

	require.Eventually(t, func() bool {
		return hub.clientCount("u1") == 0
	}, time.Second, 5*time.Millisecond)

	// The buffered message survives, then the channel reads closed exactly
	// once. A second close would have panicked the hub loop.
	<-slow.Send
	_, open := <-slow.Send
	assert.False(t, open)

	// The hub loop is still serving after the drop.
	next := &Client{Hub: hub, UserID: "u1", Send: make(chan []byte, 4)}
	hub.register <- next
	require.Eventually(t, func() bool {
		return hub.clientCount("u1") == 1
	}, time.Second, 5*time.Millisecond)
	hub.Send("u1", map[string]interface{}{"record_id": "t3"})
	assert.Len(t, next.Send, 1)
}

func TestUnregisterUnknownClientIsIgnored(t *testing.T) {
	hub := NewHub(nil, nopLogger{})
	go hub.Run()

	stranger := &Client{Hub: hub, UserID: "ghost", Send: make(chan []byte, 1)}
	hub.unregister <- stranger

	registered := &Client{Hub: hub, UserID: "u1", Send: make(chan []byte, 4)}
	hub.register <- registered
	require.Eventually(t, func() bool {
		return hub.clientCount("u1") == 1
	}, time.Second, 5*time.Millisecond)
}
