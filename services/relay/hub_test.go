package relay

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestServer(t *testing.T, hub *Hub) *httptest.Server {
	t.Helper()
	upgrader := websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		require.NoError(t, err)
		NewClient(hub, conn)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func dial(t *testing.T, srv *httptest.Server) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func readEvent(t *testing.T, conn *websocket.Conn) Event {
	t.Helper()
	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, message, err := conn.ReadMessage()
	require.NoError(t, err)
	var ev Event
	require.NoError(t, json.Unmarshal(message, &ev))
	return ev
}

func TestHubBroadcastsPublishedEvents(t *testing.T) {
	hub := NewHub(zap.NewNop())
	go hub.Run()
	srv := newTestServer(t, hub)

	a := dial(t, srv)
	b := dial(t, srv)
	// Give the hub a moment to register both peers.
	time.Sleep(50 * time.Millisecond)

	hub.Publish(EventOrderStatusUpdated, OrderStatusPayload{
		CartID: "cart-1",
		Status: "accepted",
	})

	for _, conn := range []*websocket.Conn{a, b} {
		ev := readEvent(t, conn)
		assert.Equal(t, EventOrderStatusUpdated, ev.Event)
		payload := ev.Payload.(map[string]interface{})
		assert.Equal(t, "cart-1", payload["cartId"])
		assert.Equal(t, "accepted", payload["status"])
	}
}

func TestHubRebroadcastsInboundFrames(t *testing.T) {
	hub := NewHub(zap.NewNop())
	go hub.Run()
	srv := newTestServer(t, hub)

	sender := dial(t, srv)
	receiver := dial(t, srv)
	time.Sleep(50 * time.Millisecond)

	frame, err := json.Marshal(Event{
		Event:   InboundUpdateStatus,
		Payload: map[string]string{"cartId": "cart-2", "status": "onsite"},
	})
	require.NoError(t, err)
	require.NoError(t, sender.WriteMessage(websocket.TextMessage, frame))

	ev := readEvent(t, receiver)
	assert.Equal(t, EventOrderStatusUpdated, ev.Event)
	payload := ev.Payload.(map[string]interface{})
	assert.Equal(t, "cart-2", payload["cartId"])

	// The sender is a peer too and hears its own rebroadcast.
	ev = readEvent(t, sender)
	assert.Equal(t, EventOrderStatusUpdated, ev.Event)
}

func TestHubIgnoresUnknownInboundEvents(t *testing.T) {
	hub := NewHub(zap.NewNop())
	go hub.Run()
	srv := newTestServer(t, hub)

	sender := dial(t, srv)
	receiver := dial(t, srv)
	time.Sleep(50 * time.Millisecond)

	frame, _ := json.Marshal(Event{Event: "bogus", Payload: "x"})
	require.NoError(t, sender.WriteMessage(websocket.TextMessage, frame))

	hub.Publish(EventPaymentDetails, PaymentDetailsPayload{OrderID: "cart-3", TransactionID: "txn"})

	// Only the published event arrives; the bogus frame was dropped.
	ev := readEvent(t, receiver)
	assert.Equal(t, EventPaymentDetails, ev.Event)
}
