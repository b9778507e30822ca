package ws

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"foodhub/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// StatusEvent is pushed to every subscriber of an order.
type StatusEvent struct {
	OrderID uint      `json:"orderId"`
	Status  string    `json:"status"`
	At      time.Time `json:"at"`
}

// TrackingHub fans order-status updates out to websocket subscribers.
// Publishing is fire-and-forget; a hub with no subscribers drops the event.
type TrackingHub struct {
	clients    map[uint]map[*websocket.Conn]bool // orderID -> subscribers
	broadcast  chan StatusEvent
	register   chan subscription
	unregister chan subscription
	mu         sync.Mutex
}

type subscription struct {
	conn    *websocket.Conn
	orderID uint
}

func NewTrackingHub() *TrackingHub {
	return &TrackingHub{
		clients:    make(map[uint]map[*websocket.Conn]bool),
		broadcast:  make(chan StatusEvent, 64),
		register:   make(chan subscription),
		unregister: make(chan subscription),
	}
}

func (h *TrackingHub) Run() {
	for {
		select {
		case sub := <-h.register:
			h.mu.Lock()
			if h.clients[sub.orderID] == nil {
				h.clients[sub.orderID] = make(map[*websocket.Conn]bool)
			}
			h.clients[sub.orderID][sub.conn] = true
			h.mu.Unlock()

		case sub := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[sub.orderID][sub.conn]; ok {
				delete(h.clients[sub.orderID], sub.conn)
				sub.conn.Close()
			}
			h.mu.Unlock()

		case ev := <-h.broadcast:
			h.mu.Lock()
			for conn := range h.clients[ev.OrderID] {
				if err := conn.WriteJSON(ev); err != nil {
					logger.S().Warnw("ws write failed", "orderId", ev.OrderID, "err", err)
					conn.Close()
					delete(h.clients[ev.OrderID], conn)
				}
			}
			h.mu.Unlock()
		}
	}
}

// NotifyStatus implements the order service's notifier. It never blocks the
// status update: if the hub is saturated the event is dropped.
func (h *TrackingHub) NotifyStatus(orderID uint, status string) {
	ev := StatusEvent{OrderID: orderID, Status: status, At: time.Now()}
	select {
	case h.broadcast <- ev:
	default:
		logger.S().Warnw("tracking hub full, dropping status event", "orderId", orderID)
	}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// HandleWebSocket serves GET /ws/orders/:id/track.
func (h *TrackingHub) HandleWebSocket(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "bad order id"})
		return
	}
	orderID := uint(id)

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		logger.S().Warnw("ws upgrade failed", "err", err)
		return
	}

	sub := subscription{conn: conn, orderID: orderID}
	h.register <- sub

	// Reader loop only detects disconnects; clients never send.
	go func() {
		defer func() { h.unregister <- sub }()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}
