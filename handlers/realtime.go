package handlers

import (
	"net/http"
	"sync"

	"booktrack/services/realtime"
	"booktrack/utils"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// CORS for the HTTP surface is enforced separately; the socket itself
	// carries no credentials beyond the token.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// wsMessage is what clients send over the socket.
type wsMessage struct {
	Action    string `json:"action"`
	BookingID string `json:"booking_id"`
}

// wsEvent is what the server pushes to clients.
type wsEvent struct {
	Event     string `json:"event"`
	BookingID string `json:"booking_id"`
	Status    string `json:"status"`
}

// wsListener adapts one websocket connection to the hub's Listener interface.
// Writes are serialized; gorilla connections do not allow concurrent writers.
type wsListener struct {
	mu   sync.Mutex
	conn *websocket.Conn
}

func (l *wsListener) Send(ev realtime.Event) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.conn.WriteJSON(wsEvent{
		Event:     "booking_status_update",
		BookingID: ev.BookingID,
		Status:    ev.Status,
	})
}

// RealtimeHandler upgrades clients to websocket and bridges them onto the hub.
type RealtimeHandler struct {
	Hub *realtime.Hub
}

func NewRealtimeHandler(hub *realtime.Hub) *RealtimeHandler {
	return &RealtimeHandler{Hub: hub}
}

// Serve handles GET /ws. The client authenticates via the token query
// parameter, then joins booking channels with
// {"action":"join_booking","booking_id":"..."} messages. All joins are
// released when the connection closes.
func (h *RealtimeHandler) Serve(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Missing token"})
		return
	}
	if _, err := utils.ExtractIDFromToken(token); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		utils.GetLogger().Warn("websocket upgrade failed", zap.Error(err))
		return
	}
	defer conn.Close()

	listener := &wsListener{conn: conn}
	leaves := make(map[string]func())
	defer func() {
		for _, leave := range leaves {
			leave()
		}
	}()

	for {
		var msg wsMessage
		if err := conn.ReadJSON(&msg); err != nil {
			return
		}

		switch msg.Action {
		case "join_booking":
			if msg.BookingID == "" {
				continue
			}
			channel := realtime.BookingChannel(msg.BookingID)
			if _, joined := leaves[channel]; joined {
				continue
			}
			leaves[channel] = h.Hub.Join(channel, listener)
		case "leave_booking":
			channel := realtime.BookingChannel(msg.BookingID)
			if leave, joined := leaves[channel]; joined {
				leave()
				delete(leaves, channel)
			}
		}
	}
}
