package chat

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/venuehub/backend/services"
	"github.com/venuehub/backend/utils"
)

// Server-emitted event names.
const (
	EventBroadcast = "broadcast"
	EventJoined    = "joined"
	EventError     = "error"
)

// Outbound frames queued per connection before a slow reader is dropped.
const sendBuffer = 16

// ClientEvent is what connections send: joinRoom {room} to subscribe,
// message {room, msg} to broadcast.
type ClientEvent struct {
	Event string `json:"event"`
	Room  uint   `json:"room"`
	Msg   string `json:"msg"`
}

type ServerEvent struct {
	Event string      `json:"event"`
	Data  interface{} `json:"data,omitempty"`
}

// client pairs a connection with its outbound queue. All writes to the
// socket happen on the client's writePump goroutine, so the hub lock is
// never held across a network write.
type client struct {
	conn   *websocket.Conn
	send   chan []byte
	closed bool // guarded by the hub mutex
}

func (cl *client) writePump() {
	for data := range cl.send {
		if err := cl.conn.WriteMessage(websocket.TextMessage, data); err != nil {
			utils.ErrorLogger.Printf("ws write error: %v", err)
			break
		}
	}
	cl.conn.Close()
}

// Hub tracks which live connections are subscribed to which room and
// relays messages to everyone currently in the room, sender included.
// Membership is verified against the persisted member set before a
// join is accepted.
type Hub struct {
	rooms   map[uint]map[*client]bool
	mu      sync.Mutex
	service *services.ChatService
}

func NewHub(service *services.ChatService) *Hub {
	return &Hub{
		rooms:   make(map[uint]map[*client]bool),
		service: service,
	}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// HandleWebSocket upgrades the connection and runs its event loop. The
// principal comes from the websocket auth middleware.
func (h *Hub) HandleWebSocket(c *gin.Context) {
	userIDVal, exists := c.Get("user_id")
	if !exists {
		c.AbortWithStatus(http.StatusUnauthorized)
		return
	}
	userID := userIDVal.(uint)

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		utils.ErrorLogger.Printf("ws upgrade error: %v", err)
		return
	}

	cl := &client{conn: conn, send: make(chan []byte, sendBuffer)}
	go cl.writePump()
	defer h.drop(cl)

	joined := make(map[uint]bool)

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			break
		}

		var ev ClientEvent
		if err := json.Unmarshal(data, &ev); err != nil {
			h.send(cl, ServerEvent{Event: EventError, Data: "invalid payload"})
			continue
		}

		switch ev.Event {
		case "joinRoom":
			ok, err := h.service.CanAccess(userID, ev.Room)
			if err != nil {
				utils.ErrorLogger.Printf("ws membership check failed: %v", err)
				h.send(cl, ServerEvent{Event: EventError, Data: "server error"})
				continue
			}
			if !ok {
				h.send(cl, ServerEvent{Event: EventError, Data: "not a member of this room"})
				continue
			}
			h.join(ev.Room, cl)
			joined[ev.Room] = true
			h.send(cl, ServerEvent{Event: EventJoined, Data: ev.Room})

		case "message":
			if !joined[ev.Room] {
				h.send(cl, ServerEvent{Event: EventError, Data: "join the room first"})
				continue
			}
			if _, err := h.service.SaveMessage(ev.Room, userID, ev.Msg); err != nil {
				utils.ErrorLogger.Printf("ws message persist failed: %v", err)
			}
			h.Broadcast(ev.Room, ServerEvent{Event: EventBroadcast, Data: ev.Msg})

		default:
			h.send(cl, ServerEvent{Event: EventError, Data: "unknown event"})
		}
	}
}

func (h *Hub) join(roomID uint, cl *client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.rooms[roomID] == nil {
		h.rooms[roomID] = make(map[*client]bool)
	}
	h.rooms[roomID][cl] = true
}

// drop removes the client from every room and closes its queue, which
// ends the writePump and closes the socket.
func (h *Hub) drop(cl *client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.disconnect(cl)
}

// disconnect is drop without the locking; callers hold the hub mutex.
func (h *Hub) disconnect(cl *client) {
	for roomID, clients := range h.rooms {
		delete(clients, cl)
		if len(clients) == 0 {
			delete(h.rooms, roomID)
		}
	}
	if !cl.closed {
		cl.closed = true
		close(cl.send)
	}
}

// enqueue hands a frame to the client's writer. A client whose queue is
// full is not keeping up and gets disconnected rather than blocking the
// hub. Callers hold the hub mutex.
func (h *Hub) enqueue(cl *client, data []byte) {
	if cl.closed {
		return
	}
	select {
	case cl.send <- data:
	default:
		utils.ErrorLogger.Printf("ws client queue full, dropping connection")
		h.disconnect(cl)
	}
}

// Broadcast sends the event to every connection subscribed to the room.
func (h *Hub) Broadcast(roomID uint, ev ServerEvent) {
	data, err := json.Marshal(ev)
	if err != nil {
		utils.ErrorLogger.Printf("ws marshal error: %v", err)
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	for cl := range h.rooms[roomID] {
		h.enqueue(cl, data)
	}
}

func (h *Hub) send(cl *client, ev ServerEvent) {
	data, err := json.Marshal(ev)
	if err != nil {
		return
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	h.enqueue(cl, data)
}
