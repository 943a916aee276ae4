package ws

import (
	"log"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// LiveHub fans table-occupancy and menu snapshots out to connected
// clients, replacing per-client polling. One connection subscribes to one
// topic; teardown is the connection closing.
type LiveHub struct {
	clients    map[string]map[*websocket.Conn]bool // topic -> set of conns
	broadcast  chan broadcastMessage
	register   chan subscription
	unregister chan subscription
	mu         sync.Mutex
}

type subscription struct {
	Conn  *websocket.Conn
	Topic string
}

type broadcastMessage struct {
	Topic   string
	Payload any
}

type envelope struct {
	Topic string `json:"topic"`
	Data  any    `json:"data"`
}

func NewLiveHub() *LiveHub {
	return &LiveHub{
		clients:    make(map[string]map[*websocket.Conn]bool),
		broadcast:  make(chan broadcastMessage),
		register:   make(chan subscription),
		unregister: make(chan subscription),
	}
}

// Run loops over register/unregister/broadcast until the process exits.
func (h *LiveHub) Run() {
	for {
		select {
		case sub := <-h.register:
			h.mu.Lock()
			if h.clients[sub.Topic] == nil {
				h.clients[sub.Topic] = make(map[*websocket.Conn]bool)
			}
			h.clients[sub.Topic][sub.Conn] = true
			h.mu.Unlock()

		case sub := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[sub.Topic][sub.Conn]; ok {
				delete(h.clients[sub.Topic], sub.Conn)
				sub.Conn.Close()
			}
			h.mu.Unlock()

		case msg := <-h.broadcast:
			h.mu.Lock()
			for conn := range h.clients[msg.Topic] {
				if err := conn.WriteJSON(envelope{Topic: msg.Topic, Data: msg.Payload}); err != nil {
					log.Printf("ws write error: %v", err)
					conn.Close()
					delete(h.clients[msg.Topic], conn)
				}
			}
			h.mu.Unlock()
		}
	}
}

// Publish implements services.Publisher.
func (h *LiveHub) Publish(topic string, payload any) {
	h.broadcast <- broadcastMessage{Topic: topic, Payload: payload}
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// table tablets connect cross-origin
	CheckOrigin: func(r *http.Request) bool { return true },
}

// Serve upgrades GET /ws?topic=tables|menu and parks the connection until
// the client goes away.
func (h *LiveHub) Serve(c *gin.Context) {
	topic := c.DefaultQuery("topic", "tables")
	if topic != "tables" && topic != "menu" {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "unknown topic"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("ws upgrade failed: %v", err)
		return
	}

	sub := subscription{Conn: conn, Topic: topic}
	h.register <- sub

	go func() {
		defer func() { h.unregister <- sub }()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}
