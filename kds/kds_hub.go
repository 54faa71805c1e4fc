package kds

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/yeremiapane/cafe-app/models"
	"github.com/yeremiapane/cafe-app/utils"
)

const (
	writeWait  = 5 * time.Second
	sendBuffer = 32
)

type Message struct {
	Event string      `json:"event"`
	Data  interface{} `json:"data"`
}

// client owns one connection; only its writePump writes data frames to conn.
type client struct {
	conn *websocket.Conn
	role string
	send chan []byte
}

// KDSHub menampung semua client dashboard staff dan mengirim event store ke mereka
type KDSHub struct {
	clients map[*websocket.Conn]*client
	mutex   sync.Mutex
}

func NewKDSHub() *KDSHub {
	return &KDSHub{
		clients: make(map[*websocket.Conn]*client),
	}
}

// RegisterClient -> menambahkan connection ke set dengan role
func (h *KDSHub) RegisterClient(conn *websocket.Conn, role string) {
	c := &client{conn: conn, role: role, send: make(chan []byte, sendBuffer)}

	h.mutex.Lock()
	h.clients[conn] = c
	total := len(h.clients)
	h.mutex.Unlock()

	go h.writePump(c)
	utils.InfoLogger.Infof("KDS client connected (role=%s, total=%d)", role, total)
}

// UnregisterClient -> melepaskan connection
func (h *KDSHub) UnregisterClient(conn *websocket.Conn) {
	h.mutex.Lock()
	defer h.mutex.Unlock()
	if c, ok := h.clients[conn]; ok {
		h.removeLocked(c)
	}
}

func (h *KDSHub) removeLocked(c *client) {
	delete(h.clients, c.conn)
	close(c.send)
	c.conn.Close()
}

func (h *KDSHub) ClientCount() int {
	h.mutex.Lock()
	defer h.mutex.Unlock()
	return len(h.clients)
}

func (h *KDSHub) writePump(c *client) {
	for data := range c.send {
		c.conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := c.conn.WriteMessage(websocket.TextMessage, data); err != nil {
			utils.ErrorLogger.Errorf("Error sending to %s client: %v", c.role, err)
			h.UnregisterClient(c.conn)
			return
		}
	}
}

// Notify forwards a store notification; it is the listener passed to CafeStore.Subscribe.
func (h *KDSHub) Notify(n models.Notification) {
	h.Broadcast(Message{Event: n.Event, Data: n.Data})
}

// Broadcast queues msg for every client without waiting on the network.
// A client whose queue is full is dropped.
func (h *KDSHub) Broadcast(msg Message) {
	data, err := json.Marshal(msg)
	if err != nil {
		utils.ErrorLogger.Errorf("Error marshaling message: %v", err)
		return
	}

	h.mutex.Lock()
	defer h.mutex.Unlock()

	for _, c := range h.clients {
		select {
		case c.send <- data:
		default:
			utils.ErrorLogger.Errorf("Dropping slow %s client, %s not delivered", c.role, msg.Event)
			h.removeLocked(c)
		}
	}
}

// Close disconnects every client.
func (h *KDSHub) Close() {
	h.mutex.Lock()
	defer h.mutex.Unlock()
	for _, c := range h.clients {
		c.conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseGoingAway, "server shutting down"),
			time.Now().Add(writeWait))
		h.removeLocked(c)
	}
}
