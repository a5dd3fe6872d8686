package notifier

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"auction-house/utils"

	"github.com/gorilla/websocket"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = 54 * time.Second
	sendBuffer = 32
)

// Hub is a websocket-backed Notifier. Viewers subscribe to one auction and
// receive every event published for it as a JSON frame.
type Hub struct {
	mu          sync.RWMutex
	subscribers map[string]map[*client]struct{} // key: auctionID

	register   chan *client
	unregister chan *client
	broadcast  chan Event

	upgrader websocket.Upgrader
}

type client struct {
	id        string
	auctionID string
	conn      *websocket.Conn
	send      chan []byte
}

// NewHub creates a hub; Run must be started in a goroutine before use
func NewHub() *Hub {
	return &Hub{
		subscribers: make(map[string]map[*client]struct{}),
		register:    make(chan *client),
		unregister:  make(chan *client),
		broadcast:   make(chan Event, 256),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(*http.Request) bool { return true },
		},
	}
}

// Publish implements Notifier. Delivery is best-effort: if the hub's queue
// is full the event is dropped rather than blocking the caller.
func (h *Hub) Publish(auctionID string, eventType EventType, payload any) {
	ev := Event{
		Type:      eventType,
		AuctionID: auctionID,
		Payload:   payload,
		Timestamp: time.Now().UTC(),
	}
	select {
	case h.broadcast <- ev:
	default:
		utils.Warn("notifier: broadcast queue full, dropping event", map[string]any{
			"auction_id": auctionID,
			"event":      string(eventType),
		})
	}
}

// Run processes registrations and broadcasts until the channels close
func (h *Hub) Run() {
	for {
		select {
		case c := <-h.register:
			h.addClient(c)
		case c := <-h.unregister:
			h.removeClient(c)
		case ev := <-h.broadcast:
			h.fanOut(ev)
		}
	}
}

// Subscribe upgrades the request to a websocket and streams the auction's
// events to it until the peer disconnects.
func (h *Hub) Subscribe(w http.ResponseWriter, r *http.Request, auctionID, viewerID string) error {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		return err
	}

	c := &client{
		id:        viewerID,
		auctionID: auctionID,
		conn:      conn,
		send:      make(chan []byte, sendBuffer),
	}
	h.register <- c
	go c.writePump()
	go c.readPump(h.unregister)
	return nil
}

func (h *Hub) addClient(c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	set, ok := h.subscribers[c.auctionID]
	if !ok {
		set = make(map[*client]struct{})
		h.subscribers[c.auctionID] = set
	}
	set[c] = struct{}{}

	utils.Info("notifier: viewer subscribed", map[string]any{
		"viewer_id":  c.id,
		"auction_id": c.auctionID,
	})
}

func (h *Hub) removeClient(c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	set, ok := h.subscribers[c.auctionID]
	if !ok {
		return
	}
	if _, present := set[c]; !present {
		return
	}
	delete(set, c)
	if len(set) == 0 {
		delete(h.subscribers, c.auctionID)
	}
	close(c.send)
	c.conn.Close()
}

func (h *Hub) fanOut(ev Event) {
	data, err := json.Marshal(ev)
	if err != nil {
		utils.Error("notifier: failed to encode event", map[string]any{
			"auction_id": ev.AuctionID,
			"event":      string(ev.Type),
			"error":      err.Error(),
		})
		return
	}

	h.mu.RLock()
	var slow []*client
	for c := range h.subscribers[ev.AuctionID] {
		select {
		case c.send <- data:
		default:
			// a full send queue means the peer stopped reading
			slow = append(slow, c)
		}
	}
	h.mu.RUnlock()

	for _, c := range slow {
		h.removeClient(c)
	}
}

// SubscriberCount returns how many viewers are watching an auction
func (h *Hub) SubscriberCount(auctionID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subscribers[auctionID])
}

func (c *client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case msg, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
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

// readPump drains the connection so pongs and close frames are processed
func (c *client) readPump(unregister chan<- *client) {
	defer func() { unregister <- c }()

	c.conn.SetReadLimit(512)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}
