package server

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

// client is one live bidirectional connection. id is assigned at upgrade
// time and doubles as the player identifier once the connection joins a
// room. The binding fields (roomID, playerID, isHost) are owned by the
// connection's reader goroutine.
type client struct {
	id       string
	conn     *websocket.Conn
	writeMu  sync.Mutex
	roomID   string
	playerID string
	isHost   bool
}

// send marshals and writes one message. Sends to closed or absent
// connections are dropped; a failed write never aborts the caller.
func (c *client) send(payload any) {
	if c == nil || c.conn == nil {
		return
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return
	}
	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	_ = c.conn.WriteMessage(websocket.TextMessage, data)
}

// delivery is one outbound message bound for one connection. Room
// operations collect deliveries under the store lock and send them after
// unlocking.
type delivery struct {
	to      *client
	payload any
}

func deliver(sends []delivery) {
	for _, d := range sends {
		d.to.send(d.payload)
	}
}

// broadcastRoom targets the host plus every connected player.
func broadcastRoom(room *Room, payload any) []delivery {
	sends := make([]delivery, 0, len(room.Players)+1)
	if room.Host.conn != nil {
		sends = append(sends, delivery{room.Host.conn, payload})
	}
	for _, player := range room.Players {
		if player.conn != nil {
			sends = append(sends, delivery{player.conn, payload})
		}
	}
	return sends
}

type registry struct {
	mu      sync.Mutex
	clients map[*client]struct{}
}

func newRegistry() *registry {
	return &registry{
		clients: make(map[*client]struct{}),
	}
}

func (r *registry) Add(c *client) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.clients[c] = struct{}{}
}

func (r *registry) Remove(c *client) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.clients, c)
}

func (r *registry) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.clients)
}

func (s *Server) handleWebsocket(w http.ResponseWriter, r *http.Request) {
	upgrader := websocket.Upgrader{
		CheckOrigin: func(r *http.Request) bool {
			return true
		},
	}
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	c := &client{
		id:   uuid.NewString(),
		conn: conn,
	}
	s.registry.Add(c)
	log.Printf("ws connected conn_id=%s remote=%s", c.id, r.RemoteAddr)
	go s.readWS(c)
}

func (s *Server) readWS(c *client) {
	defer func() {
		s.registry.Remove(c)
		_ = c.conn.Close()
		s.handleDisconnect(c)
	}()
	for {
		_, raw, err := c.conn.ReadMessage()
		if err != nil {
			log.Printf("ws disconnected conn_id=%s error=%v", c.id, err)
			return
		}
		s.handleMessage(c, raw)
	}
}
