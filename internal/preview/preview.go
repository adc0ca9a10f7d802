// Package preview streams frame snapshots to browser clients over
// WebSocket so a matrix can be watched without hardware attached. Frames
// are throttled; a slow client just sees fewer frames.
package preview

import (
	"encoding/base64"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"

	"github.com/coff33ninja/ledmatrix/internal/frame"
)

type framePayload struct {
	Width  int    `json:"width"`
	Height int    `json:"height"`
	RGB    string `json:"rgb"` // base64 of W*H*3 bytes
}

// writeWait bounds each client write so one stalled browser cannot hold up
// the broadcast loop.
const writeWait = 200 * time.Millisecond

type Broadcaster struct {
	mu       sync.Mutex // guards clients and throttle state
	wmu      sync.Mutex // serializes writers; never held while mu is needed elsewhere
	clients  map[*websocket.Conn]bool
	lastEmit time.Time
	throttle time.Duration
	upgrader websocket.Upgrader
	log      zerolog.Logger
}

func NewBroadcaster(log zerolog.Logger) *Broadcaster {
	return &Broadcaster{
		clients:  map[*websocket.Conn]bool{},
		throttle: 50 * time.Millisecond, // ~20 FPS to the browser
		upgrader: websocket.Upgrader{
			CheckOrigin: func(*http.Request) bool { return true },
		},
		log: log,
	}
}

// Handler upgrades the request and keeps the connection registered until
// the client goes away.
func (b *Broadcaster) Handler(w http.ResponseWriter, r *http.Request) {
	conn, err := b.upgrader.Upgrade(w, r, nil)
	if err != nil {
		b.log.Warn().Err(err).Msg("preview upgrade failed")
		return
	}
	b.mu.Lock()
	b.clients[conn] = true
	b.mu.Unlock()

	// Drain client messages; their only purpose is to surface close errors.
	go func() {
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				b.drop(conn)
				return
			}
		}
	}()
}

func (b *Broadcaster) drop(conn *websocket.Conn) {
	b.mu.Lock()
	delete(b.clients, conn)
	b.mu.Unlock()
	conn.Close()
}

// Publish fans a snapshot out to every connected client, throttled. Writes
// happen outside the registration lock and carry a deadline, so a stalled
// client is dropped instead of blocking the dispatch path.
func (b *Broadcaster) Publish(buf *frame.Buffer) {
	b.mu.Lock()
	if len(b.clients) == 0 {
		b.mu.Unlock()
		return
	}
	now := time.Now()
	if b.lastEmit.Add(b.throttle).After(now) {
		b.mu.Unlock()
		return
	}
	b.lastEmit = now
	conns := make([]*websocket.Conn, 0, len(b.clients))
	for conn := range b.clients {
		conns = append(conns, conn)
	}
	b.mu.Unlock()

	pix := buf.Pix()
	raw := make([]byte, len(pix)*3)
	for i, p := range pix {
		raw[i*3+0] = p.R
		raw[i*3+1] = p.G
		raw[i*3+2] = p.B
	}
	payload := framePayload{
		Width:  buf.Width(),
		Height: buf.Height(),
		RGB:    base64.StdEncoding.EncodeToString(raw),
	}

	b.wmu.Lock()
	defer b.wmu.Unlock()
	for _, conn := range conns {
		conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := conn.WriteJSON(payload); err != nil {
			b.log.Debug().Err(err).Msg("drop preview client")
			b.drop(conn)
		}
	}
}

// Clients returns the number of connected preview clients.
func (b *Broadcaster) Clients() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.clients)
}
