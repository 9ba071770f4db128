package ws

import (
	"net/http"
	"sync"

	"ludo-server/internal/config"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
)

// Hub accepts websocket connections and feeds their events to a Handler.
type Hub struct {
	mu       sync.RWMutex
	clients  map[*Client]struct{}
	handler  Handler
	cfg      config.WSConfig
	log      *logrus.Logger
	upgrader websocket.Upgrader
}

func NewHub(handler Handler, cfg config.WSConfig, log *logrus.Logger) *Hub {
	return &Hub{
		clients: make(map[*Client]struct{}),
		handler: handler,
		cfg:     cfg,
		log:     log,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true // Allow all origins
			},
		},
	}
}

func (h *Hub) HandleWS(c *gin.Context) {
	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.log.WithError(err).Warn("websocket upgrade failed")
		return
	}

	client := newClient(uuid.NewString(), conn, h.cfg, h.log)
	h.mu.Lock()
	h.clients[client] = struct{}{}
	h.mu.Unlock()

	h.handler.Opened(client)
	go client.writePump()

	client.readPump(h.handler)

	h.handler.Closed(client)
	client.close()

	h.mu.Lock()
	delete(h.clients, client)
	h.mu.Unlock()
}

// Connections returns the number of open sessions.
func (h *Hub) Connections() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// CloseAll closes every connection; their rooms are torn down by the usual
// disconnect path.
func (h *Hub) CloseAll() {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for client := range h.clients {
		_ = client.conn.Close()
	}
}
