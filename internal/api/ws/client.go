package ws

import (
	"errors"
	"sync"
	"time"

	"ludo-server/internal/config"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
)

var (
	ErrSessionClosed  = errors.New("session closed")
	ErrSendBufferFull = errors.New("send buffer full")
)

// Client is one websocket connection. It satisfies room.Session.
type Client struct {
	id   string
	conn *websocket.Conn
	cfg  config.WSConfig
	log  *logrus.Entry

	mu     sync.Mutex
	send   chan string
	closed bool
}

func newClient(id string, conn *websocket.Conn, cfg config.WSConfig, log *logrus.Logger) *Client {
	return &Client{
		id:   id,
		conn: conn,
		cfg:  cfg,
		log:  log.WithField("session", id),
		send: make(chan string, cfg.SendBuffer),
	}
}

func (c *Client) ID() string { return c.id }

// Send queues a text frame without blocking.
func (c *Client) Send(msg string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return ErrSessionClosed
	}
	select {
	case c.send <- msg:
		return nil
	default:
		return ErrSendBufferFull
	}
}

// close stops the write pump once the queued frames are flushed.
func (c *Client) close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.closed {
		c.closed = true
		close(c.send)
	}
}

// readPump delivers text frames to h until the connection fails.
func (c *Client) readPump(h Handler) {
	c.conn.SetReadLimit(c.cfg.ReadLimit)
	_ = c.conn.SetReadDeadline(time.Now().Add(c.cfg.PongWait()))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(c.cfg.PongWait()))
	})

	for {
		messageType, message, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				c.log.WithError(err).Warn("unexpected close")
			} else {
				c.log.WithError(err).Debug("connection closed")
			}
			return
		}
		if messageType != websocket.TextMessage {
			c.log.Debugf("ignoring non-text message type %d", messageType)
			continue
		}
		h.Handle(c, string(message))
	}
}

func (c *Client) writePump() {
	ticker := time.NewTicker(c.cfg.PingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.conn.Close()
	}()

	for {
		select {
		case msg, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(c.cfg.WriteWait))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, []byte(msg)); err != nil {
				c.log.WithError(err).Debug("write failed")
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(c.cfg.WriteWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				c.log.WithError(err).Debug("ping failed")
				return
			}
		}
	}
}
