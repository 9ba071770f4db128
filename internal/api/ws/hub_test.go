package ws_test

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"ludo-server/internal/api/ws"
	"ludo-server/internal/config"
	"ludo-server/internal/dispatch"
	"ludo-server/internal/room"
	"ludo-server/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testServer struct {
	*httptest.Server
	hub   *ws.Hub
	rooms *room.Manager
}

func newServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	log := logrus.New()
	log.SetOutput(io.Discard)
	cfg := config.Default()

	rm := room.NewManager(store.NewMemoryStore(), cfg, log)
	hub := ws.NewHub(dispatch.New(rm, log), cfg.WS, log)

	r := gin.New()
	r.GET("/room", hub.HandleWS)
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return &testServer{Server: srv, hub: hub, rooms: rm}
}

func (s *testServer) dial(t *testing.T) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(s.URL, "http") + "/room"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

func send(t *testing.T, conn *websocket.Conn, msg string) {
	t.Helper()
	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte(msg)))
}

func recv(t *testing.T, conn *websocket.Conn) string {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, msg, err := conn.ReadMessage()
	require.NoError(t, err)
	return string(msg)
}

func TestCreateJoinAndStart(t *testing.T) {
	srv := newServer(t)

	host := srv.dial(t)
	send(t, host, "create:")
	created := recv(t, host)
	require.True(t, strings.HasPrefix(created, "created:"), created)
	code := strings.TrimPrefix(created, "created:")

	conns := []*websocket.Conn{host}
	for i := 0; i < 3; i++ {
		c := srv.dial(t)
		send(t, c, "join:"+code)
		assert.Equal(t, "joined:"+code, recv(t, c))
		conns = append(conns, c)
	}

	for _, c := range conns {
		send(t, c, "ready:true")
	}
	for i, c := range conns {
		assert.Equal(t, "start:"+string(rune('1'+i)), recv(t, c))
	}

	v, ok := srv.rooms.Get(code)
	require.True(t, ok)
	assert.Equal(t, room.PhaseActive, v.Phase)
	assert.Equal(t, 4, srv.hub.Connections())
}

func TestJoinUnknownRoom(t *testing.T) {
	srv := newServer(t)

	c := srv.dial(t)
	send(t, c, "join:nosuch")
	assert.Equal(t, "error:roomnotfound", recv(t, c))
}

func TestRelayReachesOthersOnly(t *testing.T) {
	srv := newServer(t)

	a := srv.dial(t)
	send(t, a, "create:")
	code := strings.TrimPrefix(recv(t, a), "created:")

	b := srv.dial(t)
	send(t, b, "join:"+code)
	recv(t, b)

	send(t, a, "visualroll:3")
	assert.Equal(t, "visualroll:3", recv(t, b))

	// a got nothing from its own relay; the next frame it sees is b's.
	send(t, b, "visualroll:5")
	assert.Equal(t, "visualroll:5", recv(t, a))
}

func TestDisconnectTearsDownRoom(t *testing.T) {
	srv := newServer(t)

	a := srv.dial(t)
	send(t, a, "create:")
	code := strings.TrimPrefix(recv(t, a), "created:")

	b := srv.dial(t)
	send(t, b, "join:"+code)
	recv(t, b)

	require.NoError(t, a.Close())
	assert.Equal(t, "error:playerdisconnected", recv(t, b))

	assert.Eventually(t, func() bool {
		_, ok := srv.rooms.Get(code)
		return !ok
	}, 2*time.Second, 10*time.Millisecond)
}

func TestMalformedFrameKeepsConnection(t *testing.T) {
	srv := newServer(t)

	c := srv.dial(t)
	send(t, c, "no separator")
	send(t, c, "bogus:1")
	send(t, c, "create:")
	assert.True(t, strings.HasPrefix(recv(t, c), "created:"))
}

func TestCloseAll(t *testing.T) {
	srv := newServer(t)

	c := srv.dial(t)
	send(t, c, "create:")
	recv(t, c)
	require.Equal(t, 1, srv.hub.Connections())

	srv.hub.CloseAll()
	assert.Eventually(t, func() bool {
		return srv.hub.Connections() == 0 && len(srv.rooms.List()) == 0
	}, 2*time.Second, 10*time.Millisecond)
}
