package http

import (
	"ludo-server/internal/api/ws"
	"ludo-server/internal/config"
	"ludo-server/internal/room"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

func NewRouter(rm *room.Manager, hub *ws.Hub, cfg config.Config, log *logrus.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), LoggerMiddleware(log))

	// Game endpoint: one websocket per player
	r.GET(cfg.WSPath, hub.HandleWS)

	// --- OPS ---
	r.GET("/healthz", HealthHandler(rm, hub))
	r.GET("/config", ServerConfigHandler(cfg))

	// --- INSPECTION ---
	r.GET("/rooms", ListRoomsHandler(rm))
	r.GET("/rooms/:code", GetRoomHandler(rm))
	r.GET("/paths/:color", PathHandler())

	return r
}
