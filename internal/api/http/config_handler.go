package http

import (
	"net/http"

	"ludo-server/internal/config"
	"ludo-server/internal/game"
	"ludo-server/internal/room"

	"github.com/gin-gonic/gin"
)

// @Summary Server parameters for clients
// @Tags Config
// @Produce json
// @Success 200 {object} ServerConfigResponse
// @Router /config [get]
func ServerConfigHandler(cfg config.Config) gin.HandlerFunc {
	resp := ServerConfigResponse{
		WSPath:      cfg.WSPath,
		MaxPlayers:  room.MaxMembers,
		PathLength:  game.PathLength,
		EntryIndex:  game.EntryIndex,
		ReadLimit:   cfg.WS.ReadLimit,
		RoomIDChars: cfg.Room.IDLength,
	}
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, resp)
	}
}
