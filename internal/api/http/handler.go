package http

import (
	"net/http"
	"strconv"

	"ludo-server/internal/game"
	"ludo-server/internal/room"

	"github.com/gin-gonic/gin"
)

// ConnectionCounter reports the number of open game connections.
type ConnectionCounter interface {
	Connections() int
}

// @Summary Liveness probe
// @Tags Ops
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /healthz [get]
func HealthHandler(rm *room.Manager, conns ConnectionCounter) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, HealthResponse{
			Status:      "ok",
			Rooms:       len(rm.List()),
			Connections: conns.Connections(),
		})
	}
}

// @Summary List live rooms
// @Tags Room
// @Produce json
// @Success 200 {object} RoomListResponse
// @Router /rooms [get]
func ListRoomsHandler(rm *room.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, RoomListResponse{Rooms: rm.List()})
	}
}

// @Summary Inspect a room
// @Description Read-only snapshot of membership, readiness, turn and pieces
// @Tags Room
// @Produce json
// @Param code path string true "Room code"
// @Success 200 {object} room.View
// @Failure 404 {object} ErrorResponse
// @Router /rooms/{code} [get]
func GetRoomHandler(rm *room.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		v, ok := rm.Get(c.Param("code"))
		if !ok {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "room not found"})
			return
		}
		c.JSON(http.StatusOK, v)
	}
}

// @Summary Board path of a color
// @Description The 48 field ids a color's pieces walk from home to finish
// @Tags Board
// @Produce json
// @Param color path int true "Color 1-4"
// @Success 200 {object} PathResponse
// @Failure 400 {object} ErrorResponse
// @Router /paths/{color} [get]
func PathHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		color, err := strconv.Atoi(c.Param("color"))
		if err != nil || !game.ValidColor(color) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "color must be 1-4"})
			return
		}
		c.JSON(http.StatusOK, PathResponse{Color: color, Fields: game.Path(color)})
	}
}
