package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/FSDTeam-SAA/loadboard/internal/adapter/websocket"
)

// WSHandler upgrades authenticated clients into the notification hub.
func WSHandler(hub *websocket.Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor := actorFrom(c)
		websocket.ServeWS(hub, c.Writer, c.Request, actor.UserID.String())
	}
}
