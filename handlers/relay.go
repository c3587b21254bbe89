package handlers

import (
	"net/http"

	"servicehub/services/relay"
	"servicehub/utils"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// The relay carries no privileged data; origin checking is left to the
	// CORS layer on the REST side.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// ServeWS upgrades the request and attaches the peer to the relay hub.
func ServeWS(hub *relay.Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			utils.GetLogger().Warn("websocket upgrade failed", zap.Error(err))
			return
		}
		relay.NewClient(hub, conn)
	}
}
