package game

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

type GameHandler struct {
	room *Room
}

func NewGameHandler(room *Room) *GameHandler {
	return &GameHandler{room: room}
}

// ConnectHandler upgrades the request and attaches the connection to the
// room as a fresh unbound session. Cross-origin policy is enforced by the
// server's origin middleware before this runs.
func (h *GameHandler) ConnectHandler(ctx *gin.Context) {
	upgrader := websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin:     func(r *http.Request) bool { return true },
	}
	conn, err := upgrader.Upgrade(ctx.Writer, ctx.Request, nil)
	if err != nil {
		slog.Error("WS upgrade failed",
			"error", err,
			"ip", ctx.ClientIP(),
			"user_agent", ctx.Request.UserAgent(),
		)
		return
	}

	socketConn := NewWebsocketConnection(conn)
	s := h.room.NewSession()
	h.room.RequestAttach(ctx.Request.Context(), s)
	go s.ReadPump(&socketConn)
	go s.WritePump(&socketConn)
}
