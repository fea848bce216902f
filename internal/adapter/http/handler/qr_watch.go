package handler

import (
	"context"
	"time"

	"blaze-custody/pkg/apperror"
	"blaze-custody/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

const watchWriteWait = 5 * time.Second

// The default CheckOrigin only accepts same-host pages, which is where the
// QR dialog lives.
var watchUpgrader = websocket.Upgrader{
	ReadBufferSize:  512,
	WriteBufferSize: 1024,
}

// Watch handles GET /api/v1/qr/sessions/:id/ws. It pushes the current
// session, then the resolved session, then closes. Clients send nothing.
func (h *QRHandler) Watch(c *gin.Context) {
	id := c.Param("id")
	current, ok := h.broker.CheckStatus(id)
	if !ok {
		response.Error(c, apperror.ErrSessionNotFound())
		return
	}

	conn, err := watchUpgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		// Upgrade has already replied.
		return
	}
	defer conn.Close()

	ctx, cancel := context.WithCancel(c.Request.Context())
	defer cancel()
	go func() {
		for {
			if _, _, err := conn.NextReader(); err != nil {
				cancel()
				return
			}
		}
	}()

	send := func(v interface{}) bool {
		_ = conn.SetWriteDeadline(time.Now().Add(watchWriteWait))
		return conn.WriteJSON(v) == nil
	}

	if !send(current) {
		return
	}

	if !current.Status.IsTerminal() {
		final, err := h.broker.WaitForApproval(ctx, id, 0)
		if err != nil {
			return
		}
		if final == nil {
			// Timed out pending or released: report whatever remains.
			if final, ok = h.broker.CheckStatus(id); !ok {
				closeWatch(conn, "released")
				return
			}
		}
		if !send(final) {
			return
		}
		current = final
	}

	closeWatch(conn, string(current.Status))
}

func closeWatch(conn *websocket.Conn, reason string) {
	msg := websocket.FormatCloseMessage(websocket.CloseNormalClosure, reason)
	_ = conn.WriteControl(websocket.CloseMessage, msg, time.Now().Add(watchWriteWait))
}
