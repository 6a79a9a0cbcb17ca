package handlers

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	dr "dealership_review"
	"dealership_review/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

const (
	writeWait  = 10 * time.Second
	maxMsgSize = 1 << 12 // 4 KB
)

const (
	wsTypeReview = "review"
	wsTypeDone   = "done"
	wsTypeError  = "error"
)

// wsEnvelope is the frame sent over the review stream.
type wsEnvelope struct {
	Type  string      `json:"type"`
	Data  interface{} `json:"data,omitempty"`
	Error string      `json:"error,omitempty"`
}

// Same-origin only (gorilla's default CheckOrigin).
var upgrader = websocket.Upgrader{}

// @Summary      Stream dealer reviews
// @Description  WebSocket. Sends {"type":"review","data":{...}} per enriched review, then {"type":"done"}; on failure {"type":"error"}.
// @Tags         reviews
// @Param        dealerId  path  string  true  "Dealer id"
// @Router       /ws/reviews/dealer/{dealerId} [get]
func (h *Handler) streamDealerReviews(c *gin.Context) {
	id := strings.TrimSpace(c.Param("dealerId"))
	if id == "" {
		envelope(c, http.StatusBadRequest, msgBadRequest)
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.log.Errorw("ws_upgrade_failed", "err", err)
		return
	}
	defer func() { _ = conn.Close() }()
	conn.SetReadLimit(maxMsgSize)

	// Cancel upstream work as soon as the client goes away.
	ctx, cancel := context.WithCancel(c.Request.Context())
	defer cancel()
	go h.startReader(conn, cancel)

	count := 0
	err = h.services.StreamReviews(ctx, id, func(r models.Review) error {
		count++
		return writeFrame(conn, wsEnvelope{Type: wsTypeReview, Data: r})
	})
	if err != nil {
		h.log.Errorw("ws_review_stream_failed", "dealer_id", id, "sent", count, "err", err)
		_ = writeFrame(conn, wsEnvelope{Type: wsTypeError, Error: streamErrorMessage(err)})
	} else {
		_ = writeFrame(conn, wsEnvelope{Type: wsTypeDone, Data: gin.H{"count": count}})
	}

	_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
	_ = conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
}

// startReader drains incoming frames so control messages are handled and a
// disconnect cancels the stream.
func (h *Handler) startReader(conn *websocket.Conn, cancel context.CancelFunc) {
	defer cancel()
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			h.log.Debugw("ws_read_closed", "err", err)
			return
		}
	}
}

func writeFrame(conn *websocket.Conn, env wsEnvelope) error {
	_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
	return conn.WriteJSON(env)
}

func streamErrorMessage(err error) string {
	switch {
	case errors.Is(err, dr.ErrInvalidInput):
		return msgBadRequest
	case errors.Is(err, dr.ErrNotFound):
		return msgNotFound
	default:
		return errInternal
	}
}
