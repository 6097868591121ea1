package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/TeriYeaki/Pokemon-Battle/internal/engine"
	"github.com/TeriYeaki/Pokemon-Battle/internal/logging"
	"github.com/TeriYeaki/Pokemon-Battle/internal/service"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// streamFrame is one websocket message: a narration line while the match
// runs, then a final result or error frame.
type streamFrame struct {
	Type   string                `json:"type"` // round | result | error
	Line   string                `json:"line,omitempty"`
	Result *service.BattleResult `json:"result,omitempty"`
	Error  string                `json:"error,omitempty"`
}

// StreamBattle upgrades the connection, reads one battle request, and
// streams each round's narration as the engine resolves it, ending with a
// result frame.
func (h *BattleHandler) StreamBattle(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		logging.Error("websocket upgrade failed", err, nil)
		return
	}
	defer conn.Close()

	var req service.BattleRequest
	if err := conn.ReadJSON(&req); err != nil {
		_ = conn.WriteJSON(streamFrame{Type: "error", Error: "invalid battle request"})
		return
	}
	h.applyWildcardDefaults(&req)

	res, err := service.RunBattle(req, engine.WithObserver(func(line string) {
		_ = conn.WriteJSON(streamFrame{Type: "round", Line: line})
	}))
	if err != nil {
		_ = conn.WriteJSON(streamFrame{Type: "error", Error: err.Error()})
		return
	}
	_ = conn.WriteJSON(streamFrame{Type: "result", Result: res})
}
