package api

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/junfengy/peeler/pkg/solver"
	"github.com/junfengy/peeler/pkg/tiles"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// Live-solve frame types
const (
	MsgProgress = "progress"
	MsgResult   = "result"
	MsgError    = "error"
)

// LiveFrame is one message on the live-solve stream.
type LiveFrame struct {
	Type   string         `json:"type"`
	Stats  *solver.Stats  `json:"stats,omitempty"`
	Result *SolveResponse `json:"result,omitempty"`
	Error  string         `json:"error,omitempty"`
}

// SolveLive upgrades to a websocket, runs the solve, and streams progress
// frames while the search works, ending with the final result. The client
// passes the hand in the "letters" query parameter.
func (h *Handlers) SolveLive(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("websocket upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	hand, err := tiles.Parse(c.Query("letters"))
	if err != nil {
		conn.WriteJSON(LiveFrame{Type: MsgError, Error: err.Error()})
		return
	}

	// Progress frames are sent from the solver's callback. Write errors
	// only drop frames; the solve itself runs to completion.
	s := solver.New(h.dict, solver.Config{
		Progress: func(st solver.Stats) {
			if err := conn.WriteJSON(LiveFrame{Type: MsgProgress, Stats: &st}); err != nil {
				log.Printf("websocket progress write failed: %v", err)
			}
		},
	})

	res, err := s.Solve(hand)
	if err != nil {
		conn.WriteJSON(LiveFrame{Type: MsgError, Error: err.Error()})
		return
	}

	resp := solveResponse(res)
	if err := conn.WriteJSON(LiveFrame{Type: MsgResult, Result: &resp}); err != nil {
		log.Printf("websocket result write failed: %v", err)
	}
}
