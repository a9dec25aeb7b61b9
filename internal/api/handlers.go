package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/junfengy/peeler/internal/auth"
	"github.com/junfengy/peeler/internal/store"
	"github.com/junfengy/peeler/pkg/dict"
	"github.com/junfengy/peeler/pkg/grid"
	"github.com/junfengy/peeler/pkg/solver"
	"github.com/junfengy/peeler/pkg/tiles"
)

// Handlers wires the solver core to the HTTP surface. The dictionary is
// shared read-only across requests; every request runs its own solve.
type Handlers struct {
	dict        *dict.Trie
	authService *auth.AuthService
	cache       *store.Cache // nil disables caching
}

func NewHandlers(d *dict.Trie, authService *auth.AuthService, cache *store.Cache) *Handlers {
	return &Handlers{dict: d, authService: authService, cache: cache}
}

// Auth handlers

type GuestRequest struct {
	DisplayName string `json:"displayName" binding:"omitempty,max=50"`
}

type GuestResponse struct {
	PlayerID string `json:"playerId"`
	Token    string `json:"token"`
}

// Guest issues a session token for an anonymous player.
func (h *Handlers) Guest(c *gin.Context) {
	var req GuestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	name := req.DisplayName
	if name == "" {
		name = "Guest"
	}
	playerID := uuid.New().String()

	token, err := h.authService.GenerateToken(playerID, name)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, GuestResponse{PlayerID: playerID, Token: token})
}

// Solver handlers

type SolveRequest struct {
	Letters string `json:"letters" binding:"required"`
	Budget  int    `json:"budget" binding:"omitempty,min=0"`
}

type SolveResponse struct {
	Grid     *grid.Snapshot `json:"grid"`
	Rendered string         `json:"rendered"`
	Unplaced string         `json:"unplaced"`
	Stats    solver.Stats   `json:"stats"`
}

// Solve arranges the posted letters into a grid.
func (h *Handlers) Solve(c *gin.Context) {
	var req SolveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	hand, err := tiles.Parse(req.Letters)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// Identical hands always solve identically, so the canonical hand is
	// a safe cache key when no custom budget is in play.
	cacheable := req.Budget == 0
	canonical := hand.String()
	if cacheable {
		var cached SolveResponse
		if h.cache.GetSolve(c.Request.Context(), h.dict.Checksum(), canonical, &cached) {
			c.JSON(http.StatusOK, cached)
			return
		}
	}

	s := solver.New(h.dict, solver.Config{MaxNodes: req.Budget})
	res, err := s.Solve(hand)
	if err != nil {
		c.JSON(errorStatus(err), gin.H{"error": err.Error()})
		return
	}

	resp := solveResponse(res)
	if cacheable {
		h.cache.PutSolve(c.Request.Context(), h.dict.Checksum(), canonical, resp)
	}
	c.JSON(http.StatusOK, resp)
}

type PeelRequest struct {
	Grid   *grid.Snapshot `json:"grid" binding:"required"`
	Hand   string         `json:"hand" binding:"required"`
	Added  string         `json:"added" binding:"required"`
	Budget int            `json:"budget" binding:"omitempty,min=0"`
}

// Peel updates a previously returned grid with freshly drawn letters.
func (h *Handlers) Peel(c *gin.Context) {
	var req PeelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	prevHand, err := tiles.Parse(req.Hand)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	added, err := tiles.Parse(req.Added)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	prev, err := grid.Restore(req.Grid, h.dict)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	s := solver.New(h.dict, solver.Config{MaxNodes: req.Budget})
	res, err := s.Peel(prev, prevHand, added)
	if err != nil {
		c.JSON(errorStatus(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, solveResponse(res))
}

type SwapRequest struct {
	Letters string         `json:"letters" binding:"required"`
	Grid    *grid.Snapshot `json:"grid" binding:"omitempty"`
}

type SwapResponse struct {
	Scores []solver.LetterScore `json:"scores"`
}

// Swap ranks the unplaced letters by how attractive they are to trade
// back to the pool.
func (h *Handlers) Swap(c *gin.Context) {
	var req SwapRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	hand, err := tiles.Parse(req.Letters)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var g *grid.Grid
	if req.Grid != nil {
		g, err = grid.Restore(req.Grid, h.dict)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}

	s := solver.New(h.dict, solver.Config{})
	c.JSON(http.StatusOK, SwapResponse{Scores: s.SwapScores(hand, g)})
}

func solveResponse(res *solver.Result) SolveResponse {
	return SolveResponse{
		Grid:     res.Grid.Snapshot(),
		Rendered: res.Grid.Render(),
		Unplaced: res.Unplaced.String(),
		Stats:    res.Stats,
	}
}

// errorStatus maps core errors onto HTTP statuses where the default 400
// is wrong. Unsolvable hands are normal 200 results, never errors.
func errorStatus(err error) int {
	switch {
	case errors.Is(err, tiles.ErrEmptyHand), errors.Is(err, tiles.ErrInvalidLetter):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
