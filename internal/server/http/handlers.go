package httpserver

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"xiangqi/internal/server/game"
	"xiangqi/internal/xiangqi"
)

// Handler 实现 http.Handler，用于 /api/* 路由
type Handler struct {
	games *game.Manager
}

func NewHandler(m *game.Manager) *Handler {
	if m == nil {
		m = game.NewManager()
	}
	return &Handler{games: m}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	switch r.URL.Path {
	case "/api/new_game":
		h.handleNewGame(w, r)
	case "/api/state":
		h.handleState(w, r)
	case "/api/select":
		h.handleSelect(w, r)
	case "/api/move":
		h.handleMove(w, r)
	case "/api/click":
		h.handleClick(w, r)
	default:
		http.NotFound(w, r)
	}
}

func (h *Handler) handleNewGame(w http.ResponseWriter, r *http.Request) {
	s := h.games.NewGame()
	var resp StateResponse
	s.View(func(g *xiangqi.Game) {
		resp = stateOf(s.ID, g)
	})
	writeJSON(w, resp)
}

func (h *Handler) handleState(w http.ResponseWriter, r *http.Request) {
	var req StateRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	s, ok := h.lookup(w, req.GameID)
	if !ok {
		return
	}
	var resp StateResponse
	s.View(func(g *xiangqi.Game) {
		resp = stateOf(s.ID, g)
	})
	writeJSON(w, resp)
}

func (h *Handler) handleSelect(w http.ResponseWriter, r *http.Request) {
	var req SelectRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if !checkCells(w, req.Cell) {
		return
	}
	s, ok := h.lookup(w, req.GameID)
	if !ok {
		return
	}

	var resp SelectResponse
	s.Do(func(g *xiangqi.Game) {
		if _, ok := g.Select(req.Cell); ok {
			resp.Selected = true
			resp.Targets = xiangqi.LegalTargets(&g.Board, req.Cell)
		}
		resp.State = stateOf(s.ID, g)
	})
	writeJSON(w, resp)
}

func (h *Handler) handleMove(w http.ResponseWriter, r *http.Request) {
	var req MoveRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if !checkCells(w, req.From, req.To) {
		return
	}
	s, ok := h.lookup(w, req.GameID)
	if !ok {
		return
	}

	// 非法走子照常返回 200，由 outcome.legal 表示
	var resp MoveResponse
	s.Do(func(g *xiangqi.Game) {
		resp.Outcome = outcomeToDTO(g.AttemptMove(req.From, req.To))
		resp.State = stateOf(s.ID, g)
	})
	writeJSON(w, resp)
}

func (h *Handler) handleClick(w http.ResponseWriter, r *http.Request) {
	var req ClickRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if !checkCells(w, req.Cell) {
		return
	}
	s, ok := h.lookup(w, req.GameID)
	if !ok {
		return
	}

	var resp ClickResponse
	s.Do(func(g *xiangqi.Game) {
		res := g.Click(req.Cell)
		resp.Selected = res.Selected
		resp.Moved = res.Moved
		if res.Selected {
			resp.Targets = xiangqi.LegalTargets(&g.Board, req.Cell)
		}
		if res.Moved {
			o := outcomeToDTO(res.Outcome)
			resp.Outcome = &o
		}
		resp.State = stateOf(s.ID, g)
	})
	writeJSON(w, resp)
}

func (h *Handler) lookup(w http.ResponseWriter, id string) (*game.GameState, bool) {
	s, err := h.games.Get(id)
	if errors.Is(err, game.ErrGameNotFound) {
		http.Error(w, "game not found", http.StatusNotFound)
		return nil, false
	}
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return nil, false
	}
	return s, true
}

func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		http.Error(w, "bad json", http.StatusBadRequest)
		return false
	}
	return true
}

// 盘外坐标在边界直接拒绝
func checkCells(w http.ResponseWriter, cells ...xiangqi.Cell) bool {
	for _, c := range cells {
		if err := xiangqi.CheckCell(c); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return false
		}
	}
	return true
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Println("writeJSON error:", err)
	}
}
