package httpserver

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"xiangqi/internal/server/game"
	"xiangqi/internal/xiangqi"
)

func post(t *testing.T, h http.Handler, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func decode[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	if rr.Code != http.StatusOK {
		t.Fatalf("status %d, body %q", rr.Code, rr.Body.String())
	}
	var v T
	if err := json.Unmarshal(rr.Body.Bytes(), &v); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	return v
}

func newGame(t *testing.T, h http.Handler) StateResponse {
	t.Helper()
	return decode[StateResponse](t, post(t, h, "/api/new_game", ""))
}

func TestNewGameReturnsOpening(t *testing.T) {
	h := NewHandler(game.NewManager())
	st := newGame(t, h)

	if st.GameID == "" {
		t.Fatalf("empty game id")
	}
	if st.Position != xiangqi.NewGame().Encode() {
		t.Fatalf("position = %q", st.Position)
	}
	if st.ToMove != 0 {
		t.Fatalf("to_move = %d, want 0", st.ToMove)
	}
	if len(st.Pieces) != 32 {
		t.Fatalf("%d pieces, want 32", len(st.Pieces))
	}
	want := PieceDTO{X: 4, Y: 9, Kind: "King", Side: 0, Glyph: "帅"}
	found := false
	for _, p := range st.Pieces {
		if p.X == 4 && p.Y == 9 {
			found = true
			if diff := cmp.Diff(want, p); diff != "" {
				t.Errorf("red king mismatch (-want +got):\n%s", diff)
			}
		}
	}
	if !found {
		t.Fatalf("no piece at (4,9)")
	}
}

func TestSelectThenMove(t *testing.T) {
	h := NewHandler(game.NewManager())
	id := newGame(t, h).GameID

	sel := decode[SelectResponse](t, post(t, h, "/api/select",
		`{"game_id":"`+id+`","cell":{"x":7,"y":9}}`))
	if !sel.Selected {
		t.Fatalf("red horse not selected")
	}
	if diff := cmp.Diff([]xiangqi.Cell{{X: 6, Y: 7}, {X: 8, Y: 7}}, sel.Targets); diff != "" {
		t.Errorf("targets mismatch (-want +got):\n%s", diff)
	}
	if sel.State.Selected == nil || *sel.State.Selected != (xiangqi.Cell{X: 7, Y: 9}) {
		t.Errorf("state.selected = %v", sel.State.Selected)
	}

	mv := decode[MoveResponse](t, post(t, h, "/api/move",
		`{"game_id":"`+id+`","from":{"x":7,"y":9},"to":{"x":6,"y":7}}`))
	if diff := cmp.Diff(OutcomeDTO{Legal: true, Winner: -1}, mv.Outcome); diff != "" {
		t.Errorf("outcome mismatch (-want +got):\n%s", diff)
	}
	if mv.State.ToMove != 1 || mv.State.Selected != nil {
		t.Errorf("state after move: to_move=%d selected=%v", mv.State.ToMove, mv.State.Selected)
	}
}

func TestIllegalMoveIsNotAnError(t *testing.T) {
	h := NewHandler(game.NewManager())
	st := newGame(t, h)

	mv := decode[MoveResponse](t, post(t, h, "/api/move",
		`{"game_id":"`+st.GameID+`","from":{"x":4,"y":6},"to":{"x":3,"y":6}}`))
	if mv.Outcome.Legal {
		t.Fatalf("sideways soldier move accepted")
	}
	if mv.State.Position != st.Position {
		t.Fatalf("illegal move changed position: %q", mv.State.Position)
	}
}

func TestClickFlowCapture(t *testing.T) {
	h := NewHandler(game.NewManager())
	id := newGame(t, h).GameID
	click := func(x, y int) ClickResponse {
		body, _ := json.Marshal(ClickRequest{GameID: id, Cell: xiangqi.Cell{X: x, Y: y}})
		return decode[ClickResponse](t, post(t, h, "/api/click", string(body)))
	}

	if res := click(1, 7); !res.Selected || res.Moved {
		t.Fatalf("first click = %+v", res)
	}
	res := click(1, 0)
	if !res.Moved || res.Outcome == nil {
		t.Fatalf("second click = %+v", res)
	}
	if diff := cmp.Diff(&OutcomeDTO{Legal: true, Captured: "Horse", Winner: -1}, res.Outcome); diff != "" {
		t.Errorf("outcome mismatch (-want +got):\n%s", diff)
	}
	if len(res.State.Pieces) != 31 {
		t.Errorf("%d pieces after capture, want 31", len(res.State.Pieces))
	}
}

func TestRequestErrors(t *testing.T) {
	h := NewHandler(game.NewManager())
	id := newGame(t, h).GameID

	tests := []struct {
		name   string
		method string
		path   string
		body   string
		want   int
	}{
		{"wrong method", http.MethodGet, "/api/state", "", http.StatusMethodNotAllowed},
		{"unknown path", http.MethodPost, "/api/undo", "{}", http.StatusNotFound},
		{"bad json", http.MethodPost, "/api/state", "{", http.StatusBadRequest},
		{"unknown game", http.MethodPost, "/api/state", `{"game_id":"missing"}`, http.StatusNotFound},
		{"off board select", http.MethodPost, "/api/select", `{"game_id":"` + id + `","cell":{"x":9,"y":0}}`, http.StatusBadRequest},
		{"off board move", http.MethodPost, "/api/move", `{"game_id":"` + id + `","from":{"x":0,"y":9},"to":{"x":0,"y":-1}}`, http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, strings.NewReader(tt.body))
			rr := httptest.NewRecorder()
			h.ServeHTTP(rr, req)
			if rr.Code != tt.want {
				t.Fatalf("status = %d, want %d (body %q)", rr.Code, tt.want, rr.Body.String())
			}
		})
	}
}

func TestMuxServesAPI(t *testing.T) {
	mux := NewMux(NewHandler(nil), "")
	rr := post(t, mux, "/api/new_game", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("status %d", rr.Code)
	}
	req := httptest.NewRequest(http.MethodGet, "/index.html", nil)
	rr = httptest.NewRecorder()
	mux.ServeHTTP(rr, req)
	if rr.Code != http.StatusNotFound {
		t.Fatalf("static route without web dir = %d, want 404", rr.Code)
	}
}
