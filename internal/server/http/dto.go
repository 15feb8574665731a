package httpserver

import "xiangqi/internal/xiangqi"

// 前端用的棋子结构
type PieceDTO struct {
	X     int    `json:"x"`
	Y     int    `json:"y"`
	Kind  string `json:"kind"`
	Side  int    `json:"side"` // 0=红, 1=黑
	Glyph string `json:"glyph"`
}

type ScoreDTO struct {
	RedWins   uint32 `json:"red_wins"`
	BlackWins uint32 `json:"black_wins"`
}

// StateResponse 是所有接口共用的局面快照
type StateResponse struct {
	GameID   string        `json:"game_id"`
	Position string        `json:"position"` // FEN 字符串
	ToMove   int           `json:"to_move"`  // 0=红(w),1=黑(b)
	Score    ScoreDTO      `json:"score"`
	Pieces   []PieceDTO    `json:"pieces"`
	Selected *xiangqi.Cell `json:"selected,omitempty"`
}

// State 请求：前端刷新时用 game_id 来要当前盘面
type StateRequest struct {
	GameID string `json:"game_id"`
}

type SelectRequest struct {
	GameID string       `json:"game_id"`
	Cell   xiangqi.Cell `json:"cell"`
}

type SelectResponse struct {
	Selected bool           `json:"selected"`
	Targets  []xiangqi.Cell `json:"targets"` // 选中棋子的所有可落点
	State    StateResponse  `json:"state"`
}

type MoveRequest struct {
	GameID string       `json:"game_id"`
	From   xiangqi.Cell `json:"from"`
	To     xiangqi.Cell `json:"to"`
}

type OutcomeDTO struct {
	Legal    bool   `json:"legal"`
	Captured string `json:"captured,omitempty"` // 被吃棋子种类
	GameOver bool   `json:"game_over"`
	Winner   int    `json:"winner"` // -1=无
}

type MoveResponse struct {
	Outcome OutcomeDTO    `json:"outcome"`
	State   StateResponse `json:"state"`
}

// Click 请求：前端只上报点到的格子，选子/走子由服务端决定
type ClickRequest struct {
	GameID string       `json:"game_id"`
	Cell   xiangqi.Cell `json:"cell"`
}

type ClickResponse struct {
	Selected bool           `json:"selected"`
	Targets  []xiangqi.Cell `json:"targets,omitempty"`
	Moved    bool           `json:"moved"`
	Outcome  *OutcomeDTO    `json:"outcome,omitempty"`
	State    StateResponse  `json:"state"`
}

func sideToInt(s xiangqi.Side) int {
	switch s {
	case xiangqi.Red:
		return 0
	case xiangqi.Black:
		return 1
	default:
		return -1
	}
}

func outcomeToDTO(o xiangqi.MoveOutcome) OutcomeDTO {
	dto := OutcomeDTO{
		Legal:    o.Legal,
		GameOver: o.GameOver,
		Winner:   sideToInt(o.Winner),
	}
	if o.Captured != xiangqi.KindNone {
		dto.Captured = o.Captured.String()
	}
	return dto
}

func stateOf(id string, g *xiangqi.Game) StateResponse {
	pls := g.Board.Pieces()
	pieces := make([]PieceDTO, len(pls))
	for i, pl := range pls {
		pieces[i] = PieceDTO{
			X:     pl.Cell.X,
			Y:     pl.Cell.Y,
			Kind:  pl.Kind.String(),
			Side:  sideToInt(pl.Side),
			Glyph: pl.Piece().Glyph(),
		}
	}
	resp := StateResponse{
		GameID:   id,
		Position: g.Encode(),
		ToMove:   sideToInt(g.ActiveSide),
		Score:    ScoreDTO{RedWins: g.Score.RedWins, BlackWins: g.Score.BlackWins},
		Pieces:   pieces,
	}
	if c, ok := g.Selection(); ok {
		resp.Selected = &c
	}
	return resp
}
