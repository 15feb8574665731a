package xiangqi

import (
	"errors"
	"fmt"
	"log"
)

var ErrOffBoard = errors.New("cell off board")

// Game 是一局棋的全部可变状态：棋盘、轮到谁走、当前选中的棋子、累计比分。
// 单线程使用；并发访问由调用方加锁。
type Game struct {
	Board      Board
	ActiveSide Side
	Score      MatchScore

	selected    Cell
	hasSelected bool

	// Logger 为 nil 时不输出
	Logger *log.Logger
}

// NewGame 返回开局局面，红先
func NewGame() *Game {
	g := &Game{ActiveSide: Red}
	g.Board.Reset()
	return g
}

func (g *Game) logf(format string, args ...any) {
	if g.Logger != nil {
		g.Logger.Printf(format, args...)
	}
}

// CheckCell 在边界上拒绝盘外坐标
func CheckCell(c Cell) error {
	if !c.Valid() {
		return fmt.Errorf("%w: (%d, %d)", ErrOffBoard, c.X, c.Y)
	}
	return nil
}

// NewRound 开始新的一局，保留比分
func (g *Game) NewRound() {
	g.Board.Reset()
	g.ActiveSide = Red
	g.ClearSelection()
}

// Selection 返回当前选中的格子
func (g *Game) Selection() (Cell, bool) {
	return g.selected, g.hasSelected
}

func (g *Game) ClearSelection() {
	g.selected = Cell{}
	g.hasSelected = false
}

// Select 选中 c 上属于当前走子方的棋子；已有选中时不改变状态
func (g *Game) Select(c Cell) (Piece, bool) {
	if g.hasSelected {
		return 0, false
	}
	pc := g.Board.PieceAt(c)
	if !pc.OwnedBy(g.ActiveSide) {
		return 0, false
	}
	g.selected = c
	g.hasSelected = true
	g.logf("selected %v at (%d, %d)", pc, c.X, c.Y)
	return pc, true
}

// AttemptMove 尝试把 from 上的棋子走到 to。
// 合法则吃子、挪子、换边；吃掉对方将/帅时记分并重开一局。
// 无论结果如何，选中状态都会被清除。
func (g *Game) AttemptMove(from, to Cell) MoveOutcome {
	defer g.ClearSelection()

	out := MoveOutcome{From: from, To: to, Winner: NoSide}
	if CheckCell(from) != nil || CheckCell(to) != nil {
		g.logf("move (%d, %d) -> (%d, %d) rejected: off board", from.X, from.Y, to.X, to.Y)
		return out
	}
	pc := g.Board.PieceAt(from)
	if !pc.OwnedBy(g.ActiveSide) {
		g.logf("move (%d, %d) -> (%d, %d) rejected: not a %v piece", from.X, from.Y, to.X, to.Y, g.ActiveSide)
		return out
	}
	if !IsLegalMove(&g.Board, from, to) {
		g.logf("%v (%d, %d) -> (%d, %d) illegal", pc, from.X, from.Y, to.X, to.Y)
		return out
	}

	out.Legal = true
	mover := g.ActiveSide
	if target := g.Board.PieceAt(to); target.OwnedBy(opposite(mover)) {
		g.Board.Remove(to)
		out.Captured = target.Kind()
		g.logf("%v captured %v at (%d, %d)", pc, target, to.X, to.Y)
	}

	if out.Captured == KindKing {
		g.award(mover)
		out.GameOver = true
		out.Winner = mover
		g.logf("%v wins, score red %d : black %d", mover, g.Score.RedWins, g.Score.BlackWins)
		g.NewRound()
		return out
	}

	g.Board.Relocate(from, to)
	g.ActiveSide = opposite(mover)
	g.logf("%v moved from (%d, %d) to (%d, %d)", pc, from.X, from.Y, to.X, to.Y)
	return out
}

func (g *Game) award(side Side) {
	switch side {
	case Red:
		g.Score.RedWins++
	case Black:
		g.Score.BlackWins++
	}
}

// MoveSelected 把当前选中的棋子走到 to；没有选中时返回非法
func (g *Game) MoveSelected(to Cell) MoveOutcome {
	from, ok := g.Selection()
	if !ok {
		return MoveOutcome{To: to, Winner: NoSide}
	}
	return g.AttemptMove(from, to)
}

// ClickResult 描述一次点击的效果：要么选中了棋子，要么尝试了走子
type ClickResult struct {
	Selected bool
	Piece    Piece
	Moved    bool // 是否发生了走子尝试；结果见 Outcome
	Outcome  MoveOutcome
}

// Click 实现界面的点击流程：无选中时尝试选子，有选中时尝试走子
func (g *Game) Click(c Cell) ClickResult {
	if !g.hasSelected {
		pc, ok := g.Select(c)
		return ClickResult{Selected: ok, Piece: pc}
	}
	return ClickResult{Moved: true, Outcome: g.MoveSelected(c)}
}
