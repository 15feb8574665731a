package xiangqi

import (
	"strings"
)

const (
	Rows       = 10
	Cols       = 9
	NumSquares = Rows * Cols

	// 楚河汉界在第 4、5 行之间：y<5 为黑方半场，y>=5 为红方半场
	RiverRow = 5
)

func indexOf(x, y int) int { return y*Cols + x }
func cellOf(sq int) Cell   { return Cell{X: sq % Cols, Y: sq / Cols} }

func onBoard(x, y int) bool {
	return x >= 0 && x < Cols && y >= 0 && y < Rows
}

func opposite(side Side) Side {
	if side == Red {
		return Black
	}
	if side == Black {
		return Red
	}
	return NoSide
}

// 兵的前进方向：红向上(-1)，黑向下(+1)
func soldierDir(side Side) int {
	if side == Red {
		return -1
	}
	if side == Black {
		return +1
	}
	return 0
}

// 是否已经过河
func crossedRiver(side Side, y int) bool {
	if side == Red {
		return y < RiverRow
	}
	if side == Black {
		return y >= RiverRow
	}
	return false
}

// 是否在九宫：列 3..5，黑方行 0..2，红方行 7..9
func inPalace(side Side, x, y int) bool {
	if x < 3 || x > 5 {
		return false
	}
	if side == Black {
		return y >= 0 && y <= 2
	}
	if side == Red {
		return y >= Rows-3 && y <= Rows-1
	}
	return false
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// Board 以格子为索引保存棋子，结构上保证一格至多一子。
type Board struct {
	Squares [NumSquares]Piece
}

// PieceAt 返回 c 上的棋子；空格或盘外返回 0
func (b *Board) PieceAt(c Cell) Piece {
	if !c.Valid() {
		return 0
	}
	return b.Squares[indexOf(c.X, c.Y)]
}

func (b *Board) occupied(x, y int) bool {
	return b.Squares[indexOf(x, y)] != 0
}

// Relocate 把 from 上的棋子挪到 to。调用方负责先校验走法、先移除被吃的子。
func (b *Board) Relocate(from, to Cell) {
	if !from.Valid() || !to.Valid() {
		return
	}
	pc := b.Squares[indexOf(from.X, from.Y)]
	b.Squares[indexOf(from.X, from.Y)] = 0
	b.Squares[indexOf(to.X, to.Y)] = pc
}

// Remove 清空 c，返回被移除的棋子
func (b *Board) Remove(c Cell) Piece {
	if !c.Valid() {
		return 0
	}
	sq := indexOf(c.X, c.Y)
	pc := b.Squares[sq]
	b.Squares[sq] = 0
	return pc
}

// Place 把 pc 放到 c 上（摆残局、测试用），覆盖原有棋子
func (b *Board) Place(c Cell, pc Piece) {
	if !c.Valid() {
		return
	}
	b.Squares[indexOf(c.X, c.Y)] = pc
}

// Reset 恢复标准开局 32 子
func (b *Board) Reset() {
	*b = initialBoard
}

// Pieces 按行优先顺序返回盘上所有棋子
func (b *Board) Pieces() []Placement {
	out := make([]Placement, 0, 32)
	for sq, pc := range b.Squares {
		if pc == 0 {
			continue
		}
		out = append(out, Placement{Cell: cellOf(sq), Kind: pc.Kind(), Side: pc.Side()})
	}
	return out
}

// PiecesOf 只返回 side 一方的棋子
func (b *Board) PiecesOf(side Side) []Placement {
	var out []Placement
	for _, pl := range b.Pieces() {
		if pl.Side == side {
			out = append(out, pl)
		}
	}
	return out
}

func (b *Board) KingCell(side Side) (Cell, bool) {
	for sq, pc := range b.Squares {
		if pc != 0 && pc.Kind() == KindKing && pc.Side() == side {
			return cellOf(sq), true
		}
	}
	return Cell{}, false
}

func (b *Board) KingExists(side Side) bool {
	_, ok := b.KingCell(side)
	return ok
}

// String 画出棋盘，空交叉点用 ＋，河界留一行空白
func (b *Board) String() string {
	var sb strings.Builder
	for y := 0; y < Rows; y++ {
		if y == RiverRow {
			sb.WriteString("   楚 河        汉 界\n")
		}
		for x := 0; x < Cols; x++ {
			if x > 0 {
				sb.WriteByte(' ')
			}
			pc := b.Squares[indexOf(x, y)]
			if pc == 0 {
				sb.WriteString("＋")
				continue
			}
			sb.WriteString(pc.Glyph())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// 开局局面，大写为红方
const initialBoardString = `rnbakabnr
.........
.c.....c.
p.p.p.p.p
.........
.........
P.P.P.P.P
.C.....C.
.........
RNBAKABNR`

var initialBoard = parseInitialBoard()

func parseInitialBoard() Board {
	fen := strings.ReplaceAll(initialBoardString, "\n", "/")
	b, err := DecodeBoard(fen)
	if err != nil {
		panic("initialBoardString: " + err.Error())
	}
	return *b
}

func NewInitialBoard() *Board {
	b := initialBoard
	return &b
}
