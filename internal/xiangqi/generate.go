package xiangqi

// ruleAllows 按棋子种类分派到对应走法规则，不看目标格上是谁的子
func ruleAllows(b *Board, pc Piece, from, to Cell) bool {
	side := pc.Side()
	switch pc.Kind() {
	case KindChariot:
		return chariotMove(b, from, to)
	case KindHorse:
		return horseMove(b, from, to)
	case KindElephant:
		return elephantMove(b, from, to)
	case KindGuard:
		return guardMove(from, to, side)
	case KindKing:
		return kingMove(from, to, side)
	case KindCannon:
		return cannonMove(b, from, to)
	case KindSoldier:
		return soldierMove(from, to, side)
	}
	return false
}

// IsLegalMove 判断 from 上的棋子能否走到 to。
// 不检查轮到谁走；落在己方棋子上一律非法。
func IsLegalMove(b *Board, from, to Cell) bool {
	if !from.Valid() || !to.Valid() || from == to {
		return false
	}
	pc := b.PieceAt(from)
	if pc == 0 {
		return false
	}
	if b.PieceAt(to).OwnedBy(pc.Side()) {
		return false
	}
	return ruleAllows(b, pc, from, to)
}

// LegalTargets 列出 from 上的棋子所有可落点，按行优先顺序
func LegalTargets(b *Board, from Cell) []Cell {
	if b.PieceAt(from) == 0 {
		return nil
	}
	var out []Cell
	for sq := 0; sq < NumSquares; sq++ {
		to := cellOf(sq)
		if IsLegalMove(b, from, to) {
			out = append(out, to)
		}
	}
	return out
}

// Move 是一步走法
type Move struct {
	From Cell `json:"from"`
	To   Cell `json:"to"`
}

// LegalMoves 生成 side 一方所有走法（不考虑将军）
func LegalMoves(b *Board, side Side) []Move {
	var moves []Move
	for _, pl := range b.PiecesOf(side) {
		for _, to := range LegalTargets(b, pl.Cell) {
			moves = append(moves, Move{From: pl.Cell, To: to})
		}
	}
	return moves
}
