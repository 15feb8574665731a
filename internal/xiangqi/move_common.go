package xiangqi

// 同一行或同一列上，from 与 to 之间（不含两端）的棋子数；不在一条直线上返回 -1
func countBetween(b *Board, from, to Cell) int {
	dx, dy := to.X-from.X, to.Y-from.Y
	if (dx == 0) == (dy == 0) {
		return -1
	}
	stepX, stepY := sign(dx), sign(dy)
	n := 0
	for x, y := from.X+stepX, from.Y+stepY; x != to.X || y != to.Y; x, y = x+stepX, y+stepY {
		if b.occupied(x, y) {
			n++
		}
	}
	return n
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}

// 车：横竖任意距离，中间不能有子
func chariotMove(b *Board, from, to Cell) bool {
	return countBetween(b, from, to) == 0
}

// 炮：横竖走；中间无子时只能落空格，恰好隔一子（炮架）时必须吃子
func cannonMove(b *Board, from, to Cell) bool {
	switch countBetween(b, from, to) {
	case 0:
		return b.PieceAt(to) == 0
	case 1:
		return b.PieceAt(to) != 0
	default:
		return false
	}
}

// 相：田字，不能过河，塞象眼不能走
func elephantMove(b *Board, from, to Cell) bool {
	if abs(from.X-to.X) != 2 || abs(from.Y-to.Y) != 2 {
		return false
	}
	if (from.Y < RiverRow) != (to.Y < RiverRow) {
		return false
	}
	return !b.occupied((from.X+to.X)/2, (from.Y+to.Y)/2)
}

// 士：九宫内斜走一格
func guardMove(from, to Cell, side Side) bool {
	if abs(from.X-to.X) != 1 || abs(from.Y-to.Y) != 1 {
		return false
	}
	return inPalace(side, to.X, to.Y)
}

// 将：九宫内上下左右一格（不处理“对将”规则）
func kingMove(from, to Cell, side Side) bool {
	if abs(from.X-to.X)+abs(from.Y-to.Y) != 1 {
		return false
	}
	return inPalace(side, to.X, to.Y)
}
