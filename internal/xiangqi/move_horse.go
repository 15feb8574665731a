package xiangqi

// 马的 8 种“日”字：终点 + 马腿
var horseLegMoves = [8]struct {
	Dx, Dy int // 终点
	Lx, Ly int // 马腿
}{
	{-1, -2, 0, -1},
	{+1, -2, 0, -1},
	{-2, -1, -1, 0},
	{+2, -1, +1, 0},
	{-2, +1, -1, 0},
	{+2, +1, +1, 0},
	{-1, +2, 0, +1},
	{+1, +2, 0, +1},
}

// 马：日字，憋马腿不能走
func horseMove(b *Board, from, to Cell) bool {
	dx, dy := to.X-from.X, to.Y-from.Y
	for _, m := range horseLegMoves {
		if m.Dx != dx || m.Dy != dy {
			continue
		}
		return !b.occupied(from.X+m.Lx, from.Y+m.Ly)
	}
	return false
}
