package xiangqi

// 兵：未过河只能向前一步；过河后可向前或左右一步，永远不能后退
func soldierMove(from, to Cell, side Side) bool {
	dir := soldierDir(side)
	if dir == 0 {
		return false
	}
	if to.X == from.X && to.Y == from.Y+dir {
		return true
	}
	if !crossedRiver(side, from.Y) {
		return false
	}
	return to.Y == from.Y && abs(to.X-from.X) == 1
}
