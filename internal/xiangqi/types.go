package xiangqi

type Side int8

const (
	NoSide Side = -1
	Red    Side = 0
	Black  Side = 1
)

func (s Side) String() string {
	switch s {
	case Red:
		return "Red"
	case Black:
		return "Black"
	default:
		return "None"
	}
}

// Opponent 返回对方；NoSide 的对方仍是 NoSide
func (s Side) Opponent() Side {
	return opposite(s)
}

type PieceKind int8

const (
	KindNone     PieceKind = iota
	KindChariot            // 车
	KindHorse              // 马
	KindElephant           // 相 / 象
	KindGuard              // 士 / 仕
	KindKing               // 将 / 帅
	KindCannon             // 炮
	KindSoldier            // 兵 / 卒
)

var kindNames = [...]string{
	KindNone:     "None",
	KindChariot:  "Chariot",
	KindHorse:    "Horse",
	KindElephant: "Elephant",
	KindGuard:    "Guard",
	KindKing:     "King",
	KindCannon:   "Cannon",
	KindSoldier:  "Soldier",
}

func (k PieceKind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "Unknown"
	}
	return kindNames[k]
}

type Piece int8 // 0=空；>0 红；<0 黑；abs=PieceKind

func MakePiece(side Side, kind PieceKind) Piece {
	if kind == KindNone || side == NoSide {
		return 0
	}
	if side == Red {
		return Piece(kind)
	}
	return -Piece(kind)
}

func (p Piece) Kind() PieceKind {
	if p < 0 {
		return PieceKind(-p)
	}
	return PieceKind(p)
}

func (p Piece) Side() Side {
	if p == 0 {
		return NoSide
	}
	if p > 0 {
		return Red
	}
	return Black
}

// OwnedBy reports whether the piece belongs to side. An empty square is owned by nobody.
func (p Piece) OwnedBy(side Side) bool {
	return p != 0 && p.Side() == side
}

// 显示用字形，与规则判断无关
var glyphs = map[Side][8]string{
	Black: {"", "车", "马", "相", "士", "将", "炮", "兵"},
	Red:   {"", "车", "马", "象", "仕", "帅", "炮", "卒"},
}

func (p Piece) Glyph() string {
	if p == 0 {
		return ""
	}
	k := p.Kind()
	if k <= KindNone || k > KindSoldier {
		return ""
	}
	return glyphs[p.Side()][k]
}

func (p Piece) String() string {
	if p == 0 {
		return "empty"
	}
	return p.Side().String() + " " + p.Kind().String()
}

// Cell 是棋盘交叉点：x 为列 [0,8]，y 为行 [0,9]，左上角为原点
type Cell struct {
	X int `json:"x"`
	Y int `json:"y"`
}

func (c Cell) Valid() bool {
	return onBoard(c.X, c.Y)
}

// Placement 是棋盘快照里的一个棋子
type Placement struct {
	Cell Cell      `json:"cell"`
	Kind PieceKind `json:"kind"`
	Side Side      `json:"side"`
}

func (pl Placement) Piece() Piece {
	return MakePiece(pl.Side, pl.Kind)
}

// MatchScore 在一次进程内累计，不随新局重置
type MatchScore struct {
	RedWins   uint32 `json:"red_wins"`
	BlackWins uint32 `json:"black_wins"`
}

// MoveOutcome 是一次走子尝试的结果。非法走子不是错误，只是 Legal=false。
type MoveOutcome struct {
	Legal    bool
	From, To Cell
	Captured PieceKind // KindNone 表示没有吃子
	GameOver bool      // 吃掉了对方的将/帅，棋盘已重置
	Winner   Side
}
