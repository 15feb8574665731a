package xiangqi

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

var ErrInvalidFEN = errors.New("invalid FEN")

var letterToKind = map[rune]PieceKind{
	'r': KindChariot,
	'n': KindHorse,
	'b': KindElephant,
	'a': KindGuard,
	'k': KindKing,
	'c': KindCannon,
	'p': KindSoldier,
}

var kindToLetter = map[PieceKind]rune{
	KindChariot:  'r',
	KindHorse:    'n',
	KindElephant: 'b',
	KindGuard:    'a',
	KindKing:     'k',
	KindCannon:   'c',
	KindSoldier:  'p',
}

func pieceToChar(p Piece) rune {
	if p == 0 {
		return '.'
	}
	base, ok := kindToLetter[p.Kind()]
	if !ok {
		return '.'
	}
	if p.Side() == Red {
		return unicode.ToUpper(base)
	}
	return base
}

// Encode 输出棋盘部分：10 行用“/”隔开（y=0 在前），空位用数字压缩
func (b *Board) Encode() string {
	var sb strings.Builder
	for y := 0; y < Rows; y++ {
		if y > 0 {
			sb.WriteByte('/')
		}
		empty := 0
		for x := 0; x < Cols; x++ {
			pc := b.Squares[indexOf(x, y)]
			if pc == 0 {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte(byte('0' + empty))
				empty = 0
			}
			sb.WriteRune(pieceToChar(pc))
		}
		if empty > 0 {
			sb.WriteByte(byte('0' + empty))
		}
	}
	return sb.String()
}

// DecodeBoard 解析 Encode 的输出；也接受用“.”表示的空位
func DecodeBoard(s string) (*Board, error) {
	rows := strings.Split(strings.TrimSpace(s), "/")
	if len(rows) != Rows {
		return nil, fmt.Errorf("%w: %d ranks", ErrInvalidFEN, len(rows))
	}
	var b Board
	for y, row := range rows {
		x := 0
		for _, ch := range row {
			if x >= Cols {
				return nil, fmt.Errorf("%w: rank %d too long", ErrInvalidFEN, y)
			}
			if ch >= '1' && ch <= '9' {
				x += int(ch - '0')
				continue
			}
			if ch == '.' {
				x++
				continue
			}
			kind, ok := letterToKind[unicode.ToLower(ch)]
			if !ok {
				return nil, fmt.Errorf("%w: unknown piece %q", ErrInvalidFEN, ch)
			}
			side := Black
			if unicode.IsUpper(ch) {
				side = Red
			}
			b.Squares[indexOf(x, y)] = MakePiece(side, kind)
			x++
		}
		if x != Cols {
			return nil, fmt.Errorf("%w: rank %d has %d files", ErrInvalidFEN, y, x)
		}
	}
	return &b, nil
}

// Encode 输出棋盘 + 轮到谁走（w=红，b=黑）
func (g *Game) Encode() string {
	stm := "w"
	if g.ActiveSide == Black {
		stm = "b"
	}
	return g.Board.Encode() + " " + stm
}

// DecodeGame 由 Encode 的输出恢复对局；比分从零开始
func DecodeGame(s string) (*Game, error) {
	parts := strings.Fields(s)
	if len(parts) != 2 {
		return nil, ErrInvalidFEN
	}
	b, err := DecodeBoard(parts[0])
	if err != nil {
		return nil, err
	}
	g := &Game{Board: *b}
	switch parts[1] {
	case "w", "r":
		g.ActiveSide = Red
	case "b":
		g.ActiveSide = Black
	default:
		return nil, fmt.Errorf("%w: side %q", ErrInvalidFEN, parts[1])
	}
	return g, nil
}
