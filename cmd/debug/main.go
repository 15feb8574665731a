package main

import (
	"fmt"

	"xiangqi/internal/xiangqi"
)

func main() {
	g := xiangqi.NewGame()
	fmt.Print(g.Board.String())
	fmt.Println("FEN:", g.Encode())
	moves := xiangqi.LegalMoves(&g.Board, g.ActiveSide)
	fmt.Println("Legal moves:", len(moves))
}
