package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/reversilab/reversi/internal/othello"
)

func main() {
	boardString := flag.String("board", "", "the board to show")
	turnString := flag.String("turn", "black", "the color to move")
	flag.Parse()

	board, err := othello.NewBoardFromString(*boardString)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	turn, err := othello.ParseColor(*turnString)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	for _, line := range board.ASCIIArtLines(board.LegalMoves(turn)) {
		fmt.Println(line)
	}
}
