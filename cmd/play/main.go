package main

import (
	"fmt"
	"os"

	"github.com/reversilab/reversi/internal/shell"
)

func main() {
	s := shell.New(os.Stdin, os.Stdout)
	if err := s.Run(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
