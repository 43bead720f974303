package main

import (
	"fmt"
	"io"
	"time"

	"github.com/logrusorgru/aurora"
)

func (s Summary) Print(w io.Writer) {
	fmt.Fprintf(w, "%s %d games in %s\n", aurora.Bold("Self-play:"), s.Games, s.Elapsed.Round(time.Millisecond))
	fmt.Fprintf(w, "  Player 1 wins: %d\n", aurora.Green(s.Wins[0]))
	fmt.Fprintf(w, "  Player 2 wins: %d\n", aurora.Cyan(s.Wins[1]))
	if s.Forfeits > 0 {
		fmt.Fprintf(w, "  Forfeits:      %d\n", aurora.Red(s.Forfeits))
	}
	if s.Games > 0 {
		fmt.Fprintf(w, "  Moves / game:  %.1f\n", float64(s.Moves)/float64(s.Games))
	}
}
