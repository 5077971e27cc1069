package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/germanamz/tenpin/pkg/bowling/game"
	"github.com/germanamz/tenpin/pkg/lane"
)

// runConsole reads one throw per line from in and prints the scoresheet to
// out after every accepted throw. It returns when in is exhausted.
func runConsole(l *lane.Lane, in io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(in)

	fmt.Fprintln(out, "Let's bowl!")

	for scanner.Scan() {
		_, err := l.RollInput(scanner.Text())
		switch {
		case err == nil:
			fmt.Fprint(out, l.Render())
		case errors.Is(err, lane.ErrInvalidInput):
			fmt.Fprintln(out, "Invalid input")
		case errors.Is(err, game.ErrFrameLimitExceeded):
			fmt.Fprintln(out, err)
			fmt.Fprintln(out, "Start new game? Enter any key")
			if !scanner.Scan() {
				return scanner.Err()
			}
			l.NewGame()
			fmt.Fprintln(out, "Let's bowl!")
		default:
			fmt.Fprintln(out, err)
		}
	}

	return scanner.Err()
}
