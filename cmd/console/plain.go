package main

import (
	"bufio"
	"fmt"
	"io"

	"github.com/muesli/reflow/wordwrap"
)

const plainWidth = 78

// runPlain is the line-mode console: one prompt per command, no screen handling.
// It returns when the player quits, the game ends or input runs out.
func runPlain(in io.Reader, out io.Writer, s *session, opening string) error {
	fmt.Fprintln(out, wordwrap.String(opening, plainWidth))

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, "\n> ")
		if !scanner.Scan() {
			fmt.Fprintln(out)
			return scanner.Err()
		}
		r := s.handle(scanner.Text())
		if r.art != "" {
			fmt.Fprintln(out, r.art)
			fmt.Fprintln(out)
		}
		fmt.Fprintln(out, wordwrap.String(r.text, plainWidth))
		if r.quit || s.finished {
			return nil
		}
	}
}
