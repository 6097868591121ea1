package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/TeriYeaki/Pokemon-Battle/internal/roster"
)

// requestComposition prompts a trainer for their creature counts and
// reprompts until the triple satisfies the composition contract. The
// retry loop lives here; the engine only ever sees validated counts.
// A read error (stdin exhausted or closed) aborts instead of reprompting.
func requestComposition(in *bufio.Reader, out io.Writer, trainer string) (roster.Composition, error) {
	for {
		fmt.Fprintf(out, "Howdy %s! Choose your team as C B S\n"+
			"where C is the number of Charmanders,\n"+
			"      B is the number of Bulbasaurs,\n"+
			"      S is the number of Squirtles\n> ", trainer)
		line, err := in.ReadString('\n')
		if line != "" {
			comp, perr := parseComposition(line)
			if perr == nil {
				return comp, nil
			}
			fmt.Fprintln(out, perr)
		}
		if err != nil {
			return roster.Composition{}, fmt.Errorf("no valid team entered for %s: %w", trainer, err)
		}
	}
}

func parseComposition(line string) (roster.Composition, error) {
	var comp roster.Composition
	n, err := fmt.Sscanf(strings.TrimSpace(line), "%d %d %d",
		&comp.Charmanders, &comp.Bulbasaurs, &comp.Squirtles)
	if err != nil || n != 3 {
		return roster.Composition{}, fmt.Errorf("Invalid input. Please enter three integers separated by spaces.")
	}
	if comp.Charmanders < 0 || comp.Bulbasaurs < 0 || comp.Squirtles < 0 {
		return roster.Composition{}, fmt.Errorf("Invalid input. Numbers must be non-negative.")
	}
	if total := comp.Total(); total < 1 || total > roster.MaxTeamSize {
		return roster.Composition{}, fmt.Errorf("Invalid input. Total number of Pokemon must be between 1 and %d.", roster.MaxTeamSize)
	}
	return comp, nil
}
