package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"

	"github.com/TeriYeaki/Pokemon-Battle/internal/engine"
	"github.com/TeriYeaki/Pokemon-Battle/internal/service"
)

func main() {
	var (
		mode       = flag.Int("mode", 0, "battle mode: 0 set (LIFO), 1 rotating (FIFO), 2 optimised (priority)")
		criterion1 = flag.String("criterion1", "", "sort criterion for trainer 1 in optimised mode (lvl, hp, attack, defence, speed)")
		criterion2 = flag.String("criterion2", "", "sort criterion for trainer 2 in optimised mode")
		trainer1   = flag.String("trainer1", "Trainer 1", "name of the first trainer")
		trainer2   = flag.String("trainer2", "Trainer 2", "name of the second trainer")
		wildcard1  = flag.Bool("wildcard1", false, "arm trainer 1 with a reserve Glitchmon")
		wildcard2  = flag.Bool("wildcard2", false, "arm trainer 2 with a reserve Glitchmon")
		seed       = flag.Int64("seed", 0, "random seed (0 picks one)")
	)
	flag.Parse()

	in := bufio.NewReader(os.Stdin)
	comp1, err := requestComposition(in, os.Stdout, *trainer1)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	comp2, err := requestComposition(in, os.Stdout, *trainer2)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	req := service.BattleRequest{
		Mode:       *mode,
		Criterion1: *criterion1,
		Criterion2: *criterion2,
		Team1:      service.TeamSpec{Trainer: *trainer1, Composition: comp1, Wildcard: *wildcard1},
		Team2:      service.TeamSpec{Trainer: *trainer2, Composition: comp2, Wildcard: *wildcard2},
		Seed:       *seed,
	}

	res, err := service.RunBattle(req, engine.WithObserver(func(line string) {
		fmt.Println(line)
	}))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Println(res.Result)
}
