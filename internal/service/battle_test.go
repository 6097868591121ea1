package service

import (
	"errors"
	"reflect"
	"testing"

	"github.com/TeriYeaki/Pokemon-Battle/internal/game"
	"github.com/TeriYeaki/Pokemon-Battle/internal/roster"
)

func TestRunBattle_TypeAdvantageDecides(t *testing.T) {
	// A lone Charmander strikes first but cannot pierce Squirtle's
	// mitigation, while the doubled water counter lands above Charmander's
	// threshold and faints it outright.
	req := BattleRequest{
		Mode:  0,
		Team1: TeamSpec{Composition: roster.Composition{Charmanders: 1}},
		Team2: TeamSpec{Composition: roster.Composition{Squirtles: 1}},
		Seed:  1,
	}
	res, err := RunBattle(req)
	if err != nil {
		t.Fatal(err)
	}
	if res.Result != "Trainer 2" {
		t.Errorf("result = %q, want %q", res.Result, "Trainer 2")
	}
	if res.Rounds != 1 {
		t.Errorf("rounds = %d, want 1", res.Rounds)
	}
	want := "Round 1: Trainer 1's Charmander is fainted by Trainer 2's Squirtle"
	if len(res.Narration) != 1 || res.Narration[0] != want {
		t.Errorf("narration = %q, want [%q]", res.Narration, want)
	}
}

func TestRunBattle_MirrorMatchBleedsToDraw(t *testing.T) {
	// Equal Bulbasaurs halve each other's strikes every round and bleed
	// out on attrition after three rounds.
	req := BattleRequest{
		Mode:  0,
		Team1: TeamSpec{Trainer: "Ash", Composition: roster.Composition{Bulbasaurs: 1}},
		Team2: TeamSpec{Trainer: "Gary", Composition: roster.Composition{Bulbasaurs: 1}},
		Seed:  1,
	}
	res, err := RunBattle(req)
	if err != nil {
		t.Fatal(err)
	}
	if res.Result != "Draw" {
		t.Errorf("result = %q, want Draw", res.Result)
	}
	if res.Rounds != 3 {
		t.Errorf("rounds = %d, want 3", res.Rounds)
	}
	want := "Round 1: Ash's Bulbasaur attack Gary's Bulbasaur and loses 2 HP while Gary's Bulbasaur loses 2 HP"
	if len(res.Narration) != 3 || res.Narration[0] != want {
		t.Errorf("narration = %q, want first line %q", res.Narration, want)
	}
}

func TestRunBattle_SeedReproducesWildcardRuns(t *testing.T) {
	req := BattleRequest{
		Mode:  1,
		Team1: TeamSpec{Composition: roster.Composition{Charmanders: 1}, Wildcard: true},
		Team2: TeamSpec{Composition: roster.Composition{Squirtles: 1, Bulbasaurs: 1}},
		Seed:  7,
	}
	first, err := RunBattle(req)
	if err != nil {
		t.Fatal(err)
	}
	second, err := RunBattle(req)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("same seed diverged:\n%+v\n%+v", first, second)
	}
}

func TestRunBattle_OptimisedModeEndToEnd(t *testing.T) {
	req := BattleRequest{
		Mode:       2,
		Criterion1: "speed",
		Criterion2: "hp",
		Team1:      TeamSpec{Composition: roster.Composition{Charmanders: 1, Bulbasaurs: 1}},
		Team2:      TeamSpec{Composition: roster.Composition{Squirtles: 1, Bulbasaurs: 1}},
		Seed:       1,
	}
	res, err := RunBattle(req)
	if err != nil {
		t.Fatal(err)
	}
	if res.Result == "" || res.Rounds < 1 {
		t.Errorf("incomplete result: %+v", res)
	}
}

func TestRunBattle_Validation(t *testing.T) {
	valid := TeamSpec{Composition: roster.Composition{Charmanders: 1}}
	tests := []struct {
		name string
		req  BattleRequest
	}{
		{"bad mode", BattleRequest{Mode: 5, Team1: valid, Team2: valid}},
		{"missing criterion", BattleRequest{Mode: 2, Criterion1: "speed", Team1: valid, Team2: valid}},
		{"empty composition", BattleRequest{Mode: 0, Team1: TeamSpec{}, Team2: valid}},
		{"oversized composition", BattleRequest{Mode: 0, Team1: valid, Team2: TeamSpec{Composition: roster.Composition{Squirtles: 7}}}},
		{"negative count", BattleRequest{Mode: 0, Team1: TeamSpec{Composition: roster.Composition{Charmanders: -1, Bulbasaurs: 2}}, Team2: valid}},
	}
	for _, tt := range tests {
		if _, err := RunBattle(tt.req); !errors.Is(err, game.ErrConfiguration) {
			t.Errorf("%s: err = %v, want ErrConfiguration", tt.name, err)
		}
	}
}
