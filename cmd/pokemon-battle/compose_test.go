package main

import (
	"bufio"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/TeriYeaki/Pokemon-Battle/internal/roster"
)

func TestParseComposition(t *testing.T) {
	tests := []struct {
		line    string
		want    roster.Composition
		wantErr bool
	}{
		{"1 2 3", roster.Composition{Charmanders: 1, Bulbasaurs: 2, Squirtles: 3}, false},
		{"  2 2 2  \n", roster.Composition{Charmanders: 2, Bulbasaurs: 2, Squirtles: 2}, false},
		{"6 0 0", roster.Composition{Charmanders: 6}, false},
		{"1 2", roster.Composition{}, true},
		{"a b c", roster.Composition{}, true},
		{"-1 2 2", roster.Composition{}, true},
		{"0 0 0", roster.Composition{}, true},
		{"3 3 1", roster.Composition{}, true},
		{"", roster.Composition{}, true},
	}
	for _, tt := range tests {
		got, err := parseComposition(tt.line)
		if tt.wantErr {
			if err == nil {
				t.Errorf("parseComposition(%q) succeeded, want error", tt.line)
			}
			continue
		}
		if err != nil {
			t.Errorf("parseComposition(%q): %v", tt.line, err)
			continue
		}
		if got != tt.want {
			t.Errorf("parseComposition(%q) = %+v, want %+v", tt.line, got, tt.want)
		}
	}
}

func TestRequestComposition_RepromptsUntilValid(t *testing.T) {
	in := bufio.NewReader(strings.NewReader("bogus\n0 0 0\n1 2 3\n"))
	var out strings.Builder
	comp, err := requestComposition(in, &out, "Ash")
	if err != nil {
		t.Fatal(err)
	}
	want := roster.Composition{Charmanders: 1, Bulbasaurs: 2, Squirtles: 3}
	if comp != want {
		t.Errorf("composition = %+v, want %+v", comp, want)
	}
	if got := strings.Count(out.String(), "Howdy Ash!"); got != 3 {
		t.Errorf("prompted %d times, want 3", got)
	}
}

func TestRequestComposition_AcceptsFinalLineWithoutNewline(t *testing.T) {
	in := bufio.NewReader(strings.NewReader("2 2 2"))
	comp, err := requestComposition(in, io.Discard, "Ash")
	if err != nil {
		t.Fatal(err)
	}
	want := roster.Composition{Charmanders: 2, Bulbasaurs: 2, Squirtles: 2}
	if comp != want {
		t.Errorf("composition = %+v, want %+v", comp, want)
	}
}

func TestRequestComposition_AbortsOnExhaustedInput(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty input", ""},
		{"blank line then end", "\n"},
		{"invalid line then end", "bogus\n"},
	}
	for _, tt := range tests {
		in := bufio.NewReader(strings.NewReader(tt.input))
		if _, err := requestComposition(in, io.Discard, "Ash"); !errors.Is(err, io.EOF) {
			t.Errorf("%s: err = %v, want io.EOF", tt.name, err)
		}
	}
}
