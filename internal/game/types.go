package game

import (
	"errors"
	"fmt"
	"strings"
)

// ErrConfiguration marks invalid pre-battle input: unknown species or
// types, bad battle modes, out-of-range levels. Callers match it with
// errors.Is.
var ErrConfiguration = errors.New("invalid configuration")

// Type is an elemental type. The closed set is fire, water and grass plus
// the neutral TypeBase used when measuring raw attack strength (sort keys)
// instead of a concrete matchup.
type Type string

const (
	TypeFire  Type = "fire"
	TypeWater Type = "water"
	TypeGrass Type = "grass"
	TypeBase  Type = "base"
)

// effectiveness maps attacker type -> defender type -> damage multiplier.
var effectiveness = map[Type]map[Type]float64{
	TypeFire:  {TypeFire: 1, TypeWater: 0.5, TypeGrass: 2, TypeBase: 1},
	TypeWater: {TypeFire: 2, TypeWater: 1, TypeGrass: 0.5, TypeBase: 1},
	TypeGrass: {TypeFire: 0.5, TypeWater: 2, TypeGrass: 1, TypeBase: 1},
	// The neutral type is always x1 in both directions.
	TypeBase: {TypeFire: 1, TypeWater: 1, TypeGrass: 1, TypeBase: 1},
}

// Effectiveness returns the damage multiplier for an attacker/defender type
// pair.
func Effectiveness(attacker, defender Type) (float64, error) {
	row, ok := effectiveness[attacker]
	if !ok {
		return 0, fmt.Errorf("%w: unknown attacker type %q", ErrConfiguration, attacker)
	}
	mult, ok := row[defender]
	if !ok {
		return 0, fmt.Errorf("%w: unknown defender type %q", ErrConfiguration, defender)
	}
	return mult, nil
}

// Criterion selects the attribute a priority-ordered roster sorts by.
type Criterion string

const (
	CriterionLevel   Criterion = "lvl"
	CriterionHP      Criterion = "hp"
	CriterionAttack  Criterion = "attack"
	CriterionDefence Criterion = "defence"
	CriterionSpeed   Criterion = "speed"
)

// ParseCriterion normalizes and validates a criterion string.
func ParseCriterion(s string) (Criterion, error) {
	c := Criterion(strings.ToLower(strings.TrimSpace(s)))
	switch c {
	case CriterionLevel, CriterionHP, CriterionAttack, CriterionDefence, CriterionSpeed:
		return c, nil
	}
	return "", fmt.Errorf("%w: invalid criterion %q (want lvl, hp, attack, defence or speed)", ErrConfiguration, s)
}
