package game

// Species identifies one of the closed set of creature kinds.
// Using constants avoids typos and keeps references consistent.
type Species string

const (
	SpeciesCharmander Species = "Charmander"
	SpeciesBulbasaur  Species = "Bulbasaur"
	SpeciesSquirtle   Species = "Squirtle"
	// SpeciesGlitchmon is the reserve wildcard. It is never part of an
	// initial roster; a team activates it once its roster is otherwise
	// empty. Construct it with NewGlitchmon, not NewPokemon.
	SpeciesGlitchmon Species = "Glitchmon"
)

// statProfile holds the per-species stat formulas. attack, defence and
// speed are functions of the current level; threshold derives the damage
// mitigation cutoff from the current defence stat.
type statProfile struct {
	pokeType  Type
	baseHP    int
	priority  int
	attack    func(level int) int
	defence   func(level int) int
	speed     func(level int) int
	threshold func(defence int) int
}

var profiles = map[Species]statProfile{
	SpeciesCharmander: {
		pokeType:  TypeFire,
		baseHP:    7,
		priority:  3,
		attack:    func(l int) int { return 6 + l },
		defence:   func(l int) int { return 4 },
		speed:     func(l int) int { return 7 + l },
		threshold: func(d int) int { return d },
	},
	SpeciesBulbasaur: {
		pokeType:  TypeGrass,
		baseHP:    9,
		priority:  2,
		attack:    func(l int) int { return 5 },
		defence:   func(l int) int { return 5 },
		speed:     func(l int) int { return 7 + l/2 },
		threshold: func(d int) int { return d + 5 },
	},
	SpeciesSquirtle: {
		pokeType:  TypeWater,
		baseHP:    8,
		priority:  1,
		attack:    func(l int) int { return 4 + l/2 },
		defence:   func(l int) int { return 6 + l },
		speed:     func(l int) int { return 7 },
		threshold: func(d int) int { return 2 * d },
	},
	SpeciesGlitchmon: {
		pokeType: TypeBase,
		// Mean of the three base species hit points.
		baseHP:    8,
		priority:  0,
		attack:    func(l int) int { return 2 * l },
		defence:   func(l int) int { return 2 * l },
		speed:     func(l int) int { return 2 * l },
		threshold: func(d int) int { return d },
	},
}
