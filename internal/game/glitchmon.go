package game

import (
	"fmt"
	"math/rand"
)

// DefaultSurgeChance is the probability a Glitchmon surge fires on each
// incoming attack.
const DefaultSurgeChance = 0.25

// Glitchmon is the reserve wildcard. Its stats scale multiplicatively with
// level, its attacks ignore type effectiveness, and incoming attacks may
// trigger a surge that restores hp, gains a level, or both.
type Glitchmon struct {
	*basePokemon
	rng         *rand.Rand
	surgeChance float64
}

// NewGlitchmon constructs a level-1 wildcard. The random source drives the
// surge procs and must be supplied by the owner of the match so runs are
// reproducible under a seeded generator.
func NewGlitchmon(rng *rand.Rand, surgeChance float64) (*Glitchmon, error) {
	if rng == nil {
		return nil, fmt.Errorf("%w: glitchmon requires a random source", ErrConfiguration)
	}
	if surgeChance < 0 || surgeChance > 1 {
		return nil, fmt.Errorf("%w: surge chance must be within [0,1], got %v", ErrConfiguration, surgeChance)
	}
	bp, err := newBasePokemon(SpeciesGlitchmon, 1)
	if err != nil {
		return nil, err
	}
	return &Glitchmon{basePokemon: bp, rng: rng, surgeChance: surgeChance}, nil
}

// AttackDamage ignores the opponent's type and always deals the raw attack
// stat.
func (g *Glitchmon) AttackDamage(opponent Type) (int, error) {
	return g.attack, nil
}

// TakeDamage rolls the surge proc before mitigation: with equal thirds the
// surge restores 1 hp, gains 1 level, or both.
func (g *Glitchmon) TakeDamage(raw int) int {
	if g.rng.Float64() < g.surgeChance {
		switch g.rng.Intn(3) {
		case 0:
			g.hp++
		case 1:
			g.level++
			g.refreshStats()
		default:
			g.hp++
			g.level++
			g.refreshStats()
		}
	}
	return g.basePokemon.TakeDamage(raw)
}
