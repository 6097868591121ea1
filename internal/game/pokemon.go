package game

import (
	"fmt"
	"math"
)

// Pokemon is the shared capability set every combatant exposes to the
// roster containers and the battle engine. The species set is closed:
// the only implementations are the three base species (NewPokemon) and
// the Glitchmon wildcard (NewGlitchmon).
type Pokemon interface {
	Name() string
	Species() Species
	PokeType() Type
	HP() int
	Level() int
	Attack() int
	Defence() int
	Speed() int

	// AttackDamage is the damage this creature deals to an opponent of
	// the given type, before the opponent's mitigation.
	AttackDamage(opponent Type) (int, error)
	// TakeDamage applies an incoming raw amount through this species'
	// mitigation rule and returns the hp actually lost.
	TakeDamage(raw int) int
	// LoseHP subtracts hp directly, bypassing mitigation.
	LoseHP(n int)
	LevelUp(n int) error
	IsFainted() bool

	// ComputeSortKey fixes the composite ordering key for the given
	// criterion; SortKey fails until it has been computed.
	ComputeSortKey(c Criterion) error
	SortKey() (int, error)

	fmt.Stringer
}

type basePokemon struct {
	species  Species
	pokeType Type
	hp       int
	level    int
	attack   int
	defence  int
	speed    int
	key      int
	hasKey   bool
	profile  statProfile
}

// NewPokemon constructs one of the three base species at the given level.
func NewPokemon(sp Species, level int) (Pokemon, error) {
	if sp == SpeciesGlitchmon {
		return nil, fmt.Errorf("%w: %s must be constructed as a wildcard reserve", ErrConfiguration, sp)
	}
	bp, err := newBasePokemon(sp, level)
	if err != nil {
		return nil, err
	}
	return bp, nil
}

func newBasePokemon(sp Species, level int) (*basePokemon, error) {
	profile, ok := profiles[sp]
	if !ok {
		return nil, fmt.Errorf("%w: unknown species %q", ErrConfiguration, sp)
	}
	if level < 1 {
		return nil, fmt.Errorf("%w: level must be at least 1, got %d", ErrConfiguration, level)
	}
	if profile.baseHP <= 0 {
		return nil, fmt.Errorf("%w: species %s has non-positive hp %d", ErrConfiguration, sp, profile.baseHP)
	}
	p := &basePokemon{
		species:  sp,
		pokeType: profile.pokeType,
		hp:       profile.baseHP,
		level:    level,
		profile:  profile,
	}
	p.refreshStats()
	return p, nil
}

// refreshStats recomputes the level-derived stats. hp is current health
// and is never touched here.
func (p *basePokemon) refreshStats() {
	p.attack = p.profile.attack(p.level)
	p.defence = p.profile.defence(p.level)
	p.speed = p.profile.speed(p.level)
}

func (p *basePokemon) Name() string     { return string(p.species) }
func (p *basePokemon) Species() Species { return p.species }
func (p *basePokemon) PokeType() Type   { return p.pokeType }
func (p *basePokemon) HP() int          { return p.hp }
func (p *basePokemon) Level() int       { return p.level }
func (p *basePokemon) Attack() int      { return p.attack }
func (p *basePokemon) Defence() int     { return p.defence }
func (p *basePokemon) Speed() int       { return p.speed }

func (p *basePokemon) AttackDamage(opponent Type) (int, error) {
	mult, err := Effectiveness(p.pokeType, opponent)
	if err != nil {
		return 0, err
	}
	// Ties-to-even so a 0.5 multiplier on an odd attack stat rounds the
	// way the reference behavior does (7 * 0.5 -> 4, 9 * 0.5 -> 4).
	return int(math.RoundToEven(float64(p.attack) * mult)), nil
}

func (p *basePokemon) TakeDamage(raw int) int {
	applied := raw
	if raw <= p.profile.threshold(p.defence) {
		applied = raw / 2
	}
	p.LoseHP(applied)
	return applied
}

func (p *basePokemon) LoseHP(n int) {
	p.hp -= n
	if p.hp < 0 {
		p.hp = 0
	}
}

func (p *basePokemon) LevelUp(n int) error {
	if n < 1 {
		return fmt.Errorf("%w: level increase must be positive, got %d", ErrConfiguration, n)
	}
	p.level += n
	p.refreshStats()
	return nil
}

func (p *basePokemon) IsFainted() bool { return p.hp <= 0 }

func (p *basePokemon) ComputeSortKey(c Criterion) error {
	var primary int
	switch c {
	case CriterionLevel:
		primary = p.level
	case CriterionHP:
		primary = p.hp
	case CriterionAttack:
		// Measured against the neutral type so the key reflects raw
		// attack strength, not a matchup.
		dmg, err := p.AttackDamage(TypeBase)
		if err != nil {
			return err
		}
		primary = dmg
	case CriterionDefence:
		primary = p.defence
	case CriterionSpeed:
		primary = p.speed
	default:
		return fmt.Errorf("%w: invalid criterion %q", ErrConfiguration, c)
	}
	// Negated so an ascending container yields the largest primary value
	// first; species priority breaks ties deterministically.
	p.key = -(primary*10 + p.profile.priority)
	p.hasKey = true
	return nil
}

func (p *basePokemon) SortKey() (int, error) {
	if !p.hasKey {
		return 0, fmt.Errorf("%w: sort key has not been computed", ErrConfiguration)
	}
	return p.key, nil
}

func (p *basePokemon) String() string {
	return fmt.Sprintf("%s's HP = %d and level = %d", p.Name(), p.hp, p.level)
}
