// Package bots provides baseline agent strategies for the engine:
// enough personalities to exercise matches and tournaments without any
// external strategy code.
package bots

import (
	"fmt"
	"math/rand"

	"github.com/savaleriy/unoarena/engine"
)

// Kinds lists the strategy names understood by New.
var Kinds = []string{"random", "greedy", "wildlast"}

// New returns a factory producing fresh agents of the named strategy.
func New(kind, name string) (engine.AgentFactory, error) {
	switch kind {
	case "random":
		return func(rng *rand.Rand) engine.Agent { return NewRandom(name, rng) }, nil
	case "greedy":
		return func(rng *rand.Rand) engine.Agent { return NewGreedy(name, rng) }, nil
	case "wildlast":
		return func(rng *rand.Rand) engine.Agent { return NewWildLast(name, rng) }, nil
	default:
		return nil, fmt.Errorf("bots: unknown strategy %q", kind)
	}
}

// base carries the state shared by every bundled strategy: the last
// observed view and a per-game rng.
type base struct {
	name string
	rng  *rand.Rand
	view engine.TurnView
}

func (b *base) Name() string                 { return b.name }
func (b *base) Observe(view engine.TurnView) { b.view = view }
func (b *base) DeclareLowCards() bool        { return true }

// mostCommonColor returns the dominant non-wild color in the observed
// hand, falling back to a random color for all-wild hands.
func (b *base) mostCommonColor() engine.Color {
	var counts [4]int
	for _, c := range b.view.Hand {
		if c.Color != engine.ColorWild {
			counts[c.Color]++
		}
	}
	best, bestCount := -1, 0
	for i, n := range counts {
		if n > bestCount {
			best, bestCount = i, n
		}
	}
	if best < 0 {
		return engine.Colors[b.rng.Intn(len(engine.Colors))]
	}
	return engine.Color(best)
}
