package bots

import (
	"math/rand"

	"github.com/savaleriy/unoarena/engine"
)

// Greedy sheds the most expensive legal card first, minimizing the
// points left in hand if the round ends by forced scoring.
type Greedy struct {
	base
}

// NewGreedy creates a Greedy agent.
func NewGreedy(name string, rng *rand.Rand) *Greedy {
	return &Greedy{base{name: name, rng: rng}}
}

func (a *Greedy) DecideAction() engine.Action {
	if len(a.view.Legal) == 0 {
		return engine.DrawCard()
	}
	best := a.view.Legal[0]
	for _, c := range a.view.Legal[1:] {
		if c.Points() > best.Points() {
			best = c
		}
	}
	return engine.PlayCard(best)
}

func (a *Greedy) ChooseColor(engine.Card) engine.Color {
	return a.mostCommonColor()
}

func (a *Greedy) ShouldPlayDrawn(engine.Card) bool { return true }
