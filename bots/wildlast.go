package bots

import (
	"math/rand"

	"github.com/savaleriy/unoarena/engine"
)

// WildLast hoards its wilds: it plays the highest non-wild legal card
// while one exists and only spends a wild when nothing else is legal.
// Drawn wilds are likewise kept unless the hand is nearly empty.
type WildLast struct {
	base
}

// NewWildLast creates a WildLast agent.
func NewWildLast(name string, rng *rand.Rand) *WildLast {
	return &WildLast{base{name: name, rng: rng}}
}

func (a *WildLast) DecideAction() engine.Action {
	if len(a.view.Legal) == 0 {
		return engine.DrawCard()
	}
	var best engine.Card
	found := false
	for _, c := range a.view.Legal {
		if c.IsWild() {
			continue
		}
		if !found || c.Points() > best.Points() {
			best, found = c, true
		}
	}
	if found {
		return engine.PlayCard(best)
	}
	return engine.PlayCard(a.view.Legal[0])
}

func (a *WildLast) ChooseColor(engine.Card) engine.Color {
	return a.mostCommonColor()
}

func (a *WildLast) ShouldPlayDrawn(drawn engine.Card) bool {
	return !drawn.IsWild() || len(a.view.Hand) <= 2
}
