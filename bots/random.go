package bots

import (
	"math/rand"

	"github.com/savaleriy/unoarena/engine"
)

// Random plays a uniformly random legal card, drawing only when it has
// to, and always plays a playable drawn card.
type Random struct {
	base
}

// NewRandom creates a Random agent.
func NewRandom(name string, rng *rand.Rand) *Random {
	return &Random{base{name: name, rng: rng}}
}

func (a *Random) DecideAction() engine.Action {
	if len(a.view.Legal) == 0 {
		return engine.DrawCard()
	}
	return engine.PlayCard(a.view.Legal[a.rng.Intn(len(a.view.Legal))])
}

func (a *Random) ChooseColor(engine.Card) engine.Color {
	return engine.Colors[a.rng.Intn(len(engine.Colors))]
}

func (a *Random) ShouldPlayDrawn(engine.Card) bool { return true }
