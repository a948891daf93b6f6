package engine

import "math/rand"

// TurnView is the immutable snapshot handed to an agent before it
// decides. Legal is always a subset of Hand; every card in Legal
// satisfies CanPlayOn(Top, Active) by construction.
type TurnView struct {
	Hand      []Card
	Legal     []Card
	Top       Card
	Active    Color
	Direction Direction
	Opponents []int // hand sizes of the other seats, in turn order
}

// Action is an agent's decision for one turn: either draw a card, or
// play a specific held card. NewColor is consulted only when Card is a
// wild; leaving it ColorWild delegates the choice to ChooseColor.
type Action struct {
	Draw     bool
	Card     Card
	NewColor Color
}

// PlayCard builds a play action.
func PlayCard(c Card) Action { return Action{Card: c, NewColor: ColorWild} }

// DrawCard builds a draw action.
func DrawCard() Action { return Action{Draw: true} }

// Agent is the capability set a strategy must implement. The engine
// owns the hand and all game state; an agent only observes and decides.
// Implementations need not be safe for concurrent use; each agent
// instance belongs to exactly one game.
type Agent interface {
	// Name identifies the agent in results and standings.
	Name() string

	// Observe is called once per turn, before DecideAction.
	Observe(view TurnView)

	// DecideAction returns the agent's move for the observed turn.
	DecideAction() Action

	// ChooseColor picks the active color after playing the given wild.
	ChooseColor(card Card) Color

	// DeclareLowCards reports whether the agent announces being down
	// to one card. Informational only; no penalty is enforced.
	DeclareLowCards() bool

	// ShouldPlayDrawn decides whether a just-drawn playable card is
	// played immediately or kept.
	ShouldPlayDrawn(drawn Card) bool
}

// AgentFactory produces a fresh Agent for one game, so per-game state
// never leaks between games of a match. The rng is seeded
// independently for every game.
type AgentFactory func(rng *rand.Rand) Agent
