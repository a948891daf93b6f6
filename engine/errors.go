package engine

import "errors"

// Setup and format failures are returned to the caller before any game
// starts. Exhaustion errors are recovered inside the engine by forced
// scoring and never escape a running game.
var (
	// ErrTooFewAgents is returned when a game is initialized with
	// fewer than two agents.
	ErrTooFewAgents = errors.New("engine: need at least 2 agents")

	// ErrTooManyAgents is returned when adding an agent would exceed
	// MaxAgents.
	ErrTooManyAgents = errors.New("engine: maximum number of agents reached")

	// ErrGameInProgress is returned when agents are added or the game
	// is re-initialized after play has started.
	ErrGameInProgress = errors.New("engine: game already in progress")

	// ErrDeckEmpty is returned by Deck.Draw when no card remains.
	ErrDeckEmpty = errors.New("engine: deck is empty")

	// ErrCannotReshuffle is returned when the discard pile holds at
	// most one card, so no fresh card can be produced anywhere.
	ErrCannotReshuffle = errors.New("engine: not enough discarded cards to reshuffle")
)
