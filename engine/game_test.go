package engine

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testAgent is a scripted agent for exercising the turn machine.
type testAgent struct {
	name      string
	view      TurnView
	decide    func(view TurnView) Action
	keepDrawn bool
}

func (a *testAgent) Name() string              { return a.name }
func (a *testAgent) Observe(view TurnView)     { a.view = view }
func (a *testAgent) DecideAction() Action      { return a.decide(a.view) }
func (a *testAgent) ChooseColor(Card) Color    { return ColorBlue }
func (a *testAgent) DeclareLowCards() bool     { return false }
func (a *testAgent) ShouldPlayDrawn(Card) bool { return !a.keepDrawn }

func firstLegal(view TurnView) Action {
	if len(view.Legal) == 0 {
		return DrawCard()
	}
	return PlayCard(view.Legal[0])
}

func drawOnly(TurnView) Action { return DrawCard() }

func newTestGame(t *testing.T, cfg Config, seed int64, agents ...*testAgent) *Game {
	t.Helper()
	g := NewGame(cfg, rand.New(rand.NewSource(seed)), nil)
	for _, a := range agents {
		require.NoError(t, g.AddAgent(a))
	}
	return g
}

func TestInitializeRequiresTwoAgents(t *testing.T) {
	g := newTestGame(t, Config{}, 1, &testAgent{name: "solo", decide: firstLegal})
	assert.ErrorIs(t, g.Initialize(), ErrTooFewAgents)
}

func TestSeatLimitAndLifecycleErrors(t *testing.T) {
	g := newTestGame(t, Config{MaxAgents: 2}, 1,
		&testAgent{name: "a", decide: firstLegal},
		&testAgent{name: "b", decide: firstLegal},
	)
	assert.ErrorIs(t, g.AddAgent(&testAgent{name: "c", decide: firstLegal}), ErrTooManyAgents)

	require.NoError(t, g.Initialize())
	assert.ErrorIs(t, g.Initialize(), ErrGameInProgress)
	assert.ErrorIs(t, g.AddAgent(&testAgent{name: "d", decide: firstLegal}), ErrGameInProgress)
}

func TestPlayTurnBeforeInitialize(t *testing.T) {
	g := newTestGame(t, Config{}, 1,
		&testAgent{name: "a", decide: firstLegal},
		&testAgent{name: "b", decide: firstLegal},
	)
	_, err := g.PlayTurn()
	assert.ErrorIs(t, err, ErrGameInProgress)
}

func TestCardConservation(t *testing.T) {
	g := newTestGame(t, Config{}, 7,
		&testAgent{name: "a", decide: firstLegal},
		&testAgent{name: "b", decide: firstLegal},
		&testAgent{name: "c", decide: firstLegal},
	)
	require.NoError(t, g.Initialize())
	require.Equal(t, DeckSize, g.CardCount())

	for {
		outcome, err := g.PlayTurn()
		require.NoError(t, err)
		require.Equal(t, DeckSize, g.CardCount(), "turn %d", g.Turns())
		if outcome == RoundOver {
			break
		}
	}
}

func TestLegalViewInvariant(t *testing.T) {
	checked := func(view TurnView) Action {
		for _, c := range view.Legal {
			assert.True(t, c.CanPlayOn(view.Top, view.Active),
				"%v offered as legal on %v (%v active)", c, view.Top, view.Active)
		}
		return firstLegal(view)
	}
	g := newTestGame(t, Config{}, 23,
		&testAgent{name: "a", decide: checked},
		&testAgent{name: "b", decide: checked},
	)
	_, err := g.Run()
	require.NoError(t, err)
}

func TestGameTerminatesWithWinner(t *testing.T) {
	g := newTestGame(t, Config{}, 11,
		&testAgent{name: "a", decide: firstLegal},
		&testAgent{name: "b", decide: firstLegal},
	)
	res, err := g.Run()
	require.NoError(t, err)

	assert.Equal(t, StateConcluded, g.State())
	assert.GreaterOrEqual(t, res.Winner, 0)
	assert.Less(t, res.Winner, 2)
	assert.NotEmpty(t, res.WinnerName)
	assert.LessOrEqual(t, res.Turns, 1000)
	assert.Len(t, res.Scores, 2)
	if !res.Exhausted {
		assert.Zero(t, res.Scores[res.Winner], "empty hand scores zero")
	}
}

func TestIllegalPlayForcesDraw(t *testing.T) {
	// A red wild does not exist in the deck, so the play is always an
	// unheld card and must degrade to a draw.
	illegal := func(TurnView) Action {
		return PlayCard(Card{Color: ColorRed, Label: LabelWild})
	}
	g := newTestGame(t, Config{}, 3,
		&testAgent{name: "a", decide: illegal, keepDrawn: true},
		&testAgent{name: "b", decide: illegal, keepDrawn: true},
	)
	require.NoError(t, g.Initialize())

	seat := g.CurrentSeat()
	before := g.HandLen(seat)
	outcome, err := g.PlayTurn()
	require.NoError(t, err)
	assert.Equal(t, Continue, outcome)
	assert.Equal(t, before+1, g.HandLen(seat))
}

func TestMaxTurnsForcesScoring(t *testing.T) {
	g := newTestGame(t, Config{MaxTurns: 10}, 5,
		&testAgent{name: "a", decide: drawOnly, keepDrawn: true},
		&testAgent{name: "b", decide: drawOnly, keepDrawn: true},
	)
	res, err := g.Run()
	require.NoError(t, err)

	assert.True(t, res.Exhausted)
	assert.Equal(t, 10, res.Turns)
	assert.GreaterOrEqual(t, res.Winner, 0)

	// Forced scoring awards the seat with the cheapest hand.
	loser := 1 - res.Winner
	assert.LessOrEqual(t, res.Scores[res.Winner], res.Scores[loser])
}

func TestExhaustionWhenReshuffleImpossible(t *testing.T) {
	// Nobody ever discards, so the single flipped card is all the
	// discard pile ever holds and the deck cannot be replenished.
	g := newTestGame(t, Config{}, 9,
		&testAgent{name: "a", decide: drawOnly, keepDrawn: true},
		&testAgent{name: "b", decide: drawOnly, keepDrawn: true},
	)
	res, err := g.Run()
	require.NoError(t, err)

	assert.True(t, res.Exhausted)
	assert.Equal(t, 1, g.DiscardLen())
	assert.Equal(t, 0, g.DeckLen())
	assert.Less(t, res.Turns, 100, "deck runs out long before the ceiling")
}

func TestDrawTwoPenaltyForfeitsTurn(t *testing.T) {
	g := newTestGame(t, Config{}, 13,
		&testAgent{name: "a", decide: firstLegal},
		&testAgent{name: "b", decide: firstLegal},
	)
	require.NoError(t, g.Initialize())

	seat := g.CurrentSeat()
	g.hands[seat] = []Card{
		{Color: g.active, Label: LabelDrawTwo},
		{Color: g.active, Label: LabelOne},
	}
	victim := g.seatAt(seat, 1)
	victimBefore := g.HandLen(victim)

	_, err := g.PlayTurn()
	require.NoError(t, err)
	assert.Equal(t, 2, g.PendingDraw())
	assert.Equal(t, victim, g.CurrentSeat())

	_, err = g.PlayTurn()
	require.NoError(t, err)
	assert.Equal(t, victimBefore+2, g.HandLen(victim), "penalty cards drawn")
	assert.Equal(t, seat, g.CurrentSeat(), "penalized turn forfeited")
	assert.Zero(t, g.PendingDraw())
}

func TestSkipAndReverse(t *testing.T) {
	g := newTestGame(t, Config{}, 17,
		&testAgent{name: "a", decide: firstLegal},
		&testAgent{name: "b", decide: firstLegal},
		&testAgent{name: "c", decide: firstLegal},
	)
	require.NoError(t, g.Initialize())

	seat := g.CurrentSeat()
	g.hands[seat] = []Card{
		{Color: g.active, Label: LabelSkip},
		{Color: g.active, Label: LabelTwo},
	}
	_, err := g.PlayTurn()
	require.NoError(t, err)
	assert.Equal(t, g.seatAt(seat, 2), g.CurrentSeat(), "skip jumps one seat")

	seat = g.CurrentSeat()
	g.hands[seat] = []Card{
		{Color: g.active, Label: LabelReverse},
		{Color: g.active, Label: LabelThree},
	}
	_, err = g.PlayTurn()
	require.NoError(t, err)
	assert.Equal(t, CounterClockwise, g.TurnDirection())
}

func TestWildSetsActiveColor(t *testing.T) {
	g := newTestGame(t, Config{}, 19,
		&testAgent{name: "a", decide: firstLegal},
		&testAgent{name: "b", decide: firstLegal},
	)
	require.NoError(t, g.Initialize())

	seat := g.CurrentSeat()
	g.hands[seat] = []Card{
		{Color: ColorWild, Label: LabelWild},
		{Color: ColorRed, Label: LabelFour},
	}
	_, err := g.PlayTurn()
	require.NoError(t, err)
	assert.Equal(t, ColorBlue, g.ActiveColor(), "color comes from ChooseColor")
}

func TestDeterministicReplay(t *testing.T) {
	run := func() *GameResult {
		g := newTestGame(t, Config{}, 42,
			&testAgent{name: "a", decide: firstLegal},
			&testAgent{name: "b", decide: firstLegal},
		)
		res, err := g.Run()
		require.NoError(t, err)
		return res
	}
	first, second := run(), run()
	assert.Equal(t, first.Winner, second.Winner)
	assert.Equal(t, first.Turns, second.Turns)
	assert.Equal(t, first.Scores, second.Scores)
}
