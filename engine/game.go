package engine

import (
	"fmt"
	"math/rand"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// State is the lifecycle phase of a game.
type State uint8

const (
	StateAwaitingPlayers State = iota
	StateDealing
	StateInProgress
	StateRoundOver
	StateConcluded
)

func (s State) String() string {
	switch s {
	case StateAwaitingPlayers:
		return "awaiting_players"
	case StateDealing:
		return "dealing"
	case StateInProgress:
		return "in_progress"
	case StateRoundOver:
		return "round_over"
	case StateConcluded:
		return "concluded"
	}
	return fmt.Sprintf("state(%d)", uint8(s))
}

// Direction is the turn order: +1 clockwise, -1 counter-clockwise.
type Direction int8

const (
	Clockwise        Direction = 1
	CounterClockwise Direction = -1
)

// Outcome is the result of playing one turn.
type Outcome uint8

const (
	Continue Outcome = iota
	RoundOver
)

// Config holds the configurable game rule settings.
type Config struct {
	CardsPerHand int // initial deal size; 0 = 7
	MaxAgents    int // seat limit; 0 = 10
	MaxTurns     int // turn ceiling before forced scoring; 0 = 1000
}

// DefaultConfig returns the standard UNO settings.
func DefaultConfig() Config {
	return Config{
		CardsPerHand: 7,
		MaxAgents:    10,
		MaxTurns:     1000,
	}
}

func (c Config) withDefaults() Config {
	if c.CardsPerHand == 0 {
		c.CardsPerHand = 7
	}
	if c.MaxAgents == 0 {
		c.MaxAgents = 10
	}
	if c.MaxTurns == 0 {
		c.MaxTurns = 1000
	}
	return c
}

// Game is the turn state machine for a single round of UNO. It owns
// the deck, the discard pile, and every hand; agents only observe and
// decide. A Game is not safe for concurrent use and is discarded once
// its outcome has been recorded.
type Game struct {
	ID uuid.UUID

	cfg Config
	rng *rand.Rand
	log logrus.FieldLogger

	agents  []Agent
	hands   [][]Card
	deck    *Deck
	discard DiscardPile

	state       State
	current     int
	direction   Direction
	active      Color
	turns       int
	pendingDraw int

	winner    int
	exhausted bool
	scores    []int
}

// NewGame creates an empty game. A nil logger falls back to the
// logrus standard logger.
func NewGame(cfg Config, rng *rand.Rand, log logrus.FieldLogger) *Game {
	if log == nil {
		log = logrus.StandardLogger()
	}
	id := uuid.New()
	return &Game{
		ID:        id,
		cfg:       cfg.withDefaults(),
		rng:       rng,
		log:       log.WithField("game_id", id),
		state:     StateAwaitingPlayers,
		direction: Clockwise,
		winner:    -1,
	}
}

// AddAgent seats an agent. Agents can only be added before Initialize.
func (g *Game) AddAgent(a Agent) error {
	if g.state != StateAwaitingPlayers {
		return ErrGameInProgress
	}
	if len(g.agents) >= g.cfg.MaxAgents {
		return ErrTooManyAgents
	}
	g.agents = append(g.agents, a)
	g.hands = append(g.hands, nil)
	g.scores = append(g.scores, 0)
	return nil
}

// Initialize deals every seat, flips a plain number card to start the
// discard pile, and picks a random starting seat.
func (g *Game) Initialize() error {
	if g.state != StateAwaitingPlayers {
		return ErrGameInProgress
	}
	if len(g.agents) < 2 {
		return ErrTooFewAgents
	}

	g.state = StateDealing
	g.deck = NewStandardDeck(g.rng)
	for i := range g.agents {
		hand, err := g.deck.DrawN(g.cfg.CardsPerHand)
		if err != nil {
			return fmt.Errorf("dealing %d cards to seat %d: %w", g.cfg.CardsPerHand, i, err)
		}
		g.hands[i] = hand
	}

	if err := g.flipStartCard(); err != nil {
		return err
	}

	g.current = g.rng.Intn(len(g.agents))
	g.direction = Clockwise
	g.turns = 0
	g.state = StateInProgress
	return nil
}

// flipStartCard draws until a non-wild, non-action card comes up,
// shuffling disallowed flips back into the deck.
func (g *Game) flipStartCard() error {
	for {
		c, err := g.deck.Draw()
		if err != nil {
			return fmt.Errorf("flipping start card: %w", err)
		}
		if c.IsAction() {
			g.deck.Add(c)
			g.deck.Shuffle()
			continue
		}
		g.discard.Push(c)
		g.active = c.Color
		return nil
	}
}

// PlayTurn advances the game by one turn. Illegal plays degrade to a
// forced draw, and a deck that cannot yield a fresh card ends the
// round with forced scoring; neither surfaces as an error. The only
// returned error is a call before Initialize.
func (g *Game) PlayTurn() (Outcome, error) {
	if g.state != StateInProgress {
		if g.state == StateRoundOver || g.state == StateConcluded {
			return RoundOver, nil
		}
		return RoundOver, ErrGameInProgress
	}
	if g.turns >= g.cfg.MaxTurns {
		g.endByExhaustion()
		return RoundOver, nil
	}
	g.turns++

	seat := g.current
	agent := g.agents[seat]

	// A pending draw-two/draw-four is served before anything else and
	// forfeits the penalized player's turn.
	if g.pendingDraw > 0 {
		n := g.pendingDraw
		g.pendingDraw = 0
		for i := 0; i < n; i++ {
			if _, err := g.drawInto(seat); err != nil {
				g.endByExhaustion()
				return RoundOver, nil
			}
		}
		g.log.WithFields(logrus.Fields{"seat": seat, "cards": n}).
			Debug("served pending draw, turn forfeited")
		g.advance(1)
		return Continue, nil
	}

	top, _ := g.discard.Top()
	legal := g.legalCards(seat)
	agent.Observe(g.view(seat, top, legal))
	action := agent.DecideAction()

	if action.Draw {
		drawn, err := g.drawInto(seat)
		if err != nil {
			g.endByExhaustion()
			return RoundOver, nil
		}
		if drawn.CanPlayOn(top, g.active) && agent.ShouldPlayDrawn(drawn) {
			g.playCard(seat, drawn, ColorWild)
		}
	} else if !g.holds(seat, action.Card) || !action.Card.CanPlayOn(top, g.active) {
		g.log.WithFields(logrus.Fields{
			"seat":  seat,
			"agent": agent.Name(),
			"card":  action.Card.String(),
		}).Warn("illegal play attempt, forcing draw")
		if _, err := g.drawInto(seat); err != nil {
			g.endByExhaustion()
			return RoundOver, nil
		}
	} else {
		g.playCard(seat, action.Card, action.NewColor)
	}

	if len(g.hands[seat]) == 1 && agent.DeclareLowCards() {
		g.log.WithFields(logrus.Fields{"seat": seat, "agent": agent.Name()}).
			Debug("agent declared low cards")
	}

	if len(g.hands[seat]) == 0 {
		g.endWithWinner(seat)
		return RoundOver, nil
	}

	g.advance(1)
	return Continue, nil
}

// playCard moves a held card to the discard pile, updates the active
// color, and records the card's effect. The card must already be
// validated as held and legal.
func (g *Game) playCard(seat int, c Card, chosen Color) {
	g.removeFromHand(seat, c)
	g.discard.Push(c)

	if c.IsWild() {
		if chosen >= ColorWild {
			chosen = g.agents[seat].ChooseColor(c)
		}
		if chosen >= ColorWild {
			// Agent failed to pick; choose for it.
			chosen = Colors[g.rng.Intn(len(Colors))]
			g.log.WithField("seat", seat).Warn("agent returned no color for wild, picking at random")
		}
		g.active = chosen
	} else {
		g.active = c.Color
	}

	switch c.Label {
	case LabelReverse:
		g.direction = -g.direction
	case LabelSkip:
		// Extra step now, normal step at end of turn: net one seat skipped.
		g.advance(1)
	case LabelDrawTwo:
		g.pendingDraw = 2
	case LabelWildDrawFour:
		g.pendingDraw = 4
	}
}

// drawInto pulls one card into a hand, reshuffling the discard pile
// when the deck is exhausted. ErrCannotReshuffle propagates when the
// discard pile cannot supply cards either.
func (g *Game) drawInto(seat int) (Card, error) {
	if g.deck.Empty() {
		if err := g.reshuffle(); err != nil {
			return Card{}, err
		}
	}
	c, err := g.deck.Draw()
	if err != nil {
		return Card{}, err
	}
	g.hands[seat] = append(g.hands[seat], c)
	return c, nil
}

// reshuffle moves all but the top discard back into the deck.
func (g *Game) reshuffle() error {
	cards, err := g.discard.TakeAllButTop()
	if err != nil {
		return err
	}
	g.deck.Add(cards...)
	g.deck.Shuffle()
	g.log.WithField("cards", len(cards)).Debug("reshuffled discard pile into deck")
	return nil
}

// legalCards returns the subset of a hand playable on the current top
// card under the active color.
func (g *Game) legalCards(seat int) []Card {
	top, ok := g.discard.Top()
	if !ok {
		return nil
	}
	var legal []Card
	for _, c := range g.hands[seat] {
		if c.CanPlayOn(top, g.active) {
			legal = append(legal, c)
		}
	}
	return legal
}

// view builds the immutable snapshot handed to the acting agent.
func (g *Game) view(seat int, top Card, legal []Card) TurnView {
	hand := make([]Card, len(g.hands[seat]))
	copy(hand, g.hands[seat])
	opponents := make([]int, 0, len(g.agents)-1)
	for i := 1; i < len(g.agents); i++ {
		opponents = append(opponents, len(g.hands[g.seatAt(seat, i)]))
	}
	return TurnView{
		Hand:      hand,
		Legal:     legal,
		Top:       top,
		Active:    g.active,
		Direction: g.direction,
		Opponents: opponents,
	}
}

// advance moves the turn pointer along the current direction.
func (g *Game) advance(steps int) {
	g.current = g.seatAt(g.current, steps)
}

// seatAt returns the seat the given number of steps from `from` along
// the current direction.
func (g *Game) seatAt(from, steps int) int {
	n := len(g.agents)
	s := (from + steps*int(g.direction)) % n
	if s < 0 {
		s += n
	}
	return s
}

func (g *Game) holds(seat int, c Card) bool {
	for _, h := range g.hands[seat] {
		if h == c {
			return true
		}
	}
	return false
}

// removeFromHand removes one instance of the card from the hand.
func (g *Game) removeFromHand(seat int, c Card) {
	hand := g.hands[seat]
	for i, h := range hand {
		if h == c {
			g.hands[seat] = append(hand[:i], hand[i+1:]...)
			return
		}
	}
}

// endWithWinner concludes the round with an empty-hand win.
func (g *Game) endWithWinner(seat int) {
	g.state = StateRoundOver
	g.winner = seat
	g.recordScores()
}

// endByExhaustion concludes the round by forced scoring: lowest hand
// points wins, ties broken by fewest cards, then uniformly at random.
func (g *Game) endByExhaustion() {
	g.state = StateRoundOver
	g.exhausted = true
	g.recordScores()

	best := []int{0}
	for seat := 1; seat < len(g.agents); seat++ {
		switch cmp := g.compareHands(seat, best[0]); {
		case cmp < 0:
			best = []int{seat}
		case cmp == 0:
			best = append(best, seat)
		}
	}
	g.winner = best[g.rng.Intn(len(best))]
	g.log.WithFields(logrus.Fields{
		"winner": g.winner,
		"turns":  g.turns,
	}).Debug("round ended by exhaustion")
}

// compareHands orders seats by (hand points, hand size) ascending.
func (g *Game) compareHands(a, b int) int {
	if g.scores[a] != g.scores[b] {
		return g.scores[a] - g.scores[b]
	}
	return len(g.hands[a]) - len(g.hands[b])
}

func (g *Game) recordScores() {
	for i := range g.hands {
		g.scores[i] = HandPoints(g.hands[i])
	}
}

// GameResult summarizes one finished game.
type GameResult struct {
	Winner     int
	WinnerName string
	Turns      int
	Exhausted  bool
	Scores     []int
}

// Run initializes the game if needed and plays it to completion.
func (g *Game) Run() (*GameResult, error) {
	if g.state == StateAwaitingPlayers {
		if err := g.Initialize(); err != nil {
			return nil, err
		}
	}
	for g.state == StateInProgress {
		if _, err := g.PlayTurn(); err != nil {
			return nil, err
		}
	}
	g.state = StateConcluded
	return g.Result(), nil
}

// Result returns the outcome of a finished round. It is meaningless
// before the game reaches RoundOver.
func (g *Game) Result() *GameResult {
	scores := make([]int, len(g.scores))
	copy(scores, g.scores)
	res := &GameResult{
		Winner:    g.winner,
		Turns:     g.turns,
		Exhausted: g.exhausted,
		Scores:    scores,
	}
	if g.winner >= 0 {
		res.WinnerName = g.agents[g.winner].Name()
	}
	return res
}

// Accessors used by callers and invariant tests.

func (g *Game) State() State             { return g.state }
func (g *Game) Turns() int               { return g.turns }
func (g *Game) Winner() int              { return g.winner }
func (g *Game) Exhausted() bool          { return g.exhausted }
func (g *Game) NumAgents() int           { return len(g.agents) }
func (g *Game) CurrentSeat() int         { return g.current }
func (g *Game) ActiveColor() Color       { return g.active }
func (g *Game) DeckLen() int             { return g.deck.Len() }
func (g *Game) DiscardLen() int          { return g.discard.Len() }
func (g *Game) HandLen(seat int) int     { return len(g.hands[seat]) }
func (g *Game) PendingDraw() int         { return g.pendingDraw }
func (g *Game) TurnDirection() Direction { return g.direction }

// CardCount returns deck + discard + all hands; constant for the
// lifetime of one game.
func (g *Game) CardCount() int {
	total := g.deck.Len() + g.discard.Len()
	for _, h := range g.hands {
		total += len(h)
	}
	return total
}
