package tournament

// Player wraps one entrant with its cumulative tournament record. A
// Player lives from tournament setup to teardown; its statistics are
// only ever mutated on the orchestrator goroutine, after the round
// barrier.
type Player struct {
	Entrant Entrant

	Wins   int
	Losses int
	Draws  int
	Points int

	Eliminated bool

	// Buchholz is the Swiss tie-breaker: the sum of all faced
	// opponents' match-scores. Computed once after the last round.
	Buchholz float64

	opponents map[string]struct{}
	history   []*MatchResult
}

func newPlayer(e Entrant) *Player {
	return &Player{
		Entrant:   e,
		opponents: make(map[string]struct{}),
	}
}

// Name returns the entrant's name, the player's identity within the
// tournament.
func (p *Player) Name() string { return p.Entrant.Name }

// MatchScore is the Swiss pairing score: one point per match win, half
// a point per drawn match.
func (p *Player) MatchScore() float64 {
	return float64(p.Wins) + 0.5*float64(p.Draws)
}

func (p *Player) addOpponent(name string) {
	p.opponents[name] = struct{}{}
}

func (p *Player) hasFaced(name string) bool {
	_, ok := p.opponents[name]
	return ok
}

// Pairing is an explicit record of two players scheduled to meet.
type Pairing struct {
	A *Player
	B *Player
}

// winnerLoser splits the pairing by the match outcome. Entrant names
// are unique within a tournament, so the winner name identifies a
// side unambiguously.
func (p Pairing) winnerLoser(res *MatchResult) (winner, loser *Player) {
	if res.Winner == p.B.Name() {
		return p.B, p.A
	}
	return p.A, p.B
}
