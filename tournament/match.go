package tournament

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/savaleriy/unoarena/engine"
)

// Entrant names one competitor and knows how to mint fresh agent
// instances for it, one per game.
type Entrant struct {
	Name    string
	Factory engine.AgentFactory
}

// MatchResult is the immutable outcome of one match: a fixed batch of
// independent games between two entrants. Winner is always set; Drawn
// marks matches whose winner was chosen by the uniform tie-break and
// which standings record as a draw.
type MatchResult struct {
	ID      uuid.UUID
	PlayerA string
	PlayerB string
	Games   int

	WinsA          int
	WinsB          int
	Winner         string
	Drawn          bool
	TotalTurns     int
	ExhaustedGames int
}

func (r *MatchResult) String() string {
	return fmt.Sprintf("%s vs %s: %s wins (%d-%d)", r.PlayerA, r.PlayerB, r.Winner, r.WinsA, r.WinsB)
}

// MatchOptions configures one match.
type MatchOptions struct {
	Games  int // games per match; 0 = 100
	Seed   int64
	Config engine.Config
	Logger logrus.FieldLogger
}

// RunMatch plays the full batch of games between two entrants as a
// two-player simulation. Exactly one match winner is declared:
// strictly more game wins take the match, and an even split is broken
// uniformly at random with Drawn set.
func RunMatch(ctx context.Context, a, b Entrant, opts MatchOptions) (*MatchResult, error) {
	if opts.Games <= 0 {
		opts.Games = 100
	}
	log := opts.Logger
	if log == nil {
		log = logrus.StandardLogger()
	}

	rng := rand.New(rand.NewSource(opts.Seed))
	res := &MatchResult{
		ID:      uuid.New(),
		PlayerA: a.Name,
		PlayerB: b.Name,
		Games:   opts.Games,
	}
	log = log.WithField("match_id", res.ID)

	sim, err := RunSimulation(ctx, []Entrant{a, b}, SimulationOptions{
		Games:  opts.Games,
		Seed:   rng.Int63(),
		Config: opts.Config,
		Logger: log,
	})
	if err != nil {
		return nil, fmt.Errorf("%s vs %s: %w", a.Name, b.Name, err)
	}
	res.WinsA = sim.Wins[a.Name]
	res.WinsB = sim.Wins[b.Name]
	res.TotalTurns = sim.TotalTurns
	res.ExhaustedGames = sim.ExhaustedGames

	switch {
	case res.WinsA > res.WinsB:
		res.Winner = a.Name
	case res.WinsB > res.WinsA:
		res.Winner = b.Name
	default:
		res.Drawn = true
		if rng.Intn(2) == 0 {
			res.Winner = a.Name
		} else {
			res.Winner = b.Name
		}
	}

	log.WithFields(logrus.Fields{
		"player_a": a.Name,
		"player_b": b.Name,
		"wins_a":   res.WinsA,
		"wins_b":   res.WinsB,
		"drawn":    res.Drawn,
		"winner":   res.Winner,
	}).Debug("match finished")
	return res, nil
}
