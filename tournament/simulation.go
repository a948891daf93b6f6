package tournament

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/sirupsen/logrus"

	"github.com/savaleriy/unoarena/engine"
)

// SimulationOptions configures one batch of games.
type SimulationOptions struct {
	Games  int // games in the batch; 0 = 100
	Seed   int64
	Config engine.Config
	Logger logrus.FieldLogger
}

// SimulationResult aggregates a batch of independent games between one
// fixed roster of entrants.
type SimulationResult struct {
	Games          int
	Wins           map[string]int
	TotalTurns     int
	MinTurns       int
	MaxTurns       int
	ExhaustedGames int
}

// AvgTurns returns the mean game length of the batch.
func (r *SimulationResult) AvgTurns() float64 {
	if r.Games == 0 {
		return 0
	}
	return float64(r.TotalTurns) / float64(r.Games)
}

// RunSimulation plays a batch of independent games between the same
// roster of two or more entrants and aggregates per-player win counts
// and turn statistics. Every game gets a fresh engine and fresh agent
// instances with their own rng streams, so no per-game state leaks
// between games. RunMatch builds its two-player batches on this.
func RunSimulation(ctx context.Context, entrants []Entrant, opts SimulationOptions) (*SimulationResult, error) {
	if len(entrants) < 2 {
		return nil, ErrTooFewEntrants
	}
	if opts.Games <= 0 {
		opts.Games = 100
	}
	log := opts.Logger
	if log == nil {
		log = logrus.StandardLogger()
	}

	rng := rand.New(rand.NewSource(opts.Seed))
	res := &SimulationResult{
		Games: opts.Games,
		Wins:  make(map[string]int, len(entrants)),
	}
	for _, e := range entrants {
		res.Wins[e.Name] = 0
	}

	for i := 0; i < opts.Games; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		game := engine.NewGame(opts.Config, rand.New(rand.NewSource(rng.Int63())), log)
		for _, e := range entrants {
			if err := game.AddAgent(e.Factory(rand.New(rand.NewSource(rng.Int63())))); err != nil {
				return nil, fmt.Errorf("seating %s: %w", e.Name, err)
			}
		}

		outcome, err := game.Run()
		if err != nil {
			return nil, fmt.Errorf("game %d: %w", i+1, err)
		}

		res.Wins[entrants[outcome.Winner].Name]++
		res.TotalTurns += outcome.Turns
		if i == 0 || outcome.Turns < res.MinTurns {
			res.MinTurns = outcome.Turns
		}
		if outcome.Turns > res.MaxTurns {
			res.MaxTurns = outcome.Turns
		}
		if outcome.Exhausted {
			res.ExhaustedGames++
		}
	}

	log.WithFields(logrus.Fields{
		"players":   len(entrants),
		"games":     res.Games,
		"avg_turns": res.AvgTurns(),
		"exhausted": res.ExhaustedGames,
	}).Debug("simulation finished")
	return res, nil
}
