package tournament

import (
	"context"
	"sync"

	"github.com/sirupsen/logrus"
)

// matchTask carries one pairing to a worker, with a match seed drawn
// on the orchestrator goroutine so the master rng is never shared.
type matchTask struct {
	idx     int
	pairing Pairing
	seed    int64
}

type matchOutcome struct {
	idx int
	res *MatchResult
	err error
}

// playRound runs one batch of pairings on a worker pool, waits at the
// barrier for all matches to finish, then applies statistics serially.
// Matches of one batch are independent: each has its own rng stream
// and fresh agents, and no player appears twice. If the context is
// cancelled, the partial batch is discarded and nothing is scored.
// Round numbering belongs to the format drivers; double elimination
// plays two batches (a winners and a losers pass) per round.
func (t *Tournament) playRound(ctx context.Context, pairings []Pairing) ([]*MatchResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	t.status = StatusRoundInProgress
	if len(pairings) == 0 {
		return nil, nil
	}
	t.log.WithFields(logrus.Fields{
		"round":   t.rounds,
		"matches": len(pairings),
	}).Info("round starting")

	tasks := make(chan matchTask, len(pairings))
	outcomes := make(chan matchOutcome, len(pairings))

	workers := t.opts.Workers
	if workers > len(pairings) {
		workers = len(pairings)
	}
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for task := range tasks {
				res, err := RunMatch(ctx, task.pairing.A.Entrant, task.pairing.B.Entrant, MatchOptions{
					Games:  t.opts.GamesPerMatch,
					Seed:   task.seed,
					Config: t.opts.Engine,
					Logger: t.log,
				})
				outcomes <- matchOutcome{idx: task.idx, res: res, err: err}
			}
		}()
	}

	for i, p := range pairings {
		tasks <- matchTask{idx: i, pairing: p, seed: t.rng.Int63()}
	}
	close(tasks)
	wg.Wait()
	close(outcomes)

	results := make([]*MatchResult, len(pairings))
	var firstErr error
	for o := range outcomes {
		if o.err != nil && firstErr == nil {
			firstErr = o.err
		}
		results[o.idx] = o.res
	}
	if firstErr != nil {
		return nil, firstErr
	}

	// Single-writer statistics update, after the barrier.
	for i, res := range results {
		t.applyResult(pairings[i], res)
	}
	return results, nil
}

// applyResult folds one match into both players' records. A drawn
// match scores one point per side and no win or loss; the tie-broken
// winner matters only for bracket advancement.
func (t *Tournament) applyResult(p Pairing, res *MatchResult) {
	winner, loser := p.winnerLoser(res)
	if res.Drawn {
		p.A.Draws++
		p.B.Draws++
		p.A.Points++
		p.B.Points++
	} else {
		winner.Wins++
		winner.Points += 3
		loser.Losses++
	}

	p.A.addOpponent(p.B.Name())
	p.B.addOpponent(p.A.Name())
	p.A.history = append(p.A.history, res)
	p.B.history = append(p.B.history, res)

	t.results = append(t.results, res)
	t.games += res.Games
}
