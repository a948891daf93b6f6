// Package tournament schedules repeated matches between agent
// entrants and aggregates them into competitive brackets: single and
// double elimination, round robin, and Swiss.
package tournament

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"runtime"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/savaleriy/unoarena/engine"
)

// Format selects the competitive structure of a tournament.
type Format uint8

const (
	SingleElimination Format = iota
	DoubleElimination
	RoundRobin
	Swiss
)

func (f Format) String() string {
	switch f {
	case SingleElimination:
		return "single-elimination"
	case DoubleElimination:
		return "double-elimination"
	case RoundRobin:
		return "round-robin"
	case Swiss:
		return "swiss"
	}
	return fmt.Sprintf("format(%d)", uint8(f))
}

// ParseFormat maps a format name to its Format value.
func ParseFormat(s string) (Format, error) {
	switch s {
	case "single-elimination", "single":
		return SingleElimination, nil
	case "double-elimination", "double":
		return DoubleElimination, nil
	case "round-robin", "roundrobin":
		return RoundRobin, nil
	case "swiss":
		return Swiss, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

var (
	// ErrTooFewEntrants is returned when a tournament is created with
	// fewer than two entrants.
	ErrTooFewEntrants = errors.New("tournament: need at least 2 entrants")

	// ErrUnknownFormat is returned for an unrecognized tournament
	// format.
	ErrUnknownFormat = errors.New("tournament: unknown format")

	// ErrDuplicateEntrant is returned when two entrants share a name.
	ErrDuplicateEntrant = errors.New("tournament: duplicate entrant name")
)

// Status is the orchestrator lifecycle state.
type Status uint8

const (
	StatusBuilt Status = iota
	StatusRoundInProgress
	StatusCompleted
)

func (s Status) String() string {
	switch s {
	case StatusBuilt:
		return "built"
	case StatusRoundInProgress:
		return "round_in_progress"
	case StatusCompleted:
		return "completed"
	}
	return fmt.Sprintf("status(%d)", uint8(s))
}

// Options configures a tournament.
type Options struct {
	Format        Format
	GamesPerMatch int   // 0 = 100
	Seed          int64 // 0 = derived from the wall clock
	Workers       int   // parallel matches per round; 0 = GOMAXPROCS
	Engine        engine.Config
	Logger        *logrus.Logger
}

// Tournament drives one bracket from setup to champion. It is not safe
// for concurrent use; parallelism happens inside a round, never
// across orchestrator state.
type Tournament struct {
	ID uuid.UUID

	opts Options
	log  logrus.FieldLogger
	rng  *rand.Rand

	players []*Player
	status  Status

	rounds   int
	games    int
	results  []*MatchResult
	champion *Player
	duration time.Duration
}

// New builds a tournament from a roster of entrants. Setup and format
// errors surface here, before any game runs.
func New(entrants []Entrant, opts Options) (*Tournament, error) {
	if len(entrants) < 2 {
		return nil, ErrTooFewEntrants
	}
	if opts.Format > Swiss {
		return nil, fmt.Errorf("%w: %d", ErrUnknownFormat, opts.Format)
	}
	if opts.GamesPerMatch <= 0 {
		opts.GamesPerMatch = 100
	}
	if opts.Workers <= 0 {
		opts.Workers = runtime.GOMAXPROCS(0)
	}
	if opts.Seed == 0 {
		opts.Seed = time.Now().UnixNano()
	}
	if opts.Logger == nil {
		opts.Logger = logrus.StandardLogger()
	}

	t := &Tournament{
		ID:     uuid.New(),
		opts:   opts,
		rng:    rand.New(rand.NewSource(opts.Seed)),
		status: StatusBuilt,
	}
	t.log = opts.Logger.WithFields(logrus.Fields{
		"tournament_id": t.ID,
		"format":        opts.Format.String(),
	})

	seen := make(map[string]struct{}, len(entrants))
	for _, e := range entrants {
		if _, dup := seen[e.Name]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateEntrant, e.Name)
		}
		seen[e.Name] = struct{}{}
		t.players = append(t.players, newPlayer(e))
	}
	return t, nil
}

// Run executes the whole tournament and returns the champion. A
// context cancellation between (or during) rounds aborts the
// tournament; the partially completed round is never scored.
func (t *Tournament) Run(ctx context.Context) (*Player, error) {
	start := time.Now()
	t.log.WithFields(logrus.Fields{
		"players":         len(t.players),
		"games_per_match": t.opts.GamesPerMatch,
	}).Info("tournament starting")

	var champion *Player
	var err error
	switch t.opts.Format {
	case SingleElimination:
		champion, err = t.runSingleElimination(ctx)
	case DoubleElimination:
		champion, err = t.runDoubleElimination(ctx)
	case RoundRobin:
		champion, err = t.runRoundRobin(ctx)
	case Swiss:
		champion, err = t.runSwiss(ctx)
	default:
		err = fmt.Errorf("%w: %d", ErrUnknownFormat, t.opts.Format)
	}
	t.duration = time.Since(start)
	if err != nil {
		return nil, err
	}

	t.champion = champion
	t.status = StatusCompleted
	t.log.WithFields(logrus.Fields{
		"champion": champion.Name(),
		"rounds":   t.rounds,
		"matches":  len(t.results),
		"duration": t.duration,
	}).Info("tournament complete")
	return champion, nil
}

// State returns the orchestrator lifecycle state.
func (t *Tournament) State() Status { return t.status }

// Champion returns the winner once the tournament has completed.
func (t *Tournament) Champion() *Player { return t.champion }

// shuffledPlayers returns a randomly seeded copy of the roster.
func (t *Tournament) shuffledPlayers() []*Player {
	out := make([]*Player, len(t.players))
	copy(out, t.players)
	t.rng.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	return out
}

func (t *Tournament) playerByName(name string) *Player {
	for _, p := range t.players {
		if p.Name() == name {
			return p
		}
	}
	return nil
}

// grantBye auto-advances a player with no opponent available, scored
// as a full win.
func (t *Tournament) grantBye(p *Player) {
	p.Wins++
	p.Points += 3
	t.log.WithField("player", p.Name()).Debug("bye granted")
}
