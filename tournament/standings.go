package tournament

import (
	"sort"
	"time"
)

// PlayerSummary is one row of the final table.
type PlayerSummary struct {
	Rank       int
	Name       string
	Wins       int
	Losses     int
	Draws      int
	Points     int
	Buchholz   float64
	Eliminated bool
}

// Standings returns the roster ordered by points, then wins, then
// fewest losses. Swiss tournaments break point ties on Buchholz first.
func (t *Tournament) Standings() []PlayerSummary {
	ranked := make([]*Player, len(t.players))
	copy(ranked, t.players)
	swiss := t.opts.Format == Swiss
	sort.SliceStable(ranked, func(i, j int) bool {
		a, b := ranked[i], ranked[j]
		if a.Points != b.Points {
			return a.Points > b.Points
		}
		if swiss && a.Buchholz != b.Buchholz {
			return a.Buchholz > b.Buchholz
		}
		if a.Wins != b.Wins {
			return a.Wins > b.Wins
		}
		return a.Losses < b.Losses
	})

	out := make([]PlayerSummary, len(ranked))
	for i, p := range ranked {
		out[i] = PlayerSummary{
			Rank:       i + 1,
			Name:       p.Name(),
			Wins:       p.Wins,
			Losses:     p.Losses,
			Draws:      p.Draws,
			Points:     p.Points,
			Buchholz:   p.Buchholz,
			Eliminated: p.Eliminated,
		}
	}
	return out
}

// MatchHistory returns the matches a player took part in, in the order
// they were scored.
func (t *Tournament) MatchHistory(name string) []*MatchResult {
	p := t.playerByName(name)
	if p == nil {
		return nil
	}
	return p.history
}

// Results returns every scored match in completion order.
func (t *Tournament) Results() []*MatchResult { return t.results }

// Stats summarizes a finished tournament.
type Stats struct {
	Format   Format
	Players  int
	Rounds   int
	Matches  int
	Games    int
	Duration time.Duration
	Champion string
}

func (t *Tournament) Stats() Stats {
	s := Stats{
		Format:   t.opts.Format,
		Players:  len(t.players),
		Rounds:   t.rounds,
		Matches:  len(t.results),
		Games:    t.games,
		Duration: t.duration,
	}
	if t.champion != nil {
		s.Champion = t.champion.Name()
	}
	return s
}
