package tournament

import "context"

// runRoundRobin plays every unordered pair of entrants exactly once.
// Pairings are batched so that no player appears twice in the same
// batch, which keeps the whole schedule eligible for the worker pool.
func (t *Tournament) runRoundRobin(ctx context.Context) (*Player, error) {
	roster := t.shuffledPlayers()

	var schedule []Pairing
	for i := 0; i < len(roster); i++ {
		for j := i + 1; j < len(roster); j++ {
			schedule = append(schedule, Pairing{A: roster[i], B: roster[j]})
		}
	}

	perRound := len(roster) / 2
	for len(schedule) > 0 {
		batch := make([]Pairing, 0, perRound)
		busy := make(map[string]struct{}, len(roster))
		rest := schedule[:0:0]
		for _, p := range schedule {
			_, a := busy[p.A.Name()]
			_, b := busy[p.B.Name()]
			if a || b || len(batch) == perRound {
				rest = append(rest, p)
				continue
			}
			busy[p.A.Name()] = struct{}{}
			busy[p.B.Name()] = struct{}{}
			batch = append(batch, p)
		}
		schedule = rest
		t.rounds++
		if _, err := t.playRound(ctx, batch); err != nil {
			return nil, err
		}
	}

	top := t.Standings()
	if len(top) == 0 {
		return nil, ErrTooFewEntrants
	}
	return t.playerByName(top[0].Name), nil
}
