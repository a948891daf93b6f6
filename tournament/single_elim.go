package tournament

import (
	"context"

	"github.com/sirupsen/logrus"
)

// runSingleElimination pads the shuffled roster to the next power of
// two with byes, then halves the field every round until one player
// remains. Byes go to the tail of the draw and auto-advance, so a bye
// can never meet another bye and every later round pairs exactly.
func (t *Tournament) runSingleElimination(ctx context.Context) (*Player, error) {
	active := t.shuffledPlayers()

	size := 1
	for size < len(active) {
		size <<= 1
	}
	byes := size - len(active)

	for len(active) > 1 {
		t.rounds++
		next := make([]*Player, 0, len(active)/2+byes)

		// First round only: resolve the bye slots created by padding.
		if byes > 0 {
			for _, p := range active[len(active)-byes:] {
				t.grantBye(p)
				next = append(next, p)
			}
			active = active[:len(active)-byes]
			byes = 0
		}

		pairings := make([]Pairing, 0, len(active)/2)
		for i := 0; i+1 < len(active); i += 2 {
			pairings = append(pairings, Pairing{A: active[i], B: active[i+1]})
		}

		results, err := t.playRound(ctx, pairings)
		if err != nil {
			return nil, err
		}
		for i, res := range results {
			winner, loser := pairings[i].winnerLoser(res)
			loser.Eliminated = true
			next = append(next, winner)
		}

		t.log.WithFields(logrus.Fields{
			"round":     t.rounds,
			"survivors": len(next),
		}).Debug("elimination round complete")
		active = next
	}

	return active[0], nil
}
