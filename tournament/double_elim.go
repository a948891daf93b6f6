package tournament

import (
	"context"

	"github.com/sirupsen/logrus"
)

// runDoubleElimination keeps parallel winners and losers brackets.
// Winners-bracket losers are appended to the losers bracket without
// re-seeding; a losers-bracket loss eliminates. Once each bracket is
// down to one survivor the two meet in a grand final, with a bracket
// reset if the losers-bracket survivor takes the first final.
func (t *Tournament) runDoubleElimination(ctx context.Context) (*Player, error) {
	winners := t.shuffledPlayers()
	var losers []*Player

	size := 1
	for size < len(winners) {
		size <<= 1
	}
	byes := size - len(winners)

	// First-round byes auto-advance inside the winners bracket; no
	// synthetic entry ever reaches the losers bracket. The non-bye
	// players contest the first pass here, so the main loop always
	// starts from a power-of-two winners bracket.
	if byes > 0 {
		t.rounds++
		holders := append([]*Player(nil), winners[len(winners)-byes:]...)
		for _, p := range holders {
			t.grantBye(p)
		}
		playing := winners[:len(winners)-byes]
		pairings := make([]Pairing, 0, len(playing)/2)
		for i := 0; i+1 < len(playing); i += 2 {
			pairings = append(pairings, Pairing{A: playing[i], B: playing[i+1]})
		}
		results, err := t.playRound(ctx, pairings)
		if err != nil {
			return nil, err
		}
		winners = holders
		for i, res := range results {
			w, l := pairings[i].winnerLoser(res)
			winners = append(winners, w)
			losers = append(losers, l)
		}
	}

	// One round is a winners-bracket pass followed by a losers-bracket
	// pass.
	for len(winners) > 1 || len(losers) > 1 {
		t.rounds++
		if len(winners) > 1 {
			pairings := make([]Pairing, 0, len(winners)/2)
			for i := 0; i+1 < len(winners); i += 2 {
				pairings = append(pairings, Pairing{A: winners[i], B: winners[i+1]})
			}
			results, err := t.playRound(ctx, pairings)
			if err != nil {
				return nil, err
			}
			next := winners[:0:0]
			for i, res := range results {
				w, l := pairings[i].winnerLoser(res)
				next = append(next, w)
				losers = append(losers, l)
			}
			winners = next
			t.log.WithFields(logrus.Fields{
				"round":   t.rounds,
				"winners": len(winners),
				"losers":  len(losers),
			}).Debug("winners bracket pass complete")
		}

		if len(losers) > 1 {
			pairings := make([]Pairing, 0, len(losers)/2)
			for i := 0; i+1 < len(losers); i += 2 {
				pairings = append(pairings, Pairing{A: losers[i], B: losers[i+1]})
			}
			// An odd trailing player sits out this pass.
			carry := losers[len(pairings)*2:]

			results, err := t.playRound(ctx, pairings)
			if err != nil {
				return nil, err
			}
			next := losers[:0:0]
			for i, res := range results {
				w, l := pairings[i].winnerLoser(res)
				l.Eliminated = true
				next = append(next, w)
			}
			losers = append(next, carry...)
			t.log.WithFields(logrus.Fields{
				"round":  t.rounds,
				"losers": len(losers),
			}).Debug("losers bracket pass complete")
		}
	}

	if len(losers) == 0 {
		// Degenerate roster; the winners-bracket survivor is champion.
		return winners[0], nil
	}

	wbChamp, lbChamp := winners[0], losers[0]
	final := Pairing{A: wbChamp, B: lbChamp}
	t.rounds++
	results, err := t.playRound(ctx, []Pairing{final})
	if err != nil {
		return nil, err
	}
	w, l := final.winnerLoser(results[0])
	if w == wbChamp {
		l.Eliminated = true
		return wbChamp, nil
	}

	// Bracket reset: the winners-bracket survivor gets the second
	// final their single loss entitles them to. Its winner is champion
	// regardless of the first final.
	t.log.Info("grand final bracket reset")
	t.rounds++
	results, err = t.playRound(ctx, []Pairing{final})
	if err != nil {
		return nil, err
	}
	w, l = final.winnerLoser(results[0])
	l.Eliminated = true
	return w, nil
}
