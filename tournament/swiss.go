package tournament

import (
	"context"
	"sort"

	"github.com/sirupsen/logrus"
)

// swissRounds caps the number of Swiss rounds for large rosters.
const swissRounds = 5

// runSwiss plays a fixed number of rounds, pairing players on current
// match score and never repeating a pairing. Final placement uses
// Buchholz (sum of opponents' match scores) to break score ties.
func (t *Tournament) runSwiss(ctx context.Context) (*Player, error) {
	rounds := swissRounds
	if len(t.players) < rounds {
		rounds = len(t.players)
	}

	for r := 0; r < rounds; r++ {
		t.rounds++
		order := t.swissOrder()
		pairings, unpaired := t.swissPair(order)
		if len(t.players)%2 == 1 && len(unpaired) > 0 {
			t.grantBye(unpaired[len(unpaired)-1])
			unpaired = unpaired[:len(unpaired)-1]
		}
		if len(unpaired) > 0 {
			t.log.WithFields(logrus.Fields{
				"round":   t.rounds,
				"sitting": len(unpaired),
			}).Debug("players without an unmet opponent sit the round out")
		}
		if _, err := t.playRound(ctx, pairings); err != nil {
			return nil, err
		}
	}

	for _, p := range t.players {
		p.Buchholz = 0
		for name := range p.opponents {
			if opp := t.playerByName(name); opp != nil {
				p.Buchholz += opp.MatchScore()
			}
		}
	}

	top := t.Standings()
	return t.playerByName(top[0].Name), nil
}

// swissOrder sorts the roster by match score, shuffling within equal
// scores so pairings vary between runs with different seeds.
func (t *Tournament) swissOrder() []*Player {
	order := t.shuffledPlayers()
	sort.SliceStable(order, func(i, j int) bool {
		return order[i].MatchScore() > order[j].MatchScore()
	})
	return order
}

// swissPair greedily pairs neighbors in score order with the first
// unmet opponent below them. A player whose remaining candidates have
// all been faced stays unpaired; two players never meet twice. The
// unpaired players come back in score order.
func (t *Tournament) swissPair(order []*Player) ([]Pairing, []*Player) {
	paired := make(map[string]struct{}, len(order))
	pairings := make([]Pairing, 0, len(order)/2)

	for i, a := range order {
		if _, done := paired[a.Name()]; done {
			continue
		}
		for j := i + 1; j < len(order); j++ {
			b := order[j]
			if _, done := paired[b.Name()]; done {
				continue
			}
			if a.hasFaced(b.Name()) {
				continue
			}
			paired[a.Name()] = struct{}{}
			paired[b.Name()] = struct{}{}
			pairings = append(pairings, Pairing{A: a, B: b})
			break
		}
	}

	var unpaired []*Player
	for _, p := range order {
		if _, done := paired[p.Name()]; !done {
			unpaired = append(unpaired, p)
		}
	}
	return pairings, unpaired
}
