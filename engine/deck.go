package engine

import "math/rand"

// DeckSize is the number of cards in a standard UNO deck.
const DeckSize = 108

// Deck is an ordered draw pile, consumed from the end.
type Deck struct {
	cards []Card
	rng   *rand.Rand
}

// NewStandardDeck builds the standard 108-card deck, shuffled with the
// given source. Per color: one zero, two each of 1-9, two each of
// Skip/Reverse/DrawTwo; plus four Wild and four WildDrawFour.
func NewStandardDeck(rng *rand.Rand) *Deck {
	d := &Deck{cards: make([]Card, 0, DeckSize), rng: rng}
	for _, color := range Colors {
		d.cards = append(d.cards, Card{Color: color, Label: LabelZero})
		for label := LabelOne; label <= LabelDrawTwo; label++ {
			d.cards = append(d.cards,
				Card{Color: color, Label: label},
				Card{Color: color, Label: label},
			)
		}
	}
	for i := 0; i < 4; i++ {
		d.cards = append(d.cards,
			Card{Color: ColorWild, Label: LabelWild},
			Card{Color: ColorWild, Label: LabelWildDrawFour},
		)
	}
	d.Shuffle()
	return d
}

// Shuffle permutes the remaining cards in place.
func (d *Deck) Shuffle() {
	d.rng.Shuffle(len(d.cards), func(i, j int) {
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	})
}

// Draw removes and returns the top card.
func (d *Deck) Draw() (Card, error) {
	if len(d.cards) == 0 {
		return Card{}, ErrDeckEmpty
	}
	c := d.cards[len(d.cards)-1]
	d.cards = d.cards[:len(d.cards)-1]
	return c, nil
}

// DrawN removes and returns the top n cards.
func (d *Deck) DrawN(n int) ([]Card, error) {
	if len(d.cards) < n {
		return nil, ErrDeckEmpty
	}
	out := make([]Card, n)
	for i := range out {
		out[i], _ = d.Draw()
	}
	return out, nil
}

// Add returns cards to the deck. Callers shuffle afterwards when the
// returned cards must not come back in a known order.
func (d *Deck) Add(cards ...Card) {
	d.cards = append(d.cards, cards...)
}

// Len returns the number of cards remaining.
func (d *Deck) Len() int { return len(d.cards) }

// Empty reports whether no cards remain.
func (d *Deck) Empty() bool { return len(d.cards) == 0 }

// DiscardPile is an ordered pile of played cards. The last pushed card
// is the top card and anchors play legality.
type DiscardPile struct {
	cards []Card
}

// Push places a card on top of the pile.
func (p *DiscardPile) Push(c Card) {
	p.cards = append(p.cards, c)
}

// Top returns the top card, if any.
func (p *DiscardPile) Top() (Card, bool) {
	if len(p.cards) == 0 {
		return Card{}, false
	}
	return p.cards[len(p.cards)-1], true
}

// Len returns the number of discarded cards.
func (p *DiscardPile) Len() int { return len(p.cards) }

// TakeAllButTop removes and returns every card except the top one, for
// reshuffling into the deck. The top card never leaves the pile.
func (p *DiscardPile) TakeAllButTop() ([]Card, error) {
	if len(p.cards) <= 1 {
		return nil, ErrCannotReshuffle
	}
	taken := make([]Card, len(p.cards)-1)
	copy(taken, p.cards[:len(p.cards)-1])
	p.cards[0] = p.cards[len(p.cards)-1]
	p.cards = p.cards[:1]
	return taken, nil
}
