// Package engine implements the UNO game rules.
//
// It provides the card and deck model, the agent contract, and a
// deterministic turn state machine that drives a full game between
// agents. All randomness flows through an explicit *rand.Rand handle
// so games are reproducible and safe to run in parallel.
package engine

import "fmt"

// Color identifies a card's color. Wild cards carry ColorWild until
// the playing agent chooses a color.
type Color uint8

const (
	ColorRed Color = iota
	ColorBlue
	ColorGreen
	ColorYellow
	ColorWild
)

// Colors lists the four playable (non-wild) colors.
var Colors = [4]Color{ColorRed, ColorBlue, ColorGreen, ColorYellow}

func (c Color) String() string {
	switch c {
	case ColorRed:
		return "red"
	case ColorBlue:
		return "blue"
	case ColorGreen:
		return "green"
	case ColorYellow:
		return "yellow"
	case ColorWild:
		return "wild"
	}
	return fmt.Sprintf("color(%d)", uint8(c))
}

// Label identifies a card's face.
type Label uint8

const (
	LabelZero Label = iota
	LabelOne
	LabelTwo
	LabelThree
	LabelFour
	LabelFive
	LabelSix
	LabelSeven
	LabelEight
	LabelNine
	LabelSkip
	LabelReverse
	LabelDrawTwo
	LabelWild
	LabelWildDrawFour
)

func (l Label) String() string {
	switch {
	case l <= LabelNine:
		return fmt.Sprintf("%d", uint8(l))
	case l == LabelSkip:
		return "skip"
	case l == LabelReverse:
		return "reverse"
	case l == LabelDrawTwo:
		return "draw-two"
	case l == LabelWild:
		return "wild"
	case l == LabelWildDrawFour:
		return "wild-draw-four"
	}
	return fmt.Sprintf("label(%d)", uint8(l))
}

// Card is an immutable color/label pair. Wild-family cards have
// Color == ColorWild; the chosen color lives on the game state, never
// on the card itself.
type Card struct {
	Color Color
	Label Label
}

// IsWild reports whether the card belongs to the wild family.
func (c Card) IsWild() bool {
	return c.Label == LabelWild || c.Label == LabelWildDrawFour
}

// IsAction reports whether playing the card has an effect beyond
// changing the top card (Skip, Reverse, DrawTwo, and the wilds).
func (c Card) IsAction() bool {
	return c.Label >= LabelSkip
}

// IsNumber reports whether the card is a plain 0-9 card.
func (c Card) IsNumber() bool {
	return c.Label <= LabelNine
}

// CanPlayOn reports whether the card may be played on the given top
// card under the active color. Wilds are always legal; any other card
// must match the active color or the top card's label.
func (c Card) CanPlayOn(top Card, active Color) bool {
	if c.IsWild() {
		return true
	}
	return c.Color == active || c.Label == top.Label
}

// Points returns the card's value for forced end-of-round scoring:
// number cards count face value, colored action cards 20, wilds 50.
func (c Card) Points() int {
	switch {
	case c.IsNumber():
		return int(c.Label)
	case c.IsWild():
		return 50
	default:
		return 20
	}
}

func (c Card) String() string {
	if c.IsWild() {
		return c.Label.String()
	}
	return c.Color.String() + " " + c.Label.String()
}

// HandPoints sums the forced-scoring values of a hand.
func HandPoints(hand []Card) int {
	total := 0
	for _, c := range hand {
		total += c.Points()
	}
	return total
}
