package bots

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/savaleriy/unoarena/engine"
)

func TestNewUnknownKind(t *testing.T) {
	_, err := New("psychic", "p1")
	assert.Error(t, err)
}

func TestEveryKindFinishesAGame(t *testing.T) {
	for _, kind := range Kinds {
		t.Run(kind, func(t *testing.T) {
			factory, err := New(kind, kind+"-1")
			require.NoError(t, err)
			opponent, err := New("random", "sparring")
			require.NoError(t, err)

			g := engine.NewGame(engine.Config{}, rand.New(rand.NewSource(7)), nil)
			require.NoError(t, g.AddAgent(factory(rand.New(rand.NewSource(8)))))
			require.NoError(t, g.AddAgent(opponent(rand.New(rand.NewSource(9)))))

			res, err := g.Run()
			require.NoError(t, err)
			assert.GreaterOrEqual(t, res.Winner, 0)
			assert.NotEmpty(t, res.WinnerName)
		})
	}
}

func TestFactoryMintsFreshAgents(t *testing.T) {
	factory, err := New("greedy", "g1")
	require.NoError(t, err)
	a := factory(rand.New(rand.NewSource(1)))
	b := factory(rand.New(rand.NewSource(2)))
	assert.NotSame(t, a, b)
	assert.Equal(t, "g1", a.Name())
	assert.Equal(t, "g1", b.Name())
}

func TestWildLastHoardsWilds(t *testing.T) {
	a := NewWildLast("w", rand.New(rand.NewSource(1)))
	wild := engine.Card{Color: engine.ColorWild, Label: engine.LabelWild}
	number := engine.Card{Color: engine.ColorRed, Label: engine.LabelThree}

	a.Observe(engine.TurnView{
		Hand:  []engine.Card{wild, number},
		Legal: []engine.Card{wild, number},
	})
	action := a.DecideAction()
	assert.Equal(t, number, action.Card, "non-wild preferred over wild")

	a.Observe(engine.TurnView{
		Hand:  []engine.Card{wild, number, number, number},
		Legal: []engine.Card{wild},
	})
	assert.False(t, a.ShouldPlayDrawn(wild), "drawn wild kept with a full hand")
	assert.True(t, a.ShouldPlayDrawn(number))
}

func TestGreedyShedsExpensiveCards(t *testing.T) {
	a := NewGreedy("g", rand.New(rand.NewSource(1)))
	cheap := engine.Card{Color: engine.ColorRed, Label: engine.LabelTwo}
	dear := engine.Card{Color: engine.ColorRed, Label: engine.LabelDrawTwo}

	a.Observe(engine.TurnView{
		Hand:  []engine.Card{cheap, dear},
		Legal: []engine.Card{cheap, dear},
	})
	assert.Equal(t, dear, a.DecideAction().Card)
}
