package tournament

import (
	"context"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/savaleriy/unoarena/bots"
)

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	return log
}

func entrant(t *testing.T, kind, name string) Entrant {
	t.Helper()
	factory, err := bots.New(kind, name)
	require.NoError(t, err)
	return Entrant{Name: name, Factory: factory}
}

func TestRunMatchCountsEveryGame(t *testing.T) {
	a := entrant(t, "random", "alice")
	b := entrant(t, "greedy", "bob")

	res, err := RunMatch(context.Background(), a, b, MatchOptions{
		Games:  20,
		Seed:   1,
		Logger: quietLogger(),
	})
	require.NoError(t, err)

	assert.Equal(t, 20, res.Games)
	assert.Equal(t, 20, res.WinsA+res.WinsB, "every game names a winner")
	assert.Contains(t, []string{"alice", "bob"}, res.Winner)
	assert.Positive(t, res.TotalTurns)
	if res.Drawn {
		assert.Equal(t, res.WinsA, res.WinsB)
	}
}

func TestRunMatchDeterministic(t *testing.T) {
	a := entrant(t, "random", "alice")
	b := entrant(t, "wildlast", "bob")
	opts := MatchOptions{Games: 20, Seed: 99, Logger: quietLogger()}

	first, err := RunMatch(context.Background(), a, b, opts)
	require.NoError(t, err)
	second, err := RunMatch(context.Background(), a, b, opts)
	require.NoError(t, err)

	assert.Equal(t, first.WinsA, second.WinsA)
	assert.Equal(t, first.WinsB, second.WinsB)
	assert.Equal(t, first.Winner, second.Winner)
	assert.Equal(t, first.TotalTurns, second.TotalTurns)
}

func TestRunMatchCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := RunMatch(ctx, entrant(t, "random", "a"), entrant(t, "random", "b"), MatchOptions{
		Games:  5,
		Seed:   1,
		Logger: quietLogger(),
	})
	assert.ErrorIs(t, err, context.Canceled)
}
