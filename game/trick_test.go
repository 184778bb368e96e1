package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTrickWinner(t *testing.T) {
	t.Run("highest card of the led suit wins", func(t *testing.T) {
		trick := Trick{Cards: mustCards(t, "3C 2C 8C 10D"), FirstPlayerIndex: 0}

		require.Equal(t, 2, trick.Winner(4),
			"Seat holding the highest Club should win, not the off-suit 10D")
	})

	t.Run("winner offset wraps around the table", func(t *testing.T) {
		trick := Trick{Cards: mustCards(t, "5H 9H 2D AH"), FirstPlayerIndex: 2}

		require.Equal(t, 1, trick.Winner(4), "Ace of Hearts at offset 3 from seat 2 wins")
	})
}

func TestTrickSuit(t *testing.T) {
	trick := Trick{Cards: mustCards(t, "10D AH")}
	led, ok := trick.Suit()
	require.True(t, ok)
	require.Equal(t, Diamonds, led, "First card defines the led suit")

	_, ok = Trick{}.Suit()
	require.False(t, ok, "Empty trick has no led suit")
}

func TestTrickAdd(t *testing.T) {
	trick := Trick{}

	trick = trick.Add(mustCard(t, "4S"), 3)
	require.Equal(t, 3, trick.FirstPlayerIndex, "First card records the leading seat")

	trick = trick.Add(mustCard(t, "QS"), 0)
	require.Equal(t, 3, trick.FirstPlayerIndex, "Later cards keep the leading seat")
	require.Equal(t, "4S QS", CardList(trick.Cards))
}

func TestTrickScore(t *testing.T) {
	require.Equal(t, 0, Trick{}.Score())
	require.Equal(t, 15, Trick{Cards: mustCards(t, "QS 2H KH 2D")}.Score(),
		"Queen of Spades plus two Hearts should score 15")
}
