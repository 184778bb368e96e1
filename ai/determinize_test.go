package ai

import (
	"testing"

	"github.com/stretchr/testify/require"

	"hearts/game"
)

// identityDealer deals without shuffling, so the sampled hands are fully
// predictable: the unseen cards come off in complement order.
type identityDealer struct{}

func (identityDealer) CreateDeck() game.Deck                { return game.NewDeck() }
func (identityDealer) ShuffleDeck(deck game.Deck) game.Deck { return deck }
func (identityDealer) DistributeCards(deck game.Deck, count int) ([]game.Card, game.Deck) {
	return deck.Distribute(count)
}

func mustCards(t *testing.T, symbols string) []game.Card {
	t.Helper()
	cards, err := game.ParseCards(symbols)
	require.NoError(t, err)
	return cards
}

func trick(t *testing.T, symbols string, first int) game.Trick {
	t.Helper()
	return game.Trick{Cards: mustCards(t, symbols), FirstPlayerIndex: first}
}

func standardView() game.GamePublicState {
	return game.GamePublicState{
		Stage:        game.Playing,
		PlayersCount: 4,
		DeckInfo:     game.DeckInfo{Size: 52, MinRank: game.MinRank, MaxRank: game.MaxRank},
	}
}

func TestDeterminizeLateGame(t *testing.T) {
	// Nine tricks played, seats 2 and 3 already in the open trick: seat 1
	// still holds four cards, seats 2 and 3 hold three each.
	gs := standardView()
	gs.TricksPlayed = 9
	gs.HeartsBroken = true
	gs.CurrentPlayerIndex = 0
	gs.CurrentTrick = trick(t, "3S 4S", 2)
	gs.Tricks = []game.Trick{
		trick(t, "2C 3C 4C 5C", 0),
		trick(t, "6C 7C 8C 9C", 0),
		trick(t, "10C JC QC KC", 0),
		trick(t, "AC 2D 3D 4D", 0),
		trick(t, "5D 6D 7D 8D", 0),
		trick(t, "9D 10D JD QD", 0),
		trick(t, "KD AD 2H 3H", 0),
		trick(t, "4H 5H 6H 7H", 0),
		trick(t, "8H 9H 10H JH", 0),
	}
	ps := game.PlayerPublicState{ID: "me", Name: "Me", Hand: mustCards(t, "QH KH AH 2S")}

	g := Determinize(identityDealer{}, gs, ps)

	require.Equal(t, game.Playing, g.Stage)
	require.Equal(t, "QH KH AH 2S", game.CardList(g.Players[0].Hand),
		"The acting player keeps their real hand")
	require.Equal(t, game.PlayerID("me"), g.Players[0].ID)
	require.Equal(t, "5S 6S 7S 8S", game.CardList(g.Players[1].Hand))
	require.Equal(t, "9S 10S JS", game.CardList(g.Players[2].Hand),
		"A seat already in the open trick holds one card fewer")
	require.Equal(t, "QS KS AS", game.CardList(g.Players[3].Hand))
	require.Empty(t, g.Deck.Cards, "Every unseen card should be dealt out")

	require.Equal(t, gs.TricksPlayed, g.TricksPlayed)
	require.Equal(t, "3S 4S", game.CardList(g.CurrentTrick.Cards))
	require.Equal(t, 0, g.CurrentPlayerIndex)
	require.True(t, g.HeartsBroken)
}

func TestDeterminizeEarlyGame(t *testing.T) {
	gs := standardView()
	gs.TricksPlayed = 3
	gs.CurrentPlayerIndex = 3
	gs.Tricks = []game.Trick{
		trick(t, "2C KC 5C 8C", 0),
		trick(t, "JD 10D 6D QD", 1),
		trick(t, "9D 7D 2D QC", 3),
	}
	ps := game.PlayerPublicState{
		ID:   "me",
		Hand: mustCards(t, "2H 3H 7H KH 10C AC AD 3S 6S JS"),
	}

	g := Determinize(identityDealer{}, gs, ps)

	require.Equal(t, "4H 5H 6H 8H 9H 10H JH QH AH 3C", game.CardList(g.Players[0].Hand))
	require.Equal(t, "4C 6C 7C 9C JC 3D 4D 5D 8D KD", game.CardList(g.Players[1].Hand))
	require.Equal(t, "2S 4S 5S 7S 8S 9S 10S QS KS AS", game.CardList(g.Players[2].Hand))
	require.Equal(t, "2H 3H 7H KH 10C AC AD 3S 6S JS", game.CardList(g.Players[3].Hand))

	for seat := 0; seat < 4; seat++ {
		require.Len(t, g.Players[seat].Hand, 10,
			"With an empty trick every seat holds the same count")
		require.Empty(t, g.Players[seat].Tricks,
			"Sampled opponents start without captured tricks")
	}
}

func TestDeterminizeKeepsSeatIDsDistinct(t *testing.T) {
	// An acting player whose real ID matches a sampled seat's default name
	// must not end up sharing it, or score lookups would hit the wrong seat.
	gs := standardView()
	gs.CurrentPlayerIndex = 0
	ps := game.PlayerPublicState{
		ID:   "id2",
		Hand: mustCards(t, "2C 3C 4C 5C 6C 7C 8C 9C 10C JC QC KC AC"),
	}

	g := Determinize(identityDealer{}, gs, ps)

	require.Equal(t, game.PlayerID("id2"), g.Players[0].ID,
		"The acting player keeps their real ID")
	seen := make(map[game.PlayerID]bool)
	for _, p := range g.Players {
		require.False(t, seen[p.ID], "Seat ID %s should be unique", p.ID)
		seen[p.ID] = true
	}

	score, err := g.PlayerScore("id2")
	require.NoError(t, err)
	require.Zero(t, score, "The real id2 has captured nothing yet")
}

func TestDeterminizePartitionsTheDeck(t *testing.T) {
	gs := standardView()
	gs.TricksPlayed = 3
	gs.CurrentPlayerIndex = 3
	gs.Tricks = []game.Trick{
		trick(t, "2C KC 5C 8C", 0),
		trick(t, "JD 10D 6D QD", 1),
		trick(t, "9D 7D 2D QC", 3),
	}
	ps := game.PlayerPublicState{
		ID:   "me",
		Hand: mustCards(t, "2H 3H 7H KH 10C AC AD 3S 6S JS"),
	}

	g := Determinize(game.NewDealer(nil), gs, ps)

	seen := make(map[game.Card]bool)
	record := func(cards []game.Card) {
		for _, card := range cards {
			require.False(t, seen[card], "Card %s should appear exactly once", card)
			seen[card] = true
		}
	}
	for _, played := range g.Tricks {
		record(played.Cards)
	}
	record(g.CurrentTrick.Cards)
	for _, p := range g.Players {
		record(p.Hand)
	}
	require.Len(t, seen, 52, "Hands, trick log and open trick should cover the deck")
}
