package ai

import (
	"fmt"

	"hearts/game"
)

// Determinize rebuilds one complete, consistent game from a player's public
// view: the acting player keeps their real hand, every other seat is dealt a
// uniformly random slice of the unseen cards. The union of all hands, the
// trick log and the current trick is exactly the full deck.
//
// Suit-void inference is deliberately not applied: an opponent who discarded
// off-suit earlier may still be dealt that suit here.
func Determinize(dealer game.Dealer, gs game.GamePublicState, ps game.PlayerPublicState) game.Game {
	known := make([]game.Card, 0, gs.DeckInfo.Size)
	for _, trick := range gs.Tricks {
		known = append(known, trick.Cards...)
	}
	known = append(known, gs.CurrentTrick.Cards...)
	known = append(known, ps.Hand...)

	unseen := game.Complement(known, gs.DeckInfo.MinRank, gs.DeckInfo.MaxRank)
	pool := dealer.ShuffleDeck(game.DeckFrom(unseen, gs.DeckInfo.MinRank, gs.DeckInfo.MaxRank))

	// Cards each seat still holds in a fair deal at this point.
	perPlayer := (gs.DeckInfo.Size - gs.TricksPlayed*gs.PlayersCount) / gs.PlayersCount

	players := make([]game.Player, gs.PlayersCount)
	for seat := 0; seat < gs.PlayersCount; seat++ {
		if seat == gs.CurrentPlayerIndex {
			players[seat] = game.Player{
				ID:     ps.ID,
				Name:   ps.Name,
				Hand:   append([]game.Card(nil), ps.Hand...),
				Tricks: ps.Tricks,
			}
			continue
		}

		count := perPlayer
		if gs.HasPlayedInTrick(seat) {
			count-- // Already contributed to the open trick
		}
		var hand []game.Card
		hand, pool = pool.Distribute(count)
		players[seat] = game.Player{
			ID:   sampledID(seat, ps.ID),
			Name: fmt.Sprintf("Player %d", seat),
			Hand: hand,
		}
	}

	return game.Game{
		Stage:              game.Playing,
		Deck:               pool,
		DeckInfo:           gs.DeckInfo,
		Players:            players,
		CurrentPlayerIndex: gs.CurrentPlayerIndex,
		CurrentTrick:       gs.CurrentTrick,
		LastTrick:          gs.LastTrick,
		Tricks:             gs.Tricks,
		TricksPlayed:       gs.TricksPlayed,
		HeartsBroken:       gs.HeartsBroken,
	}
}

// sampledID names a sampled seat, steering clear of the acting player's real
// ID so score lookups stay unambiguous.
func sampledID(seat int, actor game.PlayerID) game.PlayerID {
	id := game.PlayerID(fmt.Sprintf("id%d", seat))
	if id == actor {
		id = game.PlayerID(fmt.Sprintf("id%d-sampled", seat))
	}
	return id
}
