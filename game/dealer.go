package game

import (
	"time"

	"golang.org/x/exp/rand"
)

// Dealer is the collaborator that owns deck construction and randomness, so
// game transitions stay deterministic given a dealer.
type Dealer interface {
	CreateDeck() Deck
	ShuffleDeck(deck Deck) Deck
	DistributeCards(deck Deck, count int) ([]Card, Deck)
}

type randomDealer struct {
	rng *rand.Rand
}

// NewDealer returns a dealer shuffling with the given source; a nil rng gets
// a time-seeded one.
func NewDealer(rng *rand.Rand) Dealer {
	if rng == nil {
		rng = rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	}
	return &randomDealer{rng: rng}
}

func (d *randomDealer) CreateDeck() Deck {
	return NewDeck()
}

func (d *randomDealer) ShuffleDeck(deck Deck) Deck {
	cards := append([]Card(nil), deck.Cards...)
	d.rng.Shuffle(len(cards), func(i, j int) {
		cards[i], cards[j] = cards[j], cards[i]
	})
	return Deck{Cards: cards, Size: deck.Size, MinRank: deck.MinRank, MaxRank: deck.MaxRank}
}

func (d *randomDealer) DistributeCards(deck Deck, count int) ([]Card, Deck) {
	return deck.Distribute(count)
}
