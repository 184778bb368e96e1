package game

// Deck is an ordered sequence of distinct cards. Size records the size of the
// full deck the cards were drawn from, so it stays constant as cards are
// distributed; a standard deck has size 4*(MaxRank-MinRank+1) = 52.
type Deck struct {
	Cards   []Card
	Size    int
	MinRank Rank
	MaxRank Rank
}

// NewDeck builds the standard 52 card deck.
func NewDeck() Deck {
	return NewDeckRange(MinRank, MaxRank)
}

// NewDeckRange builds a deck holding every (suit, rank) pair in the given
// rank range, in suit then rank order.
func NewDeckRange(minRank, maxRank Rank) Deck {
	cards := make([]Card, 0, len(Suits)*int(maxRank-minRank+1))
	for _, suit := range Suits {
		for rank := minRank; rank <= maxRank; rank++ {
			cards = append(cards, Card{Suit: suit, Rank: rank})
		}
	}
	return Deck{Cards: cards, Size: len(cards), MinRank: minRank, MaxRank: maxRank}
}

// DeckFrom wraps an existing card sequence as a deck.
func DeckFrom(cards []Card, minRank, maxRank Rank) Deck {
	return Deck{Cards: cards, Size: len(cards), MinRank: minRank, MaxRank: maxRank}
}

// Distribute takes count cards off the front of the deck, sorted, and returns
// them with the remaining deck. Size is kept so that a dealt-out game still
// knows the full deck size.
func (d Deck) Distribute(count int) ([]Card, Deck) {
	if count > len(d.Cards) {
		count = len(d.Cards)
	}
	cards := SortCards(d.Cards[:count])
	remaining := Deck{Cards: d.Cards[count:], Size: d.Size, MinRank: d.MinRank, MaxRank: d.MaxRank}
	return cards, remaining
}

// Complement returns every card of the rank range that is not in cards,
// enumerated in suit sort order (Hearts, Clubs, Diamonds, Spades) and
// ascending rank. Membership is tracked with one bitmask per suit.
func Complement(cards []Card, minRank, maxRank Rank) []Card {
	var masks [4]uint32
	for _, card := range cards {
		masks[card.Suit] |= 1 << uint(card.Rank-minRank)
	}

	full := uint32(1)<<uint(maxRank-minRank+1) - 1
	var complement []Card
	for _, suit := range sortedSuits {
		mask := full &^ masks[suit]
		for rank := minRank; rank <= maxRank; rank++ {
			if mask&(1<<uint(rank-minRank)) != 0 {
				complement = append(complement, Card{Suit: suit, Rank: rank})
			}
		}
	}
	return complement
}
