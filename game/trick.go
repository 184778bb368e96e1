package game

// Trick is one round of play: the cards contributed so far, in play order,
// plus the seat index of the player who led. The first card defines the led
// suit; an empty trick has none.
type Trick struct {
	Cards            []Card
	FirstPlayerIndex int
}

func (t Trick) IsEmpty() bool {
	return len(t.Cards) == 0
}

// Suit returns the led suit; ok is false for an empty trick.
func (t Trick) Suit() (Suit, bool) {
	if t.IsEmpty() {
		return 0, false
	}
	return t.Cards[0].Suit, true
}

// Add returns a new trick with the card appended, recording the leading seat
// when the trick was empty.
func (t Trick) Add(card Card, playerIndex int) Trick {
	first := t.FirstPlayerIndex
	if t.IsEmpty() {
		first = playerIndex
	}
	cards := make([]Card, 0, len(t.Cards)+1)
	cards = append(cards, t.Cards...)
	cards = append(cards, card)
	return Trick{Cards: cards, FirstPlayerIndex: first}
}

// Score sums the penalty points of the cards in the trick.
func (t Trick) Score() int {
	score := 0
	for _, card := range t.Cards {
		score += card.Score()
	}
	return score
}

// Winner resolves the seat that takes the trick: the highest rank among cards
// following the led suit, offset from the leading seat. The trick must not be
// empty. Ties cannot occur since ranks are unique within a suit.
func (t Trick) Winner(playerCount int) int {
	led := t.Cards[0].Suit
	best := 0
	for i, card := range t.Cards[1:] {
		if card.Suit == led && card.Rank > t.Cards[best].Rank {
			best = i + 1
		}
	}
	return (t.FirstPlayerIndex + best) % playerCount
}

func (t Trick) clone() Trick {
	return Trick{Cards: append([]Card(nil), t.Cards...), FirstPlayerIndex: t.FirstPlayerIndex}
}

func cloneTricks(tricks []Trick) []Trick {
	cloned := make([]Trick, len(tricks))
	for i, t := range tricks {
		cloned[i] = t.clone()
	}
	return cloned
}
