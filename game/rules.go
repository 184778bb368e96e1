package game

// IsValidMove checks the three play rules for a card move:
//   - the very first card of the game must be the two of Clubs
//   - a non-empty trick must be followed in the led suit unless the hand is
//     void of it
//   - a Heart may not lead a trick before Hearts is broken, unless the hand
//     is all Hearts
//
// Discarding a Heart mid-trick is legal even before Hearts is broken.
func IsValidMove(gs GamePublicState, ps PlayerPublicState, move Move) bool {
	cardMove, ok := move.(CardMove)
	if !ok {
		return false
	}
	card := cardMove.Card

	if gs.TricksPlayed == 0 && gs.CurrentTrick.IsEmpty() {
		return card == TwoOfClubs
	}

	if led, ok := gs.CurrentTrick.Suit(); ok {
		return card.Suit == led || !hasSuit(ps.Hand, led)
	}

	if card.IsHearts() && !gs.HeartsBroken && !allHearts(ps.Hand) {
		return false
	}
	return true
}

// ValidMoves maps the player's hand to card moves and filters them by
// IsValidMove. Whenever it is a seat's turn with cards in hand at least one
// move is legal, because the suit-following rule has the void exception.
func ValidMoves(gs GamePublicState, ps PlayerPublicState) []Move {
	var moves []Move
	for _, card := range ps.Hand {
		move := CardMove{Card: card}
		if IsValidMove(gs, ps, move) {
			moves = append(moves, move)
		}
	}
	return moves
}

func hasSuit(hand []Card, suit Suit) bool {
	for _, card := range hand {
		if card.Suit == suit {
			return true
		}
	}
	return false
}

func allHearts(hand []Card) bool {
	for _, card := range hand {
		if !card.IsHearts() {
			return false
		}
	}
	return true
}
