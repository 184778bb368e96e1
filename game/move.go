package game

// Move is a closed sum: playing a card, or swapping cards. Only the card
// variant is accepted by the play rules; the swap variant exists for a
// passing phase that is not part of this rule set.
type Move interface {
	isMove()
}

type CardMove struct {
	Card Card
}

func (CardMove) isMove() {}

type SwapMove struct {
	Cards []Card
}

func (SwapMove) isMove() {}
