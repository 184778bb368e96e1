package game

type PlayerID string

// Player is a seated player owned by the game: the hand shrinks by exactly
// one card per move, Tricks grows by one each time the player wins a trick.
type Player struct {
	ID     PlayerID
	Name   string
	Hand   []Card
	Tricks []Trick
}

func NewPlayer(id PlayerID, name string) Player {
	return Player{ID: id, Name: name}
}

// PlayerPublicState is the projection of a player visible to that player
// itself: identity, own hand and own captured tricks.
type PlayerPublicState struct {
	ID     PlayerID
	Name   string
	Hand   []Card
	Tricks []Trick
}

func (p Player) PublicState() PlayerPublicState {
	return PlayerPublicState{
		ID:     p.ID,
		Name:   p.Name,
		Hand:   append([]Card(nil), p.Hand...),
		Tricks: cloneTricks(p.Tricks),
	}
}

func (p Player) clone() Player {
	return Player{
		ID:     p.ID,
		Name:   p.Name,
		Hand:   append([]Card(nil), p.Hand...),
		Tricks: cloneTricks(p.Tricks),
	}
}
