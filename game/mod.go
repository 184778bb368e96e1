package game

// State is the contract a searchable game position exposes to a generic
// move-search primitive. Implementations must be immutable: Play always
// returns a new state and never touches the receiver.
type State interface {
	// Player is the seat to move.
	Player() PlayerID
	// LegalMoves is empty exactly at terminal states.
	LegalMoves() []Move
	Play(move Move) State
	IsFinal() bool
	// Reward is the normalized outcome for a seat at a terminal state,
	// higher is better.
	Reward(player PlayerID) float64
}
