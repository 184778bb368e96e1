package game

// PlayerEvent is the closed set of lifecycle events dispatched to players.
// Every event carries the public game state and the receiving player's own
// state; dispatch sites switch exhaustively on the concrete type.
type PlayerEvent interface {
	isPlayerEvent()
}

type EventBase struct {
	GameState   GamePublicState
	PlayerState PlayerPublicState
}

func (EventBase) isPlayerEvent() {}

type GameStartedEvent struct {
	EventBase
}

// PlayEvent asks the receiving player for a move; it is the only event whose
// dispatcher return value is consulted.
type PlayEvent struct {
	EventBase
}

type PlayerPlayedEvent struct {
	EventBase
	Playing PlayerPublicState
	Move    Move
}

type TrickFinishedEvent struct {
	EventBase
}

type GameEndedEvent struct {
	EventBase
}

// PlayerEventDispatcher is called synchronously for every lifecycle event.
// A nil return means no move; only a PlayEvent's return value is applied.
type PlayerEventDispatcher func(id PlayerID, event PlayerEvent) Move
