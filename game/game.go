package game

import "fmt"

type Stage int

const (
	Idle Stage = iota
	Playing
	Ended
)

type DeckInfo struct {
	Size    int
	MinRank Rank
	MaxRank Rank
}

// Game owns the players, the undealt deck, the current trick and the trick
// log. Transitions take the environment explicitly and return a new game
// value; the receiver is never mutated.
type Game struct {
	Stage              Stage
	Deck               Deck
	DeckInfo           DeckInfo
	Players            []Player
	CurrentPlayerIndex int
	CurrentTrick       Trick
	LastTrick          Trick
	Tricks             []Trick
	TricksPlayed       int
	HeartsBroken       bool
}

// GamePublicState is the per-player projection of the game: everything
// except the other players' hands. It is the payload of lifecycle events and
// the sole game input to determinization.
type GamePublicState struct {
	Stage              Stage
	CurrentTrick       Trick
	LastTrick          Trick
	Tricks             []Trick
	TricksPlayed       int
	HeartsBroken       bool
	CurrentPlayerIndex int
	PlayersCount       int
	DeckInfo           DeckInfo
}

// HasPlayedInTrick reports whether the seat has already contributed a card
// to the current, unfinished trick.
func (gs GamePublicState) HasPlayedInTrick(seat int) bool {
	for i := range gs.CurrentTrick.Cards {
		if (gs.CurrentTrick.FirstPlayerIndex+i)%gs.PlayersCount == seat {
			return true
		}
	}
	return false
}

// Create builds an idle game holding a freshly constructed deck; no cards
// are dealt yet.
func Create(env Environment, players []Player) Game {
	deck := env.Dealer.CreateDeck()
	seated := make([]Player, len(players))
	for i, p := range players {
		seated[i] = p.clone()
	}
	return Game{
		Stage:    Idle,
		Deck:     deck,
		DeckInfo: DeckInfo{Size: deck.Size, MinRank: deck.MinRank, MaxRank: deck.MaxRank},
		Players:  seated,
	}
}

// Start shuffles and deals equal hands, picks the holder of the two of Clubs
// as first to act (seat 0 if absent, which only happens with non-standard
// decks), and emits GameStarted to every player. With auto play configured
// it also requests the first move.
func (g Game) Start(env Environment) (Game, error) {
	g = g.copy()

	deck := env.Dealer.ShuffleDeck(g.Deck)
	perPlayer := deck.Size / len(g.Players)
	for i := range g.Players {
		var hand []Card
		hand, deck = env.Dealer.DistributeCards(deck, perPlayer)
		g.Players[i].Hand = hand
	}
	g.Deck = deck

	g.CurrentPlayerIndex = g.leaderIndex()
	g.Stage = Playing

	g.emitToAll(env, func(base EventBase) PlayerEvent {
		return GameStartedEvent{EventBase: base}
	})

	if env.Config.Auto {
		return g.NextPlay(env)
	}
	return g, nil
}

// NextPlay dispatches a Play event to the current player and applies the
// returned move, if any. A nil return leaves the game waiting; no move is
// forced.
func (g Game) NextPlay(env Environment) (Game, error) {
	if g.Stage != Playing {
		return g, nil
	}
	player := g.Players[g.CurrentPlayerIndex]
	move := g.emit(env, player, func(base EventBase) PlayerEvent {
		return PlayEvent{EventBase: base}
	})
	if move == nil {
		return g, nil
	}
	return g.Played(env, player.ID, move)
}

// Played applies a move from the given player: validates it, emits
// PlayerPlayed, moves the card from hand to trick, and resolves the trick
// and the game end when due. Failures leave the game unchanged.
func (g Game) Played(env Environment, id PlayerID, move Move) (Game, error) {
	if g.Stage != Playing {
		return g, fmt.Errorf("%w: game is not in the playing stage", ErrInvalidMove)
	}

	seat := g.CurrentPlayerIndex
	mover := g.Players[seat]
	if mover.ID != id {
		return g, fmt.Errorf("%w: %s played out of turn", ErrInvalidPlayer, id)
	}
	if !env.ValidateMove(g.PublicState(), mover.PublicState(), move) {
		return g, ErrInvalidMove
	}
	cardMove, ok := move.(CardMove)
	if !ok {
		return g, ErrInvalidMove
	}
	if !containsCard(mover.Hand, cardMove.Card) {
		return g, fmt.Errorf("%w: card %s is not in hand", ErrInvalidMove, cardMove.Card)
	}

	g = g.copy()
	g.emitToAll(env, func(base EventBase) PlayerEvent {
		return PlayerPlayedEvent{EventBase: base, Playing: mover.PublicState(), Move: move}
	})

	g.Players[seat].Hand = removeCard(g.Players[seat].Hand, cardMove.Card)
	g.CurrentTrick = g.CurrentTrick.Add(cardMove.Card, seat)
	if cardMove.Card.IsHearts() {
		g.HeartsBroken = true
	}
	g.CurrentPlayerIndex = (seat + 1) % len(g.Players)

	if len(g.CurrentTrick.Cards) == len(g.Players) {
		g = g.finishTrick(env)
	}

	if g.TricksPlayed == g.DeckInfo.Size/len(g.Players) {
		g.Stage = Ended
		g.emitToAll(env, func(base EventBase) PlayerEvent {
			return GameEndedEvent{EventBase: base}
		})
		return g, nil
	}

	if env.Config.Auto {
		return g.NextPlay(env)
	}
	return g, nil
}

// finishTrick moves the full trick into the winner's pile, logs it, and
// hands the lead to the winner.
func (g Game) finishTrick(env Environment) Game {
	winner := g.CurrentTrick.Winner(len(g.Players))
	g.Players[winner].Tricks = append(g.Players[winner].Tricks, g.CurrentTrick)
	g.Tricks = append(g.Tricks, g.CurrentTrick)
	g.LastTrick = g.CurrentTrick
	g.CurrentTrick = Trick{}
	g.TricksPlayed++
	g.CurrentPlayerIndex = winner

	g.emitToAll(env, func(base EventBase) PlayerEvent {
		return TrickFinishedEvent{EventBase: base}
	})
	return g
}

// PlayerScore sums the penalty points of the player's captured tricks.
func (g Game) PlayerScore(id PlayerID) (int, error) {
	for _, p := range g.Players {
		if p.ID == id {
			score := 0
			for _, trick := range p.Tricks {
				score += trick.Score()
			}
			return score, nil
		}
	}
	return 0, fmt.Errorf("%w: %s", ErrPlayerNotFound, id)
}

func (g Game) CurrentPlayer() Player {
	return g.Players[g.CurrentPlayerIndex]
}

func (g Game) PublicState() GamePublicState {
	return GamePublicState{
		Stage:              g.Stage,
		CurrentTrick:       g.CurrentTrick.clone(),
		LastTrick:          g.LastTrick.clone(),
		Tricks:             cloneTricks(g.Tricks),
		TricksPlayed:       g.TricksPlayed,
		HeartsBroken:       g.HeartsBroken,
		CurrentPlayerIndex: g.CurrentPlayerIndex,
		PlayersCount:       len(g.Players),
		DeckInfo:           g.DeckInfo,
	}
}

func (g Game) leaderIndex() int {
	for i, p := range g.Players {
		if containsCard(p.Hand, TwoOfClubs) {
			return i
		}
	}
	return 0
}

func (g Game) copy() Game {
	players := make([]Player, len(g.Players))
	for i, p := range g.Players {
		players[i] = p.clone()
	}
	return Game{
		Stage:              g.Stage,
		Deck:               Deck{Cards: append([]Card(nil), g.Deck.Cards...), Size: g.Deck.Size, MinRank: g.Deck.MinRank, MaxRank: g.Deck.MaxRank},
		DeckInfo:           g.DeckInfo,
		Players:            players,
		CurrentPlayerIndex: g.CurrentPlayerIndex,
		CurrentTrick:       g.CurrentTrick.clone(),
		LastTrick:          g.LastTrick.clone(),
		Tricks:             cloneTricks(g.Tricks),
		TricksPlayed:       g.TricksPlayed,
		HeartsBroken:       g.HeartsBroken,
	}
}

func (g Game) emit(env Environment, player Player, build func(EventBase) PlayerEvent) Move {
	if env.Dispatcher == nil {
		return nil
	}
	base := EventBase{GameState: g.PublicState(), PlayerState: player.PublicState()}
	return env.Dispatcher(player.ID, build(base))
}

func (g Game) emitToAll(env Environment, build func(EventBase) PlayerEvent) {
	for _, player := range g.Players {
		g.emit(env, player, build)
	}
}

func containsCard(hand []Card, card Card) bool {
	for _, c := range hand {
		if c == card {
			return true
		}
	}
	return false
}

func removeCard(hand []Card, card Card) []Card {
	remaining := make([]Card, 0, len(hand))
	for _, c := range hand {
		if c != card {
			remaining = append(remaining, c)
		}
	}
	return remaining
}
