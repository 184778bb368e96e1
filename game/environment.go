package game

// MoveValidator decides whether a move is legal given the public game state
// and the moving player's state. The production implementation is
// IsValidMove; tests may force always-true or always-false.
type MoveValidator func(gs GamePublicState, ps PlayerPublicState, move Move) bool

type Config struct {
	// Auto makes the state machine request and apply the next seat's move
	// after every transition that leaves the game in the Playing stage.
	Auto bool
}

// Environment bundles the collaborators threaded through every transition:
// dealer, move validator, event dispatcher and config. Each game simulation
// owns its environment, so independent simulations can run in parallel.
type Environment struct {
	Dealer       Dealer
	ValidateMove MoveValidator
	Dispatcher   PlayerEventDispatcher
	Config       Config
}

type EnvOption func(env *Environment)

func WithDealer(dealer Dealer) EnvOption {
	return func(env *Environment) {
		if dealer != nil {
			env.Dealer = dealer
		}
	}
}

func WithValidator(validate MoveValidator) EnvOption {
	return func(env *Environment) {
		if validate != nil {
			env.ValidateMove = validate
		}
	}
}

func WithDispatcher(dispatcher PlayerEventDispatcher) EnvOption {
	return func(env *Environment) {
		if dispatcher != nil {
			env.Dispatcher = dispatcher
		}
	}
}

func WithAuto(auto bool) EnvOption {
	return func(env *Environment) {
		env.Config.Auto = auto
	}
}

// BuildEnvironment applies options over the default environment: random
// dealer, production move validation, a dispatcher that never returns a move,
// and auto play enabled.
func BuildEnvironment(options ...EnvOption) Environment {
	env := Environment{
		Dealer:       NewDealer(nil),
		ValidateMove: IsValidMove,
		Dispatcher:   func(PlayerID, PlayerEvent) Move { return nil },
		Config:       Config{Auto: true},
	}
	for _, option := range options {
		option(&env)
	}
	return env
}
