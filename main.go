package main

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"

	"hearts/ai"
	"hearts/engine"
	"hearts/game"
)

type config struct {
	games      int
	samples    int
	episodes   int
	goroutines int
	seed       uint64
	logLevel   string
}

func main() {
	_ = godotenv.Load()
	cfg := loadConfig()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	level, err := zerolog.ParseLevel(cfg.logLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	runSimulation(cfg)
}

// runSimulation plays three random seats against one search seat and reports
// average scores. A low average for the search seat means it is dodging
// penalty points.
func runSimulation(cfg config) {
	rng := rand.New(rand.NewSource(cfg.seed))
	dealer := game.NewDealer(rng)

	players := []game.Player{
		game.NewPlayer("p0", "Player 0"),
		game.NewPlayer("p1", "Player 1"),
		game.NewPlayer("p2", "Player 2"),
		game.NewPlayer("p3", "Player 3"),
	}
	agent := ai.NewAgent(
		ai.WithDealer(dealer),
		ai.WithSamples(cfg.samples),
		ai.WithEpisodes(cfg.episodes),
		ai.WithGoroutines(cfg.goroutines),
	)
	brains := map[game.PlayerID]engine.Brain{
		"p0": engine.RandomBrain(rng),
		"p1": engine.RandomBrain(rng),
		"p2": engine.RandomBrain(rng),
		"p3": engine.SearchBrain(agent),
	}

	totals := make(map[game.PlayerID]int, len(players))
	for i := 0; i < cfg.games; i++ {
		e := engine.New(players, brains, game.WithDealer(dealer))
		g, err := e.Run()
		if err != nil {
			log.Fatal().Err(err).Int("game", i+1).Msg("game failed")
		}
		for _, p := range g.Players {
			score, err := g.PlayerScore(p.ID)
			if err != nil {
				log.Fatal().Err(err).Msg("missing player score")
			}
			totals[p.ID] += score
		}
	}

	for _, p := range players {
		fmt.Printf("%s (%s): total %d, average %.1f\n",
			p.ID, p.Name, totals[p.ID], float64(totals[p.ID])/float64(cfg.games))
	}
}

func loadConfig() config {
	return config{
		games:      intFromEnv("HEARTS_GAMES", 10),
		samples:    intFromEnv("HEARTS_SAMPLES", 10),
		episodes:   intFromEnv("HEARTS_EPISODES", 500),
		goroutines: intFromEnv("HEARTS_GOROUTINES", 1),
		seed:       uint64(intFromEnv("HEARTS_SEED", int(time.Now().UnixNano()))),
		logLevel:   stringFromEnv("HEARTS_LOG_LEVEL", "info"),
	}
}

func intFromEnv(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return fallback
}

func stringFromEnv(key string, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
