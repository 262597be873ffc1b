package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/chzyer/readline"
	"github.com/joho/godotenv"
	"github.com/pkg/profile"
	"github.com/saeidalz13/battleships/api"
	"github.com/saeidalz13/battleships/db"
	"github.com/saeidalz13/battleships/internal/console"
	mb "github.com/saeidalz13/battleships/models/battleship"
)

const (
	StageProd = "prod"
	StageDev  = "dev"
)

type config struct {
	stage       string
	difficulty  uint8
	databaseUrl string
	logLevel    log.Level
	seed        uint64
	profile     string
	movesFile   string
}

func loadConfig(args []string) (config, error) {
	if os.Getenv("STAGE") != StageProd {
		if err := godotenv.Load(".env"); err != nil && !errors.Is(err, os.ErrNotExist) {
			return config{}, err
		}
	}

	cfg := config{
		stage:       os.Getenv("STAGE"),
		databaseUrl: os.Getenv("DATABASE_URL"),
		profile:     os.Getenv("PROFILE"),
		seed:        uint64(time.Now().UnixNano()),
		logLevel:    log.WarnLevel,
	}

	if cfg.stage == "" {
		cfg.stage = StageDev
	}
	if cfg.stage != StageDev && cfg.stage != StageProd {
		return config{}, fmt.Errorf("invalid type of development stage: %s", cfg.stage)
	}

	switch strings.ToLower(os.Getenv("GAME_DIFFICULTY")) {
	case "", "easy":
		cfg.difficulty = mb.GameDifficultyEasy
	case "normal":
		cfg.difficulty = mb.GameDifficultyNormal
	case "hard":
		cfg.difficulty = mb.GameDifficultyHard
	default:
		return config{}, errors.New("GAME_DIFFICULTY must be easy, normal or hard")
	}

	if lvl := os.Getenv("LOG_LEVEL"); lvl != "" {
		level, err := log.ParseLevel(lvl)
		if err != nil {
			return config{}, err
		}
		cfg.logLevel = level
	}

	if seedEnv := os.Getenv("SEED"); seedEnv != "" {
		seed, err := strconv.ParseUint(seedEnv, 10, 64)
		if err != nil {
			return config{}, fmt.Errorf("SEED must be an unsigned integer: %w", err)
		}
		cfg.seed = seed
	}

	if cfg.profile != "" && cfg.profile != "cpu" && cfg.profile != "mem" {
		return config{}, fmt.Errorf("PROFILE must be cpu or mem, got %s", cfg.profile)
	}

	if len(args) > 0 {
		cfg.movesFile = args[0]
	}
	return cfg, nil
}

func main() {
	cfg, err := loadConfig(os.Args[1:])
	if err != nil {
		log.Fatal("invalid configuration", "err", err)
	}
	log.SetLevel(cfg.logLevel)

	if err := run(cfg); err != nil {
		log.Fatal(err)
	}
}

func run(cfg config) error {
	switch cfg.profile {
	case "cpu":
		defer profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.Quiet).Stop()
	case "mem":
		defer profile.Start(profile.MemProfile, profile.ProfilePath("."), profile.Quiet).Stop()
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM)
	defer stop()

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "> ",
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return err
	}
	defer rl.Close()

	var in console.LineReader = rl
	if cfg.movesFile != "" {
		f, err := os.Open(cfg.movesFile)
		if err != nil {
			log.Warn("moves file was not found, using standard input", "file", cfg.movesFile)
		} else {
			defer f.Close()
			in = console.NewFallbackReader(console.NewScannerReader(f), rl)
		}
	}

	opts := []api.Option{api.WithLogger(log.Default())}
	if cfg.databaseUrl != "" {
		conn := db.MustConnectToDb(cfg.databaseUrl)
		defer conn.Close()
		opts = append(opts, api.WithDb(conn))
	}

	mp := api.NewMatchProcessor(mb.NewBattleshipGameManager(), nil, opts...)

	user := console.NewUserPlayer(mb.PlayerOne, in, rl.Stdout())
	gridSize, err := mb.GridSizeForDifficulty(cfg.difficulty)
	if err != nil {
		return err
	}
	cpu := mb.NewCpuPlayer(mb.PlayerTwo, gridSize, cfg.seed)
	players := [2]mb.Player{user, cpu}
	log.Debug("cpu seeded", "seed", cfg.seed, "stage", cfg.stage)

	for {
		game, err := mp.CreateGame(ctx, cfg.difficulty, mb.PlayerOne)
		if err != nil {
			return err
		}
		cpu.Reset(game.GridSize())

		if _, err := mp.Run(ctx, game, players); err != nil {
			if isInputClosed(err) {
				log.Info("input closed, leaving the game")
				return nil
			}
			return err
		}

		again, err := mp.Rematch(ctx, players)
		if err != nil {
			if isInputClosed(err) {
				return nil
			}
			return err
		}
		if !again {
			return nil
		}
	}
}

func isInputClosed(err error) bool {
	return errors.Is(err, io.EOF) || errors.Is(err, readline.ErrInterrupt) || errors.Is(err, context.Canceled)
}
