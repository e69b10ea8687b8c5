package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/Mshel/mulawee/internal/console"
	"github.com/Mshel/mulawee/internal/game"
	"github.com/Mshel/mulawee/internal/ui"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
)

func main() {
	cfg := parseFlags()

	logFile, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error opening log file: %v\n", err)
		os.Exit(1)
	}
	defer logFile.Close()

	logger := log.NewWithOptions(logFile, log.Options{ReportTimestamp: true, Prefix: "mulawee"})
	if cfg.Debug {
		logger.SetLevel(log.DebugLevel)
	}

	if err := run(cfg, logger); err != nil {
		logger.Error("Game aborted", "error", err)
		fmt.Fprintf(os.Stderr, "error %v\n", err)
		os.Exit(1)
	}
	fmt.Println("Bye")
}

func parseFlags() game.Config {
	cfg := game.DefaultConfig()
	flag.StringVar(&cfg.LevelDir, "levels", cfg.LevelDir, "Directory with level1.dat..level3.dat (default: built-in levels)")
	flag.StringVar(&cfg.ScoreFile, "scores", cfg.ScoreFile, "High score file, or database path with -store sqlite")
	flag.StringVar(&cfg.ScoreStore, "store", cfg.ScoreStore, "High score store: file or sqlite")
	flag.StringVar(&cfg.Frontend, "frontend", cfg.Frontend, "Terminal frontend: tea or tcell")
	flag.BoolVar(&cfg.LegacyTurns, "legacy-turns", cfg.LegacyTurns, "Count blocked moves and invalid keys as turns")
	flag.StringVar(&cfg.LogFile, "log", cfg.LogFile, "Log file")
	flag.BoolVar(&cfg.Debug, "debug", cfg.Debug, "Enable debug logging")
	flag.Parse()
	return cfg
}

func run(cfg game.Config, logger *log.Logger) error {
	var levelSource game.LevelSource = game.EmbeddedLevelSource()
	if cfg.LevelDir != "" {
		levelSource = game.NewDirLevelSource(cfg.LevelDir)
	}
	levels, err := game.LoadLevels(levelSource, logger)
	if err != nil {
		return err
	}

	store, closeStore, err := openScoreStore(cfg, logger)
	if err != nil {
		return err
	}
	defer closeStore()

	machine, err := game.NewGameStateMachine(levels, game.NewScoreManager(store, logger), logger)
	if err != nil {
		return err
	}
	machine.SetLegacyTurns(cfg.LegacyTurns)

	logger.Info("Starting", "frontend", cfg.Frontend, "store", cfg.ScoreStore, "legacy_turns", cfg.LegacyTurns)

	switch cfg.Frontend {
	case "tea":
		p := tea.NewProgram(ui.NewControllerModel(machine, logger, 0, 0), tea.WithAltScreen())
		_, err = p.Run()
		return err
	case "tcell":
		screen, err := console.Open(logger)
		if err != nil {
			return err
		}
		defer screen.Close()
		return machine.RunConsole(screen)
	default:
		return fmt.Errorf("unknown frontend %q", cfg.Frontend)
	}
}

func openScoreStore(cfg game.Config, logger *log.Logger) (game.ScoreStore, func(), error) {
	switch cfg.ScoreStore {
	case "file":
		return game.NewFileScoreStore(cfg.ScoreFile), func() {}, nil
	case "sqlite":
		path := cfg.ScoreFile
		if path == game.DefaultScoreFile {
			path = game.DefaultDBPath
		}
		store, err := game.NewSQLiteScoreStore(path, logger)
		if err != nil {
			return nil, nil, err
		}
		return store, func() {
			if err := store.Close(); err != nil {
				logger.Warn("Failed to close score database", "error", err)
			}
		}, nil
	default:
		return nil, nil, fmt.Errorf("unknown score store %q", cfg.ScoreStore)
	}
}
