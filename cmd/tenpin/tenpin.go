package main

import (
	"errors"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/joho/godotenv"
	"golang.org/x/term"

	"github.com/germanamz/tenpin/cmd/tenpin/internal/app"
	"github.com/germanamz/tenpin/pkg/lane"
)

const defaultConfigFile = "tenpin.yaml"

func loadDotEnv(path string) error {
	err := godotenv.Load(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}

// loadConfig resolves the config: explicit flag → tenpin.yaml → defaults.
func loadConfig(path string) (lane.Config, error) {
	if path != "" {
		return lane.LoadConfig(path)
	}

	if _, err := os.Stat(defaultConfigFile); err == nil {
		return lane.LoadConfig(defaultConfigFile)
	}

	return lane.DefaultConfig(), nil
}

// run builds the lane and enters the console loop or the TUI.
func run(configPath, bowler string, plain bool) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}

	interactive := term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))

	switch {
	case bowler != "":
		cfg.Bowler = bowler
	case interactive && configPath == "" && cfg.Bowler == lane.DefaultBowler:
		name, err := askBowler(cfg.Bowler)
		if err != nil {
			return err
		}
		cfg.Bowler = name
	}

	log, closeLog, err := cfg.Log.NewLogger()
	if err != nil {
		return err
	}
	defer func() { _ = closeLog() }()

	l, err := lane.New(cfg, log)
	if err != nil {
		return err
	}

	if plain || !interactive {
		return runConsole(l, os.Stdin, os.Stdout)
	}

	p := tea.NewProgram(app.New(l))
	_, err = p.Run()
	return err
}

// askBowler prompts for the bowler name, keeping fallback when left blank.
func askBowler(fallback string) (string, error) {
	name := ""
	if err := huh.NewForm(huh.NewGroup(
		huh.NewInput().
			Title("Who is bowling?").
			Placeholder(fallback).
			Value(&name),
	)).Run(); err != nil {
		return "", err
	}

	if name == "" {
		return fallback, nil
	}
	return name, nil
}
