package main

import (
	"flag"
	"fmt"
	"os"
)

func main() {
	// Handle subcommands before flag parsing.
	if len(os.Args) > 1 && os.Args[1] == "rules" {
		rulesCmd := flag.NewFlagSet("rules", flag.ExitOnError)
		rulesCmd.Usage = func() {
			fmt.Fprintf(os.Stderr, "Usage: tenpin rules [flags]\n\nPrint the scoring rules.\n\nFlags:\n")
			rulesCmd.PrintDefaults()
		}
		width := rulesCmd.Int("width", 80, "word wrap width")
		_ = rulesCmd.Parse(os.Args[2:])

		out, err := renderRules(*width)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		fmt.Print(out)

		return
	}

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: tenpin [flags]\n       tenpin <command> [flags]\n\nFlags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nCommands:\n  rules   Print the scoring rules\n")
	}

	configPath := flag.String("config", "", "path to configuration file (default: tenpin.yaml if present)")
	envFile := flag.String("env", ".env", "path to .env file (ignored if missing)")
	bowler := flag.String("bowler", "", "bowler name (overrides bowler in config)")
	plain := flag.Bool("plain", false, "line-oriented console instead of the interactive scoresheet")
	flag.Parse()

	if err := loadDotEnv(*envFile); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	if err := run(*configPath, *bowler, *plain); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
