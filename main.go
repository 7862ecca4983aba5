package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"reversi/agent"
	"reversi/engine"
	"reversi/experiments"
	"reversi/experiments/metrics"
	"reversi/game"
	"reversi/meta"
	"reversi/searcher"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const usage = `usage:
  reversi play  [-size n] [-computer B|W] [-goroutines n] [-v]
  reversi match [-config file.yaml] [-out dir] [-v]
`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	var err error
	switch os.Args[1] {
	case "play":
		err = play(os.Args[2:], os.Stdin, os.Stdout)
	case "match":
		err = match(os.Args[2:])
	default:
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}
	if err != nil {
		log.Error().Err(err).Msg("exiting")
		os.Exit(1)
	}
}

func setupLogging(verbose bool) {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(zerolog.WarnLevel)
	if verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
}

// play runs one human against computer game on the terminal.
func play(args []string, stdin io.Reader, stdout io.Writer) error {
	flags := flag.NewFlagSet("play", flag.ExitOnError)
	size := flags.Int("size", 0, "Board dimension, prompted when 0")
	computer := flags.String("computer", "", "Color the computer plays (B or W), prompted when empty")
	goroutines := flags.Int("goroutines", 1, "Goroutines scoring root moves")
	verbose := flags.Bool("v", false, "Log search details")
	if err := flags.Parse(args); err != nil {
		return err
	}
	setupLogging(*verbose)

	in := bufio.NewReader(stdin)

	n := *size
	if n == 0 {
		fmt.Fprint(stdout, "Enter the board dimension: ")
		if _, err := fmt.Fscan(in, &n); err != nil {
			return fmt.Errorf("failed to read board dimension: %w", err)
		}
	}
	if n > meta.MaxBoardSize {
		return fmt.Errorf("board dimension %d exceeds %d", n, meta.MaxBoardSize)
	}

	token := *computer
	if token == "" {
		fmt.Fprint(stdout, "Computer plays (B/W): ")
		if _, err := fmt.Fscan(in, &token); err != nil {
			return fmt.Errorf("failed to read computer color: %w", err)
		}
	}
	token = strings.TrimSpace(token)
	if token == "" {
		return errors.New("empty computer color")
	}
	color, err := game.ParseCell(rune(token[0]))
	if err != nil || !color.IsColor() {
		return fmt.Errorf("computer color must be B or W, got %q", token)
	}

	agents := map[game.Cell]agent.Agent{
		color:            agent.NewSearchAgent(searcher.NewMinimax(searcher.WithGoroutines(*goroutines))),
		color.Opposite(): agent.NewHumanAgent(in, stdout),
	}
	e, err := engine.NewLocal(n, agents, engine.WithOutput(stdout))
	if err != nil {
		return err
	}
	_, err = e.Run()
	return err
}

// match runs computer-only games from a YAML config and stores CSV records.
func match(args []string) error {
	flags := flag.NewFlagSet("match", flag.ExitOnError)
	configPath := flags.String("config", "", "Match config YAML, built-in default when empty")
	out := flags.String("out", "results", "Directory for CSV records")
	verbose := flags.Bool("v", false, "Log search details")
	if err := flags.Parse(args); err != nil {
		return err
	}
	setupLogging(*verbose)
	if !*verbose {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	cfg := experiments.DefaultConfig()
	if *configPath != "" {
		var err error
		cfg, err = experiments.LoadConfig(*configPath)
		if err != nil {
			return err
		}
	}

	writer, err := metrics.NewWriter(*out, cfg.Name)
	if err != nil {
		return err
	}
	_, err = experiments.Run(cfg, writer)
	return err
}
