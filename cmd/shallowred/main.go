// shallowred plays chess on the console: human against engine, or the
// engine against itself.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/bhataktaBhai/ShallowRed/internal/config"
	"github.com/bhataktaBhai/ShallowRed/internal/errors"
	"github.com/bhataktaBhai/ShallowRed/internal/output"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("shallowred version %s\n", programVersion)
		os.Exit(0)
	}

	cfg := config.NewConfig()
	if err := applyFlags(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	os.Exit(play(cfg))
}

// play runs the game with the log file open and returns the exit status.
func play(cfg *config.Config) int {
	logCloser, err := setupLogFile(cfg, *logFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	if logCloser != nil {
		defer logCloser.Close() //nolint:errcheck // G104: cleanup on exit
	}

	if err := run(cfg, os.Stdin, time.Now()); err != nil {
		fmt.Fprintf(cfg.LogFile, "Error: %v\n", err)
		return 1
	}
	return 0
}

// run plays one game and writes its records.
func run(cfg *config.Config, in io.Reader, now time.Time) error {
	session, err := NewSession(cfg, in)
	if err != nil {
		return err
	}
	if err := session.Run(); err != nil {
		return err
	}

	tags := output.GameTags(session.Game(), cfg)
	tags["Date"] = now.Format("2006.01.02")
	return session.WriteRecords(tags, createFile)
}

func createFile(path string) (io.WriteCloser, error) {
	return os.Create(path) //nolint:gosec // G304: path comes from the command line
}

// setupLogFile points the log at path. The returned closer is nil when no
// log file was requested.
func setupLogFile(cfg *config.Config, path string) (io.Closer, error) {
	if path == "" {
		return nil, nil
	}
	file, err := os.Create(path) //nolint:gosec // G304: path comes from the command line
	if err != nil {
		return nil, errors.Wrapf(err, "creating log file %s", path)
	}
	cfg.SetLog(file)
	return file, nil
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: shallowred [options]\n\n")
	fmt.Fprintf(os.Stderr, "Play chess against a small negamax engine, or watch it play itself.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nMoves:\n")
	fmt.Fprintf(os.Stderr, "  e4 Nf3 exd5 Nbd2 R1e2   algebraic, origin file or rank when ambiguous\n")
	fmt.Fprintf(os.Stderr, "  e8=Q e8N                promotion piece is required\n")
	fmt.Fprintf(os.Stderr, "  O-O 0-0-0               castling\n")
	fmt.Fprintf(os.Stderr, "  g1f3 e7e8q              coordinates\n")
}
