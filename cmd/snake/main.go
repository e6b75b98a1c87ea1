package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/gdamore/tcell/v2"
	"github.com/google/uuid"
	"golang.org/x/exp/rand"
	"golang.org/x/term"

	"github.com/trytobebee/tuisnake/pkg/config"
	"github.com/trytobebee/tuisnake/pkg/game"
	"github.com/trytobebee/tuisnake/pkg/input"
	"github.com/trytobebee/tuisnake/pkg/renderer"
)

var errNotTerminal = errors.New("stdout is not a terminal")

var scoreStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))

func main() {
	cfg := config.Default()
	flag.IntVar(&cfg.Width, "width", cfg.Width, "board width in cells")
	flag.IntVar(&cfg.Height, "height", cfg.Height, "board height in cells")
	flag.DurationVar(&cfg.PollTimeout, "tick", cfg.PollTimeout, "time between moves")
	flag.Uint64Var(&cfg.Seed, "seed", 0, "apple placement seed (0 = random)")
	flag.StringVar(&cfg.Backend, "backend", cfg.Backend, "renderer: ansi or tcell")
	flag.StringVar(&cfg.LogFile, "log", "", "append debug log to this file")
	flag.Parse()

	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(2)
	}

	score, err := run(cfg)
	if err != nil && !errors.Is(err, context.Canceled) {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}

	fmt.Println(scoreStyle.Render(scoreLine(score)))
}

func scoreLine(score int) string {
	return fmt.Sprintf("You scored %d points!", score)
}

func run(cfg config.Config) (int, error) {
	logger, closeLog, err := openLogger(cfg.LogFile, uuid.NewString())
	if err != nil {
		return 0, err
	}
	defer closeLog()

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	logger.Printf("backend=%s board=%dx%d tick=%v seed=%d", cfg.Backend, cfg.Width, cfg.Height, cfg.PollTimeout, seed)

	opts := game.Options{
		PollTimeout: cfg.PollTimeout,
		Rand:        rand.New(rand.NewSource(seed)),
		Logger:      logger,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.Backend == config.BackendTcell {
		return runScreen(ctx, cfg, opts)
	}
	return runANSI(ctx, cfg, opts)
}

// runANSI plays with raw escape codes for output and eiannone/keyboard for input
func runANSI(ctx context.Context, cfg config.Config, opts game.Options) (int, error) {
	if err := checkTerminal(int(os.Stdout.Fd())); err != nil {
		return 0, err
	}

	grid := renderer.NewTerminalGrid(os.Stdout, cfg.Width, cfg.Height)
	if err := grid.CheckSize(int(os.Stdout.Fd())); err != nil {
		return 0, err
	}

	keys := input.NewKeyboardSource()
	if err := keys.Start(); err != nil {
		return 0, err
	}
	defer keys.Stop()

	if err := grid.Open(); err != nil {
		return 0, fmt.Errorf("open screen: %w", err)
	}
	defer grid.Close()

	g, err := game.NewGame(grid, keys, opts)
	if err != nil {
		return 0, err
	}
	return g.Run(ctx)
}

// checkTerminal fails when fd is not a terminal; the ANSI backend writes escapes straight to it
func checkTerminal(fd int) error {
	if !term.IsTerminal(fd) {
		return errNotTerminal
	}
	return nil
}

// runScreen plays on a tcell screen
func runScreen(ctx context.Context, cfg config.Config, opts game.Options) (int, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return 0, fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return 0, fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()

	grid, err := renderer.NewScreenGrid(screen, cfg.Width, cfg.Height)
	if err != nil {
		return 0, err
	}

	keys := input.NewScreenSource(screen)
	defer keys.Stop()

	g, err := game.NewGame(grid, keys, opts)
	if err != nil {
		return 0, err
	}
	return g.Run(ctx)
}

// openLogger appends to path with the session id as prefix; an empty path discards
func openLogger(path, session string) (*log.Logger, func(), error) {
	prefix := fmt.Sprintf("[%s] ", session)
	if path == "" {
		return log.New(io.Discard, prefix, 0), func() {}, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	return log.New(f, prefix, log.LstdFlags|log.Lmicroseconds), func() { f.Close() }, nil
}
