package main

import (
	"context"
	"io"
	"math/rand/v2"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/kiryu-dev/tic-tac-toe-match/internal/adapters/console"
	"github.com/kiryu-dev/tic-tac-toe-match/internal/adapters/eventlog"
	"github.com/kiryu-dev/tic-tac-toe-match/internal/config"
	"github.com/kiryu-dev/tic-tac-toe-match/internal/domain"
	"github.com/kiryu-dev/tic-tac-toe-match/internal/usecase/match"
	"github.com/kiryu-dev/tic-tac-toe-match/internal/usecase/round"
	"github.com/kiryu-dev/tic-tac-toe-match/internal/usecase/strategy"
	"github.com/pkg/errors"
	"go.uber.org/atomic"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

func newLogger(cfg config.Config) (*zap.Logger, error) {
	level, err := zap.ParseAtomicLevel(cfg.LogLevel)
	if err != nil {
		return nil, errors.WithMessagef(err, "parse log level '%s'", cfg.LogLevel)
	}
	zapCfg := zap.NewProductionConfig()
	zapCfg.Level = level
	zapCfg.OutputPaths = []string{cfg.LogOutput}
	logger, err := zapCfg.Build()
	if err != nil {
		return nil, errors.WithMessage(err, "build logger")
	}
	return logger, nil
}

func run(ctx context.Context, cfg config.Config, stdin io.Reader, stdout io.Writer, tty bool) error {
	logger, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer func() {
		_ = logger.Sync()
	}()
	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	logger.Debug("random source seeded", zap.Uint64("seed", seed))
	rnd := rand.New(rand.NewPCG(seed, seed>>1|1))

	var screenOpts []console.Option
	if tty {
		screenOpts = append(screenOpts, console.WithClearScreen())
		if cfg.Animation {
			screenOpts = append(screenOpts, console.WithFireworks(rnd, time.Sleep))
		}
	}
	display := console.NewRenderer(stdout, screenOpts...)
	input := console.NewInput(stdin, stdout)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	sigChan := make(chan os.Signal, 2)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigChan)
	caught := atomic.NewString("")
	errGroup, ctx := errgroup.WithContext(ctx)
	errGroup.Go(func() error {
		select {
		case s := <-sigChan:
			caught.Store(s.String())
			return errors.Errorf("captured signal: %v", s)
		case <-ctx.Done():
			return nil
		}
	})
	errGroup.Go(func() error {
		defer cancel()
		return play(ctx, cfg, rnd, display, input, logger)
	})
	err = errGroup.Wait()
	display.Goodbye()
	switch {
	case caught.Load() != "":
		logger.Info("match interrupted", zap.String("signal", caught.Load()))
		return nil
	case errors.Is(err, domain.ErrInputClosed):
		logger.Warn("input closed before the match finished")
		return nil
	case errors.Is(err, domain.ErrInvalidMove):
		logger.Fatal("a move strategy produced an illegal move", zap.Error(err))
	}
	return err
}

type screen interface {
	domain.Renderer
	Welcome()
}

type humanInput interface {
	domain.InputProvider
	domain.ContinueDecider
	AskName(ctx context.Context) (string, error)
}

func play(ctx context.Context, cfg config.Config, rnd *rand.Rand, scr screen, input humanInput, logger *zap.Logger) error {
	scr.Welcome()
	name := cfg.PlayerName
	if name == "" {
		var err error
		if name, err = input.AskName(ctx); err != nil {
			return errors.WithMessage(err, "ask player name")
		}
	}
	humanCell := domain.Cell(cfg.PlayerMarker[0])
	human := domain.NewPlayer(name, humanCell, strategy.NewHuman(input, logger))
	computer := domain.NewPlayer(
		cfg.ComputerNames[rnd.IntN(len(cfg.ComputerNames))],
		domain.Opponent(humanCell),
		strategy.NewComputer(cfg.Fallibility, rnd, logger),
	)

	matchID := uuid.NewString()
	renderers := domain.Renderers{scr}
	if cfg.EventsFile != "" {
		file, err := os.OpenFile(cfg.EventsFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return errors.WithMessage(err, "open events file")
		}
		defer func() {
			_ = file.Close()
		}()
		renderers = append(renderers, eventlog.New(file, matchID, logger))
	}

	opts := match.Options{ID: matchID, ScoreLimit: cfg.ScoreLimit}
	switch cfg.FirstMover {
	case config.FirstMoverComputer:
		opts.FirstSeat = 1
	case config.FirstMoverAlternate:
		opts.Alternate = true
	}
	m := match.New(
		[2]*domain.Player{human, computer},
		round.New(renderers, logger),
		input,
		renderers,
		opts,
		logger,
	)
	if _, err := m.Play(ctx); err != nil {
		return errors.WithMessage(err, "play match")
	}
	return nil
}
