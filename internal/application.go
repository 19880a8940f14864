package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/tabletop/internal/config"
	"github.com/rocketscienceinc/tabletop/internal/console"
	"github.com/rocketscienceinc/tabletop/internal/entity"
	"github.com/rocketscienceinc/tabletop/internal/match"
	"github.com/rocketscienceinc/tabletop/internal/metrics"
	"github.com/rocketscienceinc/tabletop/internal/rpsls"
	"github.com/rocketscienceinc/tabletop/internal/tictactoe"
	"github.com/rocketscienceinc/tabletop/internal/twentyone"
)

// RunApp - runs one console session of the configured game.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigs
		log.Info("Received signal, shutting down", "signal", sig)
		cancel()
	}()

	seed := conf.Seed
	if seed == 0 {
		seed = rand.Uint64()
	}
	log.Debug("random source seeded", "seed", seed)

	registry := metrics.New()
	session := &session{
		logger:   logger,
		conf:     conf,
		rng:      rand.New(rand.NewPCG(seed, seed)),
		registry: registry,
		prompter: console.NewPrompter(os.Stdin, os.Stdout),
		renderer: console.NewRenderer(os.Stdout),
	}

	played, err := session.run(ctx)
	logMetrics(log, registry)

	switch {
	case errors.Is(err, context.Canceled):
		log.Info("Session interrupted", "matches", played)
		return nil
	case err != nil:
		return err
	}

	log.Info("Session finished", "matches", played)

	return nil
}

type session struct {
	logger   *slog.Logger
	conf     *config.Config
	rng      *rand.Rand
	registry *metrics.Registry
	prompter *console.Prompter
	renderer *console.Renderer
}

func (that *session) run(ctx context.Context) (int, error) {
	name, err := that.prompter.RequestName(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to read player name: %w", err)
	}

	rules, opponent, err := that.newRules(ctx)
	if err != nil {
		return 0, err
	}

	trackHistory := that.conf.Game == config.GameRPSLS

	human := entity.NewParticipant(name, trackHistory)
	that.registry.ParticipantCreated(metrics.KindHuman)

	computer := entity.NewParticipant(opponent, trackHistory)
	that.registry.ParticipantCreated(metrics.KindComputer)

	game, err := match.New(that.conf.WinsRequired, human, computer)
	if err != nil {
		return 0, fmt.Errorf("failed to create match: %w", err)
	}

	that.renderer.Greet(rules.Title(), human.Name(), computer.Name())

	controller := match.NewController(that.logger, game, rules, that.prompter, that.renderer, that.registry)

	played, err := controller.Run(ctx)
	if err != nil {
		return played, fmt.Errorf("session failed: %w", err)
	}

	that.renderer.Farewell(human.Name())

	return played, nil
}

// newRules builds the configured game and names the computer opponent.
func (that *session) newRules(ctx context.Context) (match.Rules, string, error) {
	switch that.conf.Game {
	case config.GameRPSLS:
		personality := rpsls.RandomPersonality(that.rng)
		rules := rpsls.NewRules(that.logger,
			rpsls.NewHumanChooser(that.prompter),
			rpsls.NewComputerChooser(personality, that.rng))

		return rules, personality.Name, nil
	case config.GameTicTacToe:
		marker, err := tictactoe.ChooseMarker(ctx, that.prompter)
		if err != nil {
			return nil, "", err
		}

		rules := tictactoe.NewRules(that.logger,
			tictactoe.NewHumanPlayer(that.prompter),
			tictactoe.NewComputerPlayer(that.rng),
			marker, that.renderer, that.rng)

		return rules, pick(that.rng, tictactoe.ComputerNames), nil
	case config.GameTwentyOne:
		rules := twentyone.NewRules(that.logger, twentyone.NewHumanDecider(that.prompter), that.renderer, that.rng)

		return rules, pick(that.rng, twentyone.DealerNames), nil
	default:
		return nil, "", fmt.Errorf("%w: %q", config.ErrUnknownGame, that.conf.Game)
	}
}

func pick(rng *rand.Rand, names []string) string {
	return names[rng.IntN(len(names))]
}

func logMetrics(log *slog.Logger, registry *metrics.Registry) {
	families, err := registry.Gatherer().Gather()
	if err != nil {
		log.Error("could not gather metrics", "error", err)
		return
	}

	for _, family := range families {
		for _, metric := range family.GetMetric() {
			attrs := []any{"metric", family.GetName(), "value", metric.GetCounter().GetValue()}
			for _, label := range metric.GetLabel() {
				attrs = append(attrs, label.GetName(), label.GetValue())
			}

			log.Debug("session metric", attrs...)
		}
	}
}
