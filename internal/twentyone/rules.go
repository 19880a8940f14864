package twentyone

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/rocketscienceinc/tabletop/internal/apperror"
	"github.com/rocketscienceinc/tabletop/internal/entity"
	"github.com/rocketscienceinc/tabletop/internal/resolver"
)

const Name = "twentyone"

type handSink interface {
	ShowHand(hand entity.HandSnapshot)
}

// Rules deals a fresh deck every round. The player is the first participant and the dealer the second.
type Rules struct {
	logger *slog.Logger

	rng  shuffler
	sink handSink

	decider Decider

	deck   *Deck
	player *Hand
	dealer *Hand
}

func NewRules(logger *slog.Logger, decider Decider, sink handSink, rng shuffler) *Rules {
	return &Rules{
		logger:  logger.With("component", Name),
		rng:     rng,
		sink:    sink,
		decider: decider,
		player:  NewHand(),
		dealer:  NewHand(),
	}
}

func (that *Rules) Name() string {
	return Name
}

func (that *Rules) Title() string {
	return "Twenty-One"
}

func (that *Rules) Player() *Hand {
	return that.player
}

func (that *Rules) Dealer() *Hand {
	return that.dealer
}

// StartRound shuffles a new deck and empties both hands.
func (that *Rules) StartRound(round *entity.Round) {
	that.deck = NewDeck(that.rng)
	that.player.Reset()
	that.dealer.Reset()

	that.logger.Debug("deck shuffled", "round", round.Index, "cards", that.deck.Len())
}

func (that *Rules) Select(ctx context.Context, round *entity.Round) error {
	if err := that.deal(); err != nil {
		return err
	}

	if err := that.playerTurn(ctx, round); err != nil {
		return err
	}

	that.sink.ShowHand(that.player.Snapshot(round.First.Name(), 0))
	round.First.Select(totalSymbol(that.player))

	// A player bust ends the round with the dealer's hole card still face down.
	if that.player.Busted() {
		that.sink.ShowHand(that.dealer.Snapshot(round.Second.Name(), 1))
		round.Second.Select(that.dealer.Cards()[0].Symbol())

		return nil
	}

	if err := that.dealerTurn(); err != nil {
		return err
	}

	that.sink.ShowHand(that.dealer.Snapshot(round.Second.Name(), 0))
	round.Second.Select(totalSymbol(that.dealer))

	return nil
}

func (that *Rules) Resolve(round *entity.Round) (entity.Outcome, error) {
	player, dealer := that.player.Total(), that.dealer.Total()
	outcome := resolver.CompareTotals(player, dealer, Ceiling)

	switch {
	case that.player.Busted():
		round.Summary = fmt.Sprintf("%s busts with %d", round.First, player)
	case that.dealer.Busted():
		round.Summary = fmt.Sprintf("%s busts with %d", round.Second, dealer)
	case outcome == entity.OutcomeTie:
		round.Summary = fmt.Sprintf("push at %d", player)
	default:
		round.Summary = fmt.Sprintf("%d against %d", player, dealer)
	}

	that.logger.Debug("hands compared", "round", round.Index, "player", player, "dealer", dealer, "outcome", outcome.String())

	return outcome, nil
}

// deal gives two cards each, alternating between player and dealer.
func (that *Rules) deal() error {
	for range 2 {
		for _, hand := range []*Hand{that.player, that.dealer} {
			if err := that.hit(hand); err != nil {
				return err
			}
		}
	}

	return nil
}

// playerTurn shows the dealer's first card only and stops on stay, bust or 21.
func (that *Rules) playerTurn(ctx context.Context, round *entity.Round) error {
	for that.player.Total() < Ceiling {
		that.sink.ShowHand(that.dealer.Snapshot(round.Second.Name(), 1))
		that.sink.ShowHand(that.player.Snapshot(round.First.Name(), 0))

		action, err := that.decider.Decide(ctx, that.player)
		if err != nil {
			return fmt.Errorf("%s failed to decide: %w", round.First, err)
		}

		switch action {
		case ActionStay:
			return nil
		case ActionHit:
		default:
			return fmt.Errorf("%w: %q", apperror.ErrInvalidSymbol, action)
		}

		if err = that.hit(that.player); err != nil {
			return err
		}
	}

	return nil
}

func (that *Rules) dealerTurn() error {
	for DealerHits(that.dealer.Total()) {
		if err := that.hit(that.dealer); err != nil {
			return err
		}
	}

	return nil
}

func (that *Rules) hit(hand *Hand) error {
	card, err := that.deck.Draw()
	if err != nil {
		return fmt.Errorf("failed to draw a card: %w", err)
	}

	hand.Add(card)

	return nil
}

func totalSymbol(hand *Hand) entity.Symbol {
	return entity.Symbol(strconv.Itoa(hand.Total()))
}
