package twentyone

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tabletop/internal/apperror"
	"github.com/rocketscienceinc/tabletop/internal/entity"
	mockedMatch "github.com/rocketscienceinc/tabletop/mocks/match"
)

// stackedShuffler puts the given cards on top of the deck in order.
type stackedShuffler struct {
	top []Card
}

func (that stackedShuffler) Shuffle(n int, swap func(i, j int)) {
	order := make([]Card, 0, n)
	for _, suit := range Suits {
		for _, rank := range Ranks {
			order = append(order, Card{Rank: rank, Suit: suit})
		}
	}

	for position, want := range that.top {
		for i := position; i < n; i++ {
			if order[i] == want {
				swap(position, i)
				order[position], order[i] = order[i], order[position]
				break
			}
		}
	}
}

// scriptedDecider answers with the listed actions in order.
type scriptedDecider struct {
	t       *testing.T
	actions []entity.Symbol
}

func (that *scriptedDecider) Decide(_ context.Context, _ *Hand) (entity.Symbol, error) {
	require.NotEmpty(that.t, that.actions, "unexpected decision")

	action := that.actions[0]
	that.actions = that.actions[1:]

	return action, nil
}

type recordingSink struct {
	hands []entity.HandSnapshot
}

func (that *recordingSink) ShowHand(hand entity.HandSnapshot) {
	that.hands = append(that.hands, hand)
}

func spade(rank string) Card {
	return Card{Rank: rank, Suit: "♠"}
}

func club(rank string) Card {
	return Card{Rank: rank, Suit: "♣"}
}

func newRound() *entity.Round {
	return entity.NewRound(1, entity.NewParticipant("Ann", false), entity.NewParticipant("Dixon", false))
}

func playRound(t *testing.T, rules *Rules, round *entity.Round) entity.Outcome {
	t.Helper()

	rules.StartRound(round)
	require.NoError(t, rules.Select(context.Background(), round))

	outcome, err := rules.Resolve(round)
	require.NoError(t, err)

	return outcome
}

func TestRules(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	t.Run("Player stays and beats a standing dealer", func(t *testing.T) {
		// Given: the player holds 20 and the dealer 17
		sink := &recordingSink{}
		decider := &scriptedDecider{t: t, actions: []entity.Symbol{ActionStay}}
		deck := stackedShuffler{top: []Card{spade("K"), club("10"), spade("Q"), club("7")}}
		rules := NewRules(logger, decider, sink, deck)
		round := newRound()

		// When: the round is played
		outcome := playRound(t, rules, round)

		// Then: the player wins and the dealer never drew
		assert.Equal(t, entity.OutcomeFirstWins, outcome)
		assert.Equal(t, "20 against 17", round.Summary)
		assert.Len(t, rules.Dealer().Cards(), 2)
		assert.Equal(t, entity.Symbol("20"), round.First.Selection())
		assert.Equal(t, entity.Symbol("17"), round.Second.Selection())

		// Then: the dealer's second card stayed hidden during the player's turn
		require.Len(t, sink.hands, 4)
		assert.Equal(t, entity.HandSnapshot{Owner: "Dixon", Cards: []entity.Symbol{"10♣"}, HiddenCards: 1}, sink.hands[0])
		assert.Equal(t, entity.HandSnapshot{Owner: "Dixon", Cards: []entity.Symbol{"10♣", "7♣"}, Total: 17}, sink.hands[3])
	})

	t.Run("Player bust ends the round before the dealer plays", func(t *testing.T) {
		// Given: the player hits 16 into a king while the dealer sits on 5
		sink := &recordingSink{}
		decider := &scriptedDecider{t: t, actions: []entity.Symbol{ActionHit}}
		deck := stackedShuffler{top: []Card{spade("10"), club("2"), spade("6"), club("3"), spade("K")}}
		rules := NewRules(logger, decider, sink, deck)
		round := newRound()

		outcome := playRound(t, rules, round)

		assert.Equal(t, entity.OutcomeSecondWins, outcome)
		assert.Equal(t, "Ann busts with 26", round.Summary)
		assert.Len(t, rules.Dealer().Cards(), 2)

		// Then: the dealer's hole card is never revealed
		require.Len(t, sink.hands, 4)
		assert.Equal(t, entity.HandSnapshot{Owner: "Dixon", Cards: []entity.Symbol{"2♣"}, HiddenCards: 1}, sink.hands[3])
		assert.Equal(t, entity.Symbol("2♣"), round.Second.Selection())
		assert.Equal(t, entity.Symbol("26"), round.First.Selection())
	})

	t.Run("Dealer draws below 17 and busts", func(t *testing.T) {
		decider := &scriptedDecider{t: t, actions: []entity.Symbol{ActionStay}}
		deck := stackedShuffler{top: []Card{spade("10"), club("10"), spade("9"), club("6"), spade("K")}}
		rules := NewRules(logger, decider, &recordingSink{}, deck)
		round := newRound()

		outcome := playRound(t, rules, round)

		assert.Equal(t, entity.OutcomeFirstWins, outcome)
		assert.Equal(t, "Dixon busts with 26", round.Summary)
		assert.Len(t, rules.Dealer().Cards(), 3)
	})

	t.Run("Equal totals push", func(t *testing.T) {
		decider := &scriptedDecider{t: t, actions: []entity.Symbol{ActionStay}}
		deck := stackedShuffler{top: []Card{spade("10"), club("10"), spade("8"), club("8")}}
		rules := NewRules(logger, decider, &recordingSink{}, deck)
		round := newRound()

		outcome := playRound(t, rules, round)

		assert.Equal(t, entity.OutcomeTie, outcome)
		assert.Equal(t, "push at 18", round.Summary)
	})

	t.Run("Player on 21 is not asked to act", func(t *testing.T) {
		sink := &recordingSink{}
		decider := &scriptedDecider{t: t}
		deck := stackedShuffler{top: []Card{spade("A"), club("9"), spade("K"), club("8")}}
		rules := NewRules(logger, decider, sink, deck)
		round := newRound()

		outcome := playRound(t, rules, round)

		assert.Equal(t, entity.OutcomeFirstWins, outcome)
		assert.Len(t, sink.hands, 2)
	})

	t.Run("Unknown action is rejected", func(t *testing.T) {
		decider := &scriptedDecider{t: t, actions: []entity.Symbol{"double"}}
		rules := NewRules(logger, decider, &recordingSink{}, stackedShuffler{})
		round := newRound()

		rules.StartRound(round)
		err := rules.Select(context.Background(), round)

		require.ErrorIs(t, err, apperror.ErrInvalidSymbol)
	})

	t.Run("New round deals from a fresh deck", func(t *testing.T) {
		decider := &scriptedDecider{t: t, actions: []entity.Symbol{ActionStay, ActionStay}}
		deck := stackedShuffler{top: []Card{spade("10"), club("10"), spade("8"), club("8")}}
		rules := NewRules(logger, decider, &recordingSink{}, deck)

		playRound(t, rules, newRound())
		playRound(t, rules, newRound())

		assert.Equal(t, []Card{spade("10"), spade("8")}, rules.Player().Cards())
	})
}

func TestHumanDecider(t *testing.T) {
	ctx := context.Background()

	input := mockedMatch.NewMockInputProvider(t)
	input.EXPECT().RequestSymbol(ctx, actionPrompt, Actions).Return(ActionHit, nil).Once()

	action, err := NewHumanDecider(input).Decide(ctx, NewHand())

	require.NoError(t, err)
	assert.Equal(t, ActionHit, action)
}
