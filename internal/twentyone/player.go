package twentyone

import (
	"context"
	"fmt"

	"github.com/rocketscienceinc/tabletop/internal/entity"
)

const (
	ActionHit  entity.Symbol = "hit"
	ActionStay entity.Symbol = "stay"

	actionPrompt = "Hit or stay"
)

var (
	Actions = entity.Alphabet{ActionHit, ActionStay}

	DealerNames = []string{"Dixon", "Volvox", "Anetha", "Tiga", "Umfang", "Nina"}
)

type inputProvider interface {
	RequestSymbol(ctx context.Context, prompt string, alphabet entity.Alphabet) (entity.Symbol, error)
}

// Decider chooses the next action of the player holding hand.
type Decider interface {
	Decide(ctx context.Context, hand *Hand) (entity.Symbol, error)
}

type humanDecider struct {
	input inputProvider
}

func NewHumanDecider(input inputProvider) Decider {
	return &humanDecider{input: input}
}

func (that *humanDecider) Decide(ctx context.Context, _ *Hand) (entity.Symbol, error) {
	action, err := that.input.RequestSymbol(ctx, actionPrompt, Actions)
	if err != nil {
		return entity.EmptySymbol, fmt.Errorf("failed to request action: %w", err)
	}

	return action, nil
}
