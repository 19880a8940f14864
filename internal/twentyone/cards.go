package twentyone

import (
	"errors"
	"strconv"

	"github.com/rocketscienceinc/tabletop/internal/entity"
)

const (
	Ceiling     = 21
	DealerStand = 17

	aceHigh = 11
	aceLow  = 1
	face    = 10
)

var (
	ErrDeckEmpty = errors.New("deck is empty")

	Suits = []string{"♠", "♣", "♥", "♦"}
	Ranks = []string{"A", "2", "3", "4", "5", "6", "7", "8", "9", "10", "J", "Q", "K"}
)

type Card struct {
	Rank string
	Suit string
}

func (that Card) String() string {
	return that.Rank + that.Suit
}

func (that Card) Symbol() entity.Symbol {
	return entity.Symbol(that.String())
}

func (that Card) IsAce() bool {
	return that.Rank == "A"
}

// Value counts an Ace as 11 and a face card as 10.
func (that Card) Value() int {
	switch that.Rank {
	case "A":
		return aceHigh
	case "J", "Q", "K":
		return face
	default:
		value, _ := strconv.Atoi(that.Rank)
		return value
	}
}

type shuffler interface {
	Shuffle(n int, swap func(i, j int))
}

// Deck is a full 52-card deck, drawn from the top.
type Deck struct {
	cards []Card
}

func NewDeck(rng shuffler) *Deck {
	cards := make([]Card, 0, len(Suits)*len(Ranks))
	for _, suit := range Suits {
		for _, rank := range Ranks {
			cards = append(cards, Card{Rank: rank, Suit: suit})
		}
	}

	rng.Shuffle(len(cards), func(i, j int) {
		cards[i], cards[j] = cards[j], cards[i]
	})

	return &Deck{cards: cards}
}

func (that *Deck) Len() int {
	return len(that.cards)
}

func (that *Deck) Draw() (Card, error) {
	if len(that.cards) == 0 {
		return Card{}, ErrDeckEmpty
	}

	card := that.cards[0]
	that.cards = that.cards[1:]

	return card, nil
}

type Hand struct {
	cards []Card
}

func NewHand(cards ...Card) *Hand {
	return &Hand{cards: cards}
}

func (that *Hand) Add(card Card) {
	that.cards = append(that.cards, card)
}

func (that *Hand) Reset() {
	that.cards = nil
}

func (that *Hand) Cards() []Card {
	return that.cards
}

// Total sums the card values and then counts Aces as 1, one at a time, while the total is above 21.
func (that *Hand) Total() int {
	total, aces := 0, 0
	for _, card := range that.cards {
		total += card.Value()
		if card.IsAce() {
			aces++
		}
	}

	for ; total > Ceiling && aces > 0; aces-- {
		total -= aceHigh - aceLow
	}

	return total
}

func (that *Hand) Busted() bool {
	return that.Total() > Ceiling
}

// Snapshot renders the hand; with hideAfter > 0 only the first hideAfter cards and no total are shown.
func (that *Hand) Snapshot(owner string, hideAfter int) entity.HandSnapshot {
	visible := that.cards
	if hideAfter > 0 && hideAfter < len(that.cards) {
		visible = that.cards[:hideAfter]
	}

	snapshot := entity.HandSnapshot{
		Owner: owner,
		Cards: make([]entity.Symbol, 0, len(visible)),
	}

	for _, card := range visible {
		snapshot.Cards = append(snapshot.Cards, card.Symbol())
	}

	snapshot.HiddenCards = len(that.cards) - len(visible)
	if snapshot.HiddenCards == 0 {
		snapshot.Total = that.Total()
	}

	return snapshot
}

// DealerHits is the fixed dealer policy: draw while the total is below 17.
func DealerHits(total int) bool {
	return total < DealerStand
}
