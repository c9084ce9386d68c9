// Package cards defines the four card decks and the resolution of card
// effects against a player's financial statement. Deck order is the only
// shuffled thing in the game; shuffling always goes through an injected
// random source so a game can be replayed deterministically.
package cards

import (
	"fmt"
	"math/rand"
)

// DeckType identifies one of the four deck/discard pairs.
type DeckType int

const (
	DeckSmallDeal DeckType = iota
	DeckBigDeal
	DeckMarket
	DeckDoodad
)

var deckNames = map[DeckType]string{
	DeckSmallDeal: "SMALL_DEAL",
	DeckBigDeal:   "BIG_DEAL",
	DeckMarket:    "MARKET",
	DeckDoodad:    "DOODAD",
}

func (d DeckType) String() string {
	if name, ok := deckNames[d]; ok {
		return name
	}
	return fmt.Sprintf("DECK_%d", int(d))
}

// DealKind discriminates deal card payloads.
type DealKind int

const (
	DealStock DealKind = iota
	DealStockSplit
	DealRealEstate
	DealBusiness
)

var dealKindNames = map[DealKind]string{
	DealStock:      "STOCK",
	DealStockSplit: "STOCK_SPLIT",
	DealRealEstate: "REAL_ESTATE",
	DealBusiness:   "BUSINESS",
}

func (k DealKind) String() string {
	if name, ok := dealKindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("DEAL_%d", int(k))
}

// MarketEffect discriminates market card payloads.
type MarketEffect int

const (
	// MarketStockPrice changes the trading price of a stock symbol and lets
	// holders sell at that price.
	MarketStockPrice MarketEffect = iota
	// MarketPropertyOffer is a buyer for a property type, either at a
	// multiplier of original cost or a flat amount.
	MarketPropertyOffer
	// MarketDamage charges every holder of a property type a flat repair
	// cost. Resolves with no player decision.
	MarketDamage
	// MarketExpenseAll charges every player a flat amount. Resolves with no
	// player decision.
	MarketExpenseAll
)

var marketEffectNames = map[MarketEffect]string{
	MarketStockPrice:    "STOCK_PRICE",
	MarketPropertyOffer: "PROPERTY_OFFER",
	MarketDamage:        "DAMAGE",
	MarketExpenseAll:    "EXPENSE_ALL",
}

func (e MarketEffect) String() string {
	if name, ok := marketEffectNames[e]; ok {
		return name
	}
	return fmt.Sprintf("MARKET_%d", int(e))
}

// Card is one card from any of the four decks. Which fields are meaningful
// depends on Deck and, within deals, on Kind.
type Card struct {
	Deck  DeckType
	Title string
	Text  string

	// Deal fields (small and big deals).
	Kind             DealKind
	Symbol           string
	CostPerShare     int
	DividendPerShare int
	SplitNum         int
	SplitDen         int
	PropertyType     string
	DownPayment      int
	Cost             int
	CashFlow         int

	// Market fields.
	Effect     MarketEffect
	NewPrice   int
	Multiplier int
	FlatOffer  int
	Amount     int

	// Doodad fields. PercentOfIncome takes precedence over Amount when set.
	PercentOfIncome int
}

// AutoResolves reports whether drawing this card requires no player decision.
func (c Card) AutoResolves() bool {
	if c.Deck == DeckMarket {
		return c.Effect == MarketDamage || c.Effect == MarketExpenseAll
	}
	if c.Deck == DeckSmallDeal || c.Deck == DeckBigDeal {
		return c.Kind == DealStockSplit
	}
	return false
}

// Deck is a draw pile with its discard pile. Drawing from an empty pile
// reshuffles the discard pile back in; the pair is never both empty while
// cards of the type exist.
type Deck struct {
	Draw    []Card
	Discard []Card
}

// NewDeck builds a shuffled deck from the given cards.
func NewDeck(cards []Card, rng *rand.Rand) Deck {
	draw := append([]Card(nil), cards...)
	rng.Shuffle(len(draw), func(i, j int) {
		draw[i], draw[j] = draw[j], draw[i]
	})
	return Deck{Draw: draw, Discard: []Card{}}
}

// DrawCard removes and returns the top card, reshuffling the discard pile
// with rng when the draw pile is empty. ok is false only when both piles are
// empty.
func (d Deck) DrawCard(rng *rand.Rand) (Card, Deck, bool) {
	if len(d.Draw) == 0 {
		if len(d.Discard) == 0 {
			return Card{}, d, false
		}
		reshuffled := NewDeck(d.Discard, rng)
		d = Deck{Draw: reshuffled.Draw, Discard: []Card{}}
	}
	card := d.Draw[0]
	next := Deck{
		Draw:    append([]Card(nil), d.Draw[1:]...),
		Discard: append([]Card(nil), d.Discard...),
	}
	return card, next, true
}

// DiscardCard returns the deck with card placed on the discard pile.
func (d Deck) DiscardCard(card Card) Deck {
	return Deck{
		Draw:    append([]Card(nil), d.Draw...),
		Discard: append(append([]Card(nil), d.Discard...), card),
	}
}

// Clone returns a deep copy of the deck.
func (d Deck) Clone() Deck {
	return Deck{
		Draw:    append([]Card(nil), d.Draw...),
		Discard: append([]Card(nil), d.Discard...),
	}
}
