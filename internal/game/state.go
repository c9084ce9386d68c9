package game

import (
	"math/rand"

	"github.com/sunandbean/cashflow-server-go/internal/game/cards"
	"github.com/sunandbean/cashflow-server-go/internal/game/finance"
)

// Player is one seat at the table. Players are created at game start and
// never removed; bankruptcy elimination is the Bankrupt flag, not deletion.
type Player struct {
	ID         string
	Name       string
	Profession string

	Cash      int
	Statement finance.Statement
	BankLoan  int

	// Rat-race board.
	Position int

	// Fast-track board.
	FastTrack         bool
	FastTrackPosition int
	CashFlowRate      int
	CashFlowRateStart int
	Escaped           bool
	Dream             int // fast-track dream position, -1 until chosen
	Won               bool

	// Penalty counters, decremented while skipped in END_TURN.
	DownsizedTurns int
	RecoveryTurns  int
	CharityTurns   int

	Bankrupt bool
}

// Active reports whether the player still takes turns.
func (p Player) Active() bool { return !p.Bankrupt }

// CashFlow is the player's monthly rat-race cash flow.
func (p Player) CashFlow() int {
	return finance.CashFlow(p.Statement, p.BankLoan)
}

// PendingDeal is a cross-player resale of a drawn deal card. At most one
// exists at a time; only the designated buyer may resolve it.
type PendingDeal struct {
	SellerID string
	BuyerID  string
	Card     cards.Card
	Price    int
}

// LogEntry is one line of the append-only game log.
type LogEntry struct {
	Turn     int
	PlayerID string
	Message  string
}

// GameState is an immutable snapshot of a match. ProcessAction never mutates
// a state; it builds and returns a fresh one by structural copy.
type GameState struct {
	ID            string
	Players       []Player
	CurrentPlayer int
	Phase         TurnPhase

	ActiveCard     *cards.Card
	LastDice       []int
	PendingPayDays int
	PendingDeal    *PendingDeal

	SmallDeals cards.Deck
	BigDeals   cards.Deck
	Markets    cards.Deck
	Doodads    cards.Deck

	Log      []LogEntry
	Turn     int
	WinnerID string

	// Seed and ShuffleCount drive every reshuffle deterministically so a
	// recorded game replays to an identical state.
	Seed         int64
	ShuffleCount int
}

// Current returns the player whose turn it is.
func (s *GameState) Current() Player {
	return s.Players[s.CurrentPlayer]
}

// PlayerByID returns the index of the player with the given id, or -1.
func (s *GameState) PlayerByID(id string) int {
	for i, p := range s.Players {
		if p.ID == id {
			return i
		}
	}
	return -1
}

// ActivePlayerCount counts players that still take turns.
func (s *GameState) ActivePlayerCount() int {
	n := 0
	for _, p := range s.Players {
		if p.Active() {
			n++
		}
	}
	return n
}

// Clone returns a deep copy of the state. Handlers mutate only clones.
func (s *GameState) Clone() *GameState {
	next := *s

	next.Players = make([]Player, len(s.Players))
	for i, p := range s.Players {
		p.Statement = finance.CloneStatement(p.Statement)
		next.Players[i] = p
	}

	if s.ActiveCard != nil {
		card := *s.ActiveCard
		next.ActiveCard = &card
	}
	if s.PendingDeal != nil {
		deal := *s.PendingDeal
		next.PendingDeal = &deal
	}
	next.LastDice = append([]int(nil), s.LastDice...)

	next.SmallDeals = s.SmallDeals.Clone()
	next.BigDeals = s.BigDeals.Clone()
	next.Markets = s.Markets.Clone()
	next.Doodads = s.Doodads.Clone()

	next.Log = append([]LogEntry(nil), s.Log...)
	return &next
}

// log appends one entry to the state's log.
func (s *GameState) log(playerID, message string) {
	s.Log = append(s.Log, LogEntry{Turn: s.Turn, PlayerID: playerID, Message: message})
}

// deckRNG derives the random source for the next reshuffle from the state's
// seed and shuffle counter. The counter advances on every draw so replays
// see the same sequence whether or not a particular draw reshuffled.
func (s *GameState) deckRNG() *rand.Rand {
	rng := rand.New(rand.NewSource(s.Seed + int64(s.ShuffleCount)*1000003))
	s.ShuffleCount++
	return rng
}

// deck returns a pointer at the deck of the given type inside s.
func (s *GameState) deck(t cards.DeckType) *cards.Deck {
	switch t {
	case cards.DeckSmallDeal:
		return &s.SmallDeals
	case cards.DeckBigDeal:
		return &s.BigDeals
	case cards.DeckMarket:
		return &s.Markets
	default:
		return &s.Doodads
	}
}

// drawCard draws from the deck of the given type, reshuffling its discard
// pile deterministically when the draw pile is empty.
func (s *GameState) drawCard(t cards.DeckType) (cards.Card, bool) {
	d := s.deck(t)
	card, next, ok := d.DrawCard(s.deckRNG())
	if !ok {
		return cards.Card{}, false
	}
	*d = next
	return card, true
}

// discardCard returns card to the discard pile of its own deck.
func (s *GameState) discardCard(card cards.Card) {
	d := s.deck(card.Deck)
	*d = d.DiscardCard(card)
}
