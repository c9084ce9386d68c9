// Package game implements the rules engine: a pure, deterministic
// state-transition function over immutable game states. The engine has no
// clock, no logger and no randomness of its own beyond seeded deck
// reshuffles; dice values arrive as action parameters from the authoritative
// caller, and all mutation goes through ProcessAction.
package game

import (
	"fmt"
	"math/rand"

	"github.com/google/uuid"

	"github.com/sunandbean/cashflow-server-go/internal/game/cards"
)

// Game limits.
const (
	MinPlayers = 2
	MaxPlayers = 6
)

// PlayerSetup describes one seat for CreateGame.
type PlayerSetup struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Profession string `json:"profession"`
}

// CreateGame builds the initial state for a match. The seed fixes deck order
// and every later reshuffle; two games created with the same setups and seed
// are identical.
func CreateGame(id string, setups []PlayerSetup, seed int64) (*GameState, error) {
	if len(setups) < MinPlayers || len(setups) > MaxPlayers {
		return nil, fmt.Errorf("player count %d outside %d..%d", len(setups), MinPlayers, MaxPlayers)
	}
	if id == "" {
		id = uuid.New().String()
	}

	players := make([]Player, len(setups))
	for i, setup := range setups {
		prof, ok := ProfessionByName(setup.Profession)
		if !ok {
			return nil, fmt.Errorf("unknown profession %q", setup.Profession)
		}
		playerID := setup.ID
		if playerID == "" {
			playerID = uuid.New().String()
		}
		players[i] = Player{
			ID:         playerID,
			Name:       setup.Name,
			Profession: prof.Name,
			Cash:       prof.Savings,
			Statement:  prof.Statement(),
			Dream:      -1,
		}
	}

	rng := rand.New(rand.NewSource(seed))
	state := &GameState{
		ID:         id,
		Players:    players,
		Phase:      PhaseRollDice,
		SmallDeals: cards.NewDeck(cards.SmallDeals(), rng),
		BigDeals:   cards.NewDeck(cards.BigDeals(), rng),
		Markets:    cards.NewDeck(cards.Markets(), rng),
		Doodads:    cards.NewDeck(cards.Doodads(), rng),
		Turn:       1,
		Seed:       seed,
	}
	state.log(players[0].ID, fmt.Sprintf("game started with %d players, %s to roll", len(players), players[0].Name))
	return state, nil
}

// ProcessAction is the sole mutator. It validates the action, dispatches to
// the handler for its type and returns the next state. Structural and phase
// violations return the input state plus one log entry; domain-rule
// violations return the input state untouched, with the reason only in the
// Result. Nothing here panics or errors for caller-supplied input.
func ProcessAction(state *GameState, action Action) (*GameState, Result) {
	if state.Phase == PhaseGameOver {
		return logRejection(state, action, rejectPhase("the game is over"))
	}

	if res := validate(state, action); !res.OK() {
		return logRejection(state, action, res)
	}

	switch action.Type {
	case ActionRollDice:
		return handleRollDice(state, action)
	case ActionCollectPayDay:
		return handleCollectPayDay(state, action)
	case ActionChooseDealSize:
		return handleChooseDealSize(state, action)
	case ActionBuyDeal:
		return handleBuyDeal(state, action)
	case ActionSellAsset:
		return handleSellAsset(state, action)
	case ActionSkipCard:
		return handleSkipCard(state, action)
	case ActionPayExpense:
		return handlePayExpense(state, action)
	case ActionAcceptCharity:
		return handleAcceptCharity(state, action)
	case ActionDeclineCharity:
		return handleDeclineCharity(state, action)
	case ActionTakeLoan:
		return handleTakeLoan(state, action)
	case ActionPayOffLoan:
		return handlePayOffLoan(state, action)
	case ActionEndTurn:
		return handleEndTurn(state, action)
	case ActionDeclareBankrupt:
		return handleDeclareBankruptcy(state, action)
	case ActionOfferDeal:
		return handleOfferDeal(state, action)
	case ActionAcceptDealOffer:
		return handleAcceptDealOffer(state, action)
	case ActionDeclineDealOffer:
		return handleDeclineDealOffer(state, action)
	case ActionChooseDream:
		return handleChooseDream(state, action)
	}

	// Unknown action types fall through to an unchanged state.
	return state, rejectPhase(fmt.Sprintf("unknown action type %q", action.Type))
}

// logRejection appends the rejection to the log on a fresh copy so callers
// can surface it, leaving the rest of the state untouched.
func logRejection(state *GameState, action Action, res Result) (*GameState, Result) {
	next := state.Clone()
	next.log(action.PlayerID, fmt.Sprintf("rejected %s: %s", action.Type, res.Reason))
	return next, res
}
