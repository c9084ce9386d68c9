package game

import (
	"fmt"

	"github.com/sunandbean/cashflow-server-go/internal/game/cards"
)

// ValidActions derives the set of legal action types from the current phase,
// the drawn card, the charity/escape flags and the table composition. It is
// advisory for UIs; ProcessAction re-validates every submission.
func ValidActions(s *GameState) []ActionType {
	if s.Phase == PhaseGameOver || s.WinnerID != "" {
		return nil
	}

	if s.Phase == PhaseWaitingForDealResponse {
		return []ActionType{ActionAcceptDealOffer, ActionDeclineDealOffer}
	}

	current := s.Current()

	// A player who escaped the rat race must pick a dream before anything
	// else.
	if current.Escaped && !current.FastTrack {
		return []ActionType{ActionChooseDream}
	}

	switch s.Phase {
	case PhaseRollDice:
		return []ActionType{ActionRollDice, ActionTakeLoan, ActionPayOffLoan}

	case PhasePayDayCollection:
		return []ActionType{ActionCollectPayDay}

	case PhaseResolveSpace:
		return []ActionType{ActionChooseDealSize}

	case PhaseMakeDecision:
		if s.ActiveCard == nil {
			// Only the charity space parks the machine here without a card.
			return []ActionType{ActionAcceptCharity, ActionDeclineCharity}
		}
		switch s.ActiveCard.Deck {
		case cards.DeckSmallDeal, cards.DeckBigDeal:
			actions := []ActionType{ActionBuyDeal, ActionSkipCard, ActionTakeLoan, ActionPayOffLoan}
			if !current.FastTrack && s.ActivePlayerCount() > 1 {
				actions = append(actions, ActionOfferDeal)
			}
			return actions
		case cards.DeckMarket:
			return []ActionType{ActionSellAsset, ActionSkipCard}
		default:
			return []ActionType{ActionPayExpense}
		}

	case PhaseEndOfTurn:
		return []ActionType{ActionEndTurn, ActionTakeLoan, ActionPayOffLoan}

	case PhaseBankruptcyDecision:
		return []ActionType{ActionDeclareBankrupt, ActionPayOffLoan}
	}

	return nil
}

// validate checks the action's actor and its membership in the currently
// legal action set. It is the structural half of the error model; domain
// rules live in the handlers.
func validate(s *GameState, action Action) Result {
	idx := s.PlayerByID(action.PlayerID)
	if idx < 0 {
		return rejectActor(fmt.Sprintf("unknown player %q", action.PlayerID))
	}

	if action.Type == ActionAcceptDealOffer || action.Type == ActionDeclineDealOffer {
		if s.PendingDeal == nil {
			return rejectPhase("no deal offer is pending")
		}
		if action.PlayerID != s.PendingDeal.BuyerID {
			return rejectActor(fmt.Sprintf("only %s may answer this offer", s.PendingDeal.BuyerID))
		}
	} else if action.PlayerID != s.Current().ID {
		return rejectActor(fmt.Sprintf("it is %s's turn", s.Current().ID))
	}

	for _, t := range ValidActions(s) {
		if t == action.Type {
			return applied()
		}
	}
	return rejectPhase(fmt.Sprintf("%s is not legal in phase %s", action.Type, s.Phase))
}
