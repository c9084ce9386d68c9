package game

import (
	"fmt"

	"github.com/sunandbean/cashflow-server-go/internal/game/board"
	"github.com/sunandbean/cashflow-server-go/internal/game/cards"
)

// FastTrackWinIncrease is the cash-flow-rate gain over the rate at entry
// that wins the game from the fast track.
const FastTrackWinIncrease = 50000

// fastTrackRateScale converts a business card's monthly cash flow into a
// fast-track rate gain; fast-track money moves at ten times rat-race scale.
const fastTrackRateScale = 10

// resolveFastTrackSpace applies the fast-track space under the current
// player after any cash-flow-day collection has completed.
func resolveFastTrackSpace(next *GameState) {
	p := &next.Players[next.CurrentPlayer]

	switch board.FastTrackSpaceAt(p.FastTrackPosition) {
	case board.FastTrackBusiness:
		card, ok := next.drawCard(cards.DeckBigDeal)
		if !ok {
			next.Phase = PhaseEndOfTurn
			return
		}
		next.ActiveCard = &card
		next.Phase = PhaseMakeDecision
		next.log(p.ID, fmt.Sprintf("%s draws a fast-track business: %s", p.Name, card.Title))

	case board.FastTrackCharity:
		next.Phase = PhaseMakeDecision

	case board.FastTrackTaxAudit:
		loss := p.CashFlowRate / 2
		p.CashFlowRate -= loss
		next.log(p.ID, fmt.Sprintf("%s is audited and loses %d of cash-flow rate", p.Name, loss))
		next.Phase = PhaseEndOfTurn

	case board.FastTrackLawsuit:
		loss := p.Cash / 2
		p.Cash -= loss
		next.log(p.ID, fmt.Sprintf("%s is sued and pays %d", p.Name, loss))
		next.Phase = PhaseEndOfTurn

	case board.FastTrackDivorce:
		cashLoss := p.Cash / 2
		rateLoss := p.CashFlowRate / 2
		p.Cash -= cashLoss
		p.CashFlowRate -= rateLoss
		next.log(p.ID, fmt.Sprintf("%s divorces: pays %d and loses %d of cash-flow rate", p.Name, cashLoss, rateLoss))
		next.Phase = PhaseEndOfTurn

	case board.FastTrackDream:
		if p.FastTrackPosition == p.Dream {
			declareWinner(next, next.CurrentPlayer, "landed on their dream")
			return
		}
		next.log(p.ID, fmt.Sprintf("%s visits someone else's dream", p.Name))
		next.Phase = PhaseEndOfTurn

	case board.FastTrackCashFlowDay:
		// Landing cash was already collected with the pass count.
		next.Phase = PhaseEndOfTurn
	}

	checkFastTrackWin(next)
}

// buyFastTrackBusiness buys the active business card on the fast track: the
// full down payment leaves cash and the card's cash flow scales into the
// player's cash-flow rate.
func buyFastTrackBusiness(state *GameState, card cards.Card) (*GameState, Result) {
	current := state.Current()
	if current.Cash < card.DownPayment {
		return state, rejectRule("insufficient cash")
	}

	next := state.Clone()
	p := &next.Players[next.CurrentPlayer]
	gain := card.CashFlow * fastTrackRateScale
	p.Cash -= card.DownPayment
	p.CashFlowRate += gain
	next.log(p.ID, fmt.Sprintf("%s buys %s for %d: cash-flow rate +%d (now %d)",
		p.Name, card.Title, card.DownPayment, gain, p.CashFlowRate))

	next.discardCard(card)
	next.ActiveCard = nil
	next.Phase = PhaseEndOfTurn
	checkFastTrackWin(next)
	return next, applied()
}

// checkFastTrackWin ends the game when the current player's cash-flow rate
// has grown by FastTrackWinIncrease since entering the fast track.
func checkFastTrackWin(next *GameState) {
	if next.Phase == PhaseGameOver {
		return
	}
	p := next.Current()
	if !p.FastTrack {
		return
	}
	if p.CashFlowRate >= p.CashFlowRateStart+FastTrackWinIncrease {
		declareWinner(next, next.CurrentPlayer, fmt.Sprintf("raised their cash-flow rate by %d", FastTrackWinIncrease))
	}
}
