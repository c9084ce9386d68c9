package game

import (
	"fmt"

	"github.com/sunandbean/cashflow-server-go/internal/game/board"
	"github.com/sunandbean/cashflow-server-go/internal/game/cards"
	"github.com/sunandbean/cashflow-server-go/internal/game/finance"
)

func handleChooseDealSize(state *GameState, action Action) (*GameState, Result) {
	var deckType cards.DeckType
	switch action.DealSize {
	case DealSizeSmall:
		deckType = cards.DeckSmallDeal
	case DealSizeBig:
		deckType = cards.DeckBigDeal
	default:
		return state, rejectRule(fmt.Sprintf("unknown deal size %q", action.DealSize))
	}

	next := state.Clone()
	p := &next.Players[next.CurrentPlayer]

	card, ok := next.drawCard(deckType)
	if !ok {
		next.Phase = PhaseEndOfTurn
		return next, applied()
	}
	next.log(p.ID, fmt.Sprintf("%s draws a %s deal: %s", p.Name, action.DealSize, card.Title))

	if card.Kind == cards.DealStockSplit {
		// Splits hit every holder at once and never wait for a decision.
		applySplitToAll(next, card)
		next.discardCard(card)
		next.Phase = PhaseEndOfTurn
		return next, applied()
	}

	next.ActiveCard = &card
	next.Phase = PhaseMakeDecision
	return next, applied()
}

// applySplitToAll runs a stock split against every current holder of the
// symbol in one atomic pass.
func applySplitToAll(next *GameState, card cards.Card) {
	for i := range next.Players {
		p := &next.Players[i]
		if p.Bankrupt || !cards.HoldsSymbol(p.Statement, card.Symbol) {
			continue
		}
		p.Statement = cards.ApplySplit(p.Statement, card.Symbol, card.SplitNum, card.SplitDen)
		next.log(p.ID, fmt.Sprintf("%s: %s adjusts %s's position", card.Title, card.Symbol, p.Name))
	}
}

func handleBuyDeal(state *GameState, action Action) (*GameState, Result) {
	card := *state.ActiveCard
	current := state.Current()

	if current.FastTrack {
		return buyFastTrackBusiness(state, card)
	}

	res := cards.BuyDeal(current.Statement, current.Cash, card, action.Quantity)
	if !res.OK {
		return state, rejectRule(res.Reason)
	}

	next := state.Clone()
	p := &next.Players[next.CurrentPlayer]
	p.Statement = res.Statement
	p.Cash -= res.Cost
	next.log(p.ID, fmt.Sprintf("%s buys %s for %d", p.Name, card.Title, res.Cost))

	next.discardCard(card)
	next.ActiveCard = nil
	next.Phase = PhaseEndOfTurn
	checkEscape(next, next.CurrentPlayer)
	return next, applied()
}

func handleSellAsset(state *GameState, action Action) (*GameState, Result) {
	card := *state.ActiveCard
	current := state.Current()

	res := cards.SellAsset(current.Statement, card, action.AssetID, action.Quantity)
	if !res.OK {
		return state, rejectRule(res.Reason)
	}

	next := state.Clone()
	p := &next.Players[next.CurrentPlayer]
	p.Statement = res.Statement
	p.Cash += res.Proceeds
	next.log(p.ID, fmt.Sprintf("%s sells under %s for %d", p.Name, card.Title, res.Proceeds))

	coverCash(next, next.CurrentPlayer)
	if enterBankruptcyIfBroke(next) {
		return next, applied()
	}
	// The card stays active so further matching assets can be sold before
	// the player passes.
	return next, applied()
}

func handleSkipCard(state *GameState, action Action) (*GameState, Result) {
	next := state.Clone()
	p := &next.Players[next.CurrentPlayer]
	card := *next.ActiveCard
	next.log(p.ID, fmt.Sprintf("%s passes on %s", p.Name, card.Title))
	next.discardCard(card)
	next.ActiveCard = nil
	next.Phase = PhaseEndOfTurn
	return next, applied()
}

func handlePayExpense(state *GameState, action Action) (*GameState, Result) {
	next := state.Clone()
	p := &next.Players[next.CurrentPlayer]
	card := *next.ActiveCard

	cost := cards.DoodadCost(card, p.Statement)
	p.Cash -= cost
	next.log(p.ID, fmt.Sprintf("%s pays %d for %s", p.Name, cost, card.Title))

	next.discardCard(card)
	next.ActiveCard = nil

	coverCash(next, next.CurrentPlayer)
	if enterBankruptcyIfBroke(next) {
		return next, applied()
	}
	next.Phase = PhaseEndOfTurn
	return next, applied()
}

func handleAcceptCharity(state *GameState, action Action) (*GameState, Result) {
	next := state.Clone()
	p := &next.Players[next.CurrentPlayer]

	donation := 0
	if p.FastTrack {
		donation = p.Cash / 10
	} else {
		donation = finance.TotalIncome(p.Statement) / 10
	}
	if donation > p.Cash {
		return state, rejectRule("insufficient cash for the donation")
	}
	p.Cash -= donation
	p.CharityTurns = 3
	next.log(p.ID, fmt.Sprintf("%s donates %d to charity and may roll two dice for 3 turns", p.Name, donation))
	next.Phase = PhaseEndOfTurn
	return next, applied()
}

func handleDeclineCharity(state *GameState, action Action) (*GameState, Result) {
	next := state.Clone()
	next.Phase = PhaseEndOfTurn
	return next, applied()
}

func handleOfferDeal(state *GameState, action Action) (*GameState, Result) {
	targetIdx := state.PlayerByID(action.TargetPlayerID)
	if targetIdx < 0 {
		return state, rejectRule(fmt.Sprintf("unknown target player %q", action.TargetPlayerID))
	}
	target := state.Players[targetIdx]
	if target.ID == state.Current().ID {
		return state, rejectRule("cannot offer a deal to yourself")
	}
	if target.Bankrupt {
		return state, rejectRule("target player is out of the game")
	}
	if action.Price < 0 {
		return state, rejectRule("asking price must not be negative")
	}

	next := state.Clone()
	p := &next.Players[next.CurrentPlayer]
	card := *next.ActiveCard
	next.PendingDeal = &PendingDeal{
		SellerID: p.ID,
		BuyerID:  target.ID,
		Card:     card,
		Price:    action.Price,
	}
	next.ActiveCard = nil
	next.Phase = PhaseWaitingForDealResponse
	next.log(p.ID, fmt.Sprintf("%s offers %s to %s for %d", p.Name, card.Title, target.Name, action.Price))
	return next, applied()
}

func handleAcceptDealOffer(state *GameState, action Action) (*GameState, Result) {
	deal := *state.PendingDeal
	buyerIdx := state.PlayerByID(deal.BuyerID)
	sellerIdx := state.PlayerByID(deal.SellerID)
	buyer := state.Players[buyerIdx]

	if buyer.Cash < deal.Price {
		return state, rejectRule("insufficient cash for the asking price")
	}
	// The asking price goes to the seller; the purchase itself resolves
	// against the buyer at the card's own terms.
	res := cards.BuyDeal(buyer.Statement, buyer.Cash-deal.Price, deal.Card, action.Quantity)
	if !res.OK {
		return state, rejectRule(res.Reason)
	}

	next := state.Clone()
	b := &next.Players[buyerIdx]
	s := &next.Players[sellerIdx]
	b.Statement = res.Statement
	b.Cash -= deal.Price + res.Cost
	s.Cash += deal.Price
	next.log(b.ID, fmt.Sprintf("%s accepts %s's offer: pays %d for the deal plus %d for %s",
		b.Name, s.Name, deal.Price, res.Cost, deal.Card.Title))

	next.discardCard(deal.Card)
	next.PendingDeal = nil
	next.Phase = PhaseEndOfTurn
	checkEscape(next, buyerIdx)
	return next, applied()
}

func handleDeclineDealOffer(state *GameState, action Action) (*GameState, Result) {
	next := state.Clone()
	deal := *next.PendingDeal
	card := deal.Card
	next.PendingDeal = nil
	// The card returns to the seller, who may still buy, skip or re-offer.
	next.ActiveCard = &card
	next.Phase = PhaseMakeDecision
	next.log(action.PlayerID, fmt.Sprintf("offer for %s declined", card.Title))
	return next, applied()
}

func handleChooseDream(state *GameState, action Action) (*GameState, Result) {
	valid := false
	for _, pos := range board.DreamPositions() {
		if pos == action.DreamPosition {
			valid = true
			break
		}
	}
	if !valid {
		return state, rejectRule(fmt.Sprintf("position %d is not a dream space", action.DreamPosition))
	}

	next := state.Clone()
	p := &next.Players[next.CurrentPlayer]
	p.Dream = action.DreamPosition
	p.FastTrack = true
	p.FastTrackPosition = 0
	p.CashFlowRate = p.CashFlow() * 100
	p.CashFlowRateStart = p.CashFlowRate
	next.log(p.ID, fmt.Sprintf("%s escapes the rat race and enters the fast track (cash-flow rate %d, dream at %d)",
		p.Name, p.CashFlowRate, p.Dream))
	return next, applied()
}

// checkEscape flips the escaped flag once a player's passive income strictly
// exceeds total expenses. The validator then forces CHOOSE_DREAM on their
// next decision.
func checkEscape(next *GameState, idx int) {
	p := &next.Players[idx]
	if p.FastTrack || p.Escaped {
		return
	}
	if finance.CanEscape(p.Statement, p.BankLoan) {
		p.Escaped = true
		next.log(p.ID, fmt.Sprintf("%s's passive income now exceeds expenses", p.Name))
	}
}
