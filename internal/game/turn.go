package game

import (
	"fmt"

	"github.com/sunandbean/cashflow-server-go/internal/game/board"
	"github.com/sunandbean/cashflow-server-go/internal/game/cards"
	"github.com/sunandbean/cashflow-server-go/internal/game/finance"
)

func diceValid(dice []int) bool {
	if len(dice) == 0 {
		return false
	}
	for _, d := range dice {
		if d < 1 || d > 6 {
			return false
		}
	}
	return true
}

func handleRollDice(state *GameState, action Action) (*GameState, Result) {
	if !diceValid(action.Dice) {
		return state, rejectRule("dice values must be between 1 and 6")
	}

	next := state.Clone()
	p := &next.Players[next.CurrentPlayer]

	steps := action.Dice[0]
	if p.FastTrack {
		// Fast-track rolls always sum both dice.
		if len(action.Dice) < 2 {
			return state, rejectRule("fast-track rolls need two dice")
		}
		steps = action.Dice[0] + action.Dice[1]
	} else if p.CharityTurns > 0 && action.UseTwoDice {
		if len(action.Dice) < 2 {
			return state, rejectRule("rolling two dice needs two dice values")
		}
		steps = action.Dice[0] + action.Dice[1]
	}

	if p.CharityTurns > 0 {
		p.CharityTurns--
	}
	next.LastDice = append([]int(nil), action.Dice...)

	if p.FastTrack {
		old := p.FastTrackPosition
		p.FastTrackPosition = board.MoveFastTrack(old, steps)
		next.log(p.ID, fmt.Sprintf("%s rolls %d and moves to fast-track space %d (%s)",
			p.Name, steps, p.FastTrackPosition, board.FastTrackSpaceAt(p.FastTrackPosition)))
		if days := board.CashFlowDaysPassed(old, steps); days > 0 {
			next.PendingPayDays = days
			next.Phase = PhasePayDayCollection
			return next, applied()
		}
		resolveFastTrackSpace(next)
		return next, applied()
	}

	old := p.Position
	p.Position = board.Move(old, steps)
	next.log(p.ID, fmt.Sprintf("%s rolls %d and moves to space %d (%s)",
		p.Name, steps, p.Position, board.SpaceAt(p.Position)))

	if paydays := board.PayDaysPassed(old, steps); paydays > 0 {
		next.PendingPayDays = paydays
		next.Phase = PhasePayDayCollection
		return next, applied()
	}
	resolveSpace(next)
	return next, applied()
}

func handleCollectPayDay(state *GameState, action Action) (*GameState, Result) {
	next := state.Clone()
	p := &next.Players[next.CurrentPlayer]

	count := next.PendingPayDays
	if count == 0 {
		count = 1
	}
	amount := 0
	if p.FastTrack {
		amount = p.CashFlowRate * count
		next.log(p.ID, fmt.Sprintf("%s collects %d cash-flow day(s) for %d", p.Name, count, amount))
	} else {
		amount = p.CashFlow() * count
		next.log(p.ID, fmt.Sprintf("%s collects %d payday(s) for %d", p.Name, count, amount))
	}
	p.Cash += amount
	next.PendingPayDays = 0

	coverCash(next, next.CurrentPlayer)
	if enterBankruptcyIfBroke(next) {
		return next, applied()
	}

	if p.FastTrack {
		resolveFastTrackSpace(next)
	} else {
		resolveSpace(next)
	}
	return next, applied()
}

// resolveSpace applies the rat-race space under the current player after any
// payday collection has completed.
func resolveSpace(next *GameState) {
	p := &next.Players[next.CurrentPlayer]

	switch board.SpaceAt(p.Position) {
	case board.SpaceDeal:
		next.Phase = PhaseResolveSpace

	case board.SpaceDoodad:
		card, ok := next.drawCard(cards.DeckDoodad)
		if !ok {
			next.Phase = PhaseEndOfTurn
			return
		}
		next.ActiveCard = &card
		next.Phase = PhaseMakeDecision
		next.log(p.ID, fmt.Sprintf("%s draws doodad: %s", p.Name, card.Title))

	case board.SpaceMarket:
		card, ok := next.drawCard(cards.DeckMarket)
		if !ok {
			next.Phase = PhaseEndOfTurn
			return
		}
		next.log(p.ID, fmt.Sprintf("%s draws market card: %s", p.Name, card.Title))
		if card.AutoResolves() {
			applyMarketToAll(next, card)
			next.discardCard(card)
			if enterBankruptcyIfBroke(next) {
				return
			}
			next.Phase = PhaseEndOfTurn
			return
		}
		next.ActiveCard = &card
		next.Phase = PhaseMakeDecision

	case board.SpaceCharity:
		next.Phase = PhaseMakeDecision

	case board.SpaceDownsized:
		expenses := finance.TotalExpenses(p.Statement, p.BankLoan)
		p.Cash -= expenses
		p.DownsizedTurns = 2
		p.CharityTurns = 0
		next.log(p.ID, fmt.Sprintf("%s is downsized: pays %d and misses 2 turns", p.Name, expenses))
		coverCash(next, next.CurrentPlayer)
		if enterBankruptcyIfBroke(next) {
			return
		}
		next.Phase = PhaseEndOfTurn

	case board.SpaceBaby:
		if p.Statement.ChildCount < finance.MaxChildren {
			p.Statement.ChildCount++
			next.log(p.ID, fmt.Sprintf("%s has a baby (%d children)", p.Name, p.Statement.ChildCount))
		} else {
			next.log(p.ID, fmt.Sprintf("%s lands on baby with a full house", p.Name))
		}
		next.Phase = PhaseEndOfTurn

	case board.SpacePayDay:
		// Landing cash was already collected with the pass count.
		next.Phase = PhaseEndOfTurn
	}
}

// applyMarketToAll resolves the decision-free market effects against every
// player in one pass.
func applyMarketToAll(next *GameState, card cards.Card) {
	for i := range next.Players {
		p := &next.Players[i]
		if p.Bankrupt {
			continue
		}
		switch card.Effect {
		case cards.MarketDamage:
			if cards.HoldsProperty(p.Statement, card.PropertyType) {
				p.Cash -= card.Amount
				next.log(p.ID, fmt.Sprintf("%s pays %d for %s", p.Name, card.Amount, card.Title))
				coverCash(next, i)
			}
		case cards.MarketExpenseAll:
			p.Cash -= card.Amount
			next.log(p.ID, fmt.Sprintf("%s pays %d for %s", p.Name, card.Amount, card.Title))
			coverCash(next, i)
		}
	}
}

// coverCash takes the forced loan for the player at idx whenever cash is
// negative: the smallest multiple of 1,000 that restores non-negative cash,
// unconditionally.
func coverCash(next *GameState, idx int) {
	p := &next.Players[idx]
	loan := finance.ForcedLoan(p.Cash)
	if loan == 0 {
		return
	}
	p.BankLoan += loan
	p.Cash += loan
	next.log(p.ID, fmt.Sprintf("%s takes a forced bank loan of %d", p.Name, loan))
}

// enterBankruptcyIfBroke moves the machine into BANKRUPTCY_DECISION when the
// current player's cash flow has gone negative: the forced loan already
// covered cash, so a negative flow means no further loan capacity.
func enterBankruptcyIfBroke(next *GameState) bool {
	p := &next.Players[next.CurrentPlayer]
	if p.FastTrack || p.CashFlow() >= 0 {
		return false
	}
	next.Phase = PhaseBankruptcyDecision
	next.log(p.ID, fmt.Sprintf("%s's cash flow is negative: bankruptcy decision", p.Name))
	return true
}

func handleEndTurn(state *GameState, action Action) (*GameState, Result) {
	next := state.Clone()
	advanceTurn(next)
	return next, applied()
}

// advanceTurn moves to the next player circularly: eliminated players are
// skipped outright, and a player serving a downsized or recovery penalty has
// their counter decremented once and is skipped for this round. One full
// circle bounds the walk; if every candidate was penalized this round, a
// second pass settles on the first player still in the game.
func advanceTurn(next *GameState) {
	next.ActiveCard = nil
	next.PendingDeal = nil
	next.PendingPayDays = 0
	next.LastDice = nil

	n := len(next.Players)
	idx := next.CurrentPlayer
	for attempts := 0; attempts < n; attempts++ {
		idx = (idx + 1) % n
		p := &next.Players[idx]
		if p.Bankrupt {
			continue
		}
		if p.DownsizedTurns > 0 {
			p.DownsizedTurns--
			next.log(p.ID, fmt.Sprintf("%s misses the turn (downsized, %d left)", p.Name, p.DownsizedTurns))
			continue
		}
		if p.RecoveryTurns > 0 {
			p.RecoveryTurns--
			next.log(p.ID, fmt.Sprintf("%s misses the turn (recovering, %d left)", p.Name, p.RecoveryTurns))
			continue
		}
		startTurn(next, idx)
		return
	}

	// Everyone left was penalized this round; hand the turn to the first
	// player still in the game rather than deadlocking.
	for attempts := 0; attempts < n; attempts++ {
		idx = (idx + 1) % n
		if next.Players[idx].Active() {
			startTurn(next, idx)
			return
		}
	}
}

func startTurn(next *GameState, idx int) {
	next.CurrentPlayer = idx
	next.Phase = PhaseRollDice
	next.Turn++
	next.log(next.Players[idx].ID, fmt.Sprintf("%s's turn", next.Players[idx].Name))
}

// declareWinner ends the game.
func declareWinner(next *GameState, idx int, reason string) {
	p := &next.Players[idx]
	p.Won = true
	next.WinnerID = p.ID
	next.Phase = PhaseGameOver
	next.log(p.ID, fmt.Sprintf("%s wins: %s", p.Name, reason))
}
