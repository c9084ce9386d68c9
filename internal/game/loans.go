package game

import (
	"fmt"

	"github.com/sunandbean/cashflow-server-go/internal/game/finance"
)

// BankLoanName is the liability name of the revolving bank loan in
// PAY_OFF_LOAN actions.
const BankLoanName = "Bank Loan"

func handleTakeLoan(state *GameState, action Action) (*GameState, Result) {
	current := state.Current()
	if !finance.CanTakeLoan(current.Statement, current.BankLoan, action.Amount) {
		return state, rejectRule("loan must be a positive multiple of 1000 that keeps cash flow non-negative")
	}

	next := state.Clone()
	p := &next.Players[next.CurrentPlayer]
	p.BankLoan += action.Amount
	p.Cash += action.Amount
	next.log(p.ID, fmt.Sprintf("%s takes a bank loan of %d (principal now %d)", p.Name, action.Amount, p.BankLoan))
	return next, applied()
}

func handlePayOffLoan(state *GameState, action Action) (*GameState, Result) {
	current := state.Current()

	if action.LiabilityName == BankLoanName || action.LiabilityName == "" {
		amount := action.Amount
		if amount <= 0 || amount%finance.LoanStep != 0 {
			return state, rejectRule("repayment must be a positive multiple of 1000")
		}
		if amount > current.BankLoan {
			return state, rejectRule("repayment exceeds the outstanding principal")
		}
		if amount > current.Cash {
			return state, rejectRule("insufficient cash")
		}

		next := state.Clone()
		p := &next.Players[next.CurrentPlayer]
		p.BankLoan -= amount
		p.Cash -= amount
		next.log(p.ID, fmt.Sprintf("%s pays %d off the bank loan (principal now %d)", p.Name, amount, p.BankLoan))
		// Dropping the loan payment lowers expenses, which can tip the
		// escape condition.
		checkEscape(next, next.CurrentPlayer)
		leaveBankruptcyIfSolvent(next)
		return next, applied()
	}

	// Named liabilities are retired in full; the payoff clears the balance
	// and the matching expense line together.
	idx := -1
	for i, l := range current.Statement.Liabilities {
		if l.Name == action.LiabilityName {
			idx = i
			break
		}
	}
	if idx < 0 {
		return state, rejectRule(fmt.Sprintf("no liability named %q", action.LiabilityName))
	}
	balance := current.Statement.Liabilities[idx].Balance
	if balance > current.Cash {
		return state, rejectRule("insufficient cash to retire the liability")
	}

	next := state.Clone()
	p := &next.Players[next.CurrentPlayer]
	p.Cash -= balance
	p.Statement.Liabilities = append(p.Statement.Liabilities[:idx], p.Statement.Liabilities[idx+1:]...)
	if line := finance.LiabilityExpense(&p.Statement.Expenses, action.LiabilityName); line != nil {
		*line = 0
	}
	next.log(p.ID, fmt.Sprintf("%s pays off %s (%d)", p.Name, action.LiabilityName, balance))

	checkEscape(next, next.CurrentPlayer)
	leaveBankruptcyIfSolvent(next)
	return next, applied()
}

// leaveBankruptcyIfSolvent returns the machine to END_OF_TURN when a payoff
// made inside BANKRUPTCY_DECISION brought cash flow back to non-negative.
func leaveBankruptcyIfSolvent(next *GameState) {
	if next.Phase != PhaseBankruptcyDecision {
		return
	}
	p := &next.Players[next.CurrentPlayer]
	if p.CashFlow() >= 0 {
		next.Phase = PhaseEndOfTurn
		next.log(p.ID, fmt.Sprintf("%s restores a non-negative cash flow", p.Name))
	}
}

func handleDeclareBankruptcy(state *GameState, action Action) (*GameState, Result) {
	next := state.Clone()
	p := &next.Players[next.CurrentPlayer]

	out := finance.ApplyBankruptcy(p.Statement, p.BankLoan)
	p.Statement = out.Statement
	p.Cash += out.CashGained
	next.log(p.ID, fmt.Sprintf("%s declares bankruptcy: assets liquidated for %d", p.Name, out.CashGained))

	if out.Eliminated {
		p.Bankrupt = true
		next.log(p.ID, fmt.Sprintf("%s is out of the game", p.Name))
		if last := lastActivePlayer(next); last >= 0 {
			declareWinner(next, last, "all other players went bankrupt")
			return next, applied()
		}
	} else {
		p.RecoveryTurns = 2
		next.log(p.ID, fmt.Sprintf("%s survives bankruptcy and misses 2 turns", p.Name))
	}

	advanceTurn(next)
	return next, applied()
}

// lastActivePlayer returns the only remaining active player's index, or -1
// when more than one player is still in the game.
func lastActivePlayer(next *GameState) int {
	last := -1
	for i, p := range next.Players {
		if p.Active() {
			if last >= 0 {
				return -1
			}
			last = i
		}
	}
	return last
}
