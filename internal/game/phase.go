package game

import "fmt"

// TurnPhase represents the states of the turn-phase machine. A normal turn
// runs ROLL_DICE through END_OF_TURN; the bankruptcy and deal-response
// phases are side machines entered from within a turn, and GAME_OVER is
// terminal.
type TurnPhase int

const (
	PhaseRollDice TurnPhase = iota
	PhasePayDayCollection
	PhaseResolveSpace
	PhaseMakeDecision
	PhaseEndOfTurn
	PhaseBankruptcyDecision
	PhaseWaitingForDealResponse
	PhaseGameOver
)

var phaseNames = map[TurnPhase]string{
	PhaseRollDice:               "ROLL_DICE",
	PhasePayDayCollection:       "PAY_DAY_COLLECTION",
	PhaseResolveSpace:           "RESOLVE_SPACE",
	PhaseMakeDecision:           "MAKE_DECISION",
	PhaseEndOfTurn:              "END_OF_TURN",
	PhaseBankruptcyDecision:     "BANKRUPTCY_DECISION",
	PhaseWaitingForDealResponse: "WAITING_FOR_DEAL_RESPONSE",
	PhaseGameOver:               "GAME_OVER",
}

func (p TurnPhase) String() string {
	if name, ok := phaseNames[p]; ok {
		return name
	}
	return fmt.Sprintf("PHASE_%d", int(p))
}
