package game

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// Record captures everything needed to reproduce a match: the creation
// inputs and the accepted actions in order. Replaying a record against
// CreateGame and ProcessAction yields a state identical to the live one,
// which is what lets the authoritative server treat the engine as the single
// source of truth.
type Record struct {
	GameID  string        `json:"game_id"`
	Seed    int64         `json:"seed"`
	Setups  []PlayerSetup `json:"setups"`
	Actions []Action      `json:"actions"`
}

// NewRecord starts a record for a match.
func NewRecord(gameID string, setups []PlayerSetup, seed int64) *Record {
	return &Record{
		GameID: gameID,
		Seed:   seed,
		Setups: append([]PlayerSetup(nil), setups...),
	}
}

// Append adds an accepted action to the record.
func (r *Record) Append(action Action) {
	r.Actions = append(r.Actions, action)
}

// Replay reapplies the record from scratch and returns the resulting state.
// Actions that were accepted live must be accepted again; a rejection during
// replay means the record and engine have diverged.
func (r *Record) Replay() (*GameState, error) {
	state, err := CreateGame(r.GameID, r.Setups, r.Seed)
	if err != nil {
		return nil, fmt.Errorf("replay create: %w", err)
	}
	for i, action := range r.Actions {
		next, res := ProcessAction(state, action)
		if !res.OK() {
			return nil, fmt.Errorf("replay diverged at action %d (%s): %s", i, action.Type, res.Reason)
		}
		state = next
	}
	return state, nil
}

// Checksum computes a deterministic digest of the deterministic fields of a
// state. Two states with equal checksums hold the same players, decks and
// phase; the log is excluded so cosmetic message changes do not register as
// divergence.
func Checksum(state *GameState) string {
	var buf bytes.Buffer

	fmt.Fprintf(&buf, "GAME:%s|%d|%d|%s|%s|%d|%d\n",
		state.ID, state.Turn, state.CurrentPlayer, state.Phase, state.WinnerID,
		state.PendingPayDays, state.ShuffleCount)

	for _, p := range state.Players {
		fmt.Fprintf(&buf, "PLAYER:%s|%d|%d|%d|%t|%t|%t|%d|%d|%d|%d|%d|%d|%d\n",
			p.ID, p.Cash, p.BankLoan, p.Position, p.FastTrack, p.Escaped, p.Bankrupt,
			p.FastTrackPosition, p.CashFlowRate, p.Dream,
			p.DownsizedTurns, p.RecoveryTurns, p.CharityTurns, p.Statement.ChildCount)
		fmt.Fprintf(&buf, "  STATEMENT:%d|%d\n", p.Statement.Salary, len(p.Statement.Liabilities))
		for _, a := range p.Statement.Assets {
			fmt.Fprintf(&buf, "  ASSET:%s|%s|%s|%d|%d|%d|%d|%d\n",
				a.Kind, a.Symbol, a.PropertyType, a.Shares, a.CostPerShare,
				a.DividendPerShare, a.Cost, a.CashFlow)
		}
		for _, l := range p.Statement.Liabilities {
			fmt.Fprintf(&buf, "  LIABILITY:%s|%d\n", l.Name, l.Balance)
		}
	}

	for _, deck := range []struct {
		name string
		draw int
		disc int
	}{
		{"SMALL", len(state.SmallDeals.Draw), len(state.SmallDeals.Discard)},
		{"BIG", len(state.BigDeals.Draw), len(state.BigDeals.Discard)},
		{"MARKET", len(state.Markets.Draw), len(state.Markets.Discard)},
		{"DOODAD", len(state.Doodads.Draw), len(state.Doodads.Discard)},
	} {
		fmt.Fprintf(&buf, "DECK:%s|%d|%d\n", deck.name, deck.draw, deck.disc)
	}

	sum := sha256.Sum256(buf.Bytes())
	return hex.EncodeToString(sum[:])
}
