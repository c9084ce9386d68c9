package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sunandbean/cashflow-server-go/internal/game/cards"
	"github.com/sunandbean/cashflow-server-go/internal/game/finance"
)

func testGame(t *testing.T, n int) *GameState {
	t.Helper()
	setups := make([]PlayerSetup, n)
	names := []string{"alice", "bob", "carol", "dave", "erin", "frank"}
	for i := 0; i < n; i++ {
		setups[i] = PlayerSetup{ID: names[i], Name: names[i], Profession: "Teacher"}
	}
	state, err := CreateGame("test-game", setups, 42)
	require.NoError(t, err)
	return state
}

func TestCreateGame(t *testing.T) {
	state := testGame(t, 3)
	assert.Equal(t, PhaseRollDice, state.Phase)
	assert.Equal(t, 0, state.CurrentPlayer)
	assert.Equal(t, 1, state.Turn)
	assert.Len(t, state.Log, 1)
	for _, p := range state.Players {
		assert.Equal(t, 400, p.Cash)
		assert.Equal(t, 3300, p.Statement.Salary)
		assert.Equal(t, -1, p.Dream)
		assert.Equal(t, 960, p.CashFlow())
	}
}

func TestCreateGamePlayerCountBounds(t *testing.T) {
	_, err := CreateGame("g", []PlayerSetup{{ID: "solo", Profession: "Teacher"}}, 1)
	require.Error(t, err)

	setups := make([]PlayerSetup, 7)
	for i := range setups {
		setups[i] = PlayerSetup{Profession: "Teacher"}
	}
	_, err = CreateGame("g", setups, 1)
	require.Error(t, err)
}

func TestCreateGameUnknownProfession(t *testing.T) {
	_, err := CreateGame("g", []PlayerSetup{
		{ID: "a", Profession: "Teacher"},
		{ID: "b", Profession: "Astronaut"},
	}, 1)
	require.Error(t, err)
}

func TestCreateGameDeterministic(t *testing.T) {
	a := testGame(t, 2)
	b := testGame(t, 2)
	assert.Equal(t, Checksum(a), Checksum(b))
	assert.Equal(t, a.SmallDeals.Draw, b.SmallDeals.Draw)
}

func TestRejectWrongActor(t *testing.T) {
	state := testGame(t, 2)
	before := Checksum(state)

	next, res := ProcessAction(state, Action{Type: ActionRollDice, PlayerID: "bob", Dice: []int{3}})
	assert.Equal(t, ResultRejectedActor, res.Code)
	// Unchanged except for one log entry.
	assert.Equal(t, before, Checksum(next))
	assert.Len(t, next.Log, len(state.Log)+1)
}

func TestRejectWrongPhase(t *testing.T) {
	state := testGame(t, 2)
	next, res := ProcessAction(state, Action{Type: ActionEndTurn, PlayerID: "alice"})
	assert.Equal(t, ResultRejectedPhase, res.Code)
	assert.Equal(t, Checksum(state), Checksum(next))
}

func TestProcessActionNeverMutatesInput(t *testing.T) {
	state := testGame(t, 2)
	before := Checksum(state)
	logLen := len(state.Log)

	ProcessAction(state, Action{Type: ActionRollDice, PlayerID: "alice", Dice: []int{4}})
	assert.Equal(t, before, Checksum(state))
	assert.Len(t, state.Log, logLen)
}

func TestRollDiceMovesAndResolvesDealSpace(t *testing.T) {
	state := testGame(t, 2)
	// 4 steps from 0 lands on space 4, a deal space, crossing no payday.
	next, res := ProcessAction(state, Action{Type: ActionRollDice, PlayerID: "alice", Dice: []int{4}})
	require.True(t, res.OK(), res.Reason)
	assert.Equal(t, 4, next.Current().Position)
	assert.Equal(t, PhaseResolveSpace, next.Phase)
	assert.Equal(t, []ActionType{ActionChooseDealSize}, ValidActions(next))
}

func TestRollDiceRejectsBadDice(t *testing.T) {
	state := testGame(t, 2)
	_, res := ProcessAction(state, Action{Type: ActionRollDice, PlayerID: "alice", Dice: []int{7}})
	assert.Equal(t, ResultRejectedRule, res.Code)
	_, res = ProcessAction(state, Action{Type: ActionRollDice, PlayerID: "alice"})
	assert.Equal(t, ResultRejectedRule, res.Code)
}

func TestPayDayCollection(t *testing.T) {
	state := testGame(t, 2)
	state.Players[0].Cash = 1000

	// 5 steps from 0 lands exactly on the payday at 5.
	next, res := ProcessAction(state, Action{Type: ActionRollDice, PlayerID: "alice", Dice: []int{5}})
	require.True(t, res.OK(), res.Reason)
	require.Equal(t, PhasePayDayCollection, next.Phase)
	require.Equal(t, 1, next.PendingPayDays)

	// Teacher cash flow is 960: 1000 + 960 = 1960.
	next, res = ProcessAction(next, Action{Type: ActionCollectPayDay, PlayerID: "alice"})
	require.True(t, res.OK(), res.Reason)
	assert.Equal(t, 1960, next.Current().Cash)
	assert.Equal(t, 0, next.PendingPayDays)
	// Landing space was the payday itself, so the turn is done.
	assert.Equal(t, PhaseEndOfTurn, next.Phase)
}

func TestDoodadForcedLoan(t *testing.T) {
	state := testGame(t, 2)
	state.Players[0].Cash = 500
	card := cards.Card{Deck: cards.DeckDoodad, Title: "Family Vacation", Amount: 3000}
	state.ActiveCard = &card
	state.Phase = PhaseMakeDecision

	next, res := ProcessAction(state, Action{Type: ActionPayExpense, PlayerID: "alice"})
	require.True(t, res.OK(), res.Reason)
	p := next.Current()
	// 500 - 3000 = -2500; the forced loan is the next covering multiple of
	// 1000, leaving cash at 500 and the principal at 3000.
	assert.Equal(t, 500, p.Cash)
	assert.Equal(t, 3000, p.BankLoan)
	assert.Equal(t, PhaseEndOfTurn, next.Phase)
	assert.Len(t, next.Doodads.Discard, 1)
}

func TestTakeLoanRules(t *testing.T) {
	state := testGame(t, 2)
	before := state.Current().Cash

	next, res := ProcessAction(state, Action{Type: ActionTakeLoan, PlayerID: "alice", Amount: 1500})
	assert.Equal(t, ResultRejectedRule, res.Code)
	assert.Equal(t, before, next.Current().Cash)
	assert.Equal(t, 0, next.Current().BankLoan)

	next, res = ProcessAction(state, Action{Type: ActionTakeLoan, PlayerID: "alice", Amount: 2000})
	require.True(t, res.OK(), res.Reason)
	assert.Equal(t, before+2000, next.Current().Cash)
	assert.Equal(t, 2000, next.Current().BankLoan)
}

func TestPayOffBankLoan(t *testing.T) {
	state := testGame(t, 2)
	state.Players[0].Cash = 5000
	state.Players[0].BankLoan = 4000

	next, res := ProcessAction(state, Action{Type: ActionPayOffLoan, PlayerID: "alice", LiabilityName: BankLoanName, Amount: 3000})
	require.True(t, res.OK(), res.Reason)
	assert.Equal(t, 2000, next.Current().Cash)
	assert.Equal(t, 1000, next.Current().BankLoan)

	_, res = ProcessAction(state, Action{Type: ActionPayOffLoan, PlayerID: "alice", LiabilityName: BankLoanName, Amount: 5000})
	assert.Equal(t, ResultRejectedRule, res.Code)
}

func TestPayOffBankLoanTriggersEscape(t *testing.T) {
	state := testGame(t, 2)
	state.Players[0].Cash = 1000
	state.Players[0].BankLoan = 1000
	// Passive income 2345 beats the base expenses of 2340 but not the loan
	// payment on top; retiring the loan tips the escape condition.
	state.Players[0].Statement.Assets = []finance.Asset{
		{ID: "biz", Kind: finance.AssetBusiness, Name: "Laundromat", DownPayment: 5000, CashFlow: 2345},
	}
	require.False(t, finance.CanEscape(state.Players[0].Statement, state.Players[0].BankLoan))

	next, res := ProcessAction(state, Action{Type: ActionPayOffLoan, PlayerID: "alice", LiabilityName: BankLoanName, Amount: 1000})
	require.True(t, res.OK(), res.Reason)
	p := next.Current()
	assert.Equal(t, 0, p.BankLoan)
	assert.True(t, p.Escaped)
	assert.Equal(t, []ActionType{ActionChooseDream}, ValidActions(next))
}

func TestPayOffNamedLiability(t *testing.T) {
	state := testGame(t, 2)
	state.Players[0].Cash = 6000

	next, res := ProcessAction(state, Action{Type: ActionPayOffLoan, PlayerID: "alice", LiabilityName: "Car Loan"})
	require.True(t, res.OK(), res.Reason)
	p := next.Current()
	assert.Equal(t, 1000, p.Cash)
	assert.Equal(t, 0, p.Statement.Expenses.CarLoanPayment)
	for _, l := range p.Statement.Liabilities {
		assert.NotEqual(t, "Car Loan", l.Name)
	}
}

func TestBuyDealFromDecision(t *testing.T) {
	state := testGame(t, 2)
	state.Players[0].Cash = 10000
	card := cards.Card{Deck: cards.DeckSmallDeal, Kind: cards.DealRealEstate, Title: "Condo For Sale", PropertyType: "condo", DownPayment: 5000, Cost: 40000, CashFlow: 140}
	state.ActiveCard = &card
	state.Phase = PhaseMakeDecision

	next, res := ProcessAction(state, Action{Type: ActionBuyDeal, PlayerID: "alice"})
	require.True(t, res.OK(), res.Reason)
	p := next.Current()
	assert.Equal(t, 5000, p.Cash)
	require.Len(t, p.Statement.Assets, 1)
	assert.Equal(t, 140, p.Statement.Assets[0].CashFlow)
	assert.Nil(t, next.ActiveCard)
	assert.Equal(t, PhaseEndOfTurn, next.Phase)
}

func TestBuyDealInsufficientCashIsNoOp(t *testing.T) {
	state := testGame(t, 2)
	state.Players[0].Cash = 100
	card := cards.Card{Deck: cards.DeckSmallDeal, Kind: cards.DealRealEstate, Title: "Condo", DownPayment: 5000}
	state.ActiveCard = &card
	state.Phase = PhaseMakeDecision

	next, res := ProcessAction(state, Action{Type: ActionBuyDeal, PlayerID: "alice"})
	assert.Equal(t, ResultRejectedRule, res.Code)
	assert.Equal(t, Checksum(state), Checksum(next))
	assert.Equal(t, PhaseMakeDecision, next.Phase)
}

func TestDealOfferAcceptTransfersPrice(t *testing.T) {
	state := testGame(t, 2)
	state.Players[0].Cash = 1000
	state.Players[1].Cash = 10000
	card := cards.Card{Deck: cards.DeckSmallDeal, Kind: cards.DealRealEstate, Title: "House For Sale", PropertyType: "house", DownPayment: 4000, Cost: 50000, CashFlow: 160}
	state.ActiveCard = &card
	state.Phase = PhaseMakeDecision

	next, res := ProcessAction(state, Action{Type: ActionOfferDeal, PlayerID: "alice", TargetPlayerID: "bob", Price: 500})
	require.True(t, res.OK(), res.Reason)
	require.Equal(t, PhaseWaitingForDealResponse, next.Phase)
	require.NotNil(t, next.PendingDeal)
	assert.Nil(t, next.ActiveCard)

	// Only bob may answer.
	_, res = ProcessAction(next, Action{Type: ActionAcceptDealOffer, PlayerID: "alice"})
	assert.Equal(t, ResultRejectedActor, res.Code)

	next, res = ProcessAction(next, Action{Type: ActionAcceptDealOffer, PlayerID: "bob"})
	require.True(t, res.OK(), res.Reason)
	seller := next.Players[0]
	buyer := next.Players[1]
	// Exactly 500 moves buyer -> seller; the down payment resolves against
	// the buyer at the card's own terms.
	assert.Equal(t, 1500, seller.Cash)
	assert.Equal(t, 10000-500-4000, buyer.Cash)
	require.Len(t, buyer.Statement.Assets, 1)
	assert.Empty(t, seller.Statement.Assets)
	assert.Nil(t, next.PendingDeal)
	assert.Equal(t, PhaseEndOfTurn, next.Phase)
}

func TestDealOfferDeclineReturnsCardToSeller(t *testing.T) {
	state := testGame(t, 2)
	card := cards.Card{Deck: cards.DeckSmallDeal, Kind: cards.DealBusiness, Title: "Widget Vending Route", DownPayment: 2000, Cost: 2000, CashFlow: 150}
	state.ActiveCard = &card
	state.Phase = PhaseMakeDecision

	next, res := ProcessAction(state, Action{Type: ActionOfferDeal, PlayerID: "alice", TargetPlayerID: "bob", Price: 300})
	require.True(t, res.OK(), res.Reason)

	next, res = ProcessAction(next, Action{Type: ActionDeclineDealOffer, PlayerID: "bob"})
	require.True(t, res.OK(), res.Reason)
	assert.Equal(t, PhaseMakeDecision, next.Phase)
	require.NotNil(t, next.ActiveCard)
	assert.Equal(t, "Widget Vending Route", next.ActiveCard.Title)
	assert.Nil(t, next.PendingDeal)
}

func TestCharityGrantsTwoDiceOption(t *testing.T) {
	state := testGame(t, 2)
	state.Players[0].Position = 3 // charity space
	state.Players[0].Cash = 1000
	state.Phase = PhaseMakeDecision

	next, res := ProcessAction(state, Action{Type: ActionAcceptCharity, PlayerID: "alice"})
	require.True(t, res.OK(), res.Reason)
	p := next.Current()
	// 10% of total income 3300.
	assert.Equal(t, 1000-330, p.Cash)
	assert.Equal(t, 3, p.CharityTurns)
	assert.Equal(t, PhaseEndOfTurn, next.Phase)

	next, res = ProcessAction(next, Action{Type: ActionEndTurn, PlayerID: "alice"})
	require.True(t, res.OK(), res.Reason)
	next.Phase = PhaseEndOfTurn // shortcut bob's turn
	next, res = ProcessAction(next, Action{Type: ActionEndTurn, PlayerID: "bob"})
	require.True(t, res.OK(), res.Reason)

	// Back to alice, who rolls two dice under charity.
	require.Equal(t, "alice", next.Current().ID)
	next, res = ProcessAction(next, Action{Type: ActionRollDice, PlayerID: "alice", Dice: []int{3, 4}, UseTwoDice: true})
	require.True(t, res.OK(), res.Reason)
	assert.Equal(t, 10, next.Current().Position) // 3 + 7
	assert.Equal(t, 2, next.Current().CharityTurns)
}

func TestEndTurnSkipsEliminatedAndPenalized(t *testing.T) {
	state := testGame(t, 4)
	state.Phase = PhaseEndOfTurn
	state.Players[1].Bankrupt = true
	state.Players[2].DownsizedTurns = 2

	next, res := ProcessAction(state, Action{Type: ActionEndTurn, PlayerID: "alice"})
	require.True(t, res.OK(), res.Reason)
	// bob is out, carol is skipped with one counter tick, dave plays.
	assert.Equal(t, "dave", next.Current().ID)
	assert.Equal(t, 1, next.Players[2].DownsizedTurns)
	assert.Equal(t, PhaseRollDice, next.Phase)

	next.Phase = PhaseEndOfTurn
	next, res = ProcessAction(next, Action{Type: ActionEndTurn, PlayerID: "dave"})
	require.True(t, res.OK(), res.Reason)
	assert.Equal(t, "alice", next.Current().ID)

	// Around again: carol's last penalty turn ticks away.
	next.Phase = PhaseEndOfTurn
	next, res = ProcessAction(next, Action{Type: ActionEndTurn, PlayerID: "alice"})
	require.True(t, res.OK(), res.Reason)
	assert.Equal(t, "dave", next.Current().ID)
	assert.Equal(t, 0, next.Players[2].DownsizedTurns)

	// Carol finally plays.
	next.Phase = PhaseEndOfTurn
	next, res = ProcessAction(next, Action{Type: ActionEndTurn, PlayerID: "dave"})
	require.True(t, res.OK(), res.Reason)
	assert.Equal(t, "alice", next.Current().ID)
	next.Phase = PhaseEndOfTurn
	next, res = ProcessAction(next, Action{Type: ActionEndTurn, PlayerID: "alice"})
	require.True(t, res.OK(), res.Reason)
	assert.Equal(t, "carol", next.Current().ID)
}

func TestBankruptcySurvival(t *testing.T) {
	state := testGame(t, 2)
	state.Phase = PhaseBankruptcyDecision
	state.Players[0].Cash = 0
	state.Players[0].Statement.Assets = []finance.Asset{
		{ID: "prop", Kind: finance.AssetRealEstate, PropertyType: "house", DownPayment: 6000, Cost: 50000, CashFlow: 160},
	}

	next, res := ProcessAction(state, Action{Type: ActionDeclareBankrupt, PlayerID: "alice"})
	require.True(t, res.OK(), res.Reason)
	p := next.Players[0]
	assert.Equal(t, 3000, p.Cash)
	assert.Empty(t, p.Statement.Assets)
	assert.Equal(t, 50, p.Statement.Expenses.CarLoanPayment)
	assert.Equal(t, 45, p.Statement.Expenses.CreditCardPayment)
	assert.False(t, p.Bankrupt)
	assert.Equal(t, 2, p.RecoveryTurns)
	// The turn passed to bob.
	assert.Equal(t, "bob", next.Current().ID)
}

func TestBankruptcyEliminationEndsTwoPlayerGame(t *testing.T) {
	state := testGame(t, 2)
	state.Phase = PhaseBankruptcyDecision
	state.Players[0].Statement.Salary = 0
	state.Players[0].BankLoan = 100000

	next, res := ProcessAction(state, Action{Type: ActionDeclareBankrupt, PlayerID: "alice"})
	require.True(t, res.OK(), res.Reason)
	assert.True(t, next.Players[0].Bankrupt)
	assert.Equal(t, "bob", next.WinnerID)
	assert.Equal(t, PhaseGameOver, next.Phase)
	assert.Nil(t, ValidActions(next))
}

func TestEscapeForcesDreamChoice(t *testing.T) {
	state := testGame(t, 2)
	state.Players[0].Cash = 10000
	// Enough passive income to beat expenses of 2340.
	card := cards.Card{Deck: cards.DeckBigDeal, Kind: cards.DealBusiness, Title: "Limited Partnership", DownPayment: 3000, CashFlow: 2400}
	state.ActiveCard = &card
	state.Phase = PhaseMakeDecision

	next, res := ProcessAction(state, Action{Type: ActionBuyDeal, PlayerID: "alice"})
	require.True(t, res.OK(), res.Reason)
	require.True(t, next.Current().Escaped)
	assert.Equal(t, []ActionType{ActionChooseDream}, ValidActions(next))

	// Nothing else is accepted until the dream is chosen.
	_, res = ProcessAction(next, Action{Type: ActionEndTurn, PlayerID: "alice"})
	assert.Equal(t, ResultRejectedPhase, res.Code)

	next, res = ProcessAction(next, Action{Type: ActionChooseDream, PlayerID: "alice", DreamPosition: 6})
	require.True(t, res.OK(), res.Reason)
	p := next.Current()
	assert.True(t, p.FastTrack)
	assert.Equal(t, 6, p.Dream)
	// Rate at entry is monthly cash flow x100: income 3300+2400, expenses 2340.
	assert.Equal(t, (3300+2400-2340)*100, p.CashFlowRate)
}

func TestChooseDreamRejectsNonDreamSpace(t *testing.T) {
	state := testGame(t, 2)
	state.Players[0].Escaped = true
	_, res := ProcessAction(state, Action{Type: ActionChooseDream, PlayerID: "alice", DreamPosition: 0})
	assert.Equal(t, ResultRejectedRule, res.Code)
}

func TestFastTrackDreamWin(t *testing.T) {
	state := testGame(t, 2)
	p := &state.Players[0]
	p.FastTrack = true
	p.Escaped = true
	p.Dream = 2
	p.FastTrackPosition = 0
	p.CashFlowRate = 100000
	p.CashFlowRateStart = 100000

	next, res := ProcessAction(state, Action{Type: ActionRollDice, PlayerID: "alice", Dice: []int{1, 1}})
	require.True(t, res.OK(), res.Reason)
	assert.Equal(t, "alice", next.WinnerID)
	assert.True(t, next.Players[0].Won)
	assert.Equal(t, PhaseGameOver, next.Phase)
}

func TestFastTrackRateWin(t *testing.T) {
	state := testGame(t, 2)
	p := &state.Players[0]
	p.FastTrack = true
	p.Escaped = true
	p.Dream = 2
	p.Cash = 100000
	p.CashFlowRate = 140000
	p.CashFlowRateStart = 96000
	card := cards.Card{Deck: cards.DeckBigDeal, Kind: cards.DealBusiness, Title: "Car Wash For Sale", DownPayment: 25000, CashFlow: 1500}
	state.ActiveCard = &card
	state.Phase = PhaseMakeDecision

	next, res := ProcessAction(state, Action{Type: ActionBuyDeal, PlayerID: "alice"})
	require.True(t, res.OK(), res.Reason)
	// 140000 + 15000 passes 96000 + 50000.
	assert.Equal(t, 155000, next.Players[0].CashFlowRate)
	assert.Equal(t, "alice", next.WinnerID)
}

func TestFastTrackTaxAudit(t *testing.T) {
	state := testGame(t, 2)
	p := &state.Players[0]
	p.FastTrack = true
	p.Escaped = true
	p.Dream = 9
	p.FastTrackPosition = 2
	p.CashFlowRate = 80000
	p.CashFlowRateStart = 80000

	next, res := ProcessAction(state, Action{Type: ActionRollDice, PlayerID: "alice", Dice: []int{1, 1}})
	require.True(t, res.OK(), res.Reason)
	assert.Equal(t, 4, next.Players[0].FastTrackPosition)
	assert.Equal(t, 40000, next.Players[0].CashFlowRate)
	assert.Equal(t, PhaseEndOfTurn, next.Phase)
}

func TestStockSplitHitsEveryHolder(t *testing.T) {
	state := testGame(t, 3)
	state.Players[0].Statement.Assets = []finance.Asset{
		{ID: "a", Kind: finance.AssetStock, Symbol: "OK4U", Shares: 100, CostPerShare: 20, DividendPerShare: 2},
	}
	state.Players[2].Statement.Assets = []finance.Asset{
		{ID: "b", Kind: finance.AssetStock, Symbol: "OK4U", Shares: 50, CostPerShare: 20},
	}
	next := state.Clone()
	applySplitToAll(next, cards.Card{Deck: cards.DeckSmallDeal, Kind: cards.DealStockSplit, Symbol: "OK4U", SplitNum: 2, SplitDen: 1})
	assert.Equal(t, 200, next.Players[0].Statement.Assets[0].Shares)
	assert.Equal(t, 10, next.Players[0].Statement.Assets[0].CostPerShare)
	assert.Equal(t, 1, next.Players[0].Statement.Assets[0].DividendPerShare)
	assert.Equal(t, 100, next.Players[2].Statement.Assets[0].Shares)
}

func TestMarketExpenseAllAutoResolves(t *testing.T) {
	state := testGame(t, 3)
	for i := range state.Players {
		state.Players[i].Cash = 2000
	}
	next := state.Clone()
	applyMarketToAll(next, cards.Card{Deck: cards.DeckMarket, Effect: cards.MarketExpenseAll, Title: "Interest Rates Rise", Amount: 700})
	for _, p := range next.Players {
		assert.Equal(t, 1300, p.Cash)
	}
}

func TestMarketDamageOnlyHitsHolders(t *testing.T) {
	state := testGame(t, 2)
	state.Players[0].Cash = 2000
	state.Players[1].Cash = 2000
	state.Players[1].Statement.Assets = []finance.Asset{
		{ID: "h", Kind: finance.AssetRealEstate, PropertyType: "house", DownPayment: 4000, Cost: 50000, CashFlow: 160},
	}
	next := state.Clone()
	applyMarketToAll(next, cards.Card{Deck: cards.DeckMarket, Effect: cards.MarketDamage, Title: "Tenant Damages Unit", PropertyType: "house", Amount: 1000})
	assert.Equal(t, 2000, next.Players[0].Cash)
	assert.Equal(t, 1000, next.Players[1].Cash)
}

func TestSellAssetKeepsMarketCardActive(t *testing.T) {
	state := testGame(t, 2)
	state.Players[0].Statement.Assets = []finance.Asset{
		{ID: "h1", Kind: finance.AssetRealEstate, PropertyType: "house", DownPayment: 4000, Cost: 50000, CashFlow: 160},
		{ID: "h2", Kind: finance.AssetRealEstate, PropertyType: "house", DownPayment: 6000, Cost: 55000, CashFlow: 200},
	}
	card := cards.Card{Deck: cards.DeckMarket, Effect: cards.MarketPropertyOffer, Title: "House Buyer", PropertyType: "house", FlatOffer: 65000}
	state.ActiveCard = &card
	state.Phase = PhaseMakeDecision

	next, res := ProcessAction(state, Action{Type: ActionSellAsset, PlayerID: "alice", AssetID: "h1"})
	require.True(t, res.OK(), res.Reason)
	assert.Equal(t, PhaseMakeDecision, next.Phase)
	require.NotNil(t, next.ActiveCard)

	next, res = ProcessAction(next, Action{Type: ActionSellAsset, PlayerID: "alice", AssetID: "h2"})
	require.True(t, res.OK(), res.Reason)
	assert.Empty(t, next.Current().Statement.Assets)

	next, res = ProcessAction(next, Action{Type: ActionSkipCard, PlayerID: "alice"})
	require.True(t, res.OK(), res.Reason)
	assert.Equal(t, PhaseEndOfTurn, next.Phase)
}

func TestValidActionsPerPhase(t *testing.T) {
	state := testGame(t, 2)
	assert.ElementsMatch(t, []ActionType{ActionRollDice, ActionTakeLoan, ActionPayOffLoan}, ValidActions(state))

	state.Phase = PhaseEndOfTurn
	assert.ElementsMatch(t, []ActionType{ActionEndTurn, ActionTakeLoan, ActionPayOffLoan}, ValidActions(state))

	state.Phase = PhaseBankruptcyDecision
	assert.ElementsMatch(t, []ActionType{ActionDeclareBankrupt, ActionPayOffLoan}, ValidActions(state))
}

func TestOfferDealGatedOnOtherPlayers(t *testing.T) {
	state := testGame(t, 2)
	card := cards.Card{Deck: cards.DeckSmallDeal, Kind: cards.DealBusiness, Title: "Widget Vending Route", DownPayment: 2000, CashFlow: 150}
	state.ActiveCard = &card
	state.Phase = PhaseMakeDecision
	assert.Contains(t, ValidActions(state), ActionOfferDeal)

	state.Players[1].Bankrupt = true
	assert.NotContains(t, ValidActions(state), ActionOfferDeal)
}
