package game

// ActionType tags player actions. Every type has exactly one handler in
// ProcessAction.
type ActionType string

const (
	ActionRollDice         ActionType = "ROLL_DICE"
	ActionCollectPayDay    ActionType = "COLLECT_PAY_DAY"
	ActionChooseDealSize   ActionType = "CHOOSE_DEAL_SIZE"
	ActionBuyDeal          ActionType = "BUY_DEAL"
	ActionSellAsset        ActionType = "SELL_ASSET"
	ActionSkipCard         ActionType = "SKIP_CARD"
	ActionPayExpense       ActionType = "PAY_EXPENSE"
	ActionAcceptCharity    ActionType = "ACCEPT_CHARITY"
	ActionDeclineCharity   ActionType = "DECLINE_CHARITY"
	ActionTakeLoan         ActionType = "TAKE_LOAN"
	ActionPayOffLoan       ActionType = "PAY_OFF_LOAN"
	ActionEndTurn          ActionType = "END_TURN"
	ActionDeclareBankrupt  ActionType = "DECLARE_BANKRUPTCY"
	ActionOfferDeal        ActionType = "OFFER_DEAL"
	ActionAcceptDealOffer  ActionType = "ACCEPT_DEAL_OFFER"
	ActionDeclineDealOffer ActionType = "DECLINE_DEAL_OFFER"
	ActionChooseDream      ActionType = "CHOOSE_DREAM"
)

// DealSize selects which deal deck a player draws from.
type DealSize string

const (
	DealSizeSmall DealSize = "SMALL"
	DealSizeBig   DealSize = "BIG"
)

// Action is the tagged union submitted to ProcessAction. Type and PlayerID
// are always required; the remaining fields are read per type:
//
//	ROLL_DICE          Dice (authoritative values), UseTwoDice
//	CHOOSE_DEAL_SIZE   DealSize
//	BUY_DEAL           Quantity (stock share count)
//	SELL_ASSET         AssetID, Quantity (stock share count)
//	TAKE_LOAN          Amount
//	PAY_OFF_LOAN       LiabilityName, Amount
//	OFFER_DEAL         TargetPlayerID, Price
//	ACCEPT_DEAL_OFFER  Quantity (stock share count)
//	CHOOSE_DREAM       DreamPosition
type Action struct {
	Type           ActionType `json:"type"`
	PlayerID       string     `json:"player_id"`
	Dice           []int      `json:"dice,omitempty"`
	UseTwoDice     bool       `json:"use_two_dice,omitempty"`
	DealSize       DealSize   `json:"deal_size,omitempty"`
	Quantity       int        `json:"quantity,omitempty"`
	AssetID        string     `json:"asset_id,omitempty"`
	TargetPlayerID string     `json:"target_player_id,omitempty"`
	Price          int        `json:"price,omitempty"`
	Amount         int        `json:"amount,omitempty"`
	LiabilityName  string     `json:"liability_name,omitempty"`
	DreamPosition  int        `json:"dream_position,omitempty"`
}

// ResultCode discriminates the outcome of ProcessAction.
type ResultCode int

const (
	// ResultApplied means the action was applied and a new state returned.
	ResultApplied ResultCode = iota
	// ResultRejectedActor means the actor may not act right now.
	ResultRejectedActor
	// ResultRejectedPhase means the action type is not legal in the current
	// phase.
	ResultRejectedPhase
	// ResultRejectedRule means a domain rule refused the action; the state
	// comes back unchanged.
	ResultRejectedRule
)

var resultCodeNames = map[ResultCode]string{
	ResultApplied:       "APPLIED",
	ResultRejectedActor: "REJECTED_ACTOR",
	ResultRejectedPhase: "REJECTED_PHASE",
	ResultRejectedRule:  "REJECTED_RULE",
}

func (c ResultCode) String() string {
	if name, ok := resultCodeNames[c]; ok {
		return name
	}
	return "UNKNOWN"
}

// Result reports what ProcessAction did. Rejections carry a reason; the
// engine never fails with a Go error for caller-supplied input.
type Result struct {
	Code   ResultCode
	Reason string
}

// OK reports whether the action was applied.
func (r Result) OK() bool { return r.Code == ResultApplied }

func applied() Result { return Result{Code: ResultApplied} }

func rejectActor(reason string) Result {
	return Result{Code: ResultRejectedActor, Reason: reason}
}

func rejectPhase(reason string) Result {
	return Result{Code: ResultRejectedPhase, Reason: reason}
}

func rejectRule(reason string) Result {
	return Result{Code: ResultRejectedRule, Reason: reason}
}
