// Package finance implements the financial-statement arithmetic behind the
// game: income, expenses, cash flow, loan mechanics, the bankruptcy procedure
// and the rat-race escape test. All functions are pure; callers pass in a
// statement and get values or a rebuilt statement back.
package finance

// AssetKind discriminates the entries of a player's asset column.
type AssetKind int

const (
	AssetStock AssetKind = iota
	AssetRealEstate
	AssetBusiness
)

var assetKindNames = map[AssetKind]string{
	AssetStock:      "STOCK",
	AssetRealEstate: "REAL_ESTATE",
	AssetBusiness:   "BUSINESS",
}

func (k AssetKind) String() string {
	if name, ok := assetKindNames[k]; ok {
		return name
	}
	return "ASSET"
}

// Asset is one entry in the asset column. Stock assets use Symbol, Shares,
// CostPerShare and DividendPerShare; real-estate and business assets use
// PropertyType, DownPayment, Cost (outstanding mortgage) and CashFlow.
type Asset struct {
	ID               string
	Kind             AssetKind
	Name             string
	Symbol           string
	Shares           int
	CostPerShare     int
	DividendPerShare int
	PropertyType     string
	DownPayment      int
	Cost             int
	CashFlow         int
}

// Liability is a named debt with an outstanding balance. The recurring
// payment for each liability lives in the matching Expenses field; paying a
// liability off clears both.
type Liability struct {
	Name    string
	Balance int
}

// Expenses holds the fixed monthly expense lines of a statement.
type Expenses struct {
	Taxes             int
	MortgagePayment   int
	SchoolLoanPayment int
	CarLoanPayment    int
	CreditCardPayment int
	Other             int
	PerChild          int
}

// Statement is a player's full financial statement.
type Statement struct {
	Salary      int
	Expenses    Expenses
	ChildCount  int
	Assets      []Asset
	Liabilities []Liability
}

// MaxChildren caps the number of children that contribute to expenses.
const MaxChildren = 3

// LoanStep is the granularity of all bank loans.
const LoanStep = 1000

// loanInterestAnnual is the bank-loan annual interest rate in percent.
const loanInterestAnnual = 10

// PassiveIncome sums dividends and asset cash flow.
func PassiveIncome(s Statement) int {
	total := 0
	for _, a := range s.Assets {
		switch a.Kind {
		case AssetStock:
			total += a.Shares * a.DividendPerShare
		default:
			total += a.CashFlow
		}
	}
	return total
}

// TotalIncome is salary plus passive income.
func TotalIncome(s Statement) int {
	return s.Salary + PassiveIncome(s)
}

// LoanPayment is the monthly payment on a bank-loan principal, rounded up to
// the next whole currency unit.
func LoanPayment(principal int) int {
	if principal <= 0 {
		return 0
	}
	annual := principal * loanInterestAnnual / 100
	return (annual + 11) / 12
}

// TotalExpenses sums the fixed expense lines, child expenses (capped) and the
// bank-loan payment for the given outstanding principal.
func TotalExpenses(s Statement, bankLoan int) int {
	children := s.ChildCount
	if children > MaxChildren {
		children = MaxChildren
	}
	e := s.Expenses
	return e.Taxes + e.MortgagePayment + e.SchoolLoanPayment + e.CarLoanPayment +
		e.CreditCardPayment + e.Other + e.PerChild*children + LoanPayment(bankLoan)
}

// CashFlow is total income minus total expenses.
func CashFlow(s Statement, bankLoan int) int {
	return TotalIncome(s) - TotalExpenses(s, bankLoan)
}

// CanEscape reports whether the statement satisfies the rat-race escape
// condition: passive income strictly greater than total expenses. Equality
// does not qualify.
func CanEscape(s Statement, bankLoan int) bool {
	return PassiveIncome(s) > TotalExpenses(s, bankLoan)
}

// CanTakeLoan reports whether a voluntary loan of amount is allowed on top of
// the current principal: the amount must be a positive multiple of LoanStep
// and the post-loan cash flow must stay non-negative.
func CanTakeLoan(s Statement, bankLoan, amount int) bool {
	if amount <= 0 || amount%LoanStep != 0 {
		return false
	}
	return CashFlow(s, bankLoan+amount) >= 0
}

// ForcedLoan returns the smallest multiple of LoanStep that restores a
// negative cash balance to non-negative. A forced loan is unconditional; it
// is the safety valve against an unpayable deficit. Returns 0 when cash is
// already non-negative.
func ForcedLoan(cash int) int {
	if cash >= 0 {
		return 0
	}
	deficit := -cash
	return ((deficit + LoanStep - 1) / LoanStep) * LoanStep
}

// LiquidationValue is what an asset fetches in the bankruptcy fire sale: half
// its recorded down payment. Stock lots sell at half their purchase cost.
func LiquidationValue(a Asset) int {
	if a.Kind == AssetStock {
		return a.Shares * a.CostPerShare / 2
	}
	return a.DownPayment / 2
}

// BankruptcyOutcome is the result of running the bankruptcy procedure.
type BankruptcyOutcome struct {
	Statement  Statement
	CashGained int
	Eliminated bool
}

// ApplyBankruptcy runs the bankruptcy procedure: every asset is sold at half
// its recorded down payment, the car-loan and credit-card expense lines are
// halved, and the player is eliminated iff cash flow is still negative
// afterwards. The input statement is not modified.
func ApplyBankruptcy(s Statement, bankLoan int) BankruptcyOutcome {
	gained := 0
	for _, a := range s.Assets {
		gained += LiquidationValue(a)
	}

	next := Statement{
		Salary:      s.Salary,
		Expenses:    s.Expenses,
		ChildCount:  s.ChildCount,
		Assets:      nil,
		Liabilities: append([]Liability(nil), s.Liabilities...),
	}
	next.Expenses.CarLoanPayment /= 2
	next.Expenses.CreditCardPayment /= 2

	return BankruptcyOutcome{
		Statement:  next,
		CashGained: gained,
		Eliminated: CashFlow(next, bankLoan) < 0,
	}
}

// LiabilityExpense maps a liability name to a pointer at its recurring
// payment line in e, or nil when the liability has no expense line.
func LiabilityExpense(e *Expenses, name string) *int {
	switch name {
	case "Mortgage":
		return &e.MortgagePayment
	case "School Loan":
		return &e.SchoolLoanPayment
	case "Car Loan":
		return &e.CarLoanPayment
	case "Credit Card":
		return &e.CreditCardPayment
	}
	return nil
}

// CloneStatement returns a deep copy of s.
func CloneStatement(s Statement) Statement {
	out := s
	out.Assets = append([]Asset(nil), s.Assets...)
	out.Liabilities = append([]Liability(nil), s.Liabilities...)
	return out
}
