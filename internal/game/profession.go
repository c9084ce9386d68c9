package game

import "github.com/sunandbean/cashflow-server-go/internal/game/finance"

// Profession is a starting financial position. Each player picks one at game
// start; it fixes their salary, expense lines, starting liabilities and
// starting savings.
type Profession struct {
	Name        string
	Salary      int
	Savings     int
	Expenses    finance.Expenses
	Liabilities []finance.Liability
}

// Statement builds the profession's starting financial statement.
func (p Profession) Statement() finance.Statement {
	return finance.Statement{
		Salary:      p.Salary,
		Expenses:    p.Expenses,
		Liabilities: append([]finance.Liability(nil), p.Liabilities...),
	}
}

var professions = map[string]Profession{
	"Janitor": {
		Name: "Janitor", Salary: 1600, Savings: 560,
		Expenses: finance.Expenses{Taxes: 280, MortgagePayment: 200, SchoolLoanPayment: 0, CarLoanPayment: 60, CreditCardPayment: 60, Other: 300, PerChild: 70},
		Liabilities: []finance.Liability{
			{Name: "Mortgage", Balance: 20000},
			{Name: "Car Loan", Balance: 4000},
			{Name: "Credit Card", Balance: 3000},
		},
	},
	"Secretary": {
		Name: "Secretary", Salary: 2500, Savings: 710,
		Expenses: finance.Expenses{Taxes: 460, MortgagePayment: 400, SchoolLoanPayment: 0, CarLoanPayment: 80, CreditCardPayment: 60, Other: 570, PerChild: 140},
		Liabilities: []finance.Liability{
			{Name: "Mortgage", Balance: 38000},
			{Name: "Car Loan", Balance: 4000},
			{Name: "Credit Card", Balance: 3000},
		},
	},
	"Teacher": {
		Name: "Teacher", Salary: 3300, Savings: 400,
		Expenses: finance.Expenses{Taxes: 630, MortgagePayment: 500, SchoolLoanPayment: 60, CarLoanPayment: 100, CreditCardPayment: 90, Other: 960, PerChild: 180},
		Liabilities: []finance.Liability{
			{Name: "Mortgage", Balance: 50000},
			{Name: "School Loan", Balance: 12000},
			{Name: "Car Loan", Balance: 5000},
			{Name: "Credit Card", Balance: 4000},
		},
	},
	"Nurse": {
		Name: "Nurse", Salary: 3100, Savings: 480,
		Expenses: finance.Expenses{Taxes: 600, MortgagePayment: 400, SchoolLoanPayment: 30, CarLoanPayment: 100, CreditCardPayment: 90, Other: 710, PerChild: 170},
		Liabilities: []finance.Liability{
			{Name: "Mortgage", Balance: 47000},
			{Name: "School Loan", Balance: 6000},
			{Name: "Car Loan", Balance: 5000},
			{Name: "Credit Card", Balance: 4000},
		},
	},
	"Engineer": {
		Name: "Engineer", Salary: 4900, Savings: 400,
		Expenses: finance.Expenses{Taxes: 1050, MortgagePayment: 700, SchoolLoanPayment: 60, CarLoanPayment: 140, CreditCardPayment: 120, Other: 1090, PerChild: 250},
		Liabilities: []finance.Liability{
			{Name: "Mortgage", Balance: 75000},
			{Name: "School Loan", Balance: 12000},
			{Name: "Car Loan", Balance: 7000},
			{Name: "Credit Card", Balance: 5000},
		},
	},
	"Police Officer": {
		Name: "Police Officer", Salary: 3000, Savings: 520,
		Expenses: finance.Expenses{Taxes: 580, MortgagePayment: 400, SchoolLoanPayment: 0, CarLoanPayment: 100, CreditCardPayment: 60, Other: 690, PerChild: 160},
		Liabilities: []finance.Liability{
			{Name: "Mortgage", Balance: 46000},
			{Name: "Car Loan", Balance: 5000},
			{Name: "Credit Card", Balance: 2000},
		},
	},
	"Airline Pilot": {
		Name: "Airline Pilot", Salary: 9500, Savings: 400,
		Expenses: finance.Expenses{Taxes: 2350, MortgagePayment: 1330, SchoolLoanPayment: 0, CarLoanPayment: 300, CreditCardPayment: 660, Other: 2210, PerChild: 480},
		Liabilities: []finance.Liability{
			{Name: "Mortgage", Balance: 143000},
			{Name: "Car Loan", Balance: 15000},
			{Name: "Credit Card", Balance: 22000},
		},
	},
	"Doctor": {
		Name: "Doctor", Salary: 13200, Savings: 400,
		Expenses: finance.Expenses{Taxes: 3420, MortgagePayment: 1900, SchoolLoanPayment: 750, CarLoanPayment: 380, CreditCardPayment: 270, Other: 2880, PerChild: 640},
		Liabilities: []finance.Liability{
			{Name: "Mortgage", Balance: 202000},
			{Name: "School Loan", Balance: 150000},
			{Name: "Car Loan", Balance: 19000},
			{Name: "Credit Card", Balance: 9000},
		},
	},
}

// ProfessionByName looks up a profession from the built-in catalogue.
func ProfessionByName(name string) (Profession, bool) {
	p, ok := professions[name]
	return p, ok
}

// ProfessionNames lists the built-in professions.
func ProfessionNames() []string {
	names := make([]string, 0, len(professions))
	for name := range professions {
		names = append(names, name)
	}
	return names
}
