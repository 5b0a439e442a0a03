package model

import "github.com/shopspring/decimal"

// Expense represents one recurring monthly obligation. Name doubles as the
// primary key: it is unique within a ledger and there is no separate ID.
type Expense struct {
	Name    string
	Cost    decimal.Decimal
	Paid    bool
	DueDate int // day of month, 1-31
}

// Ledger is the in-memory aggregate of income, net worth, and the ordered
// expense collection. The zero value is the default empty ledger.
type Ledger struct {
	Expenses []Expense
	Income   decimal.Decimal
	NetWorth decimal.Decimal
}

// TotalCost returns the sum of all expense costs (zero for an empty ledger).
func (l Ledger) TotalCost() decimal.Decimal {
	total := decimal.Zero
	for _, e := range l.Expenses {
		total = total.Add(e.Cost)
	}
	return total
}

// Clone returns a deep copy safe to use after the original mutates.
func (l Ledger) Clone() Ledger {
	out := Ledger{
		Income:   l.Income,
		NetWorth: l.NetWorth,
	}
	if l.Expenses != nil {
		out.Expenses = make([]Expense, len(l.Expenses))
		copy(out.Expenses, l.Expenses)
	}
	return out
}
