package ledgerfile

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/shopspring/decimal"

	"github.com/duebook-dev/duebook/internal/model"
)

// fileLedger is the on-disk shape of expenses.json. Money fields travel as
// bare JSON numbers via json.Number so decimal values round-trip without
// float conversion.
type fileLedger struct {
	Income   json.Number   `json:"income"`
	NetWorth json.Number   `json:"net_worth"`
	Expenses []fileExpense `json:"expenses"`
}

type fileExpense struct {
	Name    string      `json:"name"`
	Cost    json.Number `json:"cost"`
	Paid    bool        `json:"paid"`
	DueDate int         `json:"due_date"`
}

// Decode reads a ledger from its JSON representation.
func Decode(r io.Reader) (model.Ledger, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	var raw fileLedger
	if err := dec.Decode(&raw); err != nil {
		return model.Ledger{}, fmt.Errorf("parsing ledger JSON: %w", err)
	}
	// Decode stops after one value; anything but whitespace behind it means
	// the file is not a single ledger object.
	if dec.More() {
		return model.Ledger{}, fmt.Errorf("parsing ledger JSON: trailing data after ledger object")
	}

	income, err := parseAmount(raw.Income)
	if err != nil {
		return model.Ledger{}, fmt.Errorf("parsing income: %w", err)
	}
	netWorth, err := parseAmount(raw.NetWorth)
	if err != nil {
		return model.Ledger{}, fmt.Errorf("parsing net_worth: %w", err)
	}

	led := model.Ledger{Income: income, NetWorth: netWorth}
	for i, fe := range raw.Expenses {
		cost, err := parseAmount(fe.Cost)
		if err != nil {
			return model.Ledger{}, fmt.Errorf("expense %d (%q): parsing cost: %w", i, fe.Name, err)
		}
		if fe.Name == "" {
			return model.Ledger{}, fmt.Errorf("expense %d: missing name", i)
		}
		led.Expenses = append(led.Expenses, model.Expense{
			Name:    fe.Name,
			Cost:    cost,
			Paid:    fe.Paid,
			DueDate: fe.DueDate,
		})
	}
	return led, nil
}

// Encode writes a ledger as pretty-printed JSON.
func Encode(w io.Writer, led model.Ledger) error {
	raw := fileLedger{
		Income:   json.Number(led.Income.String()),
		NetWorth: json.Number(led.NetWorth.String()),
		Expenses: make([]fileExpense, 0, len(led.Expenses)),
	}
	for _, e := range led.Expenses {
		raw.Expenses = append(raw.Expenses, fileExpense{
			Name:    e.Name,
			Cost:    json.Number(e.Cost.String()),
			Paid:    e.Paid,
			DueDate: e.DueDate,
		})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(raw); err != nil {
		return fmt.Errorf("encoding ledger JSON: %w", err)
	}
	return nil
}

// parseAmount converts a JSON number to a decimal. An absent field decodes as
// the empty string and counts as zero.
func parseAmount(n json.Number) (decimal.Decimal, error) {
	if n == "" {
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(n.String())
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("invalid amount %q: %w", n, err)
	}
	return d, nil
}
