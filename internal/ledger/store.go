// Package ledger provides the mutex-guarded store that owns the in-memory
// ledger and enforces its invariants.
package ledger

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/duebook-dev/duebook/internal/calendar"
	"github.com/duebook-dev/duebook/internal/model"
)

// Store owns a single Ledger. Every operation holds one exclusive lock for its
// full duration; the data volume is tens of records, so a coarse mutex beats
// anything cleverer. No operation performs I/O while holding the lock.
type Store struct {
	mu     sync.Mutex
	ledger model.Ledger

	now func() time.Time // wall clock for due-date validation
}

// NewStore creates a Store seeded with an initial ledger, typically the result
// of a file load.
func NewStore(initial model.Ledger) *Store {
	return &Store{
		ledger: initial.Clone(),
		now:    time.Now,
	}
}

// AddParams holds parameters for creating an expense. Cost is optional and
// defaults to zero.
type AddParams struct {
	Name    string
	Cost    decimal.Decimal
	DueDate int
}

// Add inserts a new unpaid expense at the end of the collection. The net
// worth is stale afterwards until RecomputeNetWorth runs.
func (s *Store) Add(params AddParams) error {
	name := strings.TrimSpace(params.Name)
	if name == "" {
		return ErrEmptyName
	}
	if params.Cost.IsNegative() {
		return fmt.Errorf("cost %s: %w", params.Cost, ErrNegativeAmount)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.checkDueDate(params.DueDate); err != nil {
		return err
	}
	if s.indexOf(name) >= 0 {
		return fmt.Errorf("%q: %w", name, ErrDuplicateName)
	}

	s.ledger.Expenses = append(s.ledger.Expenses, model.Expense{
		Name:    name,
		Cost:    params.Cost,
		Paid:    false,
		DueDate: params.DueDate,
	})
	return nil
}

// Remove deletes an expense, preserving the order of the remainder.
func (s *Store) Remove(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(name)
	if i < 0 {
		return fmt.Errorf("%q: %w", name, ErrNotFound)
	}
	s.ledger.Expenses = append(s.ledger.Expenses[:i], s.ledger.Expenses[i+1:]...)
	return nil
}

// EditParams holds the optional field updates for Edit. Nil fields are left
// untouched.
type EditParams struct {
	NewName    *string
	NewCost    *decimal.Decimal
	NewDueDate *int
}

// Edit updates the supplied fields of an existing expense. The paid flag is
// never affected. A due-date write is validated against the current month,
// same rule as Add.
func (s *Store) Edit(name string, params EditParams) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(name)
	if i < 0 {
		return fmt.Errorf("%q: %w", name, ErrNotFound)
	}

	if params.NewDueDate != nil {
		if err := s.checkDueDate(*params.NewDueDate); err != nil {
			return err
		}
	}
	if params.NewCost != nil && params.NewCost.IsNegative() {
		return fmt.Errorf("cost %s: %w", *params.NewCost, ErrNegativeAmount)
	}
	if params.NewName != nil {
		newName := strings.TrimSpace(*params.NewName)
		if newName == "" {
			return ErrEmptyName
		}
		if j := s.indexOf(newName); j >= 0 && j != i {
			return fmt.Errorf("%q: %w", newName, ErrDuplicateName)
		}
		s.ledger.Expenses[i].Name = newName
	}
	if params.NewCost != nil {
		s.ledger.Expenses[i].Cost = *params.NewCost
	}
	if params.NewDueDate != nil {
		s.ledger.Expenses[i].DueDate = *params.NewDueDate
	}
	return nil
}

// Pay toggles the paid flag of an expense and returns the new state. Two
// calls restore the original state.
func (s *Store) Pay(name string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(name)
	if i < 0 {
		return false, fmt.Errorf("%q: %w", name, ErrNotFound)
	}
	s.ledger.Expenses[i].Paid = !s.ledger.Expenses[i].Paid
	return s.ledger.Expenses[i].Paid, nil
}

// ResetPaid clears the paid flag on every expense. It never fails and is a
// no-op on an already-unpaid ledger.
func (s *Store) ResetPaid() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.ledger.Expenses {
		s.ledger.Expenses[i].Paid = false
	}
}

// RecomputeNetWorth sets net worth to income minus the total expense cost.
func (s *Store) RecomputeNetWorth() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.ledger.NetWorth = s.ledger.Income.Sub(s.ledger.TotalCost())
}

// SetIncome overwrites the income figure. It does not recompute net worth;
// the caller composes the two.
func (s *Store) SetIncome(amount decimal.Decimal) error {
	if amount.IsNegative() {
		return fmt.Errorf("income %s: %w", amount, ErrNegativeAmount)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.ledger.Income = amount
	return nil
}

// Income returns the current income figure.
func (s *Store) Income() decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.ledger.Income
}

// Get returns a copy of the named expense.
func (s *Store) Get(name string) (model.Expense, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(name)
	if i < 0 {
		return model.Expense{}, false
	}
	return s.ledger.Expenses[i], true
}

// Snapshot returns an immutable deep copy of the full ledger state for
// display or persistence. The critical section copies memory only.
func (s *Store) Snapshot() model.Ledger {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.ledger.Clone()
}

// indexOf returns the position of the named expense, or -1. Caller holds the
// lock.
func (s *Store) indexOf(name string) int {
	for i, e := range s.ledger.Expenses {
		if e.Name == name {
			return i
		}
	}
	return -1
}

// checkDueDate validates a day against the current wall-clock month. Caller
// holds the lock.
func (s *Store) checkDueDate(day int) error {
	now := s.now()
	if !calendar.DayValid(day, now.Month(), now.Year()) {
		return fmt.Errorf("day %d in %s %d: %w", day, now.Month(), now.Year(), ErrInvalidDueDate)
	}
	return nil
}
