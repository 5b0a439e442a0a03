package ledger

import "errors"

var (
	// ErrDuplicateName means an expense with that name already exists.
	ErrDuplicateName = errors.New("expense name already exists")
	// ErrNotFound means no expense with that name exists.
	ErrNotFound = errors.New("expense not found")
	// ErrInvalidDueDate means the day is not valid in the current month.
	ErrInvalidDueDate = errors.New("invalid due date for current month")
	// ErrEmptyName means the expense name was blank.
	ErrEmptyName = errors.New("expense name must not be empty")
	// ErrNegativeAmount means a cost or income below zero was supplied.
	ErrNegativeAmount = errors.New("amount must not be negative")
)
