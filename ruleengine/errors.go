package ruleengine

import (
	"errors"
	"fmt"
)

// ErrUndefinedItem is wrapped by UndefinedItemError.
var ErrUndefinedItem = errors.New("ruleengine: undefined item")

// UndefinedItemError reports that the expression referenced an identifier
// with no entry in the item table.
type UndefinedItemError struct {
	Name string
}

func (e *UndefinedItemError) Error() string {
	return fmt.Sprintf("ruleengine: item %q is not defined", e.Name)
}

func (e *UndefinedItemError) Unwrap() error {
	return ErrUndefinedItem
}
