package getsfattr

import (
	"github.com/partiallyordered/getsfattr/internal/types"
)

// Order is an alias to types.Order.
type Order = types.Order

// Re-export all order constants.
const (
	OrderInput      = types.OrderInput
	OrderCompletion = types.OrderCompletion
)

// ParseOrder parses "input" or "completion" (case-insensitive).
func ParseOrder(s string) (Order, error) {
	return types.ParseOrder(s)
}
