package types

import (
	"strconv"
	"strings"
)

// Order selects the sequence in which per-file results are emitted.
type Order int

const (
	// OrderInput emits results in the order the files were given.
	OrderInput Order = iota // input
	// OrderCompletion emits results as soon as each file is done.
	OrderCompletion // completion
)

var orderNames = [...]string{
	OrderInput:      "input",
	OrderCompletion: "completion",
}

func (o Order) String() string {
	if o < 0 || int(o) >= len(orderNames) {
		return "Order(" + strconv.Itoa(int(o)) + ")"
	}
	return orderNames[o]
}

// ParseOrder parses a case-insensitive order name.
func ParseOrder(s string) (Order, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for i, n := range orderNames {
		if n == name {
			return Order(i), nil
		}
	}
	return OrderInput, &UnknownOrderError{Value: s}
}

// MarshalText implements encoding.TextMarshaler.
func (o Order) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (o *Order) UnmarshalText(text []byte) error {
	parsed, err := ParseOrder(string(text))
	if err != nil {
		return err
	}
	*o = parsed
	return nil
}

// Set lets Order be used as a command-line flag value.
func (o *Order) Set(s string) error {
	return o.UnmarshalText([]byte(s))
}

// Type names the flag value type in usage output.
func (o *Order) Type() string {
	return "order"
}
