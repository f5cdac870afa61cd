package domino

import "strings"

// Order is the direction used by Sort.
type Order string

const (
	Ascending  Order = "asc"
	Descending Order = "desc"
)

// ParseOrder accepts "asc"/"desc" (and the long forms), case-insensitive.
func ParseOrder(s string) (Order, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "asc", "ascending":
		return Ascending, nil
	case "desc", "descending":
		return Descending, nil
	}
	return "", &ValidationError{
		Field:   "order",
		Value:   s,
		Message: `must be "asc" or "desc"`,
		Cause:   ErrInvalidOrder,
	}
}
