// Package ledger owns drug and sale records and the consistency rules
// between them: stock never goes negative, a sale decrements stock and
// records its total atomically, and reports are derived views that never
// mutate state.
package ledger

import "errors"

// Sentinel errors callers match with errors.Is. The menu layer translates
// each into a printed message; none of them should terminate the process.
var (
	// ErrNotFound means no drug matched the given name or identifier.
	ErrNotFound = errors.New("drug not found")

	// ErrInvalidInput means a numeric field was out of range: negative
	// price or quantity on add, non-positive quantity on sell.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInsufficientStock means the requested sale quantity exceeds the
	// drug's quantity on hand. The sale is not applied, even partially.
	ErrInsufficientStock = errors.New("not enough stock")
)
