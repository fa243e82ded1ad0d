// Package statemachine defines the order fulfillment state machine. Statuses
// advance strictly forward, one step at a time; there are no terminal-state
// reopenings and no cancellation path.
package statemachine

import (
	"fmt"

	"sbfoods/internal/models"
)

// next maps each status to its single forward successor. Delivered is
// terminal and has no entry.
var next = map[string]string{
	models.StatusPending:   models.StatusConfirmed,
	models.StatusConfirmed: models.StatusPreparing,
	models.StatusPreparing: models.StatusReady,
	models.StatusReady:     models.StatusDelivered,
}

// IsStatus reports whether s is one of the five recognized statuses.
func IsStatus(s string) bool {
	if s == models.StatusDelivered {
		return true
	}
	_, ok := next[s]
	return ok
}

// CanTransition validates a status change request.
func CanTransition(from, to string) error {
	if !IsStatus(to) {
		return fmt.Errorf("unknown order status %q", to)
	}
	if next[from] != to {
		return fmt.Errorf("cannot move order from %q to %q; next status is %q", from, to, next[from])
	}
	return nil
}

// NextStatus returns the forward successor of from, or "" when from is
// terminal or unknown.
func NextStatus(from string) string {
	return next[from]
}
