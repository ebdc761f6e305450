// Package lifecycle holds the order pipeline rules: which status changes are
// allowed and which stock change each one implies.
package lifecycle

import (
	"errors"
	"fmt"

	"musicshop/internal/model"
)

// Effect is the sign of the stock change caused by a status transition
type Effect int

const (
	// None leaves stock untouched
	None Effect = 0
	// Debit removes each item's quantity from stock
	Debit Effect = -1
	// Credit returns each item's quantity to stock
	Credit Effect = 1
)

func (e Effect) String() string {
	switch e {
	case Debit:
		return "debit"
	case Credit:
		return "credit"
	default:
		return "none"
	}
}

type transition struct {
	from, to model.OrderStatus
}

// stockEffects is the complete (from, to) table. Every pair of statuses is
// listed so the policy can be read and tested exhaustively.
var stockEffects = map[transition]Effect{
	{model.OrderStatusQuote, model.OrderStatusQuote}:     None,
	{model.OrderStatusQuote, model.OrderStatusPending}:   Debit,
	{model.OrderStatusQuote, model.OrderStatusReady}:     Debit,
	{model.OrderStatusQuote, model.OrderStatusCompleted}: Debit,
	{model.OrderStatusQuote, model.OrderStatusCancelled}: None, // nothing was ever deducted

	{model.OrderStatusPending, model.OrderStatusQuote}:     None,
	{model.OrderStatusPending, model.OrderStatusPending}:   None,
	{model.OrderStatusPending, model.OrderStatusReady}:     None,
	{model.OrderStatusPending, model.OrderStatusCompleted}: None,
	{model.OrderStatusPending, model.OrderStatusCancelled}: Credit,

	{model.OrderStatusReady, model.OrderStatusQuote}:     None,
	{model.OrderStatusReady, model.OrderStatusPending}:   None,
	{model.OrderStatusReady, model.OrderStatusReady}:     None,
	{model.OrderStatusReady, model.OrderStatusCompleted}: None,
	{model.OrderStatusReady, model.OrderStatusCancelled}: Credit,

	{model.OrderStatusCompleted, model.OrderStatusQuote}:     None,
	{model.OrderStatusCompleted, model.OrderStatusPending}:   None,
	{model.OrderStatusCompleted, model.OrderStatusReady}:     None,
	{model.OrderStatusCompleted, model.OrderStatusCompleted}: None,
	{model.OrderStatusCompleted, model.OrderStatusCancelled}: Credit,

	{model.OrderStatusCancelled, model.OrderStatusQuote}:     None,
	{model.OrderStatusCancelled, model.OrderStatusPending}:   None,
	{model.OrderStatusCancelled, model.OrderStatusReady}:     None,
	{model.OrderStatusCancelled, model.OrderStatusCompleted}: None,
	{model.OrderStatusCancelled, model.OrderStatusCancelled}: None,
}

// allowed is the pipeline graph. Orders only move forward, may be cancelled
// from any non-cancelled state, and never leave cancelled.
var allowed = map[transition]bool{
	{model.OrderStatusQuote, model.OrderStatusPending}:       true,
	{model.OrderStatusQuote, model.OrderStatusReady}:         true,
	{model.OrderStatusQuote, model.OrderStatusCompleted}:     true,
	{model.OrderStatusQuote, model.OrderStatusCancelled}:     true,
	{model.OrderStatusPending, model.OrderStatusReady}:       true,
	{model.OrderStatusPending, model.OrderStatusCompleted}:   true,
	{model.OrderStatusPending, model.OrderStatusCancelled}:   true,
	{model.OrderStatusReady, model.OrderStatusCompleted}:     true,
	{model.OrderStatusReady, model.OrderStatusCancelled}:     true,
	{model.OrderStatusCompleted, model.OrderStatusCancelled}: true,
}

// StockEffect returns the stock change implied by moving from one status to
// another. Unknown statuses yield None.
func StockEffect(from, to model.OrderStatus) Effect {
	return stockEffects[transition{from, to}]
}

// OnCreate returns the stock change applied when an order is first stored.
// Quotes reserve nothing; any other starting status commits stock immediately.
func OnCreate(status model.OrderStatus) Effect {
	if status == model.OrderStatusQuote {
		return None
	}
	return Debit
}

// CanTransition reports whether the pipeline allows from -> to
func CanTransition(from, to model.OrderStatus) bool {
	return allowed[transition{from, to}]
}

// IsTerminal reports whether no further transitions leave the status
func IsTerminal(s model.OrderStatus) bool {
	for _, to := range model.OrderStatuses {
		if CanTransition(s, to) {
			return false
		}
	}
	return true
}

// Next returns the one-step advance used by the pipeline action button
func Next(s model.OrderStatus) (model.OrderStatus, bool) {
	switch s {
	case model.OrderStatusQuote:
		return model.OrderStatusPending, true
	case model.OrderStatusPending:
		return model.OrderStatusReady, true
	case model.OrderStatusReady:
		return model.OrderStatusCompleted, true
	default:
		return s, false
	}
}

// Movements expands an effect into one stock change per item
func Movements(orderID string, items []model.OrderItem, effect Effect) []model.StockMovement {
	if effect == None {
		return nil
	}
	out := make([]model.StockMovement, 0, len(items))
	for _, item := range items {
		out = append(out, model.StockMovement{
			SKU:     item.SKU,
			OrderID: orderID,
			Delta:   int(effect) * item.Quantity,
		})
	}
	return out
}

// ErrInvalidTransition matches every TransitionError
var ErrInvalidTransition = errors.New("invalid status transition")

// TransitionError describes a rejected status change
type TransitionError struct {
	From, To model.OrderStatus
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("cannot move order from %s to %s", e.From, e.To)
}

func (e *TransitionError) Unwrap() error {
	return ErrInvalidTransition
}

// CheckTransition returns a TransitionError when from -> to is not allowed.
// Staying in the same status is always accepted.
func CheckTransition(from, to model.OrderStatus) error {
	if from == to || CanTransition(from, to) {
		return nil
	}
	return &TransitionError{From: from, To: to}
}
