package lifecycle

import (
	"fmt"

	"musicshop/internal/model"
)

// Column is a lane of the orders board
type Column string

const (
	ColumnProspects  Column = "prospects"
	ColumnInProgress Column = "inProgress"
	ColumnCompleted  Column = "completed"
)

var columnStatuses = map[Column][]model.OrderStatus{
	ColumnProspects:  {model.OrderStatusQuote},
	ColumnInProgress: {model.OrderStatusPending, model.OrderStatusReady},
	ColumnCompleted:  {model.OrderStatusCompleted, model.OrderStatusCancelled},
}

// ParseColumn validates a board column name
func ParseColumn(raw string) (Column, error) {
	c := Column(raw)
	if _, ok := columnStatuses[c]; !ok {
		return "", fmt.Errorf("unknown board column %q", raw)
	}
	return c, nil
}

// Statuses returns the statuses shown in the column
func (c Column) Statuses() []model.OrderStatus {
	return columnStatuses[c]
}

// ColumnOf returns the column an order with the given status is shown in
func ColumnOf(s model.OrderStatus) Column {
	for c, statuses := range columnStatuses {
		for _, st := range statuses {
			if st == s {
				return c
			}
		}
	}
	return ""
}

// TargetForColumn maps a drop onto a column to the status the order should
// take. Dropping into the in-progress lane confirms a quote and leaves any
// other order where it is.
func TargetForColumn(current model.OrderStatus, c Column) model.OrderStatus {
	switch c {
	case ColumnProspects:
		return model.OrderStatusQuote
	case ColumnInProgress:
		if current == model.OrderStatusQuote {
			return model.OrderStatusPending
		}
		return current
	case ColumnCompleted:
		return model.OrderStatusCompleted
	default:
		return current
	}
}
