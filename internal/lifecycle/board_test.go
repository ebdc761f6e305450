package lifecycle

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"musicshop/internal/model"
)

func TestTargetForColumn(t *testing.T) {
	tests := []struct {
		current model.OrderStatus
		column  Column
		want    model.OrderStatus
	}{
		{model.OrderStatusQuote, ColumnInProgress, model.OrderStatusPending},
		{model.OrderStatusReady, ColumnInProgress, model.OrderStatusReady},
		{model.OrderStatusCompleted, ColumnInProgress, model.OrderStatusCompleted},
		{model.OrderStatusPending, ColumnCompleted, model.OrderStatusCompleted},
		{model.OrderStatusPending, ColumnProspects, model.OrderStatusQuote},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, TargetForColumn(tt.current, tt.column), "%s into %s", tt.current, tt.column)
	}
}

func TestParseColumn(t *testing.T) {
	c, err := ParseColumn("inProgress")
	assert.NoError(t, err)
	assert.Equal(t, ColumnInProgress, c)

	_, err = ParseColumn("archive")
	assert.Error(t, err)
}

func TestColumnOf(t *testing.T) {
	assert.Equal(t, ColumnProspects, ColumnOf(model.OrderStatusQuote))
	assert.Equal(t, ColumnInProgress, ColumnOf(model.OrderStatusReady))
	assert.Equal(t, ColumnCompleted, ColumnOf(model.OrderStatusCancelled))
	assert.Equal(t, []model.OrderStatus{model.OrderStatusPending, model.OrderStatusReady}, ColumnInProgress.Statuses())
}
