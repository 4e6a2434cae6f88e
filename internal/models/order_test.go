// internal/models/order_test.go
package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrderStatusForwardPath(t *testing.T) {
	assert.True(t, OrderStatusPending.CanTransition(OrderStatusProcessing))
	assert.True(t, OrderStatusProcessing.CanTransition(OrderStatusShipped))
	assert.True(t, OrderStatusShipped.CanTransition(OrderStatusDelivered))
}

func TestOrderStatusNoBackwardTransitions(t *testing.T) {
	assert.False(t, OrderStatusProcessing.CanTransition(OrderStatusPending))
	assert.False(t, OrderStatusShipped.CanTransition(OrderStatusProcessing))
	assert.False(t, OrderStatusDelivered.CanTransition(OrderStatusPending))
	assert.False(t, OrderStatusDelivered.CanTransition(OrderStatusShipped))
}

func TestOrderStatusNoSkippingAhead(t *testing.T) {
	assert.False(t, OrderStatusPending.CanTransition(OrderStatusShipped))
	assert.False(t, OrderStatusPending.CanTransition(OrderStatusDelivered))
	assert.False(t, OrderStatusProcessing.CanTransition(OrderStatusDelivered))
}

func TestCancellableFromAnyNonTerminalState(t *testing.T) {
	assert.True(t, OrderStatusPending.CanTransition(OrderStatusCancelled))
	assert.True(t, OrderStatusProcessing.CanTransition(OrderStatusCancelled))
	assert.True(t, OrderStatusShipped.CanTransition(OrderStatusCancelled))
}

func TestTerminalStatesAreFinal(t *testing.T) {
	for _, terminal := range []OrderStatus{OrderStatusDelivered, OrderStatusCancelled} {
		assert.True(t, terminal.Terminal())
		for _, next := range []OrderStatus{
			OrderStatusPending, OrderStatusProcessing, OrderStatusShipped,
			OrderStatusDelivered, OrderStatusCancelled,
		} {
			assert.False(t, terminal.CanTransition(next), "%s -> %s should be rejected", terminal, next)
		}
	}
}

func TestOrderStatusValid(t *testing.T) {
	assert.True(t, OrderStatusPending.Valid())
	assert.True(t, OrderStatusCancelled.Valid())
	assert.False(t, OrderStatus("paid").Valid())
	assert.False(t, OrderStatus("").Valid())
	assert.False(t, OrderStatus("").Terminal())
}

func TestOrderItemLineTotal(t *testing.T) {
	item := OrderItem{Price: 12.50, Quantity: 3}
	assert.InDelta(t, 37.50, item.LineTotal(), 0.001)
}
