// internal/services/order_service_test.go
package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/barrelhouse/liquorstore-backend/internal/utils"
)

func TestComputeOrderTotal(t *testing.T) {
	items := []OrderItemRequest{
		{ProductID: uuid.New(), Price: 1000, Quantity: 2},
		{ProductID: uuid.New(), Price: 500, Quantity: 1},
	}
	assert.InDelta(t, 2500, ComputeOrderTotal(items), 0.001)
}

func TestComputeOrderTotalEmpty(t *testing.T) {
	assert.Zero(t, ComputeOrderTotal(nil))
}

func TestComputeOrderTotalFractionalPrices(t *testing.T) {
	items := []OrderItemRequest{
		{ProductID: uuid.New(), Price: 19.99, Quantity: 3},
		{ProductID: uuid.New(), Price: 7.50, Quantity: 2},
	}
	assert.InDelta(t, 74.97, ComputeOrderTotal(items), 0.001)
}

// The total check precedes any database access, so a nil-DB service
// exercises the rejection branch.
func TestCreateOrderRejectsMismatchedTotal(t *testing.T) {
	svc := NewOrderService(nil, nil)

	badTotal := 9999.0
	req := &CreateOrderRequest{
		Items: []OrderItemRequest{
			{ProductID: uuid.New(), Price: 1000, Quantity: 2},
			{ProductID: uuid.New(), Price: 500, Quantity: 1},
		},
		Total: &badTotal,
		ShippingAddress: ShippingAddressRequest{
			Name:       "Ada Lovelace",
			Address:    "12 Analytical Way",
			City:       "London",
			PostalCode: "EC1A",
			Country:    "UK",
		},
	}

	_, err := svc.CreateOrder(context.Background(), "user-1", req)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "order total mismatch")
}

func TestCreateOrderRequestValidation(t *testing.T) {
	valid := CreateOrderRequest{
		Items: []OrderItemRequest{
			{ProductID: uuid.New(), Price: 10, Quantity: 1},
		},
		ShippingAddress: ShippingAddressRequest{
			Name:       "Ada Lovelace",
			Address:    "12 Analytical Way",
			City:       "London",
			PostalCode: "EC1A",
			Country:    "UK",
		},
	}
	assert.NoError(t, utils.ValidateStruct(&valid))

	noItems := valid
	noItems.Items = nil
	assert.Error(t, utils.ValidateStruct(&noItems))

	zeroQuantity := valid
	zeroQuantity.Items = []OrderItemRequest{
		{ProductID: uuid.New(), Price: 10, Quantity: 0},
	}
	assert.Error(t, utils.ValidateStruct(&zeroQuantity))
}
