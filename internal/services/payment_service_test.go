// internal/services/payment_service_test.go
package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAmountInCentsRounds(t *testing.T) {
	cases := []struct {
		total float64
		cents int64
	}{
		{total: 19.99, cents: 1999},
		{total: 54.99, cents: 5499},
		{total: 2500, cents: 250000},
		{total: 0.01, cents: 1},
		{total: 0, cents: 0},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.cents, amountInCents(tc.total), "total=%v", tc.total)
	}
}
