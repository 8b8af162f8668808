package pricing_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"expo-ticketing/internal/models"
	"expo-ticketing/internal/pricing"
)

func TestTicketTotal_Breakdown(t *testing.T) {
	breakdown, err := pricing.TicketTotal(500, 3)
	assert.NoError(t, err)
	assert.Equal(t, 1500.0, breakdown.Subtotal)
	assert.Equal(t, 30.0, breakdown.ConvenienceFee)
	assert.Equal(t, 5.0, breakdown.Tax)
	assert.Equal(t, 1535.0, breakdown.Total)
}

func TestTicketTotal_RoundsEachStage(t *testing.T) {
	// 499 * 2 = 998; 2% fee = 19.96 rounds to 20; 18% of 20 = 3.6 rounds to 4.
	breakdown, err := pricing.TicketTotal(499, 2)
	assert.NoError(t, err)
	assert.Equal(t, 998.0, breakdown.Subtotal)
	assert.Equal(t, 20.0, breakdown.ConvenienceFee)
	assert.Equal(t, 4.0, breakdown.Tax)
	assert.Equal(t, 1022.0, breakdown.Total)
}

func TestTicketTotal_QuantityBounds(t *testing.T) {
	for _, qty := range []int{0, -1, 11, 100} {
		_, err := pricing.TicketTotal(500, qty)
		var verr *models.ValidationError
		assert.Error(t, err, "quantity %d should be rejected", qty)
		assert.True(t, errors.As(err, &verr), "quantity %d should be a validation error", qty)
		assert.Equal(t, "quantity", verr.Field)
	}

	for _, qty := range []int{1, 10} {
		_, err := pricing.TicketTotal(500, qty)
		assert.NoError(t, err, "quantity %d should be accepted", qty)
	}
}

func TestTicketTotal_RejectsNonPositivePrice(t *testing.T) {
	_, err := pricing.TicketTotal(0, 2)
	var verr *models.ValidationError
	assert.True(t, errors.As(err, &verr))
	assert.Equal(t, "unitPrice", verr.Field)

	_, err = pricing.TicketTotal(-100, 2)
	assert.Error(t, err)
}

func TestStallTotal_WithAddons(t *testing.T) {
	// 15000 + 2500 + 8000 = 25500; 18% GST = 4590.
	breakdown, err := pricing.StallTotal(15000, []float64{2500, 8000})
	assert.NoError(t, err)
	assert.Equal(t, 25500.0, breakdown.Subtotal)
	assert.Equal(t, 4590.0, breakdown.Tax)
	assert.Equal(t, 30090.0, breakdown.Total)
}

func TestStallTotal_BaseOnly(t *testing.T) {
	breakdown, err := pricing.StallTotal(25000, nil)
	assert.NoError(t, err)
	assert.Equal(t, 25000.0, breakdown.Subtotal)
	assert.Equal(t, 4500.0, breakdown.Tax)
	assert.Equal(t, 29500.0, breakdown.Total)
}

func TestStallTotal_RejectsNonPositiveBase(t *testing.T) {
	_, err := pricing.StallTotal(0, []float64{2500})
	var verr *models.ValidationError
	assert.True(t, errors.As(err, &verr))
}
