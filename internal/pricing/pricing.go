// Package pricing computes booking totals. The business rules mirror the
// storefront exactly: a 2% convenience fee on ticket subtotals, and 18% GST
// charged on the convenience fee for tickets but on the full subtotal for
// stalls. GST on the fee rather than the ticket subtotal is unusual but
// matches production behavior; the per-stage rounding is part of the contract.
package pricing

import (
	"fmt"
	"math"

	"expo-ticketing/internal/models"
)

const (
	MinQuantity = 1
	MaxQuantity = 10

	convenienceFeeRate = 0.02
	gstRate            = 0.18
)

// TicketBreakdown is the visitor-flow price breakdown, rounded to whole
// currency units at each stage.
type TicketBreakdown struct {
	Subtotal       float64 `json:"subtotal"`
	ConvenienceFee float64 `json:"convenienceFee"`
	Tax            float64 `json:"tax"`
	Total          float64 `json:"total"`
}

// StallBreakdown is the exhibitor-flow price breakdown.
type StallBreakdown struct {
	Subtotal float64 `json:"subtotal"`
	Tax      float64 `json:"tax"`
	Total    float64 `json:"total"`
}

// TicketTotal computes the breakdown for quantity tickets at unitPrice.
// Quantity outside [1, 10] is rejected, never clamped.
func TicketTotal(unitPrice float64, quantity int) (TicketBreakdown, error) {
	if quantity < MinQuantity || quantity > MaxQuantity {
		return TicketBreakdown{}, models.NewValidationError("quantity",
			fmt.Sprintf("quantity must be between %d and %d", MinQuantity, MaxQuantity))
	}
	if unitPrice <= 0 {
		return TicketBreakdown{}, models.NewValidationError("unitPrice", "unit price must be positive")
	}

	subtotal := unitPrice * float64(quantity)
	fee := math.Round(subtotal * convenienceFeeRate)
	tax := math.Round(fee * gstRate)
	return TicketBreakdown{
		Subtotal:       subtotal,
		ConvenienceFee: fee,
		Tax:            tax,
		Total:          subtotal + fee + tax,
	}, nil
}

// StallTotal computes the breakdown for a stall plus selected add-ons.
func StallTotal(stallBasePrice float64, addonPrices []float64) (StallBreakdown, error) {
	if stallBasePrice <= 0 {
		return StallBreakdown{}, models.NewValidationError("stallType", "stall base price must be positive")
	}

	subtotal := stallBasePrice
	for _, p := range addonPrices {
		subtotal += p
	}
	tax := math.Round(subtotal * gstRate)
	return StallBreakdown{
		Subtotal: subtotal,
		Tax:      tax,
		Total:    subtotal + tax,
	}, nil
}
