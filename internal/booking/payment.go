package booking

import (
	"math"
	"time"

	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/paymentintent"

	"expo-ticketing/internal/models"
	"expo-ticketing/internal/utils"
)

// Receipt is what a processor returns for a successful authorization.
type Receipt struct {
	TransactionID string    `json:"transactionId"`
	Method        string    `json:"method"`
	Amount        float64   `json:"amount"`
	AuthorizedAt  time.Time `json:"authorizedAt"`
}

// PaymentProcessor is the seam between the wizard and whatever moves the
// money. The state machine only ever sees Authorize succeed or fail, so a
// real gateway can replace the stub without touching the wizard.
type PaymentProcessor interface {
	Authorize(amount float64, method string) (*Receipt, error)
}

// StubProcessor authorizes everything. It is the default: this storefront
// simulates payment success.
type StubProcessor struct{}

func (StubProcessor) Authorize(amount float64, method string) (*Receipt, error) {
	return &Receipt{
		TransactionID: utils.GenerateTransactionID(),
		Method:        method,
		Amount:        amount,
		AuthorizedAt:  time.Now(),
	}, nil
}

// StripeProcessor authorizes through a Stripe payment intent.
type StripeProcessor struct{}

func NewStripeProcessor(secretKey string) *StripeProcessor {
	stripe.Key = secretKey
	return &StripeProcessor{}
}

func (p *StripeProcessor) Authorize(amount float64, method string) (*Receipt, error) {
	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(int64(math.Round(amount * 100))), // paise
		Currency: stripe.String(string(stripe.CurrencyINR)),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	params.AddMetadata("payment_method_label", method)

	intent, err := paymentintent.New(params)
	if err != nil {
		return nil, models.NewPaymentError(method, err.Error())
	}

	return &Receipt{
		TransactionID: intent.ID,
		Method:        method,
		Amount:        amount,
		AuthorizedAt:  time.Now(),
	}, nil
}
