package payment

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
)

// ErrInvalidAmount is returned for a zero, negative or missing price before
// any call to the provider is made.
var ErrInvalidAmount = errors.New("invalid payment amount")

// Service wraps Stripe payment-intent creation.
type Service struct {
	create func(params *stripe.PaymentIntentParams) (*stripe.PaymentIntent, error)
}

// New configures the Stripe client with the account secret key.
func New(secretKey string) *Service {
	stripe.Key = secretKey
	return &Service{create: paymentintent.New}
}

// CreateIntent creates a card payment intent for the given price in USD and
// returns the client secret the caller completes the payment with. The price
// is converted to the provider's minor-unit representation (cents).
func (s *Service) CreateIntent(ctx context.Context, price float64) (string, error) {
	if price <= 0 {
		return "", ErrInvalidAmount
	}

	amount := int64(math.Round(price * 100))
	params := &stripe.PaymentIntentParams{
		Params:             stripe.Params{Context: ctx},
		Amount:             stripe.Int64(amount),
		Currency:           stripe.String(string(stripe.CurrencyUSD)),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
	}

	intent, err := s.create(params)
	if err != nil {
		return "", fmt.Errorf("payment provider: %w", err)
	}
	return intent.ClientSecret, nil
}
