// Package payment creates Stripe checkout sessions for the shopping cart.
package payment

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"

	stripe "github.com/stripe/stripe-go/v82"
	stripeclient "github.com/stripe/stripe-go/v82/client"

	contractx "github.com/natthawee/shopflow/agent/contract"
)

type Config struct {
	APIKey string `envconfig:"API_KEY" split_words:"true" required:"true"`
}

// StripeGateway implements contract.PaymentGateway against the Stripe
// checkout-session API.
type StripeGateway struct {
	api *stripeclient.API
}

var _ contractx.PaymentGateway = (*StripeGateway)(nil)

func NewStripeGateway(cfg Config) (*StripeGateway, error) {
	key := strings.TrimSpace(cfg.APIKey)
	if key == "" {
		return nil, errors.New("stripe api key is required")
	}

	api := &stripeclient.API{}
	api.Init(key, nil)

	return &StripeGateway{api: api}, nil
}

func (g *StripeGateway) CreateSession(
	ctx context.Context,
	lines []contractx.CartLine,
	successURL string,
	cancelURL string,
) (string, error) {
	if len(lines) == 0 {
		return "", errors.New("cart is empty")
	}

	items := make([]*stripe.CheckoutSessionLineItemParams, 0, len(lines))
	for _, line := range lines {
		productData := &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
			Name: stripe.String(line.Product.Name),
		}
		if line.Product.Category != "" {
			productData.Description = stripe.String("Category: " + line.Product.Category)
		}

		items = append(items, &stripe.CheckoutSessionLineItemParams{
			PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
				Currency:    stripe.String(string(stripe.CurrencyUSD)),
				ProductData: productData,
				UnitAmount:  stripe.Int64(toCents(line.Product.Price)),
			},
			Quantity: stripe.Int64(int64(line.Quantity)),
		})
	}

	params := &stripe.CheckoutSessionParams{
		Params: stripe.Params{
			Context: ctx,
		},
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
		LineItems:          items,
		Mode:               stripe.String(string(stripe.CheckoutSessionModePayment)),
		SuccessURL:         stripe.String(successURL),
		CancelURL:          stripe.String(cancelURL),
	}

	sess, err := g.api.CheckoutSessions.New(params)
	if err != nil {
		return "", fmt.Errorf("create stripe checkout session: %w", err)
	}
	return sess.URL, nil
}

func toCents(price float64) int64 {
	return int64(math.Round(price * 100))
}
