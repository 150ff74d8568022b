package payment

import (
	stripe "github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"
)

// Intent is the gateway-side view of a payment intent.
type Intent struct {
	ID           string
	ClientSecret string
	Status       string
}

// PaymentGateway abstracts the card processor so services and tests do not
// talk to Stripe directly.
type PaymentGateway interface {
	CreateIntent(amount int64, metadata map[string]string) (*Intent, error)
	RetrieveIntent(intentID string) (*Intent, error)
}

type stripeGateway struct {
	api      *client.API
	currency string
}

// NewStripeGateway builds a PaymentGateway backed by the Stripe API.
func NewStripeGateway(secretKey, currency string) PaymentGateway {
	api := &client.API{}
	api.Init(secretKey, nil)
	return &stripeGateway{api: api, currency: currency}
}

func (g *stripeGateway) CreateIntent(amount int64, metadata map[string]string) (*Intent, error) {
	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(amount),
		Currency: stripe.String(g.currency),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	for k, v := range metadata {
		params.AddMetadata(k, v)
	}

	pi, err := g.api.PaymentIntents.New(params)
	if err != nil {
		return nil, err
	}
	return &Intent{ID: pi.ID, ClientSecret: pi.ClientSecret, Status: string(pi.Status)}, nil
}

func (g *stripeGateway) RetrieveIntent(intentID string) (*Intent, error) {
	pi, err := g.api.PaymentIntents.Get(intentID, nil)
	if err != nil {
		return nil, err
	}
	return &Intent{ID: pi.ID, ClientSecret: pi.ClientSecret, Status: string(pi.Status)}, nil
}
