package payment

import (
	"context"
	"fmt"
	"math"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
	"go.uber.org/zap"
)

// SettlementProcessor settles visit charges. The booking lifecycle computes
// amounts; capture mechanics live here.
type SettlementProcessor interface {
	// SettleVisit charges the full visit cost after completion.
	SettleVisit(ctx context.Context, bookingID string, amount float64) error
	// ChargeCancellationFee captures a late-cancellation fee.
	ChargeCancellationFee(ctx context.Context, bookingID string, amount float64) error
}

// StripeSettlementProcessor creates Stripe payment intents tagged with the
// booking they settle.
type StripeSettlementProcessor struct {
	Logger *zap.Logger
}

func NewStripeSettlementProcessor(logger *zap.Logger) *StripeSettlementProcessor {
	return &StripeSettlementProcessor{Logger: logger}
}

func (p *StripeSettlementProcessor) SettleVisit(ctx context.Context, bookingID string, amount float64) error {
	return p.createIntent(ctx, bookingID, amount, "visit_settlement")
}

func (p *StripeSettlementProcessor) ChargeCancellationFee(ctx context.Context, bookingID string, amount float64) error {
	return p.createIntent(ctx, bookingID, amount, "cancellation_fee")
}

func (p *StripeSettlementProcessor) createIntent(ctx context.Context, bookingID string, amount float64, kind string) error {
	if amount <= 0 {
		return fmt.Errorf("settlement: non-positive amount %.2f for booking %s", amount, bookingID)
	}

	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(int64(math.Round(amount * 100))),
		Currency: stripe.String(string(stripe.CurrencyUSD)),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	params.Context = ctx
	params.AddMetadata("booking_id", bookingID)
	params.AddMetadata("kind", kind)

	intent, err := paymentintent.New(params)
	if err != nil {
		return fmt.Errorf("settlement: failed to create payment intent for booking %s: %w", bookingID, err)
	}

	p.Logger.Info("payment intent created",
		zap.String("booking_id", bookingID),
		zap.String("kind", kind),
		zap.String("intent_id", intent.ID),
	)
	return nil
}
