package assistantnode

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	contractx "github.com/natthawee/shopflow/agent/contract"
)

// runCheckout produces the order confirmation. With a payment gateway the
// session moves to initiated and the reply carries the payment link; the
// cart stays put until payment would complete out of band. Without a
// gateway (or when it fails) checkout completes in-memory: status becomes
// completed and the cart is cleared.
func runCheckout(ctx context.Context, in *GraphState, gateway contractx.PaymentGateway, cfg CheckoutConfig) {
	if in.Session.Cart.IsEmpty() {
		in.Say("Your cart is empty.")
		return
	}

	in.Say(renderOrderSummary(in))

	if gateway != nil {
		url, err := gateway.CreateSession(ctx, in.Session.Cart.Lines, cfg.SuccessURL, cfg.CancelURL)
		if err == nil {
			in.Session.CheckoutStatus = contractx.CheckoutInitiated
			in.Say("Complete your payment here: " + url)
			return
		}
		log.Warn().Err(err).Msg("payment session creation failed, completing in-memory")
	}

	in.Session.CheckoutStatus = contractx.CheckoutCompleted
	in.Session.Cart.Clear()
	in.Say("Checkout completed successfully!")
}

func renderOrderSummary(in *GraphState) string {
	var b strings.Builder
	b.WriteString("🧾 Order Summary:\n")
	for _, line := range in.Session.Cart.Lines {
		fmt.Fprintf(&b, "- %s | Price: $%g | Quantity: %d | Subtotal: $%.2f\n",
			line.Product.Name, line.Product.Price, line.Quantity, line.LineTotal())
	}
	fmt.Fprintf(&b, "\n💰 Total: $%.2f", in.Session.Cart.Total())
	return b.String()
}
