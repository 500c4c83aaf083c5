package assistantnode

import (
	"context"
	"errors"
	"fmt"

	commandx "github.com/natthawee/shopflow/agent/command"
	contractx "github.com/natthawee/shopflow/agent/contract"
)

// CheckoutConfig carries the redirect URLs handed to the payment gateway.
type CheckoutConfig struct {
	SuccessURL string
	CancelURL  string
}

// ExecuteCommand runs the parsed action against the session. Every path
// produces a user-facing reply; only infrastructure failures (store, graph
// wiring) surface as errors.
func ExecuteCommand(
	ctx context.Context,
	in *GraphState,
	searcher contractx.Searcher,
	gateway contractx.PaymentGateway,
	checkout CheckoutConfig,
) (*GraphState, error) {
	if in == nil || in.Session == nil {
		return nil, fmt.Errorf("%w: graph session is nil", contractx.ErrValidation)
	}

	if in.CmdErr != nil {
		renderUsage(in)
		return in, nil
	}

	switch in.Cmd.Kind {
	case commandx.KindSearch:
		runSearch(ctx, in, searcher, in.Cmd.Query, false)
	case commandx.KindRefine:
		runSearch(ctx, in, searcher, in.Cmd.Query, true)
	case commandx.KindAdd:
		runAdd(in)
	case commandx.KindViewCart:
		in.Say(in.Session.Cart.Summary())
	case commandx.KindUpdate:
		runUpdate(in)
	case commandx.KindRemove:
		runRemove(in)
	case commandx.KindClearCart:
		in.Session.Cart.Clear()
		in.Say("Cart has been cleared.")
	case commandx.KindCheckout:
		runCheckout(ctx, in, gateway, checkout)
	default:
		return nil, fmt.Errorf("%w: unknown command kind=%d", contractx.ErrValidation, in.Cmd.Kind)
	}

	return in, nil
}

func renderUsage(in *GraphState) {
	switch {
	case in.Cmd.Kind == commandx.KindRefine:
		in.Say("Please specify what you want to search for after 'refine'.")
	case in.Cmd.Kind == commandx.KindAdd:
		in.Say("Please specify which product to add.")
		in.Say(renderAvailableProducts(in))
	case in.Cmd.Kind == commandx.KindRemove:
		in.Say("Please specify which product to remove.")
	case in.Cmd.Kind == commandx.KindUpdate && errors.Is(in.CmdErr, commandx.ErrInvalidQuantity):
		in.Say("Please provide a valid quantity number.")
	case in.Cmd.Kind == commandx.KindUpdate:
		in.Say("To update an item, type 'update <product name> <quantity>'.")
	default:
		in.Say("I'm sorry, I didn't understand that. Please try again.")
	}
}
