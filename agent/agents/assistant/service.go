package assistant

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/cloudwego/eino/compose"

	contractx "github.com/natthawee/shopflow/agent/contract"
	nodex "github.com/natthawee/shopflow/agent/nodes/assistant"
	statex "github.com/natthawee/shopflow/agent/state"
)

var (
	ErrInvalidMessage = nodex.ErrInvalidMessage
	ErrInvalidSession = nodex.ErrInvalidSession
)

type Config struct {
	SuccessURL string
	CancelURL  string
}

// Assistant handles one chat message at a time per session: parse the
// command, mutate the session (cart, result set, checkout), and render the
// reply. The message pipeline is compiled once at construction.
type Assistant struct {
	store    statex.Store
	searcher contractx.Searcher
	gateway  contractx.PaymentGateway

	graphRunner compose.Runnable[nodex.GraphInput, nodex.GraphOutput]

	checkout nodex.CheckoutConfig

	now func() time.Time
}

func New(
	store statex.Store,
	searcher contractx.Searcher,
	gateway contractx.PaymentGateway,
	cfg Config,
) (*Assistant, error) {
	if store == nil {
		return nil, errors.New("state store is required")
	}
	if searcher == nil {
		return nil, errors.New("catalog searcher is required")
	}

	successURL := strings.TrimSpace(cfg.SuccessURL)
	if successURL == "" {
		successURL = "https://localhost/checkout/success"
	}
	cancelURL := strings.TrimSpace(cfg.CancelURL)
	if cancelURL == "" {
		cancelURL = "https://localhost/checkout/cancel"
	}

	a := &Assistant{
		store:    store,
		searcher: searcher,
		gateway:  gateway,
		checkout: nodex.CheckoutConfig{
			SuccessURL: successURL,
			CancelURL:  cancelURL,
		},
		now: time.Now,
	}

	graphRunner, err := a.compileHandleMessageGraph(context.Background())
	if err != nil {
		return nil, err
	}
	a.graphRunner = graphRunner

	return a, nil
}

func (a *Assistant) HandleMessage(ctx context.Context, sessionID string, text string) (string, error) {
	out, err := a.graphRunner.Invoke(ctx, nodex.GraphInput{
		SessionID: sessionID,
		Text:      text,
	})
	if err != nil {
		return "", err
	}
	return out.Reply, nil
}
