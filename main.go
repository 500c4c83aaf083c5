package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	assistantx "github.com/natthawee/shopflow/agent/agents/assistant"
	catalogx "github.com/natthawee/shopflow/agent/catalog"
	contractx "github.com/natthawee/shopflow/agent/contract"
	statex "github.com/natthawee/shopflow/agent/state"
	configx "github.com/natthawee/shopflow/pkg/config"
	_ "github.com/natthawee/shopflow/pkg/logger/autoload"
	paymentx "github.com/natthawee/shopflow/pkg/payment"
)

type AppConfig struct {
	CatalogBackend string        `envconfig:"CATALOG_BACKEND" split_words:"true" default:"llm"`
	TurnTimeout    time.Duration `envconfig:"TURN_TIMEOUT" split_words:"true" default:"60s"`
	SuccessURL     string        `envconfig:"CHECKOUT_SUCCESS_URL" split_words:"true"`
	CancelURL      string        `envconfig:"CHECKOUT_CANCEL_URL" split_words:"true"`
}

func main() {
	appCfg := configx.MustNew[AppConfig]("")

	ctx := context.Background()
	searcher := buildSearcher(ctx, appCfg.CatalogBackend)
	gateway := buildGateway()
	store := statex.NewMemoryStore()

	asst, err := assistantx.New(store, searcher, gateway, assistantx.Config{
		SuccessURL: appCfg.SuccessURL,
		CancelURL:  appCfg.CancelURL,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("build assistant")
	}

	runChat(ctx, asst, appCfg.TurnTimeout)
}

// runChat is the transport adapter: one line in, one reply out, one session
// per process run. Each turn gets its own timeout so a slow catalog call
// cannot hang the loop forever.
func runChat(ctx context.Context, asst *assistantx.Assistant, turnTimeout time.Duration) {
	sessionID := uuid.NewString()

	fmt.Println("Welcome to our furniture store! What are you looking for today?")
	fmt.Println("(type 'exit' to leave)")

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if strings.EqualFold(line, "exit") || strings.EqualFold(line, "quit") {
			fmt.Println("Goodbye!")
			return
		}

		turnCtx, cancel := context.WithTimeout(ctx, turnTimeout)
		reply, err := asst.HandleMessage(turnCtx, sessionID, line)
		cancel()
		if err != nil {
			log.Error().Err(err).Msg("handle message")
			fmt.Println("Something went wrong. Please try again.")
			continue
		}
		fmt.Println(reply)
	}

	if err := scanner.Err(); err != nil {
		log.Error().Err(err).Msg("read input")
	}
}

func buildSearcher(ctx context.Context, backend string) contractx.Searcher {
	switch strings.ToLower(strings.TrimSpace(backend)) {
	case "postgres":
		cfg := configx.MustNew[catalogx.DBConfig]("CATALOG_DB")
		searcher, err := catalogx.NewDBSearcher(*cfg)
		if err != nil {
			log.Fatal().Err(err).Msg("build database catalog")
		}
		log.Info().Msg("using postgres catalog backend")
		return searcher
	default:
		cfg := configx.MustNew[catalogx.LLMConfig]("OPENROUTER")
		searcher, err := catalogx.NewLLMSearcher(ctx, *cfg)
		if err != nil {
			log.Fatal().Err(err).Msg("build llm catalog")
		}
		log.Info().Str("model", cfg.Model).Msg("using llm catalog backend")
		return searcher
	}
}

// buildGateway returns nil when Stripe is not configured; checkout then
// completes in-memory.
func buildGateway() contractx.PaymentGateway {
	cfg, err := configx.New[paymentx.Config]("STRIPE")
	if err != nil {
		log.Info().Msg("stripe not configured, checkout runs in-memory")
		return nil
	}

	gateway, err := paymentx.NewStripeGateway(*cfg)
	if err != nil {
		log.Warn().Err(err).Msg("stripe gateway disabled")
		return nil
	}
	log.Info().Msg("stripe checkout enabled")
	return gateway
}
