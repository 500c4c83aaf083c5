package contract

import "context"

// Searcher is the catalog boundary: free-text query in, decoded payload out.
// Implementations may be backed by an LLM agent, a database, or a fixture.
type Searcher interface {
	Search(ctx context.Context, query string) (SearchPayload, error)
}

// Recommender is an optional extension of Searcher for catalogs that can
// suggest complementary products for a category. Callers fall back to
// Search when the searcher does not implement it.
type Recommender interface {
	Recommend(ctx context.Context, category string) (SearchPayload, error)
}

// PaymentGateway creates an external payment session for the cart and
// returns a redirect URL. A nil gateway means checkout stays in-memory.
type PaymentGateway interface {
	CreateSession(ctx context.Context, lines []CartLine, successURL, cancelURL string) (string, error)
}
