package catalog

import (
	"context"
	"strings"

	contractx "github.com/natthawee/shopflow/agent/contract"
)

// FixtureSearcher serves a fixed product list, matching queries against name,
// category, and description. Used in tests and for offline development.
type FixtureSearcher struct {
	Catalog []contractx.Product
}

var _ contractx.Searcher = (*FixtureSearcher)(nil)

func (s *FixtureSearcher) Search(ctx context.Context, query string) (contractx.SearchPayload, error) {
	q := strings.ToLower(strings.TrimSpace(query))

	var payload contractx.SearchPayload
	for _, p := range s.Catalog {
		if strings.Contains(strings.ToLower(p.Name), q) ||
			strings.Contains(strings.ToLower(p.Category), q) ||
			strings.Contains(strings.ToLower(p.Description), q) {
			payload.Products = append(payload.Products, p)
		}
	}
	return payload, nil
}
