package assistantnode

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	contractx "github.com/natthawee/shopflow/agent/contract"
)

const nextStepsMenu = "What would you like to do next?\n" +
	"Type 'refine <query>' to refine your search,\n" +
	"or 'add <product name>' to add an item to your cart,\n" +
	"or 'view cart' to see your cart,\n" +
	"or 'checkout' to proceed to checkout."

// runSearch handles both a fresh query and a refine. The previous result set
// rolls into the session's previous results; any searcher failure is treated
// as an empty result set and never aborts the turn.
func runSearch(ctx context.Context, in *GraphState, searcher contractx.Searcher, query string, refined bool) {
	if refined {
		in.Say(fmt.Sprintf("Refining search for '%s'...", query))
	} else {
		in.Say(fmt.Sprintf("Searching for products matching '%s'...", query))
	}

	payload, err := searcher.Search(ctx, query)
	if err != nil {
		log.Warn().Err(err).Str("query", query).Msg("catalog search failed")
		payload = contractx.SearchPayload{}
	}

	recommended := payload.Recommended
	if len(recommended) == 0 {
		recommended = payload.Products
	}
	in.Session.ReplaceResults(query, payload.Products, recommended)

	if !in.Session.HasResults() {
		if refined {
			in.Say("No products match your refined query.")
		} else {
			in.Say("No products found. Please refine your search.")
		}
		return
	}

	mergeComplementary(ctx, in, searcher)

	heading := "Found products:"
	if refined {
		heading = "Refined product recommendations:"
	}
	in.Say(heading + "\n" + renderProductList(in.Session.Recommended))
	in.Say(nextStepsMenu)
}

// mergeComplementary issues one follow-up catalog call for the first
// product's category and merges the suggestions into the recommended set,
// deduplicated by name. Failures are ignored; the primary results stand on
// their own.
func mergeComplementary(ctx context.Context, in *GraphState, searcher contractx.Searcher) {
	if len(in.Session.SearchResults) == 0 {
		return
	}
	category := strings.TrimSpace(in.Session.SearchResults[0].Category)
	if category == "" {
		return
	}

	var (
		payload contractx.SearchPayload
		err     error
	)
	if rec, ok := searcher.(contractx.Recommender); ok {
		payload, err = rec.Recommend(ctx, category)
	} else {
		payload, err = searcher.Search(ctx, category)
	}
	if err != nil {
		log.Debug().Err(err).Str("category", category).Msg("complementary lookup failed")
		return
	}

	in.Session.MergeRecommended(payload.Recommended)
	in.Session.MergeRecommended(payload.Products)
}

func renderProductList(products []contractx.Product) string {
	var b strings.Builder
	for _, p := range products {
		fmt.Fprintf(&b, "- %s | Price: $%g\n", p.Name, p.Price)
		if p.Description != "" {
			fmt.Fprintf(&b, "  %s\n", p.Description)
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

func renderAvailableProducts(in *GraphState) string {
	known := in.Session.KnownProducts()
	if len(known) == 0 {
		return "No products are available yet. Try searching first."
	}
	return "Available products:\n" + renderProductList(known)
}
