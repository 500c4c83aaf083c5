// Package extract pulls a structured product payload out of raw catalog
// text. LLM-backed catalogs return prose that usually, but not always,
// carries a fenced JSON block.
package extract

import (
	"encoding/json"
	"fmt"
	"strings"

	contractx "github.com/natthawee/shopflow/agent/contract"
)

const fence = "```"

// Payload decodes raw catalog text into a SearchPayload. The candidate JSON
// is the first complete fenced block if one exists, the text before the
// first fence if the block never closes, or the whole text when there is no
// fence at all. The payload is accepted only when it decodes to an object
// containing a "products" key; anything else returns
// contract.ErrNoStructuredResult, which callers treat as an empty result
// set, never as fatal.
func Payload(raw string) (contractx.SearchPayload, error) {
	candidate := candidateJSON(raw)

	var keys map[string]json.RawMessage
	if err := json.Unmarshal([]byte(candidate), &keys); err != nil {
		return contractx.SearchPayload{}, fmt.Errorf("%w: %v", contractx.ErrNoStructuredResult, err)
	}

	rawProducts, ok := keys["products"]
	if !ok {
		return contractx.SearchPayload{}, fmt.Errorf("%w: missing products key", contractx.ErrNoStructuredResult)
	}

	var payload contractx.SearchPayload
	if err := json.Unmarshal(rawProducts, &payload.Products); err != nil {
		return contractx.SearchPayload{}, fmt.Errorf("%w: decode products: %v", contractx.ErrNoStructuredResult, err)
	}

	if rawRec, ok := keys["recommended_products"]; ok {
		payload.Recommended = decodeProductList(rawRec)
	}
	if rawMsg, ok := keys["message"]; ok {
		_ = json.Unmarshal(rawMsg, &payload.Message)
	}

	return payload, nil
}

func candidateJSON(raw string) string {
	if !strings.Contains(raw, fence) {
		return strings.TrimSpace(raw)
	}

	parts := strings.Split(raw, fence)
	if len(parts) >= 3 {
		// First complete block; strip a leading language tag.
		candidate := parts[1]
		candidate = strings.TrimPrefix(candidate, "json\r\n")
		candidate = strings.TrimPrefix(candidate, "json\n")
		candidate = strings.TrimPrefix(candidate, "json ")
		return strings.TrimSpace(candidate)
	}
	// Opening fence without a closing one: take the text before it.
	return strings.TrimSpace(parts[0])
}

// decodeProductList tolerates the three shapes recommended_products has
// arrived in across model revisions: a plain array, a JSON-encoded string
// holding an array, or an object wrapping the array. Everything collapses
// to []Product here so downstream code never re-interprets it.
func decodeProductList(raw json.RawMessage) []contractx.Product {
	var products []contractx.Product
	if err := json.Unmarshal(raw, &products); err == nil {
		return products
	}

	var encoded string
	if err := json.Unmarshal(raw, &encoded); err == nil {
		if err := json.Unmarshal([]byte(encoded), &products); err == nil {
			return products
		}
		return nil
	}

	var wrapped struct {
		Products []contractx.Product `json:"recommended_products"`
	}
	if err := json.Unmarshal(raw, &wrapped); err == nil {
		return wrapped.Products
	}
	return nil
}
