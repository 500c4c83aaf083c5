package extract

import (
	"errors"
	"testing"

	contractx "github.com/natthawee/shopflow/agent/contract"
)

func TestPayloadFencedBlockWithLanguageTag(t *testing.T) {
	t.Parallel()

	raw := "Here is what I found:\n```json\n{\"products\":[{\"name\":\"Blue Sofa\",\"price\":300}]}\n```\nLet me know if you need more."
	payload, err := Payload(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(payload.Products) != 1 {
		t.Fatalf("expected 1 product, got %v", payload.Products)
	}
	if payload.Products[0].Name != "Blue Sofa" || payload.Products[0].Price != 300 {
		t.Fatalf("unexpected product: %+v", payload.Products[0])
	}
}

func TestPayloadBareJSONWithoutFence(t *testing.T) {
	t.Parallel()

	payload, err := Payload(`{"products":[{"name":"Table Lamp","price":"45.50"}],"message":"ok"}`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if payload.Products[0].Price != 45.5 {
		t.Fatalf("string price not coerced: %+v", payload.Products[0])
	}
	if payload.Message != "ok" {
		t.Fatalf("unexpected message: %q", payload.Message)
	}
}

func TestPayloadUnclosedFenceUsesTextBeforeIt(t *testing.T) {
	t.Parallel()

	raw := `{"products":[{"name":"Desk","price":120}]}` + "\n```json\n{\"broken\":"
	payload, err := Payload(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(payload.Products) != 1 || payload.Products[0].Name != "Desk" {
		t.Fatalf("unexpected products: %v", payload.Products)
	}
}

func TestPayloadFirstCompleteBlockWins(t *testing.T) {
	t.Parallel()

	raw := "```json\n{\"products\":[{\"name\":\"First\",\"price\":1}]}\n```\nand also\n```json\n{\"products\":[{\"name\":\"Second\",\"price\":2}]}\n```"
	payload, err := Payload(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(payload.Products) != 1 || payload.Products[0].Name != "First" {
		t.Fatalf("expected first block, got %v", payload.Products)
	}
}

func TestPayloadMissingProductsKey(t *testing.T) {
	t.Parallel()

	_, err := Payload(`{"items":[{"name":"x"}]}`)
	if !errors.Is(err, contractx.ErrNoStructuredResult) {
		t.Fatalf("expected ErrNoStructuredResult, got %v", err)
	}
}

func TestPayloadListInsteadOfObject(t *testing.T) {
	t.Parallel()

	_, err := Payload(`[{"name":"x","price":1}]`)
	if !errors.Is(err, contractx.ErrNoStructuredResult) {
		t.Fatalf("expected ErrNoStructuredResult, got %v", err)
	}
}

func TestPayloadUndecodableText(t *testing.T) {
	t.Parallel()

	_, err := Payload("Sorry, I could not find anything matching your query.")
	if !errors.Is(err, contractx.ErrNoStructuredResult) {
		t.Fatalf("expected ErrNoStructuredResult, got %v", err)
	}
}

func TestPayloadRecommendedShapes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		raw  string
	}{
		{
			name: "array",
			raw:  `{"products":[],"recommended_products":[{"name":"Rug","price":80}]}`,
		},
		{
			name: "json-encoded string",
			raw:  `{"products":[],"recommended_products":"[{\"name\":\"Rug\",\"price\":80}]"}`,
		},
		{
			name: "wrapped object",
			raw:  `{"products":[],"recommended_products":{"recommended_products":[{"name":"Rug","price":80}]}}`,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			payload, err := Payload(tt.raw)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(payload.Recommended) != 1 || payload.Recommended[0].Name != "Rug" {
				t.Fatalf("recommended not collapsed: %v", payload.Recommended)
			}
		})
	}
}
