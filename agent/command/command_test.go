package command

import (
	"errors"
	"testing"
)

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		line string
		want Command
	}{
		{"refine", "refine red sofa", Command{Kind: KindRefine, Query: "red sofa"}},
		{"refine mixed case", "Refine Red Sofa", Command{Kind: KindRefine, Query: "Red Sofa"}},
		{"add", "add blue sofa", Command{Kind: KindAdd, Name: "blue sofa"}},
		{"view cart exact", "view cart", Command{Kind: KindViewCart}},
		{"view cart padded", "  View Cart  ", Command{Kind: KindViewCart}},
		{"checkout", "checkout", Command{Kind: KindCheckout}},
		{"update", "update table lamp 3", Command{Kind: KindUpdate, Name: "table lamp", Quantity: 3}},
		{"remove", "remove lamp", Command{Kind: KindRemove, Name: "lamp"}},
		{"clear cart", "clear cart", Command{Kind: KindClearCart}},
		{"free text is a search", "something comfy for reading", Command{Kind: KindSearch, Query: "something comfy for reading"}},
		{"checkout with trailing words is a search", "checkout now please", Command{Kind: KindSearch, Query: "checkout now please"}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := Parse(tt.line)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Fatalf("Parse(%q) = %+v, want %+v", tt.line, got, tt.want)
			}
		})
	}
}

func TestParseValidationErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		line     string
		wantKind Kind
		wantErr  error
	}{
		{"refine without query", "refine", KindRefine, ErrMissingQuery},
		{"add without name", "add", KindAdd, ErrMissingName},
		{"remove without name", "remove", KindRemove, ErrMissingName},
		{"update without quantity", "update lamp", KindUpdate, ErrMissingName},
		{"update non-integer quantity", "update lamp three", KindUpdate, ErrInvalidQuantity},
		{"update zero quantity", "update lamp 0", KindUpdate, ErrInvalidQuantity},
		{"update negative quantity", "update lamp -2", KindUpdate, ErrInvalidQuantity},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := Parse(tt.line)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Parse(%q) err = %v, want %v", tt.line, err, tt.wantErr)
			}
			if got.Kind != tt.wantKind {
				t.Fatalf("Parse(%q) kind = %v, want %v", tt.line, got.Kind, tt.wantKind)
			}
		})
	}
}
