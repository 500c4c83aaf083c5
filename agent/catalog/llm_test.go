package catalog

import (
	"context"
	"errors"
	"testing"

	einomodel "github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"

	contractx "github.com/natthawee/shopflow/agent/contract"
	promptx "github.com/natthawee/shopflow/agent/prompt"
)

type staticModel struct {
	content string
	err     error
}

func (m staticModel) Generate(ctx context.Context, input []*schema.Message, _ ...einomodel.Option) (*schema.Message, error) {
	if m.err != nil {
		return nil, m.err
	}
	return schema.AssistantMessage(m.content, nil), nil
}

func (m staticModel) Stream(ctx context.Context, input []*schema.Message, _ ...einomodel.Option) (*schema.StreamReader[*schema.Message], error) {
	return nil, errors.New("stream not supported")
}

func newTestSearcher(t *testing.T, search, recommend staticModel) *LLMSearcher {
	t.Helper()

	s, err := NewLLMSearcherWithModels(context.Background(), search, recommend, promptx.LoadPromptSet())
	if err != nil {
		t.Fatalf("build searcher: %v", err)
	}
	return s
}

func TestLLMSearcherSearchDecodesFencedPayload(t *testing.T) {
	t.Parallel()

	s := newTestSearcher(t,
		staticModel{content: "```json\n{\"products\":[{\"name\":\"Blue Sofa\",\"price\":300}]}\n```"},
		staticModel{content: `{"products":[]}`},
	)

	payload, err := s.Search(context.Background(), "sofa")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(payload.Products) != 1 || payload.Products[0].Name != "Blue Sofa" {
		t.Fatalf("unexpected payload: %+v", payload)
	}
}

func TestLLMSearcherMalformedResponse(t *testing.T) {
	t.Parallel()

	s := newTestSearcher(t,
		staticModel{content: "sorry, nothing matched"},
		staticModel{content: `{"products":[]}`},
	)

	_, err := s.Search(context.Background(), "sofa")
	if !errors.Is(err, contractx.ErrNoStructuredResult) {
		t.Fatalf("expected ErrNoStructuredResult, got %v", err)
	}
}

func TestLLMSearcherModelFailure(t *testing.T) {
	t.Parallel()

	s := newTestSearcher(t,
		staticModel{err: errors.New("upstream 500")},
		staticModel{content: `{"products":[]}`},
	)

	_, err := s.Search(context.Background(), "sofa")
	if !errors.Is(err, contractx.ErrCatalogUnavailable) {
		t.Fatalf("expected ErrCatalogUnavailable, got %v", err)
	}
}

func TestLLMSearcherRecommendUsesRecommendGraph(t *testing.T) {
	t.Parallel()

	s := newTestSearcher(t,
		staticModel{content: `{"products":[]}`},
		staticModel{content: `{"products":[],"recommended_products":[{"name":"Rug","price":80}]}`},
	)

	payload, err := s.Recommend(context.Background(), "sofa")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(payload.Recommended) != 1 || payload.Recommended[0].Name != "Rug" {
		t.Fatalf("unexpected payload: %+v", payload)
	}
}

func TestLLMSearcherEmptyQuery(t *testing.T) {
	t.Parallel()

	s := newTestSearcher(t,
		staticModel{content: `{"products":[]}`},
		staticModel{content: `{"products":[]}`},
	)

	if _, err := s.Search(context.Background(), "  "); !errors.Is(err, contractx.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}
