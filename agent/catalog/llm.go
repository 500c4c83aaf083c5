package catalog

import (
	"context"
	"fmt"
	"strings"

	einomodel "github.com/cloudwego/eino/components/model"
	einoprompt "github.com/cloudwego/eino/components/prompt"
	"github.com/cloudwego/eino/compose"
	"github.com/cloudwego/eino/schema"

	contractx "github.com/natthawee/shopflow/agent/contract"
	extractx "github.com/natthawee/shopflow/agent/extract"
	promptx "github.com/natthawee/shopflow/agent/prompt"
)

// LLMSearcher is the LLM-backed catalog client. One compiled graph per task:
// the search graph answers free-text product queries, the recommend graph
// suggests complementary products for a category. Both return raw text that
// the extractor decodes at this boundary.
type LLMSearcher struct {
	searchRunner    compose.Runnable[map[string]any, *schema.Message]
	recommendRunner compose.Runnable[map[string]any, *schema.Message]
}

var (
	_ contractx.Searcher    = (*LLMSearcher)(nil)
	_ contractx.Recommender = (*LLMSearcher)(nil)
)

// NewLLMSearcher builds the search and recommend chat models from cfg and
// compiles their graphs once.
func NewLLMSearcher(ctx context.Context, cfg LLMConfig) (*LLMSearcher, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	prompts := promptx.LoadPromptSet()

	searchModelCfg := cfg.OpenRouterFor(TaskSearch)
	searchModel, err := searchModelCfg.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: create search model: %v", contractx.ErrCatalogUnavailable, err)
	}
	recommendModelCfg := cfg.OpenRouterFor(TaskRecommend)
	recommendModel, err := recommendModelCfg.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: create recommend model: %v", contractx.ErrCatalogUnavailable, err)
	}

	return NewLLMSearcherWithModels(ctx, searchModel, recommendModel, prompts)
}

// NewLLMSearcherWithModels wires pre-built chat models. Split out so tests
// can inject fakes without an OpenRouter key.
func NewLLMSearcherWithModels(
	ctx context.Context,
	searchModel einomodel.BaseChatModel,
	recommendModel einomodel.BaseChatModel,
	prompts promptx.PromptSet,
) (*LLMSearcher, error) {
	searchRunner, err := compileCatalogGraph(ctx, searchModel, prompts.Search, "catalog.search_graph")
	if err != nil {
		return nil, err
	}
	recommendRunner, err := compileCatalogGraph(ctx, recommendModel, prompts.Recommend, "catalog.recommend_graph")
	if err != nil {
		return nil, err
	}

	return &LLMSearcher{
		searchRunner:    searchRunner,
		recommendRunner: recommendRunner,
	}, nil
}

func (s *LLMSearcher) Search(ctx context.Context, query string) (contractx.SearchPayload, error) {
	return s.invoke(ctx, s.searchRunner, query)
}

func (s *LLMSearcher) Recommend(ctx context.Context, category string) (contractx.SearchPayload, error) {
	return s.invoke(ctx, s.recommendRunner, category)
}

func (s *LLMSearcher) invoke(
	ctx context.Context,
	runner compose.Runnable[map[string]any, *schema.Message],
	input string,
) (contractx.SearchPayload, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return contractx.SearchPayload{}, fmt.Errorf("%w: query is empty", contractx.ErrValidation)
	}

	msg, err := runner.Invoke(ctx, map[string]any{
		"input": input,
	})
	if err != nil {
		return contractx.SearchPayload{}, fmt.Errorf("%w: %v", contractx.ErrCatalogUnavailable, err)
	}
	if msg == nil {
		return contractx.SearchPayload{}, fmt.Errorf("%w: empty model response", contractx.ErrCatalogUnavailable)
	}

	return extractx.Payload(msg.Content)
}

func compileCatalogGraph(
	ctx context.Context,
	chatModel einomodel.BaseChatModel,
	systemPrompt string,
	graphName string,
) (compose.Runnable[map[string]any, *schema.Message], error) {
	template := einoprompt.FromMessages(
		schema.FString,
		schema.SystemMessage(systemPrompt),
		schema.UserMessage("{input}"),
	)

	graph := compose.NewGraph[map[string]any, *schema.Message]()
	if err := graph.AddChatTemplateNode("prompt", template); err != nil {
		return nil, fmt.Errorf("add catalog prompt node: %w", err)
	}
	if err := graph.AddChatModelNode("model", chatModel); err != nil {
		return nil, fmt.Errorf("add catalog model node: %w", err)
	}
	if err := graph.AddEdge(compose.START, "prompt"); err != nil {
		return nil, fmt.Errorf("add catalog edge start->prompt: %w", err)
	}
	if err := graph.AddEdge("prompt", "model"); err != nil {
		return nil, fmt.Errorf("add catalog edge prompt->model: %w", err)
	}
	if err := graph.AddEdge("model", compose.END); err != nil {
		return nil, fmt.Errorf("add catalog edge model->end: %w", err)
	}

	runner, err := graph.Compile(ctx, compose.WithGraphName(graphName))
	if err != nil {
		return nil, fmt.Errorf("compile catalog graph %s: %w", graphName, err)
	}
	return runner, nil
}
