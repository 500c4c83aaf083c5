package catalog

import (
	"fmt"
	"strings"
	"time"

	contractx "github.com/natthawee/shopflow/agent/contract"
	openrouterx "github.com/natthawee/shopflow/pkg/openrouter"
)

// Task selects which prompt/model pairing the LLM searcher uses.
type Task string

const (
	TaskSearch    Task = "search"
	TaskRecommend Task = "recommend"
)

// LLMConfig configures the OpenRouter-backed catalog searcher. Per-task
// model/temperature overrides fall back to the defaults when unset.
type LLMConfig struct {
	BaseURL            string        `envconfig:"BASE_URL" split_words:"true" default:"https://openrouter.ai/api/v1"`
	APIKey             string        `envconfig:"API_KEY" split_words:"true" required:"true"`
	Model              string        `envconfig:"MODEL" split_words:"true" required:"true"`
	MaxCompletionToken int           `envconfig:"MAX_COMPLETION_TOKEN" split_words:"true" default:"2000"`
	Temperature        float32       `envconfig:"TEMPERATURE" split_words:"true" default:"0.2"`
	Timeout            time.Duration `envconfig:"TIMEOUT" split_words:"true" default:"30s"`
	SiteURL            string        `envconfig:"SITE_URL" split_words:"true"`
	SiteName           string        `envconfig:"SITE_NAME" split_words:"true"`

	SearchModel          string  `envconfig:"SEARCH_MODEL" split_words:"true"`
	RecommendModel       string  `envconfig:"RECOMMEND_MODEL" split_words:"true"`
	SearchTemperature    float32 `envconfig:"SEARCH_TEMPERATURE" split_words:"true" default:"-1"`
	RecommendTemperature float32 `envconfig:"RECOMMEND_TEMPERATURE" split_words:"true" default:"-1"`
}

func (c LLMConfig) Validate() error {
	if strings.TrimSpace(c.APIKey) == "" {
		return fmt.Errorf("%w: openrouter api key is required", contractx.ErrValidation)
	}
	if strings.TrimSpace(c.Model) == "" {
		return fmt.Errorf("%w: default model is required", contractx.ErrValidation)
	}
	return nil
}

func (c LLMConfig) OpenRouterFor(task Task) openrouterx.Config {
	modelName := strings.TrimSpace(c.Model)
	temp := c.Temperature

	switch task {
	case TaskSearch:
		if v := strings.TrimSpace(c.SearchModel); v != "" {
			modelName = v
		}
		if c.SearchTemperature >= 0 {
			temp = c.SearchTemperature
		}
	case TaskRecommend:
		if v := strings.TrimSpace(c.RecommendModel); v != "" {
			modelName = v
		}
		if c.RecommendTemperature >= 0 {
			temp = c.RecommendTemperature
		}
	}

	maxCompletionToken := c.MaxCompletionToken
	return openrouterx.Config{
		BaseURL:            strings.TrimSpace(c.BaseURL),
		APIKey:             strings.TrimSpace(c.APIKey),
		Model:              modelName,
		MaxCompletionToken: &maxCompletionToken,
		Temperature:        temp,
		Timeout:            c.Timeout,
		SiteURL:            strings.TrimSpace(c.SiteURL),
		SiteName:           strings.TrimSpace(c.SiteName),
	}
}
