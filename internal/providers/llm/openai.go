package llm

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/openai/openai-go/v2"
	"github.com/openai/openai-go/v2/option"
	"github.com/openai/openai-go/v2/shared"

	"github.com/example/study-planner/internal/config"
	"github.com/example/study-planner/internal/models"
)

// OpenAIClient calls Chat Completions through the official SDK. The SDK
// client is built on first use and reused for the life of the process.
type OpenAIClient struct {
	cfg config.ProviderConfig

	once   sync.Once
	client openai.Client
}

func NewOpenAIClient(cfg config.ProviderConfig) *OpenAIClient {
	return &OpenAIClient{cfg: cfg}
}

func (c *OpenAIClient) Name() string { return string(models.SourceOpenAI) }

func (c *OpenAIClient) Configured() bool { return strings.TrimSpace(c.cfg.APIKey) != "" }

func (c *OpenAIClient) GenerateStudyPlan(ctx context.Context, req models.PlanRequest) (map[string]any, error) {
	if !c.Configured() {
		return nil, &AuthError{Provider: c.Name()}
	}
	params := openai.ChatCompletionNewParams{
		Model: openai.ChatModel(c.cfg.Model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemPrompt),
			openai.UserMessage(buildUserPrompt(req)),
		},
		Temperature:         openai.Float(c.cfg.Temperature),
		MaxCompletionTokens: openai.Int(int64(c.cfg.MaxTokens)),
		// advisory only, the reply still goes through Normalize
		ResponseFormat: openai.ChatCompletionNewParamsResponseFormatUnion{
			OfJSONObject: &shared.ResponseFormatJSONObjectParam{},
		},
	}
	resp, err := c.sdk().Chat.Completions.New(ctx, params)
	if err != nil {
		return nil, &RequestError{Provider: c.Name(), Err: err}
	}
	if len(resp.Choices) == 0 {
		return nil, &RequestError{Provider: c.Name(), Err: errors.New("no choices")}
	}
	return decodeFor(c.Name(), resp.Choices[0].Message.Content)
}

func (c *OpenAIClient) sdk() *openai.Client {
	c.once.Do(func() {
		opts := []option.RequestOption{
			option.WithAPIKey(c.cfg.APIKey),
			// retry policy belongs to the caller
			option.WithMaxRetries(0),
		}
		if base := strings.TrimRight(c.cfg.BaseURL, "/"); base != "" {
			opts = append(opts, option.WithBaseURL(base+"/"))
		}
		c.client = openai.NewClient(opts...)
	})
	return &c.client
}
