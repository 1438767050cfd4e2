package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/example/study-planner/internal/config"
	"github.com/example/study-planner/internal/models"
)

// textGenerator is the slice of the Gemini SDK the client needs.
type textGenerator interface {
	GenerateText(ctx context.Context, system, prompt string) (string, error)
	Close() error
}

// GeminiClient calls Gemini through the generative-ai-go SDK. The SDK client
// is created on first use; a failed creation is retried on the next call.
type GeminiClient struct {
	cfg config.ProviderConfig

	mu  sync.Mutex
	gen textGenerator
}

func NewGeminiClient(cfg config.ProviderConfig) *GeminiClient {
	return &GeminiClient{cfg: cfg}
}

func (c *GeminiClient) Name() string { return string(models.SourceGemini) }

func (c *GeminiClient) Configured() bool { return strings.TrimSpace(c.cfg.APIKey) != "" }

func (c *GeminiClient) GenerateStudyPlan(ctx context.Context, req models.PlanRequest) (map[string]any, error) {
	if !c.Configured() {
		return nil, &AuthError{Provider: c.Name()}
	}
	gen, err := c.generator()
	if err != nil {
		return nil, &RequestError{Provider: c.Name(), Err: err}
	}
	txt, err := gen.GenerateText(ctx, systemPrompt, buildUserPrompt(req))
	if err != nil {
		return nil, &RequestError{Provider: c.Name(), Err: err}
	}
	return decodeFor(c.Name(), txt)
}

func (c *GeminiClient) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.gen == nil {
		return nil
	}
	err := c.gen.Close()
	c.gen = nil
	return err
}

func (c *GeminiClient) generator() (textGenerator, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.gen != nil {
		return c.gen, nil
	}
	gen, err := newGenaiGenerator(c.cfg)
	if err != nil {
		return nil, err
	}
	c.gen = gen
	return gen, nil
}

type genaiGenerator struct {
	client *genai.Client
	cfg    config.ProviderConfig
}

func newGenaiGenerator(cfg config.ProviderConfig) (*genaiGenerator, error) {
	opts := []option.ClientOption{option.WithAPIKey(cfg.APIKey)}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithEndpoint(cfg.BaseURL))
	}
	// The client outlives any single request.
	client, err := genai.NewClient(context.Background(), opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return &genaiGenerator{client: client, cfg: cfg}, nil
}

func (g *genaiGenerator) GenerateText(ctx context.Context, system, prompt string) (string, error) {
	model := g.client.GenerativeModel(g.cfg.Model)
	model.SetTemperature(float32(g.cfg.Temperature))
	model.SetMaxOutputTokens(int32(g.cfg.MaxTokens))
	model.ResponseMIMEType = "application/json"
	model.SystemInstruction = &genai.Content{Parts: []genai.Part{genai.Text(system)}}

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", err
	}
	return firstText(resp)
}

func (g *genaiGenerator) Close() error {
	return g.client.Close()
}

func firstText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 {
		return "", errors.New("no candidates")
	}
	candidate := resp.Candidates[0]
	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return "", errors.New("no content in response")
	}
	var parts []string
	for _, part := range candidate.Content.Parts {
		if t, ok := part.(genai.Text); ok {
			parts = append(parts, string(t))
		}
	}
	if len(parts) == 0 {
		return "", errors.New("no text parts in response")
	}
	return strings.Join(parts, ""), nil
}
