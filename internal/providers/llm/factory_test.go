package llm

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/study-planner/internal/config"
	"github.com/example/study-planner/internal/models"
)

type stubClient struct {
	name     string
	closeErr error
	closed   bool
}

func (s *stubClient) Name() string     { return s.name }
func (s *stubClient) Configured() bool { return true }
func (s *stubClient) GenerateStudyPlan(context.Context, models.PlanRequest) (map[string]any, error) {
	return map[string]any{}, nil
}
func (s *stubClient) Close() error {
	s.closed = true
	return s.closeErr
}

func TestNewRegistry_RegistersBothVendors(t *testing.T) {
	r := NewRegistry(config.Default())
	assert.Equal(t, []string{"gemini", "openai"}, r.Names())

	c, err := r.Select("openai")
	require.NoError(t, err)
	assert.IsType(t, &OpenAIClient{}, c)

	c, err = r.Select("gemini")
	require.NoError(t, err)
	assert.IsType(t, &GeminiClient{}, c)
}

func TestRegistry_SelectIsCaseInsensitive(t *testing.T) {
	r := NewRegistryWith(&stubClient{name: "openai"}, &stubClient{name: "gemini"})

	for _, name := range []string{"OpenAI", " openai ", "OPENAI"} {
		c, err := r.Select(name)
		require.NoError(t, err, name)
		assert.Equal(t, "openai", c.Name())
	}
}

func TestRegistry_SelectUnknown(t *testing.T) {
	r := NewRegistryWith(&stubClient{name: "openai"}, &stubClient{name: "gemini"})

	c, err := r.Select("claude")
	assert.Nil(t, c)

	var unknown *UnknownProviderError
	require.True(t, errors.As(err, &unknown))
	assert.Equal(t, "claude", unknown.Name)
	assert.Equal(t, []string{"gemini", "openai"}, unknown.Valid)
	assert.Equal(t, `unknown provider "claude" (valid: gemini, openai)`, err.Error())
}

func TestRegistry_NamesReturnsCopy(t *testing.T) {
	r := NewRegistryWith(&stubClient{name: "openai"})
	names := r.Names()
	names[0] = "mutated"
	assert.Equal(t, []string{"openai"}, r.Names())
}

func TestRegistry_CloseJoinsErrors(t *testing.T) {
	a := &stubClient{name: "a"}
	b := &stubClient{name: "b", closeErr: errors.New("close failed")}
	r := NewRegistryWith(a, b)

	err := r.Close()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "close failed")
	assert.True(t, a.closed)
	assert.True(t, b.closed)
}
