package llm

import (
	"errors"
	"io"
	"sort"
	"strings"

	"github.com/example/study-planner/internal/config"
)

// Registry maps provider names to clients. It is built once at startup and
// only read afterwards.
type Registry struct {
	clients map[string]Client
	names   []string
}

// NewRegistry registers every supported provider from cfg:
// - openai: OPENAI_API_KEY, OPENAI_MODEL, OPENAI_API_BASE
// - gemini: GEMINI_API_KEY (or GOOGLE_API_KEY), GEMINI_MODEL
// A provider without a key is still registered; its client reports AuthError.
func NewRegistry(cfg config.Config) *Registry {
	return NewRegistryWith(NewOpenAIClient(cfg.OpenAI), NewGeminiClient(cfg.Gemini))
}

// NewRegistryWith registers the given clients under their lower-cased names.
func NewRegistryWith(clients ...Client) *Registry {
	r := &Registry{clients: make(map[string]Client, len(clients))}
	for _, c := range clients {
		r.clients[strings.ToLower(c.Name())] = c
	}
	for name := range r.clients {
		r.names = append(r.names, name)
	}
	sort.Strings(r.names)
	return r
}

// Select returns the client registered under name (case-insensitive).
func (r *Registry) Select(name string) (Client, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if c, ok := r.clients[key]; ok {
		return c, nil
	}
	return nil, &UnknownProviderError{Name: name, Valid: r.Names()}
}

// Names returns the registered provider names, sorted.
func (r *Registry) Names() []string {
	out := make([]string, len(r.names))
	copy(out, r.names)
	return out
}

// Close releases SDK clients that hold connections.
func (r *Registry) Close() error {
	var errs []error
	for _, c := range r.clients {
		if closer, ok := c.(io.Closer); ok {
			errs = append(errs, closer.Close())
		}
	}
	return errors.Join(errs...)
}
