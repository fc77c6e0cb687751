package llm

import (
	"fmt"
	"sort"
	"strings"

	"github.com/johnquangdev/meeting-analyzer/errors"
)

// Registry resolves a model selector to its provider adapter
type Registry struct {
	providers    map[string]Provider
	defaultModel string
}

// NewRegistry creates an empty registry with the given default selector
func NewRegistry(defaultModel string) *Registry {
	return &Registry{
		providers:    make(map[string]Provider),
		defaultModel: defaultModel,
	}
}

// Register adds a provider under its model selector
func (r *Registry) Register(p Provider) {
	r.providers[p.Model()] = p
}

// Resolve returns the provider for the given selector. An empty selector
// falls back to the registry default; an unknown selector fails with
// InvalidArgument before any network call is attempted.
func (r *Registry) Resolve(model string) (Provider, error) {
	if model == "" {
		model = r.defaultModel
	}
	p, ok := r.providers[model]
	if !ok {
		return nil, errors.ErrInvalidArgument(
			fmt.Sprintf("Invalid model %q. Choose from: %s", model, strings.Join(r.Models(), ", ")),
		)
	}
	return p, nil
}

// Models returns the registered model selectors in stable order
func (r *Registry) Models() []string {
	models := make([]string, 0, len(r.providers))
	for m := range r.providers {
		models = append(models, m)
	}
	sort.Strings(models)
	return models
}

// DefaultModel returns the selector used when a request omits one
func (r *Registry) DefaultModel() string {
	return r.defaultModel
}
