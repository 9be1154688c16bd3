package reactions

import (
	"embed"
	"fmt"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed config/*.yaml
var configFiles embed.FS

// Kind describes one acceptable reaction kind.
type Kind struct {
	// Kind identifier (set during YAML unmarshaling)
	ID string `yaml:"-" json:"id"`

	DisplayName string `yaml:"display_name" json:"display_name"`
	Emoji       string `yaml:"emoji" json:"emoji"`
}

// kindsFile mirrors the embedded YAML layout.
type kindsFile struct {
	Kinds map[string]Kind `yaml:"kinds"`
}

// Registry holds the configured set of reaction kinds users may attach to
// posts.
type Registry struct {
	kinds map[string]Kind
	order []string // IDs in YAML order, for stable listings
	mu    sync.RWMutex
}

// NewRegistry creates a registry from the embedded kinds YAML.
func NewRegistry() (*Registry, error) {
	data, err := configFiles.ReadFile("config/kinds.yaml")
	if err != nil {
		return nil, fmt.Errorf("failed to read reaction kinds config: %w", err)
	}

	var file kindsFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to unmarshal reaction kinds config: %w", err)
	}
	if len(file.Kinds) == 0 {
		return nil, fmt.Errorf("reaction kinds config is empty")
	}

	order, err := kindOrder(data)
	if err != nil {
		return nil, err
	}

	r := &Registry{
		kinds: make(map[string]Kind, len(file.Kinds)),
		order: order,
	}
	for id, kind := range file.Kinds {
		kind.ID = id
		r.kinds[id] = kind
	}

	return r, nil
}

// kindOrder extracts kind IDs in YAML document order, which a plain map
// decode would lose.
func kindOrder(data []byte) ([]string, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse reaction kinds config: %w", err)
	}

	root := doc.Content[0]
	for i := 0; i < len(root.Content); i += 2 {
		if root.Content[i].Value != "kinds" {
			continue
		}
		kindsNode := root.Content[i+1]
		// Content alternates: key, value, key, value...
		order := make([]string, 0, len(kindsNode.Content)/2)
		for j := 0; j < len(kindsNode.Content); j += 2 {
			order = append(order, kindsNode.Content[j].Value)
		}
		return order, nil
	}
	return nil, fmt.Errorf("reaction kinds config missing 'kinds' section")
}

// Known reports whether the given reaction kind is configured.
func (r *Registry) Known(id string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.kinds[id]
	return ok
}

// List returns all configured kinds in YAML order.
func (r *Registry) List() []Kind {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Kind, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.kinds[id])
	}
	return out
}
