package retropda

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrEmptyName     = errors.New("tool name is required")
	ErrNilFactory    = errors.New("tool factory is required")
	ErrDuplicateTool = errors.New("tool already registered")
	ErrUnknownTool   = errors.New("unknown tool")
)

// Registry is the ordered list of tools shown on the home grid. It is
// filled at startup and read-only afterwards.
type Registry struct {
	tools []ToolDescriptor
	index map[string]int
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{index: make(map[string]int)}
}

// Register appends a tool. Names must be non-empty and unique.
func (r *Registry) Register(d ToolDescriptor) error {
	name := strings.TrimSpace(d.Name)
	if name == "" {
		return ErrEmptyName
	}
	if d.Factory == nil {
		return fmt.Errorf("%s: %w", name, ErrNilFactory)
	}
	if _, exists := r.index[name]; exists {
		return fmt.Errorf("%s: %w", name, ErrDuplicateTool)
	}
	d.Name = name
	r.index[name] = len(r.tools)
	r.tools = append(r.tools, d)
	return nil
}

// RegisterAll registers each descriptor in order, stopping at the first error.
func (r *Registry) RegisterAll(ds ...ToolDescriptor) error {
	for _, d := range ds {
		if err := r.Register(d); err != nil {
			return err
		}
	}
	return nil
}

// Lookup finds a tool by name.
func (r *Registry) Lookup(name string) (ToolDescriptor, bool) {
	i, ok := r.index[name]
	if !ok {
		return ToolDescriptor{}, false
	}
	return r.tools[i], true
}

// Tools returns the registered tools in registration order.
func (r *Registry) Tools() []ToolDescriptor {
	out := make([]ToolDescriptor, len(r.tools))
	copy(out, r.tools)
	return out
}

// Names returns tool names in registration order.
func (r *Registry) Names() []string {
	names := make([]string, len(r.tools))
	for i, t := range r.tools {
		names[i] = t.Name
	}
	return names
}

// Len returns the number of registered tools.
func (r *Registry) Len() int {
	return len(r.tools)
}
