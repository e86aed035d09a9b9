package tool

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// ErrUnknownTool is returned for a tool kind that is not registered.
var ErrUnknownTool = errors.New("unknown tool")

// Factory constructs a fresh tool bound to ctx.
type Factory func(ctx Context) Tool

// Registry maps tool kinds to their constructors.
type Registry struct {
	factories map[Kind]Factory
	order     []Kind
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{factories: make(map[Kind]Factory)}
}

// DefaultRegistry returns a registry with the six built-in tools.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(Select, func(ctx Context) Tool { return NewSelectTool(ctx) })
	r.Register(NodeEdit, func(ctx Context) Tool { return NewNodeEditTool(ctx) })
	r.Register(Pen, func(ctx Context) Tool { return NewPenTool(ctx) })
	r.Register(Line, func(ctx Context) Tool { return NewLineTool(ctx) })
	r.Register(Curve, func(ctx Context) Tool { return NewCurveTool(ctx) })
	r.Register(Measure, func(ctx Context) Tool { return NewMeasureTool(ctx) })
	return r
}

// Register adds or replaces the constructor for k.
func (r *Registry) Register(k Kind, f Factory) {
	if _, ok := r.factories[k]; !ok {
		r.order = append(r.order, k)
	}
	r.factories[k] = f
}

// Kinds returns the registered kinds in registration order.
func (r *Registry) Kinds() []Kind {
	return slices.Clone(r.order)
}

// New constructs a tool of kind k.
func (r *Registry) New(k Kind, ctx Context) (Tool, error) {
	f, ok := r.factories[k]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownTool, k)
	}
	return f(ctx), nil
}

var builtin = []Kind{Select, NodeEdit, Pen, Line, Curve, Measure}

// ParseKind parses the name of a built-in tool.
func ParseKind(s string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(s)))
	if slices.Contains(builtin, k) {
		return k, nil
	}
	return "", fmt.Errorf("%w %q", ErrUnknownTool, s)
}

var shortcuts = map[Kind]string{
	Select:   "V",
	NodeEdit: "A",
	Pen:      "P",
	Line:     "L",
	Curve:    "C",
	Measure:  "M",
}

// Shortcut returns the keyboard shortcut of a built-in tool, or the empty
// string.
func Shortcut(k Kind) string {
	return shortcuts[k]
}

// KindForShortcut returns the tool whose shortcut is key, ignoring case.
func KindForShortcut(key string) (Kind, bool) {
	for k, s := range shortcuts {
		if strings.EqualFold(s, key) {
			return k, true
		}
	}
	return "", false
}
