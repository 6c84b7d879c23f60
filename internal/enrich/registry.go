package enrich

import (
	"fmt"
	"slices"

	"topic-indexer/internal/diagnostic"
	"topic-indexer/internal/marc"
	"topic-indexer/internal/match"
)

// ErrUnknownFunc is returned for outputs naming an unregistered function.
var ErrUnknownFunc = fmt.Errorf("%w: unknown output function", diagnostic.ErrConfiguration)

// Built-in function names.
const (
	FuncTopics     = "topics"
	FuncTopicFacet = "topic_facet"
	FuncGenres     = "genres"
	FuncRegions    = "regions"
	FuncTimes      = "times"
	FuncHonourees  = "honourees"
)

// ExtractorFunc computes the values of one output field.
type ExtractorFunc func(e *Engine, rec *marc.Record, fieldSpec, sepSpec, lang string) ([]string, error)

// Registry maps function names to extractor functions.
type Registry struct {
	funcs map[string]ExtractorFunc
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{funcs: make(map[string]ExtractorFunc)}
}

// DefaultRegistry returns a registry holding the built-in functions.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(FuncTopics, (*Engine).Topics)
	r.Register(FuncTopicFacet, (*Engine).TopicFacet)
	r.Register(FuncGenres, (*Engine).Genres)
	r.Register(FuncRegions, (*Engine).Regions)
	r.Register(FuncTimes, (*Engine).Times)
	r.Register(FuncHonourees, func(e *Engine, rec *marc.Record, _, _, lang string) ([]string, error) {
		return e.Honourees(rec, lang)
	})

	return r
}

// Register adds or replaces fn under name.
func (r *Registry) Register(name string, fn ExtractorFunc) {
	r.funcs[name] = fn
}

// Get returns the function registered under name.
func (r *Registry) Get(name string) (ExtractorFunc, bool) {
	fn, ok := r.funcs[name]
	return fn, ok
}

// Has reports whether name is registered.
func (r *Registry) Has(name string) bool {
	_, ok := r.funcs[name]
	return ok
}

// Names returns the registered names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.funcs))
	for name := range r.funcs {
		names = append(names, name)
	}

	slices.Sort(names)

	return names
}

// Suggest returns registered names close to an unknown name.
func (r *Registry) Suggest(name string) []string {
	return match.Suggest(name, r.Names(), match.DefaultMaxDistance)
}

// Output describes one output field.
type Output struct {
	Name       string `yaml:"name"`
	Func       string `yaml:"func"`
	Fields     string `yaml:"fields"`
	Separators string `yaml:"separators"`
	Lang       string `yaml:"lang"`
}

// Validate checks that out can be evaluated. All problems are reported in
// diags; the returned error is the first one.
func (e *Engine) Validate(out Output, diags *diagnostic.Diagnostics) error {
	var first error

	fail := func(code, spec string, err error, suggestions ...string) {
		diags.AddError(code, err.Error(), out.Name, spec, suggestions...)

		if first == nil {
			first = fmt.Errorf("output %q: %w", out.Name, err)
		}
	}

	if !e.registry.Has(out.Func) {
		fail(diagnostic.CodeUnknownFunc, out.Func,
			fmt.Errorf("%w %q", ErrUnknownFunc, out.Func), e.registry.Suggest(out.Func)...)
	}

	if err := e.CheckLanguage(out.Lang); err != nil {
		fail(diagnostic.CodeUnknownLang, out.Lang, err, match.Suggest(out.Lang, e.languages(), 1)...)
	}

	if out.Func != FuncHonourees {
		if _, err := e.FieldSpec(out.Fields); err != nil {
			fail(diagnostic.CodeFieldSpec, out.Fields, err)
		}

		if _, err := e.Separators(out.Separators); err != nil {
			fail(diagnostic.CodeSeparatorSpec, out.Separators, err)
		}
	}

	return first
}

// Evaluate computes the values of out for rec.
func (e *Engine) Evaluate(rec *marc.Record, out Output) ([]string, error) {
	fn, ok := e.registry.Get(out.Func)
	if !ok {
		return nil, fmt.Errorf("output %q: %w %q", out.Name, ErrUnknownFunc, out.Func)
	}

	values, err := fn(e, rec, out.Fields, out.Separators, out.Lang)
	if err != nil {
		return nil, fmt.Errorf("output %q: %w", out.Name, err)
	}

	return values, nil
}

func (e *Engine) languages() []string {
	return append([]string{e.tr.Source()}, e.tr.Languages()...)
}
