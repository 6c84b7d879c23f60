package enrich

import (
	"fmt"
	"sync"

	"go.uber.org/zap"

	"topic-indexer/internal/cache"
	"topic-indexer/internal/chain"
	"topic-indexer/internal/diagnostic"
	"topic-indexer/internal/fieldspec"
	"topic-indexer/internal/marc"
	"topic-indexer/internal/render"
	"topic-indexer/internal/separator"
	"topic-indexer/internal/translate"
)

// Unassigned is the topic facet value of records without subjects.
const Unassigned = "[Unassigned]"

// ErrUnknownLanguage is returned for languages without a dictionary.
var ErrUnknownLanguage = fmt.Errorf("%w: unknown language", diagnostic.ErrConfiguration)

// Options configures an Engine.
type Options struct {
	// CacheCapacity bounds the assembly cache; non-positive means
	// cache.DefaultCapacity.
	CacheCapacity int
	// Registry resolves output functions; nil means DefaultRegistry().
	Registry *Registry
}

// Engine evaluates output fields. It is safe for concurrent use.
type Engine struct {
	cache    *cache.Cache[[]chain.Chain]
	tr       *translate.Translator
	renderer *render.Renderer
	registry *Registry
	log      *zap.Logger

	separators sync.Map // string -> parsed[*separator.Spec]
	fieldSpecs sync.Map // string -> parsed[[]fieldspec.Entry]
}

type parsed[T any] struct {
	value T
	err   error
}

// New creates an engine translating with tr.
func New(tr *translate.Translator, opts Options, log *zap.Logger) *Engine {
	if log == nil {
		log = zap.NewNop()
	}

	registry := opts.Registry
	if registry == nil {
		registry = DefaultRegistry()
	}

	e := &Engine{
		cache:    cache.New[[]chain.Chain](opts.CacheCapacity),
		tr:       tr,
		renderer: render.New(tr),
		registry: registry,
		log:      log.Named("enrich"),
	}

	e.log.Debug("engine created",
		zap.Int("cache_capacity", e.cache.Capacity()),
		zap.String("source_language", tr.Source()),
		zap.Strings("languages", tr.Languages()),
		zap.Strings("functions", registry.Names()))

	return e
}

// Registry returns the function registry.
func (e *Engine) Registry() *Registry {
	return e.registry
}

// CacheStats returns the assembly cache counters.
func (e *Engine) CacheStats() cache.Stats {
	return e.cache.Stats()
}

// Separators parses spec once and returns the memoized result, including a
// memoized error.
func (e *Engine) Separators(spec string) (*separator.Spec, error) {
	if v, ok := e.separators.Load(spec); ok {
		p := v.(parsed[*separator.Spec])
		return p.value, p.err
	}

	s, err := separator.Parse(spec)
	if err != nil {
		e.log.Error("invalid separator spec", zap.String("spec", spec), zap.Error(err))
	}

	v, _ := e.separators.LoadOrStore(spec, parsed[*separator.Spec]{value: s, err: err})
	p := v.(parsed[*separator.Spec])

	return p.value, p.err
}

// FieldSpec parses spec once and returns the memoized result.
func (e *Engine) FieldSpec(spec string) ([]fieldspec.Entry, error) {
	if v, ok := e.fieldSpecs.Load(spec); ok {
		p := v.(parsed[[]fieldspec.Entry])
		return p.value, p.err
	}

	entries, err := fieldspec.Parse(spec)
	if err != nil {
		e.log.Error("invalid field spec", zap.String("spec", spec), zap.Error(err))
	}

	v, _ := e.fieldSpecs.LoadOrStore(spec, parsed[[]fieldspec.Entry]{value: entries, err: err})
	p := v.(parsed[[]fieldspec.Entry])

	return p.value, p.err
}

// CheckLanguage returns ErrUnknownLanguage unless lang can be rendered.
func (e *Engine) CheckLanguage(lang string) error {
	if !e.tr.Supports(lang) {
		return fmt.Errorf("%w %q", ErrUnknownLanguage, lang)
	}

	return nil
}

// Chains returns the raw chains of rec for the given specifications,
// computing them at most once per record, field spec, separator spec and
// filter while cached. Records without a control number are never cached.
func (e *Engine) Chains(rec *marc.Record, fieldSpec, sepSpec string, filter chain.Filter) ([]chain.Chain, error) {
	seps, err := e.Separators(sepSpec)
	if err != nil {
		return nil, err
	}

	entries, err := e.FieldSpec(fieldSpec)
	if err != nil {
		return nil, err
	}

	extract := func() ([]chain.Chain, error) {
		return chain.ExtractRecord(rec, seps, entries, filter), nil
	}

	id := rec.ControlNumber()
	if id == "" {
		return extract()
	}

	key := cache.Key{
		RecordID:   id,
		FieldSpec:  fieldSpec,
		Separators: seps.Canonical(),
		Filter:     filter.String(),
	}

	chains, err := e.cache.GetOrCompute(key.String(), extract)
	if err != nil {
		return nil, fmt.Errorf("record %s: assembling %q: %w", id, fieldSpec, err)
	}

	return chains, nil
}

// render extracts, filters and renders chains into lang.
func (e *Engine) render(rec *marc.Record, fieldSpec, sepSpec, lang string, filter chain.Filter) (*render.OrderedSet, error) {
	if err := e.CheckLanguage(lang); err != nil {
		return nil, err
	}

	chains, err := e.Chains(rec, fieldSpec, sepSpec, filter)
	if err != nil {
		return nil, err
	}

	var set render.OrderedSet

	set.AddAll(e.renderer.Render(chains, lang)...)

	return &set, nil
}

// Topics renders all subject chains and the honourees of rec.
func (e *Engine) Topics(rec *marc.Record, fieldSpec, sepSpec, lang string) ([]string, error) {
	set, err := e.render(rec, fieldSpec, sepSpec, lang, chain.FilterNone)
	if err != nil {
		return nil, err
	}

	set.AddAll(e.honourees(rec, lang)...)

	return set.Values(), nil
}

// TopicFacet renders ordinary subjects and honourees. Records without any
// yield Unassigned.
func (e *Engine) TopicFacet(rec *marc.Record, fieldSpec, sepSpec, lang string) ([]string, error) {
	set, err := e.render(rec, fieldSpec, sepSpec, lang, chain.FilterOrdinary)
	if err != nil {
		return nil, err
	}

	set.AddAll(e.honourees(rec, lang)...)

	if set.Len() == 0 {
		return []string{Unassigned}, nil
	}

	return set.Values(), nil
}

// Genres renders genre subjects.
func (e *Engine) Genres(rec *marc.Record, fieldSpec, sepSpec, lang string) ([]string, error) {
	return e.filtered(rec, fieldSpec, sepSpec, lang, chain.FilterGenre)
}

// Regions renders region subjects.
func (e *Engine) Regions(rec *marc.Record, fieldSpec, sepSpec, lang string) ([]string, error) {
	return e.filtered(rec, fieldSpec, sepSpec, lang, chain.FilterRegion)
}

// Times renders time subjects.
func (e *Engine) Times(rec *marc.Record, fieldSpec, sepSpec, lang string) ([]string, error) {
	return e.filtered(rec, fieldSpec, sepSpec, lang, chain.FilterTime)
}

func (e *Engine) filtered(rec *marc.Record, fieldSpec, sepSpec, lang string, filter chain.Filter) ([]string, error) {
	set, err := e.render(rec, fieldSpec, sepSpec, lang, filter)
	if err != nil {
		return nil, err
	}

	return set.Values(), nil
}
