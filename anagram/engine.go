package anagram

import (
	"context"
	"runtime"
	"time"

	"github.com/rs/zerolog"

	dawg "github.com/milden6/anadawg"
)

// checkEvery is how many nodes SearchContext visits between context checks.
const checkEvery = 1024

// Engine finds every dictionary word that can be spelled from a subset of
// a rack. It holds no per-search state and may be used from many
// goroutines at once.
type Engine struct {
	store         *dawg.Store
	log           zerolog.Logger
	maxRackLength int
	workers       int
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the logger searches report to at debug level.
func WithLogger(log zerolog.Logger) Option {
	return func(e *Engine) {
		e.log = log
	}
}

// WithMaxRackLength makes racks longer than n invalid. Zero means no limit.
func WithMaxRackLength(n int) Option {
	return func(e *Engine) {
		e.maxRackLength = n
	}
}

// WithWorkers bounds the number of searches SearchAll runs at once.
func WithWorkers(n int) Option {
	return func(e *Engine) {
		e.workers = n
	}
}

// New creates an engine over a store.
func New(store *dawg.Store, opts ...Option) *Engine {
	e := &Engine{
		store:   store,
		log:     zerolog.Nop(),
		workers: runtime.GOMAXPROCS(0),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.workers < 1 {
		e.workers = 1
	}
	return e
}

// Store returns the dictionary the engine searches.
func (e *Engine) Store() *dawg.Store {
	return e.store
}

// Search returns the words that can be made from the letters of raw, in
// traversal order. raw may mix upper and lower case; if it holds anything
// other than letters the result is empty.
func (e *Engine) Search(raw string) []string {
	words, _ := e.SearchContext(context.Background(), raw)
	return words
}

// SearchContext is Search with a context that is checked while the graph
// is walked. It returns ctx.Err() and no words once the context is done.
func (e *Engine) SearchContext(ctx context.Context, raw string) ([]string, error) {
	rack, ok := ParseRack(raw)
	if !ok {
		e.log.Debug().Int("length", len(raw)).Msg("rejected rack with non-letter input")
		return []string{}, nil
	}
	return e.SearchRackContext(ctx, rack)
}

// SearchRack searches with a rack that has already been parsed.
func (e *Engine) SearchRack(rack Rack) []string {
	words, _ := e.SearchRackContext(context.Background(), rack)
	return words
}

// SearchRackContext is SearchRack with a context.
func (e *Engine) SearchRackContext(ctx context.Context, rack Rack) ([]string, error) {
	if e.maxRackLength > 0 && rack.Len() > e.maxRackLength {
		e.log.Debug().Int("length", rack.Len()).Int("max", e.maxRackLength).
			Msg("rejected rack over the length limit")
		return []string{}, nil
	}

	start := time.Now()
	s := newSearch(e.store, rack)
	if err := s.run(ctx); err != nil {
		return nil, err
	}

	e.log.Debug().
		Str("rack", rack.String()).
		Int("results", len(s.results)).
		Int("visited", s.visited).
		Dur("elapsed", time.Since(start)).
		Msg("search complete")

	return s.results, nil
}
