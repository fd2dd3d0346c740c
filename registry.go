package maskscore

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"golang.org/x/sync/singleflight"
)

// Registry caches one Scorer per source identity.
//
// Each source is loaded at most once: concurrent first requests share a
// single load, and the result is kept for the lifetime of the Registry.
// Failed loads are not cached.
type Registry struct {
	optFns []Option

	group singleflight.Group

	mu      sync.RWMutex
	scorers map[string]*Scorer
}

// NewRegistry creates an empty Registry. optFns apply to every Scorer it opens.
func NewRegistry(optFns ...Option) *Registry {
	return &Registry{
		optFns:  optFns,
		scorers: make(map[string]*Scorer),
	}
}

// Default returns the Scorer for the bundled table.
func (r *Registry) Default(ctx context.Context) (*Scorer, error) {
	return r.FromSource(ctx, BundledSource())
}

// FromSource returns the Scorer for src, loading it on first use.
//
// If ctx is canceled while waiting, FromSource returns ctx.Err(). The load
// itself continues for other callers.
func (r *Registry) FromSource(ctx context.Context, src Source) (*Scorer, error) {
	if src.Store == nil {
		return nil, fmt.Errorf("%w: %q: no store", ErrSourceUnavailable, src.Name)
	}

	key := src.Key()
	if s, ok := r.lookup(key); ok {
		return s, nil
	}

	ch := r.group.DoChan(key, func() (any, error) {
		if s, ok := r.lookup(key); ok {
			return s, nil
		}

		s, err := Open(context.WithoutCancel(ctx), src, r.optFns...)
		if err != nil {
			return nil, err
		}

		r.mu.Lock()
		r.scorers[key] = s
		r.mu.Unlock()

		return s, nil
	})

	select {
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.(*Scorer), nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Loaded returns the keys of all cached sources, sorted.
func (r *Registry) Loaded() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	keys := make([]string, 0, len(r.scorers))
	for k := range r.scorers {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func (r *Registry) lookup(key string) (*Scorer, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.scorers[key]
	return s, ok
}

var defaultRegistry = NewRegistry()

// Default returns the process-wide Scorer for the bundled table.
func Default(ctx context.Context) (*Scorer, error) {
	return defaultRegistry.Default(ctx)
}

// FromSource returns the process-wide Scorer for src.
func FromSource(ctx context.Context, src Source) (*Scorer, error) {
	return defaultRegistry.FromSource(ctx, src)
}

// Score scores password against the process-wide default Scorer.
func Score(ctx context.Context, password string) (float64, error) {
	s, err := Default(ctx)
	if err != nil {
		return 0, err
	}
	return s.Score(password), nil
}
