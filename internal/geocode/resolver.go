package geocode

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	"github.com/seongmin-k/biffplan/internal/service"
	"golang.org/x/time/rate"
)

// DefaultRegionBias prefixes every query so free-text place names resolve
// inside the festival city rather than a same-named place elsewhere.
const DefaultRegionBias = "부산"

// Searcher is the single-query dependency of the resolver.
type Searcher interface {
	Query(ctx context.Context, query string) (*service.Coordinate, error)
}

// Resolver turns (address, name) pairs into coordinates. Per-query results,
// including misses, are memoized in process; hits additionally land in the
// persistent cache when one is configured. Every call that reaches the
// network first waits on the injected limiter.
type Resolver struct {
	searcher Searcher
	limiter  *rate.Limiter
	cache    service.GeocodeCache
	logger   *slog.Logger
	memo     map[string]*service.Coordinate
	bias     string
	mu       sync.Mutex
}

var _ service.Geocoder = (*Resolver)(nil)

// ResolverOption configures a Resolver.
type ResolverOption func(*Resolver)

// WithCache attaches a persistent cache consulted before the network.
func WithCache(cache service.GeocodeCache) ResolverOption {
	return func(r *Resolver) { r.cache = cache }
}

// WithRegionBias overrides the query prefix.
func WithRegionBias(bias string) ResolverOption {
	return func(r *Resolver) { r.bias = bias }
}

// NewResolver creates a resolver. The limiter gates every outbound request;
// pass rate.NewLimiter(rate.Every(time.Second), 1) for the Nominatim policy.
func NewResolver(searcher Searcher, limiter *rate.Limiter, logger *slog.Logger, opts ...ResolverOption) *Resolver {
	r := &Resolver{
		searcher: searcher,
		limiter:  limiter,
		logger:   logger,
		memo:     make(map[string]*service.Coordinate),
		bias:     DefaultRegionBias,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve maps an optional address and a place name to a coordinate. The
// address is tried first, the name as fallback; a nil coordinate with a nil
// error means both failed. Faults from the external service never escape
// this boundary.
func (r *Resolver) Resolve(ctx context.Context, address, name string) (*service.Coordinate, error) {
	key := address + "\x1f" + name

	r.mu.Lock()
	if c, ok := r.memo[key]; ok {
		r.mu.Unlock()
		return c, nil
	}
	r.mu.Unlock()

	if r.cache != nil {
		if c, ok, err := r.cache.Get(ctx, key); err != nil {
			r.logger.Warn("geocode cache read failed", "error", err)
		} else if ok {
			r.remember(key, c)
			return c, nil
		}
	}

	var coord *service.Coordinate
	if strings.TrimSpace(address) != "" {
		coord = r.lookup(ctx, address)
	}
	if coord == nil && strings.TrimSpace(name) != "" {
		coord = r.lookup(ctx, name)
	}

	r.remember(key, coord)
	if coord != nil && r.cache != nil {
		if err := r.cache.Put(ctx, key, coord); err != nil {
			r.logger.Warn("geocode cache write failed", "error", err)
		}
	}
	return coord, nil
}

// lookup runs one biased query. Any fault is logged and collapsed to a miss
// so the caller can fall through to the next candidate string.
func (r *Resolver) lookup(ctx context.Context, place string) *service.Coordinate {
	query := strings.TrimSpace(r.bias + " " + stripParenthetical(place))

	if err := r.limiter.Wait(ctx); err != nil {
		r.logger.Warn("geocode throttle interrupted", "error", err)
		return nil
	}

	coord, err := r.searcher.Query(ctx, query)
	if err != nil {
		r.logger.Warn("geocode query failed", "query", query, "error", err)
		return nil
	}
	return coord
}

func (r *Resolver) remember(key string, c *service.Coordinate) {
	r.mu.Lock()
	r.memo[key] = c
	r.mu.Unlock()
}

// stripParenthetical drops a trailing "(...)" qualifier, e.g.
// "해운대해수욕장 (2관 옆)" → "해운대해수욕장".
func stripParenthetical(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasSuffix(s, ")") {
		return s
	}
	open := strings.LastIndex(s, "(")
	if open < 0 {
		return s
	}
	return strings.TrimSpace(s[:open])
}
