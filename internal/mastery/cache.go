package mastery

import (
	"context"
	"log/slog"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// CachedSource remembers successful fetches so that several charts drawn in
// one run hit the network once per player. Failures are not cached.
type CachedSource struct {
	inner Source
	cache *expirable.LRU[string, Table]
}

func NewCachedSource(inner Source, size int, ttl time.Duration) *CachedSource {
	return &CachedSource{
		inner: inner,
		cache: expirable.NewLRU[string, Table](size, nil, ttl),
	}
}

// cacheKey uses the player name as given, names differing in whitespace
// build different urls.
func cacheKey(player, region string) string {
	return ResolveRegion(region) + "/" + player
}

func (s *CachedSource) Fetch(ctx context.Context, player, region string) (Table, error) {
	key := cacheKey(player, region)
	cached, hit := s.cache.Get(key)
	if hit {
		slog.DebugContext(ctx, "mastery cache hit", "player", player)
		return cached, nil
	}

	table, err := s.inner.Fetch(ctx, player, region)
	if err != nil {
		return Table{}, err
	}
	s.cache.Add(key, table)
	return table, nil
}
