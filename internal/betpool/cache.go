package betpool

import (
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/wagerworks/parimutuel/internal/domain"
)

// roundCache holds resolved rounds. Terminal rounds never change again, so
// entries need no TTL or invalidation; LRU eviction only bounds memory.
type roundCache struct {
	lru *lru.Cache[int64, *domain.Round]
}

func newRoundCache(size int) (*roundCache, error) {
	c, err := lru.New[int64, *domain.Round](size)
	if err != nil {
		return nil, err
	}
	return &roundCache{lru: c}, nil
}

// Get retrieves a terminal round from the cache.
func (c *roundCache) Get(id int64) (*domain.Round, bool) {
	return c.lru.Get(id)
}

// Set stores a round. Callers must only pass terminal rounds.
func (c *roundCache) Set(round *domain.Round) {
	c.lru.Add(round.ID, round)
}
