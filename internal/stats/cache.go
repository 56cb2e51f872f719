package stats

import (
	"strings"
	"time"

	cache "github.com/patrickmn/go-cache"
)

// SessionCache keeps one built Repository per sport/session key so repeated
// analyses within a session skip re-indexing. Entries expire after the TTL;
// the repositories themselves stay immutable.
type SessionCache struct {
	cache *cache.Cache
}

// NewSessionCache creates a cache with the given entry TTL
func NewSessionCache(ttl time.Duration) *SessionCache {
	return &SessionCache{cache: cache.New(ttl, ttl*2)}
}

// Get returns the cached repository for a sport key, if present
func (s *SessionCache) Get(sport string) (*Repository, bool) {
	v, found := s.cache.Get(strings.ToLower(sport))
	if !found {
		return nil, false
	}
	repo, ok := v.(*Repository)
	return repo, ok
}

// Set stores a built repository under a sport key
func (s *SessionCache) Set(sport string, repo *Repository) {
	s.cache.SetDefault(strings.ToLower(sport), repo)
}

// Invalidate drops the cached repository for a sport key
func (s *SessionCache) Invalidate(sport string) {
	s.cache.Delete(strings.ToLower(sport))
}
