package nlp

import (
	"encoding/json"
	"time"

	"go.uber.org/zap"

	"github.com/ppiankov/storylint/internal/cache"
)

// CachedTagger memoises another tagger's output. Chunks are re-tagged
// often (AND-clause splitting, list checks, ambiguity), so hits are common.
type CachedTagger struct {
	next   Tagger
	cache  cache.Cache
	ns     string
	ttl    time.Duration
	logger *zap.Logger
}

// NewCachedTagger wraps next. The namespace keeps entries from different
// taggers apart when they share a cache.
func NewCachedTagger(next Tagger, c cache.Cache, namespace string, ttl time.Duration, logger *zap.Logger) *CachedTagger {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CachedTagger{
		next:   next,
		cache:  c,
		ns:     namespace,
		ttl:    ttl,
		logger: logger,
	}
}

func (c *CachedTagger) Tag(text string) ([]Token, error) {
	key := cache.CacheKey(c.ns + "\x00" + text)

	if data, ok := c.cache.Get(key); ok {
		var tokens []Token
		if err := json.Unmarshal(data, &tokens); err == nil {
			if tokens == nil {
				tokens = []Token{}
			}
			return tokens, nil
		}
		// Corrupt entry, fall through and overwrite
		_ = c.cache.Delete(key)
	}

	tokens, err := c.next.Tag(text)
	if err != nil {
		return nil, err
	}

	data, err := json.Marshal(tokens)
	if err == nil {
		err = c.cache.Set(key, data, c.ttl)
	}
	if err != nil {
		c.logger.Debug("tag cache write failed", zap.Error(err))
	}
	return tokens, nil
}

var _ Tagger = (*CachedTagger)(nil)
