package highlight

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"sync"

	"braces.dev/errtrace"
)

// Cache is an Engine that remembers the results of another Engine.
// Failures are not remembered.
//
// It is safe for concurrent use if the wrapped Engine is.
type Cache struct {
	engine Engine

	mu      sync.Mutex
	results map[string]*Result // key => result
}

var _ Engine = (*Cache)(nil)

// NewCache builds a Cache in front of the given engine.
func NewCache(e Engine) *Cache {
	return &Cache{
		engine:  e,
		results: make(map[string]*Result),
	}
}

// Highlight returns the remembered result for an identical request,
// or asks the wrapped engine.
func (c *Cache) Highlight(ctx context.Context, req *Request) (*Result, error) {
	key := cacheKey(req)

	c.mu.Lock()
	res, ok := c.results[key]
	c.mu.Unlock()
	if ok {
		return res, nil
	}

	res, err := c.engine.Highlight(ctx, req)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}

	c.mu.Lock()
	c.results[key] = res
	c.mu.Unlock()
	return res, nil
}

// Len reports the number of remembered results.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.results)
}

func cacheKey(req *Request) string {
	data, _ := json.Marshal(req)
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}
