package token

import (
	"context"
	"sync"
	"time"
)

// safetyMargin keeps a token from being used when it would expire
// mid-request.
const safetyMargin = 60 * time.Second

// Token is a bearer token obtained via the client-credentials flow.
type Token struct {
	Value      string
	ObtainedAt time.Time
	ExpiresIn  time.Duration
}

// ExchangeFunc performs one OAuth client-credentials exchange.
type ExchangeFunc func(ctx context.Context) (Token, error)

// Cache hands out a valid bearer token, refreshing through the supplied
// exchange only when the cached one is absent or expired. The mutex is held
// across the exchange, so concurrent callers share a single refresh. A
// failed exchange leaves any previous token in place.
type Cache struct {
	mu  sync.Mutex
	tok Token
	now func() time.Time
}

func NewCache() *Cache {
	return &Cache{now: time.Now}
}

// Bearer returns the cached token value if it is still valid, otherwise
// exchanges for a fresh one and caches it wholesale.
func (c *Cache) Bearer(ctx context.Context, exchange ExchangeFunc) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.valid(c.tok) {
		return c.tok.Value, nil
	}

	tok, err := exchange(ctx)
	if err != nil {
		return "", err
	}

	c.tok = tok
	return c.tok.Value, nil
}

func (c *Cache) valid(t Token) bool {
	if t.Value == "" {
		return false
	}
	return c.now().Before(t.ObtainedAt.Add(t.ExpiresIn - safetyMargin))
}
