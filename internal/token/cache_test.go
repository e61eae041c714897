package token

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBearer_ExchangesWhenEmpty(t *testing.T) {
	c := NewCache()
	calls := 0

	value, err := c.Bearer(context.Background(), func(ctx context.Context) (Token, error) {
		calls++
		return Token{Value: "tok-1", ObtainedAt: time.Now(), ExpiresIn: 30 * time.Minute}, nil
	})

	require.NoError(t, err)
	assert.Equal(t, "tok-1", value)
	assert.Equal(t, 1, calls)
}

func TestBearer_ReusesValidToken(t *testing.T) {
	c := NewCache()
	calls := 0
	exchange := func(ctx context.Context) (Token, error) {
		calls++
		return Token{Value: "tok-1", ObtainedAt: time.Now(), ExpiresIn: 30 * time.Minute}, nil
	}

	_, err := c.Bearer(context.Background(), exchange)
	require.NoError(t, err)
	_, err = c.Bearer(context.Background(), exchange)
	require.NoError(t, err)

	assert.Equal(t, 1, calls, "second call must hit the cache")
}

func TestBearer_ValidityBoundary(t *testing.T) {
	obtained := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	expiresIn := 1799 * time.Second
	boundary := obtained.Add(expiresIn - safetyMargin)

	tests := []struct {
		name      string
		now       time.Time
		wantValid bool
	}{
		{"immediately after exchange", obtained, true},
		{"one second before margin", boundary.Add(-time.Second), true},
		{"exactly at margin", boundary, false},
		{"after margin", boundary.Add(time.Second), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCache()
			c.now = func() time.Time { return tt.now }

			got := c.valid(Token{Value: "tok", ObtainedAt: obtained, ExpiresIn: expiresIn})
			assert.Equal(t, tt.wantValid, got)
		})
	}
}

func TestBearer_RefreshesExpiredToken(t *testing.T) {
	c := NewCache()
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return now }

	calls := 0
	exchange := func(ctx context.Context) (Token, error) {
		calls++
		return Token{Value: "tok", ObtainedAt: now, ExpiresIn: 10 * time.Minute}, nil
	}

	_, err := c.Bearer(context.Background(), exchange)
	require.NoError(t, err)

	// Past obtained + expires - margin: the cached token no longer counts.
	now = now.Add(10 * time.Minute)
	_, err = c.Bearer(context.Background(), exchange)
	require.NoError(t, err)

	assert.Equal(t, 2, calls)
}

func TestBearer_KeepsStaleTokenOnFailedExchange(t *testing.T) {
	c := NewCache()
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return now }

	_, err := c.Bearer(context.Background(), func(ctx context.Context) (Token, error) {
		return Token{Value: "tok-old", ObtainedAt: now, ExpiresIn: 5 * time.Minute}, nil
	})
	require.NoError(t, err)

	now = now.Add(10 * time.Minute)
	_, err = c.Bearer(context.Background(), func(ctx context.Context) (Token, error) {
		return Token{}, errors.New("exchange down")
	})
	require.Error(t, err)

	// The stale token is still cached, not wiped by the failure.
	assert.Equal(t, "tok-old", c.tok.Value)
}

func TestBearer_ConcurrentCallersShareOneExchange(t *testing.T) {
	c := NewCache()
	calls := 0
	exchange := func(ctx context.Context) (Token, error) {
		calls++
		time.Sleep(20 * time.Millisecond)
		return Token{Value: "tok", ObtainedAt: time.Now(), ExpiresIn: time.Hour}, nil
	}

	done := make(chan struct{})
	for i := 0; i < 5; i++ {
		go func() {
			_, _ = c.Bearer(context.Background(), exchange)
			done <- struct{}{}
		}()
	}
	for i := 0; i < 5; i++ {
		<-done
	}

	assert.Equal(t, 1, calls, "expected a single in-flight exchange")
}
