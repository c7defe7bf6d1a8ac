package callback

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

func TestRegistry_Register(t *testing.T) {
	r := NewRegistry()

	p, err := r.Register(1)
	require.NoError(t, err)
	assert.Equal(t, Token(1), p.Token())
	assert.Equal(t, 1, r.Len())

	t.Run("duplicate token is rejected", func(t *testing.T) {
		_, err := r.Register(1)
		var dup *DuplicateTokenError
		require.ErrorAs(t, err, &dup)
		assert.Equal(t, Token(1), dup.Token)
		assert.Equal(t, 1, r.Len())
	})
}

func TestRegistry_ResolveOnce(t *testing.T) {
	r := NewRegistry()
	p, err := r.Register(3)
	require.NoError(t, err)

	first := Result{Tokens: AuthTokens{Code: "first", IDToken: "id-1"}}
	second := Result{Tokens: AuthTokens{Code: "second", IDToken: "id-2"}}

	assert.True(t, r.Resolve(3, first))
	assert.False(t, r.Resolve(3, second), "second resolution must be a no-op")
	assert.Equal(t, 0, r.Len())

	tokens, err := p.Wait(context.Background())
	require.NoError(t, err)
	assert.Equal(t, first.Tokens, tokens)
}

func TestRegistry_ResolveUnknown(t *testing.T) {
	r := NewRegistry()
	_, err := r.Register(1)
	require.NoError(t, err)

	assert.False(t, r.Resolve(2, Result{Tokens: AuthTokens{Code: "c"}}))
	assert.Equal(t, 1, r.Len())
}

func TestRegistry_ResolveAll(t *testing.T) {
	r := NewRegistry()
	var pending []*Pending
	for i := 0; i < 3; i++ {
		p, err := r.Register(Token(i))
		require.NoError(t, err)
		pending = append(pending, p)
	}

	assert.Equal(t, 3, r.ResolveAll(ErrServerStopped))
	assert.Equal(t, 0, r.Len())
	assert.Equal(t, 0, r.ResolveAll(ErrServerStopped))

	for _, p := range pending {
		_, err := p.Wait(context.Background())
		assert.ErrorIs(t, err, ErrServerStopped)
	}
}

func TestPending_Cancel(t *testing.T) {
	r := NewRegistry()
	p, err := r.Register(4)
	require.NoError(t, err)

	p.Cancel()
	assert.Equal(t, 0, r.Len())
	assert.False(t, r.Resolve(4, Result{}))

	select {
	case <-p.Done():
		t.Fatal("cancelled entry must not be resolved")
	default:
	}

	// A stale Pending must not withdraw a newer entry for the same token.
	p2, err := r.Register(4)
	require.NoError(t, err)
	p.Cancel()
	assert.Equal(t, 1, r.Len())
	assert.True(t, r.Resolve(4, Result{Tokens: AuthTokens{Code: "c"}}))

	tokens, err := p2.Wait(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "c", tokens.Code)
}

func TestPending_WaitCancelledRemovesEntry(t *testing.T) {
	r := NewRegistry()
	p, err := r.Register(8)
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err = p.Wait(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Equal(t, 0, r.Len())
	assert.False(t, r.Resolve(8, Result{Tokens: AuthTokens{Code: "late"}}))
}

func TestPending_WaitPrefersResolution(t *testing.T) {
	r := NewRegistry()
	p, err := r.Register(9)
	require.NoError(t, err)
	require.True(t, r.Resolve(9, Result{Tokens: AuthTokens{Code: "c", IDToken: "i"}}))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	tokens, err := p.Wait(ctx)
	require.NoError(t, err)
	assert.Equal(t, "c", tokens.Code)
}

func TestRegistry_ConcurrentResolveSingleWinner(t *testing.T) {
	r := NewRegistry()
	p, err := r.Register(0)
	require.NoError(t, err)

	var wins atomic.Int32
	var g errgroup.Group
	for i := 0; i < 32; i++ {
		g.Go(func() error {
			if r.Resolve(0, Result{Tokens: AuthTokens{Code: "c"}}) {
				wins.Add(1)
			}
			return nil
		})
		g.Go(func() error {
			r.ResolveAll(errors.New("teardown"))
			return nil
		})
	}
	require.NoError(t, g.Wait())

	assert.LessOrEqual(t, wins.Load(), int32(1))
	<-p.Done()
	assert.Equal(t, 0, r.Len())
}
