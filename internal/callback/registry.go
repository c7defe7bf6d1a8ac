package callback

import (
	"context"
	"sync"
)

// Result is the value a Pending is resolved with.
type Result struct {
	Tokens AuthTokens
	Err    error
}

// Pending is the single-assignment result slot of one login attempt.
type Pending struct {
	token    Token
	registry *Registry
	once     sync.Once
	done     chan struct{}
	result   Result
}

func newPending(token Token, registry *Registry) *Pending {
	return &Pending{
		token:    token,
		registry: registry,
		done:     make(chan struct{}),
	}
}

// Token returns the correlation token this entry waits for.
func (p *Pending) Token() Token {
	return p.token
}

// Done is closed once the entry is resolved.
func (p *Pending) Done() <-chan struct{} {
	return p.done
}

// complete stores the result and releases waiters. Only the first call has an effect.
func (p *Pending) complete(r Result) bool {
	completed := false
	p.once.Do(func() {
		p.result = r
		close(p.done)
		completed = true
	})
	return completed
}

// Wait blocks until the entry is resolved or ctx ends.
// When ctx ends first the entry is removed from its registry unresolved, so a
// late capture for the same token is treated as stale.
func (p *Pending) Wait(ctx context.Context) (AuthTokens, error) {
	select {
	case <-p.done:
		return p.outcome()
	case <-ctx.Done():
	}

	// A resolution may have raced with cancellation; prefer it.
	select {
	case <-p.done:
		return p.outcome()
	default:
	}

	p.Cancel()
	return AuthTokens{}, ctx.Err()
}

// Cancel withdraws an unresolved entry from its registry, for callers that give
// up before waiting. A capture arriving afterwards is treated as stale.
func (p *Pending) Cancel() {
	if p.registry != nil {
		p.registry.remove(p)
	}
}

func (p *Pending) outcome() (AuthTokens, error) {
	if p.result.Err != nil {
		return AuthTokens{}, p.result.Err
	}
	return p.result.Tokens, nil
}

// Registry maps correlation tokens to their pending results.
// It is safe for concurrent use by capture handlers and login flows.
type Registry struct {
	mu      sync.Mutex
	pending map[Token]*Pending
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		pending: make(map[Token]*Pending),
	}
}

// Register inserts an unresolved entry for token.
func (r *Registry) Register(token Token) (*Pending, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.pending[token]; exists {
		return nil, &DuplicateTokenError{Token: token}
	}

	p := newPending(token, r)
	r.pending[token] = p
	return p, nil
}

// Resolve removes the entry for token and completes it with result.
// It reports false when no entry exists, which covers stale and replayed captures.
func (r *Registry) Resolve(token Token, result Result) bool {
	r.mu.Lock()
	p, ok := r.pending[token]
	if ok {
		delete(r.pending, token)
	}
	r.mu.Unlock()

	if !ok {
		return false
	}
	return p.complete(result)
}

// ResolveAll drains the registry, failing every entry with err.
// It returns the number of entries drained.
func (r *Registry) ResolveAll(err error) int {
	r.mu.Lock()
	drained := r.pending
	r.pending = make(map[Token]*Pending)
	r.mu.Unlock()

	for _, p := range drained {
		p.complete(Result{Err: err})
	}
	return len(drained)
}

// remove drops p only if it is still the registered entry for its token.
func (r *Registry) remove(p *Pending) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if cur, ok := r.pending[p.token]; ok && cur == p {
		delete(r.pending, p.token)
	}
}

// Len returns the number of unresolved entries.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.pending)
}
