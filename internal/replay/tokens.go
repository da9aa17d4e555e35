package replay

import (
	"errors"
	"time"

	"github.com/cenkalti/backoff/v4"
)

// InitialBackoff is the first wait once every credential is rate limited. It doubles each time.
const InitialBackoff = 60 * time.Second

var ErrNoTokens = errors.New("no replay tokens configured")

// TokenPool cycles through API credentials. When a full pass of the pool has been rate limited,
// Rotate hands back an exponentially growing wait and starts a fresh pass.
// A TokenPool belongs to one driver and is not safe for concurrent use.
type TokenPool struct {
	tokens    []string
	current   int
	remaining int
	backoff   *backoff.ExponentialBackOff
}

func NewTokenPool(tokens []string) (*TokenPool, error) {
	if len(tokens) == 0 {
		return nil, ErrNoTokens
	}
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = InitialBackoff
	b.Multiplier = 2
	b.RandomizationFactor = 0
	b.MaxInterval = 24 * time.Hour
	b.MaxElapsedTime = 0
	b.Reset()
	return &TokenPool{
		tokens:    append([]string(nil), tokens...),
		remaining: len(tokens),
		backoff:   b,
	}, nil
}

// Token returns the credential in use.
func (p *TokenPool) Token() string {
	return p.tokens[p.current]
}

// Remaining is the number of rotations left before the pool backs off.
func (p *TokenPool) Remaining() int {
	return p.remaining
}

// Rotate moves to the next credential after a rate-limit signal. It returns zero, or the time to
// wait before the next call when the whole pool has been used up.
func (p *TokenPool) Rotate() time.Duration {
	p.current = (p.current + 1) % len(p.tokens)
	p.remaining--
	if p.remaining > 0 {
		return 0
	}
	p.remaining = len(p.tokens)
	return p.backoff.NextBackOff()
}
