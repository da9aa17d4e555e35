package replay

import (
	"errors"
	"testing"
	"time"
)

func TestTokenPool_RotateBacksOffAfterFullPass(t *testing.T) {
	p, err := NewTokenPool([]string{"a", "b", "c"})
	if err != nil {
		t.Fatal(err)
	}
	if p.Token() != "a" {
		t.Errorf("token want a got %s", p.Token())
	}

	waits := []time.Duration{0, 0, 60 * time.Second, 0, 0, 120 * time.Second, 0, 0, 240 * time.Second}
	tokens := []string{"b", "c", "a", "b", "c", "a", "b", "c", "a"}
	for i, want := range waits {
		if got := p.Rotate(); got != want {
			t.Errorf("rotation %d: wait want %s got %s", i+1, want, got)
		}
		if p.Token() != tokens[i] {
			t.Errorf("rotation %d: token want %s got %s", i+1, tokens[i], p.Token())
		}
	}
	if p.Remaining() != 3 {
		t.Errorf("remaining want 3 got %d", p.Remaining())
	}
}

func TestTokenPool_SingleToken(t *testing.T) {
	p, err := NewTokenPool([]string{"only"})
	if err != nil {
		t.Fatal(err)
	}
	if got := p.Rotate(); got != InitialBackoff {
		t.Errorf("wait want %s got %s", InitialBackoff, got)
	}
	if got := p.Rotate(); got != 2*InitialBackoff {
		t.Errorf("wait want %s got %s", 2*InitialBackoff, got)
	}
}

func TestTokenPool_Empty(t *testing.T) {
	if _, err := NewTokenPool(nil); !errors.Is(err, ErrNoTokens) {
		t.Errorf("err want ErrNoTokens got %v", err)
	}
}
