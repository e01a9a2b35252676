package password_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/quarnos/unixcrypt/password"
)

// ──────────────────────────────────────────────────────────────────────────────
// Secure
// ──────────────────────────────────────────────────────────────────────────────

func TestSecure_Length(t *testing.T) {
	for _, length := range []int{1, 8, 20, 64, 120} {
		got, err := password.Secure(length)
		if err != nil {
			t.Fatalf("Secure(%d): %v", length, err)
		}
		if len(got) != length {
			t.Errorf("Secure(%d) returned %d characters", length, len(got))
		}
	}
}

func TestSecure_DefaultLength(t *testing.T) {
	for _, length := range []int{0, -1, -100} {
		got, err := password.Secure(length)
		if err != nil {
			t.Fatalf("Secure(%d): %v", length, err)
		}
		if len(got) != password.DefaultLength {
			t.Errorf("Secure(%d) returned %d characters, want %d",
				length, len(got), password.DefaultLength)
		}
	}
}

func TestSecure_NeverEmitsUnsafeSymbols(t *testing.T) {
	// Large samples make a denylist leak overwhelmingly likely to surface.
	for i := 0; i < 50; i++ {
		got, err := password.Secure(120)
		if err != nil {
			t.Fatalf("Secure: %v", err)
		}
		if strings.ContainsAny(got, password.UnsafeSymbols) {
			t.Fatalf("password %q contains a denylisted symbol", got)
		}
		for _, c := range got {
			if c < '!' || c > '~' {
				t.Fatalf("password %q contains non-printable or space character %q", got, c)
			}
		}
	}
}

func TestSecure_Unique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		got, err := password.Secure(password.DefaultLength)
		if err != nil {
			t.Fatalf("Secure: %v", err)
		}
		if seen[got] {
			t.Fatalf("duplicate password %q after %d draws", got, i)
		}
		seen[got] = true
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Validate
// ──────────────────────────────────────────────────────────────────────────────

func TestValidate(t *testing.T) {
	policy := password.DefaultPolicy()
	if err := password.Validate("longenough", policy); err != nil {
		t.Errorf("Validate accepted nothing: %v", err)
	}
	if err := password.Validate("exactly8", policy); err != nil {
		t.Errorf("boundary length rejected: %v", err)
	}
	err := password.Validate("short", policy)
	if !errors.Is(err, password.ErrTooShort) {
		t.Errorf("expected ErrTooShort, got %v", err)
	}
}

func TestValidate_ZeroPolicy(t *testing.T) {
	if err := password.Validate("", password.Policy{}); err != nil {
		t.Errorf("zero policy must accept everything, got %v", err)
	}
}
