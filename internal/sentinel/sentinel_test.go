package sentinel

import (
	"errors"
	"fmt"
	"testing"
)

func TestError_Error(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		err  Error
		want string
	}{
		"plain message":    {err: Error("ports exhausted"), want: "ports exhausted"},
		"empty message":    {err: Error(""), want: ""},
		"with punctuation": {err: Error("bind: denied"), want: "bind: denied"},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			if got := tc.err.Error(); got != tc.want {
				t.Errorf("Error() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestError_ErrorsIs(t *testing.T) {
	t.Parallel()

	const sentinel = Error("ports exhausted")

	t.Run("direct match", func(t *testing.T) {
		t.Parallel()

		if !errors.Is(sentinel, sentinel) {
			t.Error("errors.Is should match a sentinel against itself")
		}
	})

	t.Run("wrapped match", func(t *testing.T) {
		t.Parallel()

		wrapped := fmt.Errorf("reserve port: %w", sentinel)
		if !errors.Is(wrapped, sentinel) {
			t.Error("errors.Is should match a sentinel through fmt.Errorf %w wrapping")
		}
	})

	t.Run("different sentinel no match", func(t *testing.T) {
		t.Parallel()

		const other = Error("something else")
		if errors.Is(sentinel, other) {
			t.Error("errors.Is should not match a different sentinel")
		}
	})

	t.Run("same text via errors.New no match", func(t *testing.T) {
		t.Parallel()

		if errors.Is(sentinel, errors.New("ports exhausted")) {
			t.Error("errors.Is should not match errors.New with the same text")
		}
	})
}

func TestError_ConstDeclaration(t *testing.T) {
	t.Parallel()

	// Compile-time proof that Error values can be const.
	const errConst = Error("constant error")
	if errConst.Error() != "constant error" {
		t.Errorf("const Error = %q, want %q", errConst.Error(), "constant error")
	}
}
