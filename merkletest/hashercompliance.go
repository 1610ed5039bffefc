// Package merkletest contains test helpers for
// alternative [merkle.Hasher] implementations.
package merkletest

import (
	"testing"

	"github.com/gordian-engine/merkle"
	"github.com/stretchr/testify/require"
)

// HasherFactory returns a new Hasher under test.
type HasherFactory func() merkle.Hasher

// TestHasherCompliance exercises the parts of the [merkle.Hasher]
// contract that every implementation must satisfy.
func TestHasherCompliance(t *testing.T, f HasherFactory) {
	t.Run("leaf is deterministic", func(t *testing.T) {
		t.Parallel()

		h := f()

		dst01 := h.Leaf([]byte("deterministic_data"), nil)
		dst02 := h.Leaf([]byte("deterministic_data"), nil)

		require.Equal(t, dst01, dst02)
	})

	t.Run("node is deterministic", func(t *testing.T) {
		t.Parallel()

		h := f()

		left := h.Leaf([]byte("left_data"), nil)
		right := h.Leaf([]byte("right_data"), nil)

		dst01 := h.Node(left, right, nil)
		dst02 := h.Node(left, right, nil)

		require.Equal(t, dst01, dst02)
	})

	t.Run("output length matches Size", func(t *testing.T) {
		t.Parallel()

		h := f()
		sz := h.Size()

		require.Len(t, h.Leaf(nil, nil), sz)
		require.Len(t, h.Leaf([]byte("some_data"), nil), sz)

		left := h.Leaf([]byte("left_data"), nil)
		right := h.Leaf([]byte("right_data"), nil)
		require.Len(t, h.Node(left, right, nil), sz)
	})

	t.Run("output is appended to dst", func(t *testing.T) {
		t.Parallel()

		h := f()

		prefix := []byte("existing_prefix")
		out := h.Leaf([]byte("appended_data"), append([]byte(nil), prefix...))

		require.Len(t, out, len(prefix)+h.Size())
		require.Equal(t, prefix, out[:len(prefix)])
		require.Equal(t, h.Leaf([]byte("appended_data"), nil), out[len(prefix):])
	})

	t.Run("node respects child order", func(t *testing.T) {
		t.Parallel()

		h := f()

		left := h.Leaf([]byte("left_data"), nil)
		right := h.Leaf([]byte("right_data"), nil)

		dst01 := h.Node(left, right, nil)
		dst02 := h.Node(right, left, nil)

		require.NotEqual(t, dst01, dst02)
	})
}
