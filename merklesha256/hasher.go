// Package merklesha256 provides the standard SHA-256 implementation
// of [merkle.Hasher].
package merklesha256

import (
	"crypto/sha256"

	"github.com/gordian-engine/merkle"
)

// HashSize is the digest length produced by [Hasher].
const HashSize = sha256.Size

// Hasher is a [merkle.Hasher] backed by SHA-256.
//
// A leaf digest is the SHA-256 of the raw data block;
// a node digest is the SHA-256 of the left child digest
// concatenated with the right child digest, in that order.
type Hasher struct{}

var _ merkle.Hasher = Hasher{}

func (Hasher) Leaf(in, dst []byte) []byte {
	h := sha256.New()
	_, _ = h.Write(in)
	return h.Sum(dst)
}

func (Hasher) Node(left, right, dst []byte) []byte {
	h := sha256.New()
	_, _ = h.Write(left)
	_, _ = h.Write(right)
	return h.Sum(dst)
}

func (Hasher) Size() int {
	return HashSize
}
