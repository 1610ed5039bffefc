// Package merkle implements a binary Merkle (hash) tree:
// construction over an ordered sequence of opaque data blocks,
// derivation of a single root digest summarizing all blocks,
// compact inclusion proofs for individual blocks,
// and stateless verification of those proofs against a root digest
// without access to the full dataset.
//
// The digest algorithm is an injected capability; see [Hasher].
// The standard SHA-256 implementation lives in
// [github.com/gordian-engine/merkle/merklesha256].
//
// A [Tree] is immutable after construction,
// and a [Proof] is a plain value independent of the tree that produced it,
// so values of both types may be used concurrently without locking.
// For the verification side of a transfer,
// [PartialTree] accumulates trust in a dataset one block at a time
// against a known root digest.
package merkle
