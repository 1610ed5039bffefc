package merkle

import (
	"bytes"
	"fmt"
)

// ProofEntry is one step of an inclusion proof:
// a sibling digest and which side of the pair it folds on.
type ProofEntry struct {
	// Sibling is a copy of the sibling node's digest,
	// never a reference into the tree that produced it.
	Sibling []byte

	// SiblingOnLeft reports whether Sibling is the left input
	// when this step is folded during verification.
	SiblingOnLeft bool
}

// Proof is an ordered inclusion proof,
// one entry per tree level from the leaf up to, but excluding, the root.
// It must be folded in this order to verify correctly.
//
// A Proof is a plain value with no ownership relationship to a [Tree];
// it remains valid and verifiable after the tree is discarded.
type Proof []ProofEntry

// GenerateProof returns an inclusion proof for the given data block,
// or a false second return when the block is not among the tree's leaves.
// A singleton tree yields an empty, valid proof.
//
// The target leaf is located by digest equality against the stored
// leaf list, not by raw byte comparison,
// so under the cryptographic-hash assumption any block whose digest
// collides with a leaf is indistinguishable from that leaf.
func (t *Tree) GenerateProof(data []byte) (Proof, bool) {
	if t.root == nil {
		return nil, false
	}

	target := t.hasher.Leaf(data, nil)

	idx := -1
	for i, leaf := range t.levels[0] {
		if bytes.Equal(leaf.hash, target) {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, false
	}

	proof := make(Proof, 0, len(t.levels)-1)
	for _, level := range t.levels[:len(t.levels)-1] {
		isLeft := idx%2 == 0
		sibIdx := idx - 1
		if isLeft {
			sibIdx = idx + 1
		}

		// Padding keeps every non-root level at even width,
		// so a missing sibling is a broken invariant,
		// not a step to silently skip.
		if sibIdx >= len(level) {
			panic(fmt.Errorf(
				"BUG: node %d has no sibling in level of width %d",
				idx, len(level),
			))
		}

		proof = append(proof, ProofEntry{
			Sibling:       bytes.Clone(level[sibIdx].hash),
			SiblingOnLeft: !isLeft,
		})

		idx /= 2
	}

	return proof, true
}

// VerifyProof reports whether proof connects the given data block
// to the claimed root digest.
//
// It is pure and stateless and requires no [Tree]:
// it digests data, folds in each proof entry in order,
// and compares the result byte-wise against rootHash.
// Malformed, truncated, and tampered proofs all simply yield false;
// the contract is boolean authenticity, not diagnostic detail.
func VerifyProof(data []byte, proof Proof, rootHash []byte, h Hasher) bool {
	if h == nil {
		panic(fmt.Errorf("BUG: VerifyProof requires a Hasher"))
	}

	cur := h.Leaf(data, nil)
	for _, e := range proof {
		if e.SiblingOnLeft {
			cur = h.Node(e.Sibling, cur, nil)
		} else {
			cur = h.Node(cur, e.Sibling, nil)
		}
	}

	return bytes.Equal(cur, rootHash)
}
