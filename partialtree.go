package merkle

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/bits-and-blooms/bitset"
)

// PartialTree accumulates trust in a dataset one block at a time,
// against a known root digest,
// without ever holding the full dataset or a full [Tree].
//
// Use [*PartialTree.AddBlock] to confirm a block and its proof;
// the partial tree records every digest the proof derivation touches,
// and stores the block's confirmation, but not the block data itself.
type PartialTree struct {
	// One digest slot per node, level by level, leaves first.
	// Every slot subslices a single backing allocation.
	nodes [][]byte

	// Width of each level, leaves first, padding included.
	// Every level except the root level has even width.
	widths []int

	// Offset into nodes of each level's first slot.
	offsets []int

	// Which node slots hold a trusted digest.
	haveNodes *bitset.BitSet

	// Which blocks have been confirmed via AddBlock.
	// Distinct from haveNodes:
	// a leaf digest can be trusted from a sibling's proof
	// without the block itself having been seen.
	haveBlocks *bitset.BitSet

	nBlocks int

	hasher   Hasher
	hashSize int
}

// PartialTreeConfig contains all the details for [NewPartialTree].
type PartialTreeConfig struct {
	// NBlocks is the number of original data blocks,
	// padding excluded. Must be positive.
	NBlocks int

	// Hasher must match the digest the root was built with. Required.
	Hasher Hasher

	// Root is the trusted root digest.
	Root []byte
}

// NewPartialTree returns a partial tree trusting only the given root.
func NewPartialTree(cfg PartialTreeConfig) *PartialTree {
	if cfg.NBlocks <= 0 {
		panic(fmt.Errorf(
			"BUG: NBlocks must be positive (got %d)", cfg.NBlocks,
		))
	}
	if cfg.Hasher == nil {
		panic(fmt.Errorf("BUG: PartialTreeConfig.Hasher is required"))
	}

	hashSize := cfg.Hasher.Size()
	if len(cfg.Root) != hashSize {
		panic(fmt.Errorf(
			"BUG: root digest must be %d bytes (got %d)",
			hashSize, len(cfg.Root),
		))
	}

	widths := levelWidths(cfg.NBlocks)

	offsets := make([]int, len(widths))
	total := 0
	for i, w := range widths {
		offsets[i] = total
		total += w
	}

	mem := make([]byte, total*hashSize)
	nodes := make([][]byte, total)
	for i := range nodes {
		nodes[i] = mem[i*hashSize : (i+1)*hashSize]
	}

	pt := &PartialTree{
		nodes: nodes,

		widths:  widths,
		offsets: offsets,

		haveNodes:  bitset.MustNew(uint(total)),
		haveBlocks: bitset.MustNew(uint(cfg.NBlocks)),

		nBlocks: cfg.NBlocks,

		hasher:   cfg.Hasher,
		hashSize: hashSize,
	}

	// The root is the one digest trusted from the start.
	copy(pt.nodes[total-1], cfg.Root)
	pt.haveNodes.Set(uint(total - 1))

	return pt
}

// levelWidths returns the width of every tree level, leaves first,
// for the given block count,
// applying the same odd-count duplication rule as construction.
func levelWidths(nBlocks int) []int {
	w := nBlocks
	if w > 1 && w%2 == 1 {
		w++
	}

	widths := []int{w}
	for w > 1 {
		w /= 2
		if w > 1 && w%2 == 1 {
			w++
		}
		widths = append(widths, w)
	}
	return widths
}

var ErrAlreadyHaveBlock = errors.New("block already confirmed at given index")

var ErrBlockMismatch = errors.New("block data does not match confirmed digest")

var ErrProofShape = errors.New("proof shape does not match tree layout")

// AddBlock confirms that the given block at the given index
// folds through the given proof to the trusted root.
//
// On success it records the block as confirmed
// and stores every digest derived along the way as trusted.
// The index must be in range [0, NBlocks); anything else is caller error.
//
// If the block was already confirmed, AddBlock returns
// [ErrAlreadyHaveBlock] when the data still matches,
// or [ErrBlockMismatch] when it does not.
// A proof of the wrong length, or with a side flag
// disagreeing with the index's position in its level,
// is rejected with [ErrProofShape].
// A proof that folds to anything other than the root
// is rejected with a descriptive error.
// The partial tree state is unchanged on every rejection.
func (t *PartialTree) AddBlock(idx int, data []byte, proof Proof) error {
	if idx < 0 || idx >= t.nBlocks {
		panic(fmt.Errorf(
			"BUG: block index %d out of range [0, %d)", idx, t.nBlocks,
		))
	}

	leafHash := t.hasher.Leaf(data, nil)

	if t.haveBlocks.Test(uint(idx)) {
		if !bytes.Equal(t.nodes[t.offsets[0]+idx], leafHash) {
			return ErrBlockMismatch
		}
		return ErrAlreadyHaveBlock
	}

	// One entry per level below the root, always.
	// Duplication padding means a proof is never shorter than the height.
	if len(proof) != len(t.widths)-1 {
		return ErrProofShape
	}

	// Derive the whole path before mutating anything.
	cur := leafHash
	pathOfs := make([]int, len(t.widths))
	derived := make([][]byte, len(t.widths))
	pathOfs[0] = idx
	derived[0] = cur

	ofs := idx
	for k, e := range proof {
		isLeft := ofs%2 == 0
		if e.SiblingOnLeft == isLeft || len(e.Sibling) != t.hashSize {
			return ErrProofShape
		}

		if isLeft {
			cur = t.hasher.Node(cur, e.Sibling, nil)
		} else {
			cur = t.hasher.Node(e.Sibling, cur, nil)
		}

		ofs /= 2
		pathOfs[k+1] = ofs
		derived[k+1] = cur
	}

	root := t.nodes[len(t.nodes)-1]
	if !bytes.Equal(cur, root) {
		return fmt.Errorf(
			"AddBlock: derived root %x does not match trusted root %x",
			cur, root,
		)
	}

	// The fold reached the trusted root,
	// so the path digests and the provided siblings are all trusted now.
	t.haveBlocks.Set(uint(idx))

	for k, e := range proof {
		nodeIdx := t.offsets[k] + pathOfs[k]
		copy(t.nodes[nodeIdx], derived[k])
		t.haveNodes.Set(uint(nodeIdx))

		sibIdx := nodeIdx + 1
		if e.SiblingOnLeft {
			sibIdx = nodeIdx - 1
		}
		copy(t.nodes[sibIdx], e.Sibling)
		t.haveNodes.Set(uint(sibIdx))
	}

	if len(proof) == 0 {
		// Singleton tree: the leaf slot is the root slot,
		// which was already marked trusted at construction.
		t.haveNodes.Set(uint(t.offsets[0] + idx))
	}

	return nil
}

// HasBlock reports whether the block at the given index
// has been confirmed via [*PartialTree.AddBlock].
// It reports false when idx is out of bounds.
func (t *PartialTree) HasBlock(idx int) bool {
	if idx < 0 || idx >= t.nBlocks {
		return false
	}
	return t.haveBlocks.Test(uint(idx))
}

// Complete reports whether every block has been confirmed.
func (t *PartialTree) Complete() bool {
	return t.haveBlocks.All()
}

// Root returns the trusted root digest the partial tree was created with.
// The caller must not modify the returned slice.
func (t *PartialTree) Root() []byte {
	return t.nodes[len(t.nodes)-1]
}
