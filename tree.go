package merkle

import (
	"encoding/hex"
	"fmt"
)

// EmptyTreeHex is the sentinel returned by [*Tree.RootHex]
// when the tree was built from zero data blocks.
// It is a documented, user-facing convention, not an error.
const EmptyTreeHex = "Empty tree"

// Tree is an immutable binary Merkle tree over an ordered
// sequence of data blocks.
// Build one with [New]; there are no update or delete operations.
type Tree struct {
	root *Node

	// Every level of the tree in construction order, leaves first,
	// each level padded to even width by duplicating its last node.
	// levels[0] is the leaf list and the final level holds only the root.
	// Retained so that proof generation is a direct indexed walk
	// instead of re-deriving each level per call.
	levels [][]*Node

	hasher Hasher
}

// Config is the configuration for [New].
type Config struct {
	// Hasher is the digest used for leaves and branches. Required.
	Hasher Hasher
}

// New builds a tree over the given data blocks, in input order.
//
// Every input is legal and construction cannot fail:
// zero blocks produce the defined empty-tree state,
// one block produces a tree whose root is that single leaf,
// and whenever a level ends up with an odd number of nodes --
// the leaf level or any level formed through combination --
// its last node is duplicated so that every node pairs with a sibling.
//
// Each block is cloned, so the caller may reuse the input slices.
func New(blocks [][]byte, cfg Config) *Tree {
	if cfg.Hasher == nil {
		panic(fmt.Errorf("BUG: Config.Hasher is required"))
	}

	t := &Tree{hasher: cfg.Hasher}
	if len(blocks) == 0 {
		return t
	}

	leaves := make([]*Node, 0, len(blocks)+1)
	for _, b := range blocks {
		leaves = append(leaves, newLeaf(b, cfg.Hasher))
	}

	// A single leaf is the root on its own;
	// no padding and no combination occur.
	if len(leaves) == 1 {
		t.root = leaves[0]
		t.levels = [][]*Node{leaves}
		return t
	}

	cur := padLevel(leaves)
	t.levels = append(t.levels, cur)

	for len(cur) > 1 {
		next := make([]*Node, 0, len(cur)/2+1)
		for i := 0; i < len(cur); i += 2 {
			next = append(next, newBranch(cur[i], cur[i+1], cfg.Hasher))
		}
		next = padLevel(next)
		t.levels = append(t.levels, next)
		cur = next
	}

	t.root = cur[0]
	return t
}

// padLevel duplicates the last node of an odd-width level
// so that every node pairs with a sibling.
// A single remaining node is the root and is left alone.
func padLevel(level []*Node) []*Node {
	if len(level) > 1 && len(level)%2 == 1 {
		level = append(level, level[len(level)-1].clone())
	}
	return level
}

// Root returns the root node, or nil for the empty tree.
func (t *Tree) Root() *Node {
	return t.root
}

// RootHash returns the root digest, or nil for the empty tree.
// The caller must not modify the returned slice.
func (t *Tree) RootHash() []byte {
	if t.root == nil {
		return nil
	}
	return t.root.hash
}

// RootHex returns the root digest as lowercase hexadecimal,
// or [EmptyTreeHex] for the empty tree.
func (t *Tree) RootHex() string {
	if t.root == nil {
		return EmptyTreeHex
	}
	return hex.EncodeToString(t.root.hash)
}

// Leaves returns the leaf nodes in input order,
// including the duplicate appended when the block count was odd.
// The caller must not modify the returned slice.
func (t *Tree) Leaves() []*Node {
	if len(t.levels) == 0 {
		return nil
	}
	return t.levels[0]
}

// Len returns the number of leaf nodes,
// padding duplicate included.
func (t *Tree) Len() int {
	if len(t.levels) == 0 {
		return 0
	}
	return len(t.levels[0])
}

// IsEmpty reports whether the tree was built from zero data blocks.
func (t *Tree) IsEmpty() bool {
	return t.root == nil
}
