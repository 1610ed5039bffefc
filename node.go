package merkle

import "bytes"

// Node is a single node in a [Tree].
// It is a tagged variant:
// a leaf wraps one original data block and its digest,
// and a branch owns exactly two children
// and the digest of their concatenated digests.
//
// Every Node's digest is a pure function of its own content:
// recomputing a leaf's digest from its data,
// or a branch's digest from its children's digests,
// always reproduces the stored value.
type Node struct {
	// Owned copy of the original block; nil for branches.
	data []byte

	hash []byte

	// Both nil for leaves.
	left, right *Node
}

func newLeaf(block []byte, h Hasher) *Node {
	return &Node{
		data: bytes.Clone(block),
		hash: h.Leaf(block, nil),
	}
}

func newBranch(left, right *Node, h Hasher) *Node {
	return &Node{
		hash:  h.Node(left.hash, right.hash, nil),
		left:  left,
		right: right,
	}
}

// clone returns a structurally independent copy of n.
// Padding an odd-width level duplicates that level's last node,
// and the duplicate must not share any memory with the original,
// so child subtrees are copied too.
func (n *Node) clone() *Node {
	c := &Node{
		data: bytes.Clone(n.data),
		hash: bytes.Clone(n.hash),
	}
	if n.left != nil {
		c.left = n.left.clone()
		c.right = n.right.clone()
	}
	return c
}

// IsLeaf reports whether n wraps an original data block.
func (n *Node) IsLeaf() bool {
	return n.left == nil
}

// Hash returns n's digest.
// The caller must not modify the returned slice.
func (n *Node) Hash() []byte {
	return n.hash
}

// Data returns the leaf's data block, or nil for a branch.
// The caller must not modify the returned slice.
func (n *Node) Data() []byte {
	return n.data
}

// Left returns the left child, or nil for a leaf.
func (n *Node) Left() *Node {
	return n.left
}

// Right returns the right child, or nil for a leaf.
func (n *Node) Right() *Node {
	return n.right
}
