package merkle

// Hasher is the digest capability used throughout the tree.
// The [Tree] passes raw block data to the Leaf method to create leaf digests,
// and it passes pairs of child digests to the Node method
// to create branch digests.
//
// To be allocation-efficient, implementations
// must append their output to dst and return the extended slice,
// instead of always creating a new byte slice.
// Hasher must not retain references to any of its arguments.
//
// Implementations must be deterministic, total over all byte sequences
// (including empty ones), and safe to call concurrently.
type Hasher interface {
	// Leaf appends the digest of one raw data block to dst.
	Leaf(in, dst []byte) []byte

	// Node appends the digest of the left child digest
	// concatenated with the right child digest, in that order, to dst.
	// The concatenation order is part of the contract:
	// verification folds digests in exactly this order.
	Node(left, right, dst []byte) []byte

	// Size returns the digest length in bytes.
	// Every Leaf and Node output has exactly this length.
	Size() int
}
