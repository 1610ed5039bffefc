package merkle

import (
	"encoding/hex"
	"fmt"
	"strings"
)

// Dump returns a human-readable rendering of the tree structure:
// node kind, abbreviated digest, and the data block for leaves,
// nested by depth.
// It is purely diagnostic and makes no contract
// beyond reflecting the current structure.
func (t *Tree) Dump() string {
	if t.root == nil {
		return EmptyTreeHex + "\n"
	}

	var sb strings.Builder
	t.root.dump(&sb, 0)
	return sb.String()
}

func (n *Node) dump(sb *strings.Builder, depth int) {
	indent := strings.Repeat("  ", depth)

	if n.IsLeaf() {
		fmt.Fprintf(sb, "%sLeaf: data=%q hash=%s\n", indent, n.data, shortHex(n.hash))
		return
	}

	fmt.Fprintf(sb, "%sBranch: hash=%s\n", indent, shortHex(n.hash))
	n.left.dump(sb, depth+1)
	n.right.dump(sb, depth+1)
}

// shortHex abbreviates a digest to its first four bytes for display.
func shortHex(h []byte) string {
	if len(h) > 4 {
		h = h[:4]
	}
	return hex.EncodeToString(h)
}
