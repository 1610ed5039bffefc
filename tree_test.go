package merkle_test

import (
	"crypto/sha256"
	"hash/fnv"
	"testing"

	"github.com/gordian-engine/merkle"
	"github.com/gordian-engine/merkle/merklesha256"
	"github.com/stretchr/testify/require"
)

// The simplified tests in this file use fnv32Hasher,
// which keeps the expected digests short and the assertions readable.
// The sha256 tests at the bottom pin the reference algorithm's
// exact roots by manual digest computation.

func TestNew_empty(t *testing.T) {
	t.Parallel()

	tree := merkle.New(nil, merkle.Config{Hasher: fnv32Hasher{}})

	require.True(t, tree.IsEmpty())
	require.Nil(t, tree.Root())
	require.Nil(t, tree.RootHash())
	require.Equal(t, "Empty tree", tree.RootHex())
	require.Zero(t, tree.Len())
	require.Nil(t, tree.Leaves())
}

func TestNew_singleton(t *testing.T) {
	t.Parallel()

	tree := merkle.New([][]byte{[]byte("only")}, merkle.Config{Hasher: fnv32Hasher{}})

	// Leaf and root coincide; no combination occurs.
	require.Equal(t, fnv32Hash("only"), tree.RootHash())
	require.Equal(t, 1, tree.Len())
	require.Same(t, tree.Root(), tree.Leaves()[0])
	require.True(t, tree.Root().IsLeaf())
}

func TestNew_2_blocks(t *testing.T) {
	t.Parallel()

	tree := merkle.New([][]byte{
		[]byte("hello"),
		[]byte("world"),
	}, merkle.Config{Hasher: fnv32Hasher{}})

	expLeaf0 := fnv32Hash("hello")
	expLeaf1 := fnv32Hash("world")

	expRoot := fnv32Hash(string(expLeaf0) + string(expLeaf1))
	require.Equal(t, expRoot, tree.RootHash())
}

func TestNew_3_blocks(t *testing.T) {
	t.Parallel()

	tree := merkle.New([][]byte{
		[]byte("zero"),
		[]byte("one"),
		[]byte("two"),
	}, merkle.Config{Hasher: fnv32Hasher{}})

	/* Tree structure (2' duplicates leaf 2):

	012
	01 22'
	0 1 2 2'

	*/

	expLeaf0 := fnv32Hash("zero")
	expLeaf1 := fnv32Hash("one")
	expLeaf2 := fnv32Hash("two")

	expNode01 := fnv32Hash(string(expLeaf0) + string(expLeaf1))
	expNode22 := fnv32Hash(string(expLeaf2) + string(expLeaf2))

	expRoot := fnv32Hash(string(expNode01) + string(expNode22))
	require.Equal(t, expRoot, tree.RootHash())
}

func TestNew_4_blocks(t *testing.T) {
	t.Parallel()

	tree := merkle.New([][]byte{
		[]byte("zero"),
		[]byte("one"),
		[]byte("two"),
		[]byte("three"),
	}, merkle.Config{Hasher: fnv32Hasher{}})

	expLeaf0 := fnv32Hash("zero")
	expLeaf1 := fnv32Hash("one")
	expLeaf2 := fnv32Hash("two")
	expLeaf3 := fnv32Hash("three")

	expNode01 := fnv32Hash(string(expLeaf0) + string(expLeaf1))
	expNode23 := fnv32Hash(string(expLeaf2) + string(expLeaf3))

	expRoot := fnv32Hash(string(expNode01) + string(expNode23))
	require.Equal(t, expRoot, tree.RootHash())
}

func TestNew_5_blocks(t *testing.T) {
	t.Parallel()

	tree := merkle.New([][]byte{
		[]byte("zero"),
		[]byte("one"),
		[]byte("two"),
		[]byte("three"),
		[]byte("four"),
	}, merkle.Config{Hasher: fnv32Hasher{}})

	/* Tree structure (4' duplicates leaf 4, 44' duplicates node 44):

	01234
	0123 4444'
	01 23 44 44'
	0 1 2 3 4 4'

	*/

	expLeaf0 := fnv32Hash("zero")
	expLeaf1 := fnv32Hash("one")
	expLeaf2 := fnv32Hash("two")
	expLeaf3 := fnv32Hash("three")
	expLeaf4 := fnv32Hash("four")

	expNode01 := fnv32Hash(string(expLeaf0) + string(expLeaf1))
	expNode23 := fnv32Hash(string(expLeaf2) + string(expLeaf3))
	expNode44 := fnv32Hash(string(expLeaf4) + string(expLeaf4))

	expNode0123 := fnv32Hash(string(expNode01) + string(expNode23))
	expNode4444 := fnv32Hash(string(expNode44) + string(expNode44))

	expRoot := fnv32Hash(string(expNode0123) + string(expNode4444))
	require.Equal(t, expRoot, tree.RootHash())
}

func TestNew_6_blocks(t *testing.T) {
	t.Parallel()

	tree := merkle.New([][]byte{
		[]byte("zero"),
		[]byte("one"),
		[]byte("two"),
		[]byte("three"),
		[]byte("four"),
		[]byte("five"),
	}, merkle.Config{Hasher: fnv32Hasher{}})

	/* Tree structure (45' duplicates node 45):

	012345
	0123 4545'
	01 23 45 45'
	0 1 2 3 4 5

	*/

	expLeaf0 := fnv32Hash("zero")
	expLeaf1 := fnv32Hash("one")
	expLeaf2 := fnv32Hash("two")
	expLeaf3 := fnv32Hash("three")
	expLeaf4 := fnv32Hash("four")
	expLeaf5 := fnv32Hash("five")

	expNode01 := fnv32Hash(string(expLeaf0) + string(expLeaf1))
	expNode23 := fnv32Hash(string(expLeaf2) + string(expLeaf3))
	expNode45 := fnv32Hash(string(expLeaf4) + string(expLeaf5))

	expNode0123 := fnv32Hash(string(expNode01) + string(expNode23))
	expNode4545 := fnv32Hash(string(expNode45) + string(expNode45))

	expRoot := fnv32Hash(string(expNode0123) + string(expNode4545))
	require.Equal(t, expRoot, tree.RootHash())
}

func TestNew_paddingRetainedInLeaves(t *testing.T) {
	t.Parallel()

	tree := merkle.New([][]byte{
		[]byte("zero"),
		[]byte("one"),
		[]byte("two"),
	}, merkle.Config{Hasher: fnv32Hasher{}})

	leaves := tree.Leaves()
	require.Len(t, leaves, 4)
	require.Equal(t, 4, tree.Len())

	// The duplicate is an equivalent but independent node.
	require.Equal(t, leaves[2].Hash(), leaves[3].Hash())
	require.Equal(t, leaves[2].Data(), leaves[3].Data())
	require.NotSame(t, leaves[2], leaves[3])
}

func TestNew_clonesBlocks(t *testing.T) {
	t.Parallel()

	block := []byte("mutable")
	tree := merkle.New([][]byte{block}, merkle.Config{Hasher: fnv32Hasher{}})

	block[0] = 'X'

	require.Equal(t, []byte("mutable"), tree.Leaves()[0].Data())
	require.Equal(t, fnv32Hash("mutable"), tree.RootHash())
}

func TestNew_zeroLengthBlock(t *testing.T) {
	t.Parallel()

	tree := merkle.New([][]byte{nil, []byte("data")}, merkle.Config{Hasher: fnv32Hasher{}})

	expRoot := fnv32Hash(string(fnv32Hash("")) + string(fnv32Hash("data")))
	require.Equal(t, expRoot, tree.RootHash())
}

func TestNew_deterministic(t *testing.T) {
	t.Parallel()

	blocks := [][]byte{
		[]byte("zero"),
		[]byte("one"),
		[]byte("two"),
		[]byte("three"),
		[]byte("four"),
	}

	tree01 := merkle.New(blocks, merkle.Config{Hasher: merklesha256.Hasher{}})
	tree02 := merkle.New(blocks, merkle.Config{Hasher: merklesha256.Hasher{}})

	require.Equal(t, tree01.RootHash(), tree02.RootHash())
}

func TestNew_orderSensitive(t *testing.T) {
	t.Parallel()

	inOrder := merkle.New([][]byte{
		[]byte("zero"),
		[]byte("one"),
		[]byte("two"),
	}, merkle.Config{Hasher: merklesha256.Hasher{}})

	reordered := merkle.New([][]byte{
		[]byte("one"),
		[]byte("zero"),
		[]byte("two"),
	}, merkle.Config{Hasher: merklesha256.Hasher{}})

	require.NotEqual(t, inOrder.RootHash(), reordered.RootHash())
}

func TestNew_nilHasherPanics(t *testing.T) {
	t.Parallel()

	require.PanicsWithError(t, "BUG: Config.Hasher is required", func() {
		merkle.New(nil, merkle.Config{})
	})
}

func TestRootHex_singletonSHA256(t *testing.T) {
	t.Parallel()

	tree := merkle.New([][]byte{[]byte("hello")}, merkle.Config{Hasher: merklesha256.Hasher{}})

	// SHA-256("hello"), lowercase hex.
	require.Equal(
		t,
		"2cf24dba5fb0a30e26e83b2ac5b9e29e1b161e5c1fa7425e73043362938b9824",
		tree.RootHex(),
	)
}

func TestNew_sha256_3_blocks_manualVector(t *testing.T) {
	t.Parallel()

	tree := merkle.New([][]byte{
		[]byte("a"),
		[]byte("b"),
		[]byte("c"),
	}, merkle.Config{Hasher: merklesha256.Hasher{}})

	expLeafA := sha256Hash("a")
	expLeafB := sha256Hash("b")
	expLeafC := sha256Hash("c")

	expNodeAB := sha256Hash(expLeafA + expLeafB)
	expNodeCC := sha256Hash(expLeafC + expLeafC)

	expRoot := sha256Hash(expNodeAB + expNodeCC)
	require.Equal(t, expRoot, string(tree.RootHash()))
}

func TestNew_sha256_5_blocks_manualVector(t *testing.T) {
	t.Parallel()

	tree := merkle.New([][]byte{
		[]byte("a"),
		[]byte("b"),
		[]byte("c"),
		[]byte("d"),
		[]byte("e"),
	}, merkle.Config{Hasher: merklesha256.Hasher{}})

	expLeafA := sha256Hash("a")
	expLeafB := sha256Hash("b")
	expLeafC := sha256Hash("c")
	expLeafD := sha256Hash("d")
	expLeafE := sha256Hash("e")

	expNodeAB := sha256Hash(expLeafA + expLeafB)
	expNodeCD := sha256Hash(expLeafC + expLeafD)
	expNodeEE := sha256Hash(expLeafE + expLeafE)

	expNodeABCD := sha256Hash(expNodeAB + expNodeCD)
	expNodeEEEE := sha256Hash(expNodeEE + expNodeEE)

	expRoot := sha256Hash(expNodeABCD + expNodeEEEE)
	require.Equal(t, expRoot, string(tree.RootHash()))
}

// fnv32Hash is a convenience function to hash a string
// the way fnv32Hasher digests a leaf.
func fnv32Hash(in string) []byte {
	h := fnv.New32()
	_, _ = h.Write([]byte(in))
	return h.Sum(nil)
}

// fnv32Hasher is a simple, test-only hasher implementation.
// It is not suitable for production because it uses a non-cryptographic hash,
// but this simplicity keeps test assertions easier to follow.
type fnv32Hasher struct{}

func (fnv32Hasher) Leaf(in, dst []byte) []byte {
	h := fnv.New32()
	_, _ = h.Write(in)
	return h.Sum(dst)
}

func (fnv32Hasher) Node(left, right, dst []byte) []byte {
	h := fnv.New32()
	_, _ = h.Write(left)
	_, _ = h.Write(right)
	return h.Sum(dst)
}

func (fnv32Hasher) Size() int {
	return 4
}

func sha256Hash(in string) string {
	res := sha256.Sum256([]byte(in))
	return string(res[:])
}
