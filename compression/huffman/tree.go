package huffman

import (
	"github.com/ajaouad/pqcbench/internal/heap"
)

const noChild = int32(-1)

// node is one entry in a tree's arena. Leaves carry a byte value; internal
// nodes only carry the summed frequency of their subtree.
type node struct {
	freq   int
	symbol int16 // -1 for internal nodes
	left   int32
	right  int32
}

func (n node) isLeaf() bool {
	return n.symbol >= 0
}

// Tree is a Huffman tree over the byte alphabet. Nodes live in a flat arena
// and refer to each other by index; the tree is built once per input buffer
// and discarded after the code table is derived.
type Tree struct {
	nodes []node
	root  int32
}

// CountFrequencies tallies how many times each byte value occurs in data.
func CountFrequencies(data []byte) [256]int {
	var frequencies [256]int
	for _, value := range data {
		frequencies[value]++
	}
	return frequencies
}

// BuildTree constructs the Huffman tree for data's byte-frequency
// distribution. An empty input produces no tree and a nil return.
//
// The construction is the classical greedy merge: keep extracting the two
// lowest-frequency nodes, link them under a new internal node carrying their
// summed frequency, and reinsert, until a single root remains. Frequency ties
// are broken by node creation order (leaves in ascending byte-value order,
// then merged nodes in merge order), which keeps the result deterministic.
func BuildTree(data []byte) *Tree {
	if len(data) == 0 {
		return nil
	}

	frequencies := CountFrequencies(data)

	tree := &Tree{nodes: make([]node, 0, 511), root: noChild}
	queue := make([]int32, 0, 256)
	for value := 0; value < 256; value++ {
		if frequencies[value] == 0 {
			continue
		}
		tree.nodes = append(tree.nodes, node{
			freq:   frequencies[value],
			symbol: int16(value),
			left:   noChild,
			right:  noChild,
		})
		queue = append(queue, int32(len(tree.nodes)-1))
	}
	heap.Order(queue, tree.less)

	for len(queue) > 1 {
		left := heap.Pop(&queue, tree.less)
		right := heap.Pop(&queue, tree.less)
		tree.nodes = append(tree.nodes, node{
			freq:   tree.nodes[left].freq + tree.nodes[right].freq,
			symbol: -1,
			left:   left,
			right:  right,
		})
		heap.Push(&queue, int32(len(tree.nodes)-1), tree.less)
	}

	tree.root = queue[0]
	return tree
}

// less orders node indexes by frequency, breaking ties by creation order.
// Arena indexes are assigned in creation order, so comparing indexes directly
// is the tie-break.
func (tree *Tree) less(a, b int32) bool {
	if tree.nodes[a].freq != tree.nodes[b].freq {
		return tree.nodes[a].freq < tree.nodes[b].freq
	}
	return a < b
}

// CodeTable derives the byte-to-code mapping from the tree: descending to a
// left child appends a 0 bit, descending to a right child appends a 1 bit,
// and reaching a leaf records the accumulated bits as that value's code.
//
// A tree whose root is itself a leaf (single distinct byte value) would
// naturally get an empty code, which can't delimit symbols; the leaf is
// assigned the 1-bit code "0" instead.
func (tree *Tree) CodeTable() CodeTable {
	table := make(CodeTable)
	if tree == nil || tree.root == noChild {
		return table
	}

	if root := tree.nodes[tree.root]; root.isLeaf() {
		table[byte(root.symbol)] = Code{Size: 1, Bits: 0}
		return table
	}

	tree.assignCodes(tree.root, Code{}, table)
	return table
}

func (tree *Tree) assignCodes(index int32, prefix Code, table CodeTable) {
	current := tree.nodes[index]
	if current.isLeaf() {
		table[byte(current.symbol)] = prefix
		return
	}
	tree.assignCodes(current.left, prefix.appendBit(0), table)
	tree.assignCodes(current.right, prefix.appendBit(1), table)
}
