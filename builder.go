package huffman

import (
	"container/heap"

	"github.com/chronos-tachyon/assert"
)

// Build validates the entries and builds a Table from them.  It is shorthand
// for NewAlphabet followed by NewTable.
func Build(entries []Entry) (*Table, error) {
	alphabet, err := NewAlphabet(entries)
	if err != nil {
		return nil, err
	}
	return NewTable(alphabet)
}

// NewTable builds the Huffman tree for an Alphabet.
//
// The two lightest nodes are merged repeatedly until one remains.  Of two
// nodes with equal weight, the one created first is taken first, so the same
// Alphabet always yields the same tree.  The first node taken becomes the
// left child.
//
// An Alphabet with a single symbol yields a one-node Table whose only code is
// the single bit Zero.
//
func NewTable(alphabet Alphabet) (*Table, error) {
	numSymbols := alphabet.Len()
	if numSymbols == 0 {
		return nil, ErrEmptyAlphabet
	}

	// Step 1: one leaf per symbol, all of them in a minheap.

	nodes := make([]Node, 0, 2*numSymbols-1)
	h := weightHeap{make([]indexAndWeight, 0, numSymbols)}
	for _, entry := range alphabet.entries {
		index := NodeIndex(len(nodes))
		weight := uint64(entry.Weight)
		nodes = append(nodes, Node{
			Weight: weight,
			Left:   NoChild,
			Right:  NoChild,
			Symbol: entry.Symbol,
			leaves: 1,
		})
		h.list = append(h.list, indexAndWeight{index, weight})
	}
	h.Init()

	// Step 2: pop two nodes, join them under a new internal node, and push
	// the new node back.  NewAlphabet has already proven that the total
	// weight fits, so no partial sum can overflow.

	for h.Len() > 1 {
		a := heap.Pop(&h).(indexAndWeight)
		b := heap.Pop(&h).(indexAndWeight)

		sum, ok := addWeight(a.weight, b.weight)
		assert.Assertf(ok, "weight overflow merging nodes %d and %d", a.index, b.index)

		index := NodeIndex(len(nodes))
		nodes = append(nodes, Node{
			Weight: sum,
			Left:   a.index,
			Right:  b.index,
			Symbol: InvalidSymbol,
			leaves: nodes[a.index].leaves + nodes[b.index].leaves,
		})
		heap.Push(&h, indexAndWeight{index, sum})
	}

	root := heap.Pop(&h).(indexAndWeight)
	assert.Assertf(int(root.index) == len(nodes)-1, "root %d is not the last of %d nodes", root.index, len(nodes))
	assert.Assertf(len(nodes) == 2*numSymbols-1, "%d symbols yielded %d nodes", numSymbols, len(nodes))
	assert.Assertf(nodes[root.index].Weight == alphabet.TotalWeight(), "root weight %d != total weight %d", nodes[root.index].Weight, alphabet.TotalWeight())

	t := &Table{alphabet: alphabet, nodes: nodes}
	t.assignCodes()
	return t, nil
}

// assignCodes walks the finished tree with an explicit stack, numbering the
// leaves left to right and recording each leaf's bit path.
func (t *Table) assignCodes() {
	numSymbols := t.alphabet.Len()
	t.order = make([]Symbol, 0, numSymbols)
	t.rank = make(map[Symbol]int32, numSymbols)
	t.codes = make([]Bits, 0, numSymbols)

	root := NodeIndex(len(t.nodes) - 1)
	if t.nodes[root].IsLeaf() {
		t.nodes[root].first = 0
		t.addLeaf(t.nodes[root].Symbol, Bits{Zero})
		return
	}

	// The path buffer always holds the bits leading to the most recently
	// visited node.  A node at depth d shares its first d-1 bits with
	// whatever was visited before it, since its parent came earlier.

	type stackItem struct {
		index NodeIndex
		depth int
		bit   Bit
	}

	hint := stackHint(numSymbols)
	stack := make([]stackItem, 0, hint)
	path := make(Bits, 0, hint)
	stack = append(stack, stackItem{index: root})
	for len(stack) != 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if top.depth > 0 {
			path = append(path[:top.depth-1], top.bit)
		}

		node := &t.nodes[top.index]
		node.first = int32(len(t.order))
		if node.IsLeaf() {
			t.addLeaf(node.Symbol, path.Clone())
			continue
		}

		assert.Assertf(node.Left != NoChild && node.Right != NoChild, "node %d is half-formed", top.index)
		assert.Assertf(node.Left < top.index && node.Right < top.index, "node %d has children %d and %d", top.index, node.Left, node.Right)
		stack = append(stack,
			stackItem{index: node.Right, depth: top.depth + 1, bit: One},
			stackItem{index: node.Left, depth: top.depth + 1, bit: Zero})
	}
}

func (t *Table) addLeaf(s Symbol, code Bits) {
	size := len(code)
	if len(t.order) == 0 || t.minSize > size {
		t.minSize = size
	}
	if len(t.order) == 0 || t.maxSize < size {
		t.maxSize = size
	}
	t.rank[s] = int32(len(t.order))
	t.order = append(t.order, s)
	t.codes = append(t.codes, code)
}

// type indexAndWeight + type weightHeap {{{

type indexAndWeight struct {
	index  NodeIndex
	weight uint64
}

type weightHeap struct {
	list []indexAndWeight
}

func (h *weightHeap) Init() {
	heap.Init(h)
}

func (h *weightHeap) Len() int {
	return len(h.list)
}

func (h *weightHeap) Swap(i, j int) {
	h.list[i], h.list[j] = h.list[j], h.list[i]
}

func (h *weightHeap) Less(i, j int) bool {
	a, b := h.list[i], h.list[j]
	if a.weight != b.weight {
		return a.weight < b.weight
	}
	return a.index < b.index
}

func (h *weightHeap) Push(x interface{}) {
	h.list = append(h.list, x.(indexAndWeight))
}

func (h *weightHeap) Pop() interface{} {
	last := uint(len(h.list)) - 1
	x := h.list[last]
	h.list = h.list[:last]
	return x
}

var _ heap.Interface = (*weightHeap)(nil)

// }}}
