package huffman

import (
	"bytes"
	"fmt"
	"io"
	"strings"
)

// NodeIndex identifies a Node within a Table.
type NodeIndex int32

// NoChild is the child index stored in a leaf.
const NoChild = NodeIndex(-1)

// Node is one vertex of a Huffman tree.
//
// A Node is a leaf iff both Left and Right are NoChild.  Leaves carry a
// Symbol.  Internal nodes carry InvalidSymbol, and their Weight is the sum of
// their children's weights.
//
type Node struct {
	Weight uint64
	Left   NodeIndex
	Right  NodeIndex
	Symbol Symbol

	// leaves beneath this node occupy ranks [first, first+leaves) of
	// Table.order.
	first  int32
	leaves int32
}

// IsLeaf returns true iff this Node has no children.
func (n Node) IsLeaf() bool {
	return n.Left == NoChild && n.Right == NoChild
}

// Table is a built Huffman tree.  It is immutable, and therefore safe for
// concurrent use by any number of Encoders and Decoders.
//
// The nodes live in a single slice.  Children always precede their parents,
// and the last node is the root.
//
type Table struct {
	alphabet Alphabet
	nodes    []Node
	order    []Symbol
	rank     map[Symbol]int32
	codes    []Bits
	minSize  int
	maxSize  int
}

// Len returns the number of nodes in the Table.
func (t *Table) Len() int {
	return len(t.nodes)
}

// Alphabet returns the Alphabet this Table was built from.
func (t *Table) Alphabet() Alphabet {
	return t.alphabet
}

// MinSize is the bit length of the shortest code.
func (t *Table) MinSize() int {
	return t.minSize
}

// MaxSize is the bit length of the longest code.
func (t *Table) MaxSize() int {
	return t.maxSize
}

// Root returns the index of the root node.
func (t *Table) Root() (NodeIndex, error) {
	if len(t.nodes) == 0 {
		return NoChild, ErrEmptyTable
	}
	return NodeIndex(len(t.nodes) - 1), nil
}

// Node returns a copy of the indexed Node.
func (t *Table) Node(n NodeIndex) (Node, error) {
	node, err := t.node(n)
	if err != nil {
		return Node{}, err
	}
	return *node, nil
}

// Left returns the left child of an internal node.
func (t *Table) Left(n NodeIndex) (NodeIndex, error) {
	node, err := t.internal(n)
	if err != nil {
		return NoChild, err
	}
	return node.Left, nil
}

// Right returns the right child of an internal node.
func (t *Table) Right(n NodeIndex) (NodeIndex, error) {
	node, err := t.internal(n)
	if err != nil {
		return NoChild, err
	}
	return node.Right, nil
}

// IsLeaf returns true iff n is a leaf.  Indices outside the Table are not
// leaves.
func (t *Table) IsLeaf(n NodeIndex) bool {
	node, err := t.node(n)
	return err == nil && node.IsLeaf()
}

// Symbol returns the Symbol carried by a leaf.
func (t *Table) Symbol(n NodeIndex) (Symbol, error) {
	node, err := t.node(n)
	if err != nil {
		return InvalidSymbol, err
	}
	if !node.IsLeaf() {
		return InvalidSymbol, fmt.Errorf("%w: node %d", ErrNotALeaf, n)
	}
	return node.Symbol, nil
}

// Covers returns true iff the leaf for s lies beneath (or is) node n.
func (t *Table) Covers(n NodeIndex, s Symbol) bool {
	node, err := t.node(n)
	if err != nil {
		return false
	}
	r, found := t.rank[s]
	return found && node.first <= r && r < node.first+node.leaves
}

// Symbols returns the symbols beneath node n, left to right.
func (t *Table) Symbols(n NodeIndex) ([]Symbol, error) {
	node, err := t.node(n)
	if err != nil {
		return nil, err
	}
	out := make([]Symbol, node.leaves)
	copy(out, t.order[node.first:node.first+node.leaves])
	return out, nil
}

// Code returns the bit path from the root to the leaf for s.
func (t *Table) Code(s Symbol) (Bits, error) {
	code, found := t.code(s)
	if !found {
		return nil, fmt.Errorf("%w: %v", ErrUnknownSymbol, s)
	}
	return code.Clone(), nil
}

// Path computes the code for s by navigating from the root, at each internal
// node taking whichever child covers s.  It always agrees with Code, which
// returns the same path precomputed at build time.
func (t *Table) Path(s Symbol) (Bits, error) {
	current, err := t.Root()
	if err != nil {
		return nil, err
	}
	if t.IsLeaf(current) {
		if !t.Covers(current, s) {
			return nil, fmt.Errorf("%w: %v", ErrUnknownSymbol, s)
		}
		return Bits{Zero}, nil
	}

	var path Bits
	for !t.IsLeaf(current) {
		left, _ := t.Left(current)
		if t.Covers(left, s) {
			path = append(path, Zero)
			current = left
			continue
		}
		right, _ := t.Right(current)
		if t.Covers(right, s) {
			path = append(path, One)
			current = right
			continue
		}
		return nil, fmt.Errorf("%w: %v", ErrUnknownSymbol, s)
	}
	return path, nil
}

// Walk visits every node in pre-order, left subtree first.  The root has
// depth 0.
func (t *Table) Walk(fn func(index NodeIndex, node Node, depth int)) {
	root, err := t.Root()
	if err != nil {
		return
	}

	type stackItem struct {
		index NodeIndex
		depth int
	}

	stack := make([]stackItem, 0, stackHint(t.alphabet.Len()))
	stack = append(stack, stackItem{index: root})
	for len(stack) != 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		node := t.nodes[top.index]
		fn(top.index, node, top.depth)
		if !node.IsLeaf() {
			stack = append(stack,
				stackItem{index: node.Right, depth: top.depth + 1},
				stackItem{index: node.Left, depth: top.depth + 1})
		}
	}
}

// Dump writes a programmer-readable debugging dump of the Table to the given
// writer.  Each node is printed as its symbols and weight, indented by depth.
func (t *Table) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Table{\n")
	t.Walk(func(index NodeIndex, node Node, depth int) {
		buf.WriteByte('\t')
		buf.WriteString(strings.Repeat("  ", depth))
		buf.WriteByte('{')
		for i, s := range t.order[node.first : node.first+node.leaves] {
			if i > 0 {
				buf.WriteByte(' ')
			}
			buf.WriteString(s.String())
		}
		fmt.Fprintf(&buf, "} %d\n", node.Weight)
	})
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

// String returns a brief description of the Table.
func (t *Table) String() string {
	return fmt.Sprintf("(Huffman table with %d symbols, with coded lengths of %d .. %d bits)", t.alphabet.Len(), t.minSize, t.maxSize)
}

var _ fmt.Stringer = (*Table)(nil)

func (t *Table) node(n NodeIndex) (*Node, error) {
	if n < 0 || int(n) >= len(t.nodes) {
		return nil, fmt.Errorf("%w: %d not in [0, %d)", ErrInvalidNode, n, len(t.nodes))
	}
	return &t.nodes[n], nil
}

func (t *Table) internal(n NodeIndex) (*Node, error) {
	node, err := t.node(n)
	if err != nil {
		return nil, err
	}
	if node.IsLeaf() {
		return nil, fmt.Errorf("%w: node %d", ErrNotInternalNode, n)
	}
	return node, nil
}

func (t *Table) code(s Symbol) (Bits, bool) {
	r, found := t.rank[s]
	if !found {
		return nil, false
	}
	return t.codes[r], true
}
