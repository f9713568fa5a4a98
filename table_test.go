package huffman

import (
	"errors"
	"testing"
)

func TestTable_Navigation(t *testing.T) {
	table := makeTestTable(t, []Entry{{'A', 5}, {'B', 2}, {'C', 1}, {'D', 1}})

	root, err := table.Root()
	if err != nil {
		t.Fatalf("Root failed: %v", err)
	}
	if root != 6 {
		t.Errorf("expected root 6, got %d", root)
	}

	left, err := table.Left(root)
	if err != nil || left != 5 {
		t.Errorf("Left(root): expected 5, got %d, %v", left, err)
	}
	right, err := table.Right(root)
	if err != nil || right != 0 {
		t.Errorf("Right(root): expected 0, got %d, %v", right, err)
	}

	if table.IsLeaf(root) {
		t.Errorf("root reported as leaf")
	}
	if !table.IsLeaf(right) {
		t.Errorf("node %d not reported as leaf", right)
	}
	if table.IsLeaf(99) {
		t.Errorf("out-of-range node reported as leaf")
	}

	sym, err := table.Symbol(right)
	if err != nil || sym != 'A' {
		t.Errorf("Symbol(%d): expected A, got %v, %v", right, sym, err)
	}

	if _, err := table.Symbol(root); !errors.Is(err, ErrNotALeaf) {
		t.Errorf("Symbol(root): expected %v, got %v", ErrNotALeaf, err)
	}
	if _, err := table.Left(right); !errors.Is(err, ErrNotInternalNode) {
		t.Errorf("Left(leaf): expected %v, got %v", ErrNotInternalNode, err)
	}
	if _, err := table.Right(right); !errors.Is(err, ErrNotInternalNode) {
		t.Errorf("Right(leaf): expected %v, got %v", ErrNotInternalNode, err)
	}
	if _, err := table.Node(-2); !errors.Is(err, ErrInvalidNode) {
		t.Errorf("Node(-2): expected %v, got %v", ErrInvalidNode, err)
	}
	if _, err := table.Left(NodeIndex(table.Len())); !errors.Is(err, ErrInvalidNode) {
		t.Errorf("Left(Len()): expected %v, got %v", ErrInvalidNode, err)
	}
}

func TestTable_Empty(t *testing.T) {
	var table Table
	if _, err := table.Root(); !errors.Is(err, ErrEmptyTable) {
		t.Errorf("expected %v, got %v", ErrEmptyTable, err)
	}
	if _, err := NewDecoder(&table); !errors.Is(err, ErrEmptyTable) {
		t.Errorf("NewDecoder: expected %v, got %v", ErrEmptyTable, err)
	}
	if _, err := table.Path('A'); !errors.Is(err, ErrEmptyTable) {
		t.Errorf("Path: expected %v, got %v", ErrEmptyTable, err)
	}
}

func TestTable_Covers(t *testing.T) {
	table := makeTestTable(t, []Entry{{'A', 5}, {'B', 2}, {'C', 1}, {'D', 1}})

	type testRow struct {
		node   NodeIndex
		expect string
	}

	// Node 4 joins C and D, node 5 joins B and node 4, node 6 is the root.
	testData := [...]testRow{
		{0, "A"},
		{1, "B"},
		{2, "C"},
		{3, "D"},
		{4, "CD"},
		{5, "BCD"},
		{6, "BCDA"},
	}
	for _, row := range testData {
		symbols, err := table.Symbols(row.node)
		if err != nil {
			t.Fatalf("Symbols(%d) failed: %v", row.node, err)
		}
		if actual := StringOf(symbols); actual != row.expect {
			t.Errorf("Symbols(%d): expected %q, got %q", row.node, row.expect, actual)
		}
		for _, ch := range "ABCDZ" {
			expect := false
			for _, want := range row.expect {
				expect = expect || want == ch
			}
			if actual := table.Covers(row.node, Symbol(ch)); actual != expect {
				t.Errorf("Covers(%d, %c): expected %v, got %v", row.node, ch, expect, actual)
			}
		}
	}
}

func TestTable_PathMatchesCode(t *testing.T) {
	for _, entries := range [][]Entry{
		sampleEntries(),
		{{'A', 5}, {'B', 2}, {'C', 1}, {'D', 1}},
		{{'q', 7}},
	} {
		table := makeTestTable(t, entries)
		for _, entry := range entries {
			code, err := table.Code(entry.Symbol)
			if err != nil {
				t.Fatalf("Code(%v) failed: %v", entry.Symbol, err)
			}
			path, err := table.Path(entry.Symbol)
			if err != nil {
				t.Fatalf("Path(%v) failed: %v", entry.Symbol, err)
			}
			if !code.Equal(path) {
				t.Errorf("symbol %v: Code %v != Path %v", entry.Symbol, code, path)
			}
		}
		if _, err := table.Path('Z'); !errors.Is(err, ErrUnknownSymbol) {
			t.Errorf("Path('Z'): expected %v, got %v", ErrUnknownSymbol, err)
		}
		if _, err := table.Code('Z'); !errors.Is(err, ErrUnknownSymbol) {
			t.Errorf("Code('Z'): expected %v, got %v", ErrUnknownSymbol, err)
		}
	}
}

func TestTable_PrefixFree(t *testing.T) {
	entries := sampleEntries()
	table := makeTestTable(t, entries)

	for _, a := range entries {
		codeA, _ := table.Code(a.Symbol)
		for _, b := range entries {
			if a.Symbol == b.Symbol {
				continue
			}
			codeB, _ := table.Code(b.Symbol)
			if codeB.HasPrefix(codeA) {
				t.Errorf("code %v for %v is a prefix of code %v for %v", codeA, a.Symbol, codeB, b.Symbol)
			}
		}
	}
}

func TestTable_CodeIsCopy(t *testing.T) {
	table := makeTestTable(t, sampleEntries())
	code, _ := table.Code('B')
	code[0] = Zero

	again, _ := table.Code('B')
	if expect := parseBits("111"); !again.Equal(expect) {
		t.Errorf("table mutated through Code: expected %v, got %v", expect, again)
	}
}

func TestTable_String(t *testing.T) {
	table := makeTestTable(t, sampleEntries())

	expectString := "(Huffman table with 8 symbols, with coded lengths of 1 .. 4 bits)"
	actualString := table.String()
	if expectString != actualString {
		t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", expectString, actualString)
	}
}
