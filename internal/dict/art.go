// Package dict implements the longest-prefix symbol dictionary used by the
// variable-length (ALM) encoder and by the variable-length selector's own
// parsing scan (spec §2, §9 "ART trie for the variable-length encoder").
//
// The original C++ source (see _examples/original_source/ART_DIC) adapts
// the node width (4/16/48/256 children) per node to keep small nodes
// cache-dense and large ones O(1)-indexed. This port keeps the same
// adaptive idea but collapses it to two regimes instead of four: a small
// node holds its children as a linear-scan slice (cheap for the common
// case of a handful of children, and just as cache-friendly as a fixed
// Node4/Node16 in Go, which lacks the C++ version's manual layout control),
// and promotes to a dense 256-entry array once a node accumulates enough
// children that linear scan would dominate. See DESIGN.md for the
// rationale behind trimming four explicit node-width structs to two.
package dict

import "github.com/ngaut/hope/internal/code"

// Error is the wrapper type for errors specific to this package.
type Error string

func (e Error) Error() string { return "dict: " + string(e) }

const promoteThreshold = 16

type edge struct {
	b     byte
	child *node
}

type node struct {
	hasCode bool
	code    code.Code
	small   []edge
	dense   []*node
}

func (n *node) child(b byte) *node {
	if n.dense != nil {
		return n.dense[b]
	}
	for _, e := range n.small {
		if e.b == b {
			return e.child
		}
	}
	return nil
}

func (n *node) ensureChild(b byte) *node {
	if c := n.child(b); c != nil {
		return c
	}
	c := &node{}
	if n.dense != nil {
		n.dense[b] = c
		return c
	}
	n.small = append(n.small, edge{b, c})
	if len(n.small) > promoteThreshold {
		n.promote()
	}
	return c
}

func (n *node) promote() {
	dense := make([]*node, 256)
	for _, e := range n.small {
		dense[e.b] = e.child
	}
	n.dense = dense
	n.small = nil
}

// Tree is an ART-like radix tree mapping byte-string symbols to codes,
// supporting longest-registered-prefix lookup.
type Tree struct {
	root     *node
	numSyms  int
	numNodes int64
	numDense int64
}

// Build constructs a Tree from a symbol/code table. Symbols need not be
// sorted or of uniform length.
func Build(symbols []code.SymbolCode) (*Tree, error) {
	if len(symbols) == 0 {
		return nil, Error("no symbols to build dictionary from")
	}
	t := &Tree{root: &node{}}
	t.numNodes = 1
	for _, sc := range symbols {
		if len(sc.Symbol) == 0 {
			return nil, Error("empty symbol")
		}
		n := t.root
		for _, b := range sc.Symbol {
			if n.child(b) == nil {
				t.numNodes++
			}
			n = n.ensureChild(b)
		}
		n.hasCode = true
		n.code = sc.Code
		t.numSyms++
	}
	t.countDense(t.root)
	return t, nil
}

func (t *Tree) countDense(n *node) {
	if n.dense != nil {
		t.numDense++
		for _, c := range n.dense {
			if c != nil {
				t.countDense(c)
			}
		}
		return
	}
	for _, e := range n.small {
		t.countDense(e.child)
	}
}

// Lookup returns the code of the longest symbol registered in the tree that
// is a prefix of key, along with the number of bytes it consumed. ok is
// false if no registered symbol is a prefix of key (the ALM encoder never
// sees this, since its selector registers every single-byte symbol).
func (t *Tree) Lookup(key []byte) (c code.Code, matchLen int, ok bool) {
	n := t.root
	best := -1
	for i := 0; i < len(key); i++ {
		nxt := n.child(key[i])
		if nxt == nil {
			break
		}
		n = nxt
		if n.hasCode {
			c, best = n.code, i+1
		}
	}
	if best < 0 {
		return code.Code{}, 0, false
	}
	return c, best, true
}

// NumEntries reports the number of distinct symbols registered.
func (t *Tree) NumEntries() int { return t.numSyms }

// MemoryUse estimates the tree's resident byte footprint: each node plus, for nodes promoted to the dense representation, their
// 256-entry child array.
func (t *Tree) MemoryUse() int64 {
	const nodeBytes = 64          // hasCode + code + two slice headers
	const denseArrayBytes = 256 * 8 // 256 *node pointers
	return t.numNodes*nodeBytes + t.numDense*denseArrayBytes
}
