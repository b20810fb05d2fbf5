// Package prefixcode builds and walks canonical Huffman-style prefix codes
// from a static table of per-symbol relative frequencies (spec.md §4.4's
// discriminant frequency hint). The table is a pure function of the
// frequencies, so an encoder and a decoder that are both given the same
// hint compute byte-for-byte the same code assignment without exchanging
// anything over the wire.
package prefixcode

import (
	"container/heap"

	"github.com/arlobytes/bitcode/bitbuf"
	"github.com/arlobytes/bitcode/errs"
)

// Table is a canonical prefix code over symbols 0..len(Lengths)-1.
type Table struct {
	lengths []int // per-symbol code length, 0 < lengths[s] <= maxLen
	codes   []uint32

	// decode support: firstCode[l] is the numeric value of the first code of
	// length l; countAt[l] is how many symbols have that length; symbolsAt[l]
	// lists those symbols in ascending code order (== ascending symbol index,
	// the canonical tie-break).
	firstCode [65]uint32
	countAt   [65]int
	symbolsAt [65][]int
	maxLen    int
}

type heapNode struct {
	freq     uint64
	symbols  []int // leaves merged into this node, for length assignment
	children [2]*heapNode
}

type nodeHeap []*heapNode

func (h nodeHeap) Len() int { return len(h) }
func (h nodeHeap) Less(i, j int) bool {
	if h[i].freq != h[j].freq {
		return h[i].freq < h[j].freq
	}
	// Deterministic tie-break: lower minimum symbol index sorts first, so
	// the resulting table depends only on the frequency vector.
	return minSymbol(h[i]) < minSymbol(h[j])
}
func (h nodeHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }
func (h *nodeHeap) Push(x any)        { *h = append(*h, x.(*heapNode)) }
func (h *nodeHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

func minSymbol(n *heapNode) int {
	m := n.symbols[0]
	for _, s := range n.symbols[1:] {
		if s < m {
			m = s
		}
	}
	return m
}

// Build computes a canonical prefix code for the given per-symbol relative
// frequencies. len(freqs) must be >= 2 (a single-symbol discriminant never
// needs a prefix code: it takes zero bits, per spec.md §4.4).
func Build(freqs []uint32) Table {
	n := len(freqs)
	lengths := huffmanLengths(freqs)

	return canonicalize(n, lengths)
}

// huffmanLengths runs the standard package-merge-free Huffman algorithm: a
// min-heap of leaves and internal nodes, always merging the two least
// frequent, with each merge deepening its subtree by one level.
func huffmanLengths(freqs []uint32) []int {
	n := len(freqs)
	lengths := make([]int, n)

	if n == 1 {
		return lengths // a lone symbol needs zero bits
	}

	h := make(nodeHeap, n)
	for s, f := range freqs {
		freq := uint64(f)
		if freq == 0 {
			freq = 1 // every symbol must remain encodable
		}
		h[s] = &heapNode{freq: freq, symbols: []int{s}}
	}
	heap.Init(&h)

	for h.Len() > 1 {
		a := heap.Pop(&h).(*heapNode)
		b := heap.Pop(&h).(*heapNode)

		merged := &heapNode{
			freq:     a.freq + b.freq,
			symbols:  append(append([]int{}, a.symbols...), b.symbols...),
			children: [2]*heapNode{a, b},
		}
		heap.Push(&h, merged)
	}

	root := h[0]
	walkDepth(root, 0, lengths)

	return lengths
}

func walkDepth(n *heapNode, depth int, lengths []int) {
	if n.children[0] == nil {
		lengths[n.symbols[0]] = depth

		return
	}

	walkDepth(n.children[0], depth+1, lengths)
	walkDepth(n.children[1], depth+1, lengths)
}

func canonicalize(n int, lengths []int) Table {
	t := Table{lengths: lengths, codes: make([]uint32, n)}

	for _, l := range lengths {
		if l > t.maxLen {
			t.maxLen = l
		}
	}

	for s, l := range lengths {
		t.countAt[l]++
		t.symbolsAt[l] = append(t.symbolsAt[l], s)
	}

	var code uint32
	for l := 1; l <= t.maxLen; l++ {
		t.firstCode[l] = code
		for _, s := range t.symbolsAt[l] {
			t.codes[s] = code
			code++
		}
		code <<= 1
	}

	return t
}

// Encode writes symbol's canonical code, most significant bit first.
func Encode(w *bitbuf.Writer, t Table, symbol int) {
	l := t.lengths[symbol]
	if l == 0 {
		return
	}

	code := t.codes[symbol]
	for i := l - 1; i >= 0; i-- {
		w.WriteBit((code>>uint(i))&1 == 1)
	}
}

// Decode reads one canonical-coded symbol. It fails with errs.ErrInvalid if
// the bit pattern read never matches an assigned code within maxLen bits.
func Decode(r *bitbuf.Reader, t Table) (int, error) {
	if t.maxLen == 0 {
		return 0, nil
	}

	var code uint32
	for l := 1; l <= t.maxLen; l++ {
		bit, err := r.ReadBits(1)
		if err != nil {
			return 0, err
		}
		code = (code << 1) | uint32(bit)

		offset := code - t.firstCode[l]
		if offset < uint32(t.countAt[l]) {
			return t.symbolsAt[l][offset], nil
		}
	}

	return 0, errs.ErrInvalid
}
