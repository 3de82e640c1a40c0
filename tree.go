// Copyright 2024 The jvozip Authors. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package jvozip

import (
	"container/heap"
	"fmt"
)

// node is a single node in the code tree. Nodes live in the Tree's arena
// and refer to their children by index rather than pointer so that the
// code table can be derived without recursion, even for the maximally
// skewed 256 symbol tree.
type node struct {
	count       int
	left, right int32 // arena indexes, invalidNode for a leaf
	sym         byte
	leaf        bool
}

const invalidNode = int32(-1)

// maxCodeLen is the longest code a 256 symbol alphabet can produce: a
// maximally skewed tree has depth 255. It bounds the scratch string
// during decode and fits the 8 bit code length field.
const maxCodeLen = 255

// Tree is an immutable Huffman code tree built over a byte sequence.
// It retains the sequence it was built from so that Compress can encode
// it, and exposes the derived code table for serialization and
// diagnostics.
type Tree struct {
	nodes []node
	root  int32
	data  []byte
}

// NewTree buffers data and builds a Huffman tree over its symbol
// frequencies. It fails with ErrUnsupportedInput for empty input. The
// tree construction repeatedly merges the two nodes with the smallest
// counts; ties are broken by arena insertion order (leaves are inserted
// in ascending symbol order) so the same input always yields the same
// tree.
func NewTree(data []byte) (*Tree, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: empty input", ErrUnsupportedInput)
	}
	var counts [256]int
	for _, b := range data {
		counts[b]++
	}
	t := &Tree{data: data}
	h := &nodeHeap{t: t}
	for sym := 0; sym < 256; sym++ {
		if counts[sym] == 0 {
			continue
		}
		h.list = append(h.list, t.add(node{
			count: counts[sym],
			sym:   byte(sym),
			leaf:  true,
			left:  invalidNode,
			right: invalidNode,
		}))
	}
	heap.Init(h)
	for h.Len() > 1 {
		first := heap.Pop(h).(int32)
		second := heap.Pop(h).(int32)
		parent := t.add(node{
			count: t.nodes[first].count + t.nodes[second].count,
			left:  first,
			right: second,
		})
		heap.Push(h, parent)
	}
	t.root = heap.Pop(h).(int32)
	return t, nil
}

func (t *Tree) add(n node) int32 {
	t.nodes = append(t.nodes, n)
	return int32(len(t.nodes)) - 1
}

// Codes returns the code table: for every symbol present in the input,
// the bit string assigned by walking root to leaf, '0' for left and '1'
// for right. A single symbol alphabet yields the tree's only leaf as the
// root; its symbol is assigned the code "0" since a zero length code
// cannot be serialized.
func (t *Tree) Codes() map[byte]string {
	type frame struct {
		idx  int32
		path string
	}
	codes := make(map[byte]string)
	stack := []frame{{t.root, ""}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		n := t.nodes[f.idx]
		if n.leaf {
			if len(f.path) == 0 {
				f.path = "0"
			}
			codes[n.sym] = f.path
			continue
		}
		stack = append(stack, frame{n.right, f.path + "1"})
		stack = append(stack, frame{n.left, f.path + "0"})
	}
	return codes
}

// nodeHeap orders arena indexes by node count, breaking ties by
// insertion order.
type nodeHeap struct {
	t    *Tree
	list []int32
}

func (h *nodeHeap) Len() int {
	return len(h.list)
}

func (h *nodeHeap) Less(i, j int) bool {
	a, b := h.list[i], h.list[j]
	if ca, cb := h.t.nodes[a].count, h.t.nodes[b].count; ca != cb {
		return ca < cb
	}
	return a < b
}

func (h *nodeHeap) Swap(i, j int) {
	h.list[i], h.list[j] = h.list[j], h.list[i]
}

func (h *nodeHeap) Push(x interface{}) {
	h.list = append(h.list, x.(int32))
}

func (h *nodeHeap) Pop() interface{} {
	last := len(h.list) - 1
	x := h.list[last]
	h.list = h.list[:last]
	return x
}

var _ heap.Interface = (*nodeHeap)(nil)
