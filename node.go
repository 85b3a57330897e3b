// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package art

// maxPrefixLen is the number of compressed-path bytes stored inline in an
// inner node's header. Longer prefixes are not stored past this point;
// the remaining bytes are recovered on demand from a descendant leaf's
// key (lazy expansion).
const maxPrefixLen = 9

// node48Empty marks an absent entry in a Node48's childIndex table. It is
// one past the last valid slot index (0..47), so it can never collide
// with a real slot.
const node48Empty = 48

// Node is a reference to anything reachable in the tree: nil (the Null
// case in spec terms), a *NodeLeaf, or one of the four inner node kinds.
// Go's interface dispatch stands in for the C original's pointer-bit
// tagging (see DESIGN.md, "Tagged-leaf encoding"): isLeaf() replaces a
// single tag-bit test, and a type switch on the concrete pointer replaces
// the switch on a node-type byte stored in the pointee.
type Node interface {
	isLeaf() bool
}

// header is embedded in every inner node variant. It holds the compressed
// path (the node's "prefix") and the number of live children.
type header struct {
	prefixLen uint32
	count     uint16
	prefix    [maxPrefixLen]byte
}

func (h *header) isLeaf() bool { return false }

// Node4 holds up to 4 children in parallel arrays, sorted ascending by raw
// byte value.
type Node4 struct {
	header
	keys     [4]byte
	children [4]Node
}

// Node16 holds up to 16 children. keys stores each byte XORed with 0x80
// ("sign-flipped") so that an unsigned ascending sort doubles as a signed
// one; this is what lets a SIMD implementation compare lanes with a signed
// instruction (see findChild and addChild16). A scalar Go build keeps the
// same invariant purely for semantic compatibility, per spec §9.
type Node16 struct {
	header
	keys     [16]byte
	children [16]Node
}

// Node48 holds up to 48 children behind a dense 256-entry byte→slot index.
// childIndex[b] == node48Empty means byte b has no child.
type Node48 struct {
	header
	childIndex [256]uint8
	children   [48]Node
}

// Node256 holds up to 256 children, indexed directly by byte.
type Node256 struct {
	header
	children [256]Node
}

// NodeLeaf is a tagged leaf: it carries only the opaque value. Its key is
// never stored — the tree reconstructs it on demand via the Tree's
// LoadKeyFunc (see key.go), matching spec §3's "Leaf" data model exactly.
type NodeLeaf struct {
	value uint64
}

func (n *NodeLeaf) isLeaf() bool { return true }

// makeLeaf and isLeafNode are the Go-idiomatic equivalents of §4.1's
// make_leaf/is_leaf: small, inlineable helpers that centralize the
// leaf/inner-node distinction in one place. leaf_value has no standalone
// helper here since Go's type assertion (lf.value on a *NodeLeaf) already
// is the idiomatic spelling.
func makeLeaf(value uint64) Node { return &NodeLeaf{value: value} }

func isLeafNode(n Node) bool { return n != nil && n.isLeaf() }

func newNode4() *Node4     { return &Node4{} }
func newNode16() *Node16   { return &Node16{} }
func newNode48() *Node48 {
	n := &Node48{}
	for i := range n.childIndex {
		n.childIndex[i] = node48Empty
	}
	return n
}
func newNode256() *Node256 { return &Node256{} }

func nodeHeader(n Node) *header {
	switch v := n.(type) {
	case *Node4:
		return &v.header
	case *Node16:
		return &v.header
	case *Node48:
		return &v.header
	case *Node256:
		return &v.header
	default:
		return nil
	}
}

// copyHeader copies prefix/count metadata from src to dst, used by every
// grow and shrink transition.
func copyHeader(dst, src *header) {
	dst.count = src.count
	dst.prefixLen = src.prefixLen
	n := src.prefixLen
	if n > maxPrefixLen {
		n = maxPrefixLen
	}
	copy(dst.prefix[:n], src.prefix[:n])
}

func flipSign(b byte) byte { return b ^ 0x80 }
