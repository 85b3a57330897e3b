// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package art

// Tree is an adaptive radix tree mapping fixed-width binary keys to
// uint64 values. The zero value is not usable; construct one with New or
// NewUint64Tree. A Tree is not safe for concurrent use (spec §5) — callers
// needing concurrent access must supply their own external synchronization.
type Tree struct {
	root      Node
	size      int
	maxKeyLen int
	loadKey   LoadKeyFunc
}

// New constructs an empty tree whose keys are all exactly maxKeyLen bytes
// long. loadKey must reconstruct the full key for any value ever inserted;
// it is called during descent whenever a node's compressed prefix runs
// past the inline maxPrefixLen bytes, and to confirm a leaf match.
func New(maxKeyLen int, loadKey LoadKeyFunc) *Tree {
	return &Tree{maxKeyLen: maxKeyLen, loadKey: loadKey}
}

// NewUint64Tree constructs a tree keyed by the big-endian encoding of the
// value itself — the common case where the value being indexed doubles as
// its own sort key (spec §6.1's benchmark driver uses exactly this shape).
func NewUint64Tree() *Tree {
	return New(8, BigEndianLoadKey)
}

// Len returns the number of keys currently stored in the tree.
func (t *Tree) Len() int {
	return t.size
}

// Minimum returns the value associated with the smallest key in the tree.
func (t *Tree) Minimum() (uint64, bool) {
	lf := minimum(t.root)
	if lf == nil {
		return 0, false
	}
	return lf.value, true
}

// Maximum returns the value associated with the largest key in the tree.
func (t *Tree) Maximum() (uint64, bool) {
	lf := maximum(t.root)
	if lf == nil {
		return 0, false
	}
	return lf.value, true
}
