// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package art

// Get performs an optimistic lookup (spec §4.4): at each inner node it only
// compares the inline portion of the prefix (at most maxPrefixLen bytes),
// trusting the rest to match. That trust is why a full key comparison
// against the landed leaf is mandatory before returning a hit — a prefix
// collision beyond the inline bytes is only caught there.
func (t *Tree) Get(key []byte) (uint64, bool) {
	if len(key) != t.maxKeyLen {
		return 0, false
	}
	n := t.root
	depth := 0
	for n != nil {
		if lf, ok := n.(*NodeLeaf); ok {
			if t.leafMatches(lf, key) {
				return lf.value, true
			}
			return 0, false
		}
		h := nodeHeader(n)
		if h.prefixLen > 0 {
			want := int(h.prefixLen)
			if want > maxPrefixLen {
				want = maxPrefixLen
			}
			if checkPrefix(h.prefix[:], int(h.prefixLen), key, depth) != want {
				return 0, false
			}
			depth += int(h.prefixLen)
		}
		if depth >= len(key) {
			return 0, false
		}
		child := findChild(n, key[depth])
		if child == nil {
			return 0, false
		}
		n = *child
		depth++
	}
	return 0, false
}

// GetPessimistic performs the pessimistic variant of lookup: every node's
// full prefix is validated against key, loading a descendant leaf's key
// whenever the prefix runs past the inline maxPrefixLen bytes, rather than
// deferring that work to a final leaf comparison. It returns the same
// result as Get for every key, at strictly more work per node; it exists so
// the two descent strategies can be tested against each other for
// equivalence (spec §8).
func (t *Tree) GetPessimistic(key []byte) (uint64, bool) {
	if len(key) != t.maxKeyLen {
		return 0, false
	}
	n := t.root
	depth := 0
	for n != nil {
		if lf, ok := n.(*NodeLeaf); ok {
			if t.leafMatches(lf, key) {
				return lf.value, true
			}
			return 0, false
		}
		h := nodeHeader(n)
		if h.prefixLen > 0 {
			if t.prefixMismatch(n, key, depth) != int(h.prefixLen) {
				return 0, false
			}
			depth += int(h.prefixLen)
		}
		if depth >= len(key) {
			return 0, false
		}
		child := findChild(n, key[depth])
		if child == nil {
			return 0, false
		}
		n = *child
		depth++
	}
	return 0, false
}
