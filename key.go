// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package art

import (
	"encoding/binary"
	"errors"
)

// ErrKeyLength is returned by Insert when the supplied key does not match
// the tree's configured key length. Delete, Get and GetPessimistic report
// such a key as not found instead.
var ErrKeyLength = errors.New("art: key length does not match tree's max key length")

// LoadKeyFunc reconstructs the full key bytes of an inserted value. Leaves
// never store their key (spec §3); the tree calls this hook whenever it
// needs to see bytes past what's held inline in a compressed prefix, or to
// verify a leaf match at the end of a descent. out has length equal to the
// tree's maxKeyLen and must be filled completely.
//
// Because a leaf only stores a value, loadKey(value) must resolve to the
// correct key for every value ever passed to Insert, including a value
// that replaces an existing key's previous value: the caller is
// responsible for making the new value resolve to that same key (e.g. by
// updating an external value->key store) before the replacing Insert
// returns. BigEndianLoadKey satisfies this automatically only when every
// Insert's value equals the key it's paired with.
type LoadKeyFunc func(value uint64, out []byte)

// BigEndianLoadKey is the canonical LoadKeyFunc for trees where the value
// is itself the key, stored as an 8-byte unsigned integer. Writing the
// value in big-endian order makes lexicographic byte order equal numeric
// order, exactly as spec §3 and §6.1 require.
func BigEndianLoadKey(value uint64, out []byte) {
	binary.BigEndian.PutUint64(out, value)
}
