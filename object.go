// Copyright 2020-2025 Buf Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package dynschema

import (
	"sort"

	"github.com/bufbuild/dynschema/internal/threadcheck"
)

// Object is an ordered multimap from FieldID to a sequence of typed values.
// Its zero value is not usable; Objects are created by a Root (the top
// level one implicitly, nested ones via AddObject/MergeFromBuffer).
//
// An Object never outlives the Root that allocated it: it holds only a
// back-pointer to that Root for arena access and error reporting, never a
// copy of any bytes it didn't have to.
type Object struct {
	root *Root

	// entries is the append-only log backing every field on this Object.
	// Appending a new occurrence of a field never disturbs the index of any
	// prior entry, which is what lets heads/tails/next form a stable,
	// singly-linked occurrence chain per field ID.
	entries []entry

	heads map[FieldID]int32 // first entry index for a field ID
	tails map[FieldID]int32 // last entry index for a field ID, for O(1) append

	// depth is this Object's nesting depth below its Root, 0 for the root
	// Object itself. Checked against MaxNestingDepth only when a
	// length-delimited payload is lazily resolved into a child Object.
	depth int

	// emptyChildren memoizes the canonical empty Object returned by
	// GetObject for a field ID with no occurrences, keyed by field ID so
	// repeated GetObject calls on an absent field return the same instance.
	emptyChildren map[FieldID]*Object

	owner threadcheck.Owner
}

func newObject(root *Root, depth int) *Object {
	return &Object{
		root:  root,
		heads: make(map[FieldID]int32),
		tails: make(map[FieldID]int32),
		depth: depth,
	}
}

// touch asserts (only while threadcheck is enabled) that this Object is only ever
// accessed from a single goroutine over its lifetime.
func (o *Object) touch() {
	if threadcheck.Enabled() {
		o.owner.Touch("Object")
	}
}

// add appends a new occurrence of id with val, chaining it onto any prior
// occurrence of the same field ID, and returns the new entry's index.
func (o *Object) add(id FieldID, val value) int32 {
	o.touch()
	idx := int32(len(o.entries))
	o.entries = append(o.entries, entry{id: id, next: noNext, val: val})
	if tail, ok := o.tails[id]; ok {
		o.entries[tail].next = idx
	} else {
		o.heads[id] = idx
	}
	o.tails[id] = idx
	return idx
}

// chain calls fn for every live (non-tombstoned) entry occurrence of id, in
// append order, stopping early if fn returns false.
func (o *Object) chain(id FieldID, fn func(idx int32) bool) {
	for idx, ok := o.heads[id]; ok && idx != noNext; {
		e := &o.entries[idx]
		if !e.dead {
			if !fn(idx) {
				return
			}
		}
		idx, ok = e.next, e.next != noNext
	}
}

// elementCount reports how many scalar elements of kind an entry
// contributes: 1 for a singular scalar of that kind, or the decoded packed
// element count for a packed list / not-yet-disambiguated length-delimited
// payload.
func (o *Object) elementCount(e *entry, kind Kind) int {
	if e.val.kind == KindPackedList || e.val.kind == kindLenDelim {
		return len(o.decodedElems(e, kind))
	}
	return 1
}

// elementAt returns the j'th scalar element (of kind) contributed by entry
// e, per elementCount's flattening.
func (o *Object) elementAt(e *entry, kind Kind, j int) uint64 {
	if e.val.kind == KindPackedList || e.val.kind == kindLenDelim {
		return o.decodedElems(e, kind)[j]
	}
	return e.val.u
}

// decodedElems lazily decodes and caches a packed-scalar payload's elements
// under the interpretation kind. A kindLenDelim entry is reinterpreted as a
// packed list of kind on first such call; a KindPackedList entry is decoded
// once regardless of how many times it's read.
func (o *Object) decodedElems(e *entry, kind Kind) []uint64 {
	if e.val.elems != nil && e.val.elem == kind {
		return e.val.elems
	}
	elems := decodePacked(e.val.b, kind)
	e.val.elems = elems
	e.val.elem = kind
	return elems
}

// scalarCount reports the number of elements reachable for field id under
// the scalar interpretation kind, flattening singular and packed/list
// occurrences uniformly.
func (o *Object) scalarCount(id FieldID, kind Kind) int {
	n := 0
	o.chain(id, func(idx int32) bool {
		n += o.elementCount(&o.entries[idx], kind)
		return true
	})
	return n
}

// scalarIndex returns the bit pattern of the i'th element reachable for
// field id under kind, across all of that field's occurrences in order.
func (o *Object) scalarIndex(id FieldID, kind Kind, i int) (uint64, bool) {
	var found uint64
	var ok bool
	remaining := i
	o.chain(id, func(idx int32) bool {
		e := &o.entries[idx]
		n := o.elementCount(e, kind)
		if remaining < n {
			found = o.elementAt(e, kind, remaining)
			ok = true
			return false
		}
		remaining -= n
		return true
	})
	return found, ok
}

// scalarGetList flattens every element reachable for field id under kind
// into a single slice, in occurrence order.
func (o *Object) scalarGetList(id FieldID, kind Kind) []uint64 {
	out := make([]uint64, 0, o.scalarCount(id, kind))
	o.chain(id, func(idx int32) bool {
		e := &o.entries[idx]
		n := o.elementCount(e, kind)
		for j := 0; j < n; j++ {
			out = append(out, o.elementAt(e, kind, j))
		}
		return true
	})
	return out
}

// ClearField tombstones every current occurrence of field id on this
// Object. A subsequent Add* call starts a fresh occurrence chain for id.
func (o *Object) ClearField(id FieldID) {
	o.touch()
	o.chain(id, func(idx int32) bool {
		o.entries[idx].dead = true
		return true
	})
	delete(o.heads, id)
	delete(o.tails, id)
}

// Clear tombstones every field on this Object.
func (o *Object) Clear() {
	o.touch()
	for id := range o.heads {
		o.ClearField(id)
	}
}

// GetUniqueFieldIdCount reports the number of distinct field IDs with at
// least one live occurrence on this Object.
func (o *Object) GetUniqueFieldIdCount() int {
	return len(o.heads)
}

// GetUniqueFieldIds returns the distinct field IDs with at least one live
// occurrence on this Object, sorted ascending.
func (o *Object) GetUniqueFieldIds() []FieldID {
	ids := make([]FieldID, 0, len(o.heads))
	for id := range o.heads {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// emptyChild returns the canonical empty Object used as the result of
// GetObject/IndexObject when field id has no live occurrence, memoized so
// repeated calls for the same absent field id observe the same instance.
func (o *Object) emptyChild(id FieldID) *Object {
	if o.emptyChildren == nil {
		o.emptyChildren = make(map[FieldID]*Object)
	}
	if child, ok := o.emptyChildren[id]; ok {
		return child
	}
	child := newObject(o.root, o.depth+1)
	o.emptyChildren[id] = child
	return child
}

// ShallowCopy copies every field of src onto o, field ID for field ID.
// Object-valued fields are copied by reference to the same child Object,
// not deep-copied. A no-op if src == o, or if src and o do not share a
// Root — the root-identity check exists precisely to prevent a copied
// bytes-view or child Object from dangling past its owning arena's
// lifetime.
func (o *Object) ShallowCopy(src *Object) {
	o.touch()
	if !o.shareRootWith(src) {
		return
	}
	for _, id := range src.GetUniqueFieldIds() {
		o.ShallowCopyField(id, src)
	}
}

// ShallowCopyField copies field id from src onto o; a no-op if o and src
// are the same Object or do not share a Root.
func (o *Object) ShallowCopyField(id FieldID, src *Object) {
	o.touch()
	if !o.shareRootWith(src) {
		return
	}
	src.chain(id, func(idx int32) bool {
		o.add(id, src.entries[idx].val)
		return true
	})
}

// shareRootWith reports whether o and src are distinct Objects sharing
// the same Root, i.e. whether a copy between them is permitted at all.
func (o *Object) shareRootWith(src *Object) bool {
	return src != o && src.root == o.root
}
