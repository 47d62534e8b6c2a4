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

// AddObject appends a new, empty child Object as an occurrence of field
// id and returns it for the caller to populate.
func (o *Object) AddObject(id FieldID) *Object {
	child := newObject(o.root, o.depth+1)
	o.add(id, value{kind: KindObject, obj: child})
	return child
}

// GetObjectCount reports the number of occurrences of field id that can be
// read as a child Object (KindObject entries, plus kindLenDelim entries,
// which resolve to an Object on first such read).
func (o *Object) GetObjectCount(id FieldID) int {
	n := 0
	o.chain(id, func(idx int32) bool {
		switch o.entries[idx].val.kind {
		case KindObject, kindLenDelim:
			n++
		}
		return true
	})
	return n
}

// GetObject returns the last occurrence of field id read as a child
// Object. If id has no live occurrence, it returns the canonical empty
// Object for (o, id), so a Get followed by a mutation on an absent field
// is never silently lost.
func (o *Object) GetObject(id FieldID) *Object {
	if child, ok := o.IndexObject(id, o.GetObjectCount(id)-1); ok {
		return child
	}
	return o.emptyChild(id)
}

// IndexObject returns the i'th occurrence of field id read as a child
// Object, resolving a kindLenDelim entry lazily and caching the result.
func (o *Object) IndexObject(id FieldID, i int) (*Object, bool) {
	var found *Object
	var ok bool
	idx := 0
	o.chain(id, func(eidx int32) bool {
		e := &o.entries[eidx]
		switch e.val.kind {
		case KindObject, kindLenDelim:
		default:
			return true
		}
		if idx != i {
			idx++
			return true
		}
		switch e.val.kind {
		case KindObject:
			found, ok = e.val.obj, true
		case kindLenDelim:
			if child, err := o.resolveObject(e); err == nil {
				found, ok = child, true
			}
		}
		return false
	})
	return found, ok
}
