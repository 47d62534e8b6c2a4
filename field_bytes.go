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

// AddBytes copies data into this Object's Root's arena and appends the
// copy as a new occurrence of field id, so a caller mutating its own data
// slice afterwards cannot observe any change in what was stored.
func (o *Object) AddBytes(id FieldID, data []byte) {
	o.add(id, value{kind: KindBytes, b: o.root.AllocateBuffer(data)})
}

// GetBytesCount reports the number of occurrences of field id that can be
// read as a byte view (KindBytes or not-yet-disambiguated kindLenDelim
// entries).
func (o *Object) GetBytesCount(id FieldID) int {
	n := 0
	o.chain(id, func(idx int32) bool {
		switch o.entries[idx].val.kind {
		case KindBytes, kindLenDelim:
			n++
		}
		return true
	})
	return n
}

// GetBytes returns the last occurrence of field id read as bytes, or nil
// if there is none. The returned slice aliases library-owned memory and
// must not be retained past the owning Root's Free call.
func (o *Object) GetBytes(id FieldID) []byte {
	b, _ := o.IndexBytes(id, o.GetBytesCount(id)-1)
	return b
}

// IndexBytes returns the i'th occurrence of field id read as bytes.
func (o *Object) IndexBytes(id FieldID, i int) ([]byte, bool) {
	var found []byte
	var ok bool
	idx := 0
	o.chain(id, func(eidx int32) bool {
		v := &o.entries[eidx].val
		switch v.kind {
		case KindBytes, kindLenDelim:
		default:
			return true
		}
		if idx != i {
			idx++
			return true
		}
		found, ok = v.b, true
		return false
	})
	return found, ok
}

// GetBytesLength is a shortcut for len(GetBytes(id)), avoiding the need
// for a caller that only wants a size to materialize the slice header.
func (o *Object) GetBytesLength(id FieldID) int {
	return len(o.GetBytes(id))
}

// IndexBytesLength is the Index-flavored counterpart of GetBytesLength.
func (o *Object) IndexBytesLength(id FieldID, i int) (int, bool) {
	b, ok := o.IndexBytes(id, i)
	return len(b), ok
}
