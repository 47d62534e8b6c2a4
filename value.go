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

// value is the payload half of an entry. Every fixed-width scalar kind
// (including the zig-zag ones, which store their already-zig-zag-encoded
// bit pattern) keeps its bits in u, regardless of whether it arrived via an
// Add* call or via MergeFromBuffer — this makes re-serializing a merged
// entry trivial, since u is always wire-ready.
type value struct {
	kind Kind
	elem Kind // element kind for KindPackedList, or the kind elems was last decoded as for kindLenDelim; kindInvalid otherwise

	u uint64 // raw bit pattern for any fixed-width scalar kind
	b []byte // bytes-view / packed-list payload / not-yet-parsed len-delim payload

	obj *Object // KindObject: always set; kindLenDelim: populated lazily by GetObject

	elems []uint64 // lazily decoded packed-scalar elements, cached on first read
}
