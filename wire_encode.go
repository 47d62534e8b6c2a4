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

import "github.com/bufbuild/dynschema/internal/varint"

// Serialize encodes o to protobuf wire format in a two-pass length-then-
// write sequence, matching the original header's GetWriteBufferLength/
// WriteToBuffer split (here fused into one call for the idiomatic Go
// surface; handle.go's flat API exposes the two passes separately).
func (o *Object) Serialize() []byte {
	buf := make([]byte, 0, o.encodedLen())
	return o.appendTo(buf)
}

// encodedLen returns the number of bytes serialize would write for o,
// including every live entry's tag and payload. It is a pure size pass:
// no allocation, no mutation, safe to call any number of times.
func (o *Object) encodedLen() int {
	n := 0
	for i := range o.entries {
		e := &o.entries[i]
		if e.dead {
			continue
		}
		n += entryEncodedLen(e)
	}
	return n
}

func entryEncodedLen(e *entry) int {
	n := varint.SizeTag(varint.Number(e.id))
	switch e.val.kind {
	case KindObject:
		inner := e.val.obj.encodedLen()
		n += varint.SizeVarint(uint64(inner)) + inner
	case KindBytes, kindLenDelim:
		n += varint.SizeBytes(len(e.val.b))
	case KindPackedList:
		inner := packedEncodedLen(e.val.elem, e.val.elems)
		n += varint.SizeVarint(uint64(inner)) + inner
	default:
		n += scalarEncodedLen(e.val.kind, e.val.u)
	}
	return n
}

func scalarEncodedLen(kind Kind, u uint64) int {
	switch kind.wireType() {
	case varint.Fixed32Type:
		return 4
	case varint.Fixed64Type:
		return 8
	default:
		return varint.SizeVarint(u)
	}
}

func packedEncodedLen(elem Kind, elems []uint64) int {
	n := 0
	switch elem.wireType() {
	case varint.Fixed32Type:
		n = 4 * len(elems)
	case varint.Fixed64Type:
		n = 8 * len(elems)
	default:
		for _, u := range elems {
			n += varint.SizeVarint(u)
		}
	}
	return n
}

// appendTo appends o's wire encoding to dst and returns the extended
// slice, in entry (append) order. Tombstoned entries are skipped.
func (o *Object) appendTo(dst []byte) []byte {
	for i := range o.entries {
		e := &o.entries[i]
		if e.dead {
			continue
		}
		dst = appendEntry(dst, e)
	}
	return dst
}

func appendEntry(dst []byte, e *entry) []byte {
	dst = varint.AppendTag(dst, varint.Number(e.id), e.val.kind.wireType())
	switch e.val.kind {
	case KindObject:
		inner := e.val.obj.encodedLen()
		dst = varint.AppendVarint(dst, uint64(inner))
		dst = e.val.obj.appendTo(dst)
	case KindBytes, kindLenDelim:
		dst = varint.AppendBytes(dst, e.val.b)
	case KindPackedList:
		inner := packedEncodedLen(e.val.elem, e.val.elems)
		dst = varint.AppendVarint(dst, uint64(inner))
		dst = appendPacked(dst, e.val.elem, e.val.elems)
	default:
		dst = appendScalar(dst, e.val.kind, e.val.u)
	}
	return dst
}

func appendScalar(dst []byte, kind Kind, u uint64) []byte {
	switch kind.wireType() {
	case varint.Fixed32Type:
		return varint.AppendFixed32(dst, uint32(u))
	case varint.Fixed64Type:
		return varint.AppendFixed64(dst, u)
	default:
		return varint.AppendVarint(dst, u)
	}
}

func appendPacked(dst []byte, elem Kind, elems []uint64) []byte {
	for _, u := range elems {
		dst = appendScalar(dst, elem, u)
	}
	return dst
}
