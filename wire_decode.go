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
	"github.com/bufbuild/dynschema/internal/dlog"
	"github.com/bufbuild/dynschema/internal/varint"
	"github.com/bufbuild/dynschema/internal/wireerr"
)

// MergeFromBuffer parses buf into o without clearing it first: every
// parsed field becomes an appended entry, so merging twice into the same
// Object yields a concatenation. buf is not copied; the caller must keep
// it alive for o's lifetime (Root.AllocateBuffer exists for callers that
// cannot otherwise guarantee that).
func (o *Object) MergeFromBuffer(buf []byte) error {
	if err := o.mergeFrom(buf); err != nil {
		if o.root != nil {
			o.root.setError(err)
		}
		return err
	}
	return nil
}

// mergeFrom parses buf as a flat sequence of protobuf fields and appends
// one entry per field occurrence to o. It never recurses into a
// length-delimited payload's own contents; those are stored verbatim as
// kindLenDelim and disambiguated lazily, the first time an accessor asks
// for them as bytes, an object, or a packed list.
func (o *Object) mergeFrom(buf []byte) error {
	o.touch()
	for len(buf) > 0 {
		num, typ, n := varint.ConsumeTag(buf)
		if n < 0 {
			return wireerr.FromConsume("ConsumeTag", n)
		}
		buf = buf[n:]
		if num == 0 {
			return wireerr.ErrFieldIDZero
		}

		var val value
		switch typ {
		case varint.VarintType:
			u, n := varint.ConsumeVarint(buf)
			if n < 0 {
				return wireerr.FromConsume("ConsumeVarint", n)
			}
			buf = buf[n:]
			val = value{kind: kindWireVarint, u: u}

		case varint.Fixed32Type:
			u, n := varint.ConsumeFixed32(buf)
			if n < 0 {
				return wireerr.FromConsume("ConsumeFixed32", n)
			}
			buf = buf[n:]
			val = value{kind: kindWireFixed32, u: uint64(u)}

		case varint.Fixed64Type:
			u, n := varint.ConsumeFixed64(buf)
			if n < 0 {
				return wireerr.FromConsume("ConsumeFixed64", n)
			}
			buf = buf[n:]
			val = value{kind: kindWireFixed64, u: u}

		case varint.BytesType:
			b, n := varint.ConsumeBytes(buf)
			if n < 0 {
				return wireerr.FromConsume("ConsumeBytes", n)
			}
			buf = buf[n:]
			val = value{kind: kindLenDelim, b: b}

		default:
			return wireerr.ErrReservedWire
		}

		o.add(FieldID(num), val)
		dlog.Trace("merge field", dlog.F("id", num), dlog.F("wiretype", int(typ)))
	}
	return nil
}

// resolveObject disambiguates a kindLenDelim entry as a nested Object,
// caching the result on the entry so repeated GetObject calls on the same
// occurrence see the same child. depth is the parent Object's depth; the
// child is rejected if that would exceed MaxNestingDepth.
func (o *Object) resolveObject(e *entry) (*Object, error) {
	if e.val.obj != nil {
		return e.val.obj, nil
	}
	if o.depth+1 > MaxNestingDepth {
		return nil, o.root.setError(wireerr.ErrNestingDepth)
	}
	child := newObject(o.root, o.depth+1)
	if err := child.mergeFrom(e.val.b); err != nil {
		return nil, o.root.setError(err)
	}
	e.val.obj = child
	e.val.kind = KindObject
	return child, nil
}

// decodePacked parses buf as a packed run of scalar elements of kind,
// returning each element's wire-ready bit pattern. An empty or malformed
// tail is simply dropped; MergeFromBuffer has already validated buf as a
// well-formed length-delimited payload, so only the packed-element framing
// itself can still be inconsistent with kind.
func decodePacked(buf []byte, kind Kind) []uint64 {
	var out []uint64
	switch kind.wireType() {
	case varint.Fixed32Type:
		for len(buf) >= 4 {
			u, n := varint.ConsumeFixed32(buf)
			if n < 0 {
				break
			}
			out = append(out, uint64(u))
			buf = buf[n:]
		}
	case varint.Fixed64Type:
		for len(buf) >= 8 {
			u, n := varint.ConsumeFixed64(buf)
			if n < 0 {
				break
			}
			out = append(out, u)
			buf = buf[n:]
		}
	default: // varint.VarintType
		for len(buf) > 0 {
			u, n := varint.ConsumeVarint(buf)
			if n < 0 {
				break
			}
			out = append(out, u)
			buf = buf[n:]
		}
	}
	return out
}
