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

// Kind identifies how a single field-store entry's bits should be
// interpreted. The first group below is reachable through an Add* call and
// is semantically precise; the second group is produced only by
// MergeFromBuffer, which knows a value's wire shape but not — until an
// accessor disambiguates it — its schema type.
type Kind uint8

const (
	kindInvalid Kind = iota

	KindFloat
	KindDouble
	KindBool
	KindInt32
	KindInt64
	KindUint32
	KindUint64
	KindSint32
	KindSint64
	KindFixed32
	KindFixed64
	KindSfixed32
	KindSfixed64
	KindEntityID
	KindEnum
	KindBytes
	KindObject
	KindPackedList

	// kindWireVarint, kindWireFixed32, and kindWireFixed64 mark a value that
	// arrived off the wire as that width but whose semantic scalar type is
	// not yet known; the raw bits in value.u are valid under any scalar
	// interpretation of that width, so no conversion happens until an
	// accessor asks for a specific type.
	kindWireVarint
	kindWireFixed32
	kindWireFixed64

	// kindLenDelim marks a length-delimited payload parsed off the wire
	// whose meaning (bytes / object / packed list) has not yet been chosen
	// by the caller. See Object.resolveObject in wire_decode.go and
	// Object.decodedElems in object.go.
	kindLenDelim
)

// wireType returns the protobuf wire type used to encode a value of this
// kind.
func (k Kind) wireType() varint.Type {
	switch k {
	case KindFloat, KindFixed32, KindSfixed32, kindWireFixed32:
		return varint.Fixed32Type
	case KindDouble, KindFixed64, KindSfixed64, kindWireFixed64:
		return varint.Fixed64Type
	case KindBytes, KindObject, KindPackedList, kindLenDelim:
		return varint.BytesType
	default:
		return varint.VarintType
	}
}

// isLenDelim reports whether k is stored as a length-delimited payload,
// i.e. it needs a tag+length wrapper on the wire rather than a fixed number
// of inline bytes.
func (k Kind) isLenDelim() bool {
	return k.wireType() == varint.BytesType
}
