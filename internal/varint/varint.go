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

// Package varint wraps protobuf-go's wire package for the varint,
// zig-zag, and fixed-width primitives the schema wire codec needs.
//
// There is no reason to hand-roll base-128 varint or zig-zag math: protobuf
// wire format is exactly what protowire implements, maintained by the team
// that owns the format.
package varint

import "google.golang.org/protobuf/encoding/protowire"

// Tag and wire-type re-exports, so callers of this package never need to
// import protowire directly.
type (
	// Number is a protobuf field number.
	Number = protowire.Number
	// Type is a protobuf wire type.
	Type = protowire.Type
)

const (
	VarintType  = protowire.VarintType
	Fixed32Type = protowire.Fixed32Type
	Fixed64Type = protowire.Fixed64Type
	BytesType   = protowire.BytesType
)

// AppendTag appends an encoded (field number, wire type) tag to dst.
func AppendTag(dst []byte, num Number, typ Type) []byte {
	return protowire.AppendTag(dst, num, typ)
}

// ConsumeTag parses an encoded tag from b, returning the number of bytes
// consumed, or a negative value on error (see protowire.ParseError).
func ConsumeTag(b []byte) (Number, Type, int) {
	return protowire.ConsumeTag(b)
}

// SizeTag returns the encoded size of a tag for the given field number.
func SizeTag(num Number) int {
	return protowire.SizeTag(num)
}

// AppendVarint appends a varint-encoded v to dst.
func AppendVarint(dst []byte, v uint64) []byte {
	return protowire.AppendVarint(dst, v)
}

// ConsumeVarint parses a varint from b.
func ConsumeVarint(b []byte) (uint64, int) {
	return protowire.ConsumeVarint(b)
}

// SizeVarint returns the encoded size of v as a varint.
func SizeVarint(v uint64) int {
	return protowire.SizeVarint(v)
}

// AppendFixed32 appends the 4-byte little-endian encoding of v to dst.
func AppendFixed32(dst []byte, v uint32) []byte {
	return protowire.AppendFixed32(dst, v)
}

// ConsumeFixed32 parses a 4-byte little-endian value from b.
func ConsumeFixed32(b []byte) (uint32, int) {
	return protowire.ConsumeFixed32(b)
}

// AppendFixed64 appends the 8-byte little-endian encoding of v to dst.
func AppendFixed64(dst []byte, v uint64) []byte {
	return protowire.AppendFixed64(dst, v)
}

// ConsumeFixed64 parses an 8-byte little-endian value from b.
func ConsumeFixed64(b []byte) (uint64, int) {
	return protowire.ConsumeFixed64(b)
}

// AppendBytes appends a length-prefixed copy of v to dst.
func AppendBytes(dst []byte, v []byte) []byte {
	return protowire.AppendBytes(dst, v)
}

// ConsumeBytes parses a length-prefixed byte string from b. The returned
// slice aliases b; it is never copied.
func ConsumeBytes(b []byte) ([]byte, int) {
	return protowire.ConsumeBytes(b)
}

// SizeBytes returns the encoded size of a length-prefixed string of n bytes.
func SizeBytes(n int) int {
	return protowire.SizeBytes(n)
}

// EncodeZigZag zig-zag encodes a signed 64-bit integer.
func EncodeZigZag(v int64) uint64 {
	return protowire.EncodeZigZag(v)
}

// DecodeZigZag zig-zag decodes a 64-bit value back to a signed integer.
func DecodeZigZag(v uint64) int64 {
	return protowire.DecodeZigZag(v)
}

// ParseError turns a negative "n" returned by a Consume* function into the
// error protowire associates with it.
func ParseError(n int) error {
	return protowire.ParseError(n)
}
