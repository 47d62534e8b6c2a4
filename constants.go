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

// FieldID is a caller-assigned field identifier; it doubles as the
// protobuf field number on the wire. Field ID 0 is reserved and invalid.
type FieldID = uint32

// EntityID is a signed 64-bit entity identifier, layered on the int64 wire
// type.
type EntityID int64

const (
	// SchemaMapKeyFieldID is the reserved field ID for the key of a
	// caller-convention map entry (an Object with exactly two fields).
	SchemaMapKeyFieldID FieldID = 1
	// SchemaMapValueFieldID is the reserved field ID for the value of a
	// caller-convention map entry.
	SchemaMapValueFieldID FieldID = 2
)

// MaxNestingDepth is the recursion limit enforced when lazily resolving a
// length-delimited payload as a nested Object.
const MaxNestingDepth = 100
