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

// Package dynschema is a dynamic schema object library: an in-memory tree
// of typed, repeatable fields keyed by small integer IDs, plus a
// protobuf-wire-format-compatible codec, for peers whose message shape is
// known only to the caller and never to this library.
//
// It is the data-plane substrate of a distributed entity-component system:
// four root payload kinds (CommandRequest, CommandResponse, ComponentData,
// ComponentUpdate) each wrap one or more Objects, an arena, and a last-error
// slot. An Object is an ordered multimap from field ID to a sequence of
// typed values; the same field ID added more than once is how repeated
// fields are built, and a single AddXList call is the efficient way to add
// many values for one field ID at once.
//
// This package does not validate that callers read and write a field
// consistently with the type the schema (external to this library) assigns
// it; it trusts its caller, typically a generated accessor layer.
//
// The idiomatic Go surface lives on *Root and *Object. A flat,
// handle-based adapter matching the original C SDK's Schema_* naming
// convention lives in handle.go, for code generators targeting that
// convention directly.
package dynschema
