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
	"github.com/google/uuid"

	"github.com/bufbuild/dynschema/internal/arena"
	"github.com/bufbuild/dynschema/internal/dlog"
)

// RootKind identifies which of the four payload shapes a Root carries.
type RootKind uint8

const (
	rootInvalid RootKind = iota
	RootCommandRequest
	RootCommandResponse
	RootComponentData
	RootComponentUpdate
)

func (k RootKind) String() string {
	switch k {
	case RootCommandRequest:
		return "CommandRequest"
	case RootCommandResponse:
		return "CommandResponse"
	case RootComponentData:
		return "ComponentData"
	case RootComponentUpdate:
		return "ComponentUpdate"
	default:
		return "Invalid"
	}
}

// Root owns one top-level payload. Every kind shares an arena, a
// last-error slot, and a top-level fields Object; a ComponentUpdate
// additionally carries an events Object (each event modeled as a repeated
// field keyed by its 1-based position) and a cleared-field list.
//
// componentID and commandIndex are header-only metadata: CommandRequest
// and CommandResponse never encode them into the serialized Object tree,
// matching the surrounding RPC layer's own framing of that metadata.
//
// A Root and everything reachable from it (Objects, byte slices) is only
// safe for use by one goroutine at a time; distinct Roots have no shared
// mutable state and may be used concurrently without synchronization.
type Root struct {
	kind RootKind

	componentID  FieldID
	commandIndex uint32

	fields  *Object
	events  *Object           // only set when kind == RootComponentUpdate
	cleared *ClearedFieldList // only set when kind == RootComponentUpdate

	arena   arena.Arena
	lastErr string
	traceID uuid.UUID
	freed   bool
}

func newRoot(kind RootKind, componentID FieldID) *Root {
	r := &Root{kind: kind, componentID: componentID, traceID: uuid.New()}
	r.fields = newObject(r, 0)
	if kind == RootComponentUpdate {
		r.events = newObject(r, 0)
		r.cleared = newClearedFieldList()
	}
	dlog.Trace("new root", dlog.F("kind", kind.String()), dlog.F("trace_id", r.traceID.String()))
	return r
}

// NewCommandRequest allocates a Root carrying a command request payload
// addressed to componentID/commandIndex (1-based within the component).
func NewCommandRequest(componentID FieldID, commandIndex uint32) *Root {
	r := newRoot(RootCommandRequest, componentID)
	r.commandIndex = commandIndex
	return r
}

// NewCommandResponse allocates a Root carrying a command response payload
// addressed to componentID/commandIndex (1-based within the component).
func NewCommandResponse(componentID FieldID, commandIndex uint32) *Root {
	r := newRoot(RootCommandResponse, componentID)
	r.commandIndex = commandIndex
	return r
}

// NewComponentData allocates a Root carrying full component state for
// componentID.
func NewComponentData(componentID FieldID) *Root {
	return newRoot(RootComponentData, componentID)
}

// NewComponentUpdate allocates a Root carrying a partial component update
// for componentID, with an empty events Object and cleared-field list.
func NewComponentUpdate(componentID FieldID) *Root {
	return newRoot(RootComponentUpdate, componentID)
}

// Kind reports which of the four payload shapes this Root carries.
func (r *Root) Kind() RootKind { return r.kind }

// ComponentID returns the component ID this Root's payload addresses.
func (r *Root) ComponentID() FieldID { return r.componentID }

// CommandIndex returns the 1-based command index addressed by a
// CommandRequest or CommandResponse Root, and false for any other kind.
func (r *Root) CommandIndex() (uint32, bool) {
	if r.kind != RootCommandRequest && r.kind != RootCommandResponse {
		return 0, false
	}
	return r.commandIndex, true
}

// Object returns the Root's top-level fields Object: the single Object
// for CommandRequest/CommandResponse/ComponentData, and the non-event
// fields Object for ComponentUpdate.
func (r *Root) Object() *Object { return r.fields }

// Events returns this Root's event-fields Object, or nil if Kind is not
// RootComponentUpdate.
func (r *Root) Events() *Object { return r.events }

// ClearedFields returns this Root's cleared-field list, or nil if Kind is
// not RootComponentUpdate.
func (r *Root) ClearedFields() *ClearedFieldList { return r.cleared }

// LastError returns a description of the most recent decode or allocation
// failure observed by this Root, or "" if none occurred.
func (r *Root) LastError() string { return r.lastErr }

func (r *Root) setError(err error) error {
	if err != nil {
		r.lastErr = err.Error()
		dlog.Trace("root error", dlog.F("trace_id", r.traceID.String()), dlog.F("error", r.lastErr))
	}
	return err
}

// Free releases this Root's arena-backed memory. Any []byte previously
// handed out by GetBytes/IndexBytes on this Root's tree must not be used
// after Free; Object/field accessors become invalid too.
func (r *Root) Free() {
	r.freed = true
	r.fields = nil
	r.events = nil
	r.arena = arena.Arena{}
}

// AllocateObject allocates a fresh, orphan Object backed by this Root's
// arena-tracked lifetime, for callers assembling a subtree before
// attaching it with ShallowCopy.
func (r *Root) AllocateObject() *Object {
	return newObject(r, 0)
}

// AllocateBuffer copies src into this Root's arena and returns the
// library-owned copy, so that a caller mutating its own src slice
// afterwards cannot observe any change in what this Root stored.
func (r *Root) AllocateBuffer(src []byte) []byte {
	if len(src) == 0 {
		return nil
	}
	buf := r.arena.Alloc(len(src))
	copy(buf, src)
	return buf
}

// TraceID returns a per-Root identifier included in debug trace output,
// useful for correlating log lines across many concurrently-used Roots
// (e.g. a relay forwarding a command request through to its response).
func (r *Root) TraceID() uuid.UUID { return r.traceID }

// Serialize encodes this Root's top-level fields Object to protobuf wire
// format. For a ComponentUpdate, the events Object and cleared-field list
// are carried and serialized independently (Events().Serialize(),
// ClearedFields()), matching the original header's "each handled
// separately by the surrounding RPC layer" framing.
func (r *Root) Serialize() []byte {
	return r.fields.Serialize()
}

// MergeFromBuffer parses buf as protobuf wire format and merges its
// fields into this Root's top-level fields Object, returning an error —
// also recorded in LastError — on malformed input.
func (r *Root) MergeFromBuffer(buf []byte) error {
	return r.fields.MergeFromBuffer(buf)
}
