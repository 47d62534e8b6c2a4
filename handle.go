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

// RootHandle and ObjectHandle reproduce the original C SDK's opaque
// handle pair (Schema_CommandRequest*/Schema_ComponentUpdate*/... and
// Schema_Object*) as thin Go wrapper structs, so a code generator ported
// from that SDK's Schema_* naming convention can target this library
// without renaming a single function. The method layer on *Root/*Object
// is the actual implementation; every function below is a direct
// pass-through.
//
// The zero value of either handle type is the documented "null" handle,
// and is never returned by a successful call.
type RootHandle struct{ root *Root }

type ObjectHandle struct{ obj *Object }

func (h RootHandle) valid() bool   { return h.root != nil }
func (h ObjectHandle) valid() bool { return h.obj != nil }

// Schema_CreateCommandRequest allocates a command request handle for
// component_id/command_index.
func Schema_CreateCommandRequest(componentID, commandIndex FieldID) RootHandle {
	return RootHandle{NewCommandRequest(componentID, commandIndex)}
}

// Schema_DestroyCommandRequest releases request's resources.
func Schema_DestroyCommandRequest(request RootHandle) {
	if request.valid() {
		request.root.Free()
	}
}

// Schema_GetCommandRequestComponentId returns request's component ID.
func Schema_GetCommandRequestComponentId(request RootHandle) FieldID {
	return request.root.ComponentID()
}

// Schema_GetCommandRequestCommandIndex returns request's command index.
func Schema_GetCommandRequestCommandIndex(request RootHandle) FieldID {
	idx, _ := request.root.CommandIndex()
	return idx
}

// Schema_GetCommandRequestObject returns request's fields object.
func Schema_GetCommandRequestObject(request RootHandle) ObjectHandle {
	return ObjectHandle{request.root.Object()}
}

// Schema_CreateCommandResponse allocates a command response handle for
// component_id/command_index.
func Schema_CreateCommandResponse(componentID, commandIndex FieldID) RootHandle {
	return RootHandle{NewCommandResponse(componentID, commandIndex)}
}

// Schema_DestroyCommandResponse releases response's resources.
func Schema_DestroyCommandResponse(response RootHandle) {
	if response.valid() {
		response.root.Free()
	}
}

// Schema_GetCommandResponseComponentId returns response's component ID.
func Schema_GetCommandResponseComponentId(response RootHandle) FieldID {
	return response.root.ComponentID()
}

// Schema_GetCommandResponseCommandIndex returns response's command index.
func Schema_GetCommandResponseCommandIndex(response RootHandle) FieldID {
	idx, _ := response.root.CommandIndex()
	return idx
}

// Schema_GetCommandResponseObject returns response's fields object.
func Schema_GetCommandResponseObject(response RootHandle) ObjectHandle {
	return ObjectHandle{response.root.Object()}
}

// Schema_CreateComponentData allocates a component data snapshot handle.
func Schema_CreateComponentData(componentID FieldID) RootHandle {
	return RootHandle{NewComponentData(componentID)}
}

// Schema_DestroyComponentData releases data's resources.
func Schema_DestroyComponentData(data RootHandle) {
	if data.valid() {
		data.root.Free()
	}
}

// Schema_GetComponentDataComponentId returns data's component ID.
func Schema_GetComponentDataComponentId(data RootHandle) FieldID {
	return data.root.ComponentID()
}

// Schema_GetComponentDataFields returns data's fields object.
func Schema_GetComponentDataFields(data RootHandle) ObjectHandle {
	return ObjectHandle{data.root.Object()}
}

// Schema_CreateComponentUpdate allocates a component update handle.
func Schema_CreateComponentUpdate(componentID FieldID) RootHandle {
	return RootHandle{NewComponentUpdate(componentID)}
}

// Schema_DestroyComponentUpdate releases update's resources.
func Schema_DestroyComponentUpdate(update RootHandle) {
	if update.valid() {
		update.root.Free()
	}
}

// Schema_GetComponentUpdateComponentId returns update's component ID.
func Schema_GetComponentUpdateComponentId(update RootHandle) FieldID {
	return update.root.ComponentID()
}

// Schema_GetComponentUpdateFields returns update's non-event fields object.
func Schema_GetComponentUpdateFields(update RootHandle) ObjectHandle {
	return ObjectHandle{update.root.Object()}
}

// Schema_GetComponentUpdateEvents returns update's event fields object.
func Schema_GetComponentUpdateEvents(update RootHandle) ObjectHandle {
	return ObjectHandle{update.root.Events()}
}

// Schema_ClearComponentUpdateClearedFields empties update's cleared-field
// list.
func Schema_ClearComponentUpdateClearedFields(update RootHandle) {
	update.root.ClearedFields().Clear()
}

// Schema_AddComponentUpdateClearedField marks field_id as reset to empty
// by update.
func Schema_AddComponentUpdateClearedField(update RootHandle, fieldID FieldID) {
	update.root.ClearedFields().Add(fieldID)
}

// Schema_GetComponentUpdateClearedFieldCount returns the number of
// cleared-field entries on update, including duplicates.
func Schema_GetComponentUpdateClearedFieldCount(update RootHandle) uint32 {
	return uint32(update.root.ClearedFields().Count())
}

// Schema_IndexComponentUpdateClearedField returns the index'th
// cleared-field entry on update.
func Schema_IndexComponentUpdateClearedField(update RootHandle, index uint32) FieldID {
	return update.root.ClearedFields().Index(int(index))
}

// Schema_GetComponentUpdateClearedFieldList returns every cleared-field
// entry on update, in insertion order.
func Schema_GetComponentUpdateClearedFieldList(update RootHandle) []FieldID {
	return update.root.ClearedFields().GetList()
}

// Schema_Clear clears every field on object.
func Schema_Clear(object ObjectHandle) { object.obj.Clear() }

// Schema_ClearField clears field_id on object.
func Schema_ClearField(object ObjectHandle, fieldID FieldID) { object.obj.ClearField(fieldID) }

// Schema_ShallowCopy copies every field of src onto dst.
func Schema_ShallowCopy(src, dst ObjectHandle) { dst.obj.ShallowCopy(src.obj) }

// Schema_ShallowCopyField copies field_id from src onto dst.
func Schema_ShallowCopyField(src, dst ObjectHandle, fieldID FieldID) {
	dst.obj.ShallowCopyField(fieldID, src.obj)
}

// Schema_AllocateObject allocates an orphan object owned by object's root.
func Schema_AllocateObject(object ObjectHandle) ObjectHandle {
	return ObjectHandle{object.obj.root.AllocateObject()}
}

// Schema_AllocateBuffer allocates a length-byte buffer from object's
// root's arena.
func Schema_AllocateBuffer(object ObjectHandle, length uint32) []byte {
	return object.obj.root.arena.Alloc(int(length))
}

// Schema_MergeFromBuffer merges buffer into object, appending every
// parsed field. Returns false (and sets the root's last error) on
// malformed input.
func Schema_MergeFromBuffer(object ObjectHandle, buffer []byte) bool {
	return object.obj.MergeFromBuffer(buffer) == nil
}

// Schema_GetWriteBufferLength computes object's serialized length.
func Schema_GetWriteBufferLength(object ObjectHandle) uint32 {
	return uint32(object.obj.encodedLen())
}

// Schema_WriteToBuffer serializes object into buffer, which must have at
// least Schema_GetWriteBufferLength(object) bytes of space.
func Schema_WriteToBuffer(object ObjectHandle, buffer []byte) bool {
	out := object.obj.appendTo(buffer[:0])
	return len(out) <= cap(buffer)
}

// Schema_GetUniqueFieldIdCount returns the number of distinct field IDs
// used in object.
func Schema_GetUniqueFieldIdCount(object ObjectHandle) uint32 {
	return uint32(object.obj.GetUniqueFieldIdCount())
}

// Schema_GetUniqueFieldIds returns the sorted list of distinct field IDs
// used in object.
func Schema_GetUniqueFieldIds(object ObjectHandle) []FieldID {
	return object.obj.GetUniqueFieldIds()
}

// Schema_GetLastError returns the most recent decode/allocation failure
// observed by object's root.
func Schema_GetLastError(object ObjectHandle) string {
	return object.obj.root.LastError()
}

// Schema_AddObject appends a new child object occurrence for field_id.
func Schema_AddObject(object ObjectHandle, fieldID FieldID) ObjectHandle {
	return ObjectHandle{object.obj.AddObject(fieldID)}
}

// Schema_GetObjectCount returns the number of object occurrences of
// field_id.
func Schema_GetObjectCount(object ObjectHandle, fieldID FieldID) uint32 {
	return uint32(object.obj.GetObjectCount(fieldID))
}

// Schema_GetObject returns the last occurrence of field_id as an object.
func Schema_GetObject(object ObjectHandle, fieldID FieldID) ObjectHandle {
	return ObjectHandle{object.obj.GetObject(fieldID)}
}

// Schema_IndexObject returns the index'th occurrence of field_id as an
// object.
func Schema_IndexObject(object ObjectHandle, fieldID FieldID, index uint32) ObjectHandle {
	child, _ := object.obj.IndexObject(fieldID, int(index))
	return ObjectHandle{child}
}

// Schema_AddBytes appends a copy of buffer as a new occurrence of field_id.
func Schema_AddBytes(object ObjectHandle, fieldID FieldID, buffer []byte) {
	object.obj.AddBytes(fieldID, buffer)
}

// Schema_GetBytesCount returns the number of byte-view occurrences of
// field_id.
func Schema_GetBytesCount(object ObjectHandle, fieldID FieldID) uint32 {
	return uint32(object.obj.GetBytesCount(fieldID))
}

// Schema_GetBytesLength returns the length of field_id's last occurrence
// read as bytes.
func Schema_GetBytesLength(object ObjectHandle, fieldID FieldID) uint32 {
	return uint32(object.obj.GetBytesLength(fieldID))
}

// Schema_GetBytes returns field_id's last occurrence read as bytes.
func Schema_GetBytes(object ObjectHandle, fieldID FieldID) []byte {
	return object.obj.GetBytes(fieldID)
}

// Schema_IndexBytesLength returns the length of field_id's index'th
// occurrence read as bytes.
func Schema_IndexBytesLength(object ObjectHandle, fieldID FieldID, index uint32) uint32 {
	n, _ := object.obj.IndexBytesLength(fieldID, int(index))
	return uint32(n)
}

// Schema_IndexBytes returns field_id's index'th occurrence read as bytes.
func Schema_IndexBytes(object ObjectHandle, fieldID FieldID, index uint32) []byte {
	b, _ := object.obj.IndexBytes(fieldID, int(index))
	return b
}
