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

package dynschema_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bufbuild/dynschema"
)

func TestHandleCommandRequestLifecycle(t *testing.T) {
	t.Parallel()
	req := dynschema.Schema_CreateCommandRequest(1, 2)
	defer dynschema.Schema_DestroyCommandRequest(req)

	require.Equal(t, dynschema.FieldID(1), dynschema.Schema_GetCommandRequestComponentId(req))
	require.Equal(t, dynschema.FieldID(2), dynschema.Schema_GetCommandRequestCommandIndex(req))

	obj := dynschema.Schema_GetCommandRequestObject(req)
	dynschema.Schema_AddInt32(obj, 5, 42)
	require.Equal(t, int32(42), dynschema.Schema_GetInt32(obj, 5))
}

func TestHandleGetReturnsLastOccurrence(t *testing.T) {
	t.Parallel()
	handle := dynschema.Schema_CreateComponentData(1)
	defer dynschema.Schema_DestroyComponentData(handle)
	obj := dynschema.Schema_GetComponentDataFields(handle)

	dynschema.Schema_AddInt32(obj, 1, 10)
	dynschema.Schema_AddInt32(obj, 1, 20)
	require.Equal(t, int32(20), dynschema.Schema_GetInt32(obj, 1))
}

func TestHandleSerializeMatchesMethodAPI(t *testing.T) {
	t.Parallel()

	data := dynschema.NewComponentData(9)
	data.Object().AddInt32(1, 7)
	data.Object().AddBytes(2, []byte("x"))
	want := data.Object().Serialize()

	handle := dynschema.Schema_CreateComponentData(9)
	defer dynschema.Schema_DestroyComponentData(handle)
	obj := dynschema.Schema_GetComponentDataFields(handle)
	dynschema.Schema_AddInt32(obj, 1, 7)
	dynschema.Schema_AddBytes(obj, 2, []byte("x"))

	n := dynschema.Schema_GetWriteBufferLength(obj)
	buf := make([]byte, n)
	require.True(t, dynschema.Schema_WriteToBuffer(obj, buf))
	require.Equal(t, want, buf)
}

func TestHandleMergeFromBufferReturnsFalseOnError(t *testing.T) {
	t.Parallel()
	handle := dynschema.Schema_CreateComponentData(1)
	defer dynschema.Schema_DestroyComponentData(handle)
	obj := dynschema.Schema_GetComponentDataFields(handle)

	ok := dynschema.Schema_MergeFromBuffer(obj, []byte{0xFF})
	require.False(t, ok)
	require.NotEmpty(t, dynschema.Schema_GetLastError(obj))
}

func TestHandleComponentUpdateClearedFields(t *testing.T) {
	t.Parallel()
	handle := dynschema.Schema_CreateComponentUpdate(1)
	defer dynschema.Schema_DestroyComponentUpdate(handle)

	dynschema.Schema_AddComponentUpdateClearedField(handle, 4)
	dynschema.Schema_AddComponentUpdateClearedField(handle, 4)
	require.Equal(t, uint32(2), dynschema.Schema_GetComponentUpdateClearedFieldCount(handle))
	require.Equal(t, []dynschema.FieldID{4, 4}, dynschema.Schema_GetComponentUpdateClearedFieldList(handle))

	dynschema.Schema_ClearComponentUpdateClearedFields(handle)
	require.Equal(t, uint32(0), dynschema.Schema_GetComponentUpdateClearedFieldCount(handle))
}
