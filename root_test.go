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

func TestNewCommandRequestCarriesHeader(t *testing.T) {
	t.Parallel()
	root := dynschema.NewCommandRequest(7, 3)
	require.Equal(t, dynschema.RootCommandRequest, root.Kind())
	require.Equal(t, dynschema.FieldID(7), root.ComponentID())
	idx, ok := root.CommandIndex()
	require.True(t, ok)
	require.Equal(t, uint32(3), idx)
	require.Nil(t, root.Events())
	require.Nil(t, root.ClearedFields())
}

func TestNewCommandResponseCarriesHeader(t *testing.T) {
	t.Parallel()
	root := dynschema.NewCommandResponse(7, 3)
	require.Equal(t, dynschema.RootCommandResponse, root.Kind())
	idx, ok := root.CommandIndex()
	require.True(t, ok)
	require.Equal(t, uint32(3), idx)
}

func TestNewComponentDataHasNoCommandIndex(t *testing.T) {
	t.Parallel()
	root := dynschema.NewComponentData(5)
	require.Equal(t, dynschema.RootComponentData, root.Kind())
	_, ok := root.CommandIndex()
	require.False(t, ok)
	require.Nil(t, root.Events())
	require.Nil(t, root.ClearedFields())
}

func TestNewComponentUpdateHasEventsAndClearedFields(t *testing.T) {
	t.Parallel()
	root := dynschema.NewComponentUpdate(5)
	require.Equal(t, dynschema.RootComponentUpdate, root.Kind())
	require.NotNil(t, root.Events())
	require.NotNil(t, root.ClearedFields())

	root.Events().AddInt32(1, 99)
	require.Equal(t, int32(99), root.Events().GetInt32(1))

	// Events is a distinct Object from the top-level fields: Serialize
	// only walks the latter, so the event never leaks into it.
	root.Object().AddInt32(2, 1)
	merged := dynschema.NewComponentData(5)
	require.NoError(t, merged.Object().MergeFromBuffer(root.Serialize()))
	require.Equal(t, 0, merged.Object().GetInt32Count(1))
	require.Equal(t, int32(1), merged.Object().GetInt32(2))
}

func TestComponentUpdateClearedFieldsHaveNoWireForm(t *testing.T) {
	t.Parallel()
	root := dynschema.NewComponentUpdate(5)
	root.ClearedFields().Add(4)
	root.ClearedFields().Add(9)

	require.Empty(t, root.Serialize())
}

func TestLastErrorSetOnMalformedMerge(t *testing.T) {
	t.Parallel()
	root := dynschema.NewComponentData(1)
	require.Empty(t, root.LastError())

	err := root.MergeFromBuffer([]byte{0xFF})
	require.Error(t, err)
	require.NotEmpty(t, root.LastError())
}

func TestTraceIDsAreUniquePerRoot(t *testing.T) {
	t.Parallel()
	a := dynschema.NewComponentData(1)
	b := dynschema.NewComponentData(1)
	require.NotEqual(t, a.TraceID(), b.TraceID())
}

func TestAllocateBufferCopiesNotAliases(t *testing.T) {
	t.Parallel()
	root := dynschema.NewComponentData(1)
	src := []byte{1, 2, 3}
	got := root.AllocateBuffer(src)
	src[0] = 0xFF
	require.Equal(t, []byte{1, 2, 3}, got)
}

func TestFreeClearsObjects(t *testing.T) {
	t.Parallel()
	root := dynschema.NewComponentData(1)
	root.Free()
	require.Nil(t, root.Object())
}
