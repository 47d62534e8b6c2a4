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

func TestAppendOrdering(t *testing.T) {
	t.Parallel()
	root := dynschema.NewComponentData(1)
	obj := root.Object()

	obj.AddInt32(5, 1)
	obj.AddInt32(5, 2)
	obj.AddInt32(5, 3)

	require.Equal(t, 3, obj.GetInt32Count(5))
	require.Equal(t, []int32{1, 2, 3}, obj.GetInt32List(5))
	v, ok := obj.IndexInt32(5, 1)
	require.True(t, ok)
	require.Equal(t, int32(2), v)
}

func TestSingularShortcut(t *testing.T) {
	t.Parallel()
	root := dynschema.NewComponentData(1)
	obj := root.Object()

	obj.AddBool(9, true)
	require.Equal(t, 1, obj.GetBoolCount(9))
	require.True(t, obj.GetBool(9))
}

func TestGetReturnsLastOccurrenceNotFirst(t *testing.T) {
	t.Parallel()
	root := dynschema.NewComponentData(1)
	obj := root.Object()

	// GetX(f) == IndexX(f, GetXCount(f)-1): overwriting a singular field by
	// calling AddX again must be observable through GetX.
	obj.AddInt32(1, 10)
	obj.AddInt32(1, 20)
	obj.AddInt32(1, 30)
	require.Equal(t, int32(30), obj.GetInt32(1))

	obj.AddBytes(2, []byte("first"))
	obj.AddBytes(2, []byte("second"))
	require.Equal(t, []byte("second"), obj.GetBytes(2))

	first := obj.AddObject(3)
	first.AddInt32(1, 1)
	second := obj.AddObject(3)
	second.AddInt32(1, 2)
	require.Same(t, second, obj.GetObject(3))
}

func TestPackedEquivalence(t *testing.T) {
	t.Parallel()

	singular := dynschema.NewComponentData(1).Object()
	singular.AddUint32(7, 10)
	singular.AddUint32(7, 20)
	singular.AddUint32(7, 30)

	packed := dynschema.NewComponentData(1).Object()
	packed.AddUint32List(7, []uint32{10, 20, 30})

	require.Equal(t, singular.GetUint32List(7), packed.GetUint32List(7))
	require.Equal(t, singular.GetUint32Count(7), packed.GetUint32Count(7))
}

func TestClearFieldAndClear(t *testing.T) {
	t.Parallel()
	root := dynschema.NewComponentData(1)
	obj := root.Object()

	obj.AddInt32(1, 1)
	obj.AddInt32(2, 2)
	obj.ClearField(1)
	require.Equal(t, 0, obj.GetInt32Count(1))
	require.Equal(t, 1, obj.GetInt32Count(2))

	// clear is idempotent
	obj.ClearField(1)
	require.Equal(t, 0, obj.GetInt32Count(1))

	obj.Clear()
	require.Equal(t, 0, obj.GetUniqueFieldIdCount())
}

func TestUniqueFieldIdsSorted(t *testing.T) {
	t.Parallel()
	root := dynschema.NewComponentData(1)
	obj := root.Object()

	obj.AddInt32(9, 1)
	obj.AddInt32(4, 1)
	obj.AddInt32(4, 2)
	obj.AddInt32(1, 1)

	require.Equal(t, 3, obj.GetUniqueFieldIdCount())
	require.Equal(t, []dynschema.FieldID{1, 4, 9}, obj.GetUniqueFieldIds())
}

func TestGetObjectAbsentIsCanonicalEmpty(t *testing.T) {
	t.Parallel()
	root := dynschema.NewComponentData(1)
	obj := root.Object()

	a := obj.GetObject(42)
	b := obj.GetObject(42)
	require.Same(t, a, b)
	require.Equal(t, 0, a.GetUniqueFieldIdCount())
}

func TestShallowCopySameRoot(t *testing.T) {
	t.Parallel()
	root := dynschema.NewComponentData(1)
	src := root.Object()
	src.AddInt32(1, 10)
	src.AddInt32(1, 20)

	dst := root.AllocateObject()
	dst.ShallowCopy(src)
	require.Equal(t, []int32{10, 20}, dst.GetInt32List(1))
}

func TestShallowCopyNoopAcrossRoots(t *testing.T) {
	t.Parallel()
	srcRoot := dynschema.NewComponentData(1)
	src := srcRoot.Object()
	src.AddInt32(1, 10)

	dstRoot := dynschema.NewComponentData(2)
	dst := dstRoot.Object()
	dst.ShallowCopy(src)

	require.Equal(t, 0, dst.GetInt32Count(1))
}

func TestShallowCopyNoopSameObject(t *testing.T) {
	t.Parallel()
	root := dynschema.NewComponentData(1)
	obj := root.Object()
	obj.AddInt32(1, 10)
	obj.ShallowCopy(obj)
	require.Equal(t, 1, obj.GetInt32Count(1))
}

func TestClearedFieldListPermitsDuplicates(t *testing.T) {
	t.Parallel()
	root := dynschema.NewComponentUpdate(1)
	cl := root.ClearedFields()

	cl.Add(4)
	cl.Add(9)
	cl.Add(4)

	require.Equal(t, 3, cl.Count())
	require.Equal(t, dynschema.FieldID(4), cl.Index(0))
	require.Equal(t, dynschema.FieldID(9), cl.Index(1))
	require.Equal(t, dynschema.FieldID(4), cl.Index(2))

	cl.Clear()
	require.Equal(t, 0, cl.Count())
}
