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
	"math"

	"github.com/bufbuild/dynschema/internal/varint"
)

// Every scalar accessor below follows the same three-method shape: AddX
// appends one occurrence, GetXCount/GetX/IndexX read back the flattened
// view across all occurrences (singular and packed alike), and AddXList
// appends one packed occurrence holding many elements at once. The bit
// conversions are where the types actually differ; value.u always holds
// the wire-ready pattern described in value.go regardless of which AddX
// call produced it or whether MergeFromBuffer did.

// Float

func (o *Object) AddFloat(id FieldID, v float32) {
	o.add(id, value{kind: KindFloat, u: uint64(math.Float32bits(v))})
}

func (o *Object) AddFloatList(id FieldID, vs []float32) {
	elems := make([]uint64, len(vs))
	for i, v := range vs {
		elems[i] = uint64(math.Float32bits(v))
	}
	o.add(id, value{kind: KindPackedList, elem: KindFloat, elems: elems})
}

func (o *Object) GetFloatCount(id FieldID) int { return o.scalarCount(id, KindFloat) }

func (o *Object) GetFloat(id FieldID) float32 {
	v, _ := o.IndexFloat(id, o.GetFloatCount(id)-1)
	return v
}

func (o *Object) IndexFloat(id FieldID, i int) (float32, bool) {
	u, ok := o.scalarIndex(id, KindFloat, i)
	return math.Float32frombits(uint32(u)), ok
}

func (o *Object) GetFloatList(id FieldID) []float32 {
	us := o.scalarGetList(id, KindFloat)
	out := make([]float32, len(us))
	for i, u := range us {
		out[i] = math.Float32frombits(uint32(u))
	}
	return out
}

// Double

func (o *Object) AddDouble(id FieldID, v float64) {
	o.add(id, value{kind: KindDouble, u: math.Float64bits(v)})
}

func (o *Object) AddDoubleList(id FieldID, vs []float64) {
	elems := make([]uint64, len(vs))
	for i, v := range vs {
		elems[i] = math.Float64bits(v)
	}
	o.add(id, value{kind: KindPackedList, elem: KindDouble, elems: elems})
}

func (o *Object) GetDoubleCount(id FieldID) int { return o.scalarCount(id, KindDouble) }

func (o *Object) GetDouble(id FieldID) float64 {
	v, _ := o.IndexDouble(id, o.GetDoubleCount(id)-1)
	return v
}

func (o *Object) IndexDouble(id FieldID, i int) (float64, bool) {
	u, ok := o.scalarIndex(id, KindDouble, i)
	return math.Float64frombits(u), ok
}

func (o *Object) GetDoubleList(id FieldID) []float64 {
	us := o.scalarGetList(id, KindDouble)
	out := make([]float64, len(us))
	for i, u := range us {
		out[i] = math.Float64frombits(u)
	}
	return out
}

// Bool

func (o *Object) AddBool(id FieldID, v bool) {
	o.add(id, value{kind: KindBool, u: boolToU(v)})
}

func (o *Object) AddBoolList(id FieldID, vs []bool) {
	elems := make([]uint64, len(vs))
	for i, v := range vs {
		elems[i] = boolToU(v)
	}
	o.add(id, value{kind: KindPackedList, elem: KindBool, elems: elems})
}

func (o *Object) GetBoolCount(id FieldID) int { return o.scalarCount(id, KindBool) }

func (o *Object) GetBool(id FieldID) bool {
	v, _ := o.IndexBool(id, o.GetBoolCount(id)-1)
	return v
}

func (o *Object) IndexBool(id FieldID, i int) (bool, bool) {
	u, ok := o.scalarIndex(id, KindBool, i)
	return u != 0, ok
}

func (o *Object) GetBoolList(id FieldID) []bool {
	us := o.scalarGetList(id, KindBool)
	out := make([]bool, len(us))
	for i, u := range us {
		out[i] = u != 0
	}
	return out
}

func boolToU(v bool) uint64 {
	if v {
		return 1
	}
	return 0
}

// Int32

func (o *Object) AddInt32(id FieldID, v int32) {
	o.add(id, value{kind: KindInt32, u: uint64(int64(v))})
}

func (o *Object) AddInt32List(id FieldID, vs []int32) {
	elems := make([]uint64, len(vs))
	for i, v := range vs {
		elems[i] = uint64(int64(v))
	}
	o.add(id, value{kind: KindPackedList, elem: KindInt32, elems: elems})
}

func (o *Object) GetInt32Count(id FieldID) int { return o.scalarCount(id, KindInt32) }

func (o *Object) GetInt32(id FieldID) int32 {
	v, _ := o.IndexInt32(id, o.GetInt32Count(id)-1)
	return v
}

func (o *Object) IndexInt32(id FieldID, i int) (int32, bool) {
	u, ok := o.scalarIndex(id, KindInt32, i)
	return int32(int64(u)), ok
}

func (o *Object) GetInt32List(id FieldID) []int32 {
	us := o.scalarGetList(id, KindInt32)
	out := make([]int32, len(us))
	for i, u := range us {
		out[i] = int32(int64(u))
	}
	return out
}

// Int64

func (o *Object) AddInt64(id FieldID, v int64) {
	o.add(id, value{kind: KindInt64, u: uint64(v)})
}

func (o *Object) AddInt64List(id FieldID, vs []int64) {
	elems := make([]uint64, len(vs))
	for i, v := range vs {
		elems[i] = uint64(v)
	}
	o.add(id, value{kind: KindPackedList, elem: KindInt64, elems: elems})
}

func (o *Object) GetInt64Count(id FieldID) int { return o.scalarCount(id, KindInt64) }

func (o *Object) GetInt64(id FieldID) int64 {
	v, _ := o.IndexInt64(id, o.GetInt64Count(id)-1)
	return v
}

func (o *Object) IndexInt64(id FieldID, i int) (int64, bool) {
	u, ok := o.scalarIndex(id, KindInt64, i)
	return int64(u), ok
}

func (o *Object) GetInt64List(id FieldID) []int64 {
	us := o.scalarGetList(id, KindInt64)
	out := make([]int64, len(us))
	for i, u := range us {
		out[i] = int64(u)
	}
	return out
}

// Uint32

func (o *Object) AddUint32(id FieldID, v uint32) {
	o.add(id, value{kind: KindUint32, u: uint64(v)})
}

func (o *Object) AddUint32List(id FieldID, vs []uint32) {
	elems := make([]uint64, len(vs))
	for i, v := range vs {
		elems[i] = uint64(v)
	}
	o.add(id, value{kind: KindPackedList, elem: KindUint32, elems: elems})
}

func (o *Object) GetUint32Count(id FieldID) int { return o.scalarCount(id, KindUint32) }

func (o *Object) GetUint32(id FieldID) uint32 {
	v, _ := o.IndexUint32(id, o.GetUint32Count(id)-1)
	return v
}

func (o *Object) IndexUint32(id FieldID, i int) (uint32, bool) {
	u, ok := o.scalarIndex(id, KindUint32, i)
	return uint32(u), ok
}

func (o *Object) GetUint32List(id FieldID) []uint32 {
	us := o.scalarGetList(id, KindUint32)
	out := make([]uint32, len(us))
	for i, u := range us {
		out[i] = uint32(u)
	}
	return out
}

// Uint64

func (o *Object) AddUint64(id FieldID, v uint64) {
	o.add(id, value{kind: KindUint64, u: v})
}

func (o *Object) AddUint64List(id FieldID, vs []uint64) {
	elems := append([]uint64(nil), vs...)
	o.add(id, value{kind: KindPackedList, elem: KindUint64, elems: elems})
}

func (o *Object) GetUint64Count(id FieldID) int { return o.scalarCount(id, KindUint64) }

func (o *Object) GetUint64(id FieldID) uint64 {
	v, _ := o.IndexUint64(id, o.GetUint64Count(id)-1)
	return v
}

func (o *Object) IndexUint64(id FieldID, i int) (uint64, bool) {
	return o.scalarIndex(id, KindUint64, i)
}

func (o *Object) GetUint64List(id FieldID) []uint64 {
	return o.scalarGetList(id, KindUint64)
}

// Sint32

func (o *Object) AddSint32(id FieldID, v int32) {
	o.add(id, value{kind: KindSint32, u: varint.EncodeZigZag(int64(v))})
}

func (o *Object) AddSint32List(id FieldID, vs []int32) {
	elems := make([]uint64, len(vs))
	for i, v := range vs {
		elems[i] = varint.EncodeZigZag(int64(v))
	}
	o.add(id, value{kind: KindPackedList, elem: KindSint32, elems: elems})
}

func (o *Object) GetSint32Count(id FieldID) int { return o.scalarCount(id, KindSint32) }

func (o *Object) GetSint32(id FieldID) int32 {
	v, _ := o.IndexSint32(id, o.GetSint32Count(id)-1)
	return v
}

func (o *Object) IndexSint32(id FieldID, i int) (int32, bool) {
	u, ok := o.scalarIndex(id, KindSint32, i)
	return int32(varint.DecodeZigZag(u)), ok
}

func (o *Object) GetSint32List(id FieldID) []int32 {
	us := o.scalarGetList(id, KindSint32)
	out := make([]int32, len(us))
	for i, u := range us {
		out[i] = int32(varint.DecodeZigZag(u))
	}
	return out
}

// Sint64

func (o *Object) AddSint64(id FieldID, v int64) {
	o.add(id, value{kind: KindSint64, u: varint.EncodeZigZag(v)})
}

func (o *Object) AddSint64List(id FieldID, vs []int64) {
	elems := make([]uint64, len(vs))
	for i, v := range vs {
		elems[i] = varint.EncodeZigZag(v)
	}
	o.add(id, value{kind: KindPackedList, elem: KindSint64, elems: elems})
}

func (o *Object) GetSint64Count(id FieldID) int { return o.scalarCount(id, KindSint64) }

func (o *Object) GetSint64(id FieldID) int64 {
	v, _ := o.IndexSint64(id, o.GetSint64Count(id)-1)
	return v
}

func (o *Object) IndexSint64(id FieldID, i int) (int64, bool) {
	u, ok := o.scalarIndex(id, KindSint64, i)
	return varint.DecodeZigZag(u), ok
}

func (o *Object) GetSint64List(id FieldID) []int64 {
	us := o.scalarGetList(id, KindSint64)
	out := make([]int64, len(us))
	for i, u := range us {
		out[i] = varint.DecodeZigZag(u)
	}
	return out
}

// Fixed32

func (o *Object) AddFixed32(id FieldID, v uint32) {
	o.add(id, value{kind: KindFixed32, u: uint64(v)})
}

func (o *Object) AddFixed32List(id FieldID, vs []uint32) {
	elems := make([]uint64, len(vs))
	for i, v := range vs {
		elems[i] = uint64(v)
	}
	o.add(id, value{kind: KindPackedList, elem: KindFixed32, elems: elems})
}

func (o *Object) GetFixed32Count(id FieldID) int { return o.scalarCount(id, KindFixed32) }

func (o *Object) GetFixed32(id FieldID) uint32 {
	v, _ := o.IndexFixed32(id, o.GetFixed32Count(id)-1)
	return v
}

func (o *Object) IndexFixed32(id FieldID, i int) (uint32, bool) {
	u, ok := o.scalarIndex(id, KindFixed32, i)
	return uint32(u), ok
}

func (o *Object) GetFixed32List(id FieldID) []uint32 {
	us := o.scalarGetList(id, KindFixed32)
	out := make([]uint32, len(us))
	for i, u := range us {
		out[i] = uint32(u)
	}
	return out
}

// Fixed64

func (o *Object) AddFixed64(id FieldID, v uint64) {
	o.add(id, value{kind: KindFixed64, u: v})
}

func (o *Object) AddFixed64List(id FieldID, vs []uint64) {
	elems := append([]uint64(nil), vs...)
	o.add(id, value{kind: KindPackedList, elem: KindFixed64, elems: elems})
}

func (o *Object) GetFixed64Count(id FieldID) int { return o.scalarCount(id, KindFixed64) }

func (o *Object) GetFixed64(id FieldID) uint64 {
	v, _ := o.IndexFixed64(id, o.GetFixed64Count(id)-1)
	return v
}

func (o *Object) IndexFixed64(id FieldID, i int) (uint64, bool) {
	return o.scalarIndex(id, KindFixed64, i)
}

func (o *Object) GetFixed64List(id FieldID) []uint64 {
	return o.scalarGetList(id, KindFixed64)
}

// Sfixed32

func (o *Object) AddSfixed32(id FieldID, v int32) {
	o.add(id, value{kind: KindSfixed32, u: uint64(uint32(v))})
}

func (o *Object) AddSfixed32List(id FieldID, vs []int32) {
	elems := make([]uint64, len(vs))
	for i, v := range vs {
		elems[i] = uint64(uint32(v))
	}
	o.add(id, value{kind: KindPackedList, elem: KindSfixed32, elems: elems})
}

func (o *Object) GetSfixed32Count(id FieldID) int { return o.scalarCount(id, KindSfixed32) }

func (o *Object) GetSfixed32(id FieldID) int32 {
	v, _ := o.IndexSfixed32(id, o.GetSfixed32Count(id)-1)
	return v
}

func (o *Object) IndexSfixed32(id FieldID, i int) (int32, bool) {
	u, ok := o.scalarIndex(id, KindSfixed32, i)
	return int32(uint32(u)), ok
}

func (o *Object) GetSfixed32List(id FieldID) []int32 {
	us := o.scalarGetList(id, KindSfixed32)
	out := make([]int32, len(us))
	for i, u := range us {
		out[i] = int32(uint32(u))
	}
	return out
}

// Sfixed64

func (o *Object) AddSfixed64(id FieldID, v int64) {
	o.add(id, value{kind: KindSfixed64, u: uint64(v)})
}

func (o *Object) AddSfixed64List(id FieldID, vs []int64) {
	elems := make([]uint64, len(vs))
	for i, v := range vs {
		elems[i] = uint64(v)
	}
	o.add(id, value{kind: KindPackedList, elem: KindSfixed64, elems: elems})
}

func (o *Object) GetSfixed64Count(id FieldID) int { return o.scalarCount(id, KindSfixed64) }

func (o *Object) GetSfixed64(id FieldID) int64 {
	v, _ := o.IndexSfixed64(id, o.GetSfixed64Count(id)-1)
	return v
}

func (o *Object) IndexSfixed64(id FieldID, i int) (int64, bool) {
	u, ok := o.scalarIndex(id, KindSfixed64, i)
	return int64(u), ok
}

func (o *Object) GetSfixed64List(id FieldID) []int64 {
	us := o.scalarGetList(id, KindSfixed64)
	out := make([]int64, len(us))
	for i, u := range us {
		out[i] = int64(u)
	}
	return out
}

// EntityID

func (o *Object) AddEntityId(id FieldID, v EntityID) {
	o.add(id, value{kind: KindEntityID, u: uint64(int64(v))})
}

func (o *Object) AddEntityIdList(id FieldID, vs []EntityID) {
	elems := make([]uint64, len(vs))
	for i, v := range vs {
		elems[i] = uint64(int64(v))
	}
	o.add(id, value{kind: KindPackedList, elem: KindEntityID, elems: elems})
}

func (o *Object) GetEntityIdCount(id FieldID) int { return o.scalarCount(id, KindEntityID) }

func (o *Object) GetEntityId(id FieldID) EntityID {
	v, _ := o.IndexEntityId(id, o.GetEntityIdCount(id)-1)
	return v
}

func (o *Object) IndexEntityId(id FieldID, i int) (EntityID, bool) {
	u, ok := o.scalarIndex(id, KindEntityID, i)
	return EntityID(int64(u)), ok
}

func (o *Object) GetEntityIdList(id FieldID) []EntityID {
	us := o.scalarGetList(id, KindEntityID)
	out := make([]EntityID, len(us))
	for i, u := range us {
		out[i] = EntityID(int64(u))
	}
	return out
}

// Enum (wire-compatible with Uint32: no sign extension, per the original
// C SDK's "Enum (alias for Uint32)" comment).

func (o *Object) AddEnum(id FieldID, v uint32) {
	o.add(id, value{kind: KindEnum, u: uint64(v)})
}

func (o *Object) AddEnumList(id FieldID, vs []uint32) {
	elems := make([]uint64, len(vs))
	for i, v := range vs {
		elems[i] = uint64(v)
	}
	o.add(id, value{kind: KindPackedList, elem: KindEnum, elems: elems})
}

func (o *Object) GetEnumCount(id FieldID) int { return o.scalarCount(id, KindEnum) }

func (o *Object) GetEnum(id FieldID) uint32 {
	v, _ := o.IndexEnum(id, o.GetEnumCount(id)-1)
	return v
}

func (o *Object) IndexEnum(id FieldID, i int) (uint32, bool) {
	u, ok := o.scalarIndex(id, KindEnum, i)
	return uint32(u), ok
}

func (o *Object) GetEnumList(id FieldID) []uint32 {
	us := o.scalarGetList(id, KindEnum)
	out := make([]uint32, len(us))
	for i, u := range us {
		out[i] = uint32(u)
	}
	return out
}
