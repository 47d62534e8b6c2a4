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

// The flat Schema_* scalar family below is a direct pass-through onto the
// corresponding *Object method for each of the fifteen scalar function
// families the original header enumerates. Every family (AddX/AddXList/
// GetXCount/GetX/IndexX/GetXList) has the exact same shape, written out
// once per type; the exported names match the header's flat naming exactly.

func Schema_AddFloat(object ObjectHandle, fieldID FieldID, v float32) { object.obj.AddFloat(fieldID, v) }
func Schema_AddFloatList(object ObjectHandle, fieldID FieldID, vs []float32) {
	object.obj.AddFloatList(fieldID, vs)
}
func Schema_GetFloatCount(object ObjectHandle, fieldID FieldID) uint32 {
	return uint32(object.obj.GetFloatCount(fieldID))
}
func Schema_GetFloat(object ObjectHandle, fieldID FieldID) float32 { return object.obj.GetFloat(fieldID) }
func Schema_IndexFloat(object ObjectHandle, fieldID FieldID, index uint32) float32 {
	v, _ := object.obj.IndexFloat(fieldID, int(index))
	return v
}
func Schema_GetFloatList(object ObjectHandle, fieldID FieldID) []float32 {
	return object.obj.GetFloatList(fieldID)
}

func Schema_AddDouble(object ObjectHandle, fieldID FieldID, v float64) {
	object.obj.AddDouble(fieldID, v)
}
func Schema_AddDoubleList(object ObjectHandle, fieldID FieldID, vs []float64) {
	object.obj.AddDoubleList(fieldID, vs)
}
func Schema_GetDoubleCount(object ObjectHandle, fieldID FieldID) uint32 {
	return uint32(object.obj.GetDoubleCount(fieldID))
}
func Schema_GetDouble(object ObjectHandle, fieldID FieldID) float64 {
	return object.obj.GetDouble(fieldID)
}
func Schema_IndexDouble(object ObjectHandle, fieldID FieldID, index uint32) float64 {
	v, _ := object.obj.IndexDouble(fieldID, int(index))
	return v
}
func Schema_GetDoubleList(object ObjectHandle, fieldID FieldID) []float64 {
	return object.obj.GetDoubleList(fieldID)
}

func Schema_AddBool(object ObjectHandle, fieldID FieldID, v bool) { object.obj.AddBool(fieldID, v) }
func Schema_AddBoolList(object ObjectHandle, fieldID FieldID, vs []bool) {
	object.obj.AddBoolList(fieldID, vs)
}
func Schema_GetBoolCount(object ObjectHandle, fieldID FieldID) uint32 {
	return uint32(object.obj.GetBoolCount(fieldID))
}
func Schema_GetBool(object ObjectHandle, fieldID FieldID) bool { return object.obj.GetBool(fieldID) }
func Schema_IndexBool(object ObjectHandle, fieldID FieldID, index uint32) bool {
	v, _ := object.obj.IndexBool(fieldID, int(index))
	return v
}
func Schema_GetBoolList(object ObjectHandle, fieldID FieldID) []bool {
	return object.obj.GetBoolList(fieldID)
}

func Schema_AddInt32(object ObjectHandle, fieldID FieldID, v int32) { object.obj.AddInt32(fieldID, v) }
func Schema_AddInt32List(object ObjectHandle, fieldID FieldID, vs []int32) {
	object.obj.AddInt32List(fieldID, vs)
}
func Schema_GetInt32Count(object ObjectHandle, fieldID FieldID) uint32 {
	return uint32(object.obj.GetInt32Count(fieldID))
}
func Schema_GetInt32(object ObjectHandle, fieldID FieldID) int32 { return object.obj.GetInt32(fieldID) }
func Schema_IndexInt32(object ObjectHandle, fieldID FieldID, index uint32) int32 {
	v, _ := object.obj.IndexInt32(fieldID, int(index))
	return v
}
func Schema_GetInt32List(object ObjectHandle, fieldID FieldID) []int32 {
	return object.obj.GetInt32List(fieldID)
}

func Schema_AddInt64(object ObjectHandle, fieldID FieldID, v int64) { object.obj.AddInt64(fieldID, v) }
func Schema_AddInt64List(object ObjectHandle, fieldID FieldID, vs []int64) {
	object.obj.AddInt64List(fieldID, vs)
}
func Schema_GetInt64Count(object ObjectHandle, fieldID FieldID) uint32 {
	return uint32(object.obj.GetInt64Count(fieldID))
}
func Schema_GetInt64(object ObjectHandle, fieldID FieldID) int64 { return object.obj.GetInt64(fieldID) }
func Schema_IndexInt64(object ObjectHandle, fieldID FieldID, index uint32) int64 {
	v, _ := object.obj.IndexInt64(fieldID, int(index))
	return v
}
func Schema_GetInt64List(object ObjectHandle, fieldID FieldID) []int64 {
	return object.obj.GetInt64List(fieldID)
}

func Schema_AddUint32(object ObjectHandle, fieldID FieldID, v uint32) {
	object.obj.AddUint32(fieldID, v)
}
func Schema_AddUint32List(object ObjectHandle, fieldID FieldID, vs []uint32) {
	object.obj.AddUint32List(fieldID, vs)
}
func Schema_GetUint32Count(object ObjectHandle, fieldID FieldID) uint32 {
	return uint32(object.obj.GetUint32Count(fieldID))
}
func Schema_GetUint32(object ObjectHandle, fieldID FieldID) uint32 {
	return object.obj.GetUint32(fieldID)
}
func Schema_IndexUint32(object ObjectHandle, fieldID FieldID, index uint32) uint32 {
	v, _ := object.obj.IndexUint32(fieldID, int(index))
	return v
}
func Schema_GetUint32List(object ObjectHandle, fieldID FieldID) []uint32 {
	return object.obj.GetUint32List(fieldID)
}

func Schema_AddUint64(object ObjectHandle, fieldID FieldID, v uint64) {
	object.obj.AddUint64(fieldID, v)
}
func Schema_AddUint64List(object ObjectHandle, fieldID FieldID, vs []uint64) {
	object.obj.AddUint64List(fieldID, vs)
}
func Schema_GetUint64Count(object ObjectHandle, fieldID FieldID) uint32 {
	return uint32(object.obj.GetUint64Count(fieldID))
}
func Schema_GetUint64(object ObjectHandle, fieldID FieldID) uint64 {
	return object.obj.GetUint64(fieldID)
}
func Schema_IndexUint64(object ObjectHandle, fieldID FieldID, index uint32) uint64 {
	v, _ := object.obj.IndexUint64(fieldID, int(index))
	return v
}
func Schema_GetUint64List(object ObjectHandle, fieldID FieldID) []uint64 {
	return object.obj.GetUint64List(fieldID)
}

func Schema_AddSint32(object ObjectHandle, fieldID FieldID, v int32) { object.obj.AddSint32(fieldID, v) }
func Schema_AddSint32List(object ObjectHandle, fieldID FieldID, vs []int32) {
	object.obj.AddSint32List(fieldID, vs)
}
func Schema_GetSint32Count(object ObjectHandle, fieldID FieldID) uint32 {
	return uint32(object.obj.GetSint32Count(fieldID))
}
func Schema_GetSint32(object ObjectHandle, fieldID FieldID) int32 { return object.obj.GetSint32(fieldID) }
func Schema_IndexSint32(object ObjectHandle, fieldID FieldID, index uint32) int32 {
	v, _ := object.obj.IndexSint32(fieldID, int(index))
	return v
}
func Schema_GetSint32List(object ObjectHandle, fieldID FieldID) []int32 {
	return object.obj.GetSint32List(fieldID)
}

func Schema_AddSint64(object ObjectHandle, fieldID FieldID, v int64) { object.obj.AddSint64(fieldID, v) }
func Schema_AddSint64List(object ObjectHandle, fieldID FieldID, vs []int64) {
	object.obj.AddSint64List(fieldID, vs)
}
func Schema_GetSint64Count(object ObjectHandle, fieldID FieldID) uint32 {
	return uint32(object.obj.GetSint64Count(fieldID))
}
func Schema_GetSint64(object ObjectHandle, fieldID FieldID) int64 { return object.obj.GetSint64(fieldID) }
func Schema_IndexSint64(object ObjectHandle, fieldID FieldID, index uint32) int64 {
	v, _ := object.obj.IndexSint64(fieldID, int(index))
	return v
}
func Schema_GetSint64List(object ObjectHandle, fieldID FieldID) []int64 {
	return object.obj.GetSint64List(fieldID)
}

func Schema_AddFixed32(object ObjectHandle, fieldID FieldID, v uint32) {
	object.obj.AddFixed32(fieldID, v)
}
func Schema_AddFixed32List(object ObjectHandle, fieldID FieldID, vs []uint32) {
	object.obj.AddFixed32List(fieldID, vs)
}
func Schema_GetFixed32Count(object ObjectHandle, fieldID FieldID) uint32 {
	return uint32(object.obj.GetFixed32Count(fieldID))
}
func Schema_GetFixed32(object ObjectHandle, fieldID FieldID) uint32 {
	return object.obj.GetFixed32(fieldID)
}
func Schema_IndexFixed32(object ObjectHandle, fieldID FieldID, index uint32) uint32 {
	v, _ := object.obj.IndexFixed32(fieldID, int(index))
	return v
}
func Schema_GetFixed32List(object ObjectHandle, fieldID FieldID) []uint32 {
	return object.obj.GetFixed32List(fieldID)
}

func Schema_AddFixed64(object ObjectHandle, fieldID FieldID, v uint64) {
	object.obj.AddFixed64(fieldID, v)
}
func Schema_AddFixed64List(object ObjectHandle, fieldID FieldID, vs []uint64) {
	object.obj.AddFixed64List(fieldID, vs)
}
func Schema_GetFixed64Count(object ObjectHandle, fieldID FieldID) uint32 {
	return uint32(object.obj.GetFixed64Count(fieldID))
}
func Schema_GetFixed64(object ObjectHandle, fieldID FieldID) uint64 {
	return object.obj.GetFixed64(fieldID)
}
func Schema_IndexFixed64(object ObjectHandle, fieldID FieldID, index uint32) uint64 {
	v, _ := object.obj.IndexFixed64(fieldID, int(index))
	return v
}
func Schema_GetFixed64List(object ObjectHandle, fieldID FieldID) []uint64 {
	return object.obj.GetFixed64List(fieldID)
}

func Schema_AddSfixed32(object ObjectHandle, fieldID FieldID, v int32) {
	object.obj.AddSfixed32(fieldID, v)
}
func Schema_AddSfixed32List(object ObjectHandle, fieldID FieldID, vs []int32) {
	object.obj.AddSfixed32List(fieldID, vs)
}
func Schema_GetSfixed32Count(object ObjectHandle, fieldID FieldID) uint32 {
	return uint32(object.obj.GetSfixed32Count(fieldID))
}
func Schema_GetSfixed32(object ObjectHandle, fieldID FieldID) int32 {
	return object.obj.GetSfixed32(fieldID)
}
func Schema_IndexSfixed32(object ObjectHandle, fieldID FieldID, index uint32) int32 {
	v, _ := object.obj.IndexSfixed32(fieldID, int(index))
	return v
}
func Schema_GetSfixed32List(object ObjectHandle, fieldID FieldID) []int32 {
	return object.obj.GetSfixed32List(fieldID)
}

func Schema_AddSfixed64(object ObjectHandle, fieldID FieldID, v int64) {
	object.obj.AddSfixed64(fieldID, v)
}
func Schema_AddSfixed64List(object ObjectHandle, fieldID FieldID, vs []int64) {
	object.obj.AddSfixed64List(fieldID, vs)
}
func Schema_GetSfixed64Count(object ObjectHandle, fieldID FieldID) uint32 {
	return uint32(object.obj.GetSfixed64Count(fieldID))
}
func Schema_GetSfixed64(object ObjectHandle, fieldID FieldID) int64 {
	return object.obj.GetSfixed64(fieldID)
}
func Schema_IndexSfixed64(object ObjectHandle, fieldID FieldID, index uint32) int64 {
	v, _ := object.obj.IndexSfixed64(fieldID, int(index))
	return v
}
func Schema_GetSfixed64List(object ObjectHandle, fieldID FieldID) []int64 {
	return object.obj.GetSfixed64List(fieldID)
}

func Schema_AddEntityId(object ObjectHandle, fieldID FieldID, v EntityID) {
	object.obj.AddEntityId(fieldID, v)
}
func Schema_AddEntityIdList(object ObjectHandle, fieldID FieldID, vs []EntityID) {
	object.obj.AddEntityIdList(fieldID, vs)
}
func Schema_GetEntityIdCount(object ObjectHandle, fieldID FieldID) uint32 {
	return uint32(object.obj.GetEntityIdCount(fieldID))
}
func Schema_GetEntityId(object ObjectHandle, fieldID FieldID) EntityID {
	return object.obj.GetEntityId(fieldID)
}
func Schema_IndexEntityId(object ObjectHandle, fieldID FieldID, index uint32) EntityID {
	v, _ := object.obj.IndexEntityId(fieldID, int(index))
	return v
}
func Schema_GetEntityIdList(object ObjectHandle, fieldID FieldID) []EntityID {
	return object.obj.GetEntityIdList(fieldID)
}

func Schema_AddEnum(object ObjectHandle, fieldID FieldID, v uint32) { object.obj.AddEnum(fieldID, v) }
func Schema_AddEnumList(object ObjectHandle, fieldID FieldID, vs []uint32) {
	object.obj.AddEnumList(fieldID, vs)
}
func Schema_GetEnumCount(object ObjectHandle, fieldID FieldID) uint32 {
	return uint32(object.obj.GetEnumCount(fieldID))
}
func Schema_GetEnum(object ObjectHandle, fieldID FieldID) uint32 { return object.obj.GetEnum(fieldID) }
func Schema_IndexEnum(object ObjectHandle, fieldID FieldID, index uint32) uint32 {
	v, _ := object.obj.IndexEnum(fieldID, int(index))
	return v
}
func Schema_GetEnumList(object ObjectHandle, fieldID FieldID) []uint32 {
	return object.obj.GetEnumList(fieldID)
}
