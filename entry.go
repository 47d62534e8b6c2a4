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

// entry is one link in an Object's append-only entries log, and
// simultaneously one link in its field's occurrence chain (entry.next).
type entry struct {
	id   FieldID
	next int32 // index of the next entry sharing id, or -1
	dead bool  // tombstoned by ClearField/Clear
	val  value
}

// noNext marks the end of an occurrence chain.
const noNext int32 = -1
