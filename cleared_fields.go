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

// ClearedFieldList is the side vector on a ComponentUpdate Root holding
// field IDs that the update marks as "reset to empty," for option/list/
// map-valued component fields where absence doesn't imply explicit clear.
// It has no wire representation of its own: it is transported however the
// surrounding RPC layer chooses to frame it, alongside the update's
// serialized fields/events Objects.
//
// Add does not deduplicate: the same field ID may appear more than once,
// and consumers are expected to tolerate or dedupe duplicates at read
// time.
type ClearedFieldList struct {
	ids []FieldID
}

func newClearedFieldList() *ClearedFieldList {
	return &ClearedFieldList{}
}

// Add appends id to the list, duplicates permitted.
func (c *ClearedFieldList) Add(id FieldID) {
	c.ids = append(c.ids, id)
}

// Clear empties the list.
func (c *ClearedFieldList) Clear() {
	c.ids = c.ids[:0]
}

// Count reports the number of entries currently in the list, including
// duplicates.
func (c *ClearedFieldList) Count() int {
	return len(c.ids)
}

// Index returns the i'th entry in insertion order.
func (c *ClearedFieldList) Index(i int) FieldID {
	return c.ids[i]
}

// GetList returns every entry in insertion order. The returned slice must
// not be mutated by the caller.
func (c *ClearedFieldList) GetList() []FieldID {
	return c.ids
}
