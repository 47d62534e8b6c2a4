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
	"golang.org/x/sync/errgroup"

	"github.com/bufbuild/dynschema"
)

// TestIndependentRootsAreConcurrencySafe builds, serializes, and re-merges
// many distinct Roots across goroutines with no shared state between them.
// A Root never shares its arena or Object tree with any other Root, so this
// is expected to run clean under -race: run with `go test -race` to check.
func TestIndependentRootsAreConcurrencySafe(t *testing.T) {
	t.Parallel()

	const workers = 64

	var g errgroup.Group
	for i := 0; i < workers; i++ {
		i := i
		g.Go(func() error {
			root := dynschema.NewComponentData(dynschema.FieldID(i + 1))
			obj := root.Object()
			for j := 0; j < 100; j++ {
				obj.AddInt32(1, int32(j))
				obj.AddBytes(2, []byte{byte(i), byte(j)})
			}
			child := obj.AddObject(3)
			child.AddUint64(1, uint64(i))

			buf := root.Serialize()

			other := dynschema.NewComponentData(dynschema.FieldID(i + 1))
			if err := other.Object().MergeFromBuffer(buf); err != nil {
				return err
			}
			if got := other.Object().GetInt32Count(1); got != 100 {
				t.Errorf("worker %d: got %d int32 occurrences, want 100", i, got)
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())
}
