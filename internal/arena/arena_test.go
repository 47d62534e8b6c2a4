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

package arena_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bufbuild/dynschema/internal/arena"
)

func TestAllocStability(t *testing.T) {
	t.Parallel()

	var a arena.Arena
	var ptrs [][]byte
	for i := 0; i < 2000; i++ {
		p := a.Alloc(17)
		require.Len(t, p, 17)
		for j := range p {
			p[j] = byte(i)
		}
		ptrs = append(ptrs, p)
	}

	// Every previously returned slice must still read back correctly: later
	// allocations (and the blocks they triggered) must never invalidate
	// earlier ones.
	for i, p := range ptrs {
		for _, b := range p {
			require.Equal(t, byte(i), b)
		}
	}
}

func TestAllocZero(t *testing.T) {
	t.Parallel()

	var a arena.Arena
	require.Nil(t, a.Alloc(0))
}

func TestAllocGrowth(t *testing.T) {
	t.Parallel()

	var a arena.Arena
	a.Alloc(1)
	require.GreaterOrEqual(t, a.Allocated(), 1)

	a.Alloc(1 << 20)
	require.GreaterOrEqual(t, a.Allocated(), 1<<20)
}
