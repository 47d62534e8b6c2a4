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

// Package threadcheck is a development-only assertion that a given Object
// is only ever touched by the goroutine that first touched it. Ownership is
// never released, so handing an Object to another goroutine, even
// sequentially, also panics while checking is on. It is off by default
// (DYNSCHEMA_DEBUG_THREADCHECK enables it); enabling it costs a
// goroutine-local lookup per call, which is not something the library
// should impose on production builds that already know they are holding up
// their end of the contract.
package threadcheck

import (
	"fmt"
	"os"
	"sync"

	"github.com/timandy/routine"
)

var enabled = os.Getenv("DYNSCHEMA_DEBUG_THREADCHECK") != ""

// Enabled reports whether thread-ownership assertions are active.
func Enabled() bool {
	return enabled
}

// SetEnabled overrides the default (env-var-controlled) setting; intended
// for tests that want to exercise the panic path deterministically.
func SetEnabled(v bool) {
	enabled = v
}

// Owner tracks which goroutine first touched some owning value (an
// *Object, in practice). The zero Owner is unowned.
type Owner struct {
	mu  sync.Mutex
	gid int64
	set bool
}

// Touch records the calling goroutine as the current owner, panicking if a
// different goroutine previously touched it. A no-op when checking is
// disabled.
func (o *Owner) Touch(what string) {
	if !enabled {
		return
	}

	gid := routine.Goid()

	o.mu.Lock()
	defer o.mu.Unlock()

	if !o.set {
		o.gid = gid
		o.set = true
		return
	}

	if o.gid != gid {
		panic(fmt.Sprintf(
			"dynschema: %s touched from goroutine %d, but was last touched from goroutine %d; "+
				"a single root may only be accessed from one goroutine at a time",
			what, gid, o.gid))
	}
}
