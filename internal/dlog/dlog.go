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

// Package dlog is a tiny, level-gated structured debug tracer.
//
// It exists so that Root lifecycle and lazy-resolution events can be traced
// when chasing down a misbehaving caller, without paying for formatting on
// the hot path when tracing is off. It is not a general-purpose logging
// facade: this library has no opinion about where its host application's
// logs go, so by default dlog writes nowhere at all.
package dlog

import (
	"fmt"
	"io"
	"os"
	"sync/atomic"
)

// Field is one structured key/value pair attached to a trace line.
type Field struct {
	Key   string
	Value any
}

// F is shorthand for constructing a Field.
func F(key string, value any) Field {
	return Field{Key: key, Value: value}
}

var (
	enabled atomic.Bool
	out     atomic.Pointer[io.Writer]
)

func init() {
	if os.Getenv("DYNSCHEMA_DEBUG") != "" {
		Enable(os.Stderr)
	}
}

// Enable turns on tracing, writing subsequent lines to w.
func Enable(w io.Writer) {
	out.Store(&w)
	enabled.Store(true)
}

// Disable turns tracing back off.
func Disable() {
	enabled.Store(false)
}

// Enabled reports whether tracing is currently active, so that a caller
// assembling expensive fields can skip the work entirely.
func Enabled() bool {
	return enabled.Load()
}

// Trace emits a trace line if tracing is enabled. Callers on a hot path
// should guard the call with Enabled() to avoid building the fields slice
// when tracing is off.
func Trace(msg string, fields ...Field) {
	if !enabled.Load() {
		return
	}
	w := out.Load()
	if w == nil {
		return
	}

	buf := make([]byte, 0, 64+16*len(fields))
	buf = append(buf, "dynschema: "...)
	buf = append(buf, msg...)
	for _, f := range fields {
		buf = append(buf, ' ')
		buf = append(buf, f.Key...)
		buf = append(buf, '=')
		buf = fmt.Appendf(buf, "%v", f.Value)
	}
	buf = append(buf, '\n')

	_, _ = (*w).Write(buf)
}
