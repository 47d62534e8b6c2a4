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

// Package wireerr classifies wire-format decode failures into the decoder
// failure-mode taxonomy of the schema object library: truncated input
// (which also covers a length-delimited payload whose declared length
// overruns the remaining buffer — protowire itself does not distinguish
// the two), reserved wire types, field ID zero, and over-deep nesting.
package wireerr

import (
	"github.com/pkg/errors"

	"github.com/bufbuild/dynschema/internal/varint"
)

// Sentinel errors, one per decoder failure mode.
var (
	ErrTruncated    = errors.New("dynschema: truncated wire input")
	ErrReservedWire = errors.New("dynschema: reserved wire type")
	ErrFieldIDZero  = errors.New("dynschema: field ID 0 is reserved")
	ErrNestingDepth = errors.New("dynschema: object nesting exceeds the recursion limit")
)

// FromConsume wraps the negative "n" that a protowire.Consume* function
// returns on failure into one of the sentinel errors above, with op naming
// the operation being performed (for the wrapped message only — callers
// should match on errors.Is against the sentinels, not on message text).
func FromConsume(op string, n int) error {
	if n >= 0 {
		return nil
	}
	sentinel := ErrTruncated
	if n == codeFieldNumber {
		sentinel = ErrFieldIDZero
	}
	return errors.Wrapf(sentinel, "%s: %v", op, varint.ParseError(n))
}

// codeFieldNumber is the negative "n" protowire.ConsumeTag returns for a
// tag whose field number is 0 (or otherwise outside the valid range).
const codeFieldNumber = -2
