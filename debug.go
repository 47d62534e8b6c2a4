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

import "github.com/protocolbuffers/protoscope"

// DumpWire renders a raw wire-format buffer as protoscope disassembly
// text, for use in diagnostics and test failure output. It has no
// knowledge of any schema; like the rest of this library, it only knows
// tags and wire types.
func DumpWire(buf []byte) (string, error) {
	return protoscope.Write(buf, protoscope.WriterOptions{}), nil
}
