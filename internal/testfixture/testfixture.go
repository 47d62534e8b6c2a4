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

// Package testfixture loads YAML-described wire-format test vectors, each
// giving its bytes as hex or protoscope text, for table-driven tests
// elsewhere in the module.
package testfixture

import (
	"embed"
	"encoding/hex"
	"io/fs"
	"path/filepath"
	"strings"
	"testing"

	"github.com/protocolbuffers/protoscope"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

//go:embed *.yaml
var fixtures embed.FS

// Case is one named wire-format specimen, decoded from either its Hex or
// Protoscope representation (or both, each producing its own specimen).
type Case struct {
	Name string `yaml:"-"`

	Hex        []string `yaml:"hex"`
	Protoscope []string `yaml:"protoscope"`

	Specimens [][]byte `yaml:"-"`
}

// Load reads every *.yaml fixture file and decodes its specimens.
func Load(t *testing.T) []Case {
	t.Helper()

	var cases []Case
	err := fs.WalkDir(fixtures, ".", func(path string, d fs.DirEntry, err error) error {
		require.NoError(t, err)
		if d.IsDir() || filepath.Ext(path) != ".yaml" {
			return nil
		}

		data, err := fixtures.ReadFile(path)
		require.NoError(t, err, "reading %q", path)

		var c Case
		require.NoError(t, yaml.Unmarshal(data, &c), "parsing %q", path)
		c.Name = strings.TrimSuffix(filepath.Base(path), ".yaml")

		for _, h := range c.Hex {
			b, err := hex.DecodeString(strings.ReplaceAll(h, " ", ""))
			require.NoError(t, err, "decoding hex in %q", path)
			c.Specimens = append(c.Specimens, b)
		}
		for _, p := range c.Protoscope {
			b, err := protoscope.NewScanner(p).Exec()
			require.NoError(t, err, "decoding protoscope in %q", path)
			c.Specimens = append(c.Specimens, b)
		}

		cases = append(cases, c)
		return nil
	})
	require.NoError(t, err)
	return cases
}
