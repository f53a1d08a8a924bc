// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package pathspec_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/walteh/scaffrc/pkg/pathspec"
)

// 🧪 TestExcluded tests path exclusion matching
func TestExcluded(t *testing.T) {
	tests := []struct {
		name     string
		paths    []string
		patterns []string
		rel      string
		want     bool
	}{
		{
			name:  "exact_match",
			paths: []string{"src/internal"},
			rel:   "src/internal",
			want:  true,
		},
		{
			name:  "descendant_match",
			paths: []string{"src/internal"},
			rel:   "src/internal/deep/file.ts",
			want:  true,
		},
		{
			name:  "sibling_prefix_not_matched",
			paths: []string{"src/foo"},
			rel:   "src/foobar",
			want:  false,
		},
		{
			name:  "sibling_prefix_descendant_not_matched",
			paths: []string{"src/foo"},
			rel:   "src/foobar/baz.txt",
			want:  false,
		},
		{
			name:  "unrelated_path",
			paths: []string{"node_modules"},
			rel:   "src/index.ts",
			want:  false,
		},
		{
			name:  "root_never_excluded",
			paths: []string{"."},
			rel:   ".",
			want:  false,
		},
		{
			name:  "normalized_entry",
			paths: []string{"./build/"},
			rel:   "build/out.js",
			want:  true,
		},
		{
			name:     "glob_pattern",
			patterns: []string{"**/*.log"},
			rel:      "logs/debug.log",
			want:     true,
		},
		{
			name:     "glob_pattern_no_match",
			patterns: []string{"*.log"},
			rel:      "readme.md",
			want:     false,
		},
		{
			name:  "duplicate_entries_harmless",
			paths: []string{"dist", "dist"},
			rel:   "dist/bundle.js",
			want:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			set := pathspec.New(tt.paths, tt.patterns)
			assert.Equal(t, tt.want, set.Excluded(tt.rel))
		})
	}
}

// 🧪 TestExcludedNilSet tests that a nil set excludes nothing
func TestExcludedNilSet(t *testing.T) {
	var set *pathspec.ExclusionSet
	assert.False(t, set.Excluded("anything"))
}

// 🧪 TestNormalize tests path normalization
func TestNormalize(t *testing.T) {
	assert.Equal(t, "src/foo", pathspec.Normalize("./src/foo/"))
	assert.Equal(t, ".", pathspec.Normalize("."))
	assert.Equal(t, "a/b", pathspec.Normalize("a//b"))
}

// 🧪 TestValidate tests glob pattern validation
func TestValidate(t *testing.T) {
	set := pathspec.New(nil, []string{"**/*.log"})
	require.NoError(t, set.Validate())

	bad := pathspec.New(nil, []string{"[invalid"})
	err := bad.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "[invalid")
}
