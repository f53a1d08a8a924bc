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

// Package pathspec implements exclusion matching for template trees.
package pathspec

import (
	"path"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// 🚫 ExclusionSet holds paths and glob patterns that must never be copied.
// Entries are stored relative to the template root, slash-separated.
type ExclusionSet struct {
	paths    []string
	patterns []string
}

// 🏭 New creates an exclusion set from deny-listed paths and glob patterns.
// Paths are normalized so that entries like "./src\foo/" compare equal to
// "src/foo". Duplicates are harmless.
func New(paths []string, patterns []string) *ExclusionSet {
	set := &ExclusionSet{patterns: patterns}
	for _, p := range paths {
		set.paths = append(set.paths, Normalize(p))
	}
	return set
}

// 🧹 Normalize converts a path to the canonical slash-separated relative form
// used for all exclusion comparisons.
func Normalize(p string) string {
	return path.Clean(filepath.ToSlash(p))
}

// 🔍 Excluded reports whether the given template-relative path matches the
// set. A path matches when it equals an entry or is a descendant of one. The
// match respects path-segment boundaries: an entry "src/foo" matches
// "src/foo/bar" but never "src/foobar". The root itself ("." or "") is never
// excluded.
func (s *ExclusionSet) Excluded(rel string) bool {
	if s == nil {
		return false
	}

	rel = Normalize(rel)
	if rel == "." || rel == "" {
		return false
	}

	for _, entry := range s.paths {
		if entry == "." || entry == "" {
			continue
		}
		if rel == entry || strings.HasPrefix(rel, entry+"/") {
			return true
		}
	}

	for _, pattern := range s.patterns {
		matched, err := doublestar.Match(pattern, rel)
		if err != nil {
			// Bad patterns are rejected by Validate; skip here.
			continue
		}
		if matched {
			return true
		}
	}

	return false
}

// 📝 Validate checks that every glob pattern in the set is well-formed.
func (s *ExclusionSet) Validate() error {
	for _, pattern := range s.patterns {
		if !doublestar.ValidatePattern(pattern) {
			return &PatternError{Pattern: pattern}
		}
	}
	return nil
}

// ❌ PatternError reports a malformed glob pattern.
type PatternError struct {
	Pattern string
}

func (e *PatternError) Error() string {
	return "invalid ignore pattern: " + e.Pattern
}
