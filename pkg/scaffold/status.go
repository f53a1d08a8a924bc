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

package scaffold

import "sync"

// 🏷️ EntryStatus represents the outcome for a single template entry
type EntryStatus string

const (
	StatusCopied      EntryStatus = "copied"      // Entry was written to the destination
	StatusSkipped     EntryStatus = "skipped"     // Entry matched an exclusion rule
	StatusMissing     EntryStatus = "missing"     // Entry does not exist in the template
	StatusFailed      EntryStatus = "failed"      // Entry could not be written
	StatusTransformed EntryStatus = "transformed" // Manifest was rewritten
)

// 📄 Entry records the outcome for one template-relative path
type Entry struct {
	Path   string
	Status EntryStatus
	Err    error
}

// 📊 Report collects per-entry outcomes across operations. It is safe for
// concurrent use so async runs can share one report.
type Report struct {
	mu      sync.Mutex
	entries []Entry
}

// 🏭 NewReport creates an empty report
func NewReport() *Report {
	return &Report{}
}

// 📝 Add records an outcome for a path
func (r *Report) Add(path string, status EntryStatus, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, Entry{Path: path, Status: status, Err: err})
}

// 📋 Entries returns a copy of all recorded outcomes
func (r *Report) Entries() []Entry {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Entry, len(r.entries))
	copy(out, r.entries)
	return out
}

// ⚠️ Missing returns the paths of template entries that did not exist
func (r *Report) Missing() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []string
	for _, e := range r.entries {
		if e.Status == StatusMissing {
			out = append(out, e.Path)
		}
	}
	return out
}

// ❌ Failed returns the entries that could not be written
func (r *Report) Failed() []Entry {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []Entry
	for _, e := range r.entries {
		if e.Status == StatusFailed {
			out = append(out, e)
		}
	}
	return out
}
