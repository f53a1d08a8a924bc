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

import "fmt"

// ⚠️ SourceMissingError reports a template entry that does not exist on disk.
// It is warning-level: the entry is skipped and scaffolding continues.
type SourceMissingError struct {
	Path string
}

func (e *SourceMissingError) Error() string {
	return fmt.Sprintf("template source does not exist: %s", e.Path)
}

// ❌ WriteError reports a failed directory creation or file write. It is
// fatal to the affected subtree.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("writing %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}

// ❌ ManifestReadError reports a template manifest that is missing or not
// valid JSON.
type ManifestReadError struct {
	Path string
	Err  error
}

func (e *ManifestReadError) Error() string {
	return fmt.Sprintf("reading manifest %s: %v", e.Path, e.Err)
}

func (e *ManifestReadError) Unwrap() error {
	return e.Err
}

// ❌ ManifestWriteError reports a destination manifest that could not be
// persisted. The destination file is never left half-written.
type ManifestWriteError struct {
	Path string
	Err  error
}

func (e *ManifestWriteError) Error() string {
	return fmt.Sprintf("writing manifest %s: %v", e.Path, e.Err)
}

func (e *ManifestWriteError) Unwrap() error {
	return e.Err
}
