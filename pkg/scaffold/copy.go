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

import (
	"context"
	"os"
	"path"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/walteh/scaffrc/pkg/config"
	"github.com/walteh/scaffrc/pkg/pathspec"
	"gitlab.com/tozd/go/errors"
)

// 📦 NewCopyOperation creates the operation that copies the allow-listed
// template entries into the destination
func NewCopyOperation(opts Options) Operation {
	return &copyOperation{
		BaseOperation: NewBaseOperation(opts),
	}
}

// 📦 copyOperation implements the tree copy
type copyOperation struct {
	BaseOperation
}

// 🏷️ Name identifies the operation
func (op *copyOperation) Name() string {
	return "copy"
}

// 🏃 Execute copies every allow-listed entry. A failing entry does not stop
// the remaining entries; all failures are aggregated into the returned error.
func (op *copyOperation) Execute(ctx context.Context) error {
	if err := op.Options.validate(); err != nil {
		return errors.Errorf("validating options: %w", err)
	}

	logger := zerolog.Ctx(ctx)

	// Resolve the allow-list; an empty list means every top-level entry
	entries := op.Config.Include
	if len(entries) == 0 {
		listed, err := op.listTemplateRoot()
		if err != nil {
			return errors.Errorf("listing template root: %w", err)
		}
		entries = listed
	}

	// The destination root always exists afterwards, even for an empty
	// allow-list, so the manifest step has somewhere to write.
	if err := os.MkdirAll(op.Destination, 0755); err != nil {
		return &WriteError{Path: op.Destination, Err: err}
	}

	// The manifest is owned by the manifest operation; copying it here
	// too would race the transformed write in async mode.
	manifestFile := config.DefaultManifestFile
	if op.Config.Manifest != nil && op.Config.Manifest.File != "" {
		manifestFile = op.Config.Manifest.File
	}

	var errs []error
	for _, entry := range entries {
		rel := pathspec.Normalize(entry)
		if rel == manifestFile {
			continue
		}
		if err := op.copyPath(ctx, rel); err != nil {
			logger.Debug().Str("entry", rel).Err(err).Msg("entry failed")
			op.Report.Add(rel, StatusFailed, err)
			errs = append(errs, errors.Errorf("copying %s: %w", rel, err))
		}
	}

	return errors.Join(errs...)
}

// 📂 listTemplateRoot lists the template's top-level entries
func (op *copyOperation) listTemplateRoot() ([]string, error) {
	dirEntries, err := os.ReadDir(op.TemplateRoot)
	if err != nil {
		return nil, errors.Errorf("reading template root: %w", err)
	}
	names := make([]string, 0, len(dirEntries))
	for _, e := range dirEntries {
		names = append(names, e.Name())
	}
	return names, nil
}

// 📄 copyPath recursively copies one template-relative path. Excluded paths
// are a silent no-op, missing sources are recorded as warnings, and the copy
// never deletes anything already present at the destination. Symlinks are
// dereferenced and copied as regular files.
func (op *copyOperation) copyPath(ctx context.Context, rel string) error {
	logger := zerolog.Ctx(ctx)

	if op.Exclusions.Excluded(rel) {
		logger.Debug().Str("path", rel).Msg("excluded by rule")
		op.Report.Add(rel, StatusSkipped, nil)
		return nil
	}

	src := filepath.Join(op.TemplateRoot, filepath.FromSlash(rel))
	dst := filepath.Join(op.Destination, filepath.FromSlash(rel))

	// os.Stat follows symlinks, which is what gives copies their
	// dereference semantics.
	info, err := os.Stat(src)
	if os.IsNotExist(err) {
		logger.Warn().Str("path", rel).Msg("template entry missing, skipping")
		op.Report.Add(rel, StatusMissing, &SourceMissingError{Path: rel})
		return nil
	}
	if err != nil {
		return errors.Errorf("inspecting %s: %w", src, err)
	}

	if info.IsDir() {
		if err := os.MkdirAll(dst, 0755); err != nil {
			return &WriteError{Path: dst, Err: err}
		}
		children, err := os.ReadDir(src)
		if err != nil {
			return errors.Errorf("reading directory %s: %w", src, err)
		}
		for _, child := range children {
			if err := op.copyPath(ctx, path.Join(rel, child.Name())); err != nil {
				return err
			}
		}
		return nil
	}

	return op.copyFile(rel, src, dst)
}

// 📝 copyFile copies one regular file's full byte content, overwriting any
// existing destination file
func (op *copyOperation) copyFile(rel, src, dst string) error {
	if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return &WriteError{Path: filepath.Dir(dst), Err: err}
	}

	data, err := os.ReadFile(src)
	if err != nil {
		return errors.Errorf("reading %s: %w", src, err)
	}

	if err := os.WriteFile(dst, data, 0644); err != nil {
		return &WriteError{Path: dst, Err: err}
	}

	op.Report.Add(rel, StatusCopied, nil)
	return nil
}
