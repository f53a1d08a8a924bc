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
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/iancoleman/orderedmap"
	"github.com/rs/zerolog"
	"github.com/walteh/scaffrc/pkg/config"
	"gitlab.com/tozd/go/errors"
)

// 🧾 provenanceFields describe the template's own origin and must not leak
// into generated projects.
var provenanceFields = []string{"author", "repository", "bugs", "homepage"}

// 📦 NewManifestOperation creates the operation that rewrites the template
// manifest for the generated project
func NewManifestOperation(opts Options) Operation {
	return &manifestOperation{
		BaseOperation: NewBaseOperation(opts),
	}
}

// 📦 manifestOperation implements the manifest transform
type manifestOperation struct {
	BaseOperation
}

// 🏷️ Name identifies the operation
func (op *manifestOperation) Name() string {
	return "manifest"
}

// 🏃 Execute reads the template manifest, applies the identity rewrites and
// writes the result into the destination. The write is atomic: either the
// complete new manifest exists or the destination file is untouched.
func (op *manifestOperation) Execute(ctx context.Context) error {
	if err := op.Options.validate(); err != nil {
		return errors.Errorf("validating options: %w", err)
	}

	logger := zerolog.Ctx(ctx)

	manifestFile, _ := op.manifestArgs()
	templatePath := filepath.Join(op.TemplateRoot, manifestFile)
	destPath := filepath.Join(op.Destination, manifestFile)

	doc, err := readManifest(templatePath)
	if err != nil {
		return err
	}

	op.rewrite(doc)

	if err := writeManifestAtomic(destPath, doc); err != nil {
		return err
	}

	logger.Debug().Str("path", destPath).Msg("manifest transformed")
	op.Report.Add(manifestFile, StatusTransformed, nil)
	return nil
}

// 🔧 manifestArgs returns the manifest file name and initial version,
// falling back to the defaults when the config left them unset
func (op *manifestOperation) manifestArgs() (file, version string) {
	file = config.DefaultManifestFile
	version = config.DefaultInitialVersion
	if op.Config.Manifest != nil {
		if op.Config.Manifest.File != "" {
			file = op.Config.Manifest.File
		}
		if op.Config.Manifest.InitialVersion != "" {
			version = op.Config.Manifest.InitialVersion
		}
	}
	return file, version
}

// 🔄 rewrite applies the fixed field rewrites, in order
func (op *manifestOperation) rewrite(doc *orderedmap.OrderedMap) {
	// Name: user answer, falling back to the destination directory's
	// basename so the result is always non-empty.
	name := op.Answers.ProjectName
	if name == "" {
		name = filepath.Base(op.Destination)
	}
	doc.Set("name", name)

	// New projects never inherit the template's version.
	_, version := op.manifestArgs()
	doc.Set("version", version)

	// Description may be an intentionally empty string.
	doc.Set("description", op.Answers.Description)

	// The generated project is a standalone server, not an installable
	// launcher of the template.
	doc.Delete("bin")

	for _, field := range provenanceFields {
		doc.Delete(field)
	}

	op.rewriteBuildScript(doc)
}

// 🔧 rewriteBuildScript collapses a chained multi-step build command to its
// first step. The template chains its compile with an initializer
// post-processing step that generated projects do not ship.
func (op *manifestOperation) rewriteBuildScript(doc *orderedmap.OrderedMap) {
	raw, ok := doc.Get("scripts")
	if !ok {
		return
	}
	scripts, ok := raw.(orderedmap.OrderedMap)
	if !ok {
		return
	}

	build, ok := scripts.Get("build")
	if !ok {
		return
	}
	cmd, ok := build.(string)
	if !ok || !strings.Contains(cmd, "&&") {
		return
	}

	scripts.Set("build", strings.TrimSpace(strings.SplitN(cmd, "&&", 2)[0]))
	doc.Set("scripts", scripts)
}

// 📥 readManifest loads and parses a manifest, preserving its key order
func readManifest(path string) (*orderedmap.OrderedMap, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &ManifestReadError{Path: path, Err: err}
	}

	doc := orderedmap.New()
	if err := json.Unmarshal(data, doc); err != nil {
		return nil, &ManifestReadError{Path: path, Err: err}
	}

	return doc, nil
}

// 📤 writeManifestAtomic serializes the manifest and writes it via a temp
// file plus rename, so a failure never leaves a half-written file
func writeManifestAtomic(path string, doc *orderedmap.OrderedMap) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return &ManifestWriteError{Path: path, Err: err}
	}
	data = append(data, '\n')

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return &ManifestWriteError{Path: path, Err: err}
	}

	tmp, err := os.CreateTemp(dir, ".manifest-*")
	if err != nil {
		return &ManifestWriteError{Path: path, Err: err}
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return &ManifestWriteError{Path: path, Err: err}
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return &ManifestWriteError{Path: path, Err: err}
	}

	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return &ManifestWriteError{Path: path, Err: err}
	}

	return nil
}
