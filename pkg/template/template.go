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

// Package template resolves template references to local directory trees.
package template

import (
	"context"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// 🎯 Source materializes a template as a local directory tree
type Source interface {
	// Root returns the local template root directory, materializing it
	// first if the template is remote
	Root(ctx context.Context) (string, error)
	// Close releases any temporary resources held by the source
	Close() error
}

// 🏭 Resolve picks a source implementation for a template reference. A
// reference of the form "github.com/owner/repo[@ref]" resolves remotely;
// anything else is treated as a local directory.
func Resolve(ctx context.Context, ref string) (Source, error) {
	logger := zerolog.Ctx(ctx)

	if strings.HasPrefix(ref, "github.com/") {
		logger.Debug().Str("ref", ref).Msg("resolving remote template")
		return NewGitHubSource(ctx, ref)
	}

	logger.Debug().Str("ref", ref).Msg("resolving local template")
	return &LocalSource{path: ref}, nil
}

// 📁 LocalSource serves a template from a directory on disk
type LocalSource struct {
	path string
}

// 🏭 NewLocalSource creates a source for a local template directory
func NewLocalSource(path string) *LocalSource {
	return &LocalSource{path: path}
}

// 📂 Root verifies the directory exists and returns it
func (s *LocalSource) Root(ctx context.Context) (string, error) {
	info, err := os.Stat(s.path)
	if err != nil {
		return "", errors.Errorf("inspecting template directory: %w", err)
	}
	if !info.IsDir() {
		return "", errors.Errorf("template is not a directory: %s", s.path)
	}
	return s.path, nil
}

// 🚪 Close is a no-op for local sources
func (s *LocalSource) Close() error {
	return nil
}
