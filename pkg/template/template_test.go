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

package template_test

import (
	"archive/tar"
	"bytes"
	"compress/gzip"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/walteh/scaffrc/pkg/template"
)

// 🧪 TestParseRef tests GitHub template reference parsing
func TestParseRef(t *testing.T) {
	tests := []struct {
		name      string
		ref       string
		wantOwner string
		wantRepo  string
		wantRef   string
		wantErr   bool
	}{
		{
			name:      "plain",
			ref:       "github.com/acme/server-template",
			wantOwner: "acme",
			wantRepo:  "server-template",
			wantRef:   "main",
		},
		{
			name:      "with_ref",
			ref:       "github.com/acme/server-template@v2",
			wantOwner: "acme",
			wantRepo:  "server-template",
			wantRef:   "v2",
		},
		{
			name:    "missing_repo",
			ref:     "github.com/acme",
			wantErr: true,
		},
		{
			name:    "too_many_segments",
			ref:     "github.com/acme/repo/extra",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			owner, repo, ref, err := template.ParseRef(tt.ref)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantOwner, owner)
			assert.Equal(t, tt.wantRepo, repo)
			assert.Equal(t, tt.wantRef, ref)
		})
	}
}

// 🧪 TestResolveLocal tests resolution of local directory references
func TestResolveLocal(t *testing.T) {
	dir := t.TempDir()

	src, err := template.Resolve(context.Background(), dir)
	require.NoError(t, err)
	defer src.Close()

	root, err := src.Root(context.Background())
	require.NoError(t, err)
	assert.Equal(t, dir, root)
}

// 🧪 TestLocalSourceErrors tests local source validation
func TestLocalSourceErrors(t *testing.T) {
	t.Run("missing_directory", func(t *testing.T) {
		src := template.NewLocalSource(filepath.Join(t.TempDir(), "nope"))
		_, err := src.Root(context.Background())
		require.Error(t, err)
	})

	t.Run("not_a_directory", func(t *testing.T) {
		file := filepath.Join(t.TempDir(), "file.txt")
		require.NoError(t, os.WriteFile(file, []byte("x"), 0644))

		src := template.NewLocalSource(file)
		_, err := src.Root(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not a directory")
	})
}

// 🧪 buildTarball builds an in-memory gzipped tarball
func buildTarball(t *testing.T, files map[string]string) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	gz := gzip.NewWriter(&buf)
	tw := tar.NewWriter(gz)

	for name, content := range files {
		require.NoError(t, tw.WriteHeader(&tar.Header{
			Name:     name,
			Typeflag: tar.TypeReg,
			Mode:     0644,
			Size:     int64(len(content)),
		}))
		_, err := tw.Write([]byte(content))
		require.NoError(t, err)
	}

	require.NoError(t, tw.Close())
	require.NoError(t, gz.Close())
	return &buf
}

// 🧪 TestExtractArchive tests tarball extraction
func TestExtractArchive(t *testing.T) {
	dir := t.TempDir()
	buf := buildTarball(t, map[string]string{
		"acme-tmpl-abc123/README.md":   "# template",
		"acme-tmpl-abc123/src/main.ts": "export {}",
	})

	require.NoError(t, template.ExtractArchive(context.Background(), buf, dir))

	data, err := os.ReadFile(filepath.Join(dir, "acme-tmpl-abc123", "README.md"))
	require.NoError(t, err)
	assert.Equal(t, "# template", string(data))

	data, err = os.ReadFile(filepath.Join(dir, "acme-tmpl-abc123", "src", "main.ts"))
	require.NoError(t, err)
	assert.Equal(t, "export {}", string(data))
}

// 🧪 TestExtractArchiveRejectsEscape tests path traversal rejection
func TestExtractArchiveRejectsEscape(t *testing.T) {
	dir := t.TempDir()
	buf := buildTarball(t, map[string]string{
		"../escape.txt": "nope",
	})

	err := template.ExtractArchive(context.Background(), buf, dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "escapes extraction directory")
}

// 🧪 TestExtractArchiveNotGzip tests rejection of non-gzip input
func TestExtractArchiveNotGzip(t *testing.T) {
	err := template.ExtractArchive(context.Background(), bytes.NewReader([]byte("plain text")), t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "opening gzip stream")
}
