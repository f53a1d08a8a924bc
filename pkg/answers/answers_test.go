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

package answers_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/walteh/scaffrc/pkg/answers"
)

// 🧪 TestLoad tests loading answers from a YAML file
func TestLoad(t *testing.T) {
	logger := zerolog.New(zerolog.NewTestWriter(t))
	ctx := logger.WithContext(context.Background())

	path := filepath.Join(t.TempDir(), "answers.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
project_name: my-server
description: does things
`), 0644))

	a, err := answers.Load(ctx, path)
	require.NoError(t, err)
	assert.Equal(t, "my-server", a.ProjectName)
	assert.Equal(t, "does things", a.Description)
}

// 🧪 TestLoadErrors tests missing and malformed answers files
func TestLoadErrors(t *testing.T) {
	logger := zerolog.New(zerolog.NewTestWriter(t))
	ctx := logger.WithContext(context.Background())

	t.Run("missing_file", func(t *testing.T) {
		_, err := answers.Load(ctx, filepath.Join(t.TempDir(), "nope.yaml"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "reading answers file")
	})

	t.Run("unknown_field", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "answers.yaml")
		require.NoError(t, os.WriteFile(path, []byte("bogus: 1\n"), 0644))

		_, err := answers.Load(ctx, path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "parsing answers file")
	})
}
