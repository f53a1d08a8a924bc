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

package log_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/walteh/scaffrc/pkg/log"
)

// 🧪 newTestLogger creates a logger writing to a buffer
func newTestLogger(t *testing.T) (*log.UserLogger, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	zlog := zerolog.New(zerolog.NewTestWriter(t))
	ctx := zlog.WithContext(context.Background())
	return log.New(ctx, &buf), &buf
}

// 🧪 TestLogFileChange tests file change rendering
func TestLogFileChange(t *testing.T) {
	logger, buf := newTestLogger(t)

	logger.LogFileChange(log.FileChange{
		Type: log.FileCreated,
		Path: "src/index.ts",
	})

	assert.Contains(t, buf.String(), "src/index.ts")
}

// 🧪 TestLogFileChangeDescription tests the description suffix
func TestLogFileChangeDescription(t *testing.T) {
	logger, buf := newTestLogger(t)

	logger.LogFileChange(log.FileChange{
		Type:        log.FileSkipped,
		Path:        "src/internal",
		Description: "excluded by rule",
	})

	out := buf.String()
	assert.Contains(t, out, "src/internal")
	assert.Contains(t, out, "excluded by rule")
}

// 🧪 TestMessages tests the message helpers
func TestMessages(t *testing.T) {
	logger, buf := newTestLogger(t)

	logger.Header("creating project")
	logger.Successf("created %s", "my-server")
	logger.Warningf("%d entries missing", 1)
	logger.Errorf("failed: %s", "disk full")

	out := buf.String()
	assert.Contains(t, out, "scaffrc")
	assert.Contains(t, out, "my-server")
	assert.Contains(t, out, "1 entries missing")
	assert.Contains(t, out, "disk full")
}
