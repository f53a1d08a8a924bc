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

// Package answers holds the user-supplied identity of a generated project.
// Collecting the answers (interactively or from a script) happens outside
// the scaffolding core; this package only carries the resulting values.
package answers

import (
	"context"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
	"gopkg.in/yaml.v3"
)

// 💬 ProjectAnswers carries the values collected from the user
type ProjectAnswers struct {
	ProjectName string `json:"project_name" yaml:"project_name"` // New project name, may be empty
	Description string `json:"description" yaml:"description"`   // New project description, may be empty
}

// 🎯 Load reads answers from a YAML file for scripted invocations
func Load(ctx context.Context, path string) (*ProjectAnswers, error) {
	logger := zerolog.Ctx(ctx)
	logger.Debug().Str("path", path).Msg("loading answers file")

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Errorf("reading answers file: %w", err)
	}

	var a ProjectAnswers
	decoder := yaml.NewDecoder(strings.NewReader(string(data)))
	decoder.KnownFields(true)
	if err := decoder.Decode(&a); err != nil {
		return nil, errors.Errorf("parsing answers file: %w", err)
	}

	return &a, nil
}
