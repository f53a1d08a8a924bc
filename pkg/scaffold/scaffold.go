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

	"github.com/walteh/scaffrc/pkg/answers"
	"github.com/walteh/scaffrc/pkg/config"
	"github.com/walteh/scaffrc/pkg/pathspec"
	"gitlab.com/tozd/go/errors"
)

// 🎯 Operation is a unit of scaffolding work
type Operation interface {
	// Execute runs the operation
	Execute(ctx context.Context) error
	// Name identifies the operation in errors and logs
	Name() string
}

// 🔧 Options contains configuration for scaffolding operations
type Options struct {
	// Config is the scaffolding configuration
	Config *config.Config
	// Answers carries the user-supplied project identity
	Answers *answers.ProjectAnswers
	// TemplateRoot is the resolved local template directory
	TemplateRoot string
	// Destination is the resolved destination directory
	Destination string
	// Report collects per-entry outcomes
	Report *Report
}

// 🔍 validate checks that the options are usable
func (opts *Options) validate() error {
	if opts.Config == nil {
		return errors.Errorf("config is required")
	}
	if opts.Answers == nil {
		return errors.Errorf("answers are required")
	}
	if opts.TemplateRoot == "" {
		return errors.Errorf("template root is required")
	}
	if opts.Destination == "" {
		return errors.Errorf("destination is required")
	}
	return nil
}

// 📦 BaseOperation holds the state shared by all operations
type BaseOperation struct {
	Options
	Exclusions *pathspec.ExclusionSet
}

// 🏭 NewBaseOperation creates a base operation with the exclusion set built
// from the config's deny-list and ignore patterns
func NewBaseOperation(opts Options) BaseOperation {
	if opts.Report == nil {
		opts.Report = NewReport()
	}
	return BaseOperation{
		Options:    opts,
		Exclusions: pathspec.New(opts.Config.Exclude, opts.Config.IgnorePatterns),
	}
}
