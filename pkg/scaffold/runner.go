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

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
	"golang.org/x/sync/errgroup"
)

// 🏃 Runner executes scaffolding operations
type Runner struct {
	logger *zerolog.Logger
	async  bool
}

// 🏗️ NewRunner creates a new runner
func NewRunner(logger *zerolog.Logger, async bool) *Runner {
	return &Runner{
		logger: logger,
		async:  async,
	}
}

// 🏃 Run executes the given operations, in order when synchronous and
// concurrently when async. Operations must not depend on each other's
// ordering in async mode.
func (r *Runner) Run(ctx context.Context, ops ...Operation) error {
	if r.async {
		return r.runAsync(ctx, ops)
	}
	return r.runSync(ctx, ops)
}

// 🔄 runSync runs operations one after another
func (r *Runner) runSync(ctx context.Context, ops []Operation) error {
	for _, op := range ops {
		r.logger.Debug().Str("operation", op.Name()).Msg("running operation")
		if err := op.Execute(ctx); err != nil {
			return errors.Errorf("running %s: %w", op.Name(), err)
		}
	}
	return nil
}

// ⚡ runAsync runs operations concurrently with per-operation error context
func (r *Runner) runAsync(ctx context.Context, ops []Operation) error {
	g, ctx := errgroup.WithContext(ctx)
	for _, op := range ops {
		op := op
		r.logger.Debug().Str("operation", op.Name()).Msg("starting operation")
		g.Go(func() error {
			if err := op.Execute(ctx); err != nil {
				return errors.Errorf("running %s: %w", op.Name(), err)
			}
			return nil
		})
	}
	return g.Wait()
}
