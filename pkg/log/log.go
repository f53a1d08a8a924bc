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

package log

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/fatih/color"
	"github.com/pterm/pterm"
	"github.com/rs/zerolog"
)

// 🎨 Display configuration
const (
	fileIndent = 4  // spaces to indent file entries
	nameWidth  = 35 // Base width for filename
)

// 🎨 ChangeType represents the kind of change made to a destination file
type ChangeType int

const (
	FileCreated ChangeType = iota
	FileTransformed
	FileSkipped
	FileMissing
	FileFailed
)

// 🖼️ FileChange represents one scaffolded file for user display
type FileChange struct {
	Type        ChangeType
	Path        string
	Description string
	Error       error
}

// 🎯 UserLogger handles user-facing console output alongside structured logs
type UserLogger struct {
	zlog    zerolog.Logger
	console io.Writer
	mu      sync.Mutex
}

// 🏭 New creates a new user logger
func New(ctx context.Context, console io.Writer) *UserLogger {
	return &UserLogger{
		zlog:    *zerolog.Ctx(ctx),
		console: console,
	}
}

// 📝 LogFileChange logs one file outcome with symbol and color
func (l *UserLogger) LogFileChange(change FileChange) {
	l.mu.Lock()
	defer l.mu.Unlock()

	var symbol rune
	var symbolColor color.Attribute
	switch change.Type {
	case FileCreated:
		symbol = '✓'
		symbolColor = color.FgGreen
	case FileTransformed:
		symbol = '⟳'
		symbolColor = color.FgBlue
	case FileSkipped:
		symbol = '-'
		symbolColor = color.FgYellow
	case FileMissing:
		symbol = '?'
		symbolColor = color.FgYellow
	case FileFailed:
		symbol = '✗'
		symbolColor = color.FgRed
	}

	line := fmt.Sprintf("%s%s %s",
		fmt.Sprintf("%*s", fileIndent, ""),
		color.New(symbolColor).Sprint(string(symbol)),
		fmt.Sprintf("%-*s", nameWidth, change.Path))
	if change.Description != "" {
		line += color.New(color.Faint).Sprint(change.Description)
	}
	fmt.Fprintln(l.console, line)

	if change.Error != nil {
		pterm.Error.Println(change.Error)
	}

	l.zlog.Info().
		Str("file", change.Path).
		Int("type", int(change.Type)).
		Err(change.Error).
		Msg("file change")
}

// 📝 Header logs the tool header with a message
func (l *UserLogger) Header(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	name := color.New(color.Bold, color.FgCyan).Sprint("scaffrc")
	fmt.Fprintf(l.console, "\n%s %s\n\n", name, color.New(color.Faint).Sprint("• "+msg))
	l.zlog.Info().Msg(msg)
}

// 📝 Success logs a success message
func (l *UserLogger) Success(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "✅ %s\n", color.New(color.FgGreen).Sprint(msg))
	l.zlog.Info().Msg(msg)
}

// 📝 Warning logs a warning message
func (l *UserLogger) Warning(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "⚠️  %s\n", color.New(color.FgYellow).Sprint(msg))
	l.zlog.Warn().Msg(msg)
}

// 📝 Error logs an error message
func (l *UserLogger) Error(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "❌ %s\n", color.New(color.FgRed).Sprint(msg))
	l.zlog.Error().Msg(msg)
}

// 📝 Successf logs a formatted success message
func (l *UserLogger) Successf(format string, args ...interface{}) {
	l.Success(fmt.Sprintf(format, args...))
}

// 📝 Warningf logs a formatted warning message
func (l *UserLogger) Warningf(format string, args ...interface{}) {
	l.Warning(fmt.Sprintf(format, args...))
}

// 📝 Errorf logs a formatted error message
func (l *UserLogger) Errorf(format string, args ...interface{}) {
	l.Error(fmt.Sprintf(format, args...))
}
