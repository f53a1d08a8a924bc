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

package config

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
	"gopkg.in/yaml.v3"
)

// 🔌 Parser is the interface for config parsers
type Parser interface {
	// 📝 Parse parses the config from bytes
	Parse(ctx context.Context, data []byte) (*Config, error)

	// 🔍 CanParse checks if this parser can handle the given file
	CanParse(filename string) bool
}

var (
	// 🗺️ parsers is a list of available parsers
	parsers []Parser
)

// 📝 Register registers a parser
func Register(p Parser) {
	parsers = append(parsers, p)
}

// 🎯 GetParser returns a parser that can handle the given file
func GetParser(filename string) Parser {
	for _, p := range parsers {
		if p.CanParse(filename) {
			return p
		}
	}
	return nil
}

// 📄 ManifestArgs configures how the generated project's manifest is written
type ManifestArgs struct {
	File           string `json:"file,omitempty" yaml:"file,omitempty"`                       // Manifest file name (default package.json)
	InitialVersion string `json:"initial_version,omitempty" yaml:"initial_version,omitempty"` // Version stamped on new projects
}

// 📚 Config represents the complete scaffolding configuration
type Config struct {
	Template       string        `json:"template" yaml:"template"`                                   // Template root dir or remote ref
	Destination    string        `json:"destination,omitempty" yaml:"destination,omitempty"`         // Destination project dir
	Include        []string      `json:"include,omitempty" yaml:"include,omitempty"`                 // Allow-listed top-level entries
	Exclude        []string      `json:"exclude,omitempty" yaml:"exclude,omitempty"`                 // Deny-listed relative paths
	IgnorePatterns []string      `json:"ignore_patterns,omitempty" yaml:"ignore_patterns,omitempty"` // Glob patterns never copied
	Manifest       *ManifestArgs `json:"manifest,omitempty" yaml:"manifest,omitempty"`
	Async          bool          `json:"async,omitempty" yaml:"async,omitempty"`
}

// 🏷️ Defaults for manifest handling
const (
	DefaultManifestFile   = "package.json"
	DefaultInitialVersion = "0.1.0"
)

// 🎯 Load loads the configuration from a file
func Load(ctx context.Context, path string) (*Config, error) {
	logger := zerolog.Ctx(ctx)
	logger.Debug().Str("path", path).Msg("loading configuration")

	// Read config file
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Errorf("reading config file: %w", err)
	}

	// Get parser
	p := GetParser(path)
	if p == nil {
		return nil, errors.Errorf("no parser found for file: %s", path)
	}

	// Parse config
	cfg, err := p.Parse(ctx, data)
	if err != nil {
		return nil, errors.Errorf("parsing config: %w", err)
	}

	return cfg, nil
}

// 🔍 Validate checks if the configuration is valid and fills in defaults
func (cfg *Config) Validate() error {
	// Check required fields
	if cfg.Template == "" {
		return errors.Errorf("template is required")
	}

	// Clean up paths
	if cfg.Destination != "" {
		cfg.Destination = filepath.Clean(cfg.Destination)
	}

	// Set defaults
	if cfg.Manifest == nil {
		cfg.Manifest = &ManifestArgs{}
	}
	if cfg.Manifest.File == "" {
		cfg.Manifest.File = DefaultManifestFile
	}
	if cfg.Manifest.InitialVersion == "" {
		cfg.Manifest.InitialVersion = DefaultInitialVersion
	}

	return nil
}

// 📝 String returns a string representation of the config
func (cfg *Config) String() string {
	return fmt.Sprintf("%s -> %s (%d entries, %d exclusions)",
		cfg.Template, cfg.Destination, len(cfg.Include), len(cfg.Exclude))
}

// 🔧 YAMLParser implements the Parser interface for YAML files
type YAMLParser struct{}

func init() {
	Register(&YAMLParser{})
}

func (p *YAMLParser) CanParse(filename string) bool {
	return strings.HasSuffix(filename, ".yaml") || strings.HasSuffix(filename, ".yml")
}

func (p *YAMLParser) Parse(ctx context.Context, data []byte) (*Config, error) {
	var cfg Config
	decoder := yaml.NewDecoder(strings.NewReader(string(data)))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil {
		return nil, errors.Errorf("parsing YAML: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.Errorf("validating config: %w", err)
	}

	return &cfg, nil
}
