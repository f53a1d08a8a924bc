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
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	"gitlab.com/tozd/go/errors"
)

func init() {
	Register(&HCLParser{})
}

// 🔧 HCLParser implements the Parser interface for HCL files
type HCLParser struct{}

// 🔍 CanParse checks if this parser can handle the given file
func (p *HCLParser) CanParse(filename string) bool {
	return strings.HasSuffix(filename, ".hcl")
}

// 📝 Parse parses the config from HCL
func (p *HCLParser) Parse(ctx context.Context, data []byte) (*Config, error) {
	parser := hclparse.NewParser()
	hclFile, diags := parser.ParseHCL(data, "config.hcl")
	if diags.HasErrors() {
		return nil, errors.Errorf("parsing HCL: %s", diags.Error())
	}

	// Create evaluation context
	evalCtx := &hcl.EvalContext{
		Variables: map[string]cty.Value{},
	}

	// Define HCL schema
	type hclManifest struct {
		File           string `hcl:"file,optional"`
		InitialVersion string `hcl:"initial_version,optional"`
	}
	type hclConfig struct {
		Template       string       `hcl:"template"`
		Destination    string       `hcl:"destination,optional"`
		Include        []string     `hcl:"include,optional"`
		Exclude        []string     `hcl:"exclude,optional"`
		IgnorePatterns []string     `hcl:"ignore_patterns,optional"`
		Manifest       *hclManifest `hcl:"manifest,block"`
		Async          bool         `hcl:"async,optional"`
	}

	var raw hclConfig
	diags = gohcl.DecodeBody(hclFile.Body, evalCtx, &raw)
	if diags.HasErrors() {
		return nil, errors.Errorf("decoding HCL: %s", diags.Error())
	}

	cfg := &Config{
		Template:       raw.Template,
		Destination:    raw.Destination,
		Include:        raw.Include,
		Exclude:        raw.Exclude,
		IgnorePatterns: raw.IgnorePatterns,
		Async:          raw.Async,
	}
	if raw.Manifest != nil {
		cfg.Manifest = &ManifestArgs{
			File:           raw.Manifest.File,
			InitialVersion: raw.Manifest.InitialVersion,
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.Errorf("validating config: %w", err)
	}

	return cfg, nil
}
