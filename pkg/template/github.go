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

package template

import (
	"archive/tar"
	"compress/gzip"
	"context"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/go-github/v60/github"
	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
	"golang.org/x/oauth2"
)

// 🐙 GitHubSource serves a template from a GitHub repository tarball
type GitHubSource struct {
	client *github.Client
	owner  string
	repo   string
	ref    string
	tmpDir string
}

// 🔍 ParseRef parses a "github.com/owner/repo[@ref]" template reference
func ParseRef(ref string) (owner, repo, gitRef string, err error) {
	trimmed := strings.TrimPrefix(ref, "github.com/")

	gitRef = "main"
	if at := strings.LastIndex(trimmed, "@"); at >= 0 {
		gitRef = trimmed[at+1:]
		trimmed = trimmed[:at]
	}

	parts := strings.Split(trimmed, "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", "", errors.Errorf("invalid template reference: %s", ref)
	}

	return parts[0], parts[1], gitRef, nil
}

// 🏭 NewGitHubSource creates a source for a GitHub-hosted template. A
// GITHUB_TOKEN environment variable is used when present; public templates
// work without one.
func NewGitHubSource(ctx context.Context, ref string) (*GitHubSource, error) {
	owner, repo, gitRef, err := ParseRef(ref)
	if err != nil {
		return nil, errors.Errorf("parsing template reference: %w", err)
	}

	httpClient := http.DefaultClient
	if token := os.Getenv("GITHUB_TOKEN"); token != "" {
		ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
		httpClient = oauth2.NewClient(ctx, ts)
	}

	return &GitHubSource{
		client: github.NewClient(httpClient),
		owner:  owner,
		repo:   repo,
		ref:    gitRef,
	}, nil
}

// 📂 Root downloads and extracts the repository tarball into a temp
// directory and returns the extracted tree's root
func (s *GitHubSource) Root(ctx context.Context) (string, error) {
	logger := zerolog.Ctx(ctx)

	if s.tmpDir != "" {
		return s.extractedRoot()
	}

	// Get download URL
	url, _, err := s.client.Repositories.GetArchiveLink(ctx, s.owner, s.repo, github.Tarball, &github.RepositoryContentGetOptions{
		Ref: s.ref,
	}, 5)
	if err != nil {
		return "", errors.Errorf("getting archive link: %w", err)
	}

	logger.Debug().Str("url", url.String()).Msg("downloading template tarball")

	body, err := s.download(ctx, url.String())
	if err != nil {
		return "", errors.Errorf("downloading tarball: %w", err)
	}
	defer body.Close()

	tmpDir, err := os.MkdirTemp("", "scaffrc-template-*")
	if err != nil {
		return "", errors.Errorf("creating temp directory: %w", err)
	}

	if err := ExtractArchive(ctx, body, tmpDir); err != nil {
		os.RemoveAll(tmpDir)
		return "", errors.Errorf("extracting tarball: %w", err)
	}

	s.tmpDir = tmpDir
	return s.extractedRoot()
}

// 🚪 Close removes the extracted temp directory
func (s *GitHubSource) Close() error {
	if s.tmpDir == "" {
		return nil
	}
	return os.RemoveAll(s.tmpDir)
}

// 📥 download fetches a URL
func (s *GitHubSource) download(ctx context.Context, url string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errors.Errorf("creating request: %w", err)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, errors.Errorf("downloading file: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, errors.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	return resp.Body, nil
}

// 📂 extractedRoot finds the single top-level directory GitHub puts inside
// its tarballs ("owner-repo-sha")
func (s *GitHubSource) extractedRoot() (string, error) {
	entries, err := os.ReadDir(s.tmpDir)
	if err != nil {
		return "", errors.Errorf("reading extracted directory: %w", err)
	}

	for _, entry := range entries {
		if entry.IsDir() {
			return filepath.Join(s.tmpDir, entry.Name()), nil
		}
	}

	return "", errors.Errorf("no directory found in extracted tarball")
}

// 📦 ExtractArchive extracts a gzipped tarball into dir, rejecting entries
// that would escape it
func ExtractArchive(ctx context.Context, r io.Reader, dir string) error {
	gz, err := gzip.NewReader(r)
	if err != nil {
		return errors.Errorf("opening gzip stream: %w", err)
	}
	defer gz.Close()

	tr := tar.NewReader(gz)
	for {
		if err := ctx.Err(); err != nil {
			return errors.Errorf("extraction cancelled: %w", err)
		}

		header, err := tr.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return errors.Errorf("reading tar entry: %w", err)
		}

		target, err := sanitizePath(dir, header.Name)
		if err != nil {
			return err
		}

		switch header.Typeflag {
		case tar.TypeDir:
			if err := os.MkdirAll(target, 0755); err != nil {
				return errors.Errorf("creating directory %s: %w", target, err)
			}
		case tar.TypeReg:
			if err := os.MkdirAll(filepath.Dir(target), 0755); err != nil {
				return errors.Errorf("creating parent directory: %w", err)
			}
			data, err := io.ReadAll(tr)
			if err != nil {
				return errors.Errorf("reading tar file %s: %w", header.Name, err)
			}
			if err := os.WriteFile(target, data, 0644); err != nil {
				return errors.Errorf("writing %s: %w", target, err)
			}
		default:
			// Symlinks and special files are not part of templates.
			continue
		}
	}
}

// 🔒 sanitizePath joins a tar entry name onto dir, rejecting escapes
func sanitizePath(dir, name string) (string, error) {
	target := filepath.Join(dir, filepath.FromSlash(name))
	if !strings.HasPrefix(target, filepath.Clean(dir)+string(os.PathSeparator)) {
		return "", errors.Errorf("tar entry escapes extraction directory: %s", name)
	}
	return target, nil
}
