// Package content loads the site's static records.
package content

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"net/url"
	"path"
	"strings"
	"time"
)

// Resource names, relative to a Source.
const (
	AchievementsFile   = "achievements.json"
	CertificationsFile = "certifications.json"
	ProjectsFile       = "projects.json"
	ExperienceFile     = "experience.json"
)

// maxBodyBytes caps a single JSON resource.
const maxBodyBytes = 1 << 20

// Source opens a named JSON resource.
type Source interface {
	Open(ctx context.Context, name string) (io.ReadCloser, error)
}

// FileSource reads resources from a filesystem.
type FileSource struct {
	fsys fs.FS
}

// NewFileSource reads resources from the root of fsys.
func NewFileSource(fsys fs.FS) *FileSource {
	return &FileSource{fsys: fsys}
}

// Open implements Source.
func (s *FileSource) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	f, err := s.fsys.Open(name)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", name, err)
	}
	return f, nil
}

// StatusError is returned when an HTTP source answers with a non-2xx code.
type StatusError struct {
	URL        string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("fetch %s: unexpected status %d", e.URL, e.StatusCode)
}

// HTTPSource fetches resources relative to a base URL. Failures are
// reported once; there is no retry.
type HTTPSource struct {
	base   *url.URL
	client *http.Client
}

// NewHTTPSource creates a source rooted at baseURL.
func NewHTTPSource(baseURL string, timeout time.Duration) (*HTTPSource, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse base url: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("base url %q is not absolute", baseURL)
	}
	if !strings.HasSuffix(u.Path, "/") {
		u.Path += "/"
	}
	return &HTTPSource{base: u, client: &http.Client{Timeout: timeout}}, nil
}

// Open implements Source.
func (s *HTTPSource) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	target := s.base.ResolveReference(&url.URL{Path: path.Clean(name)})

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target.String(), http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", target, err)
	}
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		_ = resp.Body.Close()
		return nil, &StatusError{URL: target.String(), StatusCode: resp.StatusCode}
	}
	return resp.Body, nil
}

// Load decodes the JSON array stored under name. An empty body or a JSON
// null yields an empty slice.
func Load[T any](ctx context.Context, src Source, name string) ([]T, error) {
	rc, err := src.Open(ctx, name)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rc.Close() }()

	var items []T
	if err := json.NewDecoder(io.LimitReader(rc, maxBodyBytes)).Decode(&items); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode %s: %w", name, err)
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

// Achievements loads achievements.json.
func Achievements(ctx context.Context, src Source) ([]Achievement, error) {
	return Load[Achievement](ctx, src, AchievementsFile)
}

// Certifications loads certifications.json.
func Certifications(ctx context.Context, src Source) ([]Certification, error) {
	return Load[Certification](ctx, src, CertificationsFile)
}

// Projects loads projects.json.
func Projects(ctx context.Context, src Source) ([]Project, error) {
	return Load[Project](ctx, src, ProjectsFile)
}

// Experiences loads experience.json.
func Experiences(ctx context.Context, src Source) ([]Experience, error) {
	return Load[Experience](ctx, src, ExperienceFile)
}
