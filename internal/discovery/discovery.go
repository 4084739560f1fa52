// Package discovery locates the web-frontend artifacts perflint audits:
// the markup entry point, stylesheets, auxiliary test pages, and assets.
package discovery

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// ArtifactType categorizes discovered artifacts.
type ArtifactType int

const (
	ArtifactUnknown ArtifactType = iota
	ArtifactMarkup
	ArtifactStylesheet
	ArtifactTestPage
	ArtifactAsset
)

// String returns the human-readable name of the artifact type.
func (at ArtifactType) String() string {
	switch at {
	case ArtifactMarkup:
		return "markup"
	case ArtifactStylesheet:
		return "stylesheet"
	case ArtifactTestPage:
		return "test-page"
	case ArtifactAsset:
		return "asset"
	default:
		return "unknown"
	}
}

// ArtifactTypeEntry defines the discovery configuration for an artifact
// type. New artifact kinds are added here without modifying Discover().
type ArtifactTypeEntry struct {
	Type     ArtifactType
	Patterns []string
}

// DefaultArtifactTypes is the registry of artifact types and their
// discovery patterns. Order matters: the entry markup pattern must come
// before the test-page patterns so index.html is never double-counted.
var DefaultArtifactTypes = []ArtifactTypeEntry{
	{Type: ArtifactMarkup, Patterns: []string{"index.html"}},
	{Type: ArtifactTestPage, Patterns: []string{"test*.html", "pages/**/*.html"}},
	{Type: ArtifactStylesheet, Patterns: []string{"*.css", "css/**/*.css", "styles/**/*.css"}},
	{Type: ArtifactAsset, Patterns: []string{"images/**/*", "img/**/*", "assets/**/*"}},
}

// assetExtensions limits asset discovery to image formats; other files in
// asset directories (fonts, videos) are outside the scoring heuristics.
var assetExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".svg":  true,
	".webp": true,
	".ico":  true,
	".bmp":  true,
	".avif": true,
}

// Artifact represents a discovered artifact with its metadata. Contents
// is populated for text artifacts only; assets carry just their size.
type Artifact struct {
	Path      string
	RelPath   string
	SizeBytes int64
	Type      ArtifactType
	Contents  string
}

// Discovery manages artifact discovery under a project root.
type Discovery struct {
	rootPath       string
	followSymlinks bool
}

// NewDiscovery creates a Discovery instance.
func NewDiscovery(rootPath string, followSymlinks bool) *Discovery {
	return &Discovery{
		rootPath:       rootPath,
		followSymlinks: followSymlinks,
	}
}

// Discover finds all relevant artifacts in the project. Artifact kinds
// with no matches are simply absent from the result; that is not an
// error, the corresponding analyzer is skipped downstream.
func (d *Discovery) Discover() ([]Artifact, error) {
	return d.DiscoverWithRegistry(DefaultArtifactTypes)
}

// DiscoverWithRegistry finds artifacts using a custom registry.
func (d *Discovery) DiscoverWithRegistry(registry []ArtifactTypeEntry) ([]Artifact, error) {
	var artifacts []Artifact
	seen := make(map[string]bool)

	for _, entry := range registry {
		matches, err := d.findByPatterns(entry.Patterns)
		if err != nil {
			return nil, fmt.Errorf("error discovering %s artifacts: %w", entry.Type.String(), err)
		}
		for _, match := range matches {
			if seen[match] {
				continue
			}
			a, ok := d.processMatch(match, entry.Type)
			if !ok {
				continue
			}
			seen[match] = true
			artifacts = append(artifacts, a)
		}
	}

	return artifacts, nil
}

// findByPatterns returns relative paths matching the given glob patterns.
func (d *Discovery) findByPatterns(patterns []string) ([]string, error) {
	var matches []string
	for _, pattern := range patterns {
		found, err := doublestar.Glob(os.DirFS(d.rootPath), pattern)
		if err != nil {
			return nil, fmt.Errorf("error evaluating pattern %s: %w", pattern, err)
		}
		matches = append(matches, found...)
	}
	return matches, nil
}

// processMatch converts a glob match into an Artifact, returning false if
// the match should be skipped.
func (d *Discovery) processMatch(match string, atype ArtifactType) (Artifact, bool) {
	fullPath := filepath.Join(d.rootPath, match)

	info, err := os.Lstat(fullPath)
	if err != nil || info.IsDir() {
		return Artifact{}, false
	}

	if info.Mode()&os.ModeSymlink != 0 {
		resolved, resolvedInfo, ok := d.resolveSymlink(fullPath)
		if !ok {
			return Artifact{}, false
		}
		fullPath = resolved
		info = resolvedInfo
	}

	a := Artifact{
		Path:      fullPath,
		RelPath:   match,
		SizeBytes: info.Size(),
		Type:      atype,
	}

	if atype == ArtifactAsset {
		if !assetExtensions[strings.ToLower(filepath.Ext(match))] {
			return Artifact{}, false
		}
		return a, true
	}

	contents, err := os.ReadFile(fullPath)
	if err != nil {
		return Artifact{}, false
	}
	a.Contents = string(contents)
	return a, true
}

// resolveSymlink follows a symlink if configured, rejecting targets that
// escape the project root.
func (d *Discovery) resolveSymlink(fullPath string) (string, os.FileInfo, bool) {
	if !d.followSymlinks {
		return "", nil, false
	}

	realPath, err := filepath.EvalSymlinks(fullPath)
	if err != nil {
		return "", nil, false
	}
	if !strings.HasPrefix(realPath, d.rootPath) {
		return "", nil, false
	}

	info, err := os.Stat(realPath)
	if err != nil {
		return "", nil, false
	}
	return realPath, info, true
}

// ByType partitions artifacts by their type, preserving discovery order.
func ByType(artifacts []Artifact) map[ArtifactType][]Artifact {
	grouped := make(map[ArtifactType][]Artifact)
	for _, a := range artifacts {
		grouped[a.Type] = append(grouped[a.Type], a)
	}
	return grouped
}
