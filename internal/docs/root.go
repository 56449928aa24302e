// Package docs provides read access to the governance repository: root
// resolution and validation, file reads, ADR and template enumeration, and
// the markdown section parser used by every lookup.
//
// Nothing here caches. Each call reads the files it needs from disk so
// edits to the governance repo are visible immediately.
package docs

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Well-known entries of the governance repository.
const (
	StandardsFile    = "STANDARDS.md"
	ArchitectureFile = "ARCHITECTURE.md"
	ADRsDir          = "adrs"
	TemplatesDir     = "templates"
	TemplatesReadme  = "templates/README.md"
)

// RequiredEntries must exist under a governance root.
var RequiredEntries = []string{StandardsFile, ArchitectureFile, ADRsDir}

// DefaultRootOffset locates the governance repo relative to the directory
// holding the binary (tools/governance-mcp/bin/aces-governance).
const DefaultRootOffset = "../../.."

// ErrNotGovernanceRoot is returned when a directory is missing or lacks
// the required governance entries.
var ErrNotGovernanceRoot = errors.New("not a governance repository")

// SiblingLayout is the remediation text shown when resolution fails.
const SiblingLayout = `ACES repos must be siblings in a shared parent directory:
  parent/
    aces/           ← governance repo
    aces-schema/
    aces-runtime/
    ...
Set ACES_GOVERNANCE_REPO to the absolute path of the governance repo if your layout differs.`

// Root is a validated governance repository directory.
type Root struct {
	dir string
}

// Open validates dir as a governance root.
func Open(dir string) (*Root, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolving %s: %w", dir, err)
	}

	info, err := os.Stat(abs)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("%w: governance repo not found at %s\n\n%s",
			ErrNotGovernanceRoot, abs, SiblingLayout)
	}

	var missing []string
	for _, entry := range RequiredEntries {
		if _, err := os.Stat(filepath.Join(abs, entry)); err != nil {
			missing = append(missing, entry)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: directory %s does not look like the ACES governance repo, missing: %s\n\n%s",
			ErrNotGovernanceRoot, abs, strings.Join(missing, ", "), SiblingLayout)
	}

	return &Root{dir: abs}, nil
}

// Resolve locates the governance root. An explicit override wins;
// otherwise the root is DefaultRootOffset away from the running binary.
func Resolve(override string) (*Root, error) {
	if override != "" {
		return Open(override)
	}

	exe, err := os.Executable()
	if err != nil {
		return nil, fmt.Errorf("locating executable: %w", err)
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return Open(filepath.Join(filepath.Dir(exe), DefaultRootOffset))
}

// Dir returns the absolute root directory.
func (r *Root) Dir() string { return r.dir }

// Path joins rel onto the root.
func (r *Root) Path(rel string) string {
	return filepath.Join(r.dir, filepath.FromSlash(rel))
}

// Exists reports whether rel exists under the root.
func (r *Root) Exists(rel string) bool {
	_, err := os.Stat(r.Path(rel))
	return err == nil
}

// Read returns the content of rel under the root.
func (r *Root) Read(rel string) (string, error) {
	return ReadFile(r.Path(rel))
}

// ReadFile reads a UTF-8 text file in full, dropping a leading byte order
// mark if present.
func ReadFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}
	defer f.Close()

	dec := unicode.BOMOverride(unicode.UTF8.NewDecoder())
	data, err := io.ReadAll(transform.NewReader(f, dec))
	if err != nil {
		return "", fmt.Errorf("decoding %s: %w", path, err)
	}
	return string(data), nil
}

// ADRFile is a numbered decision record on disk.
type ADRFile struct {
	// Name is the file name, e.g. "0019-formal-methods.md".
	Name string
	// Stem is Name without the .md extension.
	Stem string
	// Path is the absolute path.
	Path string
	// Number is the 4-digit prefix, or -1 if the prefix is not numeric.
	Number int
}

// ADRs lists adrs/[0-9]*.md sorted by file name.
func (r *Root) ADRs() ([]ADRFile, error) {
	dir := r.Path(ADRsDir)
	matches, err := doublestar.Glob(os.DirFS(dir), "[0-9]*.md", doublestar.WithFilesOnly())
	if err != nil {
		return nil, fmt.Errorf("listing ADRs in %s: %w", dir, err)
	}
	sort.Strings(matches)

	out := make([]ADRFile, 0, len(matches))
	for _, name := range matches {
		out = append(out, ADRFile{
			Name:   name,
			Stem:   strings.TrimSuffix(name, ".md"),
			Path:   filepath.Join(dir, name),
			Number: adrNumber(name),
		})
	}
	return out, nil
}

// FindADR returns the first markdown file in adrs/ whose name starts with
// prefix followed by "-".
func (r *Root) FindADR(prefix string) (ADRFile, bool, error) {
	dir := r.Path(ADRsDir)
	matches, err := doublestar.Glob(os.DirFS(dir), "*.md", doublestar.WithFilesOnly())
	if err != nil {
		return ADRFile{}, false, fmt.Errorf("listing ADRs in %s: %w", dir, err)
	}
	sort.Strings(matches)

	for _, name := range matches {
		if strings.HasPrefix(name, prefix+"-") {
			return ADRFile{
				Name:   name,
				Stem:   strings.TrimSuffix(name, ".md"),
				Path:   filepath.Join(dir, name),
				Number: adrNumber(name),
			}, true, nil
		}
	}
	return ADRFile{}, false, nil
}

// NextADRNumber is the highest existing 4-digit ADR prefix plus one, or 1
// when there are none.
func NextADRNumber(adrs []ADRFile) int {
	highest := 0
	for _, a := range adrs {
		if a.Number > highest {
			highest = a.Number
		}
	}
	return highest + 1
}

func adrNumber(name string) int {
	if len(name) < 4 {
		return -1
	}
	n := 0
	for _, c := range name[:4] {
		if c < '0' || c > '9' {
			return -1
		}
		n = n*10 + int(c-'0')
	}
	return n
}

// Templates lists every file under templates/ as slash-separated paths
// relative to the templates directory, sorted. A missing templates
// directory yields an empty list.
func (r *Root) Templates() ([]string, error) {
	dir := r.Path(TemplatesDir)
	if _, err := os.Stat(dir); errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}

	matches, err := doublestar.Glob(os.DirFS(dir), "**", doublestar.WithFilesOnly())
	if err != nil {
		return nil, fmt.Errorf("listing templates in %s: %w", dir, err)
	}
	sort.Strings(matches)
	return matches, nil
}

// TemplatePath maps a template-relative path to an absolute one. ok is
// false when rel would escape the templates directory.
func (r *Root) TemplatePath(rel string) (string, bool) {
	clean := filepath.FromSlash(rel)
	if !filepath.IsLocal(clean) {
		return "", false
	}
	return filepath.Join(r.Path(TemplatesDir), clean), true
}
