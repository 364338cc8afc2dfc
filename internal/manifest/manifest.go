// Package manifest reads and patches the project manifest (package.json).
//
// The manifest is the source of truth once a project exists: existing
// non-empty values are never clobbered by generated defaults, and only
// structural fields (files, main, an empty keywords baseline) are supplied
// when absent.
package manifest

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sort"

	"github.com/webgen/cli/internal/output"
)

// Filename is the manifest file name inside the destination root.
const Filename = "package.json"

// DependencyGroups are the recognized dependency groupings, normalized
// for deterministic output on save.
var DependencyGroups = []string{
	"dependencies",
	"devDependencies",
	"peerDependencies",
	"optionalDependencies",
}

// Manifest is a loaded project manifest. Unknown fields are preserved
// verbatim in the underlying document.
type Manifest struct {
	raw map[string]any
}

// New returns an empty manifest.
func New() *Manifest {
	return &Manifest{raw: make(map[string]any)}
}

// Load reads the manifest from dir. A missing or malformed file yields an
// empty manifest; it is never fatal.
func Load(dir string) *Manifest {
	path := filepath.Join(dir, Filename)

	data, err := os.ReadFile(path)
	if err != nil {
		output.Debug("no manifest found", "path", path)
		return New()
	}

	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		output.Warn("malformed manifest ignored", "path", path, "error", err)
		return New()
	}
	if raw == nil {
		raw = make(map[string]any)
	}

	return &Manifest{raw: raw}
}

// Save writes the manifest to dir with two-space indentation. Object keys
// are emitted in lexicographic order, which keeps the dependency groups
// sorted and diff-friendly.
func (m *Manifest) Save(dir string) error {
	data, err := json.MarshalIndent(m.raw, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')
	return os.WriteFile(filepath.Join(dir, Filename), data, 0o644)
}

// Empty reports whether the manifest has no fields at all.
func (m *Manifest) Empty() bool {
	return len(m.raw) == 0
}

// GetString returns a top-level string field, or "" when the field is
// missing or not a string.
func (m *Manifest) GetString(key string) string {
	s, _ := m.raw[key].(string)
	return s
}

// Set assigns a top-level field unconditionally.
func (m *Manifest) Set(key string, value any) {
	m.raw[key] = value
}

// Name returns the manifest name, "" when unset.
func (m *Manifest) Name() string { return m.GetString("name") }

// Description returns the manifest description, "" when unset.
func (m *Manifest) Description() string { return m.GetString("description") }

// Homepage returns the manifest homepage, "" when unset.
func (m *Manifest) Homepage() string { return m.GetString("homepage") }

// License returns the declared license identifier, "" when unset.
func (m *Manifest) License() string { return m.GetString("license") }

// Keywords returns the manifest keywords with empty entries dropped and
// duplicates removed.
func (m *Manifest) Keywords() []string {
	list, _ := m.raw["keywords"].([]any)
	var out []string
	seen := make(map[string]bool)
	for _, v := range list {
		s, _ := v.(string)
		if s == "" || seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, s)
	}
	return out
}

// Author returns the manifest author. A structured record is used
// directly; a free-text string is parsed best-effort. The second return
// is false when no usable author information is present.
func (m *Manifest) Author() (Person, bool) {
	switch a := m.raw["author"].(type) {
	case map[string]any:
		p := Person{}
		p.Name, _ = a["name"].(string)
		p.Email, _ = a["email"].(string)
		p.URL, _ = a["url"].(string)
		return p, p.Name != "" || p.Email != "" || p.URL != ""
	case string:
		return ParsePerson(a)
	default:
		return Person{}, false
	}
}

// SetAuthor stores the author as a structured record.
func (m *Manifest) SetAuthor(p Person) {
	author := map[string]any{}
	if p.Name != "" {
		author["name"] = p.Name
	}
	if p.Email != "" {
		author["email"] = p.Email
	}
	if p.URL != "" {
		author["url"] = p.URL
	}
	m.raw["author"] = author
}

// ApplyDefaults performs a defaults-deep merge: a default value is taken
// only where the manifest has no non-empty value; nested maps are merged
// recursively. Existing manifest values always win.
func (m *Manifest) ApplyDefaults(defaults map[string]any) {
	deepDefaults(m.raw, defaults)
}

func deepDefaults(dst, defaults map[string]any) {
	for k, dv := range defaults {
		ev, exists := dst[k]
		if !exists || isEmptyValue(ev) {
			dst[k] = dv
			continue
		}
		em, ok1 := ev.(map[string]any)
		dm, ok2 := dv.(map[string]any)
		if ok1 && ok2 {
			deepDefaults(em, dm)
		}
	}
}

func isEmptyValue(v any) bool {
	switch t := v.(type) {
	case nil:
		return true
	case string:
		return t == ""
	case []any:
		return len(t) == 0
	case map[string]any:
		return len(t) == 0
	default:
		return false
	}
}

// AddKeywords unions the given keywords with the existing set,
// deduplicated, with empty entries discarded.
func (m *Manifest) AddKeywords(keywords []string) {
	merged := m.Keywords()
	seen := make(map[string]bool, len(merged))
	for _, k := range merged {
		seen[k] = true
	}
	for _, k := range keywords {
		if k == "" || seen[k] {
			continue
		}
		seen[k] = true
		merged = append(merged, k)
	}

	out := make([]any, 0, len(merged))
	for _, k := range merged {
		out = append(out, k)
	}
	m.raw["keywords"] = out
}

// NormalizeDependencies cleans each recognized dependency grouping:
// entries whose version is not a string are dropped so the written
// manifest is always installable. Groupings that are absent or not a
// mapping are left untouched. Key ordering is handled at Save.
func (m *Manifest) NormalizeDependencies() {
	for _, group := range DependencyGroups {
		deps, ok := m.raw[group].(map[string]any)
		if !ok {
			continue
		}
		normalized := make(map[string]any, len(deps))
		for name, version := range deps {
			v, ok := version.(string)
			if !ok || v == "" {
				continue
			}
			normalized[name] = v
		}
		m.raw[group] = normalized
	}
}

// DependencyNames returns the sorted entry names of a dependency
// grouping, or nil when the grouping is absent or not a mapping.
func (m *Manifest) DependencyNames(group string) []string {
	deps, ok := m.raw[group].(map[string]any)
	if !ok {
		return nil
	}
	names := make([]string, 0, len(deps))
	for name := range deps {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
