package templates

import (
	"bytes"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/webgen/cli/internal/output"
)

// Rules control which template files are rendered, copied, or skipped,
// and which staged files are renamed afterwards.
type Rules struct {
	// Excludes are doublestar globs of files that must not be produced.
	Excludes []string

	// RawCopies are globs of files copied verbatim, bypassing the
	// template engine (binary assets would be corrupted by it).
	RawCopies []string

	// Renames maps staged output names to their final hidden names.
	// Applied only after the whole tree has been rendered; renaming
	// earlier would make the renderer fail to locate staged files.
	Renames map[string]string
}

// Render writes the template tree into destRoot, applying rules, and
// returns the relative paths of the files it created and of those it
// skipped. Files that already exist in the destination are never
// overwritten; they are reported as skipped.
func Render(destRoot string, data Data, rules Rules) (created, skipped []string, err error) {

	err = fs.WalkDir(appFS, appRoot, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		rel := strings.TrimPrefix(path, appRoot+"/")
		target := strings.TrimSuffix(rel, ".tmpl")

		if matchAny(rules.Excludes, target) {
			output.Debug("template excluded", "path", target)
			return nil
		}

		content, err := fs.ReadFile(appFS, path)
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}

		// Raw copies bypass rendering entirely.
		if !matchAny(rules.RawCopies, target) && strings.HasSuffix(rel, ".tmpl") {
			content, err = renderFile(rel, content, data)
			if err != nil {
				return err
			}
		}

		targetPath := filepath.Join(destRoot, target)
		if _, err := os.Stat(targetPath); err == nil {
			output.Debug("file exists, skipped", "path", target)
			skipped = append(skipped, target)
			return nil
		}

		if err := os.MkdirAll(filepath.Dir(targetPath), 0o755); err != nil {
			return fmt.Errorf("creating directory for %s: %w", target, err)
		}
		if err := os.WriteFile(targetPath, content, 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", target, err)
		}

		created = append(created, target)
		return nil
	})
	if err != nil {
		return nil, nil, fmt.Errorf("walking template tree: %w", err)
	}

	renamed, err := applyRenames(destRoot, rules.Renames, created)
	if err != nil {
		return nil, nil, err
	}
	return renamed, skipped, nil
}

func renderFile(name string, content []byte, data Data) ([]byte, error) {
	tmpl, err := template.New(name).Parse(string(content))
	if err != nil {
		return nil, fmt.Errorf("parsing template %s: %w", name, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing template %s: %w", name, err)
	}
	return buf.Bytes(), nil
}

// applyRenames moves staged files to their hidden names. A staged file
// whose hidden form already exists is dropped rather than clobbering it.
func applyRenames(destRoot string, renames map[string]string, created []string) ([]string, error) {
	if len(renames) == 0 {
		return created, nil
	}

	out := make([]string, 0, len(created))
	for _, rel := range created {
		to, ok := renames[rel]
		if !ok {
			out = append(out, rel)
			continue
		}

		from := filepath.Join(destRoot, rel)
		target := filepath.Join(destRoot, to)
		if _, err := os.Stat(target); err == nil {
			output.Debug("hidden form exists, staged file dropped", "path", to)
			if err := os.Remove(from); err != nil {
				return nil, fmt.Errorf("removing staged %s: %w", rel, err)
			}
			continue
		}
		if err := os.Rename(from, target); err != nil {
			return nil, fmt.Errorf("renaming %s to %s: %w", rel, to, err)
		}
		out = append(out, to)
	}
	return out, nil
}

func matchAny(globs []string, rel string) bool {
	for _, g := range globs {
		if ok, err := doublestar.Match(g, rel); err == nil && ok {
			return true
		}
	}
	return false
}
