package file

import (
	"bufio"
	"bytes"
	"path/filepath"
	"strings"

	"github.com/keshon/svcs/internal/config"
	"github.com/keshon/svcs/internal/fs"
)

type Ignore struct {
	static  map[string]bool
	pattern []string
}

// NewIgnore loads defaults and the working tree's .svcsignore.
// A missing ignore file is not an error.
func NewIgnore(fsys fs.FS, cfg *config.RepoConfig) (*Ignore, error) {
	m := &Ignore{static: make(map[string]bool)}

	if name := cfg.RepoDirName(); name != "" {
		m.static[name] = true
	}
	m.static[config.IgnoreFile] = true

	data, err := fsys.ReadFile(cfg.IgnoreFile())
	if err != nil {
		if fsys.IsNotExist(err) {
			return m, nil
		}
		return nil, err
	}

	sc := bufio.NewScanner(bytes.NewReader(data))
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		m.pattern = append(m.pattern, line)
	}
	return m, sc.Err()
}

// Match returns true if path, or any directory above it, should be ignored.
func (m *Ignore) Match(path string) bool {
	clean := filepath.ToSlash(filepath.Clean(path))

	parts := strings.Split(clean, "/")
	for i := 1; i <= len(parts); i++ {
		if m.matchOne(strings.Join(parts[:i], "/")) {
			return true
		}
	}
	return false
}

func (m *Ignore) matchOne(clean string) bool {
	if m.static[clean] {
		return true
	}
	for _, pat := range m.pattern {
		if matchPattern(pat, clean) {
			return true
		}
	}
	return false
}

// matchPattern handles *, ?, and ** like Git
func matchPattern(pattern, path string) bool {
	pattern = strings.TrimSuffix(filepath.ToSlash(pattern), "/")
	pattern = strings.TrimPrefix(pattern, "/")
	return matchSegments(strings.Split(pattern, "/"), strings.Split(path, "/"))
}

// matchSegments matches pattern segments recursively
func matchSegments(pats, parts []string) bool {
	for len(pats) > 0 {
		p := pats[0]
		pats = pats[1:]

		if p == "**" {
			if len(pats) == 0 {
				return len(parts) > 0
			}
			for i := 0; i <= len(parts); i++ {
				if matchSegments(pats, parts[i:]) {
					return true
				}
			}
			return false
		}

		if len(parts) == 0 {
			return false
		}

		ok, _ := filepath.Match(p, parts[0])
		if !ok {
			return false
		}

		parts = parts[1:]
	}

	return len(parts) == 0
}
