package manifest

import (
	"fmt"
	"path"
	"path/filepath"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// SupportedVersions is the manifest format range this build understands.
const SupportedVersions = "^1.0.0"

var supported = mustConstraint(SupportedVersions)

func mustConstraint(s string) *semver.Constraints {
	c, err := semver.NewConstraint(s)
	if err != nil {
		panic(err)
	}
	return c
}

// CheckVersion reports whether v is a manifest format version this build
// can process.
func CheckVersion(v string) error {
	ver, err := semver.NewVersion(v)
	if err != nil {
		return fmt.Errorf("version %q is not semver: %w", v, err)
	}
	if !supported.Check(ver) {
		return fmt.Errorf("version %s is not supported (want %s)", ver, SupportedVersions)
	}
	return nil
}

// CheckDir reports whether dir is a relative path that stays under the
// scaffold root.
func CheckDir(dir string) error {
	if strings.Contains(dir, `\`) {
		return fmt.Errorf("directory %q must use forward slashes", dir)
	}
	if path.IsAbs(dir) || filepath.IsAbs(dir) || filepath.VolumeName(dir) != "" {
		return fmt.Errorf("directory %q must be relative", dir)
	}
	clean := path.Clean(dir)
	if clean == ".." || strings.HasPrefix(clean, "../") {
		return fmt.Errorf("directory %q escapes the scaffold root", dir)
	}
	return nil
}

// CheckFileName reports whether name is a bare file name.
func CheckFileName(name string) error {
	if name == "" || name == "." || name == ".." {
		return fmt.Errorf("file name %q is not allowed", name)
	}
	if strings.ContainsAny(name, `/\`) {
		return fmt.Errorf("file name %q must not contain path separators", name)
	}
	return nil
}

// CheckRules applies the version and path rules to a decoded manifest.
func CheckRules(m *Manifest) []ValidationIssue {
	var issues []ValidationIssue
	add := func(p string, err error) {
		issues = append(issues, ValidationIssue{Path: p, Message: err.Error(), Keyword: "rule"})
	}

	if err := CheckVersion(m.Version); err != nil {
		add("/version", err)
	}
	for i, e := range m.Entries {
		if err := CheckDir(e.Dir); err != nil {
			add(fmt.Sprintf("/entries/%d/dir", i), err)
		}
		for j, f := range e.Files {
			if err := CheckFileName(f.Name); err != nil {
				add(fmt.Sprintf("/entries/%d/files/%d/name", i, j), err)
			}
		}
	}
	return issues
}
