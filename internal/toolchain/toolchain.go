package toolchain

import (
	"fmt"
	"os/exec"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// goOutput allows tests to override `go version` invocation.
var goOutput = func() ([]byte, error) {
	return exec.Command("go", "version").Output()
}

// Status describes one probed binary.
type Status struct {
	Name    string `json:"name"`
	Found   bool   `json:"found"`
	Path    string `json:"path,omitempty"`
	Version string `json:"version,omitempty"`
}

// Probe checks whether the named binary is on PATH.
func Probe(name string) Status {
	path, err := exec.LookPath(name)
	if err != nil {
		return Status{Name: name}
	}
	return Status{Name: name, Found: true, Path: path}
}

// ProbeGo checks for the Go toolchain and reports its version.
func ProbeGo() Status {
	st := Probe("go")
	if !st.Found {
		return st
	}
	out, err := goOutput()
	if err != nil {
		return st
	}
	if v, err := ParseGoVersion(string(out)); err == nil {
		st.Version = v
	}
	return st
}

// ParseGoVersion extracts the version number from `go version` output,
// e.g. "go version go1.25.1 linux/amd64" → "1.25.1".
func ParseGoVersion(out string) (string, error) {
	fields := strings.Fields(out)
	for _, f := range fields {
		if strings.HasPrefix(f, "go") && len(f) > 2 && f[2] >= '0' && f[2] <= '9' {
			return strings.TrimPrefix(f, "go"), nil
		}
	}
	return "", fmt.Errorf("cannot parse go version from %q", strings.TrimSpace(out))
}

// Satisfies reports whether version meets the minimum. Versions are
// compared as semver; Go's two-part versions ("1.25") are accepted.
func Satisfies(version, minimum string) (bool, error) {
	v, err := semver.NewVersion(version)
	if err != nil {
		return false, fmt.Errorf("invalid version %q: %w", version, err)
	}
	min, err := semver.NewVersion(minimum)
	if err != nil {
		return false, fmt.Errorf("invalid minimum version %q: %w", minimum, err)
	}
	return !v.LessThan(min), nil
}
