// FILE: lixenwraith/settings/discovery.go
package settings

import (
	"os"
	"path/filepath"
)

// ConfigOrigin identifies how the config file path was chosen.
type ConfigOrigin string

const (
	OriginOverride   ConfigOrigin = "override"
	OriginWorkingDir ConfigOrigin = "working-dir"
	OriginHome       ConfigOrigin = "home"
	OriginNone       ConfigOrigin = "none"
)

// ConfigLocation describes the file backing the file source.
type ConfigLocation struct {
	Path   string
	Origin ConfigOrigin
}

// Found reports whether a file source should be read.
func (l ConfigLocation) Found() bool {
	return l.Path != "" && l.Origin != OriginNone
}

// ConfigFileName returns the default rc filename for an identifier.
func ConfigFileName(identifier string) string {
	return "." + identifier + "rc"
}

// ResolveConfigPath picks the config file: an override is returned verbatim,
// then ./.{identifier}rc, then ~/.{identifier}rc. No match yields OriginNone.
func ResolveConfigPath(identifier, override string) ConfigLocation {
	if override != "" {
		return ConfigLocation{Path: override, Origin: OriginOverride}
	}

	name := ConfigFileName(identifier)

	// Current directory
	path := name
	if cwd, err := os.Getwd(); err == nil {
		path = filepath.Join(cwd, name)
	}
	if isRegularFile(path) {
		return ConfigLocation{Path: path, Origin: OriginWorkingDir}
	}

	// Home directory
	if home, err := os.UserHomeDir(); err == nil && home != "" {
		path = filepath.Join(home, name)
		if isRegularFile(path) {
			return ConfigLocation{Path: path, Origin: OriginHome}
		}
	}

	// No file found is not an error - the file source contributes nothing
	return ConfigLocation{Origin: OriginNone}
}

func isRegularFile(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}
