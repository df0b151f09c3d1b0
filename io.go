// File: lixenwraith/settings/io.go
package settings

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Format selects the output encoding of Dump.
type Format string

const (
	FormatRC   Format = "rc"
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
)

// ParseFormat converts a user-supplied format name.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "rc", "":
		return FormatRC, nil
	case "toml", "tml":
		return FormatTOML, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unknown settings format %q", name)
	}
}

// Dump writes the current settings to w in the given format.
func (s *Settings) Dump(w io.Writer, format Format) error {
	switch format {
	case FormatRC:
		data, err := s.marshalRC()
		if err != nil {
			return err
		}
		_, err = w.Write(data)
		return err

	case FormatTOML:
		encoder := toml.NewEncoder(w)
		if err := encoder.Encode(s.nonNil()); err != nil {
			return fmt.Errorf("failed to marshal settings to TOML: %w", err)
		}
		return nil

	case FormatYAML:
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(2)
		if err := encoder.Encode(s.nonNil()); err != nil {
			return fmt.Errorf("failed to marshal settings to YAML: %w", err)
		}
		return encoder.Close()

	default:
		return fmt.Errorf("unknown settings format %q", format)
	}
}

// Save writes the settings as an rc file atomically, so the result can be
// read back by a FileSource. Unset flags are omitted and count options are
// written once per occurrence.
func (s *Settings) Save(path string) error {
	data, err := s.marshalRC()
	if err != nil {
		return err
	}
	return atomicWriteFile(path, data)
}

// marshalRC renders "name value" and "flag" lines in key order.
func (s *Settings) marshalRC() ([]byte, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	keys := make([]string, 0, len(s.values))
	for k := range s.values {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var buf bytes.Buffer
	for _, key := range keys {
		val := s.values[key]
		if val == nil {
			continue
		}

		switch s.kindOf(key, val) {
		case KindFlag:
			if on, _ := val.(bool); on {
				buf.WriteString(key + "\n")
			}
		case KindCount:
			for i := 0; i < countValue(val); i++ {
				buf.WriteString(key + "\n")
			}
		default:
			str := stringify(val)
			if strings.ContainsAny(str, "\r\n") {
				return nil, fmt.Errorf("value of %q contains a line break and cannot be saved", key)
			}
			if str == "" {
				buf.WriteString(key + "\n")
			} else {
				buf.WriteString(key + " " + str + "\n")
			}
		}
	}

	return buf.Bytes(), nil
}

func (s *Settings) nonNil() map[string]any {
	all := s.All()
	for k, v := range all {
		if v == nil {
			delete(all, k)
		}
	}
	return all
}

// atomicWriteFile performs atomic file write
func atomicWriteFile(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory '%s': %w", dir, err)
	}

	tempFile, err := os.CreateTemp(dir, filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temporary file: %w", err)
	}

	tempPath := tempFile.Name()
	defer os.Remove(tempPath) // Clean up on any error

	if _, err := tempFile.Write(data); err != nil {
		tempFile.Close()
		return fmt.Errorf("failed to write temporary file: %w", err)
	}

	if err := tempFile.Sync(); err != nil {
		tempFile.Close()
		return fmt.Errorf("failed to sync temporary file: %w", err)
	}

	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("failed to close temporary file: %w", err)
	}

	// rc files may hold tokens
	if err := os.Chmod(tempPath, 0600); err != nil {
		return fmt.Errorf("failed to set permissions: %w", err)
	}

	if err := os.Rename(tempPath, path); err != nil {
		return fmt.Errorf("failed to rename temporary file: %w", err)
	}

	return nil
}
