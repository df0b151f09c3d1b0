// FILE: lixenwraith/settings/source.go
package settings

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"
	"unicode"
)

// SourceKind identifies one of the supported source types.
type SourceKind string

const (
	// SourceFile is an rc file of "name value" lines
	SourceFile SourceKind = "file"
	// SourceEnv is the process environment filtered by prefix
	SourceEnv SourceKind = "env"
	// SourceTokens is a command-line style token list
	SourceTokens SourceKind = "tokens"
	// SourceMapping is an ordered key/value mapping
	SourceMapping SourceKind = "mapping"
	// SourceString is raw text split on whitespace
	SourceString SourceKind = "string"
)

// Source is one origin of configuration data. The set of implementations is
// closed: FileSource, EnvSource, TokenListSource, MappingSource, StringSource.
type Source interface {
	// Kind reports the source type.
	Kind() SourceKind
	// Tokens normalizes the source into a command-line style token stream.
	Tokens() ([]string, error)

	sealed()
}

// FileSource reads an rc file. An empty Path is the placeholder for the
// discovered .{name}rc file and yields no tokens until a Loader fixes it.
type FileSource struct {
	Path string
}

// EnvSource selects variables named {PREFIX}_{OPTION}. Prefix is the program
// identifier and is uppercased. A nil Environ reads os.Environ.
type EnvSource struct {
	Prefix  string
	Environ []string
}

// TokenListSource is used as-is.
type TokenListSource []string

// Pair is one entry of a MappingSource.
type Pair struct {
	Key   string
	Value any
}

// MappingSource emits "--key value" for every pair in order.
type MappingSource []Pair

// StringSource is split on whitespace.
type StringSource string

func (FileSource) Kind() SourceKind      { return SourceFile }
func (EnvSource) Kind() SourceKind       { return SourceEnv }
func (TokenListSource) Kind() SourceKind { return SourceTokens }
func (MappingSource) Kind() SourceKind   { return SourceMapping }
func (StringSource) Kind() SourceKind    { return SourceString }

func (FileSource) sealed()      {}
func (EnvSource) sealed()       {}
func (TokenListSource) sealed() {}
func (MappingSource) sealed()   {}
func (StringSource) sealed()    {}

// List builds a TokenListSource, stringifying every element.
func List(values ...any) TokenListSource {
	tokens := make(TokenListSource, 0, len(values))
	for _, v := range values {
		tokens = append(tokens, stringify(v))
	}
	return tokens
}

// Args wraps command-line arguments, typically os.Args[1:].
func Args(args []string) TokenListSource {
	return append(TokenListSource(nil), args...)
}

// Mapping builds a MappingSource from a map, ordered by key.
func Mapping(m map[string]any) MappingSource {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pairs := make(MappingSource, 0, len(keys))
	for _, k := range keys {
		pairs = append(pairs, Pair{Key: k, Value: m[k]})
	}
	return pairs
}

// Tokens reads the file. A missing file wraps ErrConfigNotFound and any other
// failure wraps ErrUnreadableFile; callers treat both as zero tokens.
func (s FileSource) Tokens() ([]string, error) {
	if s.Path == "" {
		return nil, nil
	}

	info, err := os.Stat(s.Path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, s.Path)
		}
		return nil, fmt.Errorf("%w: %s: %w", ErrUnreadableFile, s.Path, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%w: %s is a directory", ErrUnreadableFile, s.Path)
	}

	data, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrUnreadableFile, s.Path, err)
	}

	return parseRC(string(data)), nil
}

// parseRC turns rc text into tokens. Each non-blank line is split at the first
// whitespace run into "--name" and the remainder, which may be empty.
func parseRC(text string) []string {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}

	var tokens []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		name, rest := line, ""
		if idx := strings.IndexFunc(line, unicode.IsSpace); idx >= 0 {
			name = line[:idx]
			rest = strings.TrimSpace(line[idx:])
		}
		tokens = append(tokens, "--"+name, rest)
	}
	return tokens
}

// Tokens emits "--option" and the raw value for every matching variable,
// ordered by variable name.
func (s EnvSource) Tokens() ([]string, error) {
	if s.Prefix == "" {
		return nil, nil
	}

	environ := s.Environ
	if environ == nil {
		environ = os.Environ()
	}

	prefix := strings.ToUpper(s.Prefix) + "_"
	type entry struct{ key, value string }
	var found []entry

	for _, kv := range environ {
		key, value, ok := strings.Cut(kv, "=")
		if !ok || !strings.HasPrefix(key, prefix) {
			continue
		}
		name := strings.ToLower(strings.TrimPrefix(key, prefix))
		if name == "" {
			continue
		}
		found = append(found, entry{key: name, value: value})
	}

	sort.SliceStable(found, func(i, j int) bool { return found[i].key < found[j].key })

	tokens := make([]string, 0, len(found)*2)
	for _, e := range found {
		tokens = append(tokens, "--"+e.key, e.value)
	}
	return tokens, nil
}

func (s TokenListSource) Tokens() ([]string, error) {
	return append([]string(nil), s...), nil
}

// Tokens emits "--key value" per pair. Boolean values use the single
// "--key=true|false" form so a mapping can clear a flag.
func (s MappingSource) Tokens() ([]string, error) {
	tokens := make([]string, 0, len(s)*2)
	for _, p := range s {
		if b, ok := p.Value.(bool); ok {
			tokens = append(tokens, fmt.Sprintf("--%s=%t", p.Key, b))
			continue
		}
		tokens = append(tokens, "--"+p.Key, stringify(p.Value))
	}
	return tokens, nil
}

func (s StringSource) Tokens() ([]string, error) {
	return strings.Fields(string(s)), nil
}
