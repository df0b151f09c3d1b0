// File: lixenwraith/settings/helper.go
package settings

import (
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"regexp"
	"strconv"
	"strings"
	"sync"
)

// FallbackName is used when no usable invocation name is available.
const FallbackName = "settings"

var (
	programNameOnce sync.Once
	programName     string
)

// DeriveName converts a raw invocation name into the program identifier used
// for the environment prefix and the default config filename.
// Only ASCII letters, digits and spaces survive; spaces become underscores and
// the result is lowercased. Empty results fall back to FallbackName.
func DeriveName(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))

	for _, r := range raw {
		switch {
		case isAlpha(r) || isNumeric(r):
			b.WriteRune(r)
		case r == ' ':
			b.WriteRune('_')
		}
	}

	name := strings.ToLower(b.String())
	if name == "" {
		return FallbackName
	}
	return name
}

// ProgramName derives the identifier from the base name of os.Args[0].
// The value is computed once per process.
func ProgramName() string {
	programNameOnce.Do(func() {
		raw := ""
		if len(os.Args) > 0 && os.Args[0] != "" {
			raw = filepath.Base(os.Args[0])
		}
		programName = DeriveName(raw)
	})
	return programName
}

// canonicalKey maps an option name from any source to its settings key:
// leading dashes stripped, lowercased, dashes folded to underscores.
func canonicalKey(name string) string {
	name = strings.TrimLeft(name, "-")
	name = strings.ToLower(name)
	return strings.ReplaceAll(name, "-", "_")
}

// isLongAlias reports whether the alias uses the "--name" form.
func isLongAlias(alias string) bool {
	return strings.HasPrefix(alias, "--") && len(alias) > 2
}

// negativeNumber matches plain negative numbers such as "-5" and "-.5".
var negativeNumber = regexp.MustCompile(`^-\d+$|^-\d*\.\d+$`)

// isOptionLike reports whether a token would be read as an option rather than
// a value. Negative numbers are values.
func isOptionLike(tok string) bool {
	if len(tok) < 2 || tok[0] != '-' {
		return false
	}
	return !negativeNumber.MatchString(tok)
}

// stringify renders a source value as a token.
func stringify(val any) string {
	if val == nil {
		return ""
	}

	switch v := val.(type) {
	case string:
		return v
	case fmt.Stringer:
		return v.String()
	case []byte:
		return string(v)
	case int, int8, int16, int32, int64:
		return strconv.FormatInt(reflect.ValueOf(val).Int(), 10)
	case uint, uint8, uint16, uint32, uint64:
		return strconv.FormatUint(reflect.ValueOf(val).Uint(), 10)
	case float32, float64:
		return strconv.FormatFloat(reflect.ValueOf(val).Float(), 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	case error:
		return v.Error()
	default:
		return fmt.Sprintf("%v", val)
	}
}

// isAlpha checks if a character is a letter (A-Z, a-z)
func isAlpha(c rune) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// isNumeric checks if a character is a digit (0-9)
func isNumeric(c rune) bool {
	return c >= '0' && c <= '9'
}
