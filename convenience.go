// File: lixenwraith/settings/convenience.go
package settings

import (
	"fmt"
	"strings"
)

// Quick resolves the given options from the standard sources: the discovered
// rc file, the environment and os.Args, named after the running program.
func Quick(opts ...Option) (*Settings, error) {
	return NewBuilder().WithOptions(opts...).Load()
}

// MustQuick is like Quick but panics on error
func MustQuick(opts ...Option) *Settings {
	s, err := Quick(opts...)
	if err != nil {
		panic(fmt.Sprintf("settings initialization failed: %v", err))
	}
	return s
}

// DefaultEpilog explains the rc file and environment conventions for name.
func DefaultEpilog(name string) string {
	upper := strings.ToUpper(name)
	return fmt.Sprintf(`
You can set any of these options in a .%[1]src file
located in the current directory or the home directory.
You can also set environment variables that match %[2]s_OPTION

~/.%[1]src
  key value
  verbose

%[2]s_KEY=value %[1]s`, name, upper)
}

// Help returns the usage text followed by the epilog.
func (l *Loader) Help() string {
	epilog := l.epilog
	if epilog == "" {
		epilog = DefaultEpilog(l.name)
	}
	return l.registry.Usage(l.name) + epilog + "\n"
}

// Debug returns a formatted listing of the settings, the config file used and
// any unrecognized options.
func (s *Settings) Debug() string {
	var b strings.Builder

	loc := s.ConfigFile()
	b.WriteString("Settings Debug Info:\n")
	if loc.Found() {
		b.WriteString(fmt.Sprintf("Config file: %s (%s)\n", loc.Path, loc.Origin))
	} else {
		b.WriteString("Config file: none\n")
	}

	b.WriteString("Current values:\n")
	all := s.All()
	for _, key := range s.Keys() {
		b.WriteString(fmt.Sprintf("  %s: %v\n", key, all[key]))
	}

	if unknown := s.Unrecognized(); len(unknown) > 0 {
		b.WriteString(fmt.Sprintf("Unrecognized: %s\n", strings.Join(unknown, ", ")))
	}

	return b.String()
}
