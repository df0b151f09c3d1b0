package settings

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegister(t *testing.T) {
	t.Run("KeyFromFirstLongAlias", func(t *testing.T) {
		assert.Equal(t, "token", Option{Names: []string{"-t", "--token"}}.Key())
		assert.Equal(t, "log_level", Option{Names: []string{"--log-level", "--ll"}}.Key())
		assert.Equal(t, "v", Option{Names: []string{"-v"}}.Key())
		assert.Equal(t, "", Option{}.Key())
	})

	t.Run("Lookup", func(t *testing.T) {
		reg := NewRegistry()
		require.NoError(t, reg.Register(Option{Names: []string{"-t", "--token"}, Help: "bot token"}))

		for _, name := range []string{"-t", "--token", "--TOKEN", "token", "TOKEN"} {
			opt, ok := reg.Lookup(name)
			assert.True(t, ok, name)
			assert.Equal(t, "token", opt.Key(), name)
		}

		_, ok := reg.Lookup("-T")
		assert.False(t, ok)
	})

	t.Run("LookupReturnsCopy", func(t *testing.T) {
		reg := NewRegistry()
		require.NoError(t, reg.Register(Option{Names: []string{"-t", "--token"}}))

		opt, _ := reg.Lookup("token")
		opt.Names[0] = "-x"

		again, _ := reg.Lookup("token")
		assert.Equal(t, "-t", again.Names[0])
	})

	t.Run("Conflicts", func(t *testing.T) {
		reg := NewRegistry()
		require.NoError(t, reg.Register(Option{Names: []string{"-t", "--token"}}))
		require.NoError(t, reg.Register(Option{Names: []string{"-c", "--config"}, ConfigPath: true}))
		require.NoError(t, reg.Register(Option{Names: []string{"-k2"}}))

		tests := []struct {
			name string
			opt  Option
		}{
			{"SameShort", Option{Names: []string{"-t", "--other"}}},
			{"SameLong", Option{Names: []string{"--token"}}},
			{"SameLongFolded", Option{Names: []string{"--TOKEN"}}},
			{"RepeatedAlias", Option{Names: []string{"-x", "-x"}}},
			{"SecondConfigPath", Option{Names: []string{"--rc"}, ConfigPath: true}},
			{"SameKey", Option{Names: []string{"--k2"}}},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				assert.ErrorIs(t, reg.Register(tt.opt), ErrRegistrationConflict)
			})
		}
		assert.Equal(t, 3, reg.Len())
	})

	t.Run("InvalidDefinitions", func(t *testing.T) {
		tests := []struct {
			name string
			opt  Option
		}{
			{"NoNames", Option{}},
			{"NoDash", Option{Names: []string{"token"}}},
			{"BareDashes", Option{Names: []string{"--"}}},
			{"EqualsInName", Option{Names: []string{"--a=b"}}},
			{"UnknownKind", Option{Names: []string{"--x"}, Kind: Kind(9)}},
			{"FlagConfigPath", Option{Names: []string{"--config"}, Kind: KindFlag, ConfigPath: true}},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				assert.ErrorIs(t, NewRegistry().Register(tt.opt), ErrInvalidOption)
			})
		}
	})

	t.Run("MustRegisterPanics", func(t *testing.T) {
		reg := NewRegistry()
		reg.MustRegister(Option{Names: []string{"-t"}})
		assert.Panics(t, func() { reg.MustRegister(Option{Names: []string{"-t"}}) })
	})

	t.Run("ConfigOption", func(t *testing.T) {
		reg := NewRegistry()
		_, ok := reg.ConfigOption()
		assert.False(t, ok)

		require.NoError(t, reg.Register(Option{Names: []string{"-c", "--config"}, ConfigPath: true}))
		opt, ok := reg.ConfigOption()
		assert.True(t, ok)
		assert.Equal(t, "config", opt.Key())
	})

	t.Run("ShortAliasesLongestFirst", func(t *testing.T) {
		reg := NewRegistry()
		reg.MustRegister(Option{Names: []string{"-a"}, Kind: KindFlag})
		reg.MustRegister(Option{Names: []string{"-ab"}})
		reg.MustRegister(Option{Names: []string{"-b"}, Kind: KindFlag})

		assert.Equal(t, []string{"-ab", "-a", "-b"}, reg.shortAliases())
	})

	t.Run("OptionsInRegistrationOrder", func(t *testing.T) {
		reg := NewRegistry()
		reg.MustRegister(Option{Names: []string{"--zeta"}})
		reg.MustRegister(Option{Names: []string{"--alpha"}})

		opts := reg.Options()
		require.Len(t, opts, 2)
		assert.Equal(t, "zeta", opts[0].Key())
		assert.Equal(t, "alpha", opts[1].Key())
	})
}

func TestUsage(t *testing.T) {
	reg := NewRegistry()
	reg.MustRegister(Option{Names: []string{"-t", "--token"}, Help: "bot token"})
	reg.MustRegister(Option{Names: []string{"-p", "--prefix"}, Help: "command prefix", Default: "!"})
	reg.MustRegister(Option{Names: []string{"-v", "--verbose"}, Help: "increase verbosity", Kind: KindCount})
	reg.MustRegister(Option{Names: []string{"-c", "--config"}, ConfigPath: true, Metavar: "PATH"})

	usage := reg.Usage("b0t")

	assert.True(t, strings.HasPrefix(usage, "usage: b0t [-t TOKEN] [-p PREFIX] [-v] [-c PATH]\n\noptions:\n"))
	assert.Contains(t, usage, "  -t TOKEN, --token TOKEN\n"+strings.Repeat(" ", 24)+"bot token\n")
	assert.Contains(t, usage, "command prefix (default: !)")
	assert.Contains(t, usage, "  -v, --verbose"+strings.Repeat(" ", 9)+"increase verbosity\n")
	assert.Contains(t, usage, "  -c PATH, --config PATH\n")

	assert.Equal(t, "usage: empty\n", NewRegistry().Usage("empty"))
}
