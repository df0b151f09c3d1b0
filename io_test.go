package settings

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ioRegistry(t *testing.T) *Registry {
	t.Helper()
	reg := NewRegistry()
	reg.MustRegister(Option{Names: []string{"-t", "--token"}})
	reg.MustRegister(Option{Names: []string{"-p", "--prefix"}})
	reg.MustRegister(Option{Names: []string{"-v", "--verbose"}, Kind: KindCount})
	reg.MustRegister(Option{Names: []string{"-d", "--debug"}, Kind: KindFlag})
	reg.MustRegister(Option{Names: []string{"-q", "--quiet"}, Kind: KindFlag})
	return reg
}

func TestSave(t *testing.T) {
	t.Run("RoundTrip", func(t *testing.T) {
		reg := ioRegistry(t)
		s, err := Resolve(reg, List("--token", "abc", "-vv", "--debug", "--prefix", "two words"))
		require.NoError(t, err)

		path := filepath.Join(t.TempDir(), "nested", ".myapprc")
		require.NoError(t, s.Save(path))

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "debug\nprefix two words\ntoken abc\nverbose\nverbose\n", string(data))

		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(0600), info.Mode().Perm())

		reloaded, err := Resolve(reg, FileSource{Path: path})
		require.NoError(t, err)
		assert.Equal(t, s.All(), reloaded.All())
	})

	t.Run("LineBreakRejected", func(t *testing.T) {
		s, err := Resolve(ioRegistry(t))
		require.NoError(t, err)
		s.Set("token", "a\nb")

		path := filepath.Join(t.TempDir(), ".myapprc")
		assert.Error(t, s.Save(path))
		_, statErr := os.Stat(path)
		assert.True(t, os.IsNotExist(statErr))
	})

	t.Run("ManualValuesInferKind", func(t *testing.T) {
		s, err := Resolve(nil)
		require.NoError(t, err)
		s.Set("color", true)
		s.Set("muted", false)
		s.Set("port", 8080)

		var buf bytes.Buffer
		require.NoError(t, s.Dump(&buf, FormatRC))
		assert.Equal(t, "color\nport 8080\n", buf.String())
	})
}

func TestDump(t *testing.T) {
	s, err := Resolve(ioRegistry(t), List("--token", "abc", "-vv"))
	require.NoError(t, err)

	t.Run("TOML", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, s.Dump(&buf, FormatTOML))

		out := buf.String()
		assert.Contains(t, out, `token = "abc"`)
		assert.Contains(t, out, "verbose = 2")
		assert.Contains(t, out, "debug = false")
		assert.NotContains(t, out, "prefix")
	})

	t.Run("YAML", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, s.Dump(&buf, FormatYAML))

		out := buf.String()
		assert.Contains(t, out, "token: abc\n")
		assert.Contains(t, out, "verbose: 2\n")
		assert.Contains(t, out, "quiet: false\n")
	})

	t.Run("RC", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, s.Dump(&buf, FormatRC))
		assert.Equal(t, "token abc\nverbose\nverbose\n", buf.String())
	})

	t.Run("UnknownFormat", func(t *testing.T) {
		assert.Error(t, s.Dump(&bytes.Buffer{}, Format("ini")))
	})
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input    string
		expected Format
		wantErr  bool
	}{
		{"", FormatRC, false},
		{"rc", FormatRC, false},
		{"TOML", FormatTOML, false},
		{" yml ", FormatYAML, false},
		{"yaml", FormatYAML, false},
		{"json", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseFormat(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}
