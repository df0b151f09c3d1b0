// FILE: lixenwraith/settings/source_test.go
package settings

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileSource(t *testing.T) {
	t.Run("Lines", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), ".b0trc")
		content := "token abc123\n\n   verbose  \nprefix  two words \r\n"
		require.NoError(t, os.WriteFile(path, []byte(content), 0600))

		tokens, err := FileSource{Path: path}.Tokens()
		require.NoError(t, err)
		assert.Equal(t, []string{"--token", "abc123", "--verbose", "", "--prefix", "two words"}, tokens)
	})

	t.Run("EmptyFile", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), ".b0trc")
		require.NoError(t, os.WriteFile(path, []byte(" \n\n"), 0600))

		tokens, err := FileSource{Path: path}.Tokens()
		require.NoError(t, err)
		assert.Empty(t, tokens)
	})

	t.Run("Placeholder", func(t *testing.T) {
		tokens, err := FileSource{}.Tokens()
		assert.NoError(t, err)
		assert.Empty(t, tokens)
	})

	t.Run("Missing", func(t *testing.T) {
		_, err := FileSource{Path: filepath.Join(t.TempDir(), "nope")}.Tokens()
		assert.ErrorIs(t, err, ErrConfigNotFound)
	})

	t.Run("Directory", func(t *testing.T) {
		_, err := FileSource{Path: t.TempDir()}.Tokens()
		assert.ErrorIs(t, err, ErrUnreadableFile)
	})
}

func TestEnvSource(t *testing.T) {
	t.Run("PrefixFilter", func(t *testing.T) {
		src := EnvSource{Prefix: "myapp", Environ: []string{
			"MYAPP_VERBOSE=",
			"OTHER_TOKEN=zzz",
			"MYAPP_TOKEN=abc",
			"MYAPP_=ignored",
			"myapp_lower=1",
			"MYAPPTOKEN=no",
			"MYAPP_LOG_LEVEL=debug=trace",
		}}

		tokens, err := src.Tokens()
		require.NoError(t, err)
		assert.Equal(t, []string{
			"--log_level", "debug=trace",
			"--token", "abc",
			"--verbose", "",
		}, tokens)
	})

	t.Run("ProcessEnvironment", func(t *testing.T) {
		t.Setenv("SETTINGSENVTEST_TOKEN", "from-env")

		tokens, err := EnvSource{Prefix: "settingsenvtest"}.Tokens()
		require.NoError(t, err)
		assert.Equal(t, []string{"--token", "from-env"}, tokens)
	})

	t.Run("NoPrefix", func(t *testing.T) {
		tokens, err := EnvSource{Environ: []string{"TOKEN=abc"}}.Tokens()
		require.NoError(t, err)
		assert.Empty(t, tokens)
	})
}

func TestTokenListSource(t *testing.T) {
	args := []string{"--token", "abc"}
	src := Args(args)
	args[1] = "changed"

	tokens, err := src.Tokens()
	require.NoError(t, err)
	assert.Equal(t, []string{"--token", "abc"}, tokens)

	tokens, err = List("--port", 8080, "--ratio", 0.5, true).Tokens()
	require.NoError(t, err)
	assert.Equal(t, []string{"--port", "8080", "--ratio", "0.5", "true"}, tokens)
}

func TestMappingSource(t *testing.T) {
	src := Mapping(map[string]any{
		"token":   "abc",
		"color":   true,
		"retries": 3,
		"quiet":   false,
	})

	tokens, err := src.Tokens()
	require.NoError(t, err)
	assert.Equal(t, []string{
		"--color=true",
		"--quiet=false",
		"--retries", "3",
		"--token", "abc",
	}, tokens)

	ordered := MappingSource{{Key: "z", Value: "1"}, {Key: "a", Value: "2"}}
	tokens, err = ordered.Tokens()
	require.NoError(t, err)
	assert.Equal(t, []string{"--z", "1", "--a", "2"}, tokens)
}

func TestStringSource(t *testing.T) {
	tokens, err := StringSource("  --token   abc\t-v\n--debug ").Tokens()
	require.NoError(t, err)
	assert.Equal(t, []string{"--token", "abc", "-v", "--debug"}, tokens)

	tokens, err = StringSource("").Tokens()
	require.NoError(t, err)
	assert.Empty(t, tokens)
}

func TestSourceKinds(t *testing.T) {
	kinds := map[SourceKind]Source{
		SourceFile:    FileSource{},
		SourceEnv:     EnvSource{},
		SourceTokens:  TokenListSource{},
		SourceMapping: MappingSource{},
		SourceString:  StringSource(""),
	}
	for kind, src := range kinds {
		assert.Equal(t, kind, src.Kind())
	}
}

func TestNormalize(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".b0trc")
	require.NoError(t, os.WriteFile(path, []byte("token abc\nverbose\n"), 0600))

	tests := []struct {
		description string
		src         Source
		expected    []string
	}{
		{
			description: "file",
			src:         FileSource{Path: path},
			expected:    []string{"--token", "abc", "--verbose", ""},
		},
		{
			description: "env",
			src:         EnvSource{Prefix: "b0t", Environ: []string{"B0T_TOKEN=abc", "B0T_VERBOSE=1"}},
			expected:    []string{"--token", "abc", "--verbose", "1"},
		},
		{
			description: "tokens",
			src:         List("--token", "abc", "-v"),
			expected:    []string{"--token", "abc", "-v"},
		},
		{
			description: "mapping",
			src:         MappingSource{{Key: "token", Value: "abc"}, {Key: "verbose", Value: true}},
			expected:    []string{"--token", "abc", "--verbose=true"},
		},
		{
			description: "string",
			src:         StringSource("--token abc -v"),
			expected:    []string{"--token", "abc", "-v"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.description, func(t *testing.T) {
			result, err := tt.src.Tokens()
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if diff := cmp.Diff(tt.expected, result); diff != "" {
				t.Errorf("token stream mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
