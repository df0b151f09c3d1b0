// File: lixenwraith/settings/doc.go

// Package settings resolves program options from layered sources: an rc file
// in the working or home directory, environment variables sharing the program
// prefix, and command-line tokens, merged under an explicit priority order.
//
// Features:
//   - Five source kinds normalized into one command-line style token stream
//   - Deterministic last-writer-wins overriding across sources
//   - Value, flag and count options with short and long aliases
//   - Config file path override discovered before the merge (two-phase)
//   - Lenient parsing: unknown options are reported, never fatal
//   - Generated usage text, typed getters and struct scanning
//
// Quick Start:
//
//	loader, err := settings.NewBuilder().
//	    WithName("b0t").
//	    WithOptions(
//	        settings.Option{Names: []string{"-t", "--token"}, Help: "bot token"},
//	        settings.Option{Names: []string{"-c", "--config"}, Help: "config file", ConfigPath: true},
//	        settings.Option{Names: []string{"-v", "--verbose"}, Kind: settings.KindCount},
//	    ).
//	    Build()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	s, err := loader.Load()
//	token, _ := s.String("token")
//
// Default Precedence (highest to lowest):
//  1. Command-line tokens (--token abc)
//  2. Environment variables (B0T_TOKEN=abc)
//  3. Config file (.b0trc in the current directory, else ~/.b0trc)
//  4. Option defaults
//
// The rc file holds one option per line:
//
//	token abc123
//	verbose
//
// Custom Precedence:
//
//	loader, err := settings.NewBuilder().
//	    WithName("b0t").
//	    WithSources(
//	        settings.FileSource{},                 // lowest
//	        settings.Mapping(map[string]any{"prefix": "!"}),
//	        settings.EnvSource{Prefix: "b0t"},
//	        settings.Args(os.Args[1:]),            // highest
//	    ).
//	    Build()
//
// The config path option is only honored from the highest-priority source.
// Setting it in the rc file or the environment does not redirect the file read.
package settings
