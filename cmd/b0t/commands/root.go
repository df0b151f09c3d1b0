// Package commands provides the CLI for b0t.
package commands

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/lixenwraith/settings"
	"github.com/lixenwraith/settings/internal/bot"
	"github.com/lixenwraith/settings/internal/logging"
)

// Name is the program identifier: it selects .b0trc and the B0T_ prefix.
const Name = "b0t"

// Version information set at build time
var Version = "0.1.0"

// Options returns every option b0t registers, bot settings first.
func Options() []settings.Option {
	opts := bot.Options()
	return append(opts,
		settings.Option{Names: []string{"--log-level"}, Help: "log level (debug|info|warn|error), overrides -v", Metavar: "LEVEL"},
		settings.Option{Names: []string{"--log-format"}, Help: "log output format (console|json)", Default: "console", Metavar: "FORMAT"},
		settings.Option{Names: []string{"--dump-config"}, Help: "print the resolved settings (rc|toml|yaml) and exit", Metavar: "FORMAT"},
		settings.Option{Names: []string{"-h", "--help"}, Help: "show this help message and exit", Kind: settings.KindFlag},
	)
}

// NewRootCommand builds the b0t command. Flag parsing is left to the settings
// loader so the command line merges with the rc file and the environment.
func NewRootCommand() *cobra.Command {
	return &cobra.Command{
		Use:                Name,
		Short:              "b0t - a small chat bot",
		DisableFlagParsing: true,
		SilenceUsage:       true,
		SilenceErrors:      true,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			return run(ctx, cmd.OutOrStdout(), cmd.ErrOrStderr(), args)
		},
	}
}

// Execute runs the root command.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return NewRootCommand().ExecuteContext(ctx)
}

func run(ctx context.Context, out, errOut io.Writer, args []string) error {
	loader, err := settings.NewBuilder().
		WithName(Name).
		WithArgs(args).
		WithOptions(Options()...).
		WithLogger(logging.Logger).
		Build()
	if err != nil {
		return err
	}

	s, err := loader.Load()
	if err != nil {
		return err
	}

	if help, _ := s.Bool("help"); help {
		_, err := io.WriteString(out, loader.Help())
		return err
	}

	cfg, err := bot.FromSettings(s)
	if err != nil {
		return err
	}

	level := logging.LevelForVerbosity(cfg.Verbose)
	if name, err := s.String("log_level"); err == nil {
		level = logging.ParseLevel(name)
	}
	format, _ := s.String("log_format")
	logging.Init(logging.Config{
		Level:  level,
		Output: errOut,
		Pretty: format != "json",
	})
	logger := logging.Logger.With().Str("component", Name).Logger()

	// The loader ran before Init with the default warn-level logger, so its
	// debug records are gone; summarize the pass again at the chosen level.
	kinds := make([]string, 0, len(loader.Sources()))
	for _, src := range loader.Sources() {
		kinds = append(kinds, string(src.Kind()))
	}
	loc := s.ConfigFile()
	logger.Debug().
		Strs("sources", kinds).
		Str("config", loc.Path).
		Str("origin", string(loc.Origin)).
		Strs("unrecognized", s.Unrecognized()).
		Msg("Resolved settings")
	if loc.Found() {
		logger.Info().Str("path", loc.Path).Str("origin", string(loc.Origin)).Msg("Using config file")
	}
	for _, name := range s.Unrecognized() {
		logger.Warn().Str("option", name).Msg("Unrecognized option")
	}
	logger.Debug().Msg(s.Debug())

	if s.Has("dump_config") {
		name, _ := s.String("dump_config")
		dumpFormat, err := settings.ParseFormat(name)
		if err != nil {
			return err
		}
		return s.Dump(out, dumpFormat)
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	return serve(ctx, cfg, logger)
}

// serve holds the process until it is interrupted. The chat client attaches here.
func serve(ctx context.Context, cfg *bot.Config, logger zerolog.Logger) error {
	redacted := cfg.Redacted()
	logger.Info().
		Str("id", redacted.ID).
		Str("prefix", redacted.Prefix).
		Str("token", redacted.Token).
		Msg("running, press Ctrl+C to stop")

	<-ctx.Done()

	logger.Info().Msg("shutting down")
	return nil
}
