// File: lixenwraith/settings/builder.go
package settings

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
)

// Builder provides a fluent interface for assembling a Loader
type Builder struct {
	registry   *Registry
	name       string
	args       []string
	sources    []Source
	hasSources bool
	epilog     string
	logger     zerolog.Logger
	err        error
}

// NewBuilder creates a builder reading os.Args[1:] and naming the program
// after os.Args[0].
func NewBuilder() *Builder {
	var args []string
	if len(os.Args) > 1 {
		args = os.Args[1:]
	}
	return &Builder{
		registry: NewRegistry(),
		args:     args,
		logger:   zerolog.Nop(),
	}
}

// WithName sets the raw program name; it is passed through DeriveName.
func (b *Builder) WithName(raw string) *Builder {
	b.name = DeriveName(raw)
	return b
}

// WithArgs sets the command-line tokens used by the default source list.
func (b *Builder) WithArgs(args []string) *Builder {
	b.args = args
	return b
}

// WithSources replaces the default source list. Sources are given lowest
// priority first. Use FileSource{} as a placeholder for the discovered rc file.
func (b *Builder) WithSources(sources ...Source) *Builder {
	b.sources = sources
	b.hasSources = true
	return b
}

// WithOption registers an option. The first registration error is returned by Build.
func (b *Builder) WithOption(opt Option) *Builder {
	if b.err != nil {
		return b
	}
	if err := b.registry.Register(opt); err != nil {
		b.err = err
	}
	return b
}

// WithOptions registers several options in order.
func (b *Builder) WithOptions(opts ...Option) *Builder {
	for _, opt := range opts {
		b.WithOption(opt)
	}
	return b
}

// WithRegistry replaces the registry, discarding options added so far.
func (b *Builder) WithRegistry(reg *Registry) *Builder {
	if reg != nil {
		b.registry = reg
	}
	return b
}

// WithEpilog overrides the text printed after the option list in Help.
func (b *Builder) WithEpilog(epilog string) *Builder {
	b.epilog = epilog
	return b
}

// WithLogger sets the logger used during resolution
func (b *Builder) WithLogger(logger zerolog.Logger) *Builder {
	b.logger = logger
	return b
}

// Build creates the Loader. The default sources are, lowest priority first:
// the discovered rc file, the environment and the command-line tokens.
func (b *Builder) Build() (*Loader, error) {
	if b.err != nil {
		return nil, fmt.Errorf("failed to register options: %w", b.err)
	}

	name := b.name
	if name == "" {
		name = ProgramName()
	}

	sources := b.sources
	if !b.hasSources {
		sources = DefaultSources(name, b.args)
	}

	return &Loader{
		registry: b.registry,
		name:     name,
		sources:  sources,
		epilog:   b.epilog,
		logger:   b.logger.With().Str("component", "settings").Logger(),
	}, nil
}

// MustBuild is like Build but panics on error
func (b *Builder) MustBuild() *Loader {
	l, err := b.Build()
	if err != nil {
		panic(fmt.Sprintf("settings build failed: %v", err))
	}
	return l
}

// Load builds the Loader and runs one resolution pass.
func (b *Builder) Load() (*Settings, error) {
	l, err := b.Build()
	if err != nil {
		return nil, err
	}
	return l.Load()
}

// BuildAndScan resolves the settings and decodes them into target.
func (b *Builder) BuildAndScan(target any) error {
	s, err := b.Load()
	if err != nil {
		return err
	}
	if err := s.Scan(target); err != nil {
		return fmt.Errorf("failed to scan final settings into target: %w", err)
	}
	return nil
}

// DefaultSources returns the standard priority order for a program name.
func DefaultSources(name string, args []string) []Source {
	return []Source{
		FileSource{},
		EnvSource{Prefix: name},
		Args(args),
	}
}
