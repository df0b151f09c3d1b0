// FILE: lixenwraith/settings/loader.go
package settings

import (
	"errors"
	"sync"

	"github.com/rs/zerolog"
)

// Loader runs resolution passes over a fixed registry and source list.
// Passes are serialized; every Load returns a fresh Settings.
type Loader struct {
	registry *Registry
	name     string
	sources  []Source
	epilog   string
	logger   zerolog.Logger
	mutex    sync.Mutex
}

// Name returns the program identifier.
func (l *Loader) Name() string {
	return l.name
}

// Registry returns the option registry.
func (l *Loader) Registry() *Registry {
	return l.registry
}

// Sources returns the configured sources, lowest priority first.
func (l *Loader) Sources() []Source {
	return append([]Source(nil), l.sources...)
}

// Load resolves all sources in two phases. The highest-priority source is
// scanned first for the config-path option; the config file is then located
// and the full merge runs with the file source fixed.
//
// The override is only honored from the highest-priority source. A config
// path set by the file or the environment stays in the result but does not
// change which file was read.
func (l *Loader) Load() (*Settings, error) {
	l.mutex.Lock()
	defer l.mutex.Unlock()

	override, err := l.discoverOverride()
	if err != nil {
		return nil, err
	}

	location := ResolveConfigPath(l.name, override)
	l.logger.Debug().
		Str("path", location.Path).
		Str("origin", string(location.Origin)).
		Msg("Resolved config file")

	sources := make([]Source, 0, len(l.sources))
	for _, src := range l.sources {
		if fs, ok := src.(FileSource); ok && fs.Path == "" {
			if !location.Found() {
				continue
			}
			src = FileSource{Path: location.Path}
		}
		sources = append(sources, src)
	}

	s, err := merge(l.registry, sources, l.logger)
	if err != nil {
		return nil, err
	}
	s.location = location

	if opt, ok := l.registry.ConfigOption(); ok {
		if val, set := s.Get(opt.Key()); set && val != nil && stringify(val) != location.Path {
			l.logger.Warn().
				Str("option", opt.Key()).
				Str("value", stringify(val)).
				Str("used", location.Path).
				Msg("Config path set outside the highest-priority source is ignored")
		}
	}

	return s, nil
}

// discoverOverride is phase one: parse only the highest-priority source and
// report the config-path option if it was given there.
func (l *Loader) discoverOverride() (string, error) {
	opt, ok := l.registry.ConfigOption()
	if !ok {
		return "", nil
	}

	var top Source
	if n := len(l.sources); n > 0 {
		top = l.sources[n-1]
	}

	switch top.(type) {
	case TokenListSource, StringSource, MappingSource:
		tokens, err := top.Tokens()
		if err != nil {
			return "", err
		}
		found := make(map[string]any)
		if _, err := newParser(l.registry, zerolog.Nop()).parse(tokens, found); err != nil {
			return "", err
		}
		if val, set := found[opt.Key()]; set && val != nil {
			return stringify(val), nil
		}
	case FileSource, EnvSource, nil:
		// no override discovery from files or the environment
	}

	if opt.Default != nil {
		return stringify(opt.Default), nil
	}
	return "", nil
}

// Resolve merges sources (lowest priority first) against reg without file
// discovery. FileSource paths are read as given.
func Resolve(reg *Registry, sources ...Source) (*Settings, error) {
	if reg == nil {
		reg = NewRegistry()
	}
	s, err := merge(reg, sources, zerolog.Nop())
	if err != nil {
		return nil, err
	}
	for _, src := range sources {
		if fs, ok := src.(FileSource); ok && fs.Path != "" {
			s.location = ConfigLocation{Path: fs.Path, Origin: OriginOverride}
		}
	}
	if s.location.Origin == "" {
		s.location.Origin = OriginNone
	}
	return s, nil
}

// merge normalizes every source, concatenates the streams and parses them in
// one pass so the last occurrence of an option wins.
func merge(reg *Registry, sources []Source, logger zerolog.Logger) (*Settings, error) {
	var stream []string

	for _, src := range sources {
		tokens, err := src.Tokens()
		if err != nil {
			// File problems never abort resolution
			level := zerolog.WarnLevel
			if errors.Is(err, ErrConfigNotFound) {
				level = zerolog.InfoLevel
			}
			logger.WithLevel(level).Err(err).Str("source", string(src.Kind())).Msg("Skipping source")
			continue
		}
		logger.Debug().
			Str("source", string(src.Kind())).
			Int("tokens", len(tokens)).
			Msg("Normalized source")
		stream = append(stream, tokens...)
	}

	values := make(map[string]any, reg.Len())
	kinds := make(map[string]Kind, reg.Len())
	for _, opt := range reg.options {
		kinds[opt.Key()] = opt.Kind
		if val, ok := opt.initial(); ok {
			values[opt.Key()] = val
		}
	}

	unknown, err := newParser(reg, logger).parse(stream, values)
	if err != nil {
		return nil, err
	}

	return newSettings(values, kinds, unknown, ConfigLocation{}), nil
}
