package settings

import (
	"sort"
	"sync"
)

// Settings is the result of one resolution pass: canonical key to value.
// Values are strings for value options, bool for flags and int for counts.
type Settings struct {
	values       map[string]any
	kinds        map[string]Kind
	unrecognized []string
	location     ConfigLocation
	mutex        sync.RWMutex
}

func newSettings(values map[string]any, kinds map[string]Kind, unrecognized []string, location ConfigLocation) *Settings {
	if values == nil {
		values = make(map[string]any)
	}
	return &Settings{
		values:       values,
		kinds:        kinds,
		unrecognized: unrecognized,
		location:     location,
	}
}

// Get returns the value for key. Keys are canonicalized, so "--log-level",
// "Log_Level" and "log_level" are the same setting.
func (s *Settings) Get(key string) (any, bool) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	val, ok := s.values[canonicalKey(key)]
	return val, ok
}

// Set is a manual override applied after resolution. It is discarded by the
// next Load.
func (s *Settings) Set(key string, value any) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.values[canonicalKey(key)] = value
}

// Has reports whether key holds a value.
func (s *Settings) Has(key string) bool {
	_, ok := s.Get(key)
	return ok
}

// Keys returns all keys in sorted order.
func (s *Settings) Keys() []string {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	keys := make([]string, 0, len(s.values))
	for k := range s.values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// All returns a copy of the settings map.
func (s *Settings) All() map[string]any {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	out := make(map[string]any, len(s.values))
	for k, v := range s.values {
		out[k] = v
	}
	return out
}

// Unrecognized lists option names no registered option matched, in stream order.
func (s *Settings) Unrecognized() []string {
	return append([]string(nil), s.unrecognized...)
}

// kindOf returns the registered kind of key. Keys added through Set are
// flags when they hold a bool and values otherwise. Callers hold the lock.
func (s *Settings) kindOf(key string, val any) Kind {
	if kind, ok := s.kinds[key]; ok {
		return kind
	}
	if _, isBool := val.(bool); isBool {
		return KindFlag
	}
	return KindValue
}

// ConfigFile reports which file backed the file source.
func (s *Settings) ConfigFile() ConfigLocation {
	return s.location
}
