// File: lixenwraith/settings/type.go
package settings

import (
	"fmt"
	"strconv"
)

// lookup returns the stored value of key and the kind it resolves as.
func (s *Settings) lookup(key string) (any, Kind, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	k := canonicalKey(key)
	val, ok := s.values[k]
	if !ok {
		return nil, KindValue, fmt.Errorf("%w: %s", ErrSettingNotFound, k)
	}
	return val, s.kindOf(k, val), nil
}

// String returns key as text. Flags render as "true" or "false", counts as a
// decimal number and an unset value as "".
func (s *Settings) String(key string) (string, error) {
	val, _, err := s.lookup(key)
	if err != nil {
		return "", err
	}
	return stringify(val), nil
}

// Bool answers presence for flags and counts. A value option is read with
// strconv.ParseBool, so "1", "true" and "FALSE" all work.
func (s *Settings) Bool(key string) (bool, error) {
	val, kind, err := s.lookup(key)
	if err != nil {
		return false, err
	}

	switch kind {
	case KindFlag:
		return flagValue(val), nil
	case KindCount:
		return countValue(val) > 0, nil
	default:
		str := stringify(val)
		b, err := strconv.ParseBool(str)
		if err != nil {
			return false, fmt.Errorf("setting %s: %q is not a boolean: %w", canonicalKey(key), str, err)
		}
		return b, nil
	}
}

// Int returns the occurrence count of a count option, 1 or 0 for a flag, and
// a value option parsed as an integer ("42", "0x2a").
func (s *Settings) Int(key string) (int, error) {
	val, kind, err := s.lookup(key)
	if err != nil {
		return 0, err
	}

	switch kind {
	case KindCount:
		return countValue(val), nil
	case KindFlag:
		if flagValue(val) {
			return 1, nil
		}
		return 0, nil
	default:
		if n, ok := val.(int); ok {
			return n, nil
		}
		str := stringify(val)
		n, err := strconv.ParseInt(str, 0, strconv.IntSize)
		if err != nil {
			return 0, fmt.Errorf("setting %s: %q is not an integer: %w", canonicalKey(key), str, err)
		}
		return int(n), nil
	}
}

func flagValue(val any) bool {
	if b, ok := val.(bool); ok {
		return b
	}
	return inlineBool(stringify(val))
}
