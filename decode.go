// FILE: lixenwraith/settings/decode.go
package settings

import (
	"fmt"
	"reflect"
	"time"

	"github.com/mitchellh/mapstructure"
)

// TagName is the struct tag read by Scan and MappingFromStruct.
const TagName = "setting"

// Scan decodes the settings into target, a non-nil pointer to a struct or map.
// Field names come from the `setting` tag and should use canonical keys
// (lowercase, underscores). Values are weakly typed, so "3" decodes into an int
// and "1m30s" into a time.Duration.
func (s *Settings) Scan(target any) error {
	rv := reflect.ValueOf(target)
	if rv.Kind() != reflect.Ptr || rv.IsNil() {
		return fmt.Errorf("target of Scan must be a non-nil pointer, got %T", target)
	}

	data := s.All()

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           target,
		TagName:          TagName,
		WeaklyTypedInput: true,
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToTimeHookFunc(time.RFC3339),
			mapstructure.StringToSliceHookFunc(","),
		),
	})
	if err != nil {
		return fmt.Errorf("failed to create mapstructure decoder: %w", err)
	}

	if err := decoder.Decode(data); err != nil {
		return fmt.Errorf("failed to scan settings into %T: %w", target, err)
	}

	return nil
}

// MappingFromStruct builds a MappingSource from a flat struct using its
// `setting` tags. Nil values are skipped; pairs are ordered by key.
func MappingFromStruct(v any) (MappingSource, error) {
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Ptr {
		if rv.IsNil() {
			return nil, fmt.Errorf("MappingFromStruct requires a non-nil struct pointer or value")
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return nil, fmt.Errorf("MappingFromStruct requires a struct or struct pointer, got %T", v)
	}

	flat := make(map[string]any)
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:  &flat,
		TagName: TagName,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create mapstructure decoder: %w", err)
	}
	if err := decoder.Decode(rv.Interface()); err != nil {
		return nil, fmt.Errorf("failed to decode %T into mapping: %w", v, err)
	}

	for k, val := range flat {
		if val == nil {
			delete(flat, k)
			continue
		}
		fv := reflect.ValueOf(val)
		if fv.Kind() == reflect.Ptr {
			if fv.IsNil() {
				delete(flat, k)
				continue
			}
			fv = fv.Elem()
			flat[k] = fv.Interface()
		}
		if fv.Kind() == reflect.Map || fv.Kind() == reflect.Struct {
			return nil, fmt.Errorf("field %q is nested; only flat settings are supported", k)
		}
	}

	return Mapping(flat), nil
}
