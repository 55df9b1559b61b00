package entity

import (
	"encoding/json"
	"reflect"
)

// marshalInline encodes v and merges extra keys into the same JSON object.
// Keys already produced by v win.
func marshalInline[V any](v any, extra map[string]V) ([]byte, error) {
	data, err := json.Marshal(v)
	if err != nil || len(extra) == 0 {
		return data, err
	}
	var fields map[string]json.RawMessage
	if err = json.Unmarshal(data, &fields); err != nil {
		return nil, err
	}
	for k, val := range extra {
		if _, ok := fields[k]; ok {
			continue
		}
		raw, err := json.Marshal(val)
		if err != nil {
			return nil, err
		}
		fields[k] = raw
	}
	return json.Marshal(fields)
}

// unmarshalInline decodes data into v and returns every key not listed in known.
func unmarshalInline[V any](data []byte, v any, known ...string) (map[string]V, error) {
	if err := json.Unmarshal(data, v); err != nil {
		return nil, err
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, err
	}
	for _, k := range known {
		delete(fields, k)
	}
	if len(fields) == 0 {
		return nil, nil
	}
	extra := make(map[string]V, len(fields))
	for k, raw := range fields {
		var val V
		if err := json.Unmarshal(raw, &val); err != nil {
			return nil, &json.UnmarshalTypeError{Value: string(raw), Field: k, Type: reflect.TypeOf(&val).Elem()}
		}
		extra[k] = val
	}
	return extra, nil
}
