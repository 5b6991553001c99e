package linechart

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

// Fields is a loosely typed settings request, as decoded from JSON or YAML.
// Widget setters validate it, or the Fields of a typed Request, before
// building new settings.
type Fields map[string]any

type Kind int

const (
	KindString Kind = iota
	KindNumber
	KindPositive
	KindObject
	KindArray
)

func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindNumber:
		return "number"
	case KindPositive:
		return "non-negative number"
	case KindObject:
		return "object"
	case KindArray:
		return "array"
	default:
		return "unknown"
	}
}

// Is reports whether v holds a value of the given kind.
func (k Kind) Is(v any) bool {
	switch k {
	case KindString:
		_, ok := v.(string)
		return ok
	case KindNumber:
		_, ok := toNumber(v)
		return ok
	case KindPositive:
		f, ok := toNumber(v)
		return ok && f >= 0
	case KindObject:
		_, ok := toFields(v)
		return ok
	case KindArray:
		_, ok := toArray(v)
		return ok
	default:
		return false
	}
}

func typeName(v any) string {
	if v == nil {
		return "null"
	}
	return fmt.Sprintf("%T", v)
}

func toNumber(v any) (float64, bool) {
	var f float64
	switch n := v.(type) {
	case float64:
		f = n
	case float32:
		f = float64(n)
	case int:
		f = float64(n)
	case int8:
		f = float64(n)
	case int16:
		f = float64(n)
	case int32:
		f = float64(n)
	case int64:
		f = float64(n)
	case uint:
		f = float64(n)
	case uint8:
		f = float64(n)
	case uint16:
		f = float64(n)
	case uint32:
		f = float64(n)
	case uint64:
		f = float64(n)
	default:
		return 0, false
	}
	if math.IsNaN(f) {
		return 0, false
	}
	return f, true
}

func toFields(v any) (Fields, bool) {
	switch m := v.(type) {
	case Fields:
		return m, m != nil
	case map[string]any:
		return Fields(m), m != nil
	case map[string]string:
		if m == nil {
			return nil, false
		}
		fs := make(Fields, len(m))
		for k, v := range m {
			fs[k] = v
		}
		return fs, true
	case Request:
		fs := m.Fields()
		return fs, fs != nil
	default:
		return nil, false
	}
}

func toArray(v any) ([]any, bool) {
	switch a := v.(type) {
	case []any:
		return a, a != nil
	case []Fields:
		if a == nil {
			return nil, false
		}
		arr := make([]any, len(a))
		for i := range a {
			arr[i] = a[i]
		}
		return arr, true
	case []map[string]any:
		if a == nil {
			return nil, false
		}
		arr := make([]any, len(a))
		for i := range a {
			arr[i] = a[i]
		}
		return arr, true
	case []ColorRequest:
		if a == nil {
			return nil, false
		}
		arr := make([]any, len(a))
		for i := range a {
			arr[i] = &a[i]
		}
		return arr, true
	default:
		return nil, false
	}
}

// shape describes the fields an object may or must carry.
type shape struct {
	Allowed  []string
	Required bool
	MinLen   int
}

// check returns the unexpected and missing fields of fs, both sorted.
func (s shape) check(fs Fields) (unexpected, missing []string) {
	for k := range fs {
		if !contains(s.Allowed, k) {
			unexpected = append(unexpected, k)
		}
	}
	if s.Required {
		for _, k := range s.Allowed {
			if _, ok := fs[k]; !ok {
				missing = append(missing, k)
			}
		}
	}
	sort.Strings(unexpected)
	return unexpected, missing
}

func (s shape) validate(name string, v any) (Fields, error) {
	fs, ok := toFields(v)
	if !ok {
		return nil, argumentError(fmt.Sprintf("%s must be an object, got %s", name, typeName(v)))
	}
	unexpected, missing := s.check(fs)
	if len(unexpected) > 0 {
		reason := fmt.Sprintf("%s accepts only %s", name, strings.Join(s.Allowed, ", "))
		return nil, argumentError(reason, unexpected...)
	}
	if len(missing) > 0 {
		return nil, argumentError(fmt.Sprintf("%s is missing required fields", name), missing...)
	}
	if len(fs) < s.MinLen {
		return nil, argumentError(fmt.Sprintf("%s must have at least %d field(s)", name, s.MinLen))
	}
	return fs, nil
}

// expect checks that every listed field present in fs has the given kind.
func expect(fs Fields, kind Kind, fields ...string) error {
	var invalid []string
	for _, f := range fields {
		v, ok := fs[f]
		if !ok {
			continue
		}
		if !kind.Is(v) {
			invalid = append(invalid, f)
		}
	}
	if len(invalid) > 0 {
		return argumentError(fmt.Sprintf("value must be a %s", kind), invalid...)
	}
	return nil
}

func contains(list []string, str string) bool {
	for i := range list {
		if list[i] == str {
			return true
		}
	}
	return false
}

func checkDataset(values []float64, least int) error {
	if len(values) == 0 {
		return datasetError("dataset must not be empty")
	}
	if len(values) < least {
		return datasetError("dataset must contain at least %d numbers, got %d", least, len(values))
	}
	for i, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return datasetError("value at index %d is not a finite number", i)
		}
	}
	return nil
}

// DatasetFrom converts a loosely typed value, such as a decoded JSON array,
// into a dataset. It fails with ErrInvalidDataset when v is not an array of
// finite numbers.
func DatasetFrom(v any) ([]float64, error) {
	switch vs := v.(type) {
	case []float64:
		if vs == nil {
			break
		}
		out := make([]float64, len(vs))
		copy(out, vs)
		return out, checkDataset(out, 1)
	case []int:
		if vs == nil {
			break
		}
		out := make([]float64, len(vs))
		for i := range vs {
			out[i] = float64(vs[i])
		}
		return out, checkDataset(out, 1)
	case []any:
		if vs == nil {
			break
		}
		out := make([]float64, len(vs))
		for i := range vs {
			f, ok := toNumber(vs[i])
			if !ok {
				return nil, datasetError("value at index %d is not a number (%s)", i, typeName(vs[i]))
			}
			out[i] = f
		}
		return out, checkDataset(out, 1)
	}
	return nil, datasetError("dataset must be an array, got %s", typeName(v))
}
