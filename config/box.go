package config

import (
	"fmt"
	"math"
	"strings"

	"github.com/goccy/go-yaml"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// PathSeparator separates nested keys in Box paths, matching Parser paths.
const PathSeparator = ":"

// Box is a read-only, insertion-ordered view of a YAML mapping.
//
// Values are scalars (string, bool, int64, uint64, float64), nil, []any
// or nested *Box for mappings. Keys can be read directly with Get, through
// colon paths with Lookup, or through the typed accessors (String, Int,
// Float, Bool, Strings, Sub). Decode turns a subtree into a typed struct.
type Box struct {
	values *orderedmap.OrderedMap[string, any]
}

// NewBox returns an empty Box, ready to be used as a decoding target.
func NewBox() *Box {
	return &Box{values: orderedmap.New[string, any]()}
}

// Len returns the number of top-level keys.
func (b *Box) Len() int {
	if b == nil {
		return 0
	}

	return b.values.Len()
}

// Keys returns the top-level keys in document order.
func (b *Box) Keys() []string {
	keys := make([]string, 0, b.Len())

	b.Range(func(key string, _ any) bool {
		keys = append(keys, key)

		return true
	})

	return keys
}

// Range calls fn for each top-level pair in document order until fn returns false.
func (b *Box) Range(fn func(key string, value any) bool) {
	if b == nil || b.values == nil {
		return
	}

	for pair := b.values.Oldest(); pair != nil; pair = pair.Next() {
		if !fn(pair.Key, pair.Value) {
			return
		}
	}
}

// Get returns the value stored under a top-level key.
func (b *Box) Get(key string) (any, bool) {
	if b == nil || b.values == nil {
		return nil, false
	}

	return b.values.Get(key)
}

// Lookup resolves path against the box. A key equal to the whole path wins,
// so keys containing colons (and the empty key) are reachable as written.
// Otherwise the path is split at each colon, left to right, and the first
// prefix naming a nested box is walked with the remainder.
func (b *Box) Lookup(path string) (any, bool) {
	if value, ok := b.Get(path); ok {
		return value, true
	}

	for i := 0; i < len(path); i++ {
		if !strings.HasPrefix(path[i:], PathSeparator) {
			continue
		}

		value, ok := b.Get(path[:i])
		if !ok {
			continue
		}

		sub, ok := value.(*Box)
		if !ok {
			continue
		}

		if found, ok := sub.Lookup(path[i+len(PathSeparator):]); ok {
			return found, true
		}
	}

	return nil, false
}

// Sub returns the nested mapping at path.
func (b *Box) Sub(path string) (*Box, bool) {
	value, ok := b.Lookup(path)
	if !ok {
		return nil, false
	}

	sub, ok := value.(*Box)

	return sub, ok
}

// String returns the string at path.
func (b *Box) String(path string) (string, bool) {
	value, ok := b.Lookup(path)
	if !ok {
		return "", false
	}

	str, ok := value.(string)

	return str, ok
}

// Bool returns the boolean at path.
func (b *Box) Bool(path string) (bool, bool) {
	value, ok := b.Lookup(path)
	if !ok {
		return false, false
	}

	flag, ok := value.(bool)

	return flag, ok
}

// Int returns the integer at path. Floats are not converted.
func (b *Box) Int(path string) (int, bool) {
	value, ok := b.Lookup(path)
	if !ok {
		return 0, false
	}

	return toInt(value)
}

// Float returns the number at path as a float64. Integers are converted.
func (b *Box) Float(path string) (float64, bool) {
	value, ok := b.Lookup(path)
	if !ok {
		return 0, false
	}

	if f, isFloat := value.(float64); isFloat {
		return f, true
	}

	n, ok := toInt(value)

	return float64(n), ok
}

// Strings returns the sequence at path when every element is a string.
func (b *Box) Strings(path string) ([]string, bool) {
	value, ok := b.Lookup(path)
	if !ok {
		return nil, false
	}

	items, ok := value.([]any)
	if !ok {
		return nil, false
	}

	result := make([]string, 0, len(items))

	for _, item := range items {
		str, isString := item.(string)
		if !isString {
			return nil, false
		}

		result = append(result, str)
	}

	return result, true
}

// Decode unmarshals the value at path into target, which must be a pointer.
func (b *Box) Decode(path string, target any) error {
	value, ok := b.Lookup(path)
	if !ok {
		return fmt.Errorf("%w: %s", ErrKeyNotFound, path)
	}

	return decode(path, value, target)
}

// DecodeAll unmarshals the whole box into target, which must be a pointer.
func (b *Box) DecodeAll(target any) error {
	return decode("", b, target)
}

func decode(path string, value, target any) error {
	data, err := yaml.Marshal(plain(value))
	if err != nil {
		return fmt.Errorf("encoding %q: %w", path, err)
	}

	err = yaml.Unmarshal(data, target)
	if err != nil {
		return fmt.Errorf("decoding %q: %w", path, err)
	}

	return nil
}

// ToMap returns a deep copy of the box as plain Go maps and slices.
func (b *Box) ToMap() map[string]any {
	result := make(map[string]any, b.Len())

	b.Range(func(key string, value any) bool {
		result[key] = toPlainMap(value)

		return true
	})

	return result
}

// MarshalYAML implements yaml.InterfaceMarshaler, keeping key order.
func (b *Box) MarshalYAML() (any, error) {
	return b.mapSlice(), nil
}

// MarshalJSON implements json.Marshaler, keeping key order.
func (b *Box) MarshalJSON() ([]byte, error) {
	if b == nil || b.values == nil {
		return []byte("{}"), nil
	}

	data, err := b.values.MarshalJSON()
	if err != nil {
		return nil, fmt.Errorf("encoding json: %w", err)
	}

	return data, nil
}

// UnmarshalYAML implements yaml.BytesUnmarshaler. Mappings are decoded in
// document order; a null document leaves the box empty.
func (b *Box) UnmarshalYAML(data []byte) error {
	var raw any

	err := yaml.UnmarshalWithOptions(data, &raw, yaml.UseOrderedMap())
	if err != nil {
		return err
	}

	switch doc := raw.(type) {
	case nil:
		*b = *NewBox()
	case yaml.MapSlice:
		*b = *fromMapSlice(doc)
	default:
		return fmt.Errorf("%w: got %T", ErrNotMapping, raw)
	}

	return nil
}

func (b *Box) mapSlice() yaml.MapSlice {
	items := make(yaml.MapSlice, 0, b.Len())

	b.Range(func(key string, value any) bool {
		items = append(items, yaml.MapItem{Key: key, Value: plain(value)})

		return true
	})

	return items
}

func fromMapSlice(items yaml.MapSlice) *Box {
	box := NewBox()

	for _, item := range items {
		key, ok := item.Key.(string)
		if !ok {
			key = fmt.Sprint(item.Key)
		}

		box.values.Set(key, fromValue(item.Value))
	}

	return box
}

func fromValue(value any) any {
	switch v := value.(type) {
	case yaml.MapSlice:
		return fromMapSlice(v)
	case []any:
		items := make([]any, len(v))
		for i, item := range v {
			items[i] = fromValue(item)
		}

		return items
	default:
		return value
	}
}

// plain converts boxes back into ordered yaml.MapSlice values for encoding.
func plain(value any) any {
	switch v := value.(type) {
	case *Box:
		return v.mapSlice()
	case []any:
		items := make([]any, len(v))
		for i, item := range v {
			items[i] = plain(item)
		}

		return items
	default:
		return value
	}
}

func toPlainMap(value any) any {
	switch v := value.(type) {
	case *Box:
		return v.ToMap()
	case []any:
		items := make([]any, len(v))
		for i, item := range v {
			items[i] = toPlainMap(item)
		}

		return items
	default:
		return value
	}
}

func toInt(value any) (int, bool) {
	switch n := value.(type) {
	case int:
		return n, true
	case int64:
		if n < math.MinInt || n > math.MaxInt {
			return 0, false
		}

		return int(n), true
	case uint64:
		if n > math.MaxInt {
			return 0, false
		}

		return int(n), true
	case int32:
		return int(n), true
	case uint32:
		return int(n), true
	default:
		return 0, false
	}
}
