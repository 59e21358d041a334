package common

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/cast"
)

// Box is a read-only view over a parsed mapping. Plain key access goes
// through Get; nested documents are reached with Sub or a dotted Lookup
// path such as "model.depth".
type Box[V any] struct {
	values map[string]V
}

// NewBox wraps values without copying them. Callers must not mutate the map
// afterwards.
func NewBox[V any](values map[string]V) *Box[V] {
	if values == nil {
		values = map[string]V{}
	}
	return &Box[V]{values: values}
}

func (b *Box[V]) Get(key string) (V, bool) {
	v, ok := b.values[key]
	return v, ok
}

func (b *Box[V]) Has(key string) bool {
	_, ok := b.values[key]
	return ok
}

// Keys returns the top-level keys in sorted order.
func (b *Box[V]) Keys() []string {
	return slices.Sorted(maps.Keys(b.values))
}

func (b *Box[V]) Len() int {
	return len(b.values)
}

// Map returns a shallow copy of the backing mapping.
func (b *Box[V]) Map() map[string]V {
	return maps.Clone(b.values)
}

// Lookup resolves a dotted path through nested mappings.
func (b *Box[V]) Lookup(path string) (any, error) {
	if path == "" {
		return nil, fmt.Errorf("%w: empty path", ErrKeyNotFound)
	}

	segments := strings.Split(path, ".")
	v, ok := b.values[segments[0]]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrKeyNotFound, segments[0])
	}

	var current any = v
	for i, segment := range segments[1:] {
		m, ok := asStringMap(current)
		if !ok {
			return nil, fmt.Errorf("%w: %s is not a mapping", ErrKeyNotFound, strings.Join(segments[:i+1], "."))
		}
		current, ok = m[segment]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrKeyNotFound, strings.Join(segments[:i+2], "."))
		}
	}

	return current, nil
}

// Sub returns the nested mapping at path as its own Box.
func (b *Box[V]) Sub(path string) (*Box[any], error) {
	v, err := b.Lookup(path)
	if err != nil {
		return nil, err
	}

	m, ok := asStringMap(v)
	if !ok {
		return nil, fmt.Errorf("value at %s is %T, not a mapping", path, v)
	}

	return NewBox(m), nil
}

func (b *Box[V]) String(path string) (string, error) {
	return lookupAs(b, path, cast.ToStringE)
}

func (b *Box[V]) Int(path string) (int, error) {
	return lookupAs(b, path, cast.ToIntE)
}

func (b *Box[V]) Float64(path string) (float64, error) {
	return lookupAs(b, path, cast.ToFloat64E)
}

func (b *Box[V]) Bool(path string) (bool, error) {
	return lookupAs(b, path, cast.ToBoolE)
}

func (b *Box[V]) StringSlice(path string) ([]string, error) {
	return lookupAs(b, path, cast.ToStringSliceE)
}

// Decode copies the document into target, a pointer to a struct or map.
// Struct fields are matched through `mapstructure` tags and scalar types are
// converted leniently, the same way the application config is decoded.
func (b *Box[V]) Decode(target any) error {
	if err := expect("decode box").pointer("target", target).err(); err != nil {
		return err
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           target,
		WeaklyTypedInput: true,
		TagName:          "mapstructure",
	})
	if err != nil {
		return fmt.Errorf("failed to create decoder: %w", err)
	}

	if err := decoder.Decode(b.values); err != nil {
		return fmt.Errorf("failed to decode document: %w", err)
	}

	return nil
}

func lookupAs[V, T any](b *Box[V], path string, convert func(any) (T, error)) (T, error) {
	var zero T

	v, err := b.Lookup(path)
	if err != nil {
		return zero, err
	}

	out, err := convert(v)
	if err != nil {
		return zero, fmt.Errorf("failed to convert %s: %w", path, err)
	}

	return out, nil
}

// asStringMap normalises the mapping shapes produced by the YAML, JSON and
// msgpack decoders.
func asStringMap(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case map[string]any:
		return m, true
	case map[any]any:
		out, err := cast.ToStringMapE(m)
		return out, err == nil
	}
	return nil, false
}
