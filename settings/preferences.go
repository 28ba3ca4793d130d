package settings

import (
	"encoding/json"
	"fmt"
	"sort"
)

// Preferences is the key-value override set applied on top of settings'
// defaults. Values are stored in their encoded JSON-compatible form;
// every write routes through the owning setting's validator, so stored
// values always satisfy their setting.
//
// The combinators Clone, Merge, Filter and FilterNot return new values;
// Set, Remove and Clear mutate in place through the setting methods.
// Preferences is not safe for concurrent mutation.
type Preferences struct {
	values map[Key]any
}

// NewPreferences returns an empty preference set.
func NewPreferences() Preferences {
	return Preferences{values: make(map[Key]any)}
}

// ParsePreferences decodes a serialized preferences document. Malformed
// input fails fast with ErrMalformedPreferences and no partial result.
func ParsePreferences(data []byte) (Preferences, error) {
	var p Preferences
	if err := json.Unmarshal(data, &p); err != nil {
		return Preferences{}, fmt.Errorf("%w: %v", ErrMalformedPreferences, err)
	}
	return p, nil
}

// Len returns the number of stored preferences.
func (p Preferences) Len() int {
	return len(p.values)
}

// Has reports whether a preference is stored under the key.
func (p Preferences) Has(k Key) bool {
	_, ok := p.values[k]
	return ok
}

// Keys returns the stored keys in lexicographic order.
func (p Preferences) Keys() []Key {
	keys := make([]Key, 0, len(p.values))
	for k := range p.values {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

// Clone returns a deep copy sharing no state with the receiver.
func (p Preferences) Clone() Preferences {
	out := NewPreferences()
	for k, v := range p.values {
		out.values[k] = copyValue(v)
	}
	return out
}

// Merge returns the right-biased union of both sets: other's value wins
// on conflicting keys. Neither input is modified.
func (p Preferences) Merge(other Preferences) Preferences {
	out := p.Clone()
	for k, v := range other.values {
		out.values[k] = copyValue(v)
	}
	return out
}

// Filter returns a copy keeping only the given keys.
func (p Preferences) Filter(keys ...Key) Preferences {
	out := NewPreferences()
	for _, k := range keys {
		if v, ok := p.values[k]; ok {
			out.values[k] = copyValue(v)
		}
	}
	return out
}

// FilterNot returns a copy without the given keys.
func (p Preferences) FilterNot(keys ...Key) Preferences {
	drop := make(map[Key]struct{}, len(keys))
	for _, k := range keys {
		drop[k] = struct{}{}
	}
	out := NewPreferences()
	for k, v := range p.values {
		if _, skip := drop[k]; !skip {
			out.values[k] = copyValue(v)
		}
	}
	return out
}

// Clear removes every stored preference.
func (p *Preferences) Clear() {
	p.values = make(map[Key]any)
}

// MarshalJSON serializes to a flat JSON object with deterministic key
// order.
func (p Preferences) MarshalJSON() ([]byte, error) {
	doc := make(map[string]any, len(p.values))
	for k, v := range p.values {
		doc[string(k)] = v
	}
	return json.Marshal(doc)
}

// UnmarshalJSON replaces the receiver with the decoded document.
func (p *Preferences) UnmarshalJSON(data []byte) error {
	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		return err
	}
	p.values = make(map[Key]any, len(doc))
	for k, v := range doc {
		p.values[Key(k)] = v
	}
	return nil
}

// String renders the serialized form, for logs and debugging.
func (p Preferences) String() string {
	data, err := json.Marshal(p)
	if err != nil {
		return "{}"
	}
	return string(data)
}

func (p Preferences) raw(k Key) (any, bool) {
	v, ok := p.values[k]
	return v, ok
}

func (p *Preferences) set(k Key, v any) {
	if p.values == nil {
		p.values = make(map[Key]any)
	}
	p.values[k] = v
}

func (p *Preferences) remove(k Key) {
	if p.values != nil {
		delete(p.values, k)
	}
}

// copyValue deep-copies decoded JSON values. Scalars are returned as is.
func copyValue(v any) any {
	switch t := v.(type) {
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = copyValue(e)
		}
		return out
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, e := range t {
			out[k] = copyValue(e)
		}
		return out
	default:
		return v
	}
}
