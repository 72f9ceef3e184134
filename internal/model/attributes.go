package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// Attributes is an ordered multi-value attribute mapping built up during one
// title's extraction. Keys keep insertion order; a key may hold several
// values (one per recovered instance).
type Attributes struct {
	order   []string
	values  map[string][]string
	fromOne map[string]bool
}

// NewAttributes creates an empty attribute mapping.
func NewAttributes() *Attributes {
	return &Attributes{
		values: make(map[string][]string),
	}
}

// NumberFromOne marks a key whose instances are numbered from 1 when
// flattened: storage capacities render as storage_capacity1 even when a
// title holds a single one, while most keys leave the first instance
// unnumbered.
func (a *Attributes) NumberFromOne(key string) {
	if a.fromOne == nil {
		a.fromOne = make(map[string]bool)
	}
	a.fromOne[key] = true
}

// NumbersFromOne reports whether the key was marked by NumberFromOne.
func (a *Attributes) NumbersFromOne(key string) bool {
	return a.fromOne[key]
}

// Add appends a value under the given base key.
func (a *Attributes) Add(key, value string) {
	if _, ok := a.values[key]; !ok {
		a.order = append(a.order, key)
	}
	a.values[key] = append(a.values[key], value)
}

// Set replaces all values under the given base key with a single value.
func (a *Attributes) Set(key, value string) {
	if _, ok := a.values[key]; !ok {
		a.order = append(a.order, key)
	}
	a.values[key] = []string{value}
}

// Get returns the first value for the base key.
func (a *Attributes) Get(key string) (string, bool) {
	vals := a.values[key]
	if len(vals) == 0 {
		return "", false
	}
	return vals[0], true
}

// All returns every value recorded under the base key.
func (a *Attributes) All(key string) []string {
	return a.values[key]
}

// Has reports whether the base key holds at least one value.
func (a *Attributes) Has(key string) bool {
	return len(a.values[key]) > 0
}

// Delete removes the base key and its values.
func (a *Attributes) Delete(key string) {
	if _, ok := a.values[key]; !ok {
		return
	}
	delete(a.values, key)
	for i, k := range a.order {
		if k == key {
			a.order = append(a.order[:i], a.order[i+1:]...)
			break
		}
	}
}

// Keys returns the base keys in insertion order.
func (a *Attributes) Keys() []string {
	keys := make([]string, len(a.order))
	copy(keys, a.order)
	return keys
}

// Len returns the number of base keys.
func (a *Attributes) Len() int {
	return len(a.order)
}

// Merge appends every value of other into a, preserving other's key order.
func (a *Attributes) Merge(other *Attributes) {
	if other == nil {
		return
	}
	for _, key := range other.order {
		for _, val := range other.values[key] {
			a.Add(key, val)
		}
	}
	for key := range other.fromOne {
		a.NumberFromOne(key)
	}
}

// Pair is one flattened key/value entry.
type Pair struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// Flatten converts the multi-value mapping to the numbered-key convention:
// the first instance of a key is unnumbered, later instances get suffix
// 2, 3, and so on. Keys marked with NumberFromOne number every instance,
// the first included.
func (a *Attributes) Flatten() FlatAttributes {
	var flat FlatAttributes
	for _, key := range a.order {
		for i, val := range a.values[key] {
			name := key
			if i > 0 || a.fromOne[key] {
				name = key + strconv.Itoa(i+1)
			}
			flat = append(flat, Pair{Key: name, Value: val})
		}
	}
	return flat
}

// FlatAttributes is a flattened, ordered attribute list using the
// numbered-key convention.
type FlatAttributes []Pair

// Get returns the value for an exact flattened key.
func (f FlatAttributes) Get(key string) (string, bool) {
	for _, p := range f {
		if p.Key == key {
			return p.Value, true
		}
	}
	return "", false
}

// Map returns the flattened attributes as a plain map (order lost).
func (f FlatAttributes) Map() map[string]string {
	m := make(map[string]string, len(f))
	for _, p := range f {
		m[p.Key] = p.Value
	}
	return m
}

// MarshalJSON renders the attributes as a JSON object in flattened order.
func (f FlatAttributes) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, p := range f {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(p.Key)
		if err != nil {
			return nil, fmt.Errorf("marshal key: %w", err)
		}
		val, err := json.Marshal(p.Value)
		if err != nil {
			return nil, fmt.Errorf("marshal value: %w", err)
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON reads the object form back, keeping key order.
func (f *FlatAttributes) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("expected JSON object for attributes, got %v", tok)
	}

	var pairs FlatAttributes
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("expected string key, got %v", keyTok)
		}
		var val string
		if err := dec.Decode(&val); err != nil {
			return fmt.Errorf("attribute %q: %w", key, err)
		}
		pairs = append(pairs, Pair{Key: key, Value: val})
	}
	*f = pairs
	return nil
}
