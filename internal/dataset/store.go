package dataset

import "fmt"

// Record is one dataset row keyed by the first column's raw text.
type Record struct {
	Key    string
	values map[string]Value
}

// NewRecord builds a record from already-typed values.
func NewRecord(key string, values map[string]Value) *Record {
	if values == nil {
		values = map[string]Value{}
	}
	return &Record{Key: key, values: values}
}

// Get returns the value of field. Absent fields are missing.
func (r *Record) Get(field string) Value {
	return r.values[field]
}

// ID returns the patient identifier: the "ID" field when it holds text,
// otherwise the store key.
func (r *Record) ID() string {
	if s, ok := r.values[ColID].AsString(); ok {
		return s
	}
	return r.Key
}

// Warning describes a row-level data-quality problem found while loading.
type Warning struct {
	Row     int
	Field   string
	Value   string
	Message string
}

func (w Warning) String() string {
	if w.Field == "" {
		return fmt.Sprintf("row %d: %s", w.Row, w.Message)
	}
	return fmt.Sprintf("row %d: %s %q: %s", w.Row, w.Field, w.Value, w.Message)
}

// Store is the ordered, read-only record set produced by Load.
type Store struct {
	Header   []string
	Schema   Schema
	Warnings []Warning

	keys    []string
	records map[string]*Record
	fields  map[string]struct{}
}

func newStore(header []string, schema Schema) *Store {
	fields := make(map[string]struct{}, len(header))
	for _, h := range header {
		fields[h] = struct{}{}
	}
	return &Store{
		Header:  header,
		Schema:  schema,
		records: map[string]*Record{},
		fields:  fields,
	}
}

// NewStore builds a store from records in order; later duplicate keys
// replace earlier ones in place.
func NewStore(header []string, schema Schema, records ...*Record) *Store {
	s := newStore(header, schema)
	for _, r := range records {
		s.put(r)
	}
	return s
}

func (s *Store) put(r *Record) {
	if _, exists := s.records[r.Key]; !exists {
		s.keys = append(s.keys, r.Key)
	}
	s.records[r.Key] = r
}

// Len returns the number of records.
func (s *Store) Len() int {
	if s == nil {
		return 0
	}
	return len(s.keys)
}

// Get returns the record stored under key.
func (s *Store) Get(key string) (*Record, bool) {
	r, ok := s.records[key]
	return r, ok
}

// Records returns the records in file order.
func (s *Store) Records() []*Record {
	if s == nil {
		return nil
	}
	out := make([]*Record, 0, len(s.keys))
	for _, k := range s.keys {
		out = append(out, s.records[k])
	}
	return out
}

// HasField reports whether the header names field.
func (s *Store) HasField(field string) bool {
	if s == nil {
		return false
	}
	_, ok := s.fields[field]
	return ok
}

// Column collects field's value from every record in file order.
func (s *Store) Column(field string) []Value {
	out := make([]Value, 0, s.Len())
	for _, r := range s.Records() {
		out = append(out, r.Get(field))
	}
	return out
}
