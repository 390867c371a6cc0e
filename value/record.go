package value

// Record is an insertion-ordered map from string key to Value.
// Re-inserting an existing key updates its value without moving it in
// iteration order.
type Record struct {
	keys []string
	data map[string]Value
}

// NewEmptyRecord returns a record with no entries.
func NewEmptyRecord() *Record {
	return &Record{data: make(map[string]Value)}
}

// Clone returns a deep-enough copy: the key order and map are copied, but
// element Values are shared (Values are themselves copy-by-value for
// every variant except the reference types they wrap, which is consistent
// with how vectors are copied on NewVector).
func (r *Record) Clone() *Record {
	cp := &Record{
		keys: make([]string, len(r.keys)),
		data: make(map[string]Value, len(r.data)),
	}
	copy(cp.keys, r.keys)
	for k, v := range r.data {
		cp.data[k] = v
	}
	return cp
}

func (r *Record) Len() int { return len(r.keys) }

func (r *Record) Get(key string) (Value, bool) {
	v, ok := r.data[key]
	return v, ok
}

// Set returns a new record with key bound to v, added at the end if new,
// updated in place if already present. The receiver is left unmodified.
func (r *Record) Set(key string, v Value) *Record {
	cp := r.Clone()
	if _, exists := cp.data[key]; !exists {
		cp.keys = append(cp.keys, key)
	}
	cp.data[key] = v
	return cp
}

// Delete returns a new record with key removed, if present.
func (r *Record) Delete(key string) *Record {
	if _, ok := r.data[key]; !ok {
		return r.Clone()
	}
	cp := &Record{data: make(map[string]Value, len(r.data)-1)}
	for _, k := range r.keys {
		if k == key {
			continue
		}
		cp.keys = append(cp.keys, k)
		cp.data[k] = r.data[k]
	}
	return cp
}

// Keys returns the keys in insertion order.
func (r *Record) Keys() []string {
	cp := make([]string, len(r.keys))
	copy(cp, r.keys)
	return cp
}

// Values returns the values in key-insertion order.
func (r *Record) Values() []Value {
	vals := make([]Value, len(r.keys))
	for i, k := range r.keys {
		vals[i] = r.data[k]
	}
	return vals
}

// ForEach visits entries in insertion order.
func (r *Record) ForEach(f func(key string, v Value) error) error {
	for _, k := range r.keys {
		if err := f(k, r.data[k]); err != nil {
			return err
		}
	}
	return nil
}
