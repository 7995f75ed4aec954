// internal/extract/resultset.go
package extract

// ResultSet accumulates extracted sequences under first-seen ordered keys.
// Output determinism comes from the explicit order slice; map iteration
// order is never used.
type ResultSet struct {
	order []string
	data  map[string][]byte
}

func NewResultSet() *ResultSet {
	return &ResultSet{data: make(map[string][]byte)}
}

// Append concatenates s onto key's buffer, registering the key on first use.
// Appends are unconditional: repeated or overlapping regions concatenate
// again, never deduplicate.
func (rs *ResultSet) Append(key string, s []byte) {
	if _, ok := rs.data[key]; !ok {
		rs.order = append(rs.order, key)
	}
	rs.data[key] = append(rs.data[key], s...)
}

// Keys returns the keys in first-seen order.
func (rs *ResultSet) Keys() []string { return rs.order }

// Get returns the accumulated buffer for key.
func (rs *ResultSet) Get(key string) []byte { return rs.data[key] }

// Len returns the number of distinct keys.
func (rs *ResultSet) Len() int { return len(rs.order) }
