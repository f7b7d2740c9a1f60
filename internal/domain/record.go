package domain

// Record is the structured wire form: a mapping of string keys to scalar
// Values. Each operation validates a Record against its own key schema.
type Record map[string]Value

// ExactKeys reports whether r contains exactly the given keys, no more and
// no fewer.
func (r Record) ExactKeys(keys ...string) bool {
	if len(r) != len(keys) {
		return false
	}
	for _, k := range keys {
		if _, ok := r[k]; !ok {
			return false
		}
	}
	return true
}
