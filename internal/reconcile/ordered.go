package reconcile

import "xactdiff/internal/domain"

// Records is an insertion-ordered map of comparison records keyed by
// description. The zero value is ready to use.
type Records struct {
	index map[string]int
	list  []domain.ComparisonRecord
}

// Len returns the number of records.
func (r *Records) Len() int {
	return len(r.list)
}

// Get returns the record for description.
func (r *Records) Get(description string) (domain.ComparisonRecord, bool) {
	i, ok := r.index[description]
	if !ok {
		return domain.ComparisonRecord{}, false
	}
	return r.list[i], true
}

// Keys returns descriptions in insertion order.
func (r *Records) Keys() []string {
	keys := make([]string, len(r.list))
	for i := range r.list {
		keys[i] = r.list[i].Description
	}
	return keys
}

// Slice returns a copy of the records in insertion order.
func (r *Records) Slice() []domain.ComparisonRecord {
	out := make([]domain.ComparisonRecord, len(r.list))
	copy(out, r.list)
	return out
}

// upsert returns the record for description, appending an empty one when
// the key is new. The pointer is valid until the next upsert.
func (r *Records) upsert(description string) *domain.ComparisonRecord {
	if r.index == nil {
		r.index = make(map[string]int)
	}
	if i, ok := r.index[description]; ok {
		return &r.list[i]
	}
	r.index[description] = len(r.list)
	r.list = append(r.list, domain.ComparisonRecord{Description: description})
	return &r.list[len(r.list)-1]
}
