package bloqs

import "iter"

// Tracker is an ordered set of resources. Insertion order is output order;
// a resource whose key is already present is skipped, so the first
// registration decides the position.
//
// Tracker is not safe for concurrent use.
type Tracker struct {
	deps []Resource
	seen map[Key]struct{}
}

// NewTracker returns a Tracker holding resources, deduplicated.
func NewTracker(resources ...Resource) *Tracker {
	t := &Tracker{seen: make(map[Key]struct{}, len(resources))}
	t.Add(resources...)
	return t
}

// Add appends each resource whose key is not yet tracked.
// Nil resources are ignored.
func (t *Tracker) Add(resources ...Resource) {
	if t.seen == nil {
		t.seen = make(map[Key]struct{})
	}
	for _, r := range resources {
		if r == nil {
			continue
		}
		key := r.Key()
		if _, ok := t.seen[key]; ok {
			continue
		}
		t.deps = append(t.deps, r)
		t.seen[key] = struct{}{}
	}
}

// Contains reports whether a resource with key is tracked.
func (t *Tracker) Contains(key Key) bool {
	_, ok := t.seen[key]
	return ok
}

// Len returns the number of tracked resources.
func (t *Tracker) Len() int {
	return len(t.deps)
}

// Any reports whether the tracker holds at least one resource.
func (t *Tracker) Any() bool {
	return len(t.deps) > 0
}

// AnyOf reports whether at least one tracked resource has dynamic type T.
func AnyOf[T Resource](t *Tracker) bool {
	for _, r := range t.deps {
		if _, ok := r.(T); ok {
			return true
		}
	}
	return false
}

// AnyFunc reports whether at least one tracked resource satisfies match.
// A nil match behaves like Any.
func (t *Tracker) AnyFunc(match func(Resource) bool) bool {
	if match == nil {
		return t.Any()
	}
	for _, r := range t.deps {
		if match(r) {
			return true
		}
	}
	return false
}

// All yields tracked resources in insertion order. Each call starts a new pass.
func (t *Tracker) All() iter.Seq[Resource] {
	return func(yield func(Resource) bool) {
		for _, r := range t.deps {
			if !yield(r) {
				return
			}
		}
	}
}

// Resources returns a copy of the tracked resources in insertion order.
func (t *Tracker) Resources() []Resource {
	out := make([]Resource, len(t.deps))
	copy(out, t.deps)
	return out
}
