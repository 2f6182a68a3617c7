package storage

// MapStore is an in-memory Storer backed by a plain map. It backs tests and
// programmatically assembled content; production content goes through
// FileStore.
type MapStore[T ValidatingSpec] map[Identifier]T

func (s MapStore[T]) Get(id Identifier) T {
	val, ok := s[id]
	if !ok {
		var nilVal T
		return nilVal
	}
	return val
}

func (s MapStore[T]) GetAll() map[Identifier]T {
	vals := map[Identifier]T{}
	for id, v := range s {
		vals[id] = v
	}
	return vals
}
