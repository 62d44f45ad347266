package store

import (
	"fmt"

	"weddingplanner/internal/domain"
)

// collection is an id-keyed set of records that remembers insertion order.
type collection[T any] struct {
	kind  string
	order []string
	items map[string]T
}

func newCollection[T any](kind string) collection[T] {
	return collection[T]{kind: kind, items: make(map[string]T)}
}

func (c *collection[T]) add(id string, v T) error {
	if _, ok := c.items[id]; ok {
		return fmt.Errorf("%s %q: %w", c.kind, id, domain.ErrDuplicateID)
	}
	c.items[id] = v
	c.order = append(c.order, id)
	return nil
}

// put inserts or overwrites without changing the position of an existing id.
func (c *collection[T]) put(id string, v T) {
	if _, ok := c.items[id]; !ok {
		c.order = append(c.order, id)
	}
	c.items[id] = v
}

func (c *collection[T]) get(id string) (T, error) {
	v, ok := c.items[id]
	if !ok {
		var zero T
		return zero, fmt.Errorf("%s %q: %w", c.kind, id, domain.ErrNotFound)
	}
	return v, nil
}

// update runs fn on a copy of the record and stores the result only if fn succeeds.
func (c *collection[T]) update(id string, fn func(*T) error) (T, error) {
	v, err := c.get(id)
	if err != nil {
		return v, err
	}
	if err := fn(&v); err != nil {
		var zero T
		return zero, err
	}
	c.items[id] = v
	return v, nil
}

func (c *collection[T]) remove(id string) error {
	if _, ok := c.items[id]; !ok {
		return fmt.Errorf("%s %q: %w", c.kind, id, domain.ErrNotFound)
	}
	delete(c.items, id)
	for i, o := range c.order {
		if o == id {
			c.order = append(c.order[:i:i], c.order[i+1:]...)
			break
		}
	}
	return nil
}

func (c *collection[T]) list() []T {
	out := make([]T, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.items[id])
	}
	return out
}

func (c *collection[T]) reset() {
	c.order = nil
	c.items = make(map[string]T)
}
