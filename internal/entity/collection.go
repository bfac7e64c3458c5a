package entity

// Factory builds a collection element from its construction arguments.
type Factory[T any, A any] func(A) T

// Collection is an ordered set of like-typed entities built through a bound
// factory. It raises Added and Destroyed notifications as its contents change
// but keeps no notion of being empty; subscribers derive that from Size.
type Collection[T comparable, A any] struct {
	factory Factory[T, A]
	items   []T
	index   map[T]struct{}

	Added     Signal[T]
	Destroyed Signal[T]
}

// NewCollection creates an empty collection bound to factory.
func NewCollection[T comparable, A any](factory func(A) T) *Collection[T, A] {
	return &Collection[T, A]{
		factory: factory,
		index:   make(map[T]struct{}),
	}
}

// Create builds an element with the factory, appends it and raises Added.
func (c *Collection[T, A]) Create(args A) T {
	item := c.factory(args)
	c.Adopt(item)
	return item
}

// Adopt appends a pre-built element and raises Added.
// Adopting an element already present does nothing.
func (c *Collection[T, A]) Adopt(item T) {
	if _, ok := c.index[item]; ok {
		return
	}
	c.items = append(c.items, item)
	c.index[item] = struct{}{}
	c.Added.Emit(item)
}

// Remove takes item out of the collection and raises Destroyed.
// It reports whether item was present; removing a missing element is a no-op.
func (c *Collection[T, A]) Remove(item T) bool {
	if _, ok := c.index[item]; !ok {
		return false
	}
	delete(c.index, item)
	for i, it := range c.items {
		if it == item {
			c.items = append(c.items[:i:i], c.items[i+1:]...)
			break
		}
	}
	c.Destroyed.Emit(item)
	return true
}

// Reset replaces the whole content with items. The swap happens first so that
// Destroyed handlers observe the new contents; new elements are adopted
// silently and raise no Added notification.
func (c *Collection[T, A]) Reset(items []T) {
	old := c.items

	c.items = make([]T, 0, len(items))
	c.index = make(map[T]struct{}, len(items))
	for _, it := range items {
		if _, dup := c.index[it]; dup {
			continue
		}
		c.items = append(c.items, it)
		c.index[it] = struct{}{}
	}

	for _, it := range old {
		if _, kept := c.index[it]; kept {
			continue
		}
		c.Destroyed.Emit(it)
	}
}

// Clear removes every element, raising Destroyed for each.
func (c *Collection[T, A]) Clear() {
	c.Reset(nil)
}

// Size returns the number of elements.
func (c *Collection[T, A]) Size() int {
	return len(c.items)
}

// Contains reports whether item is currently held.
func (c *Collection[T, A]) Contains(item T) bool {
	_, ok := c.index[item]
	return ok
}

// At returns the i-th element in insertion order.
func (c *Collection[T, A]) At(i int) (T, bool) {
	var zero T
	if i < 0 || i >= len(c.items) {
		return zero, false
	}
	return c.items[i], true
}

// Items returns a copy of the elements in insertion order.
func (c *Collection[T, A]) Items() []T {
	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

// Each calls fn for every element in insertion order. The walk runs over a
// snapshot, so fn may add or remove elements; elements removed before their
// turn are skipped and elements added during the walk are not visited.
// Returning false from fn stops the walk.
func (c *Collection[T, A]) Each(fn func(T) bool) {
	for _, it := range c.Items() {
		if !c.Contains(it) {
			continue
		}
		if !fn(it) {
			return
		}
	}
}
