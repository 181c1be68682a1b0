// Package notify provides the listener registration used by the application stores.
package notify

// Observers fans a value out to registered listeners in registration order.
// The zero value is ready to use. It is not safe for concurrent use; stores
// are mutated from the UI loop only.
type Observers[T any] struct {
	nextID    int
	listeners []listener[T]
}

type listener[T any] struct {
	id int
	fn func(T)
}

// Subscribe registers fn and returns a function that removes it again.
// Calling the returned function more than once is harmless.
func (o *Observers[T]) Subscribe(fn func(T)) (cancel func()) {
	if fn == nil {
		return func() {}
	}
	o.nextID++
	id := o.nextID
	o.listeners = append(o.listeners, listener[T]{id: id, fn: fn})
	return func() { o.remove(id) }
}

// Notify calls every listener with v. Listeners may unsubscribe while being notified.
func (o *Observers[T]) Notify(v T) {
	snapshot := make([]listener[T], len(o.listeners))
	copy(snapshot, o.listeners)
	for _, l := range snapshot {
		l.fn(v)
	}
}

// Len reports the number of registered listeners.
func (o *Observers[T]) Len() int { return len(o.listeners) }

func (o *Observers[T]) remove(id int) {
	for i, l := range o.listeners {
		if l.id == id {
			o.listeners = append(o.listeners[:i], o.listeners[i+1:]...)
			return
		}
	}
}
