package engine

// EventWithArg is a generic event with one argument
type EventWithArg[T any] struct {
	listeners []func(T)
}

// AddListener adds a callback to be invoked when the event fires
func (e *EventWithArg[T]) AddListener(callback func(T)) {
	if callback == nil {
		return
	}
	e.listeners = append(e.listeners, callback)
}

// Invoke calls all registered listeners in subscription order
func (e *EventWithArg[T]) Invoke(arg T) {
	for _, listener := range e.listeners {
		listener(arg)
	}
}
