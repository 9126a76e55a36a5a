package libevents

// Emitter is the untyped publish/subscribe surface of a Registry. The typed
// helpers (Subscribe, Once, Unsubscribe, Emit) accept any Emitter.
type Emitter interface {
	// Subscribe registers a listener for the given event and returns its id.
	Subscribe(event string, handler HandlerFunc) SubscriptionID

	// Unsubscribe removes the listener with the given id from the given event.
	Unsubscribe(event string, id SubscriptionID) error

	// Once registers a listener that is removed after its first call.
	Once(event string, handler HandlerFunc) SubscriptionID

	// Emit calls all listeners of the given event synchronously, in
	// registration order.
	Emit(event string, payload any)
}

var _ Emitter = (*Registry)(nil)
