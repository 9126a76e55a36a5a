package libevents

// Subscribe registers handler for event on e. The handler only ever receives
// payloads of the event's declared type.
func Subscribe[P any](e Emitter, event Event[P], handler func(P)) SubscriptionID {
	return e.Subscribe(event.name, adapt(handler))
}

// Once registers handler to run on the next emission of event only.
func Once[P any](e Emitter, event Event[P], handler func(P)) SubscriptionID {
	return e.Once(event.name, adapt(handler))
}

func Unsubscribe[P any](e Emitter, event Event[P], id SubscriptionID) error {
	return e.Unsubscribe(event.name, id)
}

// Emit dispatches payload to the listeners of event.
func Emit[P any](e Emitter, event Event[P], payload P) {
	e.Emit(event.name, payload)
}

// SubscribeSignal registers a handler that takes no arguments for a Signal.
func SubscribeSignal(e Emitter, signal Signal, handler func()) SubscriptionID {
	return e.Subscribe(signal.name, adaptSignal(handler))
}

func OnceSignal(e Emitter, signal Signal, handler func()) SubscriptionID {
	return e.Once(signal.name, adaptSignal(handler))
}

// EmitSignal dispatches signal to its listeners.
func EmitSignal(e Emitter, signal Signal) {
	e.Emit(signal.name, None{})
}

// Count returns the number of listeners registered for event on r.
func Count[P any](r *Registry, event Event[P]) int {
	return r.ListenerCount(event.name)
}

// adapt turns a typed handler into a HandlerFunc. A nil payload, as sent by an
// untyped Emit, is delivered as the zero value of P; any other payload of the
// wrong type panics.
func adapt[P any](handler func(P)) HandlerFunc {
	if handler == nil {
		panic(nilHandlerMsg)
	}

	return func(payload any) {
		var p P
		if payload != nil {
			p = payload.(P)
		}
		handler(p)
	}
}

func adaptSignal(handler func()) HandlerFunc {
	if handler == nil {
		panic(nilHandlerMsg)
	}

	return func(any) {
		handler()
	}
}
