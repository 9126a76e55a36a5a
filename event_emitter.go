package libevents

import (
	"cmp"
	"slices"
	"sync"
	"sync/atomic"
)

type (
	// SubscriptionID identifies one listener registration. Ids are drawn from a
	// single increasing sequence per Registry, starting at 0, and are never reused.
	SubscriptionID uint64

	// HandlerFunc receives the payload passed to Emit.
	HandlerFunc func(payload any)

	listener struct {
		id      SubscriptionID
		handler HandlerFunc
	}

	// Registry maps event names to listeners and dispatches payloads to them
	// synchronously, in registration order.
	//
	// Handlers run on the caller's goroutine with no lock held, so they may call
	// any Registry method, including Emit for the same event.
	Registry struct {
		listeners map[string]map[SubscriptionID]*listener
		nextID    SubscriptionID
		lock      sync.Mutex
		logger    Logger
	}
)

// New creates a new, empty Registry and returns a pointer to it.
func New(opts ...Option) *Registry {
	cfg := newConfig(opts)

	logger := cfg.logger.WithField("type", "registry")
	if cfg.name != "" {
		logger = logger.WithField("registry", cfg.name)
	}

	return &Registry{
		listeners: make(map[string]map[SubscriptionID]*listener),
		logger:    logger,
	}
}

// Subscribe registers handler for event and returns the id to unsubscribe it with.
// It panics if handler is nil.
func (r *Registry) Subscribe(event string, handler HandlerFunc) SubscriptionID {
	mustHandler(handler)

	id := r.add(event, func(SubscriptionID) HandlerFunc { return handler })
	r.logger.Debugf("subscribed #%d to %q", id, event)
	return id
}

// Once registers handler to be called on the next Emit of event only. The
// listener removes itself right after handler returns. The returned id can be
// used to unsubscribe it before it fires.
func (r *Registry) Once(event string, handler HandlerFunc) SubscriptionID {
	mustHandler(handler)

	id := r.add(event, func(id SubscriptionID) HandlerFunc {
		var fired atomic.Bool

		return func(payload any) {
			// A nested Emit from inside handler still sees this listener.
			if !fired.CompareAndSwap(false, true) {
				return
			}
			defer r.release(event, id)

			handler(payload)
		}
	})

	r.logger.Debugf("subscribed #%d to %q once", id, event)
	return id
}

// Unsubscribe removes the listener with the given id from event. It returns a
// *MissingListenerError if event has no such listener, in which case nothing
// changes.
func (r *Registry) Unsubscribe(event string, id SubscriptionID) error {
	if !r.remove(event, id) {
		r.logger.Warnf("cannot unsubscribe #%d from %q: no such listener", id, event)
		return newMissingListenerError(event, id)
	}

	r.logger.Debugf("unsubscribed #%d from %q", id, event)
	return nil
}

// Emit calls every listener registered for event, in ascending id order, passing
// payload. Listeners are invoked synchronously and Emit returns once all of them
// have. Events without listeners are ignored.
//
// The listener set is captured when Emit starts: listeners added meanwhile are
// not called, and listeners removed before their turn are skipped. A panicking
// handler aborts the rest of the dispatch.
func (r *Registry) Emit(event string, payload any) {
	snapshot := r.snapshot(event)
	if len(snapshot) == 0 {
		return
	}

	r.logger.Debugf("emitting %q to %d listeners", event, len(snapshot))

	for _, l := range snapshot {
		if !r.isActive(event, l) {
			continue
		}
		l.handler(payload)
	}
}

// ListenerCount returns the number of listeners currently registered for event.
func (r *Registry) ListenerCount(event string) int {
	r.lock.Lock()
	defer r.lock.Unlock()

	return len(r.listeners[event])
}

// Has reports whether id is an active listener of event.
func (r *Registry) Has(event string, id SubscriptionID) bool {
	r.lock.Lock()
	defer r.lock.Unlock()

	_, ok := r.listeners[event][id]
	return ok
}

// Clear removes all listeners for all events. The id sequence is not reset.
func (r *Registry) Clear() {
	r.lock.Lock()
	defer r.lock.Unlock()

	r.listeners = make(map[string]map[SubscriptionID]*listener)
	r.logger.Debugln("cleared all listeners")
}

// add allocates the next id and stores the handler built for it. The builder
// runs under the lock so the handler can capture its own id.
func (r *Registry) add(event string, build func(id SubscriptionID) HandlerFunc) SubscriptionID {
	r.lock.Lock()
	defer r.lock.Unlock()

	id := r.nextID
	r.nextID++

	bucket, ok := r.listeners[event]
	if !ok {
		bucket = make(map[SubscriptionID]*listener)
		r.listeners[event] = bucket
	}
	bucket[id] = &listener{id: id, handler: build(id)}

	return id
}

func (r *Registry) remove(event string, id SubscriptionID) bool {
	r.lock.Lock()
	defer r.lock.Unlock()

	bucket, ok := r.listeners[event]
	if !ok {
		return false
	}
	if _, ok := bucket[id]; !ok {
		return false
	}

	delete(bucket, id)
	if len(bucket) == 0 {
		delete(r.listeners, event)
	}
	return true
}

// release removes a once listener after it fired. The handler may have
// unsubscribed it already, which is not an error.
func (r *Registry) release(event string, id SubscriptionID) {
	if r.remove(event, id) {
		r.logger.Debugf("released once listener #%d of %q", id, event)
	}
}

func (r *Registry) snapshot(event string) []*listener {
	r.lock.Lock()
	defer r.lock.Unlock()

	bucket, ok := r.listeners[event]
	if !ok {
		return nil
	}

	snapshot := make([]*listener, 0, len(bucket))
	for _, l := range bucket {
		snapshot = append(snapshot, l)
	}

	slices.SortFunc(snapshot, byID)
	return snapshot
}

func (r *Registry) isActive(event string, l *listener) bool {
	r.lock.Lock()
	defer r.lock.Unlock()

	return r.listeners[event][l.id] == l
}

func byID(a, b *listener) int {
	return cmp.Compare(a.id, b.id)
}

const nilHandlerMsg = "libevents: nil handler"

func mustHandler(handler HandlerFunc) {
	if handler == nil {
		panic(nilHandlerMsg)
	}
}
