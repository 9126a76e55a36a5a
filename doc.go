// Package libevents is an in-process, strongly typed publish/subscribe registry.
//
// Events are declared once as typed keys:
//
//	var UserCreated = libevents.NewEvent[User]("userCreated")
//	var Shutdown = libevents.NewSignal("shutdown")
//
// and then subscribed to, emitted and unsubscribed through a Registry:
//
//	r := libevents.New()
//	id := libevents.Subscribe(r, UserCreated, func(u User) { ... })
//	libevents.Emit(r, UserCreated, u)
//	err := libevents.Unsubscribe(r, UserCreated, id)
//
// Dispatch is synchronous and follows subscription order. Handlers may
// subscribe, unsubscribe and emit from within a dispatch.
package libevents
