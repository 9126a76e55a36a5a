package libevents

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	ErrMissingListener = errors.New("missing listener")
)

// MissingListenerError is returned by Unsubscribe when the event has no active
// listener with the given id.
type MissingListenerError struct {
	Event string
	ID    SubscriptionID
}

func (e *MissingListenerError) Error() string {
	return fmt.Sprintf(`No listener with id %d for event type "%s"`, e.ID, e.Event)
}

func (e *MissingListenerError) Is(target error) bool { return target == ErrMissingListener }

func newMissingListenerError(event string, id SubscriptionID) *MissingListenerError {
	return &MissingListenerError{
		Event: event,
		ID:    id,
	}
}
