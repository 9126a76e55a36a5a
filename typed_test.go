package libevents

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type examplePayload struct {
	Value string
}

var (
	exampleType        = NewSignal("exampleType")
	exampleWithPayload = NewEvent[examplePayload]("exampleWithPayload")
)

func TestTypedEmitsPayload(t *testing.T) {
	registry := New()
	var got []examplePayload

	Subscribe(registry, exampleWithPayload, func(p examplePayload) {
		got = append(got, p)
	})
	Emit(registry, exampleWithPayload, examplePayload{Value: "someEventValue"})

	assert.Equal(t, []examplePayload{{Value: "someEventValue"}}, got)
}

func TestSignal(t *testing.T) {
	registry := New()
	calls := 0

	SubscribeSignal(registry, exampleType, func() { calls++ })
	EmitSignal(registry, exampleType)

	assert.Equal(t, 1, calls)
}

func TestSignalOrder(t *testing.T) {
	registry := New()
	var calls []string

	SubscribeSignal(registry, exampleType, func() { calls = append(calls, "first") })
	Subscribe(registry, exampleWithPayload, func(examplePayload) { calls = append(calls, "other") })
	SubscribeSignal(registry, exampleType, func() { calls = append(calls, "second") })

	EmitSignal(registry, exampleType)

	assert.Equal(t, []string{"first", "second"}, calls)
}

func TestTypedUnsubscribe(t *testing.T) {
	registry := New()
	var calls []string

	id := SubscribeSignal(registry, exampleType, func() { calls = append(calls, "removed") })
	SubscribeSignal(registry, exampleType, func() { calls = append(calls, "kept") })

	require.NoError(t, Unsubscribe(registry, exampleType, id))
	EmitSignal(registry, exampleType)

	assert.Equal(t, []string{"kept"}, calls)
	assert.EqualError(t,
		Unsubscribe(registry, exampleType, id),
		`No listener with id 0 for event type "exampleType"`,
	)
}

func TestTypedOnce(t *testing.T) {
	registry := New()
	var got []examplePayload

	Once(registry, exampleWithPayload, func(p examplePayload) {
		got = append(got, p)
	})
	Emit(registry, exampleWithPayload, examplePayload{Value: "example"})
	// untyped emit without a payload
	registry.Emit(exampleWithPayload.Name(), nil)

	assert.Equal(t, []examplePayload{{Value: "example"}}, got)
	assert.Equal(t, 0, Count(registry, exampleWithPayload))
}

func TestOnceSignal(t *testing.T) {
	registry := New()
	calls := 0

	OnceSignal(registry, exampleType, func() { calls++ })
	EmitSignal(registry, exampleType)
	EmitSignal(registry, exampleType)

	assert.Equal(t, 1, calls)
}

func TestTypedNilPayloadIsZeroValue(t *testing.T) {
	registry := New()
	event := NewEvent[error]("failed")
	called := false

	Subscribe(registry, event, func(err error) {
		called = true
		assert.Nil(t, err)
	})
	Emit(registry, event, nil)

	assert.True(t, called)
}

func TestTypedWrongPayloadPanics(t *testing.T) {
	registry := New()

	Subscribe(registry, exampleWithPayload, func(examplePayload) {})

	assert.Panics(t, func() {
		registry.Emit(exampleWithPayload.Name(), "not a payload")
	})
}

func TestTypedNilHandler(t *testing.T) {
	registry := New()

	assert.PanicsWithValue(t, nilHandlerMsg, func() {
		Subscribe[examplePayload](registry, exampleWithPayload, nil)
	})
	assert.PanicsWithValue(t, nilHandlerMsg, func() {
		OnceSignal(registry, exampleType, nil)
	})
}

func TestEventName(t *testing.T) {
	assert.Equal(t, "exampleWithPayload", exampleWithPayload.Name())
	assert.Equal(t, "exampleType", exampleType.String())
}
