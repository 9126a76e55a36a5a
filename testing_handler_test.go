package libevents

import (
	"github.com/stretchr/testify/mock"
)

type mockHandler struct {
	mock.Mock

	tapHandle func(payload any)
}

func (m *mockHandler) Handle(payload any) {
	if m.tapHandle != nil {
		m.tapHandle(payload)
	}
	m.Called(payload)
}

func newMockHandler() *mockHandler {
	m := new(mockHandler)
	m.On("Handle", mock.Anything).Return()
	return m
}
