package event

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDispatchOrder(t *testing.T) {
	m := NewManager()
	var got []string
	m.Subscribe(TypeBufferSaved, func(e Event) bool {
		got = append(got, "first:"+e.Data.(BufferSavedData).Name)
		return false
	})
	m.Subscribe(TypeBufferSaved, func(e Event) bool {
		got = append(got, "second")
		return false
	})

	m.Dispatch(TypeBufferSaved, BufferSavedData{Name: "a.txt"})
	assert.Equal(t, []string{"first:a.txt", "second"}, got)
}

func TestDispatchStopsWhenConsumed(t *testing.T) {
	m := NewManager()
	calls := 0
	m.Subscribe(TypeAppQuit, func(Event) bool { calls++; return true })
	m.Subscribe(TypeAppQuit, func(Event) bool { calls++; return false })

	m.Dispatch(TypeAppQuit, nil)
	assert.Equal(t, 1, calls)
}

func TestDispatchWithoutHandlers(t *testing.T) {
	var nilManager *Manager
	assert.NotPanics(t, func() {
		NewManager().Dispatch(TypeBufferLoaded, nil)
		nilManager.Dispatch(TypeBufferLoaded, nil)
	})
}

func TestTypeString(t *testing.T) {
	assert.Equal(t, "buffer-switched", TypeBufferSwitched.String())
	assert.Equal(t, "unknown", Type(99).String())
}
