package event

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDispatchInSubscriptionOrder(t *testing.T) {
	d := NewDispatcher()
	var got []string

	d.Subscribe(PauseToggled, ListenerFunc(func(e Event) { got = append(got, "first") }))
	d.Subscribe(PauseToggled, ListenerFunc(func(e Event) { got = append(got, "second") }))
	d.Subscribe(HUDToggled, ListenerFunc(func(e Event) { got = append(got, "hud") }))

	d.Dispatch(Event{Type: PauseToggled, Data: true})
	assert.Equal(t, []string{"first", "second"}, got)
}

func TestDispatchWithoutListeners(t *testing.T) {
	d := NewDispatcher()
	assert.NotPanics(t, func() {
		d.Dispatch(Event{Type: VisionRadiusChanged, Data: VisionRadiusData{Old: 1, New: 2}})
	})
}

func TestDispatchPassesData(t *testing.T) {
	d := NewDispatcher()
	var data VisionRadiusData
	d.Subscribe(VisionRadiusChanged, ListenerFunc(func(e Event) {
		data = e.Data.(VisionRadiusData)
	}))

	d.Dispatch(Event{Type: VisionRadiusChanged, Data: VisionRadiusData{Old: 320, New: 340}})
	assert.Equal(t, VisionRadiusData{Old: 320, New: 340}, data)
}
