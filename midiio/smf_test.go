package midiio

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

func TestReadFileMissingPath(t *testing.T) {
	_, err := ReadFile("does-not-exist.mid")
	assert.Error(t, err)
}

func TestNoteEventsFlattensAndOrders(t *testing.T) {
	assert := assert.New(t)

	s := smf.New()

	// Track order puts the attack first at tick 960; the release in the
	// second track must still sort ahead of it.
	var t1 smf.Track
	t1.Add(0, smf.MetaTempo(120))
	t1.Add(960, midi.NoteOn(0, 62, 100))
	t1.Close(0)

	var t2 smf.Track
	t2.Add(0, midi.NoteOn(0, 60, 90))
	t2.Add(960, midi.NoteOff(0, 60))
	t2.Close(0)

	assert.NoError(s.Add(t1))
	assert.NoError(s.Add(t2))

	events := NoteEvents(s)
	assert.Len(events, 3)

	assert.Equal(uint8(60), events[0].Pitch)
	assert.Equal(uint8(90), events[0].Velocity)
	assert.Equal(uint64(0), events[0].Timestamp)

	// Note-offs come through as velocity 0, before attacks at the same time.
	assert.Equal(uint8(60), events[1].Pitch)
	assert.Equal(uint8(0), events[1].Velocity)

	assert.Equal(uint8(62), events[2].Pitch)
	assert.Equal(uint8(100), events[2].Velocity)

	assert.Equal(events[1].Timestamp, events[2].Timestamp)
	assert.Greater(events[2].Timestamp, events[0].Timestamp)
}
