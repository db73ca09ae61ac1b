// Package midiio adapts Standard MIDI Files and live MIDI input into the
// note-event stream the harmony engine consumes.
package midiio

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"sort"

	"gitlab.com/gomidi/midi/v2/smf"

	"github.com/tonelab/harmonia/algorithms/pitch"
)

// ReadFile loads a Standard MIDI File from disk.
func ReadFile(path string) (s *smf.SMF, e error) {
	var blank smf.SMF

	// The SMF parser panics on some malformed files; surface that as an
	// error instead. https://github.com/gomidi/midi/issues/20
	defer func() {
		if r, ok := recover().(string); ok {
			e = errors.New(r)
		}
	}()

	dat, err := os.ReadFile(path)
	if err != nil {
		return &blank, fmt.Errorf("reading midi file: %w", err)
	}

	res, err := smf.ReadFrom(bytes.NewReader(dat))
	if err != nil {
		return &blank, fmt.Errorf("parsing midi file: %w", err)
	}

	return res, nil
}

// NoteEvents flattens every track of the file into a single sequence of
// note events ordered by absolute time, with timestamps in microseconds
// from the start. Note-offs become velocity-0 events. At equal timestamps
// releases sort before attacks so re-struck notes are handled as
// off-then-on.
func NoteEvents(s *smf.SMF) []pitch.Note {
	var events []pitch.Note

	for _, track := range s.Tracks {
		var absTicks int64
		for _, ev := range track {
			absTicks += int64(ev.Delta)
			absTime := s.TimeAt(absTicks)

			var channel, key, velocity uint8
			switch {
			case ev.Message.GetNoteStart(&channel, &key, &velocity):
				events = append(events, pitch.Note{
					Pitch:     key,
					Velocity:  velocity,
					Channel:   channel,
					Timestamp: uint64(absTime),
				})
			case ev.Message.GetNoteEnd(&channel, &key):
				events = append(events, pitch.Note{
					Pitch:     key,
					Velocity:  0,
					Channel:   channel,
					Timestamp: uint64(absTime),
				})
			}
		}
	}

	sort.SliceStable(events, func(i, j int) bool {
		if events[i].Timestamp != events[j].Timestamp {
			return events[i].Timestamp < events[j].Timestamp
		}
		return events[i].Velocity == 0 && events[j].Velocity > 0
	})

	return events
}
