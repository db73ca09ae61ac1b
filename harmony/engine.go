// Package harmony coordinates chord recognition, scale detection, and voice
// leading over a live stream of note events.
package harmony

import (
	"github.com/tonelab/harmonia/algorithms/pitch"
	"github.com/tonelab/harmonia/algorithms/tonal"
	"github.com/tonelab/harmonia/algorithms/voicing"
	"github.com/tonelab/harmonia/harmony/config"
	"github.com/tonelab/harmonia/logging"
	"github.com/tonelab/harmonia/telemetry"
)

// Engine owns the three analyzers and the active-note state, converts note
// events into pitch-class input, and exposes the current chord and scale.
//
// ProcessNotes is designed for synchronous execution inside a periodic
// real-time callback: fixed iteration bounds, no allocation, no locks. An
// Engine is single-threaded by contract; callers needing concurrency must
// serialize access externally or use one engine per processing context.
type Engine struct {
	config config.Config
	log    logging.Logger

	chords   *tonal.ChordRecognizer
	scales   *tonal.ScaleDetector
	voicings *voicing.Optimizer

	sink          telemetry.Sink
	lastPublished tonal.Chord

	activeNotes [pitch.MaxPolyphony]uint8
	classes     pitch.ClassSet
	histogram   [12]float64
}

// New creates an engine with the given configuration.
func New(cfg config.Config) *Engine {
	cfg = cfg.Normalized()
	e := &Engine{
		config:   cfg,
		log:      logging.WithFields(logging.Fields{"component": "harmony"}),
		chords:   tonal.NewChordRecognizer(),
		scales:   tonal.NewScaleDetector(),
		voicings: voicing.NewOptimizerWithConfig(cfg.VoicingConfig()),
	}
	e.applyConfig()
	return e
}

// SetSink installs a telemetry sink. Chord state is published on harmonic
// change; delivery is best-effort and never blocks ProcessNotes.
func (e *Engine) SetSink(sink telemetry.Sink) {
	e.sink = sink
}

// ProcessNotes folds a batch of note events into the active-note table and
// refreshes the chord (and, when enabled, the scale) analysis.
//
// Velocity > 0 marks a note active and sets its pitch-class bit; velocity 0
// releases the note and clears the class bit only when no other active note
// shares that class.
func (e *Engine) ProcessNotes(notes []pitch.Note) {
	for _, note := range notes {
		if note.Velocity > 0 {
			e.activeNotes[note.Pitch] = note.Velocity
			e.classes = e.classes.Set(note.Class())
			continue
		}

		e.activeNotes[note.Pitch] = 0
		hasNote := false
		for p := int(note.Class()); p < pitch.MaxPolyphony; p += 12 {
			if e.activeNotes[p] > 0 {
				hasNote = true
				break
			}
		}
		if !hasNote {
			e.classes = e.classes.Clear(note.Class())
		}
	}

	e.chords.Update(e.classes)

	if e.config.EnableScaleDetection {
		e.histogram = [12]float64{}
		for p := 0; p < pitch.MaxPolyphony; p++ {
			if e.activeNotes[p] > 0 {
				e.histogram[p%12] += float64(e.activeNotes[p]) / 127.0
			}
		}
		e.scales.Update(e.histogram)
	}

	e.publishState()
}

// CurrentChord returns the most recent chord analysis.
func (e *Engine) CurrentChord() tonal.Chord {
	return e.chords.CurrentChord()
}

// CurrentScale returns the most recent scale analysis.
func (e *Engine) CurrentScale() tonal.Scale {
	return e.scales.CurrentScale()
}

// ActiveVoices appends the currently sounding notes, ascending by pitch, to
// dst and returns it. Velocities reflect the most recent note-on.
func (e *Engine) ActiveVoices(dst []pitch.Note) []pitch.Note {
	for p := 0; p < pitch.MaxPolyphony; p++ {
		if e.activeNotes[p] > 0 {
			dst = append(dst, pitch.Note{Pitch: uint8(p), Velocity: e.activeNotes[p]})
		}
	}
	return dst
}

// SuggestVoiceLeading proposes a minimal-motion re-voicing of targetChord
// from currentVoices. Returns nil when voice leading is disabled.
func (e *Engine) SuggestVoiceLeading(targetChord tonal.Chord, currentVoices []pitch.Note) []pitch.Note {
	if !e.config.EnableVoiceLeading {
		return nil
	}
	return e.voicings.FindOptimalVoicing(targetChord, currentVoices, e.config.TargetOctave)
}

// UpdateConfig replaces the configuration wholesale and propagates the
// relevant fields to the sub-analyzers. Takes effect for subsequent calls.
func (e *Engine) UpdateConfig(cfg config.Config) {
	e.config = cfg.Normalized()
	e.applyConfig()
	e.log.Debug("config updated", logging.Fields{
		"confidence_threshold":   e.config.ConfidenceThreshold,
		"enable_voice_leading":   e.config.EnableVoiceLeading,
		"enable_scale_detection": e.config.EnableScaleDetection,
	})
}

// Config returns the active configuration.
func (e *Engine) Config() config.Config {
	return e.config
}

// ChordHistory returns the most recent chords, newest first. Only the single
// most recent chord is tracked.
func (e *Engine) ChordHistory(maxCount int) []tonal.Chord {
	if maxCount < 1 {
		return nil
	}
	return []tonal.Chord{e.chords.CurrentChord()}
}

// ScaleHistory returns the most recent scales, newest first. Only the single
// most recent scale is tracked.
func (e *Engine) ScaleHistory(maxCount int) []tonal.Scale {
	if maxCount < 1 {
		return nil
	}
	return []tonal.Scale{e.scales.CurrentScale()}
}

// Reset returns the engine to its freshly constructed state: no active
// notes, empty pitch-class set, zeroed analyzers.
func (e *Engine) Reset() {
	e.activeNotes = [pitch.MaxPolyphony]uint8{}
	e.classes = 0
	e.histogram = [12]float64{}
	e.chords.Reset()
	e.scales.Reset()
	e.lastPublished = tonal.Chord{}
}

func (e *Engine) applyConfig() {
	e.chords.SetSmoothing(e.config.ChordSmoothing)
	e.chords.SetConfidenceThreshold(e.config.ConfidenceThreshold)
	e.scales.SetDecay(e.config.ScaleDecay)
	e.scales.SetConfidenceThreshold(e.config.ConfidenceThreshold)
	e.voicings.UpdateConfig(e.config.VoicingConfig())
}

// publishState reports the current chord and scale when the chord identity
// changes with sufficient confidence. Harmonic changes are discrete events,
// so this stays off the per-cycle fast path in steady state.
func (e *Engine) publishState() {
	if e.sink == nil {
		return
	}

	chord := e.chords.CurrentChord()
	if chord.Confidence < e.config.ConfidenceThreshold {
		return
	}
	if chord.Root == e.lastPublished.Root && chord.Quality == e.lastPublished.Quality {
		return
	}
	e.lastPublished = chord

	e.sink.Send(telemetry.AddressChord,
		int32(chord.Root), int32(chord.Quality), float32(chord.Confidence))

	if e.config.EnableScaleDetection {
		scale := e.scales.CurrentScale()
		e.sink.Send(telemetry.AddressScale,
			int32(scale.Tonic), int32(scale.Mode), float32(scale.Confidence))
	}
}
