package pitch

// MaxPolyphony is the size of the active-note table: one slot per MIDI pitch.
const MaxPolyphony = 128

// DefaultVelocity is used for generated notes (voicing candidates, default
// voicings) where the caller supplies no dynamics.
const DefaultVelocity = 80

// Note is a single note event. Velocity 0 means release. Timestamp units are
// caller-defined (the midiio package uses microseconds from track start).
// Pitch is assumed to be a valid MIDI pitch (0-127); out-of-range pitches are
// a caller contract violation and are not checked on the analysis path.
type Note struct {
	Pitch     uint8  `json:"pitch"`
	Velocity  uint8  `json:"velocity"`
	Channel   uint8  `json:"channel"`
	Timestamp uint64 `json:"timestamp"`
}

// Class returns the pitch class of the note (pitch mod 12).
func (n Note) Class() uint8 {
	return n.Pitch % 12
}

// classNames maps pitch classes to conventional sharp spellings.
var classNames = [12]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

// ClassName returns the conventional name of a pitch class (0=C .. 11=B).
func ClassName(class uint8) string {
	return classNames[class%12]
}
