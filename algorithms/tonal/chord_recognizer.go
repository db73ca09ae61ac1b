package tonal

import (
	"fmt"

	"github.com/tonelab/harmonia/algorithms/common"
	"github.com/tonelab/harmonia/algorithms/pitch"
)

// DefaultChordSmoothing is the default confidence smoothing factor. A fresh
// confidence contributes this fraction; the remainder carries over from the
// previous cycle.
const DefaultChordSmoothing = 0.3

// Chord is the result of matching a pitch-class set against the template
// table: the input snapshot, the winning root and quality, and a confidence
// in [0, 1].
type Chord struct {
	PitchClasses pitch.ClassSet `json:"pitch_classes"`
	Root         uint8          `json:"root"`
	Quality      ChordQuality   `json:"quality"`
	Confidence   float64        `json:"confidence"`
}

// Name returns a display name such as "C Maj7".
func (c Chord) Name() string {
	return fmt.Sprintf("%s %s", pitch.ClassName(c.Root), c.Quality.Name())
}

// ChordRecognizer matches pitch-class sets against the fixed template table
// and keeps a smoothed current chord across update cycles.
//
// Matching tries every template at every root (root outer, template inner)
// and keeps the strictly best score; equal scores go to the first-encountered
// pair in that iteration order. The rule is arbitrary but deterministic and
// tests depend on it.
//
// Instances are not safe for concurrent use; Update is designed to run
// inside a periodic real-time callback and does not allocate.
type ChordRecognizer struct {
	scorer              TemplateScorer
	smoothing           float64
	confidenceThreshold float64

	current  Chord
	previous Chord
}

// NewChordRecognizer creates a recognizer using the bitmask scoring path.
func NewChordRecognizer() *ChordRecognizer {
	return NewChordRecognizerWithScorer(BitmaskScorer{})
}

// NewChordRecognizerWithScorer creates a recognizer with an explicit scoring
// strategy. Used by tests to cross-check the scalar and bitmask paths.
func NewChordRecognizerWithScorer(scorer TemplateScorer) *ChordRecognizer {
	return &ChordRecognizer{
		scorer:              scorer,
		smoothing:           DefaultChordSmoothing,
		confidenceThreshold: 0.5,
	}
}

// Analyze scores the set against the full template table and returns the
// best match. Pure: no recognizer state is read or written.
func (cr *ChordRecognizer) Analyze(set pitch.ClassSet) Chord {
	return cr.findBestMatch(set)
}

// Update recomputes the current chord from the set and smooths its
// confidence against the previous cycle. Root and quality are never
// smoothed, only confidence, and only when the previous confidence was
// nonzero.
func (cr *ChordRecognizer) Update(set pitch.ClassSet) {
	cr.previous = cr.current
	cr.current = cr.findBestMatch(set)

	if cr.previous.Confidence > 0 {
		cr.current.Confidence = cr.smoothing*cr.current.Confidence +
			(1-cr.smoothing)*cr.previous.Confidence
	}
}

// CurrentChord returns the chord from the most recent Update.
func (cr *ChordRecognizer) CurrentChord() Chord {
	return cr.current
}

// PreviousChord returns the chord from the cycle before the most recent
// Update.
func (cr *ChordRecognizer) PreviousChord() Chord {
	return cr.previous
}

// SetSmoothing sets the confidence smoothing factor, clamped to [0, 1].
func (cr *ChordRecognizer) SetSmoothing(factor float64) {
	cr.smoothing = common.ClampUnit(factor)
}

// SetConfidenceThreshold sets the reporting threshold, clamped to [0, 1].
// The threshold does not affect matching; callers use it to gate what they
// act on or publish.
func (cr *ChordRecognizer) SetConfidenceThreshold(threshold float64) {
	cr.confidenceThreshold = common.ClampUnit(threshold)
}

// ConfidenceThreshold returns the current reporting threshold.
func (cr *ChordRecognizer) ConfidenceThreshold() float64 {
	return cr.confidenceThreshold
}

// Reset clears the current and previous chord back to the zero state.
func (cr *ChordRecognizer) Reset() {
	cr.current = Chord{}
	cr.previous = Chord{}
}

func (cr *ChordRecognizer) findBestMatch(set pitch.ClassSet) Chord {
	var bestScore float64
	var bestRoot uint8
	var bestQuality ChordQuality

	for root := uint8(0); root < 12; root++ {
		for t := range ChordTemplates {
			score := cr.scorer.Score(set, &ChordTemplates[t], root)
			if score > bestScore {
				bestScore = score
				bestRoot = root
				bestQuality = ChordTemplates[t].Quality
			}
		}
	}

	return Chord{
		PitchClasses: set,
		Root:         bestRoot,
		Quality:      bestQuality,
		Confidence:   bestScore,
	}
}
