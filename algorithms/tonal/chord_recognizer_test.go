package tonal

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tonelab/harmonia/algorithms/pitch"
)

func TestAnalyzeEmptySetHasZeroConfidence(t *testing.T) {
	assert := assert.New(t)

	for _, scorer := range []TemplateScorer{ScalarScorer{}, BitmaskScorer{}} {
		cr := NewChordRecognizerWithScorer(scorer)
		chord := cr.Analyze(pitch.ClassSet(0))
		assert.Equal(0.0, chord.Confidence)
	}
}

func TestAnalyzeMajorTriad(t *testing.T) {
	assert := assert.New(t)

	cr := NewChordRecognizer()
	chord := cr.Analyze(pitch.NewClassSet(0, 4, 7))

	assert.Equal(uint8(0), chord.Root)
	assert.Equal(QualityMajor, chord.Quality)
	assert.Equal(1.0, chord.Confidence)
	assert.Equal("C Major", chord.Name())
}

func TestAnalyzeDominantSeventh(t *testing.T) {
	assert := assert.New(t)

	cr := NewChordRecognizer()
	chord := cr.Analyze(pitch.NewClassSet(0, 4, 7, 10))

	assert.Equal(uint8(0), chord.Root)
	assert.Equal(QualityDom7, chord.Quality)
	assert.Equal(1.0, chord.Confidence)
}

func TestAnalyzeTransposedMinorTriad(t *testing.T) {
	assert := assert.New(t)

	// A minor: A C E
	cr := NewChordRecognizer()
	chord := cr.Analyze(pitch.NewClassSet(9, 0, 4))

	assert.Equal(uint8(9), chord.Root)
	assert.Equal(QualityMinor, chord.Quality)
	assert.Equal(1.0, chord.Confidence)
}

// The chromatic aggregate scores identically for every six-note template at
// every root, so the winner is fixed by iteration order: root 0 first, then
// the first six-note entry in the table.
func TestTieBreakIsFirstEncountered(t *testing.T) {
	assert := assert.New(t)

	for _, scorer := range []TemplateScorer{ScalarScorer{}, BitmaskScorer{}} {
		cr := NewChordRecognizerWithScorer(scorer)
		chord := cr.Analyze(pitch.ClassSet(0x0FFF))

		assert.Equal(uint8(0), chord.Root)
		assert.Equal(QualityDom11, chord.Quality)
	}
}

// The bitmask path is a performance variant of the scalar path, never a
// different algorithm: same winner for every one of the 4096 possible
// pitch-class sets, confidence within 0.01.
func TestScorerPathsAgreeOnAllSets(t *testing.T) {
	scalar := NewChordRecognizerWithScorer(ScalarScorer{})
	bitmask := NewChordRecognizerWithScorer(BitmaskScorer{})

	for bits := 0; bits < 4096; bits++ {
		set := pitch.ClassSet(bits)
		a := scalar.Analyze(set)
		b := bitmask.Analyze(set)

		if a.Root != b.Root || a.Quality != b.Quality {
			t.Fatalf("set %s: scalar (%d,%d) vs bitmask (%d,%d)",
				set, a.Root, a.Quality, b.Root, b.Quality)
		}
		if diff := a.Confidence - b.Confidence; diff > 0.01 || diff < -0.01 {
			t.Fatalf("set %s: confidence diverged: %f vs %f", set, a.Confidence, b.Confidence)
		}
	}
}

func TestUpdateSmoothsConfidenceOnly(t *testing.T) {
	assert := assert.New(t)

	cr := NewChordRecognizer()

	// First update: no previous confidence, nothing to blend.
	cr.Update(pitch.NewClassSet(0, 4, 7))
	assert.Equal(1.0, cr.CurrentChord().Confidence)

	// Silence scores 0 raw; blended against the previous 1.0 it decays to
	// (1 - alpha).
	cr.Update(pitch.ClassSet(0))
	assert.InDelta(0.7, cr.CurrentChord().Confidence, 1e-9)
}

func TestUpdateNeverSmoothsRootOrQuality(t *testing.T) {
	assert := assert.New(t)

	cr := NewChordRecognizer()
	cr.Update(pitch.NewClassSet(0, 4, 7))
	cr.Update(pitch.NewClassSet(2, 5, 9)) // D minor

	chord := cr.CurrentChord()
	assert.Equal(uint8(2), chord.Root)
	assert.Equal(QualityMinor, chord.Quality)
}

func TestSetSmoothingClamps(t *testing.T) {
	assert := assert.New(t)

	cr := NewChordRecognizer()
	cr.SetSmoothing(5.0) // clamped to 1: fresh confidence wins outright

	cr.Update(pitch.NewClassSet(0, 4, 7))
	cr.Update(pitch.ClassSet(0))
	assert.Equal(0.0, cr.CurrentChord().Confidence)
}

func TestAnalyzeIsPure(t *testing.T) {
	assert := assert.New(t)

	cr := NewChordRecognizer()
	cr.Update(pitch.NewClassSet(0, 4, 7))
	before := cr.CurrentChord()

	cr.Analyze(pitch.NewClassSet(2, 5, 9))
	assert.Equal(before, cr.CurrentChord())
}

func TestResetClearsChordState(t *testing.T) {
	assert := assert.New(t)

	cr := NewChordRecognizer()
	cr.Update(pitch.NewClassSet(0, 4, 7))
	cr.Reset()

	assert.Equal(Chord{}, cr.CurrentChord())
	assert.Equal(Chord{}, cr.PreviousChord())
}
