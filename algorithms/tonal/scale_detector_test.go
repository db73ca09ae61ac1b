package tonal

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tonelab/harmonia/algorithms/pitch"
)

func cMajorWeights() [12]float64 {
	var w [12]float64
	for _, d := range []int{0, 2, 4, 5, 7, 9, 11} {
		w[d] = 1.0
	}
	return w
}

func TestAnalyzeCMajorScale(t *testing.T) {
	assert := assert.New(t)

	sd := NewScaleDetector()
	scale := sd.Analyze(pitch.NewClassSet(0, 2, 4, 5, 7, 9, 11))

	assert.Equal(uint8(0), scale.Tonic)
	assert.Equal(ModeMajor, scale.Mode)
	assert.Equal("C Major", scale.Name())

	// A diatonic scale has to correlate better than a chromatic cluster of
	// the same cardinality.
	cluster := sd.Analyze(pitch.NewClassSet(0, 1, 2, 3, 4, 5, 6))
	assert.Greater(scale.Confidence, cluster.Confidence)
}

func TestAnalyzeEmptySetYieldsZeroScale(t *testing.T) {
	assert := assert.New(t)

	sd := NewScaleDetector()
	assert.Equal(Scale{}, sd.Analyze(pitch.ClassSet(0)))
}

func TestAnalyzeIsPureForScales(t *testing.T) {
	assert := assert.New(t)

	sd := NewScaleDetector()
	sd.Update(cMajorWeights())
	before := sd.CurrentScale()

	sd.Analyze(pitch.NewClassSet(1, 3, 5))
	assert.Equal(before, sd.CurrentScale())
}

func TestUpdateTracksDegreesAboveThreshold(t *testing.T) {
	assert := assert.New(t)

	sd := NewScaleDetector()
	var w [12]float64
	w[0], w[4], w[7] = 1.0, 1.0, 1.0
	sd.Update(w)

	assert.Equal(pitch.NewClassSet(0, 4, 7), sd.CurrentScale().Degrees)
}

// Pearson correlation is invariant under positive scaling, so a decay-only
// cycle (no new weights) must leave tonic, mode, and confidence untouched.
func TestDecayOnlyCyclePreservesResult(t *testing.T) {
	assert := assert.New(t)

	sd := NewScaleDetector()
	sd.Update(cMajorWeights())
	first := sd.CurrentScale()

	sd.Update([12]float64{})
	second := sd.CurrentScale()

	assert.Equal(first.Tonic, second.Tonic)
	assert.Equal(first.Mode, second.Mode)
	assert.InDelta(first.Confidence, second.Confidence, 1e-9)
}

func TestUpdateOnCMajorHistogram(t *testing.T) {
	assert := assert.New(t)

	sd := NewScaleDetector()
	for i := 0; i < 4; i++ {
		sd.Update(cMajorWeights())
	}

	scale := sd.CurrentScale()
	assert.Equal(uint8(0), scale.Tonic)
	assert.Equal(ModeMajor, scale.Mode)
	assert.Greater(scale.Confidence, 0.5)
}

func TestResetClearsHistogramAndScale(t *testing.T) {
	assert := assert.New(t)

	sd := NewScaleDetector()
	sd.Update(cMajorWeights())
	sd.Reset()

	assert.Equal(Scale{}, sd.CurrentScale())

	// With the histogram cleared, a silent update stays at the zero state.
	sd.Update([12]float64{})
	assert.Equal(Scale{}, sd.CurrentScale())
}
