package tonal

import (
	"fmt"

	"github.com/tonelab/harmonia/algorithms/common"
	"github.com/tonelab/harmonia/algorithms/pitch"
	"github.com/tonelab/harmonia/algorithms/stats"
)

// DefaultScaleDecay is the default per-cycle decay applied to the running
// histogram before new weights are accumulated.
const DefaultScaleDecay = 0.95

// degreeThreshold is the histogram mass above which a pitch class counts as
// a sounding scale degree.
const degreeThreshold = 0.1

// Scale is the result of correlating a pitch-class histogram against the
// mode profile table.
type Scale struct {
	Degrees    pitch.ClassSet `json:"degrees"`
	Tonic      uint8          `json:"tonic"`
	Mode       ScaleMode      `json:"mode"`
	Confidence float64        `json:"confidence"`
}

// Name returns a display name such as "C Major".
func (s Scale) Name() string {
	return fmt.Sprintf("%s %s", pitch.ClassName(s.Tonic), s.Mode.Name())
}

// ScaleDetector correlates a decayed pitch-class histogram against the fixed
// profile table and keeps the current best scale across update cycles.
//
// Matching tries every profile at every tonic (tonic outer, profile inner)
// and keeps the strictly best Pearson correlation; equal correlations go to
// the first-encountered pair in that iteration order.
//
// Instances are not safe for concurrent use; Update is designed to run
// inside a periodic real-time callback and does not allocate.
type ScaleDetector struct {
	decay               float64
	confidenceThreshold float64

	histogram [12]float64
	current   Scale
}

// NewScaleDetector creates a detector with the default decay factor and an
// empty histogram.
func NewScaleDetector() *ScaleDetector {
	return &ScaleDetector{
		decay:               DefaultScaleDecay,
		confidenceThreshold: 0.5,
	}
}

// Analyze binarizes the set into a histogram (1.0 per sounding class) and
// returns the best-correlated scale. Pure: the running histogram and the
// current scale are untouched.
func (sd *ScaleDetector) Analyze(set pitch.ClassSet) Scale {
	var histogram [12]float64
	for i := uint8(0); i < 12; i++ {
		if set.Contains(i) {
			histogram[i] = 1.0
		}
	}
	return findBestScale(&histogram)
}

// Update decays the running histogram, accumulates the new per-class
// weights, and recomputes the current scale.
func (sd *ScaleDetector) Update(weights [12]float64) {
	for i := range sd.histogram {
		sd.histogram[i] = sd.histogram[i]*sd.decay + weights[i]
	}
	sd.current = findBestScale(&sd.histogram)
}

// CurrentScale returns the scale from the most recent Update.
func (sd *ScaleDetector) CurrentScale() Scale {
	return sd.current
}

// SetDecay sets the histogram decay factor, clamped to [0, 1].
func (sd *ScaleDetector) SetDecay(factor float64) {
	sd.decay = common.ClampUnit(factor)
}

// SetConfidenceThreshold sets the reporting threshold, clamped to [0, 1].
// As with chord recognition it does not affect matching.
func (sd *ScaleDetector) SetConfidenceThreshold(threshold float64) {
	sd.confidenceThreshold = common.ClampUnit(threshold)
}

// ConfidenceThreshold returns the current reporting threshold.
func (sd *ScaleDetector) ConfidenceThreshold() float64 {
	return sd.confidenceThreshold
}

// Reset clears the running histogram and the current scale back to the zero
// state.
func (sd *ScaleDetector) Reset() {
	sd.histogram = [12]float64{}
	sd.current = Scale{}
}

// findBestScale correlates the histogram against every (tonic, profile)
// pair. An empty histogram yields the zero-value Scale so that a reset
// detector updated with silence is indistinguishable from a fresh one.
func findBestScale(histogram *[12]float64) Scale {
	var mass float64
	for _, h := range histogram {
		mass += h
	}
	if mass == 0 {
		return Scale{}
	}

	bestCorrelation := -1.0
	var bestTonic uint8
	var bestMode ScaleMode

	var rotated [12]float64
	for tonic := uint8(0); tonic < 12; tonic++ {
		for p := range ScaleProfiles {
			profile := &ScaleProfiles[p]
			for i := uint8(0); i < 12; i++ {
				rotated[i] = profile.Weights[(i+tonic)%12]
			}

			correlation := stats.Pearson(histogram[:], rotated[:])
			if correlation > bestCorrelation {
				bestCorrelation = correlation
				bestTonic = tonic
				bestMode = profile.Mode
			}
		}
	}

	var degrees pitch.ClassSet
	for i := uint8(0); i < 12; i++ {
		if histogram[i] > degreeThreshold {
			degrees = degrees.Set(i)
		}
	}

	return Scale{
		Degrees: degrees,
		Tonic:   bestTonic,
		Mode:    bestMode,
		// Correlation is in [-1, 1]; shift so 0 maps to 0.5.
		Confidence: (bestCorrelation + 1) * 0.5,
	}
}
