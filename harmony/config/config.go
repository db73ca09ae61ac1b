// Package config holds the flat options record for the harmony engine.
package config

import (
	"github.com/tonelab/harmonia/algorithms/common"
	"github.com/tonelab/harmonia/algorithms/tonal"
	"github.com/tonelab/harmonia/algorithms/voicing"
)

// Config is the engine options record. Applying a new one takes effect for
// subsequent calls; there is no rollback or versioning. Unit-interval
// factors outside [0, 1] are clamped, never rejected.
type Config struct {
	ConfidenceThreshold  float64 `json:"confidence_threshold"`
	EnableVoiceLeading   bool    `json:"enable_voice_leading"`
	EnableScaleDetection bool    `json:"enable_scale_detection"`

	// Smoothing/decay factors
	ChordSmoothing float64 `json:"chord_smoothing"`
	ScaleDecay     float64 `json:"scale_decay"`

	// Voice-leading weights
	MaxVoiceDistance   float64 `json:"max_voice_distance"`
	ParallelPenalty    float64 `json:"parallel_penalty"`
	ContraryBonus      float64 `json:"contrary_bonus"`
	AllowVoiceCrossing bool    `json:"allow_voice_crossing"`
	TargetOctave       uint8   `json:"target_octave"`
}

// Default returns the default engine configuration.
func Default() Config {
	vl := voicing.DefaultConfig()
	return Config{
		ConfidenceThreshold:  0.5,
		EnableVoiceLeading:   true,
		EnableScaleDetection: true,
		ChordSmoothing:       tonal.DefaultChordSmoothing,
		ScaleDecay:           tonal.DefaultScaleDecay,
		MaxVoiceDistance:     vl.MaxVoiceDistance,
		ParallelPenalty:      vl.ParallelPenalty,
		ContraryBonus:        vl.ContraryBonus,
		AllowVoiceCrossing:   vl.AllowVoiceCrossing,
		TargetOctave:         voicing.DefaultTargetOctave,
	}
}

// Normalized returns a copy with the unit-interval factors clamped and the
// target octave bounded to the MIDI range.
func (c Config) Normalized() Config {
	c.ConfidenceThreshold = common.ClampUnit(c.ConfidenceThreshold)
	c.ChordSmoothing = common.ClampUnit(c.ChordSmoothing)
	c.ScaleDecay = common.ClampUnit(c.ScaleDecay)
	if c.TargetOctave > 8 {
		c.TargetOctave = 8
	}
	return c
}

// VoicingConfig projects the voice-leading weights into a voicing.Config.
func (c Config) VoicingConfig() voicing.Config {
	return voicing.Config{
		MaxVoiceDistance:   c.MaxVoiceDistance,
		ParallelPenalty:    c.ParallelPenalty,
		ContraryBonus:      c.ContraryBonus,
		AllowVoiceCrossing: c.AllowVoiceCrossing,
	}
}
