// Package voicing selects minimal-motion re-voicings between chords.
//
// Unlike the analysis packages this one allocates (candidate voicings are
// variable-length), so it is meant for discrete harmonic-change events, not
// for every audio block.
package voicing

import (
	"math"

	"github.com/tonelab/harmonia/algorithms/pitch"
	"github.com/tonelab/harmonia/algorithms/tonal"
)

// CostUnattainable is the sentinel cost for transitions between voicings of
// different sizes. Candidates carrying it are never selected.
const CostUnattainable = math.MaxFloat64

// DefaultTargetOctave places generated voicings around middle C.
const DefaultTargetOctave = 4

// maxOctave bounds candidate generation to the MIDI range.
const maxOctave = 8

// Config holds the voice-leading cost weights.
type Config struct {
	MaxVoiceDistance   float64 `json:"max_voice_distance"`
	ParallelPenalty    float64 `json:"parallel_penalty"`
	ContraryBonus      float64 `json:"contrary_bonus"`
	AllowVoiceCrossing bool    `json:"allow_voice_crossing"`
}

// DefaultConfig returns the default cost weights.
func DefaultConfig() Config {
	return Config{
		MaxVoiceDistance:   12,
		ParallelPenalty:    5,
		ContraryBonus:      2,
		AllowVoiceCrossing: false,
	}
}

// candidate is a generated voicing; its cost is computed lazily during
// selection.
type candidate struct {
	voices []pitch.Note
	cost   float64
}

// Optimizer generates candidate voicings of a target chord and picks the
// minimum-cost transition from a given voicing.
type Optimizer struct {
	config Config
}

// NewOptimizer creates an optimizer with default weights.
func NewOptimizer() *Optimizer {
	return NewOptimizerWithConfig(DefaultConfig())
}

// NewOptimizerWithConfig creates an optimizer with explicit weights.
func NewOptimizerWithConfig(config Config) *Optimizer {
	return &Optimizer{config: config}
}

// Config returns the current weights.
func (o *Optimizer) Config() Config {
	return o.config
}

// UpdateConfig replaces the weights wholesale.
func (o *Optimizer) UpdateConfig(config Config) {
	o.config = config
}

// FindOptimalVoicing returns the voicing of targetChord reachable from
// currentVoices at minimum cost.
//
// With no current voices it returns one note per chord tone at targetOctave,
// ascending. Otherwise it generates octave-shifted and inverted candidates
// and selects the cheapest one whose voice count matches currentVoices;
// if no such candidate exists (including an empty target chord) the current
// voicing is returned unchanged.
func (o *Optimizer) FindOptimalVoicing(targetChord tonal.Chord, currentVoices []pitch.Note, targetOctave uint8) []pitch.Note {
	if len(currentVoices) == 0 {
		return defaultVoicing(targetChord.PitchClasses, targetOctave)
	}

	candidates := o.generateCandidates(targetChord.PitchClasses, targetOctave)
	if len(candidates) == 0 {
		return currentVoices
	}

	minCost := CostUnattainable
	var best []pitch.Note

	for i := range candidates {
		candidates[i].cost = o.CalculateCost(currentVoices, candidates[i].voices)
		if candidates[i].cost < minCost {
			minCost = candidates[i].cost
			best = candidates[i].voices
		}
	}

	if best == nil {
		return currentVoices
	}
	return best
}

// CalculateCost scores the transition between two equal-size voicings.
// Mismatched sizes yield CostUnattainable. The cost sums per-voice motion,
// adds ParallelPenalty per parallel fifth/octave pair, subtracts
// ContraryBonus per contrary-motion pair, and, when crossing is disallowed,
// adds twice ParallelPenalty per pair whose order inverts.
func (o *Optimizer) CalculateCost(from, to []pitch.Note) float64 {
	if len(from) != len(to) {
		return CostUnattainable
	}

	var total float64

	for i := range from {
		total += o.motionCost(from[i].Pitch, to[i].Pitch)
	}

	// Parallel fifths and octaves: same absolute interval of 7 or 12
	// before and after, both voices moving by the same nonzero amount.
	for i := 0; i < len(from); i++ {
		for j := i + 1; j < len(from); j++ {
			interval1 := absInt(int(from[i].Pitch) - int(from[j].Pitch))
			interval2 := absInt(int(to[i].Pitch) - int(to[j].Pitch))
			motion1 := int(to[i].Pitch) - int(from[i].Pitch)
			motion2 := int(to[j].Pitch) - int(from[j].Pitch)

			if (interval1 == 7 || interval1 == 12) && interval1 == interval2 &&
				motion1 == motion2 && motion1 != 0 {
				total += o.config.ParallelPenalty
			}
		}
	}

	// Contrary motion is rewarded.
	for i := 0; i < len(from); i++ {
		for j := i + 1; j < len(from); j++ {
			motion1 := int(to[i].Pitch) - int(from[i].Pitch)
			motion2 := int(to[j].Pitch) - int(from[j].Pitch)

			if (motion1 > 0 && motion2 < 0) || (motion1 < 0 && motion2 > 0) {
				total -= o.config.ContraryBonus
			}
		}
	}

	if !o.config.AllowVoiceCrossing {
		for i := 0; i < len(to); i++ {
			for j := i + 1; j < len(to); j++ {
				crossing := (from[i].Pitch < from[j].Pitch && to[i].Pitch > to[j].Pitch) ||
					(from[i].Pitch > from[j].Pitch && to[i].Pitch < to[j].Pitch)
				if crossing {
					total += o.config.ParallelPenalty * 2
				}
			}
		}
	}

	return total
}

// motionCost is the per-voice cost: linear in distance, doubled once the
// leap exceeds MaxVoiceDistance.
func (o *Optimizer) motionCost(fromPitch, toPitch uint8) float64 {
	distance := float64(absInt(int(toPitch) - int(fromPitch)))
	if distance > o.config.MaxVoiceDistance {
		return distance * 2
	}
	return distance
}

// defaultVoicing places one note per chord tone at the target octave.
func defaultVoicing(classes pitch.ClassSet, octave uint8) []pitch.Note {
	voices := make([]pitch.Note, 0, classes.Count())
	for c := uint8(0); c < 12; c++ {
		if classes.Contains(c) {
			voices = append(voices, pitch.Note{
				Pitch:    octave*12 + c,
				Velocity: pitch.DefaultVelocity,
			})
		}
	}
	return voices
}

// generateCandidates builds the candidate set: the chord tones laid out
// ascending in each of the three octaves around the target, plus one
// inversion per non-root bass tone with later tones raised an octave to
// keep the voicing ascending.
func (o *Optimizer) generateCandidates(classes pitch.ClassSet, octave uint8) []candidate {
	var tones [12]uint8
	chordTones := classes.Classes(tones[:0])
	if len(chordTones) == 0 {
		return nil
	}

	var candidates []candidate

	for oct := int(octave) - 1; oct <= int(octave)+1; oct++ {
		if oct < 0 || oct > maxOctave {
			continue
		}

		voices := make([]pitch.Note, 0, len(chordTones))
		for _, tone := range chordTones {
			voices = append(voices, pitch.Note{
				Pitch:    uint8(oct*12) + tone,
				Velocity: pitch.DefaultVelocity,
			})
		}
		// Chord tones come out of the set ascending, so the voicing
		// is already sorted.
		candidates = append(candidates, candidate{voices: voices})
	}

	for bass := 1; bass < len(chordTones); bass++ {
		voices := make([]pitch.Note, 0, len(chordTones))
		for i := range chordTones {
			tone := chordTones[(bass+i)%len(chordTones)]
			p := octave*12 + tone
			if i > 0 && p <= voices[len(voices)-1].Pitch {
				p += 12
			}
			voices = append(voices, pitch.Note{
				Pitch:    p,
				Velocity: pitch.DefaultVelocity,
			})
		}
		candidates = append(candidates, candidate{voices: voices})
	}

	return candidates
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
