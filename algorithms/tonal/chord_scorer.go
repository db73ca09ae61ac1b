package tonal

import "github.com/tonelab/harmonia/algorithms/pitch"

// ScoringMethod selects the template-scoring implementation.
type ScoringMethod int

const (
	// ScoringScalar walks the 12 pitch classes one by one. Reference
	// implementation.
	ScoringScalar ScoringMethod = iota

	// ScoringBitmask rotates the template mask and counts bits with
	// popcount. Same algorithm, fewer operations per template; must agree
	// with ScoringScalar on the winning (root, quality) pair and stay
	// within 0.01 confidence of it.
	ScoringBitmask
)

// TemplateScorer scores an observed pitch-class set against a root-relative
// template transposed to the given root. Implementations must be pure.
type TemplateScorer interface {
	Score(input pitch.ClassSet, tpl *ChordTemplate, root uint8) float64
}

// NewScorer returns the scorer for the given method. Unknown methods fall
// back to the bitmask scorer.
func NewScorer(method ScoringMethod) TemplateScorer {
	if method == ScoringScalar {
		return ScalarScorer{}
	}
	return BitmaskScorer{}
}

// ScalarScorer is the reference per-class scoring loop.
//
// score = completeness * extraPenalty where
// completeness = matched/required and extraPenalty = 1/(1 + 0.5*extra).
type ScalarScorer struct{}

// Score implements TemplateScorer.
func (ScalarScorer) Score(input pitch.ClassSet, tpl *ChordTemplate, root uint8) float64 {
	if input.Count() == 0 {
		return 0
	}

	var matched, required, extra int
	for i := uint8(0); i < 12; i++ {
		rotated := (i + root) % 12
		inTemplate := tpl.Pattern.Contains(i)
		inInput := input.Contains(rotated)

		switch {
		case inTemplate:
			required++
			if inInput {
				matched++
			}
		case inInput:
			extra++
		}
	}

	if required == 0 {
		return 0
	}

	completeness := float64(matched) / float64(required)
	extraPenalty := 1.0 / (1.0 + 0.5*float64(extra))
	return completeness * extraPenalty
}

// BitmaskScorer evaluates the same score with one mask rotation and three
// popcounts.
type BitmaskScorer struct{}

// Score implements TemplateScorer.
func (BitmaskScorer) Score(input pitch.ClassSet, tpl *ChordTemplate, root uint8) float64 {
	if input.Count() == 0 {
		return 0
	}

	rotated := tpl.Pattern.Rotate(root)
	required := rotated.Count()
	if required == 0 {
		return 0
	}

	matched := (input & rotated).Count()
	extra := (input &^ rotated).Count()

	completeness := float64(matched) / float64(required)
	extraPenalty := 1.0 / (1.0 + 0.5*float64(extra))
	return completeness * extraPenalty
}
