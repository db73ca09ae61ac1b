package tonal

import "github.com/tonelab/harmonia/algorithms/pitch"

// ChordQuality identifies an entry in the chord template table.
type ChordQuality uint8

const (
	QualityMajor ChordQuality = iota
	QualityMinor
	QualityDim
	QualityAug
	QualityDom7
	QualityMaj7
	QualityMin7
	QualityHalfDim7
	QualityDim7
	QualityMinMaj7
	QualityDom9
	QualityMaj9
	QualityMin9
	QualityDom11
	QualityDom13
	QualityMaj9Alt
	QualitySus2
	QualitySus4
	Quality7Sus2
	Quality7Sus4
	QualityAdd9
	QualityAdd11
	QualityAdd6
	QualityMinAdd9
	QualityDom7Flat9
	QualityDom7Sharp9
	QualityDom7Flat5
	QualityDom7Sharp5
	Quality7Flat9Flat5
	Quality7Sharp9Flat5
	QualityPower
	QualityRoot
)

// NumChordTemplates is the size of the fixed template table.
const NumChordTemplates = 32

// ChordTemplate is one row of the template table: a pitch-class pattern
// relative to root 0 tagged with its quality id and display name.
type ChordTemplate struct {
	Pattern pitch.ClassSet
	Quality ChordQuality
	Name    string
}

// ChordTemplates is the fixed chord template database. The table is declared
// once and never mutated; iteration order is part of the matching contract
// (ties go to the first-encountered entry), so entries must not be reordered.
var ChordTemplates = [NumChordTemplates]ChordTemplate{
	// Triads
	{pitch.NewClassSet(0, 4, 7), QualityMajor, "Major"},
	{pitch.NewClassSet(0, 3, 7), QualityMinor, "Minor"},
	{pitch.NewClassSet(0, 3, 6), QualityDim, "Dim"},
	{pitch.NewClassSet(0, 4, 8), QualityAug, "Aug"},

	// Sevenths
	{pitch.NewClassSet(0, 4, 7, 10), QualityDom7, "Dom7"},
	{pitch.NewClassSet(0, 4, 7, 11), QualityMaj7, "Maj7"},
	{pitch.NewClassSet(0, 3, 7, 10), QualityMin7, "Min7"},
	{pitch.NewClassSet(0, 3, 6, 10), QualityHalfDim7, "HalfDim7"},
	{pitch.NewClassSet(0, 3, 6, 9), QualityDim7, "Dim7"},
	{pitch.NewClassSet(0, 3, 7, 11), QualityMinMaj7, "MinMaj7"},

	// Extended
	{pitch.NewClassSet(0, 2, 4, 7, 10), QualityDom9, "Dom9"},
	{pitch.NewClassSet(0, 2, 4, 7, 11), QualityMaj9, "Maj9"},
	{pitch.NewClassSet(0, 2, 3, 7, 10), QualityMin9, "Min9"},
	{pitch.NewClassSet(0, 2, 4, 7, 10, 11), QualityDom11, "Dom11"},
	{pitch.NewClassSet(0, 2, 4, 7, 9, 10), QualityDom13, "Dom13"},
	{pitch.NewClassSet(0, 2, 4, 7, 11), QualityMaj9Alt, "Maj9"},

	// Suspended
	{pitch.NewClassSet(0, 2, 7), QualitySus2, "Sus2"},
	{pitch.NewClassSet(0, 5, 7), QualitySus4, "Sus4"},
	{pitch.NewClassSet(0, 2, 7, 10), Quality7Sus2, "7Sus2"},
	{pitch.NewClassSet(0, 5, 7, 10), Quality7Sus4, "7Sus4"},

	// Add chords
	{pitch.NewClassSet(0, 2, 4, 7), QualityAdd9, "Add9"},
	{pitch.NewClassSet(0, 4, 5, 7), QualityAdd11, "Add11"},
	{pitch.NewClassSet(0, 4, 7, 9), QualityAdd6, "Add6"},
	{pitch.NewClassSet(0, 2, 3, 7), QualityMinAdd9, "MinAdd9"},

	// Altered dominants
	{pitch.NewClassSet(0, 1, 4, 7, 10), QualityDom7Flat9, "Dom7b9"},
	{pitch.NewClassSet(0, 3, 4, 7, 10), QualityDom7Sharp9, "Dom7#9"},
	{pitch.NewClassSet(0, 4, 6, 7, 10), QualityDom7Flat5, "Dom7b5"},
	{pitch.NewClassSet(0, 4, 8, 10), QualityDom7Sharp5, "Dom7#5"},
	{pitch.NewClassSet(0, 1, 4, 6, 10), Quality7Flat9Flat5, "7b9b5"},
	{pitch.NewClassSet(0, 3, 4, 6, 10), Quality7Sharp9Flat5, "7#9b5"},

	// Power chord and bare root
	{pitch.NewClassSet(0, 7), QualityPower, "5"},
	{pitch.NewClassSet(0), QualityRoot, "Root"},
}

// Name returns the display name of the quality, or "Unknown" for an id
// outside the table.
func (q ChordQuality) Name() string {
	if int(q) >= NumChordTemplates {
		return "Unknown"
	}
	return ChordTemplates[q].Name
}
