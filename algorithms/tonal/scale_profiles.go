package tonal

// ScaleMode identifies an entry in the scale profile table.
type ScaleMode uint8

const (
	ModeMajor ScaleMode = iota
	ModeMinor
	ModeDorian
	ModePhrygian
	ModeLydian
	ModeMixolydian
	ModeLocrian
)

// NumScaleProfiles is the size of the fixed profile table.
const NumScaleProfiles = 7

// ScaleProfile is a reference weighting of the 12 pitch classes for one
// diatonic mode, relative to tonic 0.
type ScaleProfile struct {
	Weights [12]float64
	Mode    ScaleMode
	Name    string
}

// ScaleProfiles holds the Krumhansl-Kessler key profiles for major and
// minor, with the remaining modes derived by reweighting the altered
// degrees. Iteration order is part of the matching contract (ties go to the
// first-encountered entry), so entries must not be reordered.
var ScaleProfiles = [NumScaleProfiles]ScaleProfile{
	{[12]float64{6.35, 2.23, 3.48, 2.33, 4.38, 4.09, 2.52, 5.19, 2.39, 3.66, 2.29, 2.88}, ModeMajor, "Major"},
	{[12]float64{6.33, 2.68, 3.52, 5.38, 2.60, 3.53, 2.54, 4.75, 3.98, 2.69, 3.34, 3.17}, ModeMinor, "Minor"},
	{[12]float64{6.35, 2.23, 3.48, 4.38, 2.33, 4.09, 2.52, 5.19, 3.66, 2.39, 2.29, 2.88}, ModeDorian, "Dorian"},
	{[12]float64{6.33, 3.52, 2.68, 5.38, 2.60, 3.53, 2.54, 4.75, 2.69, 3.98, 3.34, 3.17}, ModePhrygian, "Phrygian"},
	{[12]float64{6.35, 2.23, 3.48, 2.33, 4.38, 2.52, 4.09, 5.19, 2.39, 3.66, 2.29, 2.88}, ModeLydian, "Lydian"},
	{[12]float64{6.35, 2.23, 3.48, 2.33, 4.38, 4.09, 2.52, 5.19, 2.39, 3.66, 2.88, 2.29}, ModeMixolydian, "Mixolydian"},
	{[12]float64{6.33, 3.52, 2.68, 5.38, 2.60, 3.53, 4.75, 2.54, 2.69, 3.98, 3.34, 3.17}, ModeLocrian, "Locrian"},
}

// Name returns the display name of the mode, or "Unknown" for an id outside
// the table.
func (m ScaleMode) Name() string {
	if int(m) >= NumScaleProfiles {
		return "Unknown"
	}
	return ScaleProfiles[m].Name
}
