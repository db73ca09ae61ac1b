package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tonelab/harmonia/algorithms/pitch"
	"github.com/tonelab/harmonia/algorithms/tonal"
	"github.com/tonelab/harmonia/harmony"
	"github.com/tonelab/harmonia/harmony/config"
	"github.com/tonelab/harmonia/midiio"
)

var showVoicings bool

func init() {
	analyzeCmd.Flags().BoolVar(&showVoicings, "voicings", false, "print a minimal-motion voicing per chord change")
	rootCmd.AddCommand(analyzeCmd)
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze <file.mid>",
	Short: "Print the chord/scale timeline of a MIDI file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return analyzeFile(args[0])
	},
}

func analyzeFile(path string) error {
	s, err := midiio.ReadFile(path)
	if err != nil {
		return err
	}

	events := midiio.NoteEvents(s)
	engine := harmony.New(config.Default())

	var lastChord tonal.Chord
	var voices []pitch.Note

	// Feed events grouped by timestamp so simultaneous notes land in one
	// update cycle.
	for start := 0; start < len(events); {
		end := start + 1
		for end < len(events) && events[end].Timestamp == events[start].Timestamp {
			end++
		}
		engine.ProcessNotes(events[start:end])

		chord := engine.CurrentChord()
		if chord.Confidence >= engine.Config().ConfidenceThreshold &&
			(chord.Root != lastChord.Root || chord.Quality != lastChord.Quality) {
			scale := engine.CurrentScale()
			fmt.Printf("%10.3fs  %-10s %.2f  scale: %-12s %.2f\n",
				float64(events[start].Timestamp)/1e6,
				chord.Name(), chord.Confidence,
				scale.Name(), scale.Confidence)

			if showVoicings {
				voices = engine.SuggestVoiceLeading(chord, voices)
				fmt.Printf("%12s voicing: %s\n", "", formatVoicing(voices))
			}
			lastChord = chord
		}

		start = end
	}

	return nil
}

func formatVoicing(voices []pitch.Note) string {
	out := ""
	for i, v := range voices {
		if i > 0 {
			out += " "
		}
		out += fmt.Sprintf("%s%d", pitch.ClassName(v.Class()), int(v.Pitch)/12)
	}
	return out
}
