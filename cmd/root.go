package cmd

import (
	"github.com/spf13/cobra"

	"github.com/tonelab/harmonia/logging"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "harmonia",
	Short: "Real-time harmonic analysis",
	Long:  `Chord recognition, scale detection, and voice-leading suggestions over MIDI note streams.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			logging.SetLevel(logging.DebugLevel)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}
