package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/bep/debounce"
	"github.com/spf13/cobra"
	"gitlab.com/gomidi/midi/v2"

	"github.com/tonelab/harmonia/algorithms/pitch"
	"github.com/tonelab/harmonia/harmony"
	"github.com/tonelab/harmonia/harmony/config"
	"github.com/tonelab/harmonia/logging"
	"github.com/tonelab/harmonia/telemetry"
)

var (
	listenPort int
	oscHost    string
	oscPort    int
)

func init() {
	listenCmd.Flags().IntVar(&listenPort, "port", 0, "MIDI input port index")
	listenCmd.Flags().StringVar(&oscHost, "osc-host", "", "publish chord/scale state to this OSC host")
	listenCmd.Flags().IntVar(&oscPort, "osc-port", 9000, "OSC port")
	rootCmd.AddCommand(listenCmd)
}

var listenCmd = &cobra.Command{
	Use:   "listen",
	Short: "Analyze a live MIDI input port",
	RunE: func(cmd *cobra.Command, args []string) error {
		return listen()
	},
}

func listen() error {
	defer midi.CloseDriver()

	in, err := midi.InPort(listenPort)
	if err != nil {
		return fmt.Errorf("opening MIDI input %d: %w", listenPort, err)
	}

	engine := harmony.New(config.Default())
	if oscHost != "" {
		sink := telemetry.NewOSCSink(oscHost, oscPort)
		defer sink.Close()
		engine.SetSink(sink)
	}

	log := logging.WithFields(logging.Fields{"component": "listen"})
	log.Info("listening", logging.Fields{"port": in.String()})

	// Coalesce bursts of note events before reporting; a strummed chord
	// arrives as several messages within a few milliseconds.
	report := debounce.New(50 * time.Millisecond)

	var event [1]pitch.Note
	stop, err := midi.ListenTo(in, func(msg midi.Message, timestampms int32) {
		var channel, key, velocity uint8
		switch {
		case msg.GetNoteStart(&channel, &key, &velocity):
			event[0] = pitch.Note{Pitch: key, Velocity: velocity, Channel: channel, Timestamp: uint64(timestampms) * 1000}
		case msg.GetNoteEnd(&channel, &key):
			event[0] = pitch.Note{Pitch: key, Velocity: 0, Channel: channel, Timestamp: uint64(timestampms) * 1000}
		default:
			return
		}

		engine.ProcessNotes(event[:])
		report(func() {
			chord := engine.CurrentChord()
			scale := engine.CurrentScale()
			if chord.Confidence >= engine.Config().ConfidenceThreshold {
				fmt.Printf("%-10s %.2f  scale: %-12s %.2f\n",
					chord.Name(), chord.Confidence, scale.Name(), scale.Confidence)
			}
		})
	})
	if err != nil {
		return fmt.Errorf("listening to MIDI input: %w", err)
	}
	defer stop()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt)
	<-sig

	return nil
}
