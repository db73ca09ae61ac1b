package cmd

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"github.com/spf13/cobra"

	"github.com/tonelab/harmonia/algorithms/pitch"
	"github.com/tonelab/harmonia/harmony"
	"github.com/tonelab/harmonia/harmony/config"
	"github.com/tonelab/harmonia/logging"
	"github.com/tonelab/harmonia/model"
)

var serveAddr string

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", ":8080", "listen address")
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the analysis API over HTTP",
	RunE: func(cmd *cobra.Command, args []string) error {
		return serve()
	},
}

func serve() error {
	log := logging.WithFields(logging.Fields{"component": "serve"})

	r := mux.NewRouter()
	r.HandleFunc("/v1/analyze", handleAnalyze).Methods("POST")
	r.HandleFunc("/v1/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}).Methods("GET")

	log.Info("serving", logging.Fields{"addr": serveAddr})
	return http.ListenAndServe(serveAddr, cors.Default().Handler(r))
}

func handleAnalyze(w http.ResponseWriter, r *http.Request) {
	requestID := uuid.NewString()
	log := logging.WithFields(logging.Fields{"component": "serve", "request_id": requestID})

	var body model.AnalyzeRequestBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeJSON(w, http.StatusBadRequest, model.ErrorResponse{Error: "invalid request body"})
		return
	}
	if len(body.Events) == 0 {
		writeJSON(w, http.StatusBadRequest, model.ErrorResponse{Error: "no events provided"})
		return
	}

	// One engine per request: the analyzer state is single-threaded by
	// contract.
	engine := harmony.New(config.Default())
	engine.ProcessNotes(body.Events)

	chord := engine.CurrentChord()
	scale := engine.CurrentScale()
	log.Debug("analyzed", logging.Fields{"events": len(body.Events), "chord": chord.Name()})

	writeJSON(w, http.StatusOK, model.AnalyzeResponse{
		RequestID: requestID,
		Chord: model.ChordResult{
			Root:       chord.Root,
			RootName:   pitch.ClassName(chord.Root),
			Quality:    chord.Quality.Name(),
			Name:       chord.Name(),
			Confidence: chord.Confidence,
		},
		Scale: model.ScaleResult{
			Tonic:      scale.Tonic,
			TonicName:  pitch.ClassName(scale.Tonic),
			Mode:       scale.Mode.Name(),
			Name:       scale.Name(),
			Confidence: scale.Confidence,
		},
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logging.Error(err, "encoding response")
	}
}
