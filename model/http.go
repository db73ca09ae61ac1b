// Package model holds the DTOs of the HTTP analysis API.
package model

import "github.com/tonelab/harmonia/algorithms/pitch"

// AnalyzeRequestBody carries a sequence of note events to analyze, in
// timestamp order.
type AnalyzeRequestBody struct {
	Events []pitch.Note `json:"events"`
}

// ChordResult is the chord portion of an analysis response.
type ChordResult struct {
	Root       uint8   `json:"root"`
	RootName   string  `json:"root_name"`
	Quality    string  `json:"quality"`
	Name       string  `json:"name"`
	Confidence float64 `json:"confidence"`
}

// ScaleResult is the scale portion of an analysis response.
type ScaleResult struct {
	Tonic      uint8   `json:"tonic"`
	TonicName  string  `json:"tonic_name"`
	Mode       string  `json:"mode"`
	Name       string  `json:"name"`
	Confidence float64 `json:"confidence"`
}

// AnalyzeResponse is the result of analyzing one event sequence.
type AnalyzeResponse struct {
	RequestID string      `json:"request_id"`
	Chord     ChordResult `json:"chord"`
	Scale     ScaleResult `json:"scale"`
}

// ErrorResponse mirrors the error shape of the API.
type ErrorResponse struct {
	Error string `json:"detail"`
}
