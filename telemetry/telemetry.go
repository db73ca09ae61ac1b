// Package telemetry publishes analysis state to an outbound OSC-style bus:
// an address string plus typed arguments (int32, float32, string, byte
// blob). Delivery is best-effort and never blocks the caller.
package telemetry

// Addresses used by the engine when publishing harmonic state.
const (
	AddressChord = "/harmonia/chord"
	AddressScale = "/harmonia/scale"
)

// Sink accepts outbound structured records. Implementations must not block:
// a slow or absent consumer drops records rather than stalling the caller.
type Sink interface {
	Send(address string, args ...any)
}

// NopSink discards everything.
type NopSink struct{}

// Send implements Sink.
func (NopSink) Send(address string, args ...any) {}
