package telemetry

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewMessageConvertsArguments(t *testing.T) {
	assert := assert.New(t)

	msg := NewMessage(AddressChord,
		int32(7), 3, uint8(64), float32(0.5), 0.25, "Major", []byte{1, 2}, true)

	assert.Equal(AddressChord, msg.Address)
	assert.Equal([]any{
		int32(7), int32(3), int32(64), float32(0.5), float32(0.25),
		"Major", []byte{1, 2}, true,
	}, msg.Arguments)
}

func TestNewMessageStringifiesUnknownTypes(t *testing.T) {
	msg := NewMessage(AddressScale, struct{ A int }{A: 1})
	assert.Equal(t, []any{"{1}"}, msg.Arguments)
}

func TestNopSinkDiscards(t *testing.T) {
	// Must not panic or retain anything.
	NopSink{}.Send(AddressChord, int32(0))
}
