package protocol

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMessage_EncodeDecode(t *testing.T) {
	t.Parallel()

	msg := MustNewMessage(MsgRoomJoined, RoomJoinedPayload{
		RoomID:   "room-1",
		PlayerID: "player-1",
	})

	data, err := msg.Encode()
	require.NoError(t, err)

	decoded, err := Decode(data)
	require.NoError(t, err)
	assert.Equal(t, MsgRoomJoined, decoded.Type)

	payload, err := ParsePayload[RoomJoinedPayload](decoded)
	require.NoError(t, err)
	assert.Equal(t, "room-1", payload.RoomID)
	assert.Equal(t, "player-1", payload.PlayerID)
}

func TestDecode_InvalidJSON(t *testing.T) {
	t.Parallel()

	_, err := Decode([]byte("{not json"))
	assert.Error(t, err)
}

func TestNewErrorMessage(t *testing.T) {
	t.Parallel()

	msg := NewErrorMessage(ErrCodeRoomNotFound)
	assert.Equal(t, MsgError, msg.Type)

	payload, err := ParsePayload[ErrorPayload](msg)
	require.NoError(t, err)
	assert.Equal(t, ErrCodeRoomNotFound, payload.Code)
	assert.Equal(t, ErrorMessages[ErrCodeRoomNotFound], payload.Message)
}

func TestNewErrorMessageWithText(t *testing.T) {
	t.Parallel()

	msg := NewErrorMessageWithText(ErrCodeUnknown, "boom")
	payload, err := ParsePayload[ErrorPayload](msg)
	require.NoError(t, err)
	assert.Equal(t, "boom", payload.Message)
}
