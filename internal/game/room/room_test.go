package room_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wormhole-game/wormhole-server/internal/game/room"
)

func newTestRoomID() room.RoomID {
	return room.UUIDProvider{}.ProvideID()
}

// receiveWithin fails the test unless an id arrives on ch before the deadline.
func receiveWithin(t *testing.T, ch <-chan room.RoomID, d time.Duration) room.RoomID {
	t.Helper()
	select {
	case id := <-ch:
		return id
	case <-time.After(d):
		t.Fatalf("no deletion request received within %s", d)
		return room.RoomID{}
	}
}

// assertNoMessage fails the test if anything arrives on ch before the deadline.
func assertNoMessage(t *testing.T, ch <-chan room.RoomID, d time.Duration) {
	t.Helper()
	select {
	case id := <-ch:
		t.Fatalf("unexpected deletion request for %s", id)
	case <-time.After(d):
	}
}

func TestRoom_IdleExpiry(t *testing.T) {
	t.Parallel()

	ch := make(chan room.RoomID, 1)
	id := newTestRoomID()
	room.NewRoom(id, ch, 20*time.Millisecond)

	// Exactly one deletion request, carrying the room's own id
	got := receiveWithin(t, ch, time.Second)
	assert.Equal(t, id, got)
	assertNoMessage(t, ch, 100*time.Millisecond)
}

func TestRoom_CancelDeletion(t *testing.T) {
	t.Parallel()

	ch := make(chan room.RoomID, 1)
	r := room.NewRoom(newTestRoomID(), ch, 200*time.Millisecond)

	r.CancelDeletion()

	// Well past the original idle window: nothing was sent
	assertNoMessage(t, ch, 400*time.Millisecond)
}

func TestRoom_CancelDeletion_NoTimerIsNoop(t *testing.T) {
	t.Parallel()

	ch := make(chan room.RoomID, 1)
	r := room.NewRoom(newTestRoomID(), ch, time.Hour)

	r.CancelDeletion()
	// Second cancel with nothing armed must not panic
	r.CancelDeletion()
}

func TestRoom_CancelDeletion_DoesNotRetractFiredRequest(t *testing.T) {
	t.Parallel()

	ch := make(chan room.RoomID, 1)
	id := newTestRoomID()
	r := room.NewRoom(id, ch, 20*time.Millisecond)

	// Let the timer fire and queue its request, then cancel
	time.Sleep(150 * time.Millisecond)
	r.CancelDeletion()

	got := receiveWithin(t, ch, time.Second)
	assert.Equal(t, id, got)
}

func TestRoom_ScheduleDeletion_ReplacesArmedTimer(t *testing.T) {
	t.Parallel()

	ch := make(chan room.RoomID, 2)
	id := newTestRoomID()
	r := room.NewRoom(id, ch, 100*time.Millisecond)

	// Re-arming replaces the previous timer instead of stacking a second one
	r.ScheduleDeletion()

	got := receiveWithin(t, ch, time.Second)
	assert.Equal(t, id, got)
	assertNoMessage(t, ch, 300*time.Millisecond)
}

func TestRoom_ExpiryBlocksOnFullChannel(t *testing.T) {
	t.Parallel()

	filler := newTestRoomID()
	ch := make(chan room.RoomID, 1)
	ch <- filler // saturate the channel before the timer fires

	id := newTestRoomID()
	room.NewRoom(id, ch, 20*time.Millisecond)

	// The fired timer must block on the full channel, not drop the request
	time.Sleep(150 * time.Millisecond)
	require.Equal(t, filler, <-ch)

	got := receiveWithin(t, ch, time.Second)
	assert.Equal(t, id, got)
}

func TestRoom_Players(t *testing.T) {
	t.Parallel()

	r := room.NewRoom(newTestRoomID(), make(chan room.RoomID, 1), time.Hour)
	defer r.CancelDeletion()

	p1 := room.NewPlayerID()
	p2 := room.NewPlayerID()

	r.AddPlayer(p1)
	r.AddPlayer(p2)
	assert.Equal(t, 2, r.PlayerCount())
	assert.True(t, r.HasPlayer(p1))

	// Membership is unique
	r.AddPlayer(p1)
	assert.Equal(t, 2, r.PlayerCount())

	r.RemovePlayer(p1)
	assert.False(t, r.HasPlayer(p1))
	assert.Equal(t, 1, r.PlayerCount())

	// Removing an absent player is a no-op
	r.RemovePlayer(p1)
	assert.Equal(t, 1, r.PlayerCount())
}

func TestRoom_Snapshot(t *testing.T) {
	t.Parallel()

	id := newTestRoomID()
	r := room.NewRoom(id, make(chan room.RoomID, 1), time.Hour)
	defer r.CancelDeletion()
	r.AddPlayer(room.NewPlayerID())

	snap := r.Snapshot()
	assert.Equal(t, id.String(), snap.ID)
	assert.Equal(t, 1, snap.PlayerCount)
	assert.WithinDuration(t, time.Now(), snap.CreatedAt, time.Minute)
}
