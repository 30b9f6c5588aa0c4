package pages

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/letsssgooo/quizHub/internal/client"
	"github.com/letsssgooo/quizHub/internal/forms"
)

func TestJoin_Success(t *testing.T) {
	api := newFakeAPI()
	api.joinRoom = func(roomCode string) (*client.JoinResult, error) {
		assert.Equal(t, "ABC123", roomCode, "code is uppercased before sending")
		return &client.JoinResult{Success: true, RoomID: 7}, nil
	}

	roomID, err := NewRooms(api).Join(context.Background(), "abc123")
	require.NoError(t, err)

	assert.Equal(t, 7, roomID)
}

func TestJoin_EmptyCodeRejectedBeforeRequest(t *testing.T) {
	api := newFakeAPI()

	_, err := NewRooms(api).Join(context.Background(), "   ")
	require.Error(t, err)

	assert.Zero(t, api.callCount("JoinRoom"), "invalid code must not reach the wire")
}

func TestJoin_ServerRejection(t *testing.T) {
	api := newFakeAPI()
	api.joinRoom = func(roomCode string) (*client.JoinResult, error) {
		return nil, errors.New("400")
	}

	_, err := NewRooms(api).Join(context.Background(), "NOPE")

	assert.ErrorIs(t, err, ErrJoinRejected)
}

func TestJoin_UnsuccessfulResult(t *testing.T) {
	api := newFakeAPI()
	api.joinRoom = func(roomCode string) (*client.JoinResult, error) {
		return &client.JoinResult{Success: false}, nil
	}

	_, err := NewRooms(api).Join(context.Background(), "FULL01")

	assert.ErrorIs(t, err, ErrJoinRejected)
}

func TestCreate_Success(t *testing.T) {
	api := newFakeAPI()
	api.createRoom = func(req client.CreateRoomRequest) (*client.Room, error) {
		assert.Equal(t, "Weekly quiz", req.RoomName)
		assert.Equal(t, "hard", req.Level)
		assert.Equal(t, 3, req.Subject)

		return &client.Room{ID: 5, RoomName: req.RoomName, RoomCode: "QQQ111"}, nil
	}

	room, err := NewRooms(api).Create(context.Background(), forms.CreateRoomForm{
		RoomName: "Weekly quiz",
		Level:    "hard",
		Subject:  3,
		IsActive: true,
	})
	require.NoError(t, err)

	assert.Equal(t, 5, room.ID)
}

func TestCreate_EmptyNameRejectedBeforeRequest(t *testing.T) {
	api := newFakeAPI()

	_, err := NewRooms(api).Create(context.Background(), forms.CreateRoomForm{
		RoomName: "",
		Level:    "easy",
		Subject:  3,
	})
	require.Error(t, err)

	assert.Zero(t, api.callCount("CreateRoom"), "empty room name must not reach the wire")
}

func TestCreate_InvalidLevel(t *testing.T) {
	api := newFakeAPI()

	_, err := NewRooms(api).Create(context.Background(), forms.CreateRoomForm{
		RoomName: "Quiz",
		Level:    "impossible",
		Subject:  3,
	})
	require.Error(t, err)

	assert.Zero(t, api.callCount("CreateRoom"))
}

func TestPublic_Failure(t *testing.T) {
	api := newFakeAPI()
	api.publicRooms = func() ([]client.PublicRoom, error) {
		return nil, errors.New("endpoint down")
	}

	rooms := NewRooms(api).Public(context.Background())

	assert.Empty(t, rooms)
}

func TestPublic_Success(t *testing.T) {
	api := newFakeAPI()
	api.publicRooms = func() ([]client.PublicRoom, error) {
		return []client.PublicRoom{
			{ID: "r1", Name: "Open math", Participants: 4, Subject: "Math"},
		}, nil
	}

	rooms := NewRooms(api).Public(context.Background())

	require.Len(t, rooms, 1)
	assert.Equal(t, "Open math", rooms[0].Name)
}
