package pages

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/letsssgooo/quizHub/internal/client"
	"github.com/letsssgooo/quizHub/internal/forms"
)

// Rooms реализует экраны входа в комнату и создания комнаты.
type Rooms struct {
	api client.Client
}

// NewRooms создаёт экраны комнат.
func NewRooms(api client.Client) *Rooms {
	return &Rooms{api: api}
}

// Public загружает список публичных комнат.
// Ошибка логируется, экран остаётся с пустым списком.
func (r *Rooms) Public(ctx context.Context) []client.PublicRoom {
	rooms, err := r.api.PublicRooms(ctx)
	if err != nil {
		slog.Error("failed to fetch public rooms", "err", err)
		return nil
	}

	return rooms
}

// Join проверяет код и присоединяет пользователя к комнате.
// Возвращает ID комнаты в случае успеха. Любая ошибка сервера сводится к
// одному сообщению про неверный код или заполненную комнату.
func (r *Rooms) Join(ctx context.Context, roomCode string) (int, error) {
	form := forms.JoinRoomForm{RoomCode: roomCode}
	if err := form.Validate(); err != nil {
		return 0, err
	}

	result, err := r.api.JoinRoom(ctx, form.RoomCode)
	if err != nil {
		slog.Error("failed to join room", "err", err)
		return 0, ErrJoinRejected
	}

	if !result.Success {
		return 0, ErrJoinRejected
	}

	return result.RoomID, nil
}

// Create проверяет форму и создаёт комнату.
// Форма с пустым именем отбрасывается до запроса на сервер.
func (r *Rooms) Create(ctx context.Context, form forms.CreateRoomForm) (*client.Room, error) {
	if err := form.Validate(); err != nil {
		return nil, err
	}

	room, err := r.api.CreateRoom(ctx, client.CreateRoomRequest{
		RoomName: form.RoomName,
		Level:    form.Level,
		IsActive: form.IsActive,
		IsPublic: form.IsPublic,
		Subject:  form.Subject,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create room: %w", err)
	}

	return room, nil
}
