// Package forms валидирует пользовательский ввод до отправки на сервер.
package forms

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// RegisterForm содержит данные формы регистрации.
type RegisterForm struct {
	Username  string `validate:"required"`
	Email     string `validate:"required,email"`
	Password  string `validate:"required,min=8"`
	FirstName string `validate:"required"`
	LastName  string `validate:"required"`
	Role      string `validate:"required,oneof=student teacher"`
}

// JoinRoomForm содержит данные формы входа в комнату.
type JoinRoomForm struct {
	RoomCode string `validate:"required"`
}

// CreateRoomForm содержит данные формы создания комнаты.
// Пустое имя комнаты отбрасывается здесь, запрос на сервер не уходит.
type CreateRoomForm struct {
	RoomName string `validate:"required"`
	Level    string `validate:"required,oneof=easy medium hard"`
	Subject  int    `validate:"required,gt=0"`
	IsActive bool
	IsPublic bool
}

// Validate проверяет форму регистрации.
func (f *RegisterForm) Validate() error {
	if err := validate.Struct(f); err != nil {
		return fmt.Errorf("invalid registration form: %w", err)
	}

	return nil
}

// Validate нормализует код комнаты и проверяет форму.
// Код приводится к верхнему регистру, как в поле ввода оригинальной формы.
func (f *JoinRoomForm) Validate() error {
	f.RoomCode = strings.ToUpper(strings.TrimSpace(f.RoomCode))

	if err := validate.Struct(f); err != nil {
		return fmt.Errorf("invalid room code: %w", err)
	}

	return nil
}

// Validate проверяет форму создания комнаты.
func (f *CreateRoomForm) Validate() error {
	if err := validate.Struct(f); err != nil {
		return fmt.Errorf("invalid room form: %w", err)
	}

	return nil
}
