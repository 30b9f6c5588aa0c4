package session

import (
	"context"
	"errors"

	"github.com/letsssgooo/quizHub/internal/client"
)

// Manager определяет интерфейс менеджера сессии.
// Менеджер владеет текущей парой {токен, пользователь}, хранит токен между
// запусками и подписывает им исходящие запросы через client.TokenSource.
type Manager interface {
	client.TokenSource

	// Restore восстанавливает сессию из сохранённого токена.
	// Любая ошибка проверки стирает сохранённый токен, сессия остаётся неактивной.
	Restore(ctx context.Context) error

	// Login входит по логину и паролю и сохраняет токен.
	Login(ctx context.Context, username, password string) error

	// Register регистрирует нового пользователя и сохраняет токен.
	Register(ctx context.Context, req client.RegisterRequest) error

	// Logout выходит из аккаунта. Синхронный, не может завершиться ошибкой.
	Logout()

	// UpdateProfile обновляет профиль и заменяет пользователя ответом сервера.
	UpdateProfile(ctx context.Context, patch client.UserPatch) error

	// UploadProfilePicture загружает аватар и заменяет пользователя ответом сервера.
	UploadProfilePicture(ctx context.Context, fileName, mime string, data []byte) error

	// User возвращает текущего пользователя. nil, если сессия неактивна.
	User() *client.User

	// Active сообщает, активна ли сессия.
	Active() bool
}

// Store определяет интерфейс хранилища токена.
type Store interface {
	// Load читает сохранённый токен. Пустая строка — токена нет.
	Load() (string, error)

	// Save сохраняет токен.
	Save(token string) error

	// Clear стирает сохранённый токен. Повторный вызов не ошибка.
	Clear() error
}

// Notifier показывает пользователю уведомления об исходе операций.
type Notifier interface {
	// Success показывает уведомление об успехе.
	Success(title, text string)

	// Failure показывает уведомление об ошибке.
	Failure(title, text string)
}

// Ошибки сессии
var (
	ErrNotAuthenticated = errors.New("not authenticated")
	ErrLoginFailed      = errors.New("login failed")
	ErrRegisterFailed   = errors.New("registration failed")
)

// Тексты уведомлений
const (
	msgLoginFailed      = "Invalid username or password. Please try again."
	msgRegisterOK       = "Your account has been created successfully!"
	msgRegisterFailed   = "There was an error creating your account. Please try again."
	msgLogoutOK         = "You have been logged out successfully."
	msgProfileOK        = "Your profile has been updated successfully."
	msgProfileFailed    = "There was an error updating your profile. Please try again."
	msgPictureOK        = "Your profile picture has been updated successfully."
	msgPictureFailed    = "There was an error uploading your profile picture. Please try again."
)
