package session

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/letsssgooo/quizHub/internal/client"
)

// SessionManager реализует Manager.
// Значение сессии одно на процесс, но защищено мьютексом: параллельные
// запросы читают токен в момент отправки.
type SessionManager struct { //nolint:revive
	api      client.Client
	store    Store
	notifier Notifier

	mu    sync.RWMutex
	token string
	user  *client.User
}

// New создаёт менеджер сессии поверх хранилища токена и уведомлений.
// API клиент подключается отдельно через AttachAPI, потому что клиенту
// для подписи запросов нужен сам менеджер.
func New(store Store, notifier Notifier) *SessionManager {
	return &SessionManager{
		store:    store,
		notifier: notifier,
	}
}

// AttachAPI подключает API клиент к менеджеру.
func (m *SessionManager) AttachAPI(api client.Client) {
	m.api = api
}

// Token возвращает текущий токен. Пустая строка — сессия неактивна.
func (m *SessionManager) Token() string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.token
}

// User возвращает текущего пользователя. nil, если сессия неактивна.
func (m *SessionManager) User() *client.User {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.user
}

// Active сообщает, активна ли сессия.
func (m *SessionManager) Active() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.user != nil
}

// Restore восстанавливает сессию из сохранённого токена, проверяя его
// запросом личности. Любая ошибка проверки стирает сохранённый токен и
// оставляет сессию неактивной: повторных попыток нет, просроченный и
// битый токены не различаются.
func (m *SessionManager) Restore(ctx context.Context) error {
	token, err := m.store.Load()
	if err != nil {
		return fmt.Errorf("failed to load persisted token: %w", err)
	}

	if token == "" {
		return nil
	}

	m.setToken(token)

	user, err := m.api.Me(ctx)
	if err != nil {
		slog.Debug("session restore rejected", "err", err)
		m.setToken("")
		_ = m.store.Clear()

		return nil
	}

	m.setUser(user)

	return nil
}

// Login входит по логину и паролю.
// В случае успеха токен сохраняется и сессия активируется.
// В случае ошибки пользователь видит общее сообщение, детали не разбираются.
func (m *SessionManager) Login(ctx context.Context, username, password string) error {
	resp, err := m.api.Login(ctx, username, password)
	if err != nil {
		slog.Error("login failed", "err", err)
		m.notifier.Failure("Login failed", msgLoginFailed)

		return fmt.Errorf("%w: %v", ErrLoginFailed, err)
	}

	if err = m.store.Save(resp.Token); err != nil {
		slog.Error("failed to persist token", "err", err)
	}

	m.setToken(resp.Token)
	m.setUser(&resp.User)

	m.notifier.Success("Login successful", fmt.Sprintf("Welcome back, %s!", resp.User.Username))

	return nil
}

// Register регистрирует нового пользователя.
// Контракт успеха и ошибки такой же, как у Login.
func (m *SessionManager) Register(ctx context.Context, req client.RegisterRequest) error {
	resp, err := m.api.Register(ctx, req)
	if err != nil {
		slog.Error("registration failed", "err", err)
		m.notifier.Failure("Registration failed", msgRegisterFailed)

		return fmt.Errorf("%w: %v", ErrRegisterFailed, err)
	}

	if err = m.store.Save(resp.Token); err != nil {
		slog.Error("failed to persist token", "err", err)
	}

	m.setToken(resp.Token)
	m.setUser(&resp.User)

	m.notifier.Success("Registration successful", msgRegisterOK)

	return nil
}

// Logout выходит из аккаунта: стирает сохранённый токен и деактивирует
// сессию. Идемпотентен, повторный вызов безопасен.
func (m *SessionManager) Logout() {
	_ = m.store.Clear()

	m.mu.Lock()
	m.token = ""
	m.user = nil
	m.mu.Unlock()

	m.notifier.Success("Logged out", msgLogoutOK)
}

// UpdateProfile обновляет профиль текущего пользователя.
// Пользователь целиком заменяется ответом сервера.
// Ошибка возвращается вызывающему после уведомления.
func (m *SessionManager) UpdateProfile(ctx context.Context, patch client.UserPatch) error {
	user := m.User()
	if user == nil {
		return ErrNotAuthenticated
	}

	updated, err := m.api.UpdateUser(ctx, user.ID, patch)
	if err != nil {
		slog.Error("profile update failed", "err", err)
		m.notifier.Failure("Update failed", msgProfileFailed)

		return err
	}

	m.setUser(updated)

	m.notifier.Success("Profile updated", msgProfileOK)

	return nil
}

// UploadProfilePicture загружает аватар текущего пользователя.
// Контракт такой же, как у UpdateProfile.
func (m *SessionManager) UploadProfilePicture(
	ctx context.Context,
	fileName string,
	mime string,
	data []byte,
) error {
	user := m.User()
	if user == nil {
		return ErrNotAuthenticated
	}

	updated, err := m.api.UploadProfilePicture(ctx, user.ID, fileName, mime, data)
	if err != nil {
		slog.Error("profile picture upload failed", "err", err)
		m.notifier.Failure("Upload failed", msgPictureFailed)

		return err
	}

	m.setUser(updated)

	m.notifier.Success("Profile picture updated", msgPictureOK)

	return nil
}

func (m *SessionManager) setToken(token string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.token = token
}

func (m *SessionManager) setUser(user *client.User) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.user = user
}
