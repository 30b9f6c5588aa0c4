package session

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// FileStore реализует Store в одном файле на диске.
// Это единственное, что клиент хранит между запусками.
type FileStore struct {
	path string
}

// NewFileStore создаёт хранилище токена по пути path.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Load читает сохранённый токен.
// Отсутствие файла не ошибка: возвращается пустая строка.
func (s *FileStore) Load() (string, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to read token file %s: %w", s.path, err)
	}

	return strings.TrimSpace(string(data)), nil
}

// Save сохраняет токен, создавая директорию при необходимости.
func (s *FileStore) Save(token string) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("failed to create token dir: %w", err)
	}

	if err := os.WriteFile(s.path, []byte(token), 0o600); err != nil {
		return fmt.Errorf("failed to write token file %s: %w", s.path, err)
	}

	return nil
}

// Clear стирает сохранённый токен. Повторный вызов не ошибка.
func (s *FileStore) Clear() error {
	err := os.Remove(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}

	return err
}
