package client

import (
	"context"
	"errors"
	"time"
)

// User представляет пользователя платформы.
type User struct {
	ID                 int    `json:"id"`
	Username           string `json:"username"`
	Email              string `json:"email"`
	Role               string `json:"role"`
	FirstName          string `json:"first_name,omitempty"`
	LastName           string `json:"last_name,omitempty"`
	ProfilePicture     string `json:"profile_picture,omitempty"`
	ProfilePictureMime string `json:"profile_picture_mime,omitempty"`
	LastLogin          string `json:"last_login,omitempty"`
}

// Domain представляет область знаний.
type Domain struct {
	ID                int    `json:"id"`
	DomainName        string `json:"domain_name"`
	DomainDescription string `json:"domain_description"`
	CreatedBy         int    `json:"created_by"`
	CreatedAt         string `json:"created_at"`
}

// Subject представляет предмет внутри области знаний.
type Subject struct {
	ID          int    `json:"id"`
	SubjectName string `json:"subject_name"`
	Domain      int    `json:"domain"`
	Description string `json:"description"`
	CreatedBy   int    `json:"created_by"`
	CreatedAt   string `json:"created_at"`
}

// Room представляет комнату квиза по предмету.
type Room struct {
	ID        int    `json:"id"`
	RoomName  string `json:"room_name"`
	RoomCode  string `json:"room_code,omitempty"`
	Subject   int    `json:"subject"`
	Level     string `json:"level"`
	IsActive  bool   `json:"is_active"`
	IsPublic  bool   `json:"is_public"`
	CreatedBy int    `json:"created_by,omitempty"`
	CreatedAt string `json:"created_at,omitempty"`
}

// PublicRoom представляет облегчённую проекцию комнаты для списка публичных комнат.
type PublicRoom struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Participants int    `json:"participants"`
	Subject      string `json:"subject"`
}

// Question представляет вопрос комнаты.
type Question struct {
	ID           int    `json:"id"`
	QuestionText string `json:"question_text"`
	QuestionType string `json:"question_type"`
	Difficulty   string `json:"difficulty"`
}

// Score представляет результат пройденного квиза.
type Score struct {
	ID                  int     `json:"id"`
	Room                int     `json:"room"`
	Participant         int     `json:"participant"`
	TotalPossiblePoints int     `json:"total_possible_points"`
	EarnedPoints        int     `json:"earned_points"`
	Percentage          float64 `json:"percentage"`
	CompletedAt         string  `json:"completed_at"`
}

// AuthResponse представляет ответ сервера на логин или регистрацию.
type AuthResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// RegisterRequest содержит данные для регистрации нового пользователя.
type RegisterRequest struct {
	Username  string `json:"username"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Role      string `json:"role"`
}

// UserPatch содержит изменяемые поля профиля.
// Пустые поля не отправляются.
type UserPatch struct {
	Username string `json:"username,omitempty"`
	Email    string `json:"email,omitempty"`
}

// CreateRoomRequest содержит данные для создания комнаты.
type CreateRoomRequest struct {
	RoomName string `json:"room_name"`
	Level    string `json:"level"`
	IsActive bool   `json:"is_active"`
	IsPublic bool   `json:"is_public"`
	Subject  int    `json:"subject"`
}

// JoinResult представляет ответ сервера на вход в комнату по коду.
type JoinResult struct {
	Success bool `json:"success"`
	RoomID  int  `json:"room_id"`
}

// TokenSource отдаёт текущий токен для подписи исходящих запросов.
// Пустая строка означает, что запрос уходит без авторизации.
// Токен читается в момент отправки: запрос, начатый до выхода из
// аккаунта, уходит со старым токеном.
type TokenSource interface {
	Token() string
}

// Client определяет интерфейс клиента REST API платформы.
type Client interface {
	// Login отправляет учётные данные и возвращает токен с пользователем.
	Login(ctx context.Context, username, password string) (*AuthResponse, error)

	// Register регистрирует нового пользователя.
	Register(ctx context.Context, req RegisterRequest) (*AuthResponse, error)

	// Me возвращает пользователя по текущему токену.
	Me(ctx context.Context) (*User, error)

	// UpdateUser частично обновляет профиль и возвращает полную запись с сервера.
	UpdateUser(ctx context.Context, userID int, patch UserPatch) (*User, error)

	// UploadProfilePicture загружает аватар и возвращает обновлённого пользователя.
	UploadProfilePicture(ctx context.Context, userID int, fileName, mime string, data []byte) (*User, error)

	// Scores возвращает результаты квизов текущего пользователя.
	Scores(ctx context.Context) ([]Score, error)

	// Domains возвращает список областей знаний.
	Domains(ctx context.Context) ([]Domain, error)

	// DomainByID возвращает область знаний по ID.
	DomainByID(ctx context.Context, id int) (*Domain, error)

	// SubjectsByDomain возвращает предметы области знаний.
	SubjectsByDomain(ctx context.Context, domainID int) ([]Subject, error)

	// SubjectByID возвращает предмет по ID.
	SubjectByID(ctx context.Context, id int) (*Subject, error)

	// RoomsBySubject возвращает комнаты предмета.
	RoomsBySubject(ctx context.Context, subjectID int) ([]Room, error)

	// RoomByID возвращает комнату по ID.
	RoomByID(ctx context.Context, id int) (*Room, error)

	// RoomQuestions возвращает вопросы комнаты.
	RoomQuestions(ctx context.Context, roomID int) ([]Question, error)

	// PublicRooms возвращает список публичных комнат.
	PublicRooms(ctx context.Context) ([]PublicRoom, error)

	// JoinRoom присоединяет пользователя к комнате по коду.
	JoinRoom(ctx context.Context, roomCode string) (*JoinResult, error)

	// CreateRoom создаёт новую комнату.
	CreateRoom(ctx context.Context, req CreateRoomRequest) (*Room, error)
}

// Ошибки клиента
var ErrUnexpectedStatus = errors.New("unexpected response status")

// Таймауты
const (
	timeoutRequest = 10 * time.Second
	timeoutUpload  = 30 * time.Second
)
