package pages

import (
	"errors"

	"github.com/letsssgooo/quizHub/internal/client"
)

// ScoreEntry представляет результат квиза, обогащённый именами для показа.
// Пустые имена означают, что вторичные запросы не удались: экран подставляет
// запасные подписи.
type ScoreEntry struct {
	client.Score
	RoomName    string
	SubjectName string
}

// DomainEntry представляет область знаний с посчитанным числом предметов.
// Число считается по длине вторичного запроса и не кэшируется.
type DomainEntry struct {
	client.Domain
	SubjectCount int
}

// SubjectEntry представляет предмет с посчитанным числом квизов.
type SubjectEntry struct {
	client.Subject
	QuizCount int
}

// RoomEntry представляет комнату с посчитанным числом вопросов.
type RoomEntry struct {
	client.Room
	QuestionCount int
}

// Ошибки экранов
var (
	ErrJoinRejected   = errors.New("invalid room code or room is full")
	ErrDomainNotFound = errors.New("domain not found")
	ErrSubjectNotFound = errors.New("subject not found")
)

// Количество записей на вкладках дашборда.
const dashboardTabSize = 5
