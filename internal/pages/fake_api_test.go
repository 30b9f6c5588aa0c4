package pages

import (
	"context"
	"errors"
	"sync"

	"github.com/letsssgooo/quizHub/internal/client"
)

// fakeAPI реализует client.Client для тестов экранов.
// Поведение задаётся функциями, незаданные методы возвращают ошибку.
// calls считает обращения по именам методов.
type fakeAPI struct {
	mu    sync.Mutex
	calls map[string]int

	scores           func() ([]client.Score, error)
	domains          func() ([]client.Domain, error)
	domainByID       func(id int) (*client.Domain, error)
	subjectsByDomain func(domainID int) ([]client.Subject, error)
	subjectByID      func(id int) (*client.Subject, error)
	roomsBySubject   func(subjectID int) ([]client.Room, error)
	roomByID         func(id int) (*client.Room, error)
	roomQuestions    func(roomID int) ([]client.Question, error)
	publicRooms      func() ([]client.PublicRoom, error)
	joinRoom         func(roomCode string) (*client.JoinResult, error)
	createRoom       func(req client.CreateRoomRequest) (*client.Room, error)
}

var errNotConfigured = errors.New("fake method not configured")

func newFakeAPI() *fakeAPI {
	return &fakeAPI{calls: make(map[string]int)}
}

func (f *fakeAPI) record(method string) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.calls[method]++
}

func (f *fakeAPI) callCount(method string) int {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.calls[method]
}

func (f *fakeAPI) Login(ctx context.Context, username, password string) (*client.AuthResponse, error) {
	return nil, errNotConfigured
}

func (f *fakeAPI) Register(ctx context.Context, req client.RegisterRequest) (*client.AuthResponse, error) {
	return nil, errNotConfigured
}

func (f *fakeAPI) Me(ctx context.Context) (*client.User, error) {
	return nil, errNotConfigured
}

func (f *fakeAPI) UpdateUser(ctx context.Context, userID int, patch client.UserPatch) (*client.User, error) {
	return nil, errNotConfigured
}

func (f *fakeAPI) UploadProfilePicture(ctx context.Context, userID int, fileName, mime string, data []byte) (*client.User, error) {
	return nil, errNotConfigured
}

func (f *fakeAPI) Scores(ctx context.Context) ([]client.Score, error) {
	f.record("Scores")
	if f.scores == nil {
		return nil, errNotConfigured
	}
	return f.scores()
}

func (f *fakeAPI) Domains(ctx context.Context) ([]client.Domain, error) {
	f.record("Domains")
	if f.domains == nil {
		return nil, errNotConfigured
	}
	return f.domains()
}

func (f *fakeAPI) DomainByID(ctx context.Context, id int) (*client.Domain, error) {
	f.record("DomainByID")
	if f.domainByID == nil {
		return nil, errNotConfigured
	}
	return f.domainByID(id)
}

func (f *fakeAPI) SubjectsByDomain(ctx context.Context, domainID int) ([]client.Subject, error) {
	f.record("SubjectsByDomain")
	if f.subjectsByDomain == nil {
		return nil, errNotConfigured
	}
	return f.subjectsByDomain(domainID)
}

func (f *fakeAPI) SubjectByID(ctx context.Context, id int) (*client.Subject, error) {
	f.record("SubjectByID")
	if f.subjectByID == nil {
		return nil, errNotConfigured
	}
	return f.subjectByID(id)
}

func (f *fakeAPI) RoomsBySubject(ctx context.Context, subjectID int) ([]client.Room, error) {
	f.record("RoomsBySubject")
	if f.roomsBySubject == nil {
		return nil, errNotConfigured
	}
	return f.roomsBySubject(subjectID)
}

func (f *fakeAPI) RoomByID(ctx context.Context, id int) (*client.Room, error) {
	f.record("RoomByID")
	if f.roomByID == nil {
		return nil, errNotConfigured
	}
	return f.roomByID(id)
}

func (f *fakeAPI) RoomQuestions(ctx context.Context, roomID int) ([]client.Question, error) {
	f.record("RoomQuestions")
	if f.roomQuestions == nil {
		return nil, errNotConfigured
	}
	return f.roomQuestions(roomID)
}

func (f *fakeAPI) PublicRooms(ctx context.Context) ([]client.PublicRoom, error) {
	f.record("PublicRooms")
	if f.publicRooms == nil {
		return nil, errNotConfigured
	}
	return f.publicRooms()
}

func (f *fakeAPI) JoinRoom(ctx context.Context, roomCode string) (*client.JoinResult, error) {
	f.record("JoinRoom")
	if f.joinRoom == nil {
		return nil, errNotConfigured
	}
	return f.joinRoom(roomCode)
}

func (f *fakeAPI) CreateRoom(ctx context.Context, req client.CreateRoomRequest) (*client.Room, error) {
	f.record("CreateRoom")
	if f.createRoom == nil {
		return nil, errNotConfigured
	}
	return f.createRoom(req)
}
