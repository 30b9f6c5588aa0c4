package pages

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/letsssgooo/quizHub/internal/client"
)

func TestCatalogDomains_SubjectCounts(t *testing.T) {
	api := newFakeAPI()
	api.domains = func() ([]client.Domain, error) {
		return []client.Domain{
			{ID: 1, DomainName: "Science"},
			{ID: 2, DomainName: "History"},
		}, nil
	}
	api.subjectsByDomain = func(domainID int) ([]client.Subject, error) {
		if domainID == 1 {
			return []client.Subject{{ID: 1}, {ID: 2}, {ID: 3}}, nil
		}
		return nil, errors.New("subjects endpoint down")
	}

	entries := NewCatalog(api).Domains(context.Background())

	require.Len(t, entries, 2)

	assert.Equal(t, "Science", entries[0].DomainName)
	assert.Equal(t, 3, entries[0].SubjectCount)
	assert.Equal(t, 0, entries[1].SubjectCount, "failed count defaults to zero")
}

func TestCatalogDomains_PrimaryFailure(t *testing.T) {
	api := newFakeAPI()
	api.domains = func() ([]client.Domain, error) {
		return nil, errors.New("domains endpoint down")
	}

	entries := NewCatalog(api).Domains(context.Background())

	assert.Empty(t, entries)
	assert.Zero(t, api.callCount("SubjectsByDomain"))
}

func TestCatalogSubjects_QuizCounts(t *testing.T) {
	api := newFakeAPI()
	api.domainByID = func(id int) (*client.Domain, error) {
		return &client.Domain{ID: id, DomainName: "Science"}, nil
	}
	api.subjectsByDomain = func(domainID int) ([]client.Subject, error) {
		return []client.Subject{
			{ID: 10, SubjectName: "Physics"},
			{ID: 20, SubjectName: "Biology"},
		}, nil
	}
	api.roomsBySubject = func(subjectID int) ([]client.Room, error) {
		if subjectID == 10 {
			return []client.Room{{ID: 1}, {ID: 2}}, nil
		}
		return nil, errors.New("rooms endpoint down")
	}

	domain, entries, err := NewCatalog(api).Subjects(context.Background(), 1)
	require.NoError(t, err)

	require.NotNil(t, domain)
	assert.Equal(t, "Science", domain.DomainName)

	require.Len(t, entries, 2)
	assert.Equal(t, 2, entries[0].QuizCount)
	assert.Equal(t, 0, entries[1].QuizCount)
}

func TestCatalogSubjects_DomainNotFound(t *testing.T) {
	api := newFakeAPI()
	api.domainByID = func(id int) (*client.Domain, error) {
		return nil, errors.New("404")
	}

	domain, entries, err := NewCatalog(api).Subjects(context.Background(), 99)

	assert.ErrorIs(t, err, ErrDomainNotFound)
	assert.Nil(t, domain)
	assert.Empty(t, entries)
}

func TestCatalogRooms_QuestionCounts(t *testing.T) {
	api := newFakeAPI()
	api.subjectByID = func(id int) (*client.Subject, error) {
		return &client.Subject{ID: id, SubjectName: "Physics"}, nil
	}
	api.roomsBySubject = func(subjectID int) ([]client.Room, error) {
		return []client.Room{
			{ID: 1, RoomName: "Midterm"},
			{ID: 2, RoomName: "Final"},
		}, nil
	}
	api.roomQuestions = func(roomID int) ([]client.Question, error) {
		if roomID == 1 {
			return []client.Question{{ID: 1}, {ID: 2}, {ID: 3}, {ID: 4}}, nil
		}
		return nil, errors.New("questions endpoint down")
	}

	subject, entries, err := NewCatalog(api).Rooms(context.Background(), 10)
	require.NoError(t, err)

	require.NotNil(t, subject)
	require.Len(t, entries, 2)

	assert.Equal(t, 4, entries[0].QuestionCount)
	assert.Equal(t, 0, entries[1].QuestionCount)
}

func TestFilterDomains(t *testing.T) {
	entries := []DomainEntry{
		{Domain: client.Domain{DomainName: "Computer Science", DomainDescription: "algorithms and more"}},
		{Domain: client.Domain{DomainName: "History", DomainDescription: "ancient worlds"}},
	}

	assert.Len(t, FilterDomains(entries, ""), 2)
	assert.Len(t, FilterDomains(entries, "SCIENCE"), 1)
	assert.Len(t, FilterDomains(entries, "ancient"), 1)
	assert.Empty(t, FilterDomains(entries, "chemistry"))
}

func TestFilterSubjects(t *testing.T) {
	entries := []SubjectEntry{
		{Subject: client.Subject{SubjectName: "Algebra", Description: "equations"}},
		{Subject: client.Subject{SubjectName: "Geometry", Description: "shapes"}},
	}

	assert.Len(t, FilterSubjects(entries, "alg"), 1)
	assert.Len(t, FilterSubjects(entries, "shapes"), 1)
	assert.Len(t, FilterSubjects(entries, ""), 2)
}
