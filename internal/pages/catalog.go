package pages

import (
	"context"
	"log/slog"
	"strings"

	"github.com/letsssgooo/quizHub/internal/aggregate"
	"github.com/letsssgooo/quizHub/internal/client"
)

// Catalog реализует экраны каталога: области знаний, предметы и комнаты.
type Catalog struct {
	api client.Client
}

// NewCatalog создаёт экраны каталога.
func NewCatalog(api client.Client) *Catalog {
	return &Catalog{api: api}
}

// Domains загружает области знаний и дописывает каждой число предметов.
// Число — это длина списка предметов области; ошибка вторичного запроса
// оставляет нулевое число только у своей области.
func (c *Catalog) Domains(ctx context.Context) []DomainEntry {
	domains, err := c.api.Domains(ctx)
	if err != nil {
		slog.Error("failed to fetch domains", "err", err)
		return nil
	}

	entries := make([]DomainEntry, len(domains))
	for i, domain := range domains {
		entries[i] = DomainEntry{Domain: domain}
	}

	return aggregate.Enrich(ctx, entries, func(ctx context.Context, entry *DomainEntry) error {
		subjects, err := c.api.SubjectsByDomain(ctx, entry.ID)
		if err != nil {
			return err
		}

		entry.SubjectCount = len(subjects)

		return nil
	})
}

// Subjects загружает область знаний и её предметы с числом квизов у каждого.
// Ошибка запроса самой области фатальна для экрана: без неё показывать нечего.
func (c *Catalog) Subjects(ctx context.Context, domainID int) (*client.Domain, []SubjectEntry, error) {
	domain, err := c.api.DomainByID(ctx, domainID)
	if err != nil {
		slog.Error("failed to fetch domain", "id", domainID, "err", err)
		return nil, nil, ErrDomainNotFound
	}

	subjects, err := c.api.SubjectsByDomain(ctx, domainID)
	if err != nil {
		slog.Error("failed to fetch subjects", "domain", domainID, "err", err)
		return domain, nil, nil
	}

	entries := make([]SubjectEntry, len(subjects))
	for i, subject := range subjects {
		entries[i] = SubjectEntry{Subject: subject}
	}

	enriched := aggregate.Enrich(ctx, entries, func(ctx context.Context, entry *SubjectEntry) error {
		rooms, err := c.api.RoomsBySubject(ctx, entry.ID)
		if err != nil {
			return err
		}

		entry.QuizCount = len(rooms)

		return nil
	})

	return domain, enriched, nil
}

// Rooms загружает предмет и его комнаты с числом вопросов у каждой.
func (c *Catalog) Rooms(ctx context.Context, subjectID int) (*client.Subject, []RoomEntry, error) {
	subject, err := c.api.SubjectByID(ctx, subjectID)
	if err != nil {
		slog.Error("failed to fetch subject", "id", subjectID, "err", err)
		return nil, nil, ErrSubjectNotFound
	}

	rooms, err := c.api.RoomsBySubject(ctx, subjectID)
	if err != nil {
		slog.Error("failed to fetch rooms", "subject", subjectID, "err", err)
		return subject, nil, nil
	}

	entries := make([]RoomEntry, len(rooms))
	for i, room := range rooms {
		entries[i] = RoomEntry{Room: room}
	}

	enriched := aggregate.Enrich(ctx, entries, func(ctx context.Context, entry *RoomEntry) error {
		questions, err := c.api.RoomQuestions(ctx, entry.ID)
		if err != nil {
			return err
		}

		entry.QuestionCount = len(questions)

		return nil
	})

	return subject, enriched, nil
}

// FilterDomains отбирает области по подстроке в имени или описании.
// Сравнение без учёта регистра, пустой запрос возвращает всё.
func FilterDomains(entries []DomainEntry, query string) []DomainEntry {
	if query == "" {
		return entries
	}

	query = strings.ToLower(query)

	filtered := make([]DomainEntry, 0, len(entries))
	for _, entry := range entries {
		if strings.Contains(strings.ToLower(entry.DomainName), query) ||
			strings.Contains(strings.ToLower(entry.DomainDescription), query) {
			filtered = append(filtered, entry)
		}
	}

	return filtered
}

// FilterSubjects отбирает предметы по подстроке в имени или описании.
func FilterSubjects(entries []SubjectEntry, query string) []SubjectEntry {
	if query == "" {
		return entries
	}

	query = strings.ToLower(query)

	filtered := make([]SubjectEntry, 0, len(entries))
	for _, entry := range entries {
		if strings.Contains(strings.ToLower(entry.SubjectName), query) ||
			strings.Contains(strings.ToLower(entry.Description), query) {
			filtered = append(filtered, entry)
		}
	}

	return filtered
}
