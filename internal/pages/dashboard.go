package pages

import (
	"context"
	"log/slog"
	"math"
	"sort"
	"time"

	"github.com/letsssgooo/quizHub/internal/aggregate"
	"github.com/letsssgooo/quizHub/internal/client"
)

// Dashboard реализует экран дашборда с результатами квизов.
type Dashboard struct {
	api client.Client
}

// NewDashboard создаёт экран дашборда.
func NewDashboard(api client.Client) *Dashboard {
	return &Dashboard{api: api}
}

// Load загружает результаты и дописывает каждому имя комнаты и предмета.
// Ошибка основного запроса логируется, экран остаётся с пустым списком.
// Ошибка вторичных запросов оставляет запись без имён, остальные записи
// не затрагиваются.
func (d *Dashboard) Load(ctx context.Context) []ScoreEntry {
	scores, err := d.api.Scores(ctx)
	if err != nil {
		slog.Error("failed to fetch scores", "err", err)
		return nil
	}

	entries := make([]ScoreEntry, len(scores))
	for i, score := range scores {
		entries[i] = ScoreEntry{Score: score}
	}

	return aggregate.Enrich(ctx, entries, func(ctx context.Context, entry *ScoreEntry) error {
		room, err := d.api.RoomByID(ctx, entry.Room)
		if err != nil {
			return err
		}

		subject, err := d.api.SubjectByID(ctx, room.Subject)
		if err != nil {
			return err
		}

		entry.RoomName = room.RoomName
		entry.SubjectName = subject.SubjectName

		return nil
	})
}

// Recent возвращает копию записей, отсортированную по дате прохождения,
// свежие первыми. Исходный порядок entries не меняется.
func Recent(entries []ScoreEntry) []ScoreEntry {
	sorted := make([]ScoreEntry, len(entries))
	copy(sorted, entries)

	sort.SliceStable(sorted, func(i, j int) bool {
		return completedAt(sorted[i]).After(completedAt(sorted[j]))
	})

	return top(sorted, dashboardTabSize)
}

// Best возвращает копию записей, отсортированную по проценту, лучшие первыми.
// Исходный порядок entries не меняется.
func Best(entries []ScoreEntry) []ScoreEntry {
	sorted := make([]ScoreEntry, len(entries))
	copy(sorted, entries)

	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Percentage > sorted[j].Percentage
	})

	return top(sorted, dashboardTabSize)
}

// DashboardStats содержит сводку по результатам.
type DashboardStats struct {
	TotalQuizzes      int
	AveragePercentage int
	LastActivity      string
}

// Stats считает сводку дашборда: число квизов, средний процент
// (округлённый) и дату последней активности.
func Stats(entries []ScoreEntry) DashboardStats {
	stats := DashboardStats{TotalQuizzes: len(entries)}

	if len(entries) == 0 {
		return stats
	}

	sum := 0.0
	for _, entry := range entries {
		sum += entry.Percentage
	}

	stats.AveragePercentage = int(math.Round(sum / float64(len(entries))))
	stats.LastActivity = entries[0].CompletedAt

	return stats
}

// completedAt разбирает дату прохождения.
// Неразборчивая дата сортируется как нулевое время.
func completedAt(entry ScoreEntry) time.Time {
	t, err := time.Parse(time.RFC3339, entry.CompletedAt)
	if err != nil {
		return time.Time{}
	}

	return t
}

func top(entries []ScoreEntry, n int) []ScoreEntry {
	if len(entries) > n {
		return entries[:n]
	}

	return entries
}
