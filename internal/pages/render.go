package pages

import (
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"
	"github.com/letsssgooo/quizHub/internal/client"
)

// RenderDashboard печатает дашборд: шапку пользователя, сводку и обе вкладки.
func RenderDashboard(w io.Writer, user *client.User, entries []ScoreEntry) {
	fmt.Fprintf(w, "%s %s\n", color.HiWhiteString(user.Username), color.CyanString("[%s]", user.Role))
	fmt.Fprintf(w, "Last login: %s\n\n", formatDate(user.LastLogin))

	stats := Stats(entries)
	fmt.Fprintf(w, "Total Quizzes:  %d\n", stats.TotalQuizzes)

	if stats.TotalQuizzes > 0 {
		fmt.Fprintf(w, "Average Score:  %d%%\n", stats.AveragePercentage)
		fmt.Fprintf(w, "Last Activity:  %s\n", formatDate(stats.LastActivity))
	} else {
		fmt.Fprintf(w, "Average Score:  N/A\n")
		fmt.Fprintf(w, "Last Activity:  no activity\n")
	}

	fmt.Fprintf(w, "\n%s\n", color.HiBlueString("Recent Quizzes"))
	renderScores(w, Recent(entries))

	fmt.Fprintf(w, "\n%s\n", color.HiBlueString("Best Scores"))
	renderScores(w, Best(entries))
}

func renderScores(w io.Writer, entries []ScoreEntry) {
	if len(entries) == 0 {
		fmt.Fprintln(w, "  You haven't completed any quizzes yet.")
		return
	}

	for _, entry := range entries {
		roomName := entry.RoomName
		if roomName == "" {
			roomName = fmt.Sprintf("Quiz #%d", entry.Room)
		}

		subjectName := entry.SubjectName
		if subjectName == "" {
			subjectName = "Unknown Subject"
		}

		percentage := color.GreenString("%.0f%%", entry.Percentage)
		if entry.Percentage < 70 {
			percentage = color.YellowString("%.0f%%", entry.Percentage)
		}

		fmt.Fprintf(w, "  %s  %s  %s  %s\n",
			roomName,
			percentage,
			subjectName,
			formatDate(entry.CompletedAt),
		)
	}
}

// RenderDomains печатает список областей знаний.
func RenderDomains(w io.Writer, entries []DomainEntry) {
	if len(entries) == 0 {
		fmt.Fprintln(w, "No domains found.")
		return
	}

	for _, entry := range entries {
		description := entry.DomainDescription
		if description == "" {
			description = "No description available."
		}

		fmt.Fprintf(w, "%s %s %s\n    %s\n",
			color.HiWhiteString("#%d", entry.ID),
			entry.DomainName,
			color.CyanString("(%d subjects)", entry.SubjectCount),
			description,
		)
	}
}

// RenderSubjects печатает предметы области знаний.
func RenderSubjects(w io.Writer, domain *client.Domain, entries []SubjectEntry) {
	fmt.Fprintf(w, "%s\n%s\n\n", color.HiWhiteString(domain.DomainName), domain.DomainDescription)

	if len(entries) == 0 {
		fmt.Fprintln(w, "No subjects found in this domain.")
		return
	}

	for _, entry := range entries {
		fmt.Fprintf(w, "%s %s %s\n",
			color.HiWhiteString("#%d", entry.ID),
			entry.SubjectName,
			color.CyanString("(%d quizzes)", entry.QuizCount),
		)
	}
}

// RenderRooms печатает комнаты предмета.
func RenderRooms(w io.Writer, subject *client.Subject, entries []RoomEntry) {
	fmt.Fprintf(w, "%s\n%s\n\n", color.HiWhiteString(subject.SubjectName), subject.Description)

	if len(entries) == 0 {
		fmt.Fprintln(w, "No quiz rooms found for this subject.")
		return
	}

	for _, entry := range entries {
		status := color.GreenString("active")
		if !entry.IsActive {
			status = color.RedString("closed")
		}

		fmt.Fprintf(w, "%s %s  level: %s  questions: %d  %s\n",
			color.HiWhiteString("#%d", entry.ID),
			entry.RoomName,
			entry.Level,
			entry.QuestionCount,
			status,
		)
	}
}

// RenderPublicRooms печатает список публичных комнат.
func RenderPublicRooms(w io.Writer, rooms []client.PublicRoom) {
	if len(rooms) == 0 {
		fmt.Fprintln(w, "No public rooms available right now.")
		return
	}

	for _, room := range rooms {
		fmt.Fprintf(w, "%s %s  subject: %s  participants: %d\n",
			color.HiWhiteString(room.ID),
			room.Name,
			room.Subject,
			room.Participants,
		)
	}
}

// RenderProfile печатает профиль текущего пользователя.
func RenderProfile(w io.Writer, user *client.User) {
	fmt.Fprintf(w, "Username:   %s\n", user.Username)
	fmt.Fprintf(w, "Email:      %s\n", user.Email)
	fmt.Fprintf(w, "Role:       %s\n", user.Role)
	fmt.Fprintf(w, "Last login: %s\n", formatDate(user.LastLogin))

	if user.ProfilePicture != "" {
		fmt.Fprintf(w, "Picture:    %s\n", user.ProfilePictureMime)
	}
}

// formatDate приводит дату сервера к короткому виду.
// Неразборчивая дата показывается как есть, пустая — как N/A.
func formatDate(value string) string {
	if value == "" {
		return "N/A"
	}

	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return value
	}

	return t.Format("2006-01-02")
}
