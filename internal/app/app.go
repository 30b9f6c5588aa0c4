// Package app маршрутизирует команды терминального клиента по экранам.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime"
	"os"
	"path/filepath"
	"strconv"

	"github.com/fatih/color"
	"github.com/letsssgooo/quizHub/internal/client"
	"github.com/letsssgooo/quizHub/internal/forms"
	"github.com/letsssgooo/quizHub/internal/pages"
	"github.com/letsssgooo/quizHub/internal/session"
	"github.com/spf13/pflag"
)

// App связывает сессию и экраны с командами.
type App struct {
	session   session.Manager
	dashboard *pages.Dashboard
	catalog   *pages.Catalog
	rooms     *pages.Rooms
	out       io.Writer
}

// New создаёт приложение.
func New(sess session.Manager, api client.Client, out io.Writer) *App {
	return &App{
		session:   sess,
		dashboard: pages.NewDashboard(api),
		catalog:   pages.NewCatalog(api),
		rooms:     pages.NewRooms(api),
		out:       out,
	}
}

// Ошибки маршрутизации
var (
	ErrUnknownCommand = errors.New("unknown command")
	ErrUsage          = errors.New("invalid arguments")
	ErrLoginRequired  = errors.New("login required")
)

// Run выполняет одну команду.
// Перед защищёнными экранами восстанавливает сессию из сохранённого токена
// и требует вход, если сессия неактивна.
func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		fmt.Fprintln(a.out, msgHelp)
		return nil
	}

	command, rest := args[0], args[1:]

	switch command {
	case "help":
		fmt.Fprintln(a.out, msgHelp)
		return nil
	case "login":
		return a.handleLogin(ctx, rest)
	case "register":
		return a.handleRegister(ctx, rest)
	}

	// Остальные команды работают от имени восстановленной сессии.
	if err := a.session.Restore(ctx); err != nil {
		return err
	}

	switch command {
	case "logout":
		a.session.Logout()
		return nil
	case "dashboard":
		return a.handleDashboard(ctx)
	case "domains":
		return a.handleDomains(ctx, rest)
	case "subjects":
		return a.handleSubjects(ctx, rest)
	case "rooms":
		return a.handleRooms(ctx, rest)
	case "public-rooms":
		pages.RenderPublicRooms(a.out, a.rooms.Public(ctx))
		return nil
	case "join":
		return a.handleJoin(ctx, rest)
	case "create-room":
		return a.handleCreateRoom(ctx, rest)
	case "profile":
		return a.handleProfile()
	case "update-profile":
		return a.handleUpdateProfile(ctx, rest)
	case "upload-picture":
		return a.handleUploadPicture(ctx, rest)
	}

	return fmt.Errorf("%w: %s", ErrUnknownCommand, command)
}

func (a *App) handleLogin(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("%w: login <username> <password>", ErrUsage)
	}

	return a.session.Login(ctx, args[0], args[1])
}

func (a *App) handleRegister(ctx context.Context, args []string) error {
	if len(args) != 6 {
		return fmt.Errorf(
			"%w: register <username> <email> <password> <first> <last> <role>",
			ErrUsage,
		)
	}

	form := forms.RegisterForm{
		Username:  args[0],
		Email:     args[1],
		Password:  args[2],
		FirstName: args[3],
		LastName:  args[4],
		Role:      args[5],
	}
	if err := form.Validate(); err != nil {
		return err
	}

	return a.session.Register(ctx, client.RegisterRequest{
		Username:  form.Username,
		Email:     form.Email,
		Password:  form.Password,
		FirstName: form.FirstName,
		LastName:  form.LastName,
		Role:      form.Role,
	})
}

func (a *App) handleDashboard(ctx context.Context) error {
	user, err := a.requireUser()
	if err != nil {
		return err
	}

	entries := a.dashboard.Load(ctx)
	pages.RenderDashboard(a.out, user, entries)

	return nil
}

func (a *App) handleDomains(ctx context.Context, args []string) error {
	query := ""
	if len(args) > 0 {
		query = args[0]
	}

	entries := pages.FilterDomains(a.catalog.Domains(ctx), query)
	pages.RenderDomains(a.out, entries)

	return nil
}

func (a *App) handleSubjects(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: subjects <domainID> [query]", ErrUsage)
	}

	domainID, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("%w: domain id must be a number", ErrUsage)
	}

	query := ""
	if len(args) > 1 {
		query = args[1]
	}

	domain, entries, err := a.catalog.Subjects(ctx, domainID)
	if err != nil {
		return err
	}

	pages.RenderSubjects(a.out, domain, pages.FilterSubjects(entries, query))

	return nil
}

func (a *App) handleRooms(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("%w: rooms <subjectID>", ErrUsage)
	}

	subjectID, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("%w: subject id must be a number", ErrUsage)
	}

	subject, entries, err := a.catalog.Rooms(ctx, subjectID)
	if err != nil {
		return err
	}

	pages.RenderRooms(a.out, subject, entries)

	return nil
}

func (a *App) handleJoin(ctx context.Context, args []string) error {
	if _, err := a.requireUser(); err != nil {
		return err
	}

	if len(args) != 1 {
		return fmt.Errorf("%w: join <code>", ErrUsage)
	}

	roomID, err := a.rooms.Join(ctx, args[0])
	if err != nil {
		if errors.Is(err, pages.ErrJoinRejected) {
			fmt.Fprintln(a.out, color.RedString(msgJoinRejected))
		}

		return err
	}

	fmt.Fprintf(a.out, "%s Room ID: %d\n", color.GreenString(msgRoomJoined), roomID)

	return nil
}

func (a *App) handleCreateRoom(ctx context.Context, args []string) error {
	if _, err := a.requireUser(); err != nil {
		return err
	}

	flags := pflag.NewFlagSet("create-room", pflag.ContinueOnError)
	level := flags.String("level", "easy", "difficulty level: easy, medium, hard")
	isPublic := flags.Bool("public", false, "anyone can join without a code")
	isClosed := flags.Bool("closed", false, "create the room closed")

	if err := flags.Parse(args); err != nil {
		return err
	}

	rest := flags.Args()
	if len(rest) != 2 {
		return fmt.Errorf("%w: create-room <subjectID> <name> [flags]", ErrUsage)
	}

	subjectID, err := strconv.Atoi(rest[0])
	if err != nil {
		return fmt.Errorf("%w: subject id must be a number", ErrUsage)
	}

	room, err := a.rooms.Create(ctx, forms.CreateRoomForm{
		RoomName: rest[1],
		Level:    *level,
		Subject:  subjectID,
		IsActive: !*isClosed,
		IsPublic: *isPublic,
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "%s ID: %d, code: %s\n", color.GreenString(msgRoomCreated), room.ID, room.RoomCode)

	return nil
}

func (a *App) handleProfile() error {
	user, err := a.requireUser()
	if err != nil {
		return err
	}

	pages.RenderProfile(a.out, user)

	return nil
}

func (a *App) handleUpdateProfile(ctx context.Context, args []string) error {
	if _, err := a.requireUser(); err != nil {
		return err
	}

	flags := pflag.NewFlagSet("update-profile", pflag.ContinueOnError)
	username := flags.String("username", "", "new username")
	email := flags.String("email", "", "new email")

	if err := flags.Parse(args); err != nil {
		return err
	}

	if *username == "" && *email == "" {
		return fmt.Errorf("%w: update-profile [--username] [--email]", ErrUsage)
	}

	return a.session.UpdateProfile(ctx, client.UserPatch{
		Username: *username,
		Email:    *email,
	})
}

func (a *App) handleUploadPicture(ctx context.Context, args []string) error {
	if _, err := a.requireUser(); err != nil {
		return err
	}

	if len(args) != 1 {
		return fmt.Errorf("%w: upload-picture <path>", ErrUsage)
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read picture file: %w", err)
	}

	fileName := filepath.Base(args[0])

	mimeType := mime.TypeByExtension(filepath.Ext(fileName))
	if mimeType == "" {
		mimeType = "application/octet-stream"
	}

	return a.session.UploadProfilePicture(ctx, fileName, mimeType, data)
}

// requireUser возвращает текущего пользователя или ошибку входа.
func (a *App) requireUser() (*client.User, error) {
	user := a.session.User()
	if user == nil {
		fmt.Fprintln(a.out, color.YellowString(msgLoginRequired))
		return nil, ErrLoginRequired
	}

	return user, nil
}
