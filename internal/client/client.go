package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// HTTPClient реализует Client через REST API платформы.
type HTTPClient struct {
	baseURL    string
	tokens     TokenSource
	httpClient *http.Client
}

// NewHTTPClient создаёт нового HTTP клиента платформы.
// baseURL — адрес API без завершающего слэша (например, "http://localhost:8000/api").
// tokens может быть nil, тогда все запросы уходят без авторизации.
func NewHTTPClient(baseURL string, tokens TokenSource) *HTTPClient {
	return &HTTPClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		tokens:     tokens,
		httpClient: &http.Client{},
	}
}

// Login отправляет учётные данные на эндпоинт аутентификации.
// Возвращает указатель на AuthResponse в случае успеха.
func (c *HTTPClient) Login(ctx context.Context, username, password string) (*AuthResponse, error) {
	body := map[string]string{
		"username": username,
		"password": password,
	}

	var resp AuthResponse
	if err := c.doJSON(ctx, http.MethodPost, "/auth/login/", nil, body, &resp); err != nil {
		return nil, err
	}

	return &resp, nil
}

// Register регистрирует нового пользователя на эндпоинте регистрации.
// Возвращает указатель на AuthResponse в случае успеха.
func (c *HTTPClient) Register(ctx context.Context, req RegisterRequest) (*AuthResponse, error) {
	var resp AuthResponse
	if err := c.doJSON(ctx, http.MethodPost, "/auth/register/", nil, req, &resp); err != nil {
		return nil, err
	}

	return &resp, nil
}

// Me возвращает пользователя, которому принадлежит текущий токен.
func (c *HTTPClient) Me(ctx context.Context) (*User, error) {
	var user User
	if err := c.doJSON(ctx, http.MethodGet, "/users/me/", nil, nil, &user); err != nil {
		return nil, err
	}

	return &user, nil
}

// UpdateUser частично обновляет профиль пользователя userID.
// Возвращает полную запись пользователя, которую прислал сервер.
func (c *HTTPClient) UpdateUser(ctx context.Context, userID int, patch UserPatch) (*User, error) {
	path := fmt.Sprintf("/users/%d/", userID)

	var user User
	if err := c.doJSON(ctx, http.MethodPatch, path, nil, patch, &user); err != nil {
		return nil, err
	}

	return &user, nil
}

// UploadProfilePicture загружает аватар пользователя userID как multipart форму.
// Возвращает обновлённого пользователя в случае успеха.
func (c *HTTPClient) UploadProfilePicture(
	ctx context.Context,
	userID int,
	fileName string,
	mime string,
	data []byte,
) (*User, error) {
	var buf bytes.Buffer

	writer := multipart.NewWriter(&buf)

	part, err := writer.CreateFormFile("profile_picture", fileName)
	if err != nil {
		return nil, fmt.Errorf("failed to create form file: %w", err)
	}

	if _, err = part.Write(data); err != nil {
		return nil, fmt.Errorf("failed to write data to multipart form: %w", err)
	}

	if err = writer.Close(); err != nil {
		return nil, fmt.Errorf("failed to close multipart writer: %w", err)
	}

	requestURL := fmt.Sprintf("%s/users/%d/profile-picture/", c.baseURL, userID)

	ctx, cancelFunc := context.WithTimeout(ctx, timeoutUpload)
	defer cancelFunc()

	request, err := http.NewRequestWithContext(ctx, http.MethodPost, requestURL, &buf)
	if err != nil {
		return nil, err
	}
	request.Header.Set("Content-Type", writer.FormDataContentType())
	c.authorize(request)

	resp, err := c.httpClient.Do(request)
	if err != nil {
		return nil, fmt.Errorf("failed to do post request for url %s: %w", requestURL, err)
	}

	defer func() {
		_ = resp.Body.Close()
	}()

	respData, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body in UploadProfilePicture: %w", err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, statusError(resp.StatusCode, respData)
	}

	var user User
	if err = json.Unmarshal(respData, &user); err != nil {
		return nil, err
	}

	return &user, nil
}

// Scores возвращает результаты квизов текущего пользователя.
func (c *HTTPClient) Scores(ctx context.Context) ([]Score, error) {
	var scores []Score
	if err := c.doJSON(ctx, http.MethodGet, "/scores/", nil, nil, &scores); err != nil {
		return nil, err
	}

	return scores, nil
}

// Domains возвращает список областей знаний.
func (c *HTTPClient) Domains(ctx context.Context) ([]Domain, error) {
	var domains []Domain
	if err := c.doJSON(ctx, http.MethodGet, "/domains/", nil, nil, &domains); err != nil {
		return nil, err
	}

	return domains, nil
}

// DomainByID возвращает область знаний по ID.
func (c *HTTPClient) DomainByID(ctx context.Context, id int) (*Domain, error) {
	var domain Domain
	if err := c.doJSON(ctx, http.MethodGet, fmt.Sprintf("/domains/%d/", id), nil, nil, &domain); err != nil {
		return nil, err
	}

	return &domain, nil
}

// SubjectsByDomain возвращает предметы области знаний domainID.
func (c *HTTPClient) SubjectsByDomain(ctx context.Context, domainID int) ([]Subject, error) {
	query := url.Values{"domain": []string{strconv.Itoa(domainID)}}

	var subjects []Subject
	if err := c.doJSON(ctx, http.MethodGet, "/subjects/", query, nil, &subjects); err != nil {
		return nil, err
	}

	return subjects, nil
}

// SubjectByID возвращает предмет по ID.
func (c *HTTPClient) SubjectByID(ctx context.Context, id int) (*Subject, error) {
	var subject Subject
	if err := c.doJSON(ctx, http.MethodGet, fmt.Sprintf("/subjects/%d/", id), nil, nil, &subject); err != nil {
		return nil, err
	}

	return &subject, nil
}

// RoomsBySubject возвращает комнаты предмета subjectID.
func (c *HTTPClient) RoomsBySubject(ctx context.Context, subjectID int) ([]Room, error) {
	query := url.Values{"subject": []string{strconv.Itoa(subjectID)}}

	var rooms []Room
	if err := c.doJSON(ctx, http.MethodGet, "/rooms/", query, nil, &rooms); err != nil {
		return nil, err
	}

	return rooms, nil
}

// RoomByID возвращает комнату по ID.
func (c *HTTPClient) RoomByID(ctx context.Context, id int) (*Room, error) {
	var room Room
	if err := c.doJSON(ctx, http.MethodGet, fmt.Sprintf("/rooms/%d/", id), nil, nil, &room); err != nil {
		return nil, err
	}

	return &room, nil
}

// RoomQuestions возвращает вопросы комнаты roomID.
func (c *HTTPClient) RoomQuestions(ctx context.Context, roomID int) ([]Question, error) {
	path := fmt.Sprintf("/rooms/%d/questions/", roomID)

	var questions []Question
	if err := c.doJSON(ctx, http.MethodGet, path, nil, nil, &questions); err != nil {
		return nil, err
	}

	return questions, nil
}

// PublicRooms возвращает список публичных комнат.
func (c *HTTPClient) PublicRooms(ctx context.Context) ([]PublicRoom, error) {
	var rooms []PublicRoom
	if err := c.doJSON(ctx, http.MethodGet, "/rooms/public/", nil, nil, &rooms); err != nil {
		return nil, err
	}

	return rooms, nil
}

// JoinRoom присоединяет текущего пользователя к комнате по коду roomCode.
func (c *HTTPClient) JoinRoom(ctx context.Context, roomCode string) (*JoinResult, error) {
	body := map[string]string{"room_code": roomCode}

	var result JoinResult
	if err := c.doJSON(ctx, http.MethodPost, "/rooms/join/", nil, body, &result); err != nil {
		return nil, err
	}

	return &result, nil
}

// CreateRoom создаёт новую комнату.
// Возвращает созданную комнату в случае успеха.
func (c *HTTPClient) CreateRoom(ctx context.Context, req CreateRoomRequest) (*Room, error) {
	var room Room
	if err := c.doJSON(ctx, http.MethodPost, "/rooms/", nil, req, &room); err != nil {
		return nil, err
	}

	return &room, nil
}

// doJSON выполняет запрос к API с JSON телом и декодирует ответ в out.
// out может быть nil, если тело ответа не нужно.
func (c *HTTPClient) doJSON(
	ctx context.Context,
	method string,
	path string,
	query url.Values,
	body interface{},
	out interface{},
) error {
	requestURL := c.baseURL + path
	if len(query) > 0 {
		requestURL += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(data)
	}

	ctx, cancelFunc := context.WithTimeout(ctx, timeoutRequest)
	defer cancelFunc()

	request, err := http.NewRequestWithContext(ctx, method, requestURL, reader)
	if err != nil {
		return err
	}

	if body != nil {
		request.Header.Set("Content-Type", "application/json")
	}
	c.authorize(request)

	requestID := uuid.NewString()
	slog.Debug("api request", "id", requestID, "method", method, "url", requestURL)

	resp, err := c.httpClient.Do(request)
	if err != nil {
		return fmt.Errorf("failed to do %s request for url %s: %w", method, requestURL, err)
	}

	defer func() {
		_ = resp.Body.Close()
	}()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	slog.Debug("api response", "id", requestID, "status", resp.StatusCode)

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return statusError(resp.StatusCode, data)
	}

	if out == nil {
		return nil
	}

	return json.Unmarshal(data, out)
}

// authorize добавляет заголовок авторизации, если TokenSource отдал токен.
func (c *HTTPClient) authorize(request *http.Request) {
	if c.tokens == nil {
		return
	}

	if token := c.tokens.Token(); token != "" {
		request.Header.Set("Authorization", "Bearer "+token)
	}
}

// statusError превращает не-2xx ответ в ошибку.
// Сервер может прислать поле detail с текстом, тогда оно попадает в ошибку.
func statusError(statusCode int, data []byte) error {
	var payload struct {
		Detail string `json:"detail"`
	}

	if err := json.Unmarshal(data, &payload); err == nil && payload.Detail != "" {
		return fmt.Errorf("%w %d: %s", ErrUnexpectedStatus, statusCode, payload.Detail)
	}

	return fmt.Errorf("%w %d", ErrUnexpectedStatus, statusCode)
}
