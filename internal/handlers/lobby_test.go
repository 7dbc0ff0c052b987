// internal/handlers/lobby_test.go
package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bunker-game/bunker-service/internal/lobby"
	"github.com/bunker-game/bunker-service/internal/models"
	"github.com/bunker-game/bunker-service/internal/notify"
	"github.com/bunker-game/bunker-service/internal/store"
)

// memStore mirrors the Redis adapter in memory for handler tests.
type memStore struct {
	mu   sync.Mutex
	data map[string][]byte
}

func newMemStore() *memStore {
	return &memStore{data: make(map[string][]byte)}
}

func (m *memStore) Get(ctx context.Context, key string, dest interface{}) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	raw, ok := m.data[key]
	if !ok {
		return store.ErrNotFound
	}
	return json.Unmarshal(raw, dest)
}

func (m *memStore) Set(ctx context.Context, key string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = data
	return nil
}

func (m *memStore) Delete(ctx context.Context, keys ...string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, k := range keys {
		delete(m.data, k)
	}
	return nil
}

func (m *memStore) Close() error { return nil }

func setupServer(t *testing.T) *Server {
	t.Helper()
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	scenarios := []models.Scenario{{
		ID:           "test",
		Name:         "Тест",
		Description:  "Тестовый сценарий",
		WinCondition: models.WinCondition{Type: "survive_days", Value: 30},
		Characteristics: map[string][]string{
			"Профессия": {"Врач", "Инженер"},
		},
	}}

	hub := notify.NewHub(logger)
	svc := lobby.NewService(newMemStore(), hub, scenarios, logger)
	return NewServer(svc, hub, logger)
}

// seedLobby creates a lobby at a known code straight through the registry.
func seedLobby(t *testing.T, srv *Server, code string, ownerID int64, username string) {
	t.Helper()
	l := &models.Lobby{
		Code:    code,
		Owner:   models.Player{UserID: ownerID, Username: username},
		Players: []models.Player{{UserID: ownerID, Username: username}},
	}
	require.NoError(t, srv.Service.Registry().Create(context.Background(), l))
}

func doPost(t *testing.T, srv *Server, path, body string) (*httptest.ResponseRecorder, actionResponse) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
	w := httptest.NewRecorder()
	srv.Routes().ServeHTTP(w, req)

	var resp actionResponse
	if w.Code == http.StatusOK {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	}
	return w, resp
}

func TestCreateLobbyHandler(t *testing.T) {
	srv := setupServer(t)

	w, resp := doPost(t, srv, "/lobby/create", `{"user_id":1,"username":"Alice"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	assert.Contains(t, resp.Message, "Лобби создано!")
	// The owner of a not-yet-started lobby can start it.
	assert.Contains(t, resp.Menu, "Начать игру")
	assert.Contains(t, resp.Menu, "Список игроков")
}

func TestCreateLobbyHandlerRejectsBadBody(t *testing.T) {
	srv := setupServer(t)

	w, _ := doPost(t, srv, "/lobby/create", `{"username":"NoID"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	req := httptest.NewRequest(http.MethodGet, "/lobby/create", nil)
	w2 := httptest.NewRecorder()
	srv.Routes().ServeHTTP(w2, req)
	assert.Equal(t, http.StatusMethodNotAllowed, w2.Code)
}

func TestJoinLobbyHandler(t *testing.T) {
	srv := setupServer(t)
	seedLobby(t, srv, "ab12cd", 1, "Alice")

	w, resp := doPost(t, srv, "/lobby/join", `{"user_id":2,"username":"Bob","code":"ab12cd"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Contains(t, resp.Message, "Вы присоединились к лобби ab12cd")
}

func TestJoinUnknownLobby(t *testing.T) {
	srv := setupServer(t)

	w, _ := doPost(t, srv, "/lobby/join", `{"user_id":2,"username":"Bob","code":"nosuch"}`)
	require.Equal(t, http.StatusNotFound, w.Code)

	var resp errorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Лобби не найдено", resp.Error)
}

func TestStartGameHandlerForbiddenForNonOwner(t *testing.T) {
	srv := setupServer(t)
	seedLobby(t, srv, "ab12cd", 1, "Alice")
	_, _ = doPost(t, srv, "/lobby/join", `{"user_id":2,"username":"Bob","code":"ab12cd"}`)

	w, _ := doPost(t, srv, "/lobby/start", `{"user_id":2}`)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestStartAndRevealFlow(t *testing.T) {
	srv := setupServer(t)
	seedLobby(t, srv, "ab12cd", 1, "Alice")
	_, _ = doPost(t, srv, "/lobby/join", `{"user_id":2,"username":"Bob","code":"ab12cd"}`)

	w, resp := doPost(t, srv, "/lobby/start", `{"user_id":1}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "Игра началась!", resp.Message)
	assert.Contains(t, resp.Menu, "Мой персонаж")

	w, resp = doPost(t, srv, "/lobby/reveal", `{"user_id":2,"name":"Профессия"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "Вы раскрыли Профессия", resp.Message)

	// Second reveal of the same name is a no-op.
	w, resp = doPost(t, srv, "/lobby/reveal", `{"user_id":2,"name":"Профессия"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Ничего не изменилось", resp.Message)
}

func TestPlayerInfoHandlerListsChoices(t *testing.T) {
	srv := setupServer(t)
	seedLobby(t, srv, "ab12cd", 1, "Alice")
	_, _ = doPost(t, srv, "/lobby/start", `{"user_id":1}`)

	req := httptest.NewRequest(http.MethodGet, "/player/info?user_id=1", nil)
	w := httptest.NewRecorder()
	srv.Routes().ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp actionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, resp.Message, "Alice")
	assert.Equal(t, []string{"Профессия"}, resp.Choices)
}

func TestLobbyInfoHandler(t *testing.T) {
	srv := setupServer(t)
	seedLobby(t, srv, "ab12cd", 1, "Alice")

	req := httptest.NewRequest(http.MethodGet, "/lobby/info?user_id=1", nil)
	w := httptest.NewRecorder()
	srv.Routes().ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp actionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, resp.Message, "🏠 Лобби: ab12cd")

	// Outsiders have no lobby to look at.
	req = httptest.NewRequest(http.MethodGet, "/lobby/info?user_id=9", nil)
	w = httptest.NewRecorder()
	srv.Routes().ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestLeaveLobbyHandler(t *testing.T) {
	srv := setupServer(t)
	seedLobby(t, srv, "ab12cd", 1, "Alice")

	w, resp := doPost(t, srv, "/lobby/leave", `{"user_id":1,"username":"Alice"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "Вы покинули лобби", resp.Message)
	assert.Equal(t, []string{"Создать лобби", "Присоединиться к лобби"}, resp.Menu)
}
