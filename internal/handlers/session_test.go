package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TheFirstLairron/Rusty-Rogues/internal/storage"
	"github.com/TheFirstLairron/Rusty-Rogues/pkg/entity"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func createSession(t *testing.T, handler *SessionHandler) SessionResponse {
	t.Helper()

	body := bytes.NewBufferString(`{"seed": 42}`)
	req := httptest.NewRequest(http.MethodPost, "/v1/sessions", body)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)

	var resp SessionResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	return resp
}

func TestCreateSession(t *testing.T) {
	store := storage.NewMockStorage()
	handler := NewSessionHandler(testLogger(), store)

	resp := createSession(t, handler)

	assert.NotEqual(t, uuid.Nil, resp.ID)
	assert.NotNil(t, resp.State)
	assert.Equal(t, 1, resp.State.DungeonLevel)
	assert.False(t, resp.LevelUpRequired)
	assert.Len(t, resp.State.Inventory, 1, "the starting dagger")

	// The session must be persisted.
	save, err := store.LoadGame(context.Background(), resp.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.PlayerName, save.Entities.Player().Name)
}

func TestGetSession(t *testing.T) {
	store := storage.NewMockStorage()
	handler := NewSessionHandler(testLogger(), store)

	created := createSession(t, handler)

	req := httptest.NewRequest(http.MethodGet, "/v1/sessions/"+created.ID.String(), nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp SessionResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, created.ID, resp.ID)
}

func TestGetSessionNotFound(t *testing.T) {
	store := storage.NewMockStorage()
	handler := NewSessionHandler(testLogger(), store)

	req := httptest.NewRequest(http.MethodGet, "/v1/sessions/"+uuid.New().String(), nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetSessionInvalidID(t *testing.T) {
	store := storage.NewMockStorage()
	handler := NewSessionHandler(testLogger(), store)

	req := httptest.NewRequest(http.MethodGet, "/v1/sessions/not-a-uuid", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func postAction(t *testing.T, handler *SessionHandler, id uuid.UUID, action string) (*httptest.ResponseRecorder, ActionResponse) {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost,
		"/v1/sessions/"+id.String()+"/actions",
		bytes.NewBufferString(action))
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	var resp ActionResponse
	if w.Code == http.StatusOK {
		require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	}
	return w, resp
}

func TestActionWait(t *testing.T) {
	store := storage.NewMockStorage()
	handler := NewSessionHandler(testLogger(), store)

	created := createSession(t, handler)

	w, resp := postAction(t, handler, created.ID, `{"action": "wait", "seed": 7}`)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "turn_taken", string(resp.Result))
	assert.Equal(t, created.ID, resp.ID)
}

func TestActionOnMissingSession(t *testing.T) {
	store := storage.NewMockStorage()
	handler := NewSessionHandler(testLogger(), store)

	w, _ := postAction(t, handler, uuid.New(), `{"action": "wait"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestActionPersistsState(t *testing.T) {
	store := storage.NewMockStorage()
	handler := NewSessionHandler(testLogger(), store)

	created := createSession(t, handler)
	before := created.State.Log

	w, resp := postAction(t, handler, created.ID, `{"action": "move", "dx": 1, "seed": 7}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "turn_taken", string(resp.Result))

	save, err := store.LoadGame(context.Background(), created.ID)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, len(save.State.Log), len(before))
}

func TestLevelUpFlow(t *testing.T) {
	store := storage.NewMockStorage()
	handler := NewSessionHandler(testLogger(), store)

	created := createSession(t, handler)

	// Bank enough XP directly in the stored session.
	save, err := store.LoadGame(context.Background(), created.ID)
	require.NoError(t, err)
	save.Entities.Player().Fighter.XP = 400

	// Any normal action is refused until the choice is made.
	w, _ := postAction(t, handler, created.ID, `{"action": "wait", "seed": 7}`)
	assert.Equal(t, http.StatusConflict, w.Code)

	// An invalid choice is rejected.
	w, _ = postAction(t, handler, created.ID, `{"action": "levelup", "choice": "charisma"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// A valid choice resolves the pending level-up.
	w, resp := postAction(t, handler, created.ID, `{"action": "levelup", "choice": "hp"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.False(t, resp.LevelUpRequired)

	save, err = store.LoadGame(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, 120, save.Entities.Player().Fighter.BaseMaxHP)
	assert.Equal(t, 2, save.Entities.Player().Level)

	// Turns flow again.
	w, _ = postAction(t, handler, created.ID, `{"action": "wait", "seed": 7}`)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestDeleteSession(t *testing.T) {
	store := storage.NewMockStorage()
	handler := NewSessionHandler(testLogger(), store)

	created := createSession(t, handler)

	req := httptest.NewRequest(http.MethodDelete, "/v1/sessions/"+created.ID.String(), nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNoContent, w.Code)

	_, err := store.LoadGame(context.Background(), created.ID)
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestMethodNotAllowed(t *testing.T) {
	store := storage.NewMockStorage()
	handler := NewSessionHandler(testLogger(), store)

	req := httptest.NewRequest(http.MethodPut, "/v1/sessions", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
}
