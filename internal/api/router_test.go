package api_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/notevault/notevault/internal/api"
	"github.com/notevault/notevault/internal/database/models"
	"github.com/notevault/notevault/internal/database/repository"
	"github.com/notevault/notevault/internal/database/service"
	"github.com/notevault/notevault/internal/handler"
	"github.com/notevault/notevault/internal/hasher"
)

// setupServer wires the full stack over an in-memory SQLite database.
func setupServer(t *testing.T) *gin.Engine {
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Note{}))

	discard := slog.New(slog.NewTextHandler(io.Discard, nil))
	userRepo := repository.NewUserRepository(db)
	noteRepo := repository.NewNoteRepository(db)
	h := hasher.New(discard)

	userService := service.NewUserService(userRepo, noteRepo, h, discard)
	noteService := service.NewNoteService(noteRepo, userRepo, discard)

	userHandler := handler.NewUserHandler(userService, discard)
	noteHandler := handler.NewNoteHandler(noteService, discard)

	return api.SetupRouter(userHandler, noteHandler, discard)
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHealth(t *testing.T) {
	r := setupServer(t)

	w := doJSON(t, r, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequestIDHeader(t *testing.T) {
	r := setupServer(t)

	w := doJSON(t, r, http.MethodGet, "/health", nil)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("X-Request-ID", "caller-supplied")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "caller-supplied", w.Header().Get("X-Request-ID"))
}

// Full account lifecycle: register, fetch, note with placeholder title,
// credential-gated delete with cascade, and a 404 afterwards.
func TestAccountLifecycle(t *testing.T) {
	r := setupServer(t)

	// Register alice
	w := doJSON(t, r, http.MethodPost, "/user",
		gin.H{"nickname": "alice", "email": "a@x.com", "password": "pw1"})
	require.Equal(t, http.StatusOK, w.Code)

	// Re-registering the email conflicts
	w = doJSON(t, r, http.MethodPost, "/user",
		gin.H{"nickname": "alice2", "email": "a@x.com", "password": "pw2"})
	assert.Equal(t, http.StatusConflict, w.Code)

	var users []handler.UserSummary
	w = doJSON(t, r, http.MethodGet, "/user/list", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &users))
	require.Len(t, users, 1)

	// Fetch alice: no notes yet
	w = doJSON(t, r, http.MethodGet, "/user/1", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var profile struct {
		Username string        `json:"username"`
		Notes    []models.Note `json:"notes"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &profile))
	assert.Equal(t, "alice", profile.Username)
	assert.Empty(t, profile.Notes)

	// Create a note with an empty title: placeholder is substituted
	w = doJSON(t, r, http.MethodPost, "/notes/1", gin.H{"content": "remember the milk"})
	require.Equal(t, http.StatusCreated, w.Code)

	var created struct {
		ID      uint   `json:"id"`
		Title   string `json:"title"`
		Content string `json:"content"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, "Empty Title", created.Title)
	assert.Equal(t, "remember the milk", created.Content)

	// Deleting with the wrong password leaves everything intact
	w = doJSON(t, r, http.MethodDelete, "/user/1", gin.H{"email": "a@x.com", "password": "wrong"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(t, r, http.MethodGet, "/notes/1", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	// Delete with the correct credentials
	w = doJSON(t, r, http.MethodDelete, "/user/1", gin.H{"email": "a@x.com", "password": "pw1"})
	require.Equal(t, http.StatusNoContent, w.Code)

	w = doJSON(t, r, http.MethodGet, "/user/1", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	// The cascade removed the note as well
	var notes []models.Note
	w = doJSON(t, r, http.MethodGet, "/notes", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &notes))
	assert.Empty(t, notes)
}

func TestNoteLifecycle(t *testing.T) {
	r := setupServer(t)

	w := doJSON(t, r, http.MethodPost, "/user",
		gin.H{"nickname": "bob", "email": "b@x.com", "password": "pw"})
	require.Equal(t, http.StatusOK, w.Code)

	// Creating a note for an unknown user fails
	w = doJSON(t, r, http.MethodPost, "/notes/42", gin.H{"title": "t", "content": "c"})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, r, http.MethodPost, "/notes/1", gin.H{"title": "draft", "content": "wip"})
	require.Equal(t, http.StatusCreated, w.Code)

	// Update it
	w = doJSON(t, r, http.MethodPut, "/notes/1", gin.H{"title": "final", "content": "done"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "final")

	// Empty update payload is rejected
	w = doJSON(t, r, http.MethodPut, "/notes/1", gin.H{})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Listing for the user includes the nickname
	w = doJSON(t, r, http.MethodGet, "/notes/1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "bob")

	// Delete the note, then a second delete is a 404
	w = doJSON(t, r, http.MethodDelete, "/notes/1", nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = doJSON(t, r, http.MethodDelete, "/notes/1", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdateUser(t *testing.T) {
	r := setupServer(t)

	w := doJSON(t, r, http.MethodPost, "/user",
		gin.H{"nickname": "carol", "email": "c@x.com", "password": "pw"})
	require.Equal(t, http.StatusOK, w.Code)

	// Wrong email is rejected before the password check
	w = doJSON(t, r, http.MethodPut, "/user/1",
		gin.H{"nickname": "caroline", "email": "other@x.com", "password": "pw"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Wrong password is unauthorized
	w = doJSON(t, r, http.MethodPut, "/user/1",
		gin.H{"nickname": "caroline", "email": "c@x.com", "password": "nope"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(t, r, http.MethodPut, "/user/1",
		gin.H{"nickname": "caroline", "email": "c@x.com", "password": "pw"})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodGet, "/user/1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "caroline")

	w = doJSON(t, r, http.MethodPut, "/user/999",
		gin.H{"nickname": "x", "email": "c@x.com", "password": "pw"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}
