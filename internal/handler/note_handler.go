package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/notevault/notevault/internal/database/service"
)

// NoteHandler handles HTTP requests for notes
type NoteHandler struct {
	service service.NoteService
	logger  *slog.Logger
}

// NewNoteHandler creates a new note handler
func NewNoteHandler(service service.NoteService, logger *slog.Logger) *NoteHandler {
	return &NoteHandler{
		service: service,
		logger:  logger,
	}
}

// Request DTOs. Blank fields are allowed on creation (placeholders apply),
// required on update.
type CreateNoteRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

type UpdateNoteRequest struct {
	Title   string `json:"title" binding:"required"`
	Content string `json:"content" binding:"required"`
}

// Create handles POST /notes/:userId
func (h *NoteHandler) Create(c *gin.Context) {
	userID, ok := h.parseID(c, "userId")
	if !ok {
		return
	}

	var req CreateNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("⚠️ [NoteHandler] Invalid create request", "user_id", userID, "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Request body is empty"})
		return
	}

	note, err := h.service.Create(c.Request.Context(), userID, req.Title, req.Content)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"id":      note.ID,
		"title":   note.Title,
		"content": note.Content,
	})
}

// Update handles PUT /notes/:noteId
func (h *NoteHandler) Update(c *gin.Context) {
	noteID, ok := h.parseID(c, "noteId")
	if !ok {
		return
	}

	var req UpdateNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("⚠️ [NoteHandler] Invalid update request", "note_id", noteID, "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Title and content are required"})
		return
	}

	note, err := h.service.Update(c.Request.Context(), noteID, req.Title, req.Content)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":      note.ID,
		"title":   note.Title,
		"content": note.Content,
	})
}

// ListForUser handles GET /notes/:userId
func (h *NoteHandler) ListForUser(c *gin.Context) {
	userID, ok := h.parseID(c, "userId")
	if !ok {
		return
	}

	nickname, notes, err := h.service.ListForUser(c.Request.Context(), userID)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"username": nickname,
		"notes":    notes,
	})
}

// ListAll handles GET /notes
func (h *NoteHandler) ListAll(c *gin.Context) {
	notes, err := h.service.ListAll(c.Request.Context())
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, notes)
}

// Delete handles DELETE /notes/:noteId
func (h *NoteHandler) Delete(c *gin.Context) {
	noteID, ok := h.parseID(c, "noteId")
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), noteID); err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *NoteHandler) parseID(c *gin.Context, param string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(param), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID"})
		return 0, false
	}
	return uint(id), true
}

// handleServiceError maps service errors to HTTP responses
func (h *NoteHandler) handleServiceError(c *gin.Context, err error) {
	handleServiceError(c, h.logger, err)
}
