package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/notevault/notevault/internal/database/models"
	"github.com/notevault/notevault/internal/database/repository"
)

// Placeholder values stored when a note is created with blank fields. Blanks
// are replaced, not rejected.
const (
	EmptyTitlePlaceholder   = "Empty Title"
	EmptyContentPlaceholder = "Empty Content"
)

// NoteService defines the interface for note lifecycle business logic
type NoteService interface {
	Create(ctx context.Context, userID uint, title, content string) (*models.Note, error)
	Update(ctx context.Context, noteID uint, title, content string) (*models.Note, error)
	ListForUser(ctx context.Context, userID uint) (string, []models.Note, error)
	ListAll(ctx context.Context) ([]models.Note, error)
	Delete(ctx context.Context, noteID uint) error
}

type noteService struct {
	noteRepo repository.NoteRepository
	userRepo repository.UserRepository
	logger   *slog.Logger
}

// NewNoteService creates a new note service instance
func NewNoteService(
	noteRepo repository.NoteRepository,
	userRepo repository.UserRepository,
	logger *slog.Logger,
) NoteService {
	return &noteService{
		noteRepo: noteRepo,
		userRepo: userRepo,
		logger:   logger,
	}
}

func (s *noteService) Create(ctx context.Context, userID uint, title, content string) (*models.Note, error) {
	// A note cannot exist without its owner
	if _, err := s.userRepo.FindByID(ctx, userID); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			s.logger.Warn("⚠️ [NoteService] User not found", "user_id", userID)
		}
		return nil, err
	}

	if title == "" {
		s.logger.Warn("⚠️ [NoteService] Title is empty, substituting placeholder", "user_id", userID)
		title = EmptyTitlePlaceholder
	}
	if content == "" {
		s.logger.Warn("⚠️ [NoteService] Content is empty, substituting placeholder", "user_id", userID)
		content = EmptyContentPlaceholder
	}

	note := &models.Note{
		Title:   title,
		Content: content,
		UserID:  userID,
	}

	if err := s.noteRepo.Create(ctx, note); err != nil {
		s.logger.Error("❌ [NoteService] Failed to create note", "user_id", userID, "error", err)
		return nil, err
	}

	s.logger.Info("✅ [NoteService] Note created", "note_id", note.ID, "user_id", userID)
	return note, nil
}

func (s *noteService) Update(ctx context.Context, noteID uint, title, content string) (*models.Note, error) {
	note, err := s.noteRepo.FindByID(ctx, noteID)
	if err != nil {
		if errors.Is(err, repository.ErrNoteNotFound) {
			s.logger.Warn("⚠️ [NoteService] Note not found", "note_id", noteID)
		}
		return nil, err
	}

	note.Title = title
	note.Content = content

	if err := s.noteRepo.Update(ctx, note); err != nil {
		s.logger.Error("❌ [NoteService] Failed to update note", "note_id", noteID, "error", err)
		return nil, err
	}

	s.logger.Info("✅ [NoteService] Note updated", "note_id", noteID)
	return note, nil
}

func (s *noteService) ListForUser(ctx context.Context, userID uint) (string, []models.Note, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			s.logger.Warn("⚠️ [NoteService] User not found", "user_id", userID)
		}
		return "", nil, err
	}

	notes, err := s.noteRepo.FindByUserID(ctx, userID)
	if err != nil {
		s.logger.Error("❌ [NoteService] Failed to list notes", "user_id", userID, "error", err)
		return "", nil, err
	}

	s.logger.Info("📋 [NoteService] Retrieved notes for user", "user_id", userID, "count", len(notes))
	return user.Nickname, notes, nil
}

func (s *noteService) ListAll(ctx context.Context) ([]models.Note, error) {
	notes, err := s.noteRepo.FindAll(ctx)
	if err != nil {
		s.logger.Error("❌ [NoteService] Failed to list notes", "error", err)
		return nil, err
	}
	return notes, nil
}

func (s *noteService) Delete(ctx context.Context, noteID uint) error {
	if _, err := s.noteRepo.FindByID(ctx, noteID); err != nil {
		if errors.Is(err, repository.ErrNoteNotFound) {
			s.logger.Warn("⚠️ [NoteService] Note not found", "note_id", noteID)
		}
		return err
	}

	if err := s.noteRepo.Delete(ctx, noteID); err != nil {
		s.logger.Error("❌ [NoteService] Failed to delete note", "note_id", noteID, "error", err)
		return err
	}

	s.logger.Info("✅ [NoteService] Note deleted", "note_id", noteID)
	return nil
}
