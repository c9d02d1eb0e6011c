package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/notevault/notevault/internal/database/models"
	"github.com/notevault/notevault/internal/database/repository"
	"github.com/notevault/notevault/internal/hasher"
)

// UserService defines the interface for account lifecycle business logic
type UserService interface {
	Register(ctx context.Context, nickname, email, password string) (*models.User, error)
	GetWithNotes(ctx context.Context, id uint) (*models.User, []models.Note, error)
	ListAll(ctx context.Context) ([]models.User, error)
	Update(ctx context.Context, id uint, nickname, email, password string) (*models.User, error)
	Delete(ctx context.Context, id uint, email, password string) error
}

type userService struct {
	userRepo repository.UserRepository
	noteRepo repository.NoteRepository
	hasher   hasher.Hasher
	logger   *slog.Logger
}

// NewUserService creates a new user service instance
func NewUserService(
	userRepo repository.UserRepository,
	noteRepo repository.NoteRepository,
	hasher hasher.Hasher,
	logger *slog.Logger,
) UserService {
	return &userService{
		userRepo: userRepo,
		noteRepo: noteRepo,
		hasher:   hasher,
		logger:   logger,
	}
}

func (s *userService) Register(ctx context.Context, nickname, email, password string) (*models.User, error) {
	s.logger.Info("📝 [UserService] Registration attempt", "email", email, "nickname", nickname)

	// Check if email already exists
	existingUser, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil && !errors.Is(err, repository.ErrUserNotFound) {
		s.logger.Error("❌ [UserService] Database error", "error", err)
		return nil, err
	}

	if existingUser != nil {
		s.logger.Warn("⚠️ [UserService] Email already registered", "email", email)
		return nil, ErrEmailAlreadyExists
	}

	// Hash password
	digest, err := s.hasher.Hash(password)
	if err != nil {
		if errors.Is(err, hasher.ErrEmptyInput) {
			s.logger.Warn("⚠️ [UserService] Registration with missing fields")
			return nil, ErrMissingFields
		}
		s.logger.Error("❌ [UserService] Failed to hash password", "error", err)
		return nil, err
	}

	// Create user; the unique indexes catch concurrent registrations with the
	// same email or nickname.
	user := &models.User{
		Nickname:       nickname,
		Email:          email,
		PasswordHashed: digest,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		s.logger.Error("❌ [UserService] Failed to create user", "error", err)
		return nil, err
	}

	s.logger.Info("✅ [UserService] User registered successfully", "user_id", user.ID)
	return user, nil
}

func (s *userService) GetWithNotes(ctx context.Context, id uint) (*models.User, []models.Note, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			s.logger.Warn("⚠️ [UserService] User not found", "user_id", id)
		}
		return nil, nil, err
	}

	notes, err := s.noteRepo.FindByUserID(ctx, id)
	if err != nil {
		s.logger.Error("❌ [UserService] Failed to load notes", "user_id", id, "error", err)
		return nil, nil, err
	}

	return user, notes, nil
}

func (s *userService) ListAll(ctx context.Context) ([]models.User, error) {
	return s.userRepo.FindAll(ctx)
}

func (s *userService) Update(ctx context.Context, id uint, nickname, email, password string) (*models.User, error) {
	s.logger.Info("✏️ [UserService] Update attempt", "user_id", id)

	user, err := s.verifyOwnership(ctx, id, email, password)
	if err != nil {
		return nil, err
	}

	digest, err := s.hasher.Hash(password)
	if err != nil {
		s.logger.Error("❌ [UserService] Failed to rehash password", "user_id", id, "error", err)
		return nil, err
	}

	user.Nickname = nickname
	user.PasswordHashed = digest

	if err := s.userRepo.Update(ctx, user); err != nil {
		s.logger.Error("❌ [UserService] Failed to update user", "user_id", id, "error", err)
		return nil, err
	}

	s.logger.Info("✅ [UserService] User updated", "user_id", id)
	return user, nil
}

func (s *userService) Delete(ctx context.Context, id uint, email, password string) error {
	s.logger.Info("🗑️ [UserService] Delete attempt", "user_id", id)

	if _, err := s.verifyOwnership(ctx, id, email, password); err != nil {
		return err
	}

	if err := s.userRepo.DeleteWithNotes(ctx, id); err != nil {
		s.logger.Error("❌ [UserService] Failed to delete user", "user_id", id, "error", err)
		return err
	}

	s.logger.Info("✅ [UserService] User and owned notes deleted", "user_id", id)
	return nil
}

// verifyOwnership gates mutations: the caller must resupply the account email
// and the current password. There is no session model; the email match is the
// only ownership check.
func (s *userService) verifyOwnership(ctx context.Context, id uint, email, password string) (*models.User, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			s.logger.Warn("⚠️ [UserService] User not found", "user_id", id)
		}
		return nil, err
	}

	if user.Email != email {
		s.logger.Warn("⚠️ [UserService] Email does not match stored account", "user_id", id)
		return nil, ErrEmailMismatch
	}

	ok, err := s.hasher.Verify(password, user.PasswordHashed)
	if err != nil {
		if errors.Is(err, hasher.ErrEmptyInput) {
			return nil, ErrMissingCredentials
		}
		s.logger.Error("❌ [UserService] Password verification failed", "user_id", id, "error", err)
		return nil, err
	}
	if !ok {
		s.logger.Warn("⚠️ [UserService] Invalid password", "user_id", id)
		return nil, ErrInvalidPassword
	}

	return user, nil
}

// Service errors
var (
	ErrEmailAlreadyExists = errors.New("email already registered")
	ErrMissingFields      = errors.New("nickname, email and password must be filled")
	ErrEmailMismatch      = errors.New("email does not match")
	ErrMissingCredentials = errors.New("credentials are missing")
	ErrInvalidPassword    = errors.New("password incorrect")
)
