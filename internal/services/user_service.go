package services

import (
	"context"
	"mime/multipart"

	"github.com/tnmai/schoolhub-api/internal/models"
	"github.com/tnmai/schoolhub-api/internal/repository"
	"github.com/tnmai/schoolhub-api/internal/storage"
)

// UserService handles account management. User rows themselves are not
// audit-tracked; only the six school entities are. Hard-deleting a user
// cascades their login history and nulls their audit references.
type UserService struct {
	repo             repository.UserRepository
	refreshTokenRepo repository.RefreshTokenRepository
	storage          *storage.LocalStorage
}

// NewUserService creates a new user service
func NewUserService(repo repository.UserRepository, rtRepo repository.RefreshTokenRepository, store *storage.LocalStorage) *UserService {
	return &UserService{
		repo:             repo,
		refreshTokenRepo: rtRepo,
		storage:          store,
	}
}

func (s *UserService) FindByID(ctx context.Context, id uint) (*models.User, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *UserService) List(ctx context.Context, query *repository.ListQuery) ([]models.User, int64, error) {
	return s.repo.List(ctx, query)
}

// Create registers a new account with a bcrypt-hashed password
func (s *UserService) Create(ctx context.Context, user *models.User, password string) error {
	hashed, err := HashPassword(password)
	if err != nil {
		return err
	}
	user.EncryptedPassword = hashed
	return s.repo.Create(ctx, user)
}

func (s *UserService) Update(ctx context.Context, user *models.User) error {
	existing, err := s.repo.FindByID(ctx, user.ID)
	if err != nil {
		return ErrNotFound
	}

	// Password and soft-delete state only change through their own flows
	user.EncryptedPassword = existing.EncryptedPassword
	user.DiscardedAt = existing.DiscardedAt
	if user.Role == "" {
		user.Role = existing.Role
	}
	if user.Status == "" {
		user.Status = existing.Status
	}
	if user.AvatarPath == nil {
		user.AvatarPath = existing.AvatarPath
	}

	return s.repo.Update(ctx, user)
}

// ChangePassword verifies the current password before setting a new one
func (s *UserService) ChangePassword(ctx context.Context, userID uint, currentPassword, newPassword string) error {
	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return ErrNotFound
	}

	if !VerifyPassword(currentPassword, user.EncryptedPassword) {
		return ErrInvalidCredentials
	}

	hashed, err := HashPassword(newPassword)
	if err != nil {
		return err
	}
	user.EncryptedPassword = hashed
	return s.repo.Update(ctx, user)
}

// SoftDelete marks the account discarded; sessions and audit rows stay
func (s *UserService) SoftDelete(ctx context.Context, id uint) error {
	if err := s.repo.SoftDelete(ctx, id); err != nil {
		return err
	}
	// A discarded account cannot keep refreshing tokens
	return s.refreshTokenRepo.DeleteByUser(ctx, id)
}

// Restore brings back a soft-deleted account
func (s *UserService) Restore(ctx context.Context, id uint) error {
	return s.repo.Restore(ctx, id)
}

// Delete removes the account permanently. The database cascades login
// history and nulls audit actor references.
func (s *UserService) Delete(ctx context.Context, id uint) error {
	return s.repo.Delete(ctx, id)
}

// UploadAvatar stores an avatar file and links it to the account
func (s *UserService) UploadAvatar(ctx context.Context, userID uint, file multipart.File, header *multipart.FileHeader) (string, error) {
	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return "", ErrNotFound
	}

	path, err := s.storage.Upload(file, header, "avatars")
	if err != nil {
		return "", err
	}

	user.AvatarPath = &path
	if err := s.repo.Update(ctx, user); err != nil {
		return "", err
	}
	return path, nil
}
