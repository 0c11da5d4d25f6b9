package service

import (
	"flashbot/internal/repository"
)

// UserService handles lazy user registration
type UserService struct {
	userRepo repository.UserRepository
}

// NewUserService creates a new user service
func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// GetOrCreateUser resolves a platform identity to an internal user id,
// creating the user on first interaction
func (s *UserService) GetOrCreateUser(platformID int64, username, displayName string) (int64, error) {
	return s.userRepo.GetOrCreate(platformID, username, displayName)
}
