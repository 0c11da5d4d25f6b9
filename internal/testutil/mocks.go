package testutil

import (
	"flashbot/internal/domain"

	"github.com/stretchr/testify/mock"
)

// MockUserRepository is a mock for repository.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) GetOrCreate(platformID int64, username, displayName string) (int64, error) {
	args := m.Called(platformID, username, displayName)
	return args.Get(0).(int64), args.Error(1)
}

// MockWordRepository is a mock for repository.WordRepository
type MockWordRepository struct {
	mock.Mock
}

func (m *MockWordRepository) RandomSharedWord() (*domain.Word, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Word), args.Error(1)
}

func (m *MockWordRepository) RandomPersonalWord(userID int64) (*domain.Word, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Word), args.Error(1)
}

func (m *MockWordRepository) RandomDistractors(exclude string, limit int) ([]string, error) {
	args := m.Called(exclude, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockWordRepository) InsertPersonalWord(userID int64, sourceText, targetText string) (int64, error) {
	args := m.Called(userID, sourceText, targetText)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockWordRepository) DeletePersonalWord(userID, wordID int64) (bool, error) {
	args := m.Called(userID, wordID)
	return args.Bool(0), args.Error(1)
}

func (m *MockWordRepository) ListPersonalWords(userID int64) ([]domain.Word, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Word), args.Error(1)
}

// MockUserService is a mock for dialog.UserService
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) GetOrCreateUser(platformID int64, username, displayName string) (int64, error) {
	args := m.Called(platformID, username, displayName)
	return args.Get(0).(int64), args.Error(1)
}

// MockQuizService is a mock for dialog.QuizService
type MockQuizService struct {
	mock.Mock
}

func (m *MockQuizService) NewRound(userID int64) (*domain.Round, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Round), args.Error(1)
}

// MockWordService is a mock for dialog.WordService
type MockWordService struct {
	mock.Mock
}

func (m *MockWordService) AddPersonalWord(userID int64, sourceText, targetText string) (int64, error) {
	args := m.Called(userID, sourceText, targetText)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockWordService) DeletePersonalWord(userID, wordID int64) (bool, error) {
	args := m.Called(userID, wordID)
	return args.Bool(0), args.Error(1)
}

func (m *MockWordService) ListPersonalWords(userID int64) ([]domain.Word, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Word), args.Error(1)
}
