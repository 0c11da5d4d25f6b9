package repository

import (
	"flashbot/internal/domain"
)

// UserRepository defines user data operations
type UserRepository interface {
	GetOrCreate(platformID int64, username, displayName string) (int64, error)
}

// WordRepository defines vocabulary data operations
type WordRepository interface {
	RandomSharedWord() (*domain.Word, error)
	RandomPersonalWord(userID int64) (*domain.Word, error)
	RandomDistractors(exclude string, limit int) ([]string, error)
	InsertPersonalWord(userID int64, sourceText, targetText string) (int64, error)
	DeletePersonalWord(userID, wordID int64) (bool, error)
	ListPersonalWords(userID int64) ([]domain.Word, error)
}
