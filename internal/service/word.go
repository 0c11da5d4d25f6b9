package service

import (
	"strings"

	"flashbot/internal/domain"
	"flashbot/internal/repository"
)

// PairSeparator splits add-word input into source and translation halves
const PairSeparator = " - "

// WordService handles personal vocabulary logic
type WordService struct {
	wordRepo repository.WordRepository
}

// NewWordService creates a new word service
func NewWordService(wordRepo repository.WordRepository) *WordService {
	return &WordService{wordRepo: wordRepo}
}

// ParseWordPair splits "source - target" input into trimmed halves.
// Returns domain.ErrInvalidWordPair when the separator is missing or
// either half is empty after trimming.
func ParseWordPair(text string) (string, string, error) {
	source, target, found := strings.Cut(text, PairSeparator)
	if !found {
		return "", "", domain.ErrInvalidWordPair
	}

	source = strings.TrimSpace(source)
	target = strings.TrimSpace(target)
	if source == "" || target == "" {
		return "", "", domain.ErrInvalidWordPair
	}

	return source, target, nil
}

// AddPersonalWord validates and persists a user-authored word pair
func (s *WordService) AddPersonalWord(userID int64, sourceText, targetText string) (int64, error) {
	sourceText = strings.TrimSpace(sourceText)
	targetText = strings.TrimSpace(targetText)
	if sourceText == "" || targetText == "" {
		return 0, domain.ErrInvalidWordPair
	}
	return s.wordRepo.InsertPersonalWord(userID, sourceText, targetText)
}

// DeletePersonalWord removes a word the user owns.
// A false result means nothing was deleted (unknown id or foreign owner).
func (s *WordService) DeletePersonalWord(userID, wordID int64) (bool, error) {
	return s.wordRepo.DeletePersonalWord(userID, wordID)
}

// ListPersonalWords returns the user's words, newest first
func (s *WordService) ListPersonalWords(userID int64) ([]domain.Word, error) {
	return s.wordRepo.ListPersonalWords(userID)
}
