package service

import (
	"math/rand"
	"sync"
	"time"

	"flashbot/internal/domain"
	"flashbot/internal/repository"
)

const (
	// PersonalWordProbability is the chance a round quizzes one of the
	// user's own words when they have any
	PersonalWordProbability = 0.3

	// DistractorCount is how many wrong options accompany the correct one
	DistractorCount = 3
)

// QuizService assembles quiz rounds from the vocabulary
type QuizService struct {
	wordRepo repository.WordRepository

	// rand.Rand is not safe for concurrent use; rounds for different
	// chats may be built in parallel
	mu  sync.Mutex
	rng *rand.Rand
}

// NewQuizService creates a quiz service with a time-seeded RNG
func NewQuizService(wordRepo repository.WordRepository) *QuizService {
	return NewQuizServiceWithRand(wordRepo, rand.New(rand.NewSource(time.Now().UnixNano())))
}

// NewQuizServiceWithRand creates a quiz service with the given RNG
func NewQuizServiceWithRand(wordRepo repository.WordRepository, rng *rand.Rand) *QuizService {
	return &QuizService{wordRepo: wordRepo, rng: rng}
}

// NewRound picks a target word and builds its option set.
// A personal word is preferred with PersonalWordProbability when the user
// has any; otherwise the round uses a shared word. Returns
// domain.ErrNoWordsAvailable when both vocabularies are empty.
func (s *QuizService) NewRound(userID int64) (*domain.Round, error) {
	shared, err := s.wordRepo.RandomSharedWord()
	if err != nil {
		return nil, err
	}

	personal, err := s.wordRepo.RandomPersonalWord(userID)
	if err != nil {
		return nil, err
	}

	target := shared
	if personal != nil && (shared == nil || s.roll() < PersonalWordProbability) {
		target = personal
	}
	if target == nil {
		return nil, domain.ErrNoWordsAvailable
	}

	distractors, err := s.wordRepo.RandomDistractors(target.TargetText, DistractorCount)
	if err != nil {
		return nil, err
	}

	options := append(distractors, target.TargetText)
	s.shuffle(options)

	return &domain.Round{Word: *target, Options: options}, nil
}

func (s *QuizService) roll() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Float64()
}

func (s *QuizService) shuffle(options []string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rng.Shuffle(len(options), func(i, j int) {
		options[i], options[j] = options[j], options[i]
	})
}
