package testutil

import (
	"time"

	"flashbot/internal/domain"

	"go.uber.org/zap"
)

// NewTestLogger creates a no-op logger for tests
func NewTestLogger() *zap.Logger {
	return zap.NewNop()
}

// NewSharedWord creates a test shared word
func NewSharedWord(id int64, source, target string) *domain.Word {
	return &domain.Word{
		ID:         id,
		SourceText: source,
		TargetText: target,
		Origin:     domain.OriginShared,
		CreatedAt:  time.Now(),
	}
}

// NewPersonalWord creates a test personal word
func NewPersonalWord(id, userID int64, source, target string) *domain.Word {
	return &domain.Word{
		ID:         id,
		UserID:     userID,
		SourceText: source,
		TargetText: target,
		Origin:     domain.OriginPersonal,
		CreatedAt:  time.Now(),
	}
}
