package service

import (
	"fmt"
	"testing"

	"flashbot/internal/domain"
	"flashbot/internal/testutil"

	"github.com/stretchr/testify/assert"
)

func TestParseWordPair(t *testing.T) {
	tests := []struct {
		name           string
		input          string
		expectedSource string
		expectedTarget string
		expectedError  bool
	}{
		{
			name:           "valid pair",
			input:          "кот - cat",
			expectedSource: "кот",
			expectedTarget: "cat",
		},
		{
			name:           "extra whitespace trimmed",
			input:          "  машина -   car  ",
			expectedSource: "машина",
			expectedTarget: "car",
		},
		{
			name:           "translation containing separator keeps the rest",
			input:          "тире - dash - hyphen",
			expectedSource: "тире",
			expectedTarget: "dash - hyphen",
		},
		{
			name:          "no separator",
			input:         "котcat",
			expectedError: true,
		},
		{
			name:          "empty target half",
			input:         "cat - ",
			expectedError: true,
		},
		{
			name:          "empty source half",
			input:         " - cat",
			expectedError: true,
		},
		{
			name:          "empty input",
			input:         "",
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			source, target, err := ParseWordPair(tt.input)

			if tt.expectedError {
				assert.ErrorIs(t, err, domain.ErrInvalidWordPair)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.expectedSource, source)
			assert.Equal(t, tt.expectedTarget, target)
		})
	}
}

func TestWordService_AddPersonalWord(t *testing.T) {
	tests := []struct {
		name          string
		userID        int64
		source        string
		target        string
		trimmedSource string
		trimmedTarget string
		expectedError bool
	}{
		{
			name:          "valid pair",
			userID:        123,
			source:        "кот",
			target:        "cat",
			trimmedSource: "кот",
			trimmedTarget: "cat",
		},
		{
			name:          "whitespace trimmed before insert",
			userID:        123,
			source:        " кот ",
			target:        " cat ",
			trimmedSource: "кот",
			trimmedTarget: "cat",
		},
		{
			name:          "empty source",
			userID:        123,
			source:        "  ",
			target:        "cat",
			expectedError: true,
		},
		{
			name:          "empty target",
			userID:        123,
			source:        "кот",
			target:        "",
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(testutil.MockWordRepository)

			if !tt.expectedError {
				mockRepo.On("InsertPersonalWord", tt.userID, tt.trimmedSource, tt.trimmedTarget).
					Return(int64(7), nil)
			}

			service := NewWordService(mockRepo)

			id, err := service.AddPersonalWord(tt.userID, tt.source, tt.target)

			if tt.expectedError {
				assert.ErrorIs(t, err, domain.ErrInvalidWordPair)
				mockRepo.AssertNotCalled(t, "InsertPersonalWord")
			} else {
				assert.NoError(t, err)
				assert.Equal(t, int64(7), id)
				mockRepo.AssertExpectations(t)
			}
		})
	}
}

func TestWordService_DeletePersonalWord(t *testing.T) {
	tests := []struct {
		name       string
		userID     int64
		wordID     int64
		mockResult bool
	}{
		{
			name:       "owned word deleted",
			userID:     123,
			wordID:     7,
			mockResult: true,
		},
		{
			name:       "foreign word reports false",
			userID:     999,
			wordID:     7,
			mockResult: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(testutil.MockWordRepository)
			mockRepo.On("DeletePersonalWord", tt.userID, tt.wordID).Return(tt.mockResult, nil)

			service := NewWordService(mockRepo)

			deleted, err := service.DeletePersonalWord(tt.userID, tt.wordID)

			assert.NoError(t, err)
			assert.Equal(t, tt.mockResult, deleted)
			mockRepo.AssertExpectations(t)
		})
	}
}

func TestWordService_ListPersonalWords(t *testing.T) {
	mockRepo := new(testutil.MockWordRepository)

	words := []domain.Word{
		*testutil.NewPersonalWord(9, 123, "машина", "car"),
		*testutil.NewPersonalWord(7, 123, "кот", "cat"),
	}
	mockRepo.On("ListPersonalWords", int64(123)).Return(words, nil)

	service := NewWordService(mockRepo)

	result, err := service.ListPersonalWords(123)

	assert.NoError(t, err)
	assert.Equal(t, words, result)
	mockRepo.AssertExpectations(t)
}

func TestWordService_ListPersonalWords_Error(t *testing.T) {
	mockRepo := new(testutil.MockWordRepository)
	mockRepo.On("ListPersonalWords", int64(123)).Return(nil, fmt.Errorf("db error"))

	service := NewWordService(mockRepo)

	result, err := service.ListPersonalWords(123)

	assert.Error(t, err)
	assert.Nil(t, result)
	mockRepo.AssertExpectations(t)
}
