package handler

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildMarkup_RemovesKeyboardWithoutOptions(t *testing.T) {
	markup := buildMarkup(nil)

	assert.True(t, markup.RemoveKeyboard)
	assert.Empty(t, markup.ReplyKeyboard)
}

func TestBuildMarkup_TwoButtonsPerRow(t *testing.T) {
	tests := []struct {
		name         string
		options      []string
		expectedRows [][]string
	}{
		{
			name:         "even count",
			options:      []string{"red", "cat", "blue", "house"},
			expectedRows: [][]string{{"red", "cat"}, {"blue", "house"}},
		},
		{
			name:         "odd count leaves short last row",
			options:      []string{"red", "cat", "blue"},
			expectedRows: [][]string{{"red", "cat"}, {"blue"}},
		},
		{
			name:         "single option",
			options:      []string{"red"},
			expectedRows: [][]string{{"red"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			markup := buildMarkup(tt.options)

			assert.True(t, markup.ResizeKeyboard)
			assert.False(t, markup.RemoveKeyboard)
			assert.Len(t, markup.ReplyKeyboard, len(tt.expectedRows))

			for i, expectedRow := range tt.expectedRows {
				assert.Len(t, markup.ReplyKeyboard[i], len(expectedRow))
				for j, label := range expectedRow {
					assert.Equal(t, label, markup.ReplyKeyboard[i][j].Text)
				}
			}
		})
	}
}
