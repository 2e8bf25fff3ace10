package information

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testTime() time.Time {
	return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
}

func TestNewFAQ(t *testing.T) {
	f, err := NewFAQ("How do I apply?", "Use the application form.", LanguageEnglish, 1)

	require.NoError(t, err)
	assert.Equal(t, "How do I apply?", f.Question())
	assert.Equal(t, 1, f.SortOrder())
	assert.True(t, f.IsActive())
}

func TestNewFAQ_Invalid(t *testing.T) {
	tests := []struct {
		name     string
		question string
		answer   string
		language Language
	}{
		{name: "missing question", question: "", answer: "An answer.", language: LanguageEnglish},
		{name: "missing answer", question: "A question?", answer: "", language: LanguageEnglish},
		{name: "invalid language", question: "A question?", answer: "An answer.", language: "de"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewFAQ(tt.question, tt.answer, tt.language, 0)
			assert.Error(t, err)
		})
	}
}

func TestReconstructFAQ_Inactive(t *testing.T) {
	f, err := ReconstructFAQ(4, "Old question?", "Old answer.", LanguageArabic, 9, false, testTime(), testTime())

	require.NoError(t, err)
	assert.False(t, f.IsActive())
}
