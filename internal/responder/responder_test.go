package responder

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rujirapongsn2/ChatLibrary/internal/model"
)

func TestRespond_BranchPriority(t *testing.T) {
	someBooks := []model.Book{{ID: 1, Title: "Python Crash Course"}}

	tests := []struct {
		name      string
		utterance string
		lang      Language
		books     []model.Book
		expected  string
	}{
		{
			name:      "python keyword",
			utterance: "Do you have any Python books?",
			lang:      LanguageEN,
			expected:  responses[LanguageEN].pythonSearch,
		},
		{
			name:      "python wins over recommend",
			utterance: "Can you recommend me a python book?",
			lang:      LanguageEN,
			expected:  responses[LanguageEN].pythonSearch,
		},
		{
			name:      "python wins over search",
			utterance: "search for python",
			lang:      LanguageEN,
			expected:  responses[LanguageEN].pythonSearch,
		},
		{
			name:      "javascript keyword",
			utterance: "anything about JavaScript?",
			lang:      LanguageEN,
			expected:  responses[LanguageEN].javascriptSearch,
		},
		{
			name:      "data science wins over search",
			utterance: "find data science titles",
			lang:      LanguageEN,
			expected:  responses[LanguageEN].dataScience,
		},
		{
			name:      "search with results",
			utterance: "find me something good",
			lang:      LanguageEN,
			books:     someBooks,
			expected:  responses[LanguageEN].search,
		},
		{
			name:      "search without results",
			utterance: "search for underwater basket weaving",
			lang:      LanguageEN,
			expected:  responses[LanguageEN].noResults,
		},
		{
			name:      "status keyword",
			utterance: "what is my borrowing status?",
			lang:      LanguageEN,
			expected:  responses[LanguageEN].status,
		},
		{
			name:      "my books phrase",
			utterance: "show me my books",
			lang:      LanguageEN,
			expected:  responses[LanguageEN].status,
		},
		{
			name:      "recommend keyword",
			utterance: "can you suggest something?",
			lang:      LanguageEN,
			expected:  responses[LanguageEN].recommend,
		},
		{
			name:      "no keyword falls through to default",
			utterance: "hello there",
			lang:      LanguageEN,
			expected:  responses[LanguageEN].defaultHelp,
		},
		{
			name:      "thai python keyword with thai reply",
			utterance: "มีหนังสือไพธอนไหม",
			lang:      LanguageTH,
			expected:  responses[LanguageTH].pythonSearch,
		},
		{
			name:      "thai search keyword without results",
			utterance: "ค้นหาหนังสือประวัติศาสตร์",
			lang:      LanguageTH,
			expected:  responses[LanguageTH].noResults,
		},
		{
			name:      "thai status keyword",
			utterance: "ขอดูสถานะหน่อย",
			lang:      LanguageTH,
			expected:  responses[LanguageTH].status,
		},
		{
			name:      "english keyword still matches under thai locale",
			utterance: "python please",
			lang:      LanguageTH,
			expected:  responses[LanguageTH].pythonSearch,
		},
		{
			name:      "unknown language falls back to english",
			utterance: "hello there",
			lang:      Language("fr"),
			expected:  responses[LanguageEN].defaultHelp,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Respond(tt.utterance, tt.lang, tt.books)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestRespond_CaseInsensitive(t *testing.T) {
	assert.Equal(t, responses[LanguageEN].pythonSearch, Respond("PYTHON BOOKS", LanguageEN, nil))
	assert.Equal(t, responses[LanguageEN].javascriptSearch, Respond("JavaScript", LanguageEN, nil))
}

func TestBorrowConfirmation(t *testing.T) {
	got := BorrowConfirmation(LanguageEN, "Learning Python")
	assert.Contains(t, got, `"Learning Python"`)
	assert.Contains(t, got, "14 days")

	gotTH := BorrowConfirmation(LanguageTH, "Learning Python")
	assert.Contains(t, gotTH, `"Learning Python"`)
	assert.NotEqual(t, got, gotTH)
}

func TestReturnConfirmation(t *testing.T) {
	got := ReturnConfirmation(LanguageEN, "Learning Python")
	assert.Contains(t, got, `"Learning Python"`)
	assert.Contains(t, got, "returned successfully")
}
