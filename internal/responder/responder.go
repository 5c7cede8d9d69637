// Package responder maps a raw user utterance to a canned assistant
// reply by prioritized keyword matching. It is deterministic, has no
// side effects and does no I/O.
package responder

import (
	"fmt"
	"strings"

	"github.com/rujirapongsn2/ChatLibrary/internal/model"
)

type intent int

const (
	intentPython intent = iota
	intentJavaScript
	intentDataScience
	intentSearch
	intentStatus
	intentRecommend
)

type rule struct {
	intent   intent
	keywords []string
}

// rules are evaluated in this exact order and the first match wins.
// The order is load-bearing: several keyword sets can co-occur in one
// utterance ("recommend me a python book" must hit the python rule,
// not the recommend rule). Each rule lists both locales' keywords;
// matching is locale-independent, only the reply text follows the
// language argument.
var rules = []rule{
	{intentPython, []string{"python", "ไพธอน"}},
	{intentJavaScript, []string{"javascript", "จาวาสคริปต์"}},
	{intentDataScience, []string{"data science", "วิทยาการข้อมูล"}},
	{intentSearch, []string{"search", "find", "ค้นหา", "หา"}},
	{intentStatus, []string{"status", "borrowed", "my books", "สถานะ", "ยืม", "หนังสือของฉัน"}},
	{intentRecommend, []string{"recommend", "suggest", "แนะนำ"}},
}

// Respond classifies the utterance and returns the assistant reply for
// the given language. candidateBooks only influences the search branch,
// which picks between the results and no-results replies.
func Respond(utterance string, lang Language, candidateBooks []model.Book) string {
	r := responses[normalize(lang)]
	lower := strings.ToLower(utterance)

	for _, rule := range rules {
		if !matchesAny(lower, rule.keywords) {
			continue
		}
		switch rule.intent {
		case intentPython:
			return r.pythonSearch
		case intentJavaScript:
			return r.javascriptSearch
		case intentDataScience:
			return r.dataScience
		case intentSearch:
			if len(candidateBooks) > 0 {
				return r.search
			}
			return r.noResults
		case intentStatus:
			return r.status
		case intentRecommend:
			return r.recommend
		}
	}
	return r.defaultHelp
}

func matchesAny(lower string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// BorrowConfirmation renders the borrow-success message for a title.
func BorrowConfirmation(lang Language, title string) string {
	return fmt.Sprintf(responses[normalize(lang)].borrowSuccess, title)
}

// ReturnConfirmation renders the return-success message for a title.
func ReturnConfirmation(lang Language, title string) string {
	return fmt.Sprintf(responses[normalize(lang)].returnSuccess, title)
}
