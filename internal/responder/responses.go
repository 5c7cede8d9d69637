package responder

// Language selects the assistant's reply locale.
type Language string

const (
	// LanguageEN is the primary locale.
	LanguageEN Language = "en"
	// LanguageTH is the secondary locale.
	LanguageTH Language = "th"
)

// normalize falls back to the primary locale for unknown values.
func normalize(lang Language) Language {
	if lang == LanguageTH {
		return LanguageTH
	}
	return LanguageEN
}

// responseSet holds the static reply strings for one locale. Only the
// search branch varies with the candidate list (results vs no results);
// everything else is fixed text.
type responseSet struct {
	search           string
	status           string
	recommend        string
	pythonSearch     string
	javascriptSearch string
	dataScience      string
	noResults        string
	defaultHelp      string
	borrowSuccess    string
	returnSuccess    string
}

var responses = map[Language]responseSet{
	LanguageEN: {
		search:           "I found several books matching your search. Here are the results:",
		status:           "Here are your currently borrowed books:",
		recommend:        "Based on your reading history, I recommend these new arrivals:",
		pythonSearch:     "I found several Python programming books for you!",
		javascriptSearch: "Here are some great JavaScript books available:",
		dataScience:      "I found some excellent data science books for you:",
		noResults:        "I couldn't find any books matching your search. Would you like to try a different search term?",
		defaultHelp:      "I understand you're looking for library assistance. How can I help you today? You can ask me to search for books, check your borrowing status, or get recommendations.",
		borrowSuccess:    "Great! I've successfully borrowed %q for you. The book is due in 14 days. You can pick it up from the circulation desk with your student ID.",
		returnSuccess:    "Perfect! %q has been returned successfully. Thank you for using our library services!",
	},
	LanguageTH: {
		search:           "ฉันพบหนังสือที่ตรงกับการค้นหาของคุณ นี่คือผลลัพธ์:",
		status:           "นี่คือหนังสือที่คุณยืมอยู่ในปัจจุบัน:",
		recommend:        "จากประวัติการอ่านของคุณ ฉันแนะนำหนังสือใหม่เหล่านี้:",
		pythonSearch:     "ฉันพบหนังสือเขียนโปรแกรม Python หลายเล่มให้คุณ!",
		javascriptSearch: "นี่คือหนังสือ JavaScript ที่ดีที่มีให้:",
		dataScience:      "ฉันพบหนังสือวิทยาการข้อมูลที่ยอดเยี่ยมให้คุณ:",
		noResults:        "ฉันไม่พบหนังสือที่ตรงกับการค้นหาของคุณ คุณต้องการลองคำค้นหาอื่นไหม?",
		defaultHelp:      "ฉันเข้าใจว่าคุณต้องการความช่วยเหลือเกี่ยวกับห้องสมุด วันนี้ฉันช่วยอะไรคุณได้บ้าง? คุณสามารถขอให้ฉันค้นหาหนังสือ ตรวจสอบสถานะการยืม หรือขอคำแนะนำได้",
		borrowSuccess:    "ยอดเยี่ยม! ฉันยืมหนังสือ %q ให้คุณเรียบร้อยแล้ว หนังสือครบกำหนดใน 14 วัน คุณสามารถไปรับที่เคาน์เตอร์ด้วยบัตรนักศึกษา",
		returnSuccess:    "สมบูรณ์แบบ! %q ได้ถูกคืนเรียบร้อยแล้ว ขอบคุณที่ใช้บริการห้องสมุดของเรา!",
	},
}
