package safety

// Helplines is the structured block returned with every crisis response.
type Helplines struct {
	// US line; call or text.
	Phone string `json:"phone"`
	Text  string `json:"text"`
	// Directory of lines worldwide.
	Global string `json:"global"`
}

const crisisMessage = "I'm really glad you told me. What you're feeling right now matters, " +
	"and you don't have to carry it alone. I'm not able to give you the support a person can, " +
	"but trained people are available right now and want to help. " +
	"If you are in immediate danger, please call your local emergency number. " +
	"Otherwise, please reach out to one of the helplines below — they are free, " +
	"confidential, and available 24/7. You deserve support."

// CrisisReply returns the fixed supportive message and helpline block.
// It is pure: no store lookup, no network call, so it can never fail because
// the completion service is down.
func CrisisReply() (string, Helplines) {
	return crisisMessage, Helplines{
		Phone:  "988 Suicide & Crisis Lifeline (call 988, US)",
		Text:   "Text HOME to 741741 (Crisis Text Line)",
		Global: "https://findahelpline.com",
	}
}
