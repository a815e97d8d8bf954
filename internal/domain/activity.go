package domain

// Activity is an entry in the wellness activities catalog.
type Activity struct {
	ID          string
	Title       string
	Description string
	Category    string
	Link        string
}

// SuggestedAction is the affordance attached to a chat reply when the reply
// mentions an activity. It is a hint for the client to render, not a claim
// that the activity is relevant.
type SuggestedAction struct {
	Label string `json:"label"`
	Link  string `json:"link"`
}
