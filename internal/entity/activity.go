package entity

// MaxRendered caps how many activities the ui ever shows, regardless of how
// many the upstream model returned.
const MaxRendered = 5

// Activity is one recommended event or venue. The server passes upstream
// records through leniently; this typed form is what the ui renders.
type Activity struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Time        string `json:"time"`
	Description string `json:"description"`
	Location    string `json:"location"`
	Distance    string `json:"distance"`
	Icon        string `json:"icon"`
}
