package model

// Item is one card on the board.
// Status names the zone that shows it; any string is allowed.
type Item struct {
	ID     string `json:"id"`
	Text   string `json:"text"`
	Status string `json:"status"`
}

const (
	StatusToday    = "today"
	StatusTomorrow = "tomorrow"
)

// WithStatus returns a copy of the item placed at status.
func (it Item) WithStatus(status string) Item {
	it.Status = status
	return it
}
