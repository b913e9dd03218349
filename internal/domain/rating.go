package domain

// Rating aggregates votes for one (item, group) pair using an
// incremental mean. No event history is kept; Votes holds only the
// latest value per rater so re-rates can be treated as corrections
// instead of new votes.
type Rating struct {
	ItemID  string         `json:"item_id"`
	GroupID string         `json:"group_id"`
	Average float64        `json:"average"`
	Count   int            `json:"count"`
	Votes   map[string]int `json:"votes,omitempty"`
}

// NewRating creates an empty aggregate for an (item, group) pair.
// Average is meaningless until Count > 0.
func NewRating(itemID, groupID string) *Rating {
	return &Rating{
		ItemID:  itemID,
		GroupID: groupID,
		Votes:   make(map[string]int),
	}
}

// Rate folds a rater's value into the aggregate. A first-time rater is
// a new vote; a repeat rater is a correction that replaces their
// previous value without changing the count. After any sequence of
// calls, Average equals the arithmetic mean of the latest value from
// each distinct rater.
func (r *Rating) Rate(raterID string, value int) {
	if r.Votes == nil {
		r.Votes = make(map[string]int)
	}

	old, rated := r.Votes[raterID]
	switch {
	case r.Count == 0:
		r.Average = float64(value)
		r.Count = 1
	case !rated:
		r.Average = (r.Average*float64(r.Count) + float64(value)) / float64(r.Count+1)
		r.Count++
	default:
		r.Average = (r.Average*float64(r.Count) - float64(old) + float64(value)) / float64(r.Count)
	}

	r.Votes[raterID] = value
}

// VoteOf returns the rater's latest value, or nil if they never rated.
func (r *Rating) VoteOf(raterID string) *int {
	if r.Votes == nil {
		return nil
	}
	if v, ok := r.Votes[raterID]; ok {
		return &v
	}
	return nil
}

// RatingSummary is the read view of an aggregate for one viewer:
// the shared mean and count plus that viewer's own vote.
type RatingSummary struct {
	ItemID     string  `json:"item_id"`
	GroupID    string  `json:"group_id"`
	Average    float64 `json:"average"`
	Count      int     `json:"count"`
	UserRating *int    `json:"user_rating,omitempty"`
}

// SummaryFor builds the read view of this aggregate for the given viewer.
func (r *Rating) SummaryFor(viewerID string) RatingSummary {
	return RatingSummary{
		ItemID:     r.ItemID,
		GroupID:    r.GroupID,
		Average:    r.Average,
		Count:      r.Count,
		UserRating: r.VoteOf(viewerID),
	}
}
