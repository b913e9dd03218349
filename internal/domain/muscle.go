package domain

// Muscle is one entry in the anatomy content catalog. The catalog is
// read-mostly: it is written by the seed tool and read by the app.
type Muscle struct {
	Slug      string   `json:"slug"`
	Name      string   `json:"name"`
	Group     string   `json:"group"`
	Origin    string   `json:"origin,omitempty"`
	Insertion string   `json:"insertion,omitempty"`
	Actions   []string `json:"actions,omitempty"`
	ModelURL  string   `json:"model_url,omitempty"`
	Summary   string   `json:"summary,omitempty"`
}
