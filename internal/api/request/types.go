package request

// GeneratePuzzleRequest is the body for POST /api/v1/puzzles
type GeneratePuzzleRequest struct {
	Width  int      `json:"width"`
	Height int      `json:"height"`
	Words  []string `json:"words"`

	// Mode is "suchsel" (default) or "crossword"
	Mode       string `json:"mode,omitempty"`
	Contiguous bool   `json:"contiguous,omitempty"`

	// Directions maps direction tokens (lr, rl, tb, bt, dbr, dtr, dbl,
	// dtl) to relative weights; omitted means all eight, equally likely
	Directions map[string]float64 `json:"directions,omitempty"`

	// Fill defaults to true when omitted
	Fill    *bool  `json:"fill,omitempty"`
	Profile string `json:"profile,omitempty"`

	// Seed makes the run reproducible; omitted means time-seeded
	Seed *int64 `json:"seed,omitempty"`

	PlaceAttempts    int `json:"place_attempts,omitempty"`
	CreationAttempts int `json:"creation_attempts,omitempty"`
}
