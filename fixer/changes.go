package fixer

// Change is a single rewritten line.
type Change struct {
	Line   int    `json:"line"` // 1-based
	Before string `json:"before"`
	After  string `json:"after"`
}
