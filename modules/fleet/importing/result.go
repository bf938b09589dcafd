package importing

// RowError records one rejected row of the commit phase.
type RowError struct {
	Row     int    `json:"row"`
	Plate   string `json:"plate"`
	Message string `json:"message"`
}

// Result is the terminal tally of one commit. It is built one row at a time
// while the commit loop runs and never mutated afterwards. Warnings count
// rows that imported with warning-severity issues; the counter is independent
// of success/failure.
type Result struct {
	Success  int        `json:"success"`
	Failed   int        `json:"failed"`
	Warnings int        `json:"warnings"`
	Errors   []RowError `json:"errors"`
}
