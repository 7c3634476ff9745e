package models

// Entry is a manually created job application row.
type Entry struct {
	DateApplied string
	Company     string
	Position    string
	Status      string
	Notes       string
}

// Details holds the eight fields extracted from a job posting.
// Fields the model could not find are empty strings.
type Details struct {
	Company      string
	Title        string
	LocationType string
	Summary      string
	Skills       string
	Benefits     string
	Deadline     string
	Salary       string
}
