package domain

// Entry is the raw field bundle extracted for one report item before
// normalization. Authors keeps source order; absent fields stay empty.
type Entry struct {
	Title    string
	Authors  []string
	Date     string
	Journal  string
	Abstract string
}

// Record is the normalized output object. Tag order fixes the key order in
// the serialized JSON.
type Record struct {
	Title    string `json:"title"`
	Authors  string `json:"author(s)"`
	Year     string `json:"year"`
	Journal  string `json:"journal"`
	Abstract string `json:"abstract"`
}
