package models

// ContentSnapshot is the full state of the four content tables, rows ordered
// by ascending id. It is the unit of exchange between the content store and
// the backup engine; join requests are deliberately not part of it.
type ContentSnapshot struct {
	Projects []Project `json:"projects"`
	Events   []Event   `json:"events"`
	News     []News    `json:"news"`
	Blogs    []Blog    `json:"blogs"`
}

// Counts reports rows per table, keyed by table name.
func (s ContentSnapshot) Counts() map[string]int {
	return map[string]int{
		"projects": len(s.Projects),
		"events":   len(s.Events),
		"news":     len(s.News),
		"blogs":    len(s.Blogs),
	}
}
