package entity

// Extension is one script payload discovered in the extensions directory.
type Extension struct {
	Name   string
	Path   string
	Source string
}
