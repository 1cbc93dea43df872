package codevalue

// Value is one entry of a code, e.g. a group role.
type Value struct {
	ID       int64
	Name     string
	Position int
}
