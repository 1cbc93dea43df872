package office

import "strings"

// Option is an office offered for selection.
type Option struct {
	ID         int64
	Name       string
	ExternalID *string
	Hierarchy  string
}

// NameDecorated indents the office name by its depth in the hierarchy so a
// flat dropdown still reads as a tree: ".1." -> "Head", ".1.2." -> "....Branch".
func (o Option) NameDecorated() string {
	depth := strings.Count(strings.Trim(o.Hierarchy, "."), ".")
	return strings.Repeat("....", depth) + o.Name
}
