package entry

import "strings"

// Binding describes how a component attaches to the one before it
type Binding uint8

const (
	// Tight requires the component to sit directly after the previous one
	Tight Binding = iota
	// Loose allows any number of components between this one and the previous one
	Loose
)

// String returns the textual form of the binding
func (b Binding) String() string {
	if b == Loose {
		return "*"
	}
	return "."
}

// Component is a single segment of a resource path
type Component struct {
	Name     string  // empty when Wildcard is set
	Binding  Binding // binding between this component and the one before it
	Wildcard bool    // single-component wildcard "?"
}

// Entry is a tokenized resource path
type Entry struct {
	components []Component
}

// NumComponents returns the number of components in the path
func (e *Entry) NumComponents() int {
	return len(e.components)
}

// Components returns the components in path order. The slice is shared
// with the entry and must not be modified.
func (e *Entry) Components() []Component {
	return e.components
}

// String renders the canonical form of the path. Collapsed binding runs
// stay collapsed, so the output may differ from the parsed input.
func (e *Entry) String() string {
	var b strings.Builder
	for i, c := range e.components {
		if i > 0 || c.Binding == Loose {
			b.WriteString(c.Binding.String())
		}
		if c.Wildcard {
			b.WriteByte('?')
		} else {
			b.WriteString(c.Name)
		}
	}
	return b.String()
}
