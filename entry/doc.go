// Package entry tokenizes textual resource paths into components.
//
// A resource path names a position in a resource hierarchy, one component
// per level, joined by bindings:
//
//	xmh.toc.messagefunctions.incorporate.activeForeground
//
// # Grammar
//
// Two binding characters join components. A tight binding "." requires the
// components to be adjacent, a loose binding "*" lets any number of levels
// sit between them. Runs of binding characters collapse into a single
// binding, and a run containing at least one star is loose:
//
//	a.b     tight
//	a*b     loose
//	a.*.b   loose (collapsed run)
//	a..b    tight (collapsed run)
//
// A component is either a name or the single-component wildcard "?". Names
// are uninterpreted bytes, excluding the binding characters, "?", ":", and
// whitespace or control bytes. A leading loose binding applies to the first
// component, and a path must end in a component.
//
// # Parse Modes
//
// Parse accepts the full pattern grammar and is used for database entries:
//
//	e, err := entry.Parse("*Command.Foreground")
//
// ParseQuery accepts only fully qualified paths. Loose bindings and
// wildcard components are rejected, which is what query names and classes
// require:
//
//	q, err := entry.ParseQuery("xmh.toc.cmd.foreground")
//
// Both return *errors.Error values with Kind KindInvalidPath carrying the
// byte offset of the offending character.
//
// # Canonical Form
//
// Entry.String renders the collapsed canonical form, so Parse followed by
// String normalizes binding runs:
//
//	e, _ := entry.Parse("a.*.b")
//	e.String() // "a*b"
package entry
