package entry

import "github.com/wippyai/xrm/errors"

// Parse tokenizes a database pattern. Patterns may carry loose bindings
// and single-component wildcards.
func Parse(s string) (*Entry, error) {
	return parse(s, false)
}

// ParseQuery tokenizes a fully qualified query path. Loose bindings and
// wildcard components are rejected.
func ParseQuery(s string) (*Entry, error) {
	return parse(s, true)
}

func parse(s string, query bool) (*Entry, error) {
	if s == "" {
		return nil, errors.InvalidPath(s, 0, "empty resource path")
	}

	var (
		components []Component
		binding    = Tight // binding carried into the next component
		start      = -1    // start offset of the name being scanned, -1 when none
		afterWild  = false // previous byte completed a wildcard component
	)

	flush := func(end int) {
		if start < 0 {
			return
		}
		components = append(components, Component{
			Name:    s[start:end],
			Binding: binding,
		})
		start = -1
		binding = Tight
	}

	for i := 0; i < len(s); i++ {
		switch c := s[i]; {
		case c == '.' || c == '*':
			if c == '*' && query {
				return nil, errors.InvalidPath(s, i, "loose binding in query")
			}
			flush(i)
			afterWild = false
			// runs of bindings collapse, any star makes the run loose
			if c == '*' {
				binding = Loose
			}

		case c == '?':
			if query {
				return nil, errors.InvalidPath(s, i, "wildcard component in query")
			}
			if start >= 0 || afterWild {
				return nil, errors.InvalidPath(s, i, "wildcard adjacent to component text")
			}
			components = append(components, Component{
				Binding:  binding,
				Wildcard: true,
			})
			binding = Tight
			afterWild = true

		case c == ':':
			return nil, errors.InvalidPath(s, i, "unexpected ':'")

		case c <= ' ' || c == 0x7f:
			return nil, errors.InvalidPath(s, i, "whitespace or control byte in component")

		default:
			if afterWild {
				return nil, errors.InvalidPath(s, i, "wildcard adjacent to component text")
			}
			if start < 0 {
				start = i
			}
		}
	}

	if start >= 0 {
		flush(len(s))
	} else if !afterWild {
		return nil, errors.InvalidPath(s, len(s), "path ends in a binding")
	}

	return &Entry{components: components}, nil
}
