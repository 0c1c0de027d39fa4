package xrm

import (
	"github.com/wippyai/xrm/database"
	"github.com/wippyai/xrm/entry"
	"github.com/wippyai/xrm/errors"
)

// Resolver executes resource queries against a database
type Resolver struct {
	tokenizer Tokenizer
	matcher   Matcher
}

// NewResolver creates a resolver with the default tokenizer and matcher
func NewResolver() *Resolver {
	return &Resolver{
		tokenizer: queryTokenizer{},
		matcher:   precedenceMatcher{},
	}
}

// WithTokenizer replaces the query tokenizer
func (r *Resolver) WithTokenizer(t Tokenizer) *Resolver {
	r.tokenizer = t
	return r
}

// WithMatcher replaces the precedence matcher
func (r *Resolver) WithMatcher(m Matcher) *Resolver {
	r.matcher = m
	return r
}

// Resolve looks up the resource named by the fully qualified name and
// optional class. An empty class string means the query has no class.
//
// Checks run in a fixed order: an absent or empty database fails before
// the name is even tokenized, then the name must tokenize, then the class
// when present, and a present class must have as many components as the
// name. Only then does matching run. Matcher errors pass through
// untouched, so a failed lookup surfaces as an error of kind KindNoMatch.
func (r *Resolver) Resolve(db *database.Database, name, class string) (*Resource, error) {
	if db.Len() == 0 {
		return nil, errors.NoDatabase()
	}

	nameEntry, err := r.tokenizer.Tokenize(name)
	if err != nil {
		return nil, errors.InvalidName(name, err)
	}

	var classEntry *entry.Entry
	if class != "" {
		classEntry, err = r.tokenizer.Tokenize(class)
		if err != nil {
			return nil, errors.InvalidClass(class, err)
		}
		if classEntry.NumComponents() != nameEntry.NumComponents() {
			return nil, errors.ComponentMismatch(name, class,
				nameEntry.NumComponents(), classEntry.NumComponents())
		}
	}

	return r.matcher.Match(db, nameEntry, classEntry)
}

// defaultResolver serves the package-level Resolve
var defaultResolver = NewResolver()

// Resolve runs a query with the default resolver
func Resolve(db *database.Database, name, class string) (*Resource, error) {
	return defaultResolver.Resolve(db, name, class)
}
