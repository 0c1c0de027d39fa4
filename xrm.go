package xrm

import (
	"github.com/wippyai/xrm/database"
	"github.com/wippyai/xrm/entry"
	"github.com/wippyai/xrm/match"
)

// Tokenizer turns query text into a tokenized resource path
type Tokenizer interface {
	Tokenize(s string) (*entry.Entry, error)
}

// Matcher selects the best database entry for a tokenized query. The
// class entry may be nil and otherwise has the same component count as
// the name entry.
type Matcher interface {
	Match(db *database.Database, name, class *entry.Entry) (*Resource, error)
}

// queryTokenizer is the default Tokenizer. It accepts only fully
// qualified paths.
type queryTokenizer struct{}

func (queryTokenizer) Tokenize(s string) (*entry.Entry, error) {
	return entry.ParseQuery(s)
}

// precedenceMatcher is the default Matcher, applying the standard
// precedence rules of the match package.
type precedenceMatcher struct{}

func (precedenceMatcher) Match(db *database.Database, name, class *entry.Entry) (*Resource, error) {
	value, err := match.Best(db, name, class)
	if err != nil {
		return nil, err
	}
	return NewResource(value), nil
}
