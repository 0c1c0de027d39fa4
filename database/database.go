package database

import (
	"github.com/wippyai/xrm/entry"
	"github.com/wippyai/xrm/errors"
)

// Definition is the textual form of a database entry
type Definition struct {
	Pattern string // resource pattern, may use loose bindings and wildcards
	Value   string // uninterpreted value text
}

// Entry is a parsed database entry
type Entry struct {
	pattern *entry.Entry
	value   string
}

// Pattern returns the tokenized resource pattern
func (e Entry) Pattern() *entry.Entry {
	return e.pattern
}

// Value returns the entry value
func (e Entry) Value() string {
	return e.value
}

// Database is an ordered collection of resource entries. Definition order
// is preserved and significant: when two entries match a query equally
// well, the later one wins.
type Database struct {
	entries []Entry
}

// New builds a database from definitions. Every pattern must parse, and
// duplicate patterns are retained.
func New(defs ...Definition) (*Database, error) {
	db := &Database{
		entries: make([]Entry, 0, len(defs)),
	}
	for i, d := range defs {
		e, err := entry.Parse(d.Pattern)
		if err != nil {
			return nil, errors.New(errors.PhaseParse, errors.KindInvalidPath).
				Input(d.Pattern).
				Detail("definition %d does not parse", i).
				Cause(err).
				Build()
		}
		db.entries = append(db.entries, Entry{
			pattern: e,
			value:   d.Value,
		})
	}
	return db, nil
}

// Len returns the number of entries. A nil database has zero entries.
func (db *Database) Len() int {
	if db == nil {
		return 0
	}
	return len(db.entries)
}

// Each calls fn for every entry in definition order until fn returns false
func (db *Database) Each(fn func(Entry) bool) {
	if db == nil {
		return
	}
	for _, e := range db.entries {
		if !fn(e) {
			return
		}
	}
}
