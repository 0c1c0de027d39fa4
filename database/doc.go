// Package database holds parsed resource entries for querying.
//
// A database is built from pattern and value pairs:
//
//	db, err := database.New(
//		database.Definition{Pattern: "xmh*Foreground", Value: "chartreuse"},
//		database.Definition{Pattern: "xmh.toc.?.Foreground", Value: "plum"},
//	)
//
// Patterns use the grammar of the entry package. Values are uninterpreted
// text; typed access happens at query time through the Resource accessors.
//
// Definition order is preserved. Entries never merge or replace each other
// here, so a pattern may appear twice; the precedence matcher breaks exact
// ties in favor of the later definition, which gives duplicate patterns
// last-one-wins behavior without mutating the database.
package database
