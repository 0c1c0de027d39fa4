// Package match implements precedence matching of queries against a
// resource database.
//
// A query consists of a fully qualified name and an optional class of the
// same length. A database pattern matches when its components can consume
// every query position in order: a name component consumes a position
// whose name or class component equals it, "?" consumes any single
// position, and a loose binding lets the pattern skip positions.
//
// # Precedence
//
// Several entries can match the same query. The winner is decided per
// query position, left to right, with the first difference deciding:
//
//  1. An entry that consumes the position with a component (name, class,
//     or "?") beats an entry that skips it with a loose binding.
//  2. A name match beats a class match, which beats "?".
//  3. A position reached through a tight binding beats one reached
//     through a loose binding.
//
// For the query name "xmh.toc.cmd.activeForeground" with class
// "Xmh.Paned.Command.Foreground", the entry "xmh.toc*Command.Foreground"
// beats "xmh.toc*?.Foreground" (class beats wildcard at the third
// position) and both beat "*Foreground" (consumed beats skipped at the
// first position).
//
// Entries that match with identical specificity are broken in favor of
// the later definition.
//
// # Logging
//
// The package logs accepted candidates at debug level through a package
// logger, configurable with SetLogger. The default logger is a no-op.
package match
