// Package xrm provides X resource manager style queries over a resource
// database.
//
// A database holds pattern and value pairs. Queries name a single spot in
// a resource hierarchy with a fully qualified name, and optionally a
// class, and receive the value of the most specific matching entry with
// typed access to it.
//
// # Architecture Overview
//
// The library is organized into several packages with distinct responsibilities:
//
//	xrm/             Root package with the Resolver and Resource query surface
//	├── entry/       Resource path tokenizer
//	├── database/    Ordered storage for parsed entries
//	├── match/       Precedence matching engine
//	├── cache/       Read-through query cache backed by bigcache
//	├── errors/      Structured error types
//	└── cmd/xrmq/    Command line query tool
//
// # Quick Start
//
// Build a database and query it:
//
//	db, err := database.New(
//	    database.Definition{Pattern: "xterm*background", Value: "grey10"},
//	    database.Definition{Pattern: "*Foreground", Value: "white"},
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	res, err := xrm.Resolve(db, "xterm.mainWindow.background", "XTerm.Window.Background")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer res.Close()
//
//	fmt.Println(res.Value()) // "grey10"
//
// # Queries
//
// A query consists of a fully qualified resource name and an optional
// class of the same length. Neither may contain loose bindings or
// wildcards; those belong to database patterns. Passing an empty class
// string queries without a class.
//
// Database patterns compete for the query under the standard precedence
// rules: consumed positions beat skipped ones, name matches beat class
// matches beat wildcards, and tight bindings beat loose ones, decided
// left to right. See the match package for the full rules.
//
// # Typed Access
//
// Resource values are text. Int64 parses them as decimal integers and
// returns InvalidInt when the text does not parse. Bool understands
// integer truthiness plus the words "true", "on", "yes", "false", "off",
// and "no" in any case, and returns false for anything else.
//
//	size, err := xrm.Resolve(db, "app.window.width", "")
//	if err == nil && size.Int64() != xrm.InvalidInt {
//	    width = size.Int64()
//	}
//
// # Custom Pipelines
//
// Resolver accepts replacement Tokenizer and Matcher implementations for
// callers that need different query syntax or precedence behavior:
//
//	r := xrm.NewResolver().WithMatcher(myMatcher)
//
// # Caching
//
// Repeated queries against a stable database can go through the cache
// package, which memoizes both hits and misses in a sharded in-memory
// cache.
//
// # Thread Safety
//
// Database and Resolver are safe for concurrent use once built; the
// WithTokenizer and WithMatcher setters are not meant to run concurrently
// with queries. A Resource belongs to its caller, and Close must not race
// with the accessors.
package xrm
