// Package cache memoizes resource queries against a fixed database.
//
// Precedence matching walks every database entry, so hot query paths pay
// the full cost on every call. The caching resolver stores results in a
// sharded in-memory cache keyed by the name and class pair:
//
//	cr, err := cache.NewResolver(db, cache.Config{
//	    LifeWindow: time.Minute,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer cr.Close()
//
//	res, err := cr.Resolve("app.window.background", "App.Window.Background")
//
// Definitive misses are cached alongside hits, so a query that matches
// nothing stays cheap on repetition. Validation errors and other
// failures are recomputed every time.
//
// The database is captured at construction and assumed immutable. Entries
// expire after the configured life window; Flush drops them all at once.
package cache
