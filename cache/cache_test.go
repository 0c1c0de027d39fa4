package cache

import (
	"testing"
	"time"

	"github.com/wippyai/xrm"
	"github.com/wippyai/xrm/database"
	"github.com/wippyai/xrm/entry"
	"github.com/wippyai/xrm/errors"
)

func testDB(t *testing.T, defs ...database.Definition) *database.Database {
	t.Helper()
	db, err := database.New(defs...)
	if err != nil {
		t.Fatalf("database.New error: %v", err)
	}
	return db
}

type countingMatcher struct {
	calls int
	value string
	err   error
}

func (m *countingMatcher) Match(*database.Database, *entry.Entry, *entry.Entry) (*xrm.Resource, error) {
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	return xrm.NewResource(m.value), nil
}

func countingResolver(t *testing.T, db *database.Database, m *countingMatcher) *Resolver {
	t.Helper()
	r, err := NewResolver(db, Config{
		Resolver: xrm.NewResolver().WithMatcher(m),
	})
	if err != nil {
		t.Fatalf("NewResolver error: %v", err)
	}
	return r
}

func TestResolve_CachesHits(t *testing.T) {
	db := testDB(t, database.Definition{Pattern: "a.b", Value: "v"})
	m := &countingMatcher{value: "v"}
	r := countingResolver(t, db, m)
	defer r.Close()

	for i := 0; i < 3; i++ {
		res, err := r.Resolve("a.b", "A.B")
		if err != nil {
			t.Fatalf("Resolve %d error: %v", i, err)
		}
		if res.Value() != "v" {
			t.Errorf("Resolve %d Value() = %q, want %q", i, res.Value(), "v")
		}
	}

	if m.calls != 1 {
		t.Errorf("matcher ran %d times, want 1", m.calls)
	}
}

func TestResolve_CachesMisses(t *testing.T) {
	db := testDB(t, database.Definition{Pattern: "a.b", Value: "v"})
	m := &countingMatcher{err: errors.NoMatch("a.b")}
	r := countingResolver(t, db, m)
	defer r.Close()

	for i := 0; i < 3; i++ {
		_, err := r.Resolve("a.b", "")
		if !errors.IsKind(err, errors.KindNoMatch) {
			t.Fatalf("Resolve %d error = %v, want kind %v", i, err, errors.KindNoMatch)
		}
	}

	if m.calls != 1 {
		t.Errorf("matcher ran %d times, want 1 for a cached miss", m.calls)
	}
}

func TestResolve_OtherErrorsNotCached(t *testing.T) {
	db := testDB(t, database.Definition{Pattern: "a.b", Value: "v"})
	failure := errors.New(errors.PhaseMatch, errors.KindAllocation).
		Detail("matcher exploded").
		Build()
	m := &countingMatcher{err: failure}
	r := countingResolver(t, db, m)
	defer r.Close()

	for i := 0; i < 2; i++ {
		_, err := r.Resolve("a.b", "")
		if err != failure {
			t.Fatalf("Resolve %d error = %v, want the matcher's error", i, err)
		}
	}

	if m.calls != 2 {
		t.Errorf("matcher ran %d times, want 2 for an uncached error", m.calls)
	}
}

// The class participates in the cache key, so the same name with and
// without a class resolves independently.
func TestResolve_ClassInKey(t *testing.T) {
	db := testDB(t,
		database.Definition{Pattern: "A.b", Value: "viaclass"},
		database.Definition{Pattern: "?.b", Value: "viawildcard"},
	)
	r, err := NewResolver(db, Config{})
	if err != nil {
		t.Fatalf("NewResolver error: %v", err)
	}
	defer r.Close()

	withClass, err := r.Resolve("a.b", "A.B")
	if err != nil {
		t.Fatalf("Resolve with class error: %v", err)
	}
	if withClass.Value() != "viaclass" {
		t.Errorf("with class Value() = %q, want %q", withClass.Value(), "viaclass")
	}

	withoutClass, err := r.Resolve("a.b", "")
	if err != nil {
		t.Fatalf("Resolve without class error: %v", err)
	}
	if withoutClass.Value() != "viawildcard" {
		t.Errorf("without class Value() = %q, want %q", withoutClass.Value(), "viawildcard")
	}
}

// Closing one returned resource must not corrupt later cache hits.
func TestResolve_FreshResourcePerCall(t *testing.T) {
	db := testDB(t, database.Definition{Pattern: "a.b", Value: "v"})
	r, err := NewResolver(db, Config{})
	if err != nil {
		t.Fatalf("NewResolver error: %v", err)
	}
	defer r.Close()

	first, err := r.Resolve("a.b", "")
	if err != nil {
		t.Fatalf("first Resolve error: %v", err)
	}
	if err := first.Close(); err != nil {
		t.Fatalf("Close error: %v", err)
	}

	second, err := r.Resolve("a.b", "")
	if err != nil {
		t.Fatalf("second Resolve error: %v", err)
	}
	if second.Value() != "v" {
		t.Errorf("second Value() = %q, want %q after closing the first", second.Value(), "v")
	}
}

func TestFlush(t *testing.T) {
	db := testDB(t, database.Definition{Pattern: "a.b", Value: "v"})
	m := &countingMatcher{value: "v"}
	r := countingResolver(t, db, m)
	defer r.Close()

	if _, err := r.Resolve("a.b", ""); err != nil {
		t.Fatalf("Resolve error: %v", err)
	}
	if r.Len() != 1 {
		t.Errorf("Len() = %d, want 1", r.Len())
	}

	if err := r.Flush(); err != nil {
		t.Fatalf("Flush error: %v", err)
	}
	if r.Len() != 0 {
		t.Errorf("Len() after Flush = %d, want 0", r.Len())
	}

	if _, err := r.Resolve("a.b", ""); err != nil {
		t.Fatalf("Resolve after Flush error: %v", err)
	}
	if m.calls != 2 {
		t.Errorf("matcher ran %d times, want 2 after Flush", m.calls)
	}
}

func TestNewResolver_BadShards(t *testing.T) {
	db := testDB(t, database.Definition{Pattern: "a.b", Value: "v"})

	_, err := NewResolver(db, Config{Shards: 3})
	if !errors.IsKind(err, errors.KindAllocation) {
		t.Errorf("error = %v, want kind %v", err, errors.KindAllocation)
	}
}

func TestNewResolver_ConfigDefaults(t *testing.T) {
	db := testDB(t, database.Definition{Pattern: "a.b", Value: "v"})

	r, err := NewResolver(db, Config{
		LifeWindow:   time.Minute,
		CleanWindow:  10 * time.Second,
		Shards:       16,
		MaxEntrySize: 128,
	})
	if err != nil {
		t.Fatalf("NewResolver error: %v", err)
	}
	defer r.Close()

	res, err := r.Resolve("a.b", "")
	if err != nil {
		t.Fatalf("Resolve error: %v", err)
	}
	if res.Value() != "v" {
		t.Errorf("Value() = %q, want %q", res.Value(), "v")
	}
}
