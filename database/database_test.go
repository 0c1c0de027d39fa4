package database

import (
	"strings"
	"testing"

	"github.com/wippyai/xrm/errors"
)

func TestNew(t *testing.T) {
	db, err := New(
		Definition{Pattern: "xmh*Foreground", Value: "chartreuse"},
		Definition{Pattern: "xmh.toc.?.Foreground", Value: "plum"},
		Definition{Pattern: "*Command.background", Value: "grey90"},
	)
	if err != nil {
		t.Fatalf("New error: %v", err)
	}

	if db.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", db.Len())
	}

	var patterns []string
	var values []string
	db.Each(func(e Entry) bool {
		patterns = append(patterns, e.Pattern().String())
		values = append(values, e.Value())
		return true
	})

	wantPatterns := []string{"xmh*Foreground", "xmh.toc.?.Foreground", "*Command.background"}
	wantValues := []string{"chartreuse", "plum", "grey90"}
	for i := range wantPatterns {
		if patterns[i] != wantPatterns[i] {
			t.Errorf("pattern %d = %q, want %q", i, patterns[i], wantPatterns[i])
		}
		if values[i] != wantValues[i] {
			t.Errorf("value %d = %q, want %q", i, values[i], wantValues[i])
		}
	}
}

func TestNew_Empty(t *testing.T) {
	db, err := New()
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	if db.Len() != 0 {
		t.Errorf("Len() = %d, want 0", db.Len())
	}
}

func TestNew_BadPattern(t *testing.T) {
	_, err := New(
		Definition{Pattern: "good.pattern", Value: "1"},
		Definition{Pattern: "bad.pattern.", Value: "2"},
	)
	if err == nil {
		t.Fatal("New succeeded, want parse error")
	}

	e, ok := err.(*errors.Error)
	if !ok {
		t.Fatalf("error type = %T, want *errors.Error", err)
	}
	if e.Kind != errors.KindInvalidPath {
		t.Errorf("Kind = %v, want %v", e.Kind, errors.KindInvalidPath)
	}
	if e.Input != "bad.pattern." {
		t.Errorf("Input = %q, want the failing pattern", e.Input)
	}
	if !strings.Contains(e.Detail, "definition 1") {
		t.Errorf("Detail = %q, should name the failing definition index", e.Detail)
	}
	if e.Cause == nil {
		t.Error("Cause should carry the tokenizer error")
	}
}

func TestNew_DuplicatePatternsRetained(t *testing.T) {
	db, err := New(
		Definition{Pattern: "a.b", Value: "first"},
		Definition{Pattern: "a.b", Value: "second"},
	)
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	if db.Len() != 2 {
		t.Errorf("Len() = %d, want 2 (duplicates retained)", db.Len())
	}
}

func TestEach_EarlyExit(t *testing.T) {
	db, err := New(
		Definition{Pattern: "a", Value: "1"},
		Definition{Pattern: "b", Value: "2"},
		Definition{Pattern: "c", Value: "3"},
	)
	if err != nil {
		t.Fatalf("New error: %v", err)
	}

	var seen int
	db.Each(func(Entry) bool {
		seen++
		return seen < 2
	})
	if seen != 2 {
		t.Errorf("visited %d entries, want 2", seen)
	}
}

func TestNilDatabase(t *testing.T) {
	var db *Database

	if db.Len() != 0 {
		t.Errorf("nil Len() = %d, want 0", db.Len())
	}

	called := false
	db.Each(func(Entry) bool {
		called = true
		return true
	})
	if called {
		t.Error("Each on nil database should not call fn")
	}
}
