package match

import (
	"go.uber.org/zap"

	"github.com/wippyai/xrm/database"
	"github.com/wippyai/xrm/entry"
	"github.com/wippyai/xrm/errors"
)

// kind records how a single query position was consumed by a pattern.
// Lower values are more specific.
type kind uint8

const (
	kindName     kind = iota // pattern component equals the query name component
	kindClass                // pattern component equals the query class component
	kindWildcard             // consumed by a "?" component
	kindSkipped              // consumed by a loose binding
)

// position annotates one query position of a successful match
type position struct {
	kind  kind
	tight bool // reached through a tight binding
}

// compare orders two annotations of the same length. It returns a negative
// value when a is more specific than b, positive when b is more specific,
// and zero when they tie. Positions are compared left to right and the
// first difference decides: a consumed position beats a skipped one, names
// beat classes beat wildcards, and tight bindings beat loose ones.
func compare(a, b []position) int {
	for i := range a {
		if a[i].kind != b[i].kind {
			return int(a[i].kind) - int(b[i].kind)
		}
		if a[i].tight != b[i].tight {
			if a[i].tight {
				return -1
			}
			return 1
		}
	}
	return 0
}

// kindAt reports how pattern component pc consumes query position j, or
// false when it cannot. A component equal to both the name and the class
// counts as a name match.
func kindAt(pc entry.Component, j int, name, class []entry.Component) (kind, bool) {
	if pc.Wildcard {
		return kindWildcard, true
	}
	if pc.Name == name[j].Name {
		return kindName, true
	}
	if class != nil && pc.Name == class[j].Name {
		return kindClass, true
	}
	return 0, false
}

// matchFrom lays pattern components pat[pi:] over query positions starting
// at qi, writing annotations into ann. It reports whether the pattern
// consumes the remaining query exactly.
//
// Loose components try the earliest consumable position first and fall
// back to skipping it. Annotations identical so far always continue with
// the same pattern component, so consuming a position early is never worse
// than skipping it, and the first successful alignment is also the most
// specific one.
func matchFrom(pat, name, class []entry.Component, pi, qi int, ann []position) bool {
	if pi == len(pat) {
		return qi == len(name)
	}

	pc := pat[pi]
	if pc.Binding == entry.Tight {
		if qi >= len(name) {
			return false
		}
		k, ok := kindAt(pc, qi, name, class)
		if !ok {
			return false
		}
		ann[qi] = position{kind: k, tight: true}
		return matchFrom(pat, name, class, pi+1, qi+1, ann)
	}

	for j := qi; j < len(name); j++ {
		k, ok := kindAt(pc, j, name, class)
		if !ok {
			continue
		}
		for s := qi; s < j; s++ {
			ann[s] = position{kind: kindSkipped}
		}
		ann[j] = position{kind: k}
		if matchFrom(pat, name, class, pi+1, j+1, ann) {
			return true
		}
	}
	return false
}

// Best finds the most specific database entry matching the query and
// returns its value. The class entry may be nil, in which case patterns
// can only consume positions by name or wildcard. Name and class must have
// the same number of components; the caller validates arity.
//
// When two entries match with equal specificity, the later definition
// wins. Best returns an error of kind KindNoMatch when nothing matches.
func Best(db *database.Database, name, class *entry.Entry) (string, error) {
	nameComps := name.Components()
	var classComps []entry.Component
	if class != nil {
		classComps = class.Components()
	}

	n := len(nameComps)
	cand := make([]position, n)
	best := make([]position, n)

	var (
		found     bool
		bestValue string
	)

	db.Each(func(e database.Entry) bool {
		if !matchFrom(e.Pattern().Components(), nameComps, classComps, 0, 0, cand) {
			return true
		}
		if !found || compare(cand, best) <= 0 {
			found = true
			best, cand = cand, best
			bestValue = e.Value()
			Logger().Debug("accepted match candidate",
				zap.String("pattern", e.Pattern().String()),
				zap.String("value", e.Value()))
		}
		return true
	})

	if !found {
		Logger().Debug("no entry matched",
			zap.String("name", name.String()))
		return "", errors.NoMatch(name.String())
	}
	return bestValue, nil
}
