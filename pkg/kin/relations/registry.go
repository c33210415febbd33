package relations

import "github.com/famlogic/kin/pkg/kin/facts"

// Kind names a relation in the registry.
type Kind string

// The registered relation kinds. Parent is the only base kind; the rest
// are derived and carry self-pair guards.
const (
	KindParent        Kind = "parent"
	KindFather        Kind = "father"
	KindMother        Kind = "mother"
	KindChild         Kind = "child"
	KindSon           Kind = "son"
	KindDaughter      Kind = "daughter"
	KindSibling       Kind = "sibling"
	KindBrother       Kind = "brother"
	KindSister        Kind = "sister"
	KindGrandparent   Kind = "grandparent"
	KindGrandfather   Kind = "grandfather"
	KindGrandmother   Kind = "grandmother"
	KindGrandchild    Kind = "grandchild"
	KindGrandson      Kind = "grandson"
	KindGranddaughter Kind = "granddaughter"
	KindPibling       Kind = "pibling"
	KindUncle         Kind = "uncle"
	KindAunt          Kind = "aunt"
	KindNibling       Kind = "nibling"
	KindNephew        Kind = "nephew"
	KindNiece         Kind = "niece"
)

// Entry is one registry row. Adding a relation kind means adding one row
// here; the aggregation operations iterate the registry and need no edit.
type Entry struct {
	Kind Kind
	Pred Predicate

	// Derived marks relations covered by the aggregation layer. The base
	// parent relation is registered (so it is queryable by name) but is
	// not part of Related or KindsBetween.
	Derived bool
}

// registry order is derivation order: primitives, sexed primitives,
// two-hop compositions, their sexed forms, inverses last within each
// group. KindsBetween and AllPairs report kinds in this order.
var registry = []Entry{
	{KindParent, Parent, false},
	{KindFather, father, true},
	{KindMother, mother, true},
	{KindChild, child, true},
	{KindSon, son, true},
	{KindDaughter, daughter, true},
	{KindSibling, Sibling, true},
	{KindBrother, brother, true},
	{KindSister, sister, true},
	{KindGrandparent, Grandparent, true},
	{KindGrandfather, grandfather, true},
	{KindGrandmother, grandmother, true},
	{KindGrandchild, grandchild, true},
	{KindGrandson, grandson, true},
	{KindGranddaughter, granddaughter, true},
	{KindPibling, Pibling, true},
	{KindUncle, uncle, true},
	{KindAunt, aunt, true},
	{KindNibling, nibling, true},
	{KindNephew, nephew, true},
	{KindNiece, niece, true},
}

// Kinds returns every registered kind in registry order.
func Kinds() []Kind {
	out := make([]Kind, len(registry))
	for i, e := range registry {
		out[i] = e.Kind
	}
	return out
}

// DerivedKinds returns the kinds covered by the aggregation layer.
func DerivedKinds() []Kind {
	out := make([]Kind, 0, len(registry))
	for _, e := range registry {
		if e.Derived {
			out = append(out, e.Kind)
		}
	}
	return out
}

// Lookup returns the predicate registered for kind.
func Lookup(kind Kind) (Predicate, bool) {
	for _, e := range registry {
		if e.Kind == kind {
			return e.Pred, true
		}
	}
	return nil, false
}

// Holds evaluates the named relation for (a, b). Unknown kinds are false.
func Holds(v facts.View, kind Kind, a, b facts.Person) bool {
	pred, ok := Lookup(kind)
	if !ok {
		return false
	}
	return pred(v, a, b)
}

// Related reports whether any derived relation holds for (a, b), in each
// relation's own argument order. It is not symmetrized: callers wanting
// direction-free relatedness must check both (a, b) and (b, a). The final
// a != b guard is independent of whichever relation matched.
func Related(v facts.View, a, b facts.Person) bool {
	if a == b {
		return false
	}
	for _, e := range registry {
		if e.Derived && e.Pred(v, a, b) {
			return true
		}
	}
	return false
}

// KindsBetween returns every derived kind holding for (a, b), in registry
// order. A male shared-parent pair yields both sibling and brother.
func KindsBetween(v facts.View, a, b facts.Person) []Kind {
	var kinds []Kind
	for _, e := range registry {
		if e.Derived && e.Pred(v, a, b) {
			kinds = append(kinds, e.Kind)
		}
	}
	return kinds
}

// DerivedFact is one derivable (kind, a, b) triple.
type DerivedFact struct {
	Kind Kind
	A    facts.Person
	B    facts.Person
}

// AllFacts enumerates every derivable derived-relation fact: each kind in
// registry order, pairs in person order within a kind, no duplicates. The
// result is re-derived from the view on every call.
func AllFacts(v facts.View) []DerivedFact {
	persons := v.Persons()
	var out []DerivedFact
	for _, e := range registry {
		if !e.Derived {
			continue
		}
		for _, a := range persons {
			for _, b := range persons {
				if e.Pred(v, a, b) {
					out = append(out, DerivedFact{Kind: e.Kind, A: a, B: b})
				}
			}
		}
	}
	return out
}

// AllRelatedPairs enumerates every ordered (a, b) pair for which Related
// holds, in person order, each pair once. This is the registry-level
// definition of "all related pairs"; the facade's enumeration over
// AllFacts must stay consistent with it, in particular by excluding
// self-pairs the way Related does.
func AllRelatedPairs(v facts.View) [][2]facts.Person {
	persons := v.Persons()
	var out [][2]facts.Person
	for _, a := range persons {
		for _, b := range persons {
			if Related(v, a, b) {
				out = append(out, [2]facts.Person{a, b})
			}
		}
	}
	return out
}
