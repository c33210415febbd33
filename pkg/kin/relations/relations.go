// Package relations derives named kinship relations from base facts.
//
// The layering mirrors the derivation order: primitives (father, mother,
// child, sibling) read the fact view directly; two-hop compositions build
// grandparent and pibling on top of parent and sibling; everything else is
// produced by two composition primitives, a sex filter and an argument
// swap, applied to a base relation.
//
// Every composed and sex-specialized relation excludes self-pairs
// independently, even where the relation it builds on already does. The
// redundancy is deliberate: it is the only protection a corrupted fact
// store (a person asserted as their own parent, say) has against
// producing a self-relationship at any layer. The primitives themselves
// are unguarded: parent holds as asserted, and child mirrors it exactly.
package relations

import "github.com/famlogic/kin/pkg/kin/facts"

// Predicate reports whether a relation holds between a and b, evaluated
// against the given fact view. Predicates are pure; they never mutate.
type Predicate func(v facts.View, a, b facts.Person) bool

// Parent reports whether a is an asserted parent of b. As a base
// relation it is unguarded: Parent(v, x, x) is true if the store says so.
func Parent(v facts.View, a, b facts.Person) bool {
	for _, p := range v.ParentsOf(b) {
		if p == a {
			return true
		}
	}
	return false
}

// Sibling reports whether a and b are distinct and share at least one
// parent. One shared parent suffices; half-siblings count.
func Sibling(v facts.View, a, b facts.Person) bool {
	if a == b {
		return false
	}
	bParents := make(map[facts.Person]struct{})
	for _, p := range v.ParentsOf(b) {
		bParents[p] = struct{}{}
	}
	for _, p := range v.ParentsOf(a) {
		if _, ok := bParents[p]; ok {
			return true
		}
	}
	return false
}

// Grandparent reports whether a is a parent of some parent of b.
// The a != mid guard keeps a person who is (malformed) their own parent
// from qualifying as a grandparent through themselves.
func Grandparent(v facts.View, a, b facts.Person) bool {
	if a == b {
		return false
	}
	for _, mid := range v.ParentsOf(b) {
		if a == mid {
			continue
		}
		if Parent(v, a, mid) {
			return true
		}
	}
	return false
}

// Pibling reports whether a is a sibling of some parent of b
// (a gender-neutral aunt-or-uncle). Every parent of b that a is a
// sibling of makes the relation hold; the a != p guard mirrors the
// grandparent guard.
func Pibling(v facts.View, a, b facts.Person) bool {
	if a == b {
		return false
	}
	for _, p := range v.ParentsOf(b) {
		if a == p {
			continue
		}
		if Sibling(v, a, p) {
			return true
		}
	}
	return false
}

// sexFiltered specializes base by the sex of the first argument. The
// independent a != b check is kept even though every base relation it is
// applied to already excludes self-pairs.
func sexFiltered(base Predicate, isSex func(facts.View, facts.Person) bool) Predicate {
	return func(v facts.View, a, b facts.Person) bool {
		return a != b && isSex(v, a) && base(v, a, b)
	}
}

// inverseOf swaps the arguments of base, making the inverse an exact
// mirror by construction.
func inverseOf(base Predicate) Predicate {
	return func(v facts.View, a, b facts.Person) bool {
		return base(v, b, a)
	}
}

func isMale(v facts.View, p facts.Person) bool   { return v.IsMale(p) }
func isFemale(v facts.View, p facts.Person) bool { return v.IsFemale(p) }

// The full relation set, assembled from the four primitives above plus
// the two composition wrappers.
var (
	child      = inverseOf(Predicate(Parent))
	grandchild = inverseOf(Predicate(Grandparent))
	nibling    = inverseOf(Predicate(Pibling))

	father = sexFiltered(Predicate(Parent), isMale)
	mother = sexFiltered(Predicate(Parent), isFemale)

	brother = sexFiltered(Predicate(Sibling), isMale)
	sister  = sexFiltered(Predicate(Sibling), isFemale)

	son      = sexFiltered(child, isMale)
	daughter = sexFiltered(child, isFemale)

	grandfather = sexFiltered(Predicate(Grandparent), isMale)
	grandmother = sexFiltered(Predicate(Grandparent), isFemale)

	grandson      = sexFiltered(grandchild, isMale)
	granddaughter = sexFiltered(grandchild, isFemale)

	uncle = sexFiltered(Predicate(Pibling), isMale)
	aunt  = sexFiltered(Predicate(Pibling), isFemale)

	nephew = sexFiltered(nibling, isMale)
	niece  = sexFiltered(nibling, isFemale)
)
