// Package inference defines the evaluation contract between the query
// facade and a reasoning backend.
package inference

import (
	"github.com/famlogic/kin/pkg/kin/facts"
	"github.com/famlogic/kin/pkg/kin/relations"
)

// Engine evaluates kinship relations over a fact view.
// This interface allows swapping implementations (the native Go
// evaluator, the Mangle Datalog backend, or an external Prolog bridge).
// Engines are pure: every call re-derives from the view it is given, and
// no call can fail — unknown persons and kinds simply evaluate to false.
type Engine interface {
	// Holds reports whether the named relation holds for (a, b).
	Holds(v facts.View, kind relations.Kind, a, b facts.Person) bool

	// KindsBetween returns every derived kind holding for (a, b), in
	// registry order. Two calls without intervening mutation return
	// identical results.
	KindsBetween(v facts.View, a, b facts.Person) []relations.Kind

	// Related reports whether any derived relation holds for (a, b), in
	// each relation's own argument order. Never true for a == b.
	Related(v facts.View, a, b facts.Person) bool

	// AllFacts enumerates every derivable (kind, a, b) triple, in a
	// deterministic order with no duplicates.
	AllFacts(v facts.View) []relations.DerivedFact
}
