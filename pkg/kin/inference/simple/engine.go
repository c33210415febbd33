// Package simple is the native evaluation engine: it walks the relation
// registry directly against the fact view on every call.
package simple

import (
	"github.com/famlogic/kin/pkg/kin/facts"
	"github.com/famlogic/kin/pkg/kin/relations"
)

// Engine evaluates relations by direct predicate application. It holds
// no state, so a zero value is ready to use.
type Engine struct{}

// New creates a simple engine.
func New() *Engine { return &Engine{} }

// Holds implements inference.Engine.
func (e *Engine) Holds(v facts.View, kind relations.Kind, a, b facts.Person) bool {
	return relations.Holds(v, kind, a, b)
}

// KindsBetween implements inference.Engine.
func (e *Engine) KindsBetween(v facts.View, a, b facts.Person) []relations.Kind {
	return relations.KindsBetween(v, a, b)
}

// Related implements inference.Engine.
func (e *Engine) Related(v facts.View, a, b facts.Person) bool {
	return relations.Related(v, a, b)
}

// AllFacts implements inference.Engine.
func (e *Engine) AllFacts(v facts.View) []relations.DerivedFact {
	return relations.AllFacts(v)
}
