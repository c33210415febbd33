// Package kin is a kinship inference engine: it derives named family
// relationships (parent, sibling, grandparent, pibling and friends) from
// three base facts — male, female, and direct parentage.
//
// The engine is a pure, read-mostly layer. Facts live in a caller-owned
// store; every query re-derives from the current facts, so there is no
// materialized state and no invalidation. Contradictory or malformed
// facts are accepted, never validated; the derivation layers guarantee
// only that no relation ever holds between a person and themselves.
package kin

import (
	"context"
	"sort"

	"github.com/famlogic/kin/pkg/kin/facts"
	"github.com/famlogic/kin/pkg/kin/facts/memstore"
	"github.com/famlogic/kin/pkg/kin/inference"
	"github.com/famlogic/kin/pkg/kin/inference/simple"
	"github.com/famlogic/kin/pkg/kin/relations"
)

// Kind re-exports the relation kind type for facade callers.
type Kind = relations.Kind

// Person re-exports the person identifier type.
type Person = facts.Person

// Pair is one ordered related pair.
type Pair struct {
	A Person
	B Person
}

// Kin is the query facade over a fact store and an inference engine.
type Kin struct {
	store  facts.Store
	engine inference.Engine
}

// Options configures a Kin instance. Zero fields get defaults: an empty
// in-memory store and the simple native engine.
type Options struct {
	Store  facts.Store
	Engine inference.Engine
}

// New creates a Kin instance with the given dependencies.
func New(opts Options) *Kin {
	if opts.Store == nil {
		opts.Store = memstore.New()
	}
	if opts.Engine == nil {
		opts.Engine = simple.New()
	}
	return &Kin{store: opts.Store, engine: opts.Engine}
}

// Close cleanly shuts down the underlying store.
func (k *Kin) Close() error {
	return k.store.Close()
}

// Store exposes the caller-owned fact store.
func (k *Kin) Store() facts.Store {
	return k.store
}

// AssertMale records that p is male.
func (k *Kin) AssertMale(ctx context.Context, p Person) error {
	return k.store.AddMale(ctx, p)
}

// AssertFemale records that p is female.
func (k *Kin) AssertFemale(ctx context.Context, p Person) error {
	return k.store.AddFemale(ctx, p)
}

// AssertParent records a parent→child edge.
func (k *Kin) AssertParent(ctx context.Context, parent, child Person) error {
	return k.store.AddParent(ctx, parent, child)
}

// RetractParent removes a parent→child edge.
func (k *Kin) RetractParent(ctx context.Context, parent, child Person) error {
	return k.store.RemoveParent(ctx, parent, child)
}

// Holds reports whether the named relation holds for (a, b). Unknown
// kinds and unknown persons are false, never an error.
func (k *Kin) Holds(kind Kind, a, b Person) bool {
	return k.engine.Holds(k.store, kind, a, b)
}

// RelationsBetween returns every derived kind holding for (a, b).
func (k *Kin) RelationsBetween(a, b Person) []Kind {
	return k.engine.KindsBetween(k.store, a, b)
}

// Related reports whether any derived relation holds for (a, b), in each
// relation's own argument order. For direction-free relatedness check
// both Related(a, b) and Related(b, a).
func (k *Kin) Related(a, b Person) bool {
	return k.engine.Related(k.store, a, b)
}

// AllRelatedPairs enumerates every ordered related pair derivable from
// the current facts, each pair once, sorted. The sequence is finite,
// restartable, and re-derived on each call. Self-pairs are excluded
// here, matching Related: child(x, x) mirrors a malformed parent(x, x)
// fact, but relatedness never holds for a self-pair.
func (k *Kin) AllRelatedPairs() []Pair {
	seen := make(map[Pair]struct{})
	var out []Pair
	for _, f := range k.engine.AllFacts(k.store) {
		if f.A == f.B {
			continue
		}
		p := Pair{A: f.A, B: f.B}
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].A != out[j].A {
			return out[i].A < out[j].A
		}
		return out[i].B < out[j].B
	})
	return out
}

// AllFacts enumerates every derivable (kind, a, b) relationship fact.
func (k *Kin) AllFacts() []relations.DerivedFact {
	return k.engine.AllFacts(k.store)
}

// Kinds returns every queryable relation kind.
func Kinds() []Kind {
	return relations.Kinds()
}
