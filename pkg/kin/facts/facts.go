// Package facts defines the base fact relations every kinship derivation
// is computed from: biological sex (male/female) and direct parentage.
//
// The store is deliberately permissive. Duplicate assertions are no-ops,
// a person may be asserted into both sex sets, and a person may even be
// asserted as their own parent. Nothing here validates semantic
// plausibility; the derived relation layers carry their own self-pair
// guards so that malformed base facts never leak a self-relationship.
package facts

import "context"

// Person is an opaque identifier. Identity is equality, nothing more.
type Person string

// Edge is an ordered parent→child pair.
type Edge struct {
	Parent Person
	Child  Person
}

// View is the read side of a fact store. Every derivation is a pure
// projection over a View; no derivation mutates it.
type View interface {
	IsMale(p Person) bool
	IsFemale(p Person) bool

	// ParentsOf returns every asserted parent of child.
	ParentsOf(child Person) []Person
	// ChildrenOf returns every asserted child of parent.
	ChildrenOf(parent Person) []Person

	// Persons returns every person mentioned in any base fact, sorted.
	Persons() []Person
	// ParentEdges returns every parent→child edge, sorted.
	ParentEdges() []Edge
}

// Store is a full fact store: the View plus assertion and retraction.
// All mutations are idempotent and never fail for contradictory input.
type Store interface {
	View

	AddMale(ctx context.Context, p Person) error
	AddFemale(ctx context.Context, p Person) error
	AddParent(ctx context.Context, parent, child Person) error

	RemoveMale(ctx context.Context, p Person) error
	RemoveFemale(ctx context.Context, p Person) error
	RemoveParent(ctx context.Context, parent, child Person) error

	Close() error
}
